package app

import (
	"context"

	"github.com/acikdeniz/credits/internal/i18n"
	"github.com/sirupsen/logrus"
)

// ArtifactLoader loads the contributor list from the static artifact.
type ArtifactLoader interface {
	Load(ctx context.Context) ([]Contributor, error)
}

// FooterService renders the attribution footer from the contributor artifact.
//
// Load failures never surface: the footer degrades to a localized fallback
// phrase, same as an empty contributor list. The repository link is rendered
// in every case.
type FooterService struct {
	loader ArtifactLoader
	l      logrus.FieldLogger
}

// NewFooterService creates new FooterService instance.
func NewFooterService(loader ArtifactLoader, l logrus.FieldLogger) *FooterService {
	return &FooterService{
		loader: loader,
		l:      l,
	}
}

// Footer returns the footer model for given locale.
//
// Contributors render as '@login' links joined with ', ', the last pair
// joined with the localized conjunction, followed by the localized
// attribution suffix. With no contributors available only the fallback
// phrase is rendered.
func (s *FooterService) Footer(ctx context.Context, locale string) Footer {
	bundle := i18n.Match(locale)

	contributors, err := s.loader.Load(ctx)
	if err != nil {
		s.l.Debugf("loading contributor artifact: %v", err)
		contributors = nil
	}

	if len(contributors) == 0 {
		return Footer{
			Parts:   []FooterPart{{Text: bundle.Fallback}},
			RepoURL: RepoURL,
		}
	}

	parts := make([]FooterPart, 0, 2*len(contributors))
	for i, c := range contributors {
		switch {
		case i == 0:
		case i == len(contributors)-1:
			parts = append(parts, FooterPart{Text: " " + bundle.Conjunction + " "})
		default:
			parts = append(parts, FooterPart{Text: ", "})
		}

		parts = append(parts, FooterPart{
			Text: "@" + c.Login,
			URL:  c.ProfileURL,
		})
	}
	parts = append(parts, FooterPart{Text: " " + bundle.Suffix})

	return Footer{
		Parts:   parts,
		RepoURL: RepoURL,
	}
}
