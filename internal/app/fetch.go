package app

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GithubClient returns contributor accounts of a github repository.
// etag is the value returned by a previous call; pass empty string to force
// a full response. When the provider reports no change, a NotModifiedError
// is returned.
type GithubClient interface {
	Contributors(ctx context.Context, owner string, repo string, etag string) ([]Account, string, error)
}

// ArtifactStore persists the contributor list as the static artifact.
type ArtifactStore interface {
	Write(contributors []Contributor) error
}

// FetchMeta holds bookkeeping data of the last successful fetch.
type FetchMeta struct {
	ETag      string
	FetchedAt time.Time
}

// MetaStore persists fetch bookkeeping data between runs.
// Load returns nil when no meta was saved yet.
type MetaStore interface {
	Load() (*FetchMeta, error)
	Save(meta FetchMeta) error
}

// FetchService builds the contributor artifact from provider data.
//
// A run either overwrites the artifact with a complete fresh list or leaves
// it untouched: every failure aborts before the write, so a previously
// written artifact stays valid and becomes the de facto fallback.
type FetchService struct {
	client GithubClient
	store  ArtifactStore
	meta   MetaStore
	l      logrus.FieldLogger
}

// NewFetchService creates new FetchService instance.
func NewFetchService(
	client GithubClient,
	store ArtifactStore,
	meta MetaStore,
	l logrus.FieldLogger,
) *FetchService {
	return &FetchService{
		client: client,
		store:  store,
		meta:   meta,
		l:      l,
	}
}

// Refresh fetches the contributor list and rewrites the artifact.
//
// Non-human accounts are dropped, duplicate logins keep their first
// occurrence, and the repository owner is prepended when the provider
// response doesn't contain them. A provider 'not modified' reply is not an
// error: the artifact is already current.
func (s *FetchService) Refresh(ctx context.Context) error {
	var etag string
	meta, err := s.meta.Load()
	if err != nil {
		// Meta only enables conditional requests. Fetch proceeds without it.
		s.l.Warnf("couldn't load fetch meta: %v", err)
	} else if meta != nil {
		etag = meta.ETag
	}

	accounts, newETag, err := s.client.Contributors(ctx, RepoOwner, RepoName, etag)
	if err != nil {
		if IsNotModifiedError(err) {
			s.l.Infof("contributors of %s/%s not modified, artifact left as is", RepoOwner, RepoName)
			return nil
		}
		return errors.Wrap(err, "fetching contributors")
	}

	contributors := humanContributors(accounts)
	if !containsLogin(contributors, RepoOwner) {
		contributors = append([]Contributor{{
			Login:      RepoOwner,
			ProfileURL: ProviderBaseURL + "/" + RepoOwner,
		}}, contributors...)
	}

	if err := s.store.Write(contributors); err != nil {
		return errors.Wrap(err, "writing artifact")
	}
	s.l.Infof("artifact updated with %d contributors", len(contributors))

	if err := s.meta.Save(FetchMeta{
		ETag:      newETag,
		FetchedAt: time.Now(),
	}); err != nil {
		s.l.Warnf("couldn't save fetch meta: %v", err)
	}

	return nil
}

// humanContributors filters accounts down to unique human users,
// preserving the provider's order.
func humanContributors(accounts []Account) []Contributor {
	seen := make(map[string]bool, len(accounts))
	contributors := make([]Contributor, 0, len(accounts))
	for _, a := range accounts {
		if a.Type != AccountTypeUser {
			continue
		}
		if seen[a.Login] {
			continue
		}
		seen[a.Login] = true

		contributors = append(contributors, Contributor{
			Login:      a.Login,
			ProfileURL: a.ProfileURL,
		})
	}

	return contributors
}

func containsLogin(contributors []Contributor, login string) bool {
	for _, c := range contributors {
		if c.Login == login {
			return true
		}
	}

	return false
}
