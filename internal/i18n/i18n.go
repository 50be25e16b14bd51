// Package i18n holds the footer's localized strings and locale negotiation.
package i18n

import "golang.org/x/text/language"

// Bundle groups the localized strings used by the footer.
type Bundle struct {
	Tag language.Tag

	// Conjunction joins the last two entries of the contributor list.
	Conjunction string

	// Suffix is the attribution phrase appended after the joined list.
	Suffix string

	// Fallback is rendered when no contributor data is available.
	Fallback string
}

// bundles order defines matcher priority; the first entry is the default.
var bundles = []Bundle{
	{
		Tag:         language.English,
		Conjunction: "and",
		Suffix:      "made this site.",
		Fallback:    "Made by the community.",
	},
	{
		Tag:         language.Turkish,
		Conjunction: "ve",
		Suffix:      "bu siteyi yaptı.",
		Fallback:    "Gönüllüler tarafından yapıldı.",
	},
}

var matcher language.Matcher

func init() {
	tags := make([]language.Tag, 0, len(bundles))
	for _, b := range bundles {
		tags = append(tags, b.Tag)
	}
	matcher = language.NewMatcher(tags)
}

// Match returns the bundle best matching given locale.
// Accepts BCP 47 tags and Accept-Language lists. Unknown or empty locales
// match the default bundle.
func Match(locale string) Bundle {
	if locale == "" {
		return bundles[0]
	}

	_, i := language.MatchStrings(matcher, locale)

	return bundles[i]
}
