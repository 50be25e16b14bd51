package app

// Repository identity is fixed on purpose: the pipeline credits
// contributors of this one project only.
const (
	RepoOwner = "acikdeniz"
	RepoName  = "planner"

	// ProviderBaseURL is the base url for provider profile and project pages.
	ProviderBaseURL = "https://github.com"

	// RepoURL is the public page of the tracked repository.
	RepoURL = ProviderBaseURL + "/" + RepoOwner + "/" + RepoName
)

// AccountTypeUser is the provider's account type for human users.
const AccountTypeUser = "User"

// Contributor entity
type Contributor struct {
	Login      string
	ProfileURL string
}

// Account is a raw provider record for an account credited with contributions.
// Type discriminates humans from bots and other automation accounts.
type Account struct {
	Login      string
	Type       string
	ProfileURL string
}

// FooterPart is a single piece of footer text in reading order.
// Parts with a non-empty URL render as links.
type FooterPart struct {
	Text string
	URL  string
}

// Footer is the rendered footer model.
type Footer struct {
	Parts   []FooterPart
	RepoURL string
}

// Text returns the footer attribution as plain text.
func (f Footer) Text() string {
	var s string
	for _, p := range f.Parts {
		s += p.Text
	}

	return s
}
