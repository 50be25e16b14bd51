package github

import (
	"github.com/acikdeniz/credits/internal/app"
	"github.com/pkg/errors"
)

type contributorsResponse []contributorsResponseItem

type contributorsResponseItem struct {
	Login   string `json:"login"`
	Type    string `json:"type"`
	HTMLURL string `json:"html_url"`
}

// ToAccounts projects response items to app accounts.
// Items missing required fields make the whole response invalid.
func (r contributorsResponse) ToAccounts() ([]app.Account, error) {
	as := make([]app.Account, 0, len(r))
	for i, item := range r {
		if item.Login == "" {
			return nil, errors.Errorf("contributor record %d has no login", i)
		}
		if item.HTMLURL == "" {
			return nil, errors.Errorf("contributor record %d has no html_url", i)
		}

		as = append(as, app.Account{
			Login:      item.Login,
			Type:       item.Type,
			ProfileURL: item.HTMLURL,
		})
	}

	return as, nil
}
