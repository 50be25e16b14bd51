package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/acikdeniz/credits/internal/app"
	"github.com/pkg/errors"
)

// HTTPDoer can execute http request
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// StatusError is returned when the provider responds with a non-success status.
type StatusError struct {
	Code   int
	Status string
}

// Error implements error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned invalid status: %s", e.Status)
}

// Client returns contributor data of github repositories.
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string

	contributorsResponseMaxSize int
}

// NewClient creates new github client.
// authToken is optional.
func NewClient(doer HTTPDoer, address string, authToken string) *Client {
	c := Client{
		doer:      doer,
		address:   address,
		authToken: authToken,

		contributorsResponseMaxSize: 1024 * 1024 * 10,
	}

	return &c
}

// Contributors returns contributor accounts of given repository, in the
// provider's order, together with the response etag.
//
// When etag is not empty it is sent as If-None-Match; an unchanged
// contributor list yields app.NotModifiedError with the same etag.
func (c *Client) Contributors(ctx context.Context, owner string, repo string, etag string) ([]app.Account, string, error) {
	if owner == "" {
		return nil, "", app.InvalidRequestError("repository owner cannot be empty")
	}
	if repo == "" {
		return nil, "", app.InvalidRequestError("repository name cannot be empty")
	}

	u, err := url.Parse(c.address + fmt.Sprintf("/repos/%s/%s/contributors", owner, repo))
	if err != nil {
		return nil, "", errors.Wrap(err, "invalid url")
	}

	v := make(url.Values)
	v.Set("per_page", "100")
	u.RawQuery = v.Encode()

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", errors.Wrap(err, "creating http request")
	}
	httpReq.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.authToken != "" {
		httpReq.Header.Set("Authorization", "token "+c.authToken)
	}
	if etag != "" {
		httpReq.Header.Set("If-None-Match", etag)
	}

	resp, err := c.doer.Do(httpReq.WithContext(ctx))
	if err != nil {
		return nil, "", errors.Wrap(err, "doing http request")
	}
	// Always drain body before close to allow connection reuse
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		io.CopyN(ioutil.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotModified {
		return nil, etag, app.NotModifiedError("contributors not modified")
	}
	if resp.StatusCode/100 != 2 {
		return nil, "", &StatusError{
			Code:   resp.StatusCode,
			Status: resp.Status,
		}
	}

	body, err := ioutil.ReadAll(io.LimitReader(resp.Body, int64(c.contributorsResponseMaxSize)))
	if err != nil {
		return nil, "", errors.Wrap(err, "reading http response body")
	}

	var cr contributorsResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, "", errors.Wrap(err, "unmarshalling response")
	}

	accounts, err := cr.ToAccounts()
	if err != nil {
		return nil, "", errors.Wrap(err, "invalid response")
	}

	return accounts, resp.Header.Get("ETag"), nil
}
