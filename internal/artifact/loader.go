package artifact

import (
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/acikdeniz/credits/internal/app"
	"github.com/pkg/errors"
)

// HTTPDoer can execute http request
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// FileName is the well-known artifact file name, shared by writers, loaders
// and the http route serving it.
const FileName = "contributors.json"

// FileLoader loads the contributor artifact from local filesystem.
type FileLoader struct {
	path string
}

// NewFileLoader creates new FileLoader instance reading from given path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{
		path: path,
	}
}

// Load reads and parses the artifact.
func (l *FileLoader) Load(ctx context.Context) ([]app.Contributor, error) {
	data, err := ioutil.ReadFile(l.path)
	if err != nil {
		return nil, errors.Wrap(err, "reading artifact file")
	}

	return parse(data)
}

// HTTPLoader loads the contributor artifact over http, relative to a base
// url. The application may be deployed under a sub-path, so the artifact
// location is always resolved against the configured base.
type HTTPLoader struct {
	doer    HTTPDoer
	baseURL string

	responseMaxSize int
}

// NewHTTPLoader creates new HTTPLoader instance fetching from given base url.
func NewHTTPLoader(doer HTTPDoer, baseURL string) *HTTPLoader {
	return &HTTPLoader{
		doer:    doer,
		baseURL: baseURL,

		responseMaxSize: 1024 * 1024,
	}
}

// Load fetches and parses the artifact.
func (l *HTTPLoader) Load(ctx context.Context) ([]app.Contributor, error) {
	httpReq, err := http.NewRequest(http.MethodGet, l.baseURL+"/"+FileName, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating http request")
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := l.doer.Do(httpReq.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "doing http request")
	}
	defer func() {
		io.CopyN(ioutil.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		return nil, errors.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	data, err := ioutil.ReadAll(io.LimitReader(resp.Body, int64(l.responseMaxSize)))
	if err != nil {
		return nil, errors.Wrap(err, "reading http response body")
	}

	return parse(data)
}

func parse(data []byte) ([]app.Contributor, error) {
	var rs []record
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, errors.Wrap(err, "unmarshalling artifact")
	}

	return toContributors(rs)
}
