package http

import (
	"context"
	"html/template"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/acikdeniz/credits/internal/app"
)

// Service can render the attribution footer.
type Service interface {
	Footer(ctx context.Context, locale string) app.Footer
}

// Contributor links open in a new browsing context; rel=noopener keeps the
// opener out of reach of the target page.
var footerTemplate = template.Must(template.New("footer").Parse(
	`<footer>{{range .Parts}}{{if .URL}}<a href="{{.URL}}" target="_blank" rel="noopener">{{.Text}}</a>{{else}}{{.Text}}{{end}}{{end}} &middot; <a href="{{.RepoURL}}" target="_blank" rel="noopener">GitHub</a></footer>`,
))

type footerPart struct {
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

type footerResponse struct {
	Parts   []footerPart `json:"parts"`
	RepoURL string       `json:"repoUrl"`
}

func newFooterResponse(footer app.Footer) footerResponse {
	parts := make([]footerPart, 0, len(footer.Parts))
	for _, p := range footer.Parts {
		parts = append(parts, footerPart{
			Text: p.Text,
			URL:  p.URL,
		})
	}

	return footerResponse{
		Parts:   parts,
		RepoURL: footer.RepoURL,
	}
}

// NewFooterHandler creates handlerfunc rendering the footer as an html fragment.
// The footer never fails: missing contributor data renders the fallback phrase.
func NewFooterHandler(
	getLocale func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		footer := service.Footer(r.Context(), getLocale(r))

		w.Header().Set("Content-type", "text/html; charset=utf-8")
		if err := footerTemplate.Execute(w, footer); err != nil {
			l.Errorf("executing footer template: %v", err)
		}
	}
}

// NewFooterJSONHandler creates handlerfunc returning the footer model as json.
func NewFooterJSONHandler(
	getLocale func(*http.Request) string,
	service Service,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		footer := service.Footer(r.Context(), getLocale(r))
		response := newFooterResponse(footer)

		w.Header().Set("Content-type", "application/json; charset=utf-8")
		_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(response)
	}
}

// NewArtifactHandler creates handlerfunc serving the contributor artifact,
// for deployments where the renderer fetches it relative to a base path.
func NewArtifactHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFile(w, r, path)
	}
}

func getLocaleParam(r *http.Request) string {
	if locale := r.URL.Query().Get("lang"); locale != "" {
		return locale
	}

	return r.Header.Get("Accept-Language")
}
