package http

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// NewMux creates router for app's http server
func NewMux(service Service, artifactPath string, timeout time.Duration, l logrus.FieldLogger) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	footerHandler := NewFooterHandler(getLocaleParam, service, l)
	footerJSONHandler := NewFooterJSONHandler(getLocaleParam, service)
	artifactHandler := NewArtifactHandler(artifactPath)

	m := http.NewServeMux()
	m.HandleFunc("/footer", timeoutMiddleware(footerHandler))
	m.HandleFunc("/footer.json", timeoutMiddleware(footerJSONHandler))
	m.HandleFunc("/contributors.json", timeoutMiddleware(artifactHandler))

	return m
}
