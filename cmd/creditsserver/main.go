// Command creditsserver serves the attribution footer and the contributor
// artifact over http.
package main

import (
	netHttp "net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/acikdeniz/credits/internal/api/http"
	"github.com/acikdeniz/credits/internal/app"
	"github.com/acikdeniz/credits/internal/artifact"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}

	var loader app.ArtifactLoader
	var sourceKey string
	if conf.ArtifactBaseURL != "" {
		httpClient := &netHttp.Client{
			Timeout: 10 * time.Second,
		}
		loader = artifact.NewHTTPLoader(httpClient, conf.ArtifactBaseURL)
		sourceKey = conf.ArtifactBaseURL
	} else {
		loader = artifact.NewFileLoader(conf.ArtifactPath)
		sourceKey = conf.ArtifactPath
	}

	cachedLoader, err := artifact.NewCachedLoader(
		loader,
		sourceKey,
		conf.ArtifactCacheSize,
		conf.ArtifactCacheTTL,
	)
	if err != nil {
		l.Fatalf("couldn't create artifact cache: %v", err)
	}

	service := app.NewFooterService(
		cachedLoader,
		l.WithField("component", "footerService"),
	)

	mux := http.NewMux(service, conf.ArtifactPath, conf.HandlerTimeout, l.WithField("component", "mux"))
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	server.Run()
}
