// Command creditsfetch regenerates the static contributor artifact consumed
// by the footer. It is meant to be run out of band (cron, build step); on any
// failure it exits non-zero and leaves the previous artifact untouched.
package main

import (
	"context"
	netHttp "net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/acikdeniz/credits/internal/adapter/github"
	"github.com/acikdeniz/credits/internal/app"
	"github.com/acikdeniz/credits/internal/artifact"
	"github.com/acikdeniz/credits/internal/database"
	"github.com/acikdeniz/credits/internal/limiter"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}

	httpClient := &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)

	kvStore, err := database.NewBoltKVStore(
		conf.MetaDBPath,
		conf.MetaDBBucketName,
	)
	if err != nil {
		l.Fatalf("couldn't create bolt kv store: %v", err)
	}
	defer kvStore.Close()

	githubClient := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		conf.GithubAPIToken,
	)
	metaStore := github.NewMetaStore(kvStore, app.RepoOwner, app.RepoName)
	artifactStore := artifact.NewStore(conf.ArtifactPath)

	service := app.NewFetchService(
		githubClient,
		artifactStore,
		metaStore,
		l.WithField("component", "fetchService"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), conf.FetchTimeout)
	defer cancel()

	if err := service.Refresh(ctx); err != nil {
		l.Fatalf("couldn't refresh contributor artifact: %v", err)
	}
}
