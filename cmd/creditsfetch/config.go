package main

import "time"

// Config is the container for app configuration
type Config struct {
	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api (optional, rate limit is lower without this token)
	GithubAPIToken string `default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls
	GithubAPIRateLimit float64 `default:"0.5"`

	// FetchTimeout - timeout for the whole fetch run
	FetchTimeout time.Duration `default:"30s"`

	// ArtifactPath - filepath for the contributor artifact
	ArtifactPath string `default:"./public/contributors.json"`

	// MetaDBPath - filepath for bolt db with fetch meta
	MetaDBPath string `default:"./fetch.data"`

	// MetaDBBucketName - bolt db bucket name
	MetaDBBucketName string `default:"fetchmeta"`
}
