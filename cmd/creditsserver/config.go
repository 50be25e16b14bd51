package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// HandlerTimeout - timeout for http handlers
	HandlerTimeout time.Duration `default:"10s"`

	// ArtifactPath - filepath for the contributor artifact
	ArtifactPath string `default:"./public/contributors.json"`

	// ArtifactBaseURL - base url for fetching the artifact over http.
	// If empty, the artifact is read from ArtifactPath instead.
	ArtifactBaseURL string `default:""`

	// ArtifactCacheSize - maximum number of elements in the artifact cache
	ArtifactCacheSize int `default:"16"`

	// ArtifactCacheTTL - maximum lifetime for artifact cache entries
	ArtifactCacheTTL time.Duration `default:"1m"`
}
