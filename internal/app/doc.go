// Package app is the composition root for Cosmonaut.
//
// Run wires configuration, the APOD client, the image cache and
// pipeline, the feed store, and the backward pager together, primes the
// first feed window, and hands everything to the UI:
//
//	config.Load()        read ~/.config/cosmonaut/config.toml
//	fetch.New()          shared HTTP transport
//	apod.NewClient()     rate-limited APOD API client
//	imagecache.New()     bounded LRU for decoded images
//	pipeline.New()       cache-then-network image resolution
//	feed.Store{}         shared feed snapshot store
//	pager.New()          backward date-window pagination
//	ui.Run()             Bubble Tea TUI (blocks)
//
// The cache is constructed exactly once here and passed by reference;
// nothing in the tree reaches for process-wide shared state.
//
// Fatal errors are limited to unloadable configuration and a malformed
// API endpoint. A failing initial fetch only logs: the feed store
// records the error and the first scroll trigger retries.
package app
