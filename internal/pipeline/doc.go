// Package pipeline turns feed items into renderable image bytes.
//
// Resolution order is cache, then network: a hit in the image cache
// returns without any request, a miss issues one GET for the item's URL
// and writes the result back before returning. Concurrent resolutions of
// the same URL collapse into a single in-flight request, and bytes that
// fail image decoding degrade to a generated placeholder instead of an
// error. Metadata failures are the caller's problem; image failures are
// not, because a feed with a few broken thumbnails is still a feed.
//
// The package also handles the one-shot HD download path, which skips
// the cache entirely.
package pipeline
