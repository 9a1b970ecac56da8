package pipeline

import (
	"bytes"
	"context"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/astroshell/cosmonaut/internal/apod"
	"github.com/astroshell/cosmonaut/internal/fetch"
	"github.com/astroshell/cosmonaut/internal/imagecache"
)

// Pipeline resolves an item's standard-resolution image, preferring the
// cache and falling back to the network.
type Pipeline struct {
	cache   *imagecache.Cache
	fetcher *fetch.Fetcher
	group   singleflight.Group
}

// New builds a Pipeline over the given cache and transport.
func New(cache *imagecache.Cache, fetcher *fetch.Fetcher) *Pipeline {
	return &Pipeline{cache: cache, fetcher: fetcher}
}

// Resolve returns the image bytes for item.URL. A cache hit returns
// immediately with no network call. On a miss, concurrent calls for the
// same URL share a single in-flight request. Bytes that are not a
// decodable image are replaced by the placeholder rather than failing
// the caller; transport errors propagate.
func (p *Pipeline) Resolve(ctx context.Context, item apod.Item) ([]byte, error) {
	key := item.URL
	if data, ok := p.cache.Retrieve(key); ok {
		return data, nil
	}

	v, err, _ := p.group.Do(key, func() (any, error) {
		// Re-check: another caller may have populated the cache between
		// the miss above and this closure running.
		if data, ok := p.cache.Retrieve(key); ok {
			return data, nil
		}
		data, err := p.fetcher.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if !decodable(data) {
			data = Placeholder()
		}
		p.cache.Insert(key, data)
		// Read back so every caller sees the canonical stored value.
		if stored, ok := p.cache.Retrieve(key); ok {
			return stored, nil
		}
		return data, nil
	})
	if err != nil {
		if ctx.Err() != nil {
			// Cancellation is a normal termination, not a fetch failure.
			return nil, ctx.Err()
		}
		return nil, err
	}
	return v.([]byte), nil
}

// Prefetch warms the cache for upcoming feed rows. At most parallel
// fetches run at once; per-item failures are ignored, the rows will
// retry when they become visible.
func (p *Pipeline) Prefetch(ctx context.Context, items []apod.Item, parallel int) {
	if parallel <= 0 {
		parallel = 3
	}
	var g errgroup.Group
	g.SetLimit(parallel)
	for _, item := range items {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			_, _ = p.Resolve(ctx, item)
			return nil
		})
	}
	_ = g.Wait()
}

// decodable reports whether data carries a recognizable image header.
func decodable(data []byte) bool {
	_, _, err := image.DecodeConfig(bytes.NewReader(data))
	return err == nil
}
