package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/astroshell/cosmonaut/internal/apod"
	"github.com/astroshell/cosmonaut/internal/archive"
	"github.com/astroshell/cosmonaut/internal/config"
	"github.com/astroshell/cosmonaut/internal/feed"
	"github.com/astroshell/cosmonaut/internal/fetch"
	"github.com/astroshell/cosmonaut/internal/imagecache"
	"github.com/astroshell/cosmonaut/internal/pager"
	"github.com/astroshell/cosmonaut/internal/pipeline"
	"github.com/astroshell/cosmonaut/internal/prefs"
	"github.com/astroshell/cosmonaut/internal/ui"
)

// primeTimeout bounds the initial feed fetch so a dead network cannot
// stall startup; the UI retries in the background either way.
const primeTimeout = 10 * time.Second

// Options configure the Cosmonaut application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/cosmonaut/prefs.toml
	WindowDays int    // days per pagination window; zero uses config/default
}

// Run boots the Cosmonaut TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.WindowDays > 0 {
		cfg.WindowDays = opts.WindowDays
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	fetcher := fetch.New(0)
	client, err := apod.NewClient(cfg.Endpoint, cfg.APIKey, fetcher)
	if err != nil {
		return fmt.Errorf("init apod client: %w", err)
	}

	cache := imagecache.New(cfg.CacheEntries)
	pipe := pipeline.New(cache, fetcher)
	store := &feed.Store{}
	pg := pager.New(client, store, cfg.WindowDays)

	// Prime the feed before the UI starts so the first frame has
	// content. A failure here is not fatal: the store records it and
	// the first scroll retries.
	primeCtx, cancel := context.WithTimeout(ctx, primeTimeout)
	if err := pg.FetchNextWindow(primeCtx); err != nil {
		log.Printf("app: initial window fetch failed: %v", err)
	}
	cancel()

	uiOpts := ui.Options{
		Context:      ctx,
		Client:       client,
		Pipeline:     pipe,
		Pager:        pg,
		Feed:         store,
		Cache:        cache,
		Resolver:     archive.New(nil),
		DownloadDir:  cfg.DownloadDir,
		ThemeName:    userPrefs.Theme,
		PrefsPath:    opts.PrefsPath,
		ShowPreviews: userPrefs.ShowPreviews,
	}
	return ui.Run(uiOpts)
}
