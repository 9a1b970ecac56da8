// Package pager drives infinite scroll: it walks backward through the
// APOD archive one date window at a time, appending each window to the
// feed store.
package pager

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/astroshell/cosmonaut/internal/apod"
	"github.com/astroshell/cosmonaut/internal/feed"
)

// DefaultWindowDays is the size of each backward fetch window.
const DefaultWindowDays = 30

// rangeFetcher is the slice of the APOD client the pager needs.
// Satisfied by *apod.Client; tests inject fakes.
type rangeFetcher interface {
	FetchRange(ctx context.Context, start, end time.Time) ([]apod.Item, error)
}

// Pager tracks the backward pagination cursor. The cursor is the end of
// the next window to request; it only moves after a successful fetch, so
// a failed window is retried on the next trigger.
type Pager struct {
	client     rangeFetcher
	feed       *feed.Store
	windowDays int

	fetching atomic.Bool

	mu      sync.Mutex
	nextEnd time.Time
}

// New builds a Pager whose first window ends today. Non-positive
// windowDays falls back to DefaultWindowDays.
func New(client rangeFetcher, store *feed.Store, windowDays int) *Pager {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Pager{
		client:     client,
		feed:       store,
		windowDays: windowDays,
		nextEnd:    apod.DateOnly(time.Now().UTC()),
	}
}

// FetchNextWindow requests the next backward window and appends the
// result to the feed. A call while another fetch is in flight is a
// no-op: the fetching flag is claimed with a compare-and-swap, so two
// racing scroll triggers can never issue overlapping requests. On
// failure the cursor and feed are left untouched and the next trigger
// retries the same window.
func (p *Pager) FetchNextWindow(ctx context.Context) error {
	if !p.fetching.CompareAndSwap(false, true) {
		return nil
	}
	defer p.fetching.Store(false)

	p.mu.Lock()
	end := p.nextEnd
	p.mu.Unlock()

	if end.Before(apod.MinArchiveDate) {
		// The whole archive has been paged through.
		return nil
	}

	start := end.AddDate(0, 0, -p.windowDays)
	if start.Before(apod.MinArchiveDate) {
		start = apod.MinArchiveDate
	}

	items, err := p.client.FetchRange(ctx, start, end)
	if err != nil {
		p.feed.Fail(err)
		log.Printf("pager: window %s..%s failed: %v", apod.FormatDate(start), apod.FormatDate(end), err)
		return err
	}

	p.feed.Append(items)

	p.mu.Lock()
	p.nextEnd = start.AddDate(0, 0, -1)
	p.mu.Unlock()
	return nil
}

// IsFetching reports whether a window fetch is in flight, for the UI's
// loading indicator.
func (p *Pager) IsFetching() bool {
	return p.fetching.Load()
}

// Exhausted reports whether the cursor has moved past the start of the
// archive; further triggers will fetch nothing.
func (p *Pager) Exhausted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.nextEnd.Before(apod.MinArchiveDate)
}
