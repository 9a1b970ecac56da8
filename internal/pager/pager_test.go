package pager

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/astroshell/cosmonaut/internal/apod"
	"github.com/astroshell/cosmonaut/internal/feed"
)

// fakeFetcher records the ranges it was asked for and replays canned
// responses.
type fakeFetcher struct {
	mu     sync.Mutex
	calls  [][2]time.Time
	items  []apod.Item
	err    error
	block  chan struct{} // when non-nil, FetchRange waits on it
	onCall func()
}

func (f *fakeFetcher) FetchRange(ctx context.Context, start, end time.Time) ([]apod.Item, error) {
	f.mu.Lock()
	f.calls = append(f.calls, [2]time.Time{start, end})
	onCall := f.onCall
	f.mu.Unlock()
	if onCall != nil {
		onCall()
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeFetcher) call(i int) (start, end time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[i][0], f.calls[i][1]
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := apod.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

// setCursor pins the pager to a known position so window math is
// deterministic regardless of the wall clock.
func setCursor(p *Pager, end time.Time) {
	p.mu.Lock()
	p.nextEnd = end
	p.mu.Unlock()
}

func TestFetchNextWindow_WindowMathAndCursorAdvance(t *testing.T) {
	t.Parallel()

	fake := &fakeFetcher{items: []apod.Item{{Date: "2022-08-10"}}}
	store := &feed.Store{}
	p := New(fake, store, 3)
	setCursor(p, date(t, "2022-08-10"))

	if err := p.FetchNextWindow(context.Background()); err != nil {
		t.Fatalf("FetchNextWindow returned error: %v", err)
	}

	start, end := fake.call(0)
	if !start.Equal(date(t, "2022-08-07")) || !end.Equal(date(t, "2022-08-10")) {
		t.Fatalf("window = %s..%s, want 2022-08-07..2022-08-10",
			apod.FormatDate(start), apod.FormatDate(end))
	}
	if store.Len() != 1 {
		t.Fatalf("feed Len() = %d, want 1", store.Len())
	}

	// The next window must end the day before the last one started.
	if err := p.FetchNextWindow(context.Background()); err != nil {
		t.Fatalf("second FetchNextWindow returned error: %v", err)
	}
	start2, end2 := fake.call(1)
	if !end2.Equal(date(t, "2022-08-06")) {
		t.Fatalf("second window ends %s, want 2022-08-06", apod.FormatDate(end2))
	}
	if !start2.Equal(date(t, "2022-08-03")) {
		t.Fatalf("second window starts %s, want 2022-08-03", apod.FormatDate(start2))
	}
	if !end2.Before(start) {
		t.Fatal("windows overlap")
	}
}

func TestFetchNextWindow_ClampsAtArchiveStartThenExhausts(t *testing.T) {
	t.Parallel()

	fake := &fakeFetcher{}
	p := New(fake, &feed.Store{}, 30)
	setCursor(p, date(t, "1995-06-20"))

	if err := p.FetchNextWindow(context.Background()); err != nil {
		t.Fatalf("FetchNextWindow returned error: %v", err)
	}
	start, end := fake.call(0)
	if !start.Equal(apod.MinArchiveDate) {
		t.Fatalf("start = %s, want clamped to %s",
			apod.FormatDate(start), apod.FormatDate(apod.MinArchiveDate))
	}
	if !end.Equal(date(t, "1995-06-20")) {
		t.Fatalf("end = %s, want 1995-06-20", apod.FormatDate(end))
	}

	if !p.Exhausted() {
		t.Fatal("Exhausted() = false after paging past the archive start")
	}

	// Exhausted pagers stop calling the API entirely.
	if err := p.FetchNextWindow(context.Background()); err != nil {
		t.Fatalf("exhausted FetchNextWindow returned error: %v", err)
	}
	if fake.callCount() != 1 {
		t.Fatalf("API called %d times, want 1", fake.callCount())
	}
}

func TestFetchNextWindow_FailureLeavesCursorAndRetries(t *testing.T) {
	t.Parallel()

	boom := errors.New("api down")
	fake := &fakeFetcher{err: boom}
	store := &feed.Store{}
	p := New(fake, store, 7)
	setCursor(p, date(t, "2022-08-10"))

	if err := p.FetchNextWindow(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want the fetch error", err)
	}
	if store.Len() != 0 {
		t.Fatalf("feed Len() = %d after failure, want 0", store.Len())
	}
	snap := store.Snapshot()
	if snap.LastError == nil || snap.ConsecutiveFailures != 1 {
		t.Fatalf("snapshot = %+v, want recorded failure", snap)
	}

	// The cursor did not move, so the retry asks for the same window.
	fake.err = nil
	if err := p.FetchNextWindow(context.Background()); err != nil {
		t.Fatalf("retry returned error: %v", err)
	}
	s0, e0 := fake.call(0)
	s1, e1 := fake.call(1)
	if !s0.Equal(s1) || !e0.Equal(e1) {
		t.Fatalf("retry window %s..%s differs from failed window %s..%s",
			apod.FormatDate(s1), apod.FormatDate(e1), apod.FormatDate(s0), apod.FormatDate(e0))
	}
}

func TestFetchNextWindow_InFlightCallIsNoOp(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	entered := make(chan struct{})
	var once sync.Once
	fake := &fakeFetcher{
		block:  release,
		onCall: func() { once.Do(func() { close(entered) }) },
	}
	p := New(fake, &feed.Store{}, 7)
	setCursor(p, date(t, "2022-08-10"))

	done := make(chan error, 1)
	go func() { done <- p.FetchNextWindow(context.Background()) }()
	<-entered

	if !p.IsFetching() {
		t.Fatal("IsFetching() = false while a fetch is blocked in flight")
	}
	// A second trigger while the first is in flight returns immediately
	// without touching the API.
	if err := p.FetchNextWindow(context.Background()); err != nil {
		t.Fatalf("concurrent FetchNextWindow returned error: %v", err)
	}
	if fake.callCount() != 1 {
		t.Fatalf("API called %d times during overlap, want 1", fake.callCount())
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("blocked FetchNextWindow returned error: %v", err)
	}
	if p.IsFetching() {
		t.Fatal("IsFetching() = true after the fetch finished")
	}
}

func TestNew_DefaultsWindowDays(t *testing.T) {
	t.Parallel()

	p := New(&fakeFetcher{}, &feed.Store{}, 0)
	if p.windowDays != DefaultWindowDays {
		t.Fatalf("windowDays = %d, want %d", p.windowDays, DefaultWindowDays)
	}
}
