package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/astroshell/cosmonaut/internal/apod"
	"github.com/astroshell/cosmonaut/internal/feed"
	"github.com/astroshell/cosmonaut/internal/pipeline"
)

// windowMsg carries the feed snapshot after a pager window completes,
// successfully or not.
type windowMsg feed.Snapshot

// archiveMsg carries the result of an archive month or single-date fetch.
type archiveMsg struct {
	label string
	items []apod.Item
	err   error
}

// imageMsg carries resolved image bytes for the detail preview.
type imageMsg struct {
	url  string
	data []byte
	err  error
}

// hdSavedMsg reports the outcome of an HD download.
type hdSavedMsg struct {
	path string
	err  error
}

// maybeFetchMore returns a window-fetch command when the selection is
// near the end of the loaded feed and no fetch is already in flight.
// This is the infinite-scroll trigger; the pager's own guard makes a
// racing duplicate trigger harmless.
func (m Model) maybeFetchMore() tea.Cmd {
	if m.pager == nil || m.pager.IsFetching() || m.pager.Exhausted() {
		return nil
	}
	if !nearEnd(len(m.snapshot.Items), m.selected, fetchThreshold) {
		return nil
	}
	return m.fetchWindowCmd()
}

// nearEnd reports whether the selected row is within threshold rows of
// the end of the loaded feed.
func nearEnd(total, selected, threshold int) bool {
	return total-selected <= threshold
}

func (m Model) fetchWindowCmd() tea.Cmd {
	ctx, pg, store := m.ctx, m.pager, m.feed
	return func() tea.Msg {
		// Failure is already recorded in the feed store; the snapshot
		// carries it to the UI either way.
		_ = pg.FetchNextWindow(ctx)
		return windowMsg(store.Snapshot())
	}
}

// prefetchCmd warms the image cache for rows just below the selection.
func (m Model) prefetchCmd() tea.Cmd {
	if !m.showPreviews || m.pipeline == nil {
		return nil
	}
	items := upcoming(m.snapshot.Items, m.selected, 8)
	if len(items) == 0 {
		return nil
	}
	ctx, pl := m.ctx, m.pipeline
	return func() tea.Msg {
		pl.Prefetch(ctx, items, 3)
		return nil
	}
}

// upcoming returns up to n items starting at the selection.
func upcoming(items []apod.Item, selected, n int) []apod.Item {
	if selected < 0 || selected >= len(items) {
		return nil
	}
	end := min(selected+n, len(items))
	return items[selected:end]
}

func (m Model) archiveMonthCmd(base time.Time) tea.Cmd {
	ctx, client, resolver := m.ctx, m.client, m.resolver
	return func() tea.Msg {
		start, end := resolver.ResolveMonth(base)
		items, err := client.FetchRange(ctx, start, end)
		return archiveMsg{label: resolver.MonthLabel(base), items: items, err: err}
	}
}

func (m Model) archiveDateCmd(date time.Time) tea.Cmd {
	ctx, client, resolver := m.ctx, m.client, m.resolver
	return func() tea.Msg {
		item, err := client.FetchSingle(ctx, resolver.ResolveSingle(date))
		msg := archiveMsg{label: resolver.DateLabel(date), err: err}
		if err == nil {
			msg.items = []apod.Item{item}
		}
		return msg
	}
}

func (m Model) resolvePreviewCmd(item apod.Item) tea.Cmd {
	ctx, pl := m.ctx, m.pipeline
	return func() tea.Msg {
		data, err := pl.Resolve(ctx, item)
		return imageMsg{url: item.URL, data: data, err: err}
	}
}

func (m Model) downloadHDCmd(item apod.Item) tea.Cmd {
	ctx, pl, dir := m.ctx, m.pipeline, m.downloadDir
	return func() tea.Msg {
		data, err := pl.DownloadHD(ctx, item)
		if err != nil {
			return hdSavedMsg{err: err}
		}
		path, err := pipeline.SaveHD(dir, item, data)
		return hdSavedMsg{path: path, err: err}
	}
}
