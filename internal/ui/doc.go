// Package ui provides the Bubble Tea terminal interface for Cosmonaut.
//
// # Views
//
// Three views share one root model:
//
//   - Discover: a newest-first infinite-scroll feed of APOD entries.
//     When the selection comes within a few rows of the end of the
//     loaded feed, the next backward date window is fetched in the
//     background and appended.
//   - Archive: a month-at-a-time browser with "[" and "]" month
//     navigation and "/" jump-to-date entry.
//   - Detail: title, date, copyright, and explanation for one item,
//     with an optional half-block image preview and HD download.
//
// # Event flow
//
// All network work runs inside tea.Cmd closures; Update never blocks.
// Results come back as messages: windowMsg (a fresh feed snapshot after
// a pager window), archiveMsg (a month or single-date fetch), imageMsg
// (resolved preview bytes), and hdSavedMsg (HD download outcome). Fetch
// failures surface as a cleared spinner plus an offline note once they
// repeat; the feed itself is never discarded.
package ui
