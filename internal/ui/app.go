package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/astroshell/cosmonaut/internal/apod"
	"github.com/astroshell/cosmonaut/internal/archive"
	"github.com/astroshell/cosmonaut/internal/feed"
	"github.com/astroshell/cosmonaut/internal/imagecache"
	"github.com/astroshell/cosmonaut/internal/pager"
	"github.com/astroshell/cosmonaut/internal/pipeline"
	"github.com/astroshell/cosmonaut/internal/prefs"
)

// View represents the current active view.
type View int

const (
	ViewDiscover View = iota
	ViewArchive
	ViewDetail
)

// fetchThreshold is how close to the end of the loaded feed the
// selection may get before the next window fetch is triggered.
const fetchThreshold = 5

// Options configures the UI.
type Options struct {
	Context      context.Context
	Client       *apod.Client
	Pipeline     *pipeline.Pipeline
	Pager        *pager.Pager
	Feed         *feed.Store
	Cache        *imagecache.Cache
	Resolver     *archive.Resolver
	DownloadDir  string
	ThemeName    string
	PrefsPath    string
	ShowPreviews bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx         context.Context
	client      *apod.Client
	pipeline    *pipeline.Pipeline
	pager       *pager.Pager
	feed        *feed.Store
	cache       *imagecache.Cache
	resolver    *archive.Resolver
	downloadDir string
	prefsPath   string

	keys         keyMap
	theme        Theme
	styles       Styles
	currentView  View
	width        int
	height       int
	ready        bool
	showHelp     bool
	showPreviews bool

	// Discover state
	snapshot feed.Snapshot
	selected int
	spin     spinner.Model

	// Archive state
	archMonth    time.Time
	archLabel    string
	archItems    []apod.Item
	archSelected int
	archLoading  bool
	archErr      error
	dateInput    textinput.Model
	dateEntry    bool

	// Detail state
	detailFrom     View
	detailItem     apod.Item
	detailViewport viewport.Model
	preview        string
	previewLoading bool
	statusNote     string
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	theme := GetTheme(opts.ThemeName)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	input := textinput.New()
	input.Placeholder = "yyyy-mm-dd"
	input.CharLimit = len(apod.DateLayout)
	input.Width = len(apod.DateLayout) + 2

	now := time.Now().UTC()
	return Model{
		ctx:          ctx,
		client:       opts.Client,
		pipeline:     opts.Pipeline,
		pager:        opts.Pager,
		feed:         opts.Feed,
		cache:        opts.Cache,
		resolver:     opts.Resolver,
		downloadDir:  opts.DownloadDir,
		prefsPath:    opts.PrefsPath,
		keys:         defaultKeyMap(),
		theme:        theme,
		styles:       theme.Styles(),
		currentView:  ViewDiscover,
		showPreviews: opts.ShowPreviews,
		snapshot:     opts.Feed.Snapshot(),
		spin:         sp,
		archMonth:    time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		dateInput:    input,
	}
}

// Run starts the TUI and blocks until the user quits or the context is
// cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	program := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if cmd := m.maybeFetchMore(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.prefetchCmd())
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width, max(1, msg.Height-6))
		} else {
			m.detailViewport.Width = msg.Width
			m.detailViewport.Height = max(1, msg.Height-6)
		}
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case windowMsg:
		m.snapshot = feed.Snapshot(msg)
		return m, m.prefetchCmd()

	case archiveMsg:
		m.archLoading = false
		m.archErr = msg.err
		m.archLabel = msg.label
		if msg.err == nil {
			m.archItems = msg.items
			m.archSelected = 0
		}
		return m, nil

	case imageMsg:
		m.previewLoading = false
		if msg.url == m.detailItem.URL && msg.err == nil {
			m.preview = renderPreview(msg.data, m.previewWidth(), m.previewHeight())
		}
		return m, nil

	case hdSavedMsg:
		if msg.err != nil {
			m.statusNote = "HD download failed: " + msg.err.Error()
		} else {
			m.statusNote = "Saved " + msg.path
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	// Date entry grabs everything except escape and confirm.
	if m.dateEntry {
		return m.handleDateEntryKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, ShowPreviews: m.showPreviews})
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewDiscover):
		m.currentView = ViewDiscover
		return m, nil

	case key.Matches(msg, m.keys.ViewArchive):
		return m.enterArchive()

	case key.Matches(msg, m.keys.TogglePreviews):
		m.showPreviews = !m.showPreviews
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, ShowPreviews: m.showPreviews})
		}
		// Only image items have anything to resolve; a video URL would
		// just cache a placeholder under a non-image address.
		if m.currentView == ViewDetail && m.showPreviews && m.preview == "" && m.detailItem.IsImage() {
			return m, m.resolvePreviewCmd(m.detailItem)
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.currentView == ViewDetail {
			m.currentView = m.detailFrom
			m.preview = ""
			m.statusNote = ""
			return m, nil
		}
		m.currentView = ViewDiscover
		return m, nil
	}

	switch m.currentView {
	case ViewDiscover:
		return m.handleDiscoverKey(msg)
	case ViewArchive:
		return m.handleArchiveKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderFooter()

	var body string
	switch m.currentView {
	case ViewDiscover:
		body = m.renderDiscover()
	case ViewArchive:
		body = m.renderArchive()
	case ViewDetail:
		body = m.renderDetail()
	}
	return header + "\n" + body + "\n" + footer
}
