package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/countryfinder/internal/directory"
	"github.com/muurk/countryfinder/internal/logging"
	"github.com/muurk/countryfinder/internal/store"
)

// storeChangedMsg is delivered whenever the store reports a state change,
// including completions of fetches that run outside the Bubble Tea loop.
type storeChangedMsg struct{}

// browserKeyMap defines key bindings for the country browser
type browserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Refresh key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k browserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Refresh, k.Clear, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k browserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Refresh, k.Clear, k.Quit},
	}
}

func newBrowserKeyMap() browserKeyMap {
	return browserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "refresh"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Model is the country browser screen. It owns no country data: every
// render reads the latest store.Snapshot, and every user action is forwarded
// to the store as a command.
type Model struct {
	store   *store.Store
	ctx     context.Context
	changes chan struct{}

	snapshot store.Snapshot
	cursor   int
	offset   int

	// UI state
	Width   int
	Height  int
	Search  textinput.Model
	Spinner spinner.Model
	Help    help.Model
	Keys    browserKeyMap
}

// New creates the browser for s. Fetches started from the browser run under
// ctx.
func New(ctx context.Context, s *store.Store) Model {
	search := textinput.New()
	search.Placeholder = SearchPlaceholder
	search.Prompt = "Search: "
	search.PromptStyle = FocusedInputStyle
	search.Width = 40
	search.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	// Coalesce notifications: one pending wake-up is enough because the
	// model always re-reads the whole snapshot.
	changes := make(chan struct{}, 1)
	s.Subscribe(func(store.Snapshot) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	return Model{
		store:    s,
		ctx:      ctx,
		changes:  changes,
		snapshot: s.Snapshot(),
		Search:   search,
		Spinner:  sp,
		Help:     help.New(),
		Keys:     newBrowserKeyMap(),
	}
}

// Init starts the initial fetch, the spinner and the store watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.Spinner.Tick,
		m.refresh,
		waitForChange(m.changes),
	)
}

func (m Model) refresh() tea.Msg {
	m.store.Refresh(m.ctx)
	return nil
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Search.Width = max(10, msg.Width-16)
		m.syncCursor()
		return m, nil

	case storeChangedMsg:
		m.snapshot = m.store.Snapshot()
		m.syncCursor()
		return m, waitForChange(m.changes)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.syncCursor()
		return m, nil

	case key.Matches(msg, m.Keys.Down):
		if m.cursor < len(m.snapshot.Visible)-1 {
			m.cursor++
		}
		m.syncCursor()
		return m, nil

	case key.Matches(msg, m.Keys.Select):
		if c, ok := m.CursorCountry(); ok {
			logging.Debug("Country selected", zap.String("id", c.ID), zap.String("name", c.Name))
			m.store.Select(c.ID)
			m.snapshot = m.store.Snapshot()
		}
		return m, nil

	case key.Matches(msg, m.Keys.Refresh):
		m.store.Refresh(m.ctx)
		m.snapshot = m.store.Snapshot()
		return m, nil

	case key.Matches(msg, m.Keys.Clear):
		if m.Search.Value() == "" {
			return m, nil
		}
		m.Search.SetValue("")
		return m.applyQuery(), nil
	}

	before := m.Search.Value()
	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	if m.Search.Value() != before {
		m = m.applyQuery()
	}
	return m, cmd
}

// applyQuery forwards the search text to the store and resets the cursor.
func (m Model) applyQuery() Model {
	m.store.SetQuery(m.Search.Value())
	m.snapshot = m.store.Snapshot()
	m.cursor = 0
	m.offset = 0
	m.syncCursor()
	return m
}

// syncCursor keeps the cursor on a visible row and scrolls the window so the
// cursor stays on screen.
func (m *Model) syncCursor() {
	n := len(m.snapshot.Visible)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	rows := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset > max(0, n-rows) {
		m.offset = max(0, n-rows)
	}
}

// listHeight is the number of rows available to the list inside the frame.
func (m Model) listHeight() int {
	height := m.Height
	if height == 0 {
		height = DefaultHeight
	}
	// frame, header, title, search, status line and footer
	return max(3, height-14)
}

// Snapshot returns the store state the browser last rendered from.
func (m Model) Snapshot() store.Snapshot {
	return m.snapshot
}

// Cursor returns the index of the row under the cursor.
func (m Model) Cursor() int {
	return m.cursor
}

// CursorCountry returns the country under the cursor, if any row is visible.
func (m Model) CursorCountry() (directory.Country, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Visible) {
		return directory.Country{}, false
	}
	return m.snapshot.Visible[m.cursor], true
}

// View renders the browser
func (m Model) View() string {
	width, height := m.Width, m.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}

	return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), width, height)
}

func (m Model) buildContent() string {
	var b strings.Builder

	b.WriteString(RenderTitle(ListTitle))
	b.WriteString("\n\n")
	b.WriteString(m.Search.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")

	if msg := EmptyMessage(m.snapshot); msg != "" {
		b.WriteString(m.renderEmpty(msg))
		return b.String()
	}

	if m.snapshot.Status == store.Failed {
		b.WriteString(BannerStyle.Render("⚠ " + directory.UserMessage))
		b.WriteString("\n")
	}

	visible := m.snapshot.Visible
	end := min(len(visible), m.offset+m.listHeight())
	for i := m.offset; i < end; i++ {
		c := visible[i]
		b.WriteString(RenderItem(c.Name, i == m.cursor, m.snapshot.IsSelected(c.ID)))
		b.WriteString("\n")
	}
	if end < len(visible) {
		b.WriteString(SubtitleStyle.Render(fmt.Sprintf("    … %d more", len(visible)-end)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderStatus renders the one-line summary under the search box.
func (m Model) renderStatus() string {
	snap := m.snapshot

	var status string
	switch snap.Status {
	case store.Loading:
		status = m.Spinner.View() + " " + LoadingMessage
	case store.Failed:
		status = lipgloss.NewStyle().Foreground(ErrorColor).Render("✗ Last refresh failed")
	default:
		if snap.Query == "" {
			status = fmt.Sprintf("%d countries", snap.FullLen)
		} else {
			status = fmt.Sprintf("%d of %d countries", len(snap.Visible), snap.FullLen)
		}
	}

	for _, c := range snap.Visible {
		if snap.IsSelected(c.ID) {
			status += "  •  Selected: " + c.Name
			if c.Capital != "" {
				status += " (" + c.Capital + ")"
			}
			break
		}
	}

	return SubtitleStyle.Render(status)
}

func (m Model) renderEmpty(msg string) string {
	switch m.snapshot.EmptyState() {
	case store.EmptyFailed:
		return ErrorBoxStyle.Render("✗ " + msg)
	case store.EmptyLoading:
		return InfoBoxStyle.Render(m.Spinner.View() + " " + msg)
	case store.EmptyNoMatch:
		return WarningBoxStyle.Render(msg)
	default:
		return InfoBoxStyle.Render(msg)
	}
}

// Run starts the browser full screen and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, s *store.Store) error {
	program := tea.NewProgram(New(ctx, s), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("country browser: %w", err)
	}
	return nil
}
