package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

const (
	sidebarMinWidth = 80 // terminal width that fits the board sidebar
	sidebarWidth    = 26
	boardRuns       = 100 // runs loaded per board
)

// Board is one scoreboard: a theme played in one variant.
type Board struct {
	ID    string
	Title string
}

// Boards lists the scoreboards in menu order.
func Boards() []Board {
	items := MenuItems()
	boards := make([]Board, 0, len(items))
	for _, it := range items {
		title := it.Title
		if it.Variant == config.VariantSlow {
			title += " (slow)"
		}
		boards = append(boards, Board{
			ID:    storage.BoardID(it.ThemeID, string(it.Variant)),
			Title: title,
		})
	}
	return boards
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next board")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev board")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the runs of one board at a time.
type ScoreboardModel struct {
	boards    []Board
	cursor    int
	store     *storage.Store
	stats     map[string]*storage.BoardStats
	runs      []storage.ScoreEntry
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over store, which may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		boards: Boards(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	if store != nil {
		if stats, err := store.AllStats(); err == nil {
			m.stats = stats
		}
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) sidebar() bool { return m.width >= sidebarMinWidth }

func (m ScoreboardModel) board() Board {
	if len(m.boards) == 0 {
		return Board{}
	}
	return m.boards[m.cursor]
}

func (m *ScoreboardModel) newTable() table.Model {
	avail := m.width - 4
	if m.sidebar() {
		avail -= sidebarWidth + 2
	}
	player := min(max(avail-6-8-14-8, 8), 20)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: player},
			{Title: "Score", Width: 8},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the runs of the current board into the table.
func (m *ScoreboardModel) load() {
	m.runs = nil
	if m.store != nil && len(m.boards) > 0 {
		if runs, err := m.store.TopScores(m.board().ID, boardRuns); err == nil {
			m.runs = runs
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			fmt.Sprintf("%05d", r.Score),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) step(delta int) {
	if len(m.boards) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.boards)) % len(m.boards)
	m.load()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := "HIGH SCORES - " + m.board().Title
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width, len([]rune(title))))
	b.WriteString("\n\n")

	runs := boardPanelStyle.Render(m.summary() + "\n\n" + m.runsView())
	if m.sidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), "  ", runs))
	} else {
		fmt.Fprintf(&b, "< %s >  (%d/%d)\n", m.board().Title, m.cursor+1, len(m.boards))
		b.WriteString(runs)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// sidebarView lists every board with its best score.
func (m ScoreboardModel) sidebarView() string {
	var sb strings.Builder
	sb.WriteString("Boards\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	for i, bd := range m.boards {
		best := "  -  "
		if s, ok := m.stats[bd.ID]; ok {
			best = fmt.Sprintf("%05d", s.BestScore)
		}
		name := bd.Title
		if w := sidebarWidth - 13; len(name) > w {
			name = name[:w-1] + "."
		}
		line := fmt.Sprintf("  %-*s %s", sidebarWidth-13, name, best)
		if i == m.cursor {
			line = boardTitleStyle.Render(">" + line[1:])
		}
		sb.WriteString("\n" + line)
	}
	return boardPanelStyle.Width(sidebarWidth).Render(sb.String())
}

// summary is the one-line statistics of the current board.
func (m ScoreboardModel) summary() string {
	s, ok := m.stats[m.board().ID]
	if !ok {
		return "no runs yet"
	}
	return fmt.Sprintf("runs %d  best %05d  avg %.0f  last %s",
		s.RunsCount, s.BestScore, s.AvgScore, s.LastPlayed.Format("Jan 02"))
}

func (m ScoreboardModel) runsView() string {
	if len(m.runs) == 0 {
		return boardEmptyStyle.Render("No scores recorded yet.\nGo for a run to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard runs the scoreboard screen and reports whether the user
// went back to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
