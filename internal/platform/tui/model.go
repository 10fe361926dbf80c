package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

const (
	// narrowCols is the terminal width below which the scene narrows too,
	// which slows the game down.
	narrowCols = 75

	// pixelsPerCol is the scene width of one cell on narrow terminals.
	pixelsPerCol = 8

	// chromeRows are the rows below the scene: status line and help.
	chromeRows   = 2
	minSceneRows = 6
)

// Options configures a play session.
type Options struct {
	Config    config.RunnerConfig // variant already applied
	Variant   config.Variant
	Theme     registry.Theme
	Runtime   core.RuntimeConfig
	Player    string
	Store     *storage.Store
	Audio     runner.Audio
	AudioCues bool
	DarkMode  bool
	HiDPI     bool // select the double density sprite sheet
	Debug     bool
	Logger    *log.Logger
}

// Model is the Bubble Tea model of one runner session.
type Model struct {
	opts    Options
	ctx     *runner.Context
	runner  *runner.Runner
	surface *TerminalSurface
	screen  *core.Screen
	sched   *frameScheduler
	input   *InputTranslator
	keys    KeyMap
	help    help.Model
	board   string

	width    int
	height   int
	embedded bool // hosted by SessionModel, back returns to its menu
	quitting bool
	back     bool
}

// NewModel creates the session and draws the waiting scene.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	g := opts.Config.Game
	surface := NewTerminalSurface(g.Width, g.Height)

	ctx := runner.NewContext(opts.Config, opts.Theme)
	ctx.Surface = surface
	ctx.Rand = core.NewRandom(opts.Runtime.Seed)
	ctx.Logger = opts.Logger.With("theme", opts.Theme.ID, "player", opts.Player)
	ctx.AudioCues = opts.AudioCues
	ctx.DarkMode = opts.DarkMode
	ctx.Debug = opts.Debug
	if opts.HiDPI {
		ctx.SetHiDPI(true)
	}

	sched := newFrameScheduler(opts.Runtime.TickRate)
	ropts := runner.Options{
		Scheduler: sched,
		Audio:     opts.Audio,
		Debug:     surface,
	}
	board := storage.BoardID(opts.Theme.ID, string(opts.Variant))
	if opts.Store != nil {
		ropts.Scores = opts.Store.Book(board, opts.Player)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	m := Model{
		opts:    opts,
		ctx:     ctx,
		runner:  runner.New(ctx, ropts),
		surface: surface,
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		sched:   sched,
		input:   NewInputTranslator(keys, opts.Config.Input),
		keys:    keys,
		help:    h,
		board:   board,
	}
	m.resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	return m
}

// Init loads the high score and starts the waiting animation.
func (m Model) Init() tea.Cmd {
	m.runner.InitializeHighScore()
	m.runner.Start()
	return m.sched.next()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if m.sched.deliver(msg) {
			m.runner.Update()
		}
		return m, m.sched.next()

	case releaseMsg:
		m.input.disarm()
		m.handle(m.input.Due(time.Now())...)
		return m, m.cmds()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, m.cmds()

	case tea.FocusMsg:
		m.runner.SetVisible(true)
		return m, m.cmds()

	case tea.BlurMsg:
		m.handle(m.input.Release()...)
		m.runner.SetVisible(false)
		return m, m.cmds()
	}

	return m, nil
}

func (m Model) handle(intents ...core.Intent) {
	for _, in := range intents {
		m.ctx.Logger.Debug("intent", "intent", in)
		m.runner.Handle(in)
	}
}

// cmds collects the frame and release timers that became due.
func (m Model) cmds() tea.Cmd {
	return tea.Batch(m.sched.next(), m.input.arm(time.Now()))
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		state := m.runner.State()
		if state.Playing && !state.GameOver {
			m.handle(core.PauseToggled)
		}
		m.back = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Theme):
		m.nextTheme()
		return m, m.cmds()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.ctx.Logger.Warn("screenshot", "err", err)
		}
		return m, nil
	}

	m.handle(m.input.Key(msg, time.Now())...)
	return m, m.cmds()
}

// handleMouse maps a left click: on the high score it asks for a reset,
// after a crash it restarts, otherwise it is a jump tap.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() {
		return m, nil
	}
	x := msg.X * m.runner.Width() / max(m.screen.Width(), 1)
	y := msg.Y * m.runner.Height() / max(m.screen.Height(), 1)

	switch {
	case m.runner.Meter().HitHighScore(x, y) && m.runner.Crashed():
		m.handle(core.ResetHighScore)
	case m.runner.Crashed():
		m.handle(core.RestartRequested)
	default:
		m.handle(m.input.Tap(time.Now())...)
	}
	return m, m.cmds()
}

// resize fits the scene to the terminal. Narrow terminals get a narrower
// scene, which pauses a run in progress.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	rows := max(height-chromeRows, minSceneRows)
	m.screen.Resize(width, rows)
	m.help.Width = width

	sceneW := m.opts.Config.Game.Width
	if width < narrowCols {
		sceneW = max(width*pixelsPerCol, 1)
	}
	m.runner.Resize(sceneW)
	m.surface.SetScene(m.runner.Width(), m.runner.Height())
}

// nextTheme swaps to the next registered theme at the next frame.
func (m Model) nextTheme() {
	themes := registry.List()
	if len(themes) < 2 {
		return
	}
	idx := 0
	for i, t := range themes {
		if t.ID == m.ctx.Theme.ID {
			idx = i
		}
	}
	next, err := registry.Create(themes[(idx+1)%len(themes)].ID)
	if err != nil {
		m.ctx.Logger.Warn("theme", "err", err)
		return
	}
	m.runner.SetTheme(next)
}

// saveScreenshot writes the current scene as plain text.
func (m Model) saveScreenshot() error {
	m.surface.Render(m.screen, m.ctx.Theme)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.ctx.Theme.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: cannot write %s: %w", path, err)
	}
	m.ctx.Logger.Info("screenshot saved", "path", path)
	return nil
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	noticeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.runner.State()
	m.surface.Render(m.screen, m.ctx.Theme)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen, state.Inverted))
	b.WriteString("\n")
	b.WriteString(m.statusLine(state))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) statusLine(state core.GameState) string {
	status := fmt.Sprintf("HI %05d  %05d  speed %.1f  %s", state.HighScore, state.Score, state.Speed, m.board)

	var notice string
	switch {
	case state.GameOver:
		notice = "GAME OVER  space or r to restart"
	case state.Paused:
		notice = "PAUSED  p to resume"
	case !state.Activated:
		notice = "press space to start"
	}
	if notice == "" {
		return statusStyle.Render(status)
	}
	return statusStyle.Render(status) + "  " + noticeStyle.Render(notice)
}

// Runner returns the hosted session.
func (m Model) Runner() *runner.Runner { return m.runner }

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool { return m.back }

// Run starts a local session and blocks until it ends. It reports whether
// the player asked to go back to the menu.
func Run(opts Options) (backToMenu bool, err error) {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
