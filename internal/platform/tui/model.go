package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/canvas-snake/internal/config"
	"github.com/vovakirdan/canvas-snake/internal/core"
	"github.com/vovakirdan/canvas-snake/internal/games/snake"
	"github.com/vovakirdan/canvas-snake/internal/loop"
	"github.com/vovakirdan/canvas-snake/internal/render"
	"github.com/vovakirdan/canvas-snake/internal/storage"
)

// HUD rows above and below the board.
const chromeRows = 2

// Options carries the host dependencies of a Model.
type Options struct {
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional run log
	Logger  *log.Logger    // Defaults to discarding
	Session string         // Generated when empty
}

// run is one game instance. A finished run is never resumed; restart
// replaces it.
type run struct {
	gen      int
	seed     int64
	game     *snake.Game
	sched    *loop.Scheduler
	screen   *core.Screen
	start    time.Time
	recorded bool
}

// Model is the Bubble Tea model hosting the snake game.
type Model struct {
	cfg       config.Config
	rt        core.RuntimeConfig
	style     render.Style
	store     *storage.Store
	logger    *log.Logger
	session   string
	keyMapper *KeyMapper
	help      help.Model

	score *Label
	fps   *Label

	run        *run
	gen        int
	scores     Scoreboard
	showScores bool
	width      int
	height     int
	status     string
	quitting   bool
}

// NewModel creates a model and builds the first game from cfg.
func NewModel(cfg config.Config, opts Options) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	palette, err := cfg.Theme.Palette()
	if err != nil {
		return Model{}, err
	}

	rt := opts.Runtime
	if rt.FrameRate <= 0 {
		rt.FrameRate = cfg.Timing.FrameRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	session := opts.Session
	if session == "" {
		session = uuid.NewString()
	}

	m := Model{
		cfg:       cfg,
		rt:        rt,
		style:     render.StyleFromPalette(palette),
		store:     opts.Store,
		logger:    logger.With("session", session),
		session:   session,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		score:     NewLabel("Score", "0"),
		fps:       NewLabel("FPS", "0"),
		width:     rt.ScreenW,
		height:    rt.ScreenH,
	}
	if err := m.newRun(time.Now()); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newRun builds a fresh game, renderer and scheduler.
func (m *Model) newRun(now time.Time) error {
	seed := m.rt.Seed
	if seed == 0 {
		seed = now.UnixNano()
	} else {
		seed += int64(m.gen)
	}

	game, err := snake.New(m.cfg, seed)
	if err != nil {
		return fmt.Errorf("tui: cannot start game: %w", err)
	}
	game.SetScoreSink(m.score)
	m.fps.SetText("0")

	cols := m.cfg.Theme.ColumnsPerCell
	screen := core.NewScreen(render.CanvasSize(game.Bounds(), cols))
	renderer := render.New(render.NewCanvas(screen, 0, 0, cols), game, m.style)
	renderer.Render()

	m.gen++
	m.run = &run{
		gen:    m.gen,
		seed:   seed,
		game:   game,
		sched:  loop.NewScheduler(game, renderer, m.fps, m.cfg.Timing.StepSeconds),
		screen: screen,
		start:  now,
	}
	m.status = ""
	m.logger.Debug("run started", "gen", m.gen, "seed", seed)
	return nil
}

// Init requests the first frame.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.run.gen, m.rt.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.showScores {
			var cmd tea.Cmd
			m.scores, cmd = m.scores.Update(msg)
			return m, cmd
		}
		return m, nil

	case FrameMsg:
		return m.handleFrame(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showScores {
		var cmd tea.Cmd
		m.scores, cmd = m.scores.Update(msg)
		if m.scores.Quitting() {
			m.quitting = true
			return m, tea.Quit
		}
		if m.scores.Closed() {
			m.showScores = false
		}
		return m, cmd
	}

	halted := m.run.sched.Halted()

	switch m.keyMapper.MapCommand(msg) {
	case CommandQuit:
		m.quitting = true
		return m, tea.Quit
	case CommandScreenshot:
		m.saveScreenshot()
		return m, nil
	case CommandRestart:
		if !halted {
			return m, nil
		}
		if err := m.newRun(time.Now()); err != nil {
			m.logger.Error("restart failed", "error", err)
			m.status = err.Error()
			return m, nil
		}
		return m, frameCmd(m.run.gen, m.rt.FrameRate)
	case CommandScores:
		if halted {
			m.scores = NewScoreboard(m.store, m.session, m.width, m.height)
			m.showScores = true
		}
		return m, nil
	}

	if halted {
		return m, nil
	}
	if code := m.keyMapper.MapKey(msg); code != core.KeyNone {
		accepted := m.run.game.OnKey(code)
		m.logger.Debug("key", "code", code, "accepted", accepted)
	}
	return m, nil
}

// handleFrame drives the scheduler with one frame timestamp.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	r := m.run
	if msg.Gen != r.gen || r.sched.Halted() {
		return m, nil
	}

	if r.sched.Frame(timestamp(r.start, msg.Time)) {
		return m, frameCmd(r.gen, m.rt.FrameRate)
	}

	m.finish(msg.Time)
	return m, nil
}

// finish records a halted run and draws the outcome over the board.
func (m *Model) finish(at time.Time) {
	r := m.run
	if r.recorded {
		return
	}
	r.recorded = true

	outcome := r.game.Outcome()
	score := r.game.Score()

	m.logger.Info("run ended",
		"outcome", outcome,
		"score", score,
		"length", len(r.game.Body()),
		"ticks", r.sched.Ticks(),
	)

	best := score
	if m.store != nil {
		_, err := m.store.SaveRun(storage.RunEntry{
			Session:  m.session,
			Score:    score,
			Outcome:  outcome.String(),
			Ticks:    r.sched.Ticks(),
			Length:   len(r.game.Body()),
			Duration: at.Sub(r.start),
		})
		if err != nil {
			m.logger.Warn("could not record run", "error", err)
		}
		if b, err := m.store.BestScore(m.session); err == nil {
			best = max(b, score)
		}
	}

	drawOutcome(r.screen, outcome, score, best)
}

// outcomeText returns the overlay title and reason line.
func outcomeText(o snake.Outcome, score int) (title, reason string) {
	switch o {
	case snake.OutcomeWin:
		return "You Win!", fmt.Sprintf("Reached %d points", score)
	case snake.OutcomeWallCollision:
		return "Game Over", "Hit the wall"
	case snake.OutcomeSelfCollision:
		return "Game Over", "Ran into yourself"
	default:
		return "Game Over", ""
	}
}

// drawOutcome paints a centered message box onto the board. A box wider
// than the board is pinned to its left edge.
func drawOutcome(s *core.Screen, o snake.Outcome, score, best int) {
	title, reason := outcomeText(o, score)
	lines := []string{
		title,
		reason,
		fmt.Sprintf("Score %d  Best %d", score, best),
		"r restart  tab scores",
	}

	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	bw, bh := w+4, len(lines)+2
	box := core.NewRect(
		core.Clamp((s.Width()-bw)/2, 0, max(s.Width()-bw, 0)),
		core.Clamp((s.Height()-bh)/2, 0, max(s.Height()-bh, 0)),
		bw, bh,
	)
	s.Paint(box, core.ColorBlack)
	s.DrawBox(box, core.ColorBrightWhite)

	titleColor := core.ColorRed
	if o.IsWin() {
		titleColor = core.ColorYellow
	}
	for i, l := range lines {
		fg := core.ColorWhite
		if i == 0 {
			fg = titleColor
		}
		x := box.X + (box.W-len([]rune(l)))/2
		s.DrawTextColored(x, box.Y+1+i, l, fg, core.ColorBlack)
	}
}

// saveScreenshot saves the current board to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))

	content := m.score.String() + "\n" + m.run.screen.String() + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}
	m.status = "saved " + path
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scores.View()
	}

	screen := m.run.screen
	if m.width > 0 && m.height > 0 && (m.width < screen.Width() || m.height < screen.Height()+chromeRows) {
		return m.tooSmallView(screen.Width(), screen.Height()+chromeRows)
	}

	scoreStyle := lipgloss.NewStyle().Bold(true)
	fpsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	left := scoreStyle.Render(m.score.String())
	right := fpsStyle.Render(m.fps.String())
	gap := max(screen.Width()-lipgloss.Width(left)-lipgloss.Width(right), 1)
	hud := left + lipgloss.NewStyle().Width(gap).Render("") + right

	footer := m.status
	if footer == "" {
		h := m.help
		h.ShowAll = m.run.sched.Halted()
		footer = h.View(m.keyMapper.Keys())
	}
	footer = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(footer)

	content := lipgloss.JoinVertical(lipgloss.Left, hud, RenderScreen(screen), footer)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// tooSmallView explains the minimum terminal size.
func (m Model) tooSmallView(needW, needH int) string {
	msg := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("203")).
		Render("Window too small")
	detail := fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, m.width, m.height)
	hint := "resize the terminal or lower board size / columns_per_cell"
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, msg, detail, hint))
}

// Session returns the session identifier runs are recorded under.
func (m Model) Session() string {
	return m.session
}

// Game returns the current game instance.
func (m Model) Game() *snake.Game {
	return m.run.game
}

// Scheduler returns the current game's frame scheduler.
func (m Model) Scheduler() *loop.Scheduler {
	return m.run.sched
}

// Screen returns the board raster of the current game.
func (m Model) Screen() *core.Screen {
	return m.run.screen
}

// ScoreText returns the HUD score value.
func (m Model) ScoreText() string {
	return m.score.Text()
}

// FPSText returns the HUD fps value.
func (m Model) FPSText() string {
	return m.fps.Text()
}

// ShowingScores reports whether the scoreboard is open.
func (m Model) ShowingScores() bool {
	return m.showScores
}

// Run starts the Bubble Tea program and returns the final model.
func Run(cfg config.Config, opts Options) (Model, error) {
	model, err := NewModel(cfg, opts)
	if err != nil {
		return Model{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}
