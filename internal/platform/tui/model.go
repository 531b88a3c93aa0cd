package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skybird/internal/audio"
	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/core"
	"github.com/vovakirdan/skybird/internal/games/skybird"
	"github.com/vovakirdan/skybird/internal/leaderboard"
	"github.com/vovakirdan/skybird/internal/storage"
)

// footerHeight is the number of rows used by the help bar.
const footerHeight = 1

// boardRefreshEvery is how often the panel re-reads a shared board.
const boardRefreshEvery = time.Second

// RunSaver records finished runs. *storage.Store implements it.
type RunSaver interface {
	SaveRun(run storage.Run) (int64, error)
}

// Options holds the collaborators of a game session. Every field is optional.
type Options struct {
	Board   *leaderboard.Board
	History RunSaver
	Sound   *audio.SoundManager
	Logger  *log.Logger
	Player  string // Pre-filled name in the game over dialog

	// Clock overrides time.Now for key events.
	Clock func() time.Time
}

// Model is the Bubble Tea model for a skybird session.
type Model struct {
	engine    *skybird.Engine
	cfg       config.SkybirdConfig
	runtime   core.RuntimeConfig
	screen    *core.Screen
	hold      *core.HoldTracker
	keyMapper *KeyMapper
	help      help.Model

	board       *leaderboard.Board
	entries     []leaderboard.Entry
	boardTable  table.Model
	lastRefresh time.Time

	history RunSaver
	sound   *audio.SoundManager
	running *atomic.Bool // Read by the music loop goroutine
	logger  *log.Logger
	player  string
	now     func() time.Time

	modal nameModal

	width, height int
	showPanel     bool
	quitting      bool
}

// NewModel creates a new Bubble Tea model for a skybird session.
func NewModel(cfg config.SkybirdConfig, rt core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	board := opts.Board
	if board == nil {
		board = leaderboard.Open(leaderboard.NewMemoryKV(),
			leaderboard.WithLimit(cfg.Leaderboard.Size),
			leaderboard.WithKey(cfg.Leaderboard.Key),
		)
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.NewSoundManager(cfg.Audio)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		engine:     skybird.New(cfg, rt.Seed),
		cfg:        cfg,
		runtime:    rt,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		hold:       core.NewHoldTracker(cfg.Input.ReleaseAfter),
		keyMapper:  NewKeyMapper(),
		help:       h,
		board:      board,
		boardTable: newBoardTable(board.Limit()),
		history:    opts.History,
		sound:      sound,
		running:    &atomic.Bool{},
		logger:     logger,
		player:     opts.Player,
		now:        clock,
		modal:      newNameModal(),
	}
	m.layout(rt.ScreenW, rt.ScreenH)
	m.refreshBoard(clock())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, m.now())

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	if m.modal.open {
		var cmd tea.Cmd
		m.modal.input, cmd = m.modal.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// layout sizes the playfield and decides whether the panel fits.
func (m *Model) layout(width, height int) {
	m.width, m.height = width, height
	m.runtime.ScreenW, m.runtime.ScreenH = width, height
	m.showPanel = width >= minWidthForPanel

	playW := width
	if m.showPanel {
		playW -= panelWidth + 1
	}
	m.screen.Resize(playW, height-footerHeight)
	m.help.Width = width
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if m.modal.open {
		return m.handleModalKey(msg, now)
	}

	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	if action == core.ActionActivate && m.hold.Press(now) {
		over := m.engine.Phase() == skybird.PhaseOver
		m.engine.ActivateDown(now)
		if over {
			// Restart keeps the held input
			m.engine.Restart(now)
		}
		m.handleEvents(now)
	}

	return m, nil
}

// handleModalKey routes keys while the game over dialog is open.
func (m Model) handleModalKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	// Autorepeat of a key held through the end of the run is not typing
	if action, _ := m.keyMapper.MapKey(msg); action == core.ActionActivate && m.hold.Held() {
		m.hold.Press(now)
		return m, nil
	}

	action, isQuit := m.keyMapper.MapModalKey(msg)
	if isQuit {
		return m.quit()
	}

	switch action {
	case core.ActionSubmit:
		m.submitName(now)
		return m, nil
	case core.ActionDismiss:
		m.modal.close()
		return m, nil
	}

	var cmd tea.Cmd
	m.modal.input, cmd = m.modal.input.Update(msg)
	return m, cmd
}

// submitName saves the dialog's name with the final score.
func (m *Model) submitName(now time.Time) {
	entries, err := m.board.Submit(m.modal.input.Value(), m.modal.score)
	if err != nil {
		if leaderboard.IsValidation(err) {
			m.modal.err = "Please enter a name."
			return
		}
		m.logger.Warn("could not save high score", "error", err)
		m.modal.err = "Could not save the score."
		return
	}

	m.entries = entries
	m.boardTable.SetRows(boardRows(entries))
	m.lastRefresh = now
	m.modal.close()
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if released, _ := m.hold.Poll(now); released {
		m.engine.ActivateUp()
		m.sound.Release(m.hold.LastSeen())
	} else if m.hold.Held() && m.engine.Phase() == skybird.PhaseRunning {
		m.sound.Holding(now)
	}

	m.engine.Update(now)
	m.handleEvents(now)

	if now.Sub(m.lastRefresh) >= boardRefreshEvery {
		m.refreshBoard(now)
	}

	return m, tickCmd(m.runtime.TickRate)
}

// handleEvents reacts to what the engine reported since the last call.
func (m *Model) handleEvents(now time.Time) {
	for _, ev := range m.engine.Events() {
		switch ev := ev.(type) {
		case skybird.StartedEvent, skybird.RestartedEvent:
			m.modal.close()
			m.running.Store(true)
			m.sound.StopMusic()
			m.sound.StartMusic(m.running.Load)

		case skybird.JumpedEvent:
			m.sound.Jump(now)

		case skybird.GameOverEvent:
			m.running.Store(false)
			m.sound.StopMusic()
			m.sound.GameOver()
			m.recordRun(ev)
			m.modal.openFor(ev.Score, m.player)
		}
	}
}

// recordRun stores a finished run in the history.
func (m *Model) recordRun(ev skybird.GameOverEvent) {
	m.logger.Debug("run finished", "score", ev.Score, "reason", ev.Reason, "elapsed", ev.Elapsed)
	if m.history == nil {
		return
	}

	_, err := m.history.SaveRun(storage.Run{
		Player:   m.player,
		Score:    ev.Score,
		Duration: time.Duration(ev.Elapsed * float64(time.Second)),
		Reason:   ev.Reason.String(),
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
}

// refreshBoard re-reads the leaderboard, which other sessions may have changed.
func (m *Model) refreshBoard(now time.Time) {
	m.entries = m.board.Entries()
	m.boardTable.SetRows(boardRows(m.entries))
	m.lastRefresh = now
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.running.Store(false)
	m.sound.StopMusic()
	return m, tea.Quit
}

// saveScreenshot saves the current playfield to a file.
func (m *Model) saveScreenshot() {
	m.engine.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".skybird", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("skybird_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	playH := m.screen.Height()

	var field string
	if m.modal.open {
		field = lipgloss.Place(m.screen.Width(), playH, lipgloss.Center, lipgloss.Center, m.modal.View())
	} else {
		m.engine.Render(m.screen)
		if m.engine.Phase() == skybird.PhaseNotStarted {
			drawInstructions(m.screen)
		}
		field = RenderScreen(m.screen, skyColor)
	}

	body := field
	if m.showPanel {
		body = lipgloss.JoinHorizontal(lipgloss.Top, field, " ", renderPanel(m.boardTable, m.entries, playH))
	}

	footer := helpStyle.Render(m.help.View(m.keyMapper.Keys()))
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// Phase returns the engine's current phase.
func (m Model) Phase() skybird.Phase {
	return m.engine.Phase()
}

// Score returns the current score.
func (m Model) Score() int {
	return m.engine.Score()
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local session.
func Run(cfg config.SkybirdConfig, rt core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, rt, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
