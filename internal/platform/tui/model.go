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

	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/registry"
	"github.com/vovakirdan/tui-puyo/internal/storage"
)

// footerHeight is the number of rows below the game screen used by the help bar.
const footerHeight = 1

// resizer is implemented by games that can change screen size without
// restarting the session.
type resizer interface {
	Resize(width, height int)
}

// pieceCounter is implemented by games that report how many pieces were played.
type pieceCounter interface {
	Pieces() int
}

// configReporter is implemented by games that load an external config.
type configReporter interface {
	ConfigSource() string
	ConfigErr() error
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel runs one game on the tick loop. It is used both for local
// play and inside an SSH session, where Back returns to the menu.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	highScore  int
	loop       uint64 // Tick loop identifier
	embedded   bool   // Back returns to a parent model instead of quitting
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// NewGameModel creates a game model. A nil logger discards log output.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:       game,
		store:      store,
		logger:     logger,
		config:     cfg,
		player:     player,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		loop:       nextLoopID(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	m.highScore = m.loadHighScore()
	return m
}

// gameHeight is the screen height left for the game after the footer.
func (m GameModel) gameHeight() int {
	return max(0, m.config.ScreenH-footerHeight)
}

// gameConfig returns the runtime config as seen by the game.
func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
}

func (m GameModel) loadHighScore() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "game", m.game.ID(), "error", err)
		return 0
	}
	return best
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logConfig()
	return tickCmd(m.config.TickRate, m.loop)
}

// logConfig reports where the game config came from and any fallback.
func (m GameModel) logConfig() {
	rep, ok := m.game.(configReporter)
	if !ok {
		return
	}
	if err := rep.ConfigErr(); err != nil {
		m.logger.Warn("config fallback", "game", m.game.ID(), "source", rep.ConfigSource(), "error", err)
		return
	}
	m.logger.Debug("config loaded", "game", m.game.ID(), "source", rep.ConfigSource())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when it is paused or over
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.gameHeight())
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, m.gameHeight())
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.finishGame()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// finishGame logs the result and records it in the score store.
func (m *GameModel) finishGame() {
	res := storage.Result{
		Variant:  m.game.ID(),
		Player:   m.player,
		Score:    m.gameState.Score,
		MaxChain: m.gameState.MaxChain,
	}
	if pc, ok := m.game.(pieceCounter); ok {
		res.Pieces = pc.Pieces()
	}

	m.logger.Info("game over",
		"game", res.Variant,
		"player", res.Player,
		"score", res.Score,
		"chains", m.gameState.Chains,
		"max_chain", res.MaxChain,
		"pieces", res.Pieces,
	)

	if res.Score <= 0 || m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(res); err != nil {
		m.logger.Error("could not save score", "game", res.Variant, "error", err)
		return
	}
	m.highScore = max(m.highScore, res.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".puyo", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: write failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keyMapper.Keys())
	if m.highScore > 0 {
		footer += helpStyle.Render(fmt.Sprintf("  •  best %d", m.highScore))
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the last reported game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a local Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, player, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
