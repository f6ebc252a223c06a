package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/registry"
	"github.com/vovakirdan/tui-puyo/internal/storage"
)

const fakeGameID = "tui_fake"

func init() {
	registry.Register(fakeGameID, func() registry.Game { return newFakeGame() })
}

// fakeGame ends after overAfter steps and restarts on ActionNewGame.
type fakeGame struct {
	steps     int
	resets    int
	resized   [2]int
	overAfter int
	state     core.GameState
	lastInput core.InputFrame
}

func newFakeGame() *fakeGame {
	return &fakeGame{overAfter: 3}
}

func (g *fakeGame) ID() string    { return fakeGameID }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Pieces() int   { return 7 }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.state = core.GameState{}
}

func (g *fakeGame) Resize(w, h int) {
	g.resized = [2]int{w, h}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.lastInput = in.Clone()
	if in.Has(core.ActionNewGame) {
		g.steps = 0
		g.state = core.GameState{}
		return core.StepResult{State: g.state}
	}
	if in.Has(core.ActionPause) && !g.state.GameOver {
		g.state.Paused = !g.state.Paused
	}
	if g.state.GameOver || g.state.Paused {
		return core.StepResult{State: g.state}
	}
	g.steps++
	g.state.Score += 100
	g.state.MaxChain = 2
	if g.steps >= g.overAfter {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE")
}

func (g *fakeGame) State() core.GameState { return g.state }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newModel(t *testing.T, g *fakeGame, store *storage.Store) GameModel {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1}
	m := NewGameModel(g, store, cfg, "alice", nil)
	m.Init()
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm
}

func tick(t *testing.T, m GameModel) GameModel {
	return update(t, m, TickMsg{Loop: m.loop})
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	g := newFakeGame()
	m := newModel(t, g, store)
	assert.Equal(t, 1, g.resets)

	for i := 0; i < 6; i++ {
		m = tick(t, m)
	}
	assert.True(t, m.State().GameOver)

	scores, err := store.TopScores(fakeGameID, 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 300, scores[0].Score)
	assert.Equal(t, 2, scores[0].MaxChain)
	assert.Equal(t, 7, scores[0].Pieces)
	assert.Equal(t, "alice", scores[0].Player)
	assert.Equal(t, 300, m.highScore)
}

func TestGameModelSavesAgainAfterNewGame(t *testing.T) {
	store := openStore(t)
	g := newFakeGame()
	m := newModel(t, g, store)

	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}
	require.True(t, m.State().GameOver)

	m = update(t, m, runeKey('n'))
	m = tick(t, m)
	assert.False(t, m.State().GameOver)

	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}
	require.True(t, m.State().GameOver)

	scores, err := store.TopScores(fakeGameID, 10)
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	g := newFakeGame()
	m := newModel(t, g, nil)

	m = update(t, m, TickMsg{Loop: m.loop + 1000})
	assert.Equal(t, 0, g.steps)

	m = tick(t, m)
	assert.Equal(t, 1, g.steps)
}

func TestGameModelInputClearedAfterTick(t *testing.T) {
	g := newFakeGame()
	m := newModel(t, g, nil)

	m = update(t, m, runeKey('a'))
	m = tick(t, m)
	assert.True(t, g.lastInput.Has(core.ActionLeft))

	tick(t, m)
	assert.False(t, g.lastInput.Has(core.ActionLeft))
}

func TestGameModelResize(t *testing.T) {
	g := newFakeGame()
	m := newModel(t, g, nil)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, [2]int{100, 40 - footerHeight}, g.resized)
	assert.Equal(t, 1, g.resets, "resizable games keep their session")
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 40-footerHeight, m.screen.Height())
}

func TestGameModelBack(t *testing.T) {
	g := newFakeGame()
	m := newModel(t, g, nil)
	m.embedded = true

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu(), "back is ignored while playing")
	m = tick(t, m)

	m = update(t, m, runeKey('p'))
	m = tick(t, m)
	require.True(t, m.State().Paused)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
	assert.False(t, m.IsQuitting())
}

func TestGameModelBackQuitsStandalone(t *testing.T) {
	g := newFakeGame()
	g.overAfter = 1
	m := newModel(t, g, nil)
	m = tick(t, m)
	require.True(t, m.State().GameOver)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(GameModel).IsQuitting())
	assert.NotNil(t, cmd)
}

func TestGameModelQuit(t *testing.T) {
	m := newModel(t, newFakeGame(), nil)
	next, cmd := m.Update(runeKey('q'))
	assert.True(t, next.(GameModel).IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestGameModelView(t *testing.T) {
	m := newModel(t, newFakeGame(), nil)
	view := m.View()
	assert.Contains(t, view, "FAKE")
	assert.Len(t, strings.Split(view, "\n"), 20-footerHeight+1)
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "AB")
	s.SetColored(2, 0, 'C', core.ColorRed)
	s.SetColored(3, 0, 'D', core.ColorRed)
	s.DrawTextColored(0, 1, "xy", core.Color(99))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "AB")
	assert.Contains(t, lines[0], "CD")
	assert.Contains(t, lines[1], "xy")
}
