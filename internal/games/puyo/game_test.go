package puyo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-puyo/internal/core"
	engine "github.com/vovakirdan/tui-puyo/internal/games/puyo/core"
	"github.com/vovakirdan/tui-puyo/internal/registry"
)

func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

// newTestGame starts a variant with no user config on disk.
func newTestGame(t *testing.T, variant string) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")

	g := New(variant)
	g.Reset(runtimeConfig())
	require.NoError(t, g.ConfigErr())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func steps(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(frame())
	}
}

func TestVariantsRegistered(t *testing.T) {
	for id, title := range map[string]string{
		IDClassic: "Puyo Puyo",
		IDArcade:  "Puyo Puyo Arcade",
	} {
		require.True(t, registry.Exists(id))
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
		assert.Equal(t, title, g.Title())
	}
}

func TestResetSpawnsPiece(t *testing.T) {
	classic := newTestGame(t, IDClassic)
	snap := classic.Snapshot()
	require.True(t, snap.HasActive)
	assert.Equal(t, engine.P(0, 2), snap.Active.Pivot)
	assert.Equal(t, engine.PhaseFalling, snap.Phase)
	assert.Equal(t, "embedded", classic.ConfigSource())

	arcade := newTestGame(t, IDArcade)
	assert.Equal(t, engine.P(1, 2), arcade.Snapshot().Active.Pivot)
}

func TestGravityFollowsFallInterval(t *testing.T) {
	g := newTestGame(t, IDClassic)
	require.Equal(t, 700*time.Millisecond, g.FallInterval())

	// 700ms at 60 frames per second is 42 frames.
	steps(g, 41)
	assert.Equal(t, 0, g.Snapshot().Active.Pivot.Row)

	steps(g, 1)
	assert.Equal(t, 1, g.Snapshot().Active.Pivot.Row)

	steps(g, 42)
	assert.Equal(t, 2, g.Snapshot().Active.Pivot.Row)
}

func TestActionsMapToCommands(t *testing.T) {
	g := newTestGame(t, IDClassic)

	g.Step(frame(core.ActionLeft))
	assert.Equal(t, 1, g.Snapshot().Active.Pivot.Col)

	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionRight))
	assert.Equal(t, 3, g.Snapshot().Active.Pivot.Col)

	g.Step(frame(core.ActionUp))
	assert.Equal(t, engine.OrientLeft, g.Snapshot().Active.Orient)

	g.Step(frame(core.ActionRotateCCW))
	assert.Equal(t, engine.OrientDown, g.Snapshot().Active.Orient)

	g.Step(frame(core.ActionRotateCW))
	assert.Equal(t, engine.OrientLeft, g.Snapshot().Active.Orient)

	g.Step(frame(core.ActionDown))
	assert.Equal(t, 1, g.Snapshot().Active.Pivot.Row)

	g.Step(frame(core.ActionHardDrop))
	snap := g.Snapshot()
	assert.Equal(t, 2, snap.Pieces)
	assert.Equal(t, 2, snap.Grid.FilledCount())
	assert.Equal(t, engine.P(0, 2), snap.Active.Pivot)
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, IDClassic)

	g.Step(frame(core.ActionPause))
	assert.True(t, g.State().Paused)

	before := g.Snapshot()
	g.Step(frame(core.ActionLeft, core.ActionHardDrop))
	steps(g, 200)
	assert.True(t, before.Equal(g.Snapshot()), "paused game does not advance")

	g.Step(frame(core.ActionPause))
	assert.False(t, g.State().Paused)
	g.Step(frame(core.ActionLeft))
	assert.Equal(t, 1, g.Snapshot().Active.Pivot.Col)
}

func TestNewGameAction(t *testing.T) {
	g := newTestGame(t, IDClassic)
	for i := 0; i < 3; i++ {
		g.Step(frame(core.ActionHardDrop))
	}
	require.Equal(t, 4, g.Pieces())

	g.Step(frame(core.ActionNewGame))

	snap := g.Snapshot()
	assert.Equal(t, 1, snap.Pieces)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.Grid.FilledCount())
	assert.True(t, snap.HasActive)
}

func TestGameOverStopsAndNewGameRestarts(t *testing.T) {
	g := newTestGame(t, IDClassic)

	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(frame(core.ActionHardDrop))
	}
	require.True(t, g.State().GameOver, "dropping in one column ends the game")
	assert.False(t, g.State().Paused)

	before := g.Snapshot()
	g.Step(frame(core.ActionHardDrop))
	steps(g, 100)
	assert.True(t, before.Equal(g.Snapshot()))

	g.Step(frame(core.ActionNewGame))
	assert.False(t, g.State().GameOver)
}

func TestArcadeCascadeIsStaged(t *testing.T) {
	g := newTestGame(t, IDArcade)

	g.Step(frame(core.ActionHardDrop))
	assert.Equal(t, engine.PhaseResolving, g.Snapshot().Phase)

	// One stage every stage_frames frames; the first frame already counted.
	steps(g, 4)
	assert.Equal(t, engine.PhaseResolving, g.Snapshot().Phase)

	steps(g, 1)
	assert.Equal(t, engine.PhaseFalling, g.Snapshot().Phase)
	assert.Equal(t, 2, g.Pieces())
}

func TestTooSmallScreen(t *testing.T) {
	g := newTestGame(t, IDClassic)
	g.Resize(20, 10)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Terminal too small")

	before := g.Snapshot()
	steps(g, 100)
	assert.True(t, before.Equal(g.Snapshot()), "simulation holds while the screen is too small")

	g.Resize(80, 24)
	screen = core.NewScreen(80, 24)
	g.Render(screen)
	assert.NotContains(t, screen.String(), "Terminal too small")
	assert.Contains(t, screen.String(), "SCORE")
}

func TestRenderHidesHiddenRows(t *testing.T) {
	g := newTestGame(t, IDClassic)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	// The pivot sits in the hidden row: only the child and the two
	// preview cells are drawn.
	assert.Equal(t, 3, strings.Count(out, string(CellChar)))
	assert.Contains(t, out, "Puyo Puyo")
	assert.Contains(t, out, "NEXT")
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, IDClassic)
	screen := core.NewScreen(80, 24)

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	assert.NotContains(t, screen.String(), "PAUSED")

	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(frame(core.ActionHardDrop))
	}
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
}

func TestDifficultyPresetSpeedsUpFall(t *testing.T) {
	g := newTestGame(t, IDClassic)
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g.Reset(runtimeConfig())
	assert.Less(t, g.FallInterval(), 700*time.Millisecond)
}

func TestCustomConfigPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "fast.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timing:\n  fall_interval_ms: 200\n"), 0o644))
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New(IDClassic)
	g.Reset(runtimeConfig())
	require.NoError(t, g.ConfigErr())
	assert.Equal(t, path, g.ConfigSource())
	assert.Equal(t, 200*time.Millisecond, g.FallInterval())

	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	g.Reset(runtimeConfig())
	assert.Error(t, g.ConfigErr())
	assert.True(t, g.Snapshot().HasActive, "falls back to defaults")
}
