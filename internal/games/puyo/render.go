package puyo

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-puyo/internal/core"
	engine "github.com/vovakirdan/tui-puyo/internal/games/puyo/core"
)

// Visual characters for rendering
const (
	CellChar    = '●'
	PopChar     = '✦'
	EmptyChar   = '·'
	cellWidth   = 2 // Screen columns per board column
	hudWidth    = 18
	hudGap      = 2
	titleHeight = 2
)

// cellColors maps piece colors to screen colors.
var cellColors = map[engine.Color]core.Color{
	engine.ColorRed:    core.ColorRed,
	engine.ColorGreen:  core.ColorGreen,
	engine.ColorBlue:   core.ColorBlue,
	engine.ColorYellow: core.ColorYellow,
	engine.ColorPurple: core.ColorMagenta,
}

// boardSize returns the bordered board size in screen cells.
func (g *Game) boardSize() (int, int) {
	opts := g.engine.Options()
	return opts.Cols*cellWidth + 2, opts.VisibleRows() + 2
}

// layoutSize returns the screen size needed for the board and the HUD.
func (g *Game) layoutSize() (int, int) {
	bw, bh := g.boardSize()
	return bw + hudGap + hudWidth, bh + titleHeight
}

// Render draws the visible rows, the falling piece, the HUD and overlays.
// The hidden rows above the play area are never drawn.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	w, h := g.layoutSize()
	ox := (dst.Width() - w) / 2
	oy := (dst.Height() - h) / 2

	dst.DrawTextColored(ox, oy, g.Title(), core.ColorWhite)

	bw, bh := g.boardSize()
	board := core.NewRect(ox, oy+titleHeight, bw, bh)
	dst.DrawBox(board, core.ColorGray)

	snap := g.engine.Snapshot()
	hidden := g.engine.Options().HiddenRows

	for row := hidden; row < snap.Grid.Rows(); row++ {
		for col := 0; col < snap.Grid.Cols(); col++ {
			drawCell(dst, board, row-hidden, col, snap.Grid.Get(row, col))
		}
	}

	for _, group := range g.engine.Removing() {
		for _, pos := range group.Cells {
			if pos.Row >= hidden {
				x, y := cellOrigin(board, pos.Row-hidden, pos.Col)
				dst.SetColored(x, y, PopChar, cellColors[group.Color])
			}
		}
	}

	if snap.HasActive {
		for _, pos := range snap.Active.Cells() {
			c, _ := snap.Active.Covers(pos)
			if pos.Row >= hidden {
				drawCell(dst, board, pos.Row-hidden, pos.Col, c)
			}
		}
	}

	g.renderHUD(dst, board.Right()+hudGap, board.Y, snap)
	g.renderOverlay(dst, board, snap)
}

// cellOrigin returns the screen position of a visible board cell.
func cellOrigin(board core.Rect, row, col int) (int, int) {
	return board.X + 1 + col*cellWidth, board.Y + 1 + row
}

func drawCell(dst *core.Screen, board core.Rect, row, col int, c engine.Color) {
	x, y := cellOrigin(board, row, col)
	if c == engine.Empty {
		dst.SetColored(x, y, EmptyChar, core.ColorGray)
		return
	}
	dst.SetColored(x, y, CellChar, cellColors[c])
}

func (g *Game) renderHUD(dst *core.Screen, x, y int, snap engine.Snapshot) {
	dst.DrawTextColored(x, y, "SCORE", core.ColorGray)
	dst.DrawTextColored(x, y+1, strconv.Itoa(snap.Score), core.ColorYellow)

	dst.DrawTextColored(x, y+3, "NEXT", core.ColorGray)
	if snap.HasNext {
		dst.SetColored(x+1, y+4, CellChar, cellColors[snap.Next.First])
		dst.SetColored(x+1, y+5, CellChar, cellColors[snap.Next.Second])
	}

	last := g.engine.LastChain().Chains()
	dst.DrawTextColored(x, y+7, fmt.Sprintf("CHAIN  %d", last), core.ColorGray)
	if last > 1 {
		dst.DrawTextColored(x+9, y+7, fmt.Sprintf("%d-CHAIN!", last), core.ColorCyan)
	}
	dst.DrawTextColored(x, y+8, fmt.Sprintf("MAX    %d", snap.MaxChain), core.ColorGray)
	dst.DrawTextColored(x, y+9, fmt.Sprintf("CHAINS %d", snap.Chains), core.ColorGray)
	dst.DrawTextColored(x, y+10, fmt.Sprintf("PIECES %d", snap.Pieces), core.ColorGray)
}

func (g *Game) renderOverlay(dst *core.Screen, board core.Rect, snap engine.Snapshot) {
	_, cy := board.Center()
	switch {
	case snap.GameOver:
		centerIn(dst, board, cy-1, "GAME OVER", core.ColorRed)
		centerIn(dst, board, cy+1, "N: new game", core.ColorWhite)
	case !snap.Running:
		centerIn(dst, board, cy, "PAUSED", core.ColorYellow)
	}
}

// centerIn draws text centered horizontally inside r.
func centerIn(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	x := r.X + (r.W-len([]rune(text)))/2
	dst.DrawTextColored(x, y, text, c)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.layoutSize()
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Terminal too small")
	dst.DrawTextCentered(mid, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()))
}
