package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/paddleball/internal/game"
)

const (
	BallChar   = '\u25A0' // ■
	PaddleChar = '\u2588' // █
	NetChar    = '|'

	scoreX = 100.0 // score labels sit this far left and right of the center
)

// Scale maps world units onto terminal cells
type Scale struct {
	CellWidth  float64
	CellHeight float64
}

// Field returns the play field covered by a cols x rows terminal
func (sc Scale) Field(cols, rows int) game.Field {
	return game.Field{
		Width:  float64(cols) * sc.CellWidth,
		Height: float64(rows) * sc.CellHeight,
	}
}

// Cell returns the terminal cell holding a world position
func (sc Scale) Cell(field game.Field, pos game.Vec2) (col, row int) {
	x, y := field.Project(pos)
	return int(math.Floor(x / sc.CellWidth)), int(math.Floor(y / sc.CellHeight))
}

// span returns how many cells a length covers, at least one
func span(length, cell float64) int {
	n := int(math.Ceil(length / cell))
	if n < 1 {
		n = 1
	}
	return n
}

// Renderer draws the simulation onto a terminal screen
type Renderer struct {
	screen *Screen
	scale  Scale
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen, scale Scale) *Renderer {
	return &Renderer{screen: screen, scale: scale}
}

// Field returns the play field of the current terminal size
func (r *Renderer) Field() game.Field {
	w, h := r.screen.Size()
	return r.scale.Field(w, h)
}

// RenderGame draws one frame. It only reads the state.
func (r *Renderer) RenderGame(s *game.State, field game.Field) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 0, screenW, screenH, courtStyle, ' ')

	centerX := screenW / 2
	lineStyle := courtStyle.Foreground(tcell.ColorDarkGray)
	for y := 1; y < screenH-1; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, NetChar)
	}

	bodyStyle := courtStyle.Foreground(tcell.ColorWhite)
	r.drawPaddle(s.Params, s.P1, field, bodyStyle)
	r.drawPaddle(s.Params, s.P2, field, bodyStyle)

	r.drawBall(s.Params, s.Ball, field, bodyStyle)

	r.renderScores(s, field, screenW)

	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, screenH-1, screenW, 1, statusStyle, ' ')
	r.screen.DrawText(1, screenH-1, "W/S left | Up/Down right | q quit", statusStyle)

	r.screen.Show()
}

// drawPaddle fills the cells covered by a paddle, starting at its anchor
func (r *Renderer) drawPaddle(p game.Params, paddle game.Paddle, field game.Field, style tcell.Style) {
	col, row := r.scale.Cell(field, p.PaddleAnchor(paddle.Pos))
	cols := span(p.PaddleWidth, r.scale.CellWidth)
	rows := span(p.PaddleHeight, r.scale.CellHeight)
	r.screen.FillRect(col, row, cols, rows, style, PaddleChar)
}

// drawBall fills the cells covered by the ball, starting at its anchor
func (r *Renderer) drawBall(p game.Params, ball game.Ball, field game.Field, style tcell.Style) {
	col, row := r.scale.Cell(field, p.BallAnchor(ball.Pos))
	cols := span(p.PaddleWidth, r.scale.CellWidth)
	rows := span(p.PaddleWidth, r.scale.CellHeight)
	r.screen.FillRect(col, row, cols, rows, style, BallChar)
}

func (r *Renderer) renderScores(s *game.State, field game.Field, screenW int) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite).Bold(true)

	left := fmt.Sprintf("%d", s.P1Score)
	col, _ := r.scale.Cell(field, game.Vec2{X: -scoreX})
	r.screen.DrawText(col-len(left)+1, 0, left, style)

	right := fmt.Sprintf("%d", s.P2Score)
	col, _ = r.scale.Cell(field, game.Vec2{X: scoreX})
	if col+len(right) > screenW {
		col = screenW - len(right)
	}
	r.screen.DrawText(col, 0, right, style)
}
