// Package window hosts the game in a desktop window using ebiten.
package window

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/diegok/paddleball/internal/config"
	"github.com/diegok/paddleball/internal/game"
)

// score labels, in world units from the center
const (
	scoreX = 100.0
	scoreY = 300.0
)

var bindings = []struct {
	key     ebiten.Key
	control game.Control
}{
	{ebiten.KeyArrowUp, game.ControlP2Up},
	{ebiten.KeyArrowDown, game.ControlP2Down},
	{ebiten.KeyW, game.ControlP1Up},
	{ebiten.KeyS, game.ControlP1Down},
}

var scoreFace = text.NewGoXFace(basicfont.Face7x13)

// Game adapts the simulation to ebiten.Game
type Game struct {
	state *game.State
	log   *slog.Logger
	field game.Field
	frame int
}

// NewGame creates a window host for the configured match
func NewGame(cfg *config.Config, logger *slog.Logger) *Game {
	return &Game{
		state: cfg.NewState(),
		log:   logger,
		field: game.Field{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)},
	}
}

// Update runs one frame. ebiten reports real key releases, so edges go to
// the state untouched.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.state.HandleKey(b.control, true)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			g.state.HandleKey(b.control, false)
		}
	}

	g.frame++
	ev := g.state.Update(g.field)
	if ev.Has(game.EventGoalP1) || ev.Has(game.EventGoalP2) {
		g.log.Info("goal", "frame", g.frame, "p1", g.state.P1Score, "p2", g.state.P2Score)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	p := g.state.Params
	g.fillAt(screen, p.PaddleAnchor(g.state.P1.Pos), p.PaddleWidth, p.PaddleHeight)
	g.fillAt(screen, p.PaddleAnchor(g.state.P2.Pos), p.PaddleWidth, p.PaddleHeight)
	g.fillAt(screen, p.BallAnchor(g.state.Ball.Pos), p.PaddleWidth, p.PaddleWidth)

	g.drawScore(screen, g.state.P1Score, game.Vec2{X: -scoreX, Y: scoreY})
	g.drawScore(screen, g.state.P2Score, game.Vec2{X: scoreX, Y: scoreY})
}

// fillAt draws a w x h rectangle whose top-left corner is the anchor
func (g *Game) fillAt(screen *ebiten.Image, anchor game.Vec2, w, h float64) {
	x, y := g.field.Project(anchor)
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), color.White, false)
}

func (g *Game) drawScore(screen *ebiten.Image, score int, at game.Vec2) {
	x, y := g.field.Project(at)
	op := &text.DrawOptions{}
	op.GeoM.Scale(3, 3)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, fmt.Sprintf("%d", score), scoreFace, op)
}

// Layout makes the field follow the window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.field = game.Field{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed
func Run(cfg *config.Config, logger *slog.Logger) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Paddleball")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(cfg, logger)
	logger.Info("game started", "seed", cfg.Seed, "width", cfg.Window.Width, "height", cfg.Window.Height)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}

	logger.Info("game ended", "frames", g.frame, "p1", g.state.P1Score, "p2", g.state.P2Score)
	return nil
}
