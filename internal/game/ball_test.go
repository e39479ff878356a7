package game

import (
	"math"
	"testing"
)

func TestBall_Move(t *testing.T) {
	ball := Ball{Pos: Vec2{10, 20}, Vel: Vec2{1, -0.5}}

	ball.Move()

	if ball.Pos.X != 11.0 {
		t.Errorf("expected X=11.0, got %f", ball.Pos.X)
	}
	if ball.Pos.Y != 19.5 {
		t.Errorf("expected Y=19.5, got %f", ball.Pos.Y)
	}
}

func TestBall_BounceVertical(t *testing.T) {
	ball := Ball{Vel: Vec2{0.5, 0.3}}

	ball.BounceVertical()

	if ball.Vel.X != 0.5 {
		t.Errorf("expected VX=0.5 (unchanged), got %f", ball.Vel.X)
	}
	if ball.Vel.Y != -0.3 {
		t.Errorf("expected VY=-0.3, got %f", ball.Vel.Y)
	}
}

func TestRespawn_Scripted(t *testing.T) {
	tests := []struct {
		name   string
		signs  []float64
		scalar float64
		want   Vec2
	}{
		{"right and up", []float64{1, 1}, 0.5, Vec2{3, 1.5}},
		{"left and down", []float64{-1, -1}, 0.25, Vec2{-3, -0.75}},
		{"right and down", []float64{1, -1}, 0.9, Vec2{3, -2.7}},
		{"flat serve", []float64{-1, 1}, 0, Vec2{-3, 0}},
	}

	p := DefaultParams()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scriptedRand{signs: tt.signs, floats: []float64{tt.scalar}}
			pos, vel := p.Respawn(rng)

			if pos != (Vec2{}) {
				t.Errorf("expected position at center, got %+v", pos)
			}
			if !approxEqual(vel.X, tt.want.X) || !approxEqual(vel.Y, tt.want.Y) {
				t.Errorf("expected velocity %+v, got %+v", tt.want, vel)
			}
		})
	}
}

func TestRespawn_SpeedBounds(t *testing.T) {
	p := DefaultParams()
	rng := NewRandSource(42)

	for i := 0; i < 1000; i++ {
		_, vel := p.Respawn(rng)
		if math.Abs(vel.X) != DefaultBallHorizontalSpeed {
			t.Fatalf("serve %d: expected |VX|=%f, got %f", i, DefaultBallHorizontalSpeed, vel.X)
		}
		if math.Abs(vel.Y) > DefaultBallHorizontalSpeed {
			t.Fatalf("serve %d: expected |VY|<=%f, got %f", i, DefaultBallHorizontalSpeed, vel.Y)
		}
	}
}

func TestRespawn_SeedIsReproducible(t *testing.T) {
	p := DefaultParams()
	a := NewRandSource(7)
	b := NewRandSource(7)

	for i := 0; i < 20; i++ {
		_, va := p.Respawn(a)
		_, vb := p.Respawn(b)
		if va != vb {
			t.Fatalf("serve %d differs: %+v vs %+v", i, va, vb)
		}
	}
}

func TestBall_Reset(t *testing.T) {
	ball := Ball{Pos: Vec2{100, 100}, Vel: Vec2{10, 10}}
	rng := &scriptedRand{signs: []float64{-1, 1}, floats: []float64{0.5}}

	ball.Reset(DefaultParams(), rng)

	if ball.Pos != (Vec2{}) {
		t.Errorf("expected ball at center, got %+v", ball.Pos)
	}
	if ball.Vel.X != -3 || ball.Vel.Y != 1.5 {
		t.Errorf("expected velocity (-3, 1.5), got %+v", ball.Vel)
	}
}
