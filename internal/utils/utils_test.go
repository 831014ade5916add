package utils

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{4*math.Pi + 1, 1},
	}
	for _, c := range cases {
		got := NormalizeAngle(c.in)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTurnTowards(t *testing.T) {
	if got := TurnTowards(0, 1, 0.25); math.Abs(got-0.25) > 1e-9 {
		t.Fatalf("limited turn = %v, want 0.25", got)
	}
	if got := TurnTowards(0, -1, 0.25); math.Abs(got+0.25) > 1e-9 {
		t.Fatalf("limited turn = %v, want -0.25", got)
	}
	if got := TurnTowards(0, 0.1, 0.25); math.Abs(got-0.1) > 1e-9 {
		t.Fatalf("short turn should land on target, got %v", got)
	}
	// across the ±π seam the short way round is taken
	got := TurnTowards(3.0, -3.0, 0.1)
	if math.Abs(AngleDiff(3.0, got)-0.1) > 1e-9 {
		t.Fatalf("seam turn went the long way: %v", got)
	}
}

func TestPRNGSeeded(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
	if a.Chance(0) || !a.Chance(1) {
		t.Fatalf("Chance ignores certain outcomes")
	}
	if h := a.Angle(); h < 0 || h >= 2*math.Pi {
		t.Fatalf("Angle out of range: %v", h)
	}
}
