package spacesim

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestNormDotCross(t *testing.T) {
	i := []float64{1, 0, 0}
	j := []float64{0, 1, 0}
	k := []float64{0, 0, 1}
	if !floats.EqualWithinAbs(norm([]float64{3, 4, 0}), 5, 1e-12) {
		t.Fatal("norm failed")
	}
	if !floats.EqualWithinAbs(dot(i, j), 0, 1e-12) {
		t.Fatal("dot of orthogonal vectors must be zero")
	}
	if !floats.Equal(cross(i, j), k) {
		t.Fatal("i x j != k")
	}
	if !floats.Equal(cross(j, k), i) {
		t.Fatal("j x k != i")
	}
}

func TestDegRad(t *testing.T) {
	if !floats.EqualWithinAbs(Deg2rad(180), math.Pi, 1e-12) {
		t.Fatal("Deg2rad(180) != π")
	}
	if !floats.EqualWithinAbs(Deg2rad(-90), 3*math.Pi/2, 1e-12) {
		t.Fatal("Deg2rad(-90) != 3π/2")
	}
	if !floats.EqualWithinAbs(Rad2deg(math.Pi), 180, 1e-12) {
		t.Fatal("Rad2deg(π) != 180")
	}
	if !floats.EqualWithinAbs(Rad2deg(Deg2rad(237.5)), 237.5, 1e-12) {
		t.Fatal("Rad2deg/Deg2rad roundtrip failed")
	}
}
