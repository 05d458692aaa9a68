package spacesim

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DistanceScale is the fixed upscaling factor applied to both semi-axes of
	// every orbit. Astronomical units are far too close together on screen, so
	// all orbits are blown up by the same amount to keep relative proportions.
	DistanceScale = 100
)

// OrbitalElements defines the five Keplerian elements of a closed heliocentric
// orbit. The semi-major axis is in astronomical units, all angles in degrees.
type OrbitalElements struct {
	a, e, i, Ω, ω float64
}

// NewElements validates and returns the orbital elements.
// Only elliptical orbits are supported: a must be strictly positive and the
// eccentricity must be in [0,1). Anything else would yield NaN points down the
// line, so it is rejected here instead.
func NewElements(a, e, i, Ω, ω float64) (OrbitalElements, error) {
	if a <= 0 {
		return OrbitalElements{}, fmt.Errorf("semi-major axis must be positive (got %f)", a)
	}
	if e < 0 || e >= 1 {
		return OrbitalElements{}, fmt.Errorf("eccentricity must be in [0,1) (got %f)", e)
	}
	return OrbitalElements{a, e, i, Ω, ω}, nil
}

// SemiMinor returns the semi-minor axis b.
func (el OrbitalElements) SemiMinor() float64 {
	return el.a * math.Sqrt(1-el.e*el.e)
}

// String implements the stringer interface.
func (el OrbitalElements) String() string {
	return fmt.Sprintf("a=%.3f e=%.4f i=%.3f Ω=%.3f ω=%.3f", el.a, el.e, el.i, el.Ω, el.ω)
}

// OrbitPath is the discretized orbit: an ordered sequence of 3D points around
// one full revolution of the ellipse, already rotated into place and upscaled.
// It is immutable once built; the owning Body only ever reads from it.
type OrbitPath struct {
	points [][]float64
}

// NewOrbitPath discretizes the ellipse defined by the provided elements into
// sampleCount points. The curve is closed: the parametric angle runs from 0 to
// 2π inclusive, so the first and last points coincide.
//
// The ellipse is built in its own plane (rotated by ω, counter-clockwise with
// increasing angle), then rotated about the X axis by i-π/2 and about the Y
// axis by Ω. The -π/2 correction drops a flat orbit into the horizontal XZ
// plane of the scene instead of the vertical plane the ellipse is born in.
func NewOrbitPath(el OrbitalElements, sampleCount int) (*OrbitPath, error) {
	if sampleCount <= 1 {
		return nil, errors.New("sample count must be greater than 1")
	}
	// Guard against zero-value elements which never went through NewElements.
	if el.a <= 0 || el.e < 0 || el.e >= 1 {
		return nil, fmt.Errorf("invalid elements (%s)", el)
	}
	a := el.a * DistanceScale
	b := el.SemiMinor() * DistanceScale
	sω, cω := math.Sincos(Deg2rad(el.ω))
	rot := R2R1(Deg2rad(el.i)-math.Pi/2, Deg2rad(el.Ω))
	points := make([][]float64, sampleCount)
	for k := 0; k < sampleCount; k++ {
		θ := 2 * math.Pi * float64(k) / float64(sampleCount-1)
		sθ, cθ := math.Sincos(θ)
		x := a * cθ
		y := b * sθ
		points[k] = MxV33(rot, []float64{x*cω - y*sω, x*sω + y*cω, 0})
	}
	return &OrbitPath{points: points}, nil
}

// Len returns the number of points on the path.
func (p *OrbitPath) Len() int {
	return len(p.points)
}

// Point returns the i-th point of the path. The returned slice is owned by the
// path and must not be mutated.
func (p *OrbitPath) Point(i int) []float64 {
	return p.points[i]
}

// Points returns the whole ordered point sequence, for handing to a renderer
// as a line once at startup. Read-only, same as Point.
func (p *OrbitPath) Points() [][]float64 {
	return p.points
}
