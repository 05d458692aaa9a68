package spacesim

import (
	"errors"
	"fmt"
	"math"
)

const (
	secondsPerDay = 86400.0
	// spinStep slows the per-frame spin increment down to something watchable.
	spinStep = 0.1
)

// Ring is an optional ring attached to a body (inner and outer radii in the
// same artistic units as the body radius). Its position always mirrors the
// position of the body that owns it.
type Ring struct {
	InnerRadius float64 `json:"innerRadius"`
	OuterRadius float64 `json:"outerRadius"`

	position []float64
}

// Position returns the ring's current position.
func (r *Ring) Position() []float64 {
	return r.position
}

// Transform is the per-frame output for one body, consumed by the external
// rendering subsystem.
type Transform struct {
	Name     string         `json:"name"`
	Position []float64      `json:"position"`
	Spin     float64        `json:"spin"`
	Tilt     float64        `json:"tilt"`
	Ring     *RingTransform `json:"ring,omitempty"`
}

// RingTransform mirrors the owning body's transform for its ring.
type RingTransform struct {
	Position []float64 `json:"position"`
	Spin     float64   `json:"spin"`
}

// Body represents one celestial object: its static properties, its owned orbit
// path, and its mutable per-frame state (position and accumulated spin angle).
// Bodies are created once at startup and never destroyed.
type Body struct {
	Name           string
	Radius         float64 // km, before any renderer scaling
	Tilt           float64 // axial tilt in degrees, applied once by the renderer
	OrbitalPeriod  float64 // days
	RotationPeriod float64 // days; a negative period spins the body retrograde

	path *OrbitPath
	ring *Ring

	position []float64
	spin     float64 // radians, accumulated frame over frame
}

// NewBody builds a body and its orbit path from the provided elements.
// The orbital period must be strictly positive and the rotation period nonzero
// (both are divisors in the sampler), otherwise an error is returned.
func NewBody(name string, radius, tilt, orbitalPeriod, rotationPeriod float64, el OrbitalElements, sampleCount int, ring *Ring) (*Body, error) {
	if name == "" {
		return nil, errors.New("body name must not be empty")
	}
	if orbitalPeriod <= 0 {
		return nil, fmt.Errorf("orbital period must be positive (got %f)", orbitalPeriod)
	}
	if rotationPeriod == 0 {
		return nil, errors.New("rotation period must not be zero")
	}
	path, err := NewOrbitPath(el, sampleCount)
	if err != nil {
		return nil, fmt.Errorf("cannot build orbit of %s: %s", name, err)
	}
	b := &Body{Name: name, Radius: radius, Tilt: tilt, OrbitalPeriod: orbitalPeriod,
		RotationPeriod: rotationPeriod, path: path, ring: ring}
	b.position = path.Point(0)
	if ring != nil {
		ring.position = b.position
	}
	return b, nil
}

// Path returns the body's orbit path, for startup-time display as a curve.
func (b *Body) Path() *OrbitPath {
	return b.path
}

// Ring returns the body's ring, or nil.
func (b *Body) Ring() *Ring {
	return b.ring
}

// Position returns the body's current position.
func (b *Body) Position() []float64 {
	return b.position
}

// Spin returns the body's accumulated spin angle in radians.
func (b *Body) Spin() float64 {
	return b.spin
}

// Advance maps the provided monotonic clock reading (milliseconds since the
// start of the run) to a position on the orbit path and accumulates the spin
// angle, returning the resulting transform.
//
// Position is a pure function of absolute time: the fractional progress around
// the orbit is phase mod 1 with phase = t·rate, so replaying a timestamp yields
// the same point and there is no frame-rate dependent drift. The spin angle, on
// the other hand, grows (or shrinks, for retrograde rotators) by a fixed step
// on every call.
//
// A ringed body copies its new position to the ring and accumulates the spin
// step a second time.
func (b *Body) Advance(tMs float64) Transform {
	rate := (2 * math.Pi / (b.OrbitalPeriod * secondsPerDay)) * simConfig().timeScale
	phase := tMs * rate
	fraction := phase - math.Floor(phase)
	b.position = b.path.Point(int(fraction * float64(b.path.Len()-1)))

	spinΔ := (2 * math.Pi / b.RotationPeriod) * spinStep * deg2rad
	b.spin += spinΔ

	t := Transform{Name: b.Name, Position: b.position, Spin: b.spin, Tilt: b.Tilt}
	if b.ring != nil {
		b.ring.position = b.position
		b.spin += spinΔ
		t.Spin = b.spin
		t.Ring = &RingTransform{Position: b.ring.position, Spin: b.spin}
	}
	return t
}
