package spacesim

import (
	"fmt"
	"strings"
)

// Planet describes one catalog entry: the static properties a Body is built
// from. Elements are J2000 heliocentric values; periods are in Earth days and
// a negative rotation period marks a retrograde rotator.
type Planet struct {
	Name           string
	Radius         float64 // km
	Tilt           float64 // axial tilt, degrees
	OrbitalPeriod  float64 // days
	RotationPeriod float64 // days
	Elements       OrbitalElements
	Ring           *Ring // template; each body gets its own copy
}

// Body builds a fresh Body (and ring, if any) from this catalog entry.
func (p Planet) Body(sampleCount int) (*Body, error) {
	var ring *Ring
	if p.Ring != nil {
		ring = &Ring{InnerRadius: p.Ring.InnerRadius, OuterRadius: p.Ring.OuterRadius}
	}
	return NewBody(p.Name, p.Radius, p.Tilt, p.OrbitalPeriod, p.RotationPeriod, p.Elements, sampleCount, ring)
}

/* Definitions */

// Mercury is in a hurry.
var Mercury = Planet{"Mercury", 2439.7, 0.03, 87.97, 58.65, OrbitalElements{0.387, 0.2056, 7.005, 48.331, 29.124}, nil}

// Venus spins the wrong way, very slowly.
var Venus = Planet{"Venus", 6051.8, 177.36, 224.70, -243.02, OrbitalElements{0.723, 0.0068, 3.395, 76.680, 54.884}, nil}

// Earth is home.
var Earth = Planet{"Earth", 6371.0, 23.44, 365.25, 1.00, OrbitalElements{1.000, 0.0167, 0.000, 174.873, 288.064}, nil}

// Mars is the vacation place.
var Mars = Planet{"Mars", 3389.5, 25.19, 686.97, 1.03, OrbitalElements{1.524, 0.0934, 1.850, 49.562, 286.502}, nil}

// Jupiter is big.
var Jupiter = Planet{"Jupiter", 69911.0, 3.13, 4332.59, 0.41, OrbitalElements{5.204, 0.0490, 1.303, 100.556, 273.867}, nil}

// Saturn brought its own jewelry.
var Saturn = Planet{"Saturn", 58232.0, 26.73, 10759.22, 0.44, OrbitalElements{9.582, 0.0565, 2.489, 113.715, 339.392}, &Ring{InnerRadius: 74500, OuterRadius: 136780}}

// Uranus rolls around the Sun on its side, backwards.
var Uranus = Planet{"Uranus", 25362.0, 97.77, 30688.5, -0.72, OrbitalElements{19.201, 0.0463, 0.773, 74.230, 96.998}, nil}

// Neptune is far, windy, and in no rush whatsoever.
var Neptune = Planet{"Neptune", 24622.0, 28.32, 60182.0, 0.67, OrbitalElements{30.047, 0.0097, 1.770, 131.722, 276.336}, nil}

// Planets lists the whole catalog in increasing distance from the Sun, which
// is also the order bodies are registered and updated in.
var Planets = []Planet{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}

// PlanetFromString returns the catalog entry from its name.
func PlanetFromString(name string) (Planet, error) {
	for _, p := range Planets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Planet{}, fmt.Errorf("undefined planet '%s'", name)
}

// NewSolarSystem builds the full eight-planet system from the catalog, with
// every orbit path discretized into the configured number of samples.
func NewSolarSystem() (*System, error) {
	s := NewSystem("sol")
	for _, p := range Planets {
		b, err := p.Body(simConfig().sampleCount)
		if err != nil {
			return nil, err
		}
		if err = s.Add(b); err != nil {
			return nil, err
		}
	}
	return s, nil
}
