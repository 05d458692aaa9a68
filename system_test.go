package spacesim

import (
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestSystemAdd(t *testing.T) {
	stubConfig()
	s := NewSystem("test")
	b, _ := NewBody("x", 1, 0, 365.25, 1, testElements(t), 101, nil)
	if err := s.Add(b); err != nil {
		t.Fatalf("add failed: %s", err)
	}
	dup, _ := NewBody("x", 2, 0, 100, 1, testElements(t), 101, nil)
	if err := s.Add(dup); err == nil {
		t.Fatal("duplicate name accepted")
	}
	if got, found := s.Body("x"); !found || got != b {
		t.Fatal("lookup failed")
	}
	if _, found := s.Body("y"); found {
		t.Fatal("found a body which was never registered")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 body, got %d", s.Len())
	}
}

func TestSystemUpdateOrder(t *testing.T) {
	stubConfig()
	s := NewSystem("test")
	names := []string{"c", "a", "b"}
	for _, n := range names {
		b, _ := NewBody(n, 1, 0, 365.25, 1, testElements(t), 101, nil)
		if err := s.Add(b); err != nil {
			t.Fatalf("add %s: %s", n, err)
		}
	}
	transforms := s.Update(5000)
	if len(transforms) != len(names) {
		t.Fatalf("expected %d transforms, got %d", len(names), len(transforms))
	}
	for i, tr := range transforms {
		if tr.Name != names[i] {
			t.Fatalf("update order broken: got %s at %d", tr.Name, i)
		}
		b, _ := s.Body(tr.Name)
		if !floats.Equal(tr.Position, b.Position()) {
			t.Fatalf("transform of %s disagrees with body state", tr.Name)
		}
	}
}

// Every body is advanced exactly once per Update: the spin step is fixed, so
// two updates move every spin angle by exactly two steps.
func TestSystemUpdatesOncePerFrame(t *testing.T) {
	stubConfig()
	s := NewSystem("test")
	b, _ := NewBody("x", 1, 0, 365.25, 1, testElements(t), 101, nil)
	s.Add(b)
	s.Update(0)
	one := b.Spin()
	s.Update(16.7)
	if !floats.EqualWithinAbs(b.Spin(), 2*one, 1e-15) {
		t.Fatal("body not advanced exactly once per update")
	}
}

func TestClockMonotonic(t *testing.T) {
	c := NewClock()
	t1 := c.NowMs()
	time.Sleep(2 * time.Millisecond)
	t2 := c.NowMs()
	if t1 < 0 || t2 <= t1 {
		t.Fatalf("clock not monotonic: %f then %f", t1, t2)
	}
}

func TestNewSolarSystem(t *testing.T) {
	stubConfig()
	s, err := NewSolarSystem()
	if err != nil {
		t.Fatalf("solar system not built: %s", err)
	}
	if s.Len() != 8 {
		t.Fatalf("expected 8 planets, got %d", s.Len())
	}
	saturn, found := s.Body("Saturn")
	if !found || saturn.Ring() == nil {
		t.Fatal("Saturn must carry its ring")
	}
	earth, _ := s.Body("Earth")
	if earth.Ring() != nil {
		t.Fatal("Earth must not carry a ring")
	}
	// Venus and Uranus spin backwards.
	for _, frame := range []float64{0, 16.7, 33.4} {
		s.Update(frame)
	}
	for _, name := range []string{"Venus", "Uranus"} {
		b, _ := s.Body(name)
		if b.Spin() >= 0 {
			t.Fatalf("%s should spin retrograde", name)
		}
	}
	if earth.Spin() <= 0 {
		t.Fatal("Earth should spin prograde")
	}
}

func TestPlanetFromString(t *testing.T) {
	p, err := PlanetFromString("neptune")
	if err != nil {
		t.Fatalf("lookup failed: %s", err)
	}
	if p.Name != "Neptune" {
		t.Fatalf("got %s", p.Name)
	}
	if _, err = PlanetFromString("Pluto"); err == nil {
		t.Fatal("Pluto is not a planet and had that down ranking coming")
	}
}
