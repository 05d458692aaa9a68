package spacesim

import (
	"fmt"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

// System is the registry of all simulated bodies. It owns the creation order,
// which is also the per-frame update order, and is the only writer of per-body
// state: the external render step reads the transforms it returns.
type System struct {
	Name   string
	bodies []*Body
	byName map[string]*Body
	logger kitlog.Logger
}

// NewSystem returns an empty registry.
func NewSystem(name string) *System {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "system", name)
	return &System{Name: name, byName: make(map[string]*Body), logger: klog}
}

// Add registers a body. Names are unique keys, so a duplicate is an error.
func (s *System) Add(b *Body) error {
	if _, found := s.byName[b.Name]; found {
		return fmt.Errorf("body %s already registered", b.Name)
	}
	s.bodies = append(s.bodies, b)
	s.byName[b.Name] = b
	s.logger.Log("body", b.Name, "points", b.Path().Len(), "ringed", b.Ring() != nil)
	return nil
}

// Body returns the registered body of that name.
func (s *System) Body(name string) (*Body, bool) {
	b, found := s.byName[name]
	return b, found
}

// Bodies returns all bodies in creation order.
func (s *System) Bodies() []*Body {
	return s.bodies
}

// Len returns the number of registered bodies.
func (s *System) Len() int {
	return len(s.bodies)
}

// Update advances every registered body exactly once for the provided clock
// reading and returns their transforms in creation order. It is meant to be
// called once per rendered frame, before the render step reads the result.
func (s *System) Update(tMs float64) []Transform {
	transforms := make([]Transform, len(s.bodies))
	for i, b := range s.bodies {
		transforms[i] = b.Advance(tMs)
	}
	return transforms
}

// Clock is the process-wide monotonic time source of the frame loop: elapsed
// milliseconds since the clock was started. One reading is taken per frame.
type Clock struct {
	epoch time.Time
}

// NewClock starts a new clock at the current instant.
func NewClock() *Clock {
	return &Clock{epoch: time.Now()}
}

// NowMs returns the elapsed milliseconds since the clock epoch.
func (c *Clock) NowMs() float64 {
	return float64(time.Since(c.epoch)) / float64(time.Millisecond)
}
