// pkg/engine/session.go
package engine

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-orbit/pkg/entity"
	"github.com/opd-ai/go-orbit/pkg/event"
)

// Trajectory prediction constants. One tick of cached trajectory covers
// TrajectoryDT time units; each tick is integrated in TrajectorySubsteps
// sub-steps of TrajectoryDT/TrajectorySubsteps for stability.
const (
	DefaultTrajectorySteps = 100000
	TrajectoryDT           = 0.016
	TrajectorySubsteps     = 5
	DefaultGravity         = 0.000001
)

// ErrNoPlayer is returned when a session is created without a player.
var ErrNoPlayer = errors.New("session requires a player")

// Session owns the present state of the simulated system: one player,
// an ordered set of passive bodies, the shared gravitational constant,
// and the trajectory cache predicting their future. It is the single
// source of truth for rendering and for seeding new predictions.
//
// A Session is not safe for concurrent use. The host loop is the only
// writer; a full recompute builds into fresh buffers and swaps them in
// wholesale, so a reader on the same goroutine never observes a
// partially rebuilt cache.
type Session struct {
	Gravity    float64
	Bodies     []*entity.Body
	Player     *entity.Player
	Trajectory *Trajectory
	EventBus   *event.Bus

	horizon     int
	substeps    int
	timeWarp    float64
	accumulator float64
}

// Option configures a Session at creation time.
type Option func(*Session)

// WithGravity overrides the gravitational constant.
func WithGravity(g float64) Option {
	return func(s *Session) { s.Gravity = g }
}

// WithHorizon overrides how many ticks ahead a full recompute predicts.
func WithHorizon(ticks int) Option {
	return func(s *Session) { s.horizon = ticks }
}

// WithSubsteps overrides the number of integration sub-steps per tick.
func WithSubsteps(n int) Option {
	return func(s *Session) { s.substeps = n }
}

// WithTimeWarp scales real elapsed time before it is converted into
// simulation ticks. 1 is real time.
func WithTimeWarp(factor float64) Option {
	return func(s *Session) { s.timeWarp = factor }
}

// WithEventBus attaches an event bus; the session publishes thrust and
// trajectory lifecycle events to it.
func WithEventBus(bus *event.Bus) Option {
	return func(s *Session) { s.EventBus = bus }
}

// NewSession seeds the present state from the given bodies and player,
// validates physical parameters, and performs one full trajectory
// recompute so the cache is valid before the first frame.
func NewSession(bodies []*entity.Body, player *entity.Player, opts ...Option) (*Session, error) {
	if player == nil {
		return nil, ErrNoPlayer
	}
	if player.Mass <= 0 {
		return nil, fmt.Errorf("player mass must be positive, got %g", player.Mass)
	}
	for i, body := range bodies {
		if body == nil {
			return nil, fmt.Errorf("body %d is nil", i)
		}
		if body.Mass <= 0 {
			return nil, fmt.Errorf("body %q: mass must be positive, got %g", body.Name, body.Mass)
		}
	}

	s := &Session{
		Gravity:  DefaultGravity,
		Bodies:   bodies,
		Player:   player,
		horizon:  DefaultTrajectorySteps,
		substeps: TrajectorySubsteps,
		timeWarp: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Gravity <= 0 {
		return nil, fmt.Errorf("gravity must be positive, got %g", s.Gravity)
	}
	if s.horizon <= 0 {
		return nil, fmt.Errorf("horizon must be positive, got %d", s.horizon)
	}
	if s.substeps <= 0 {
		return nil, fmt.Errorf("substeps must be positive, got %d", s.substeps)
	}

	s.Trajectory = newTrajectory(len(bodies))
	s.RecalculateTrajectory()
	s.publish(&event.BaseEvent{EventType: event.SessionCreated, Source: s})
	return s, nil
}

// Horizon returns the number of ticks a full recompute predicts ahead.
func (s *Session) Horizon() int {
	return s.horizon
}

// TimeWarp returns the current time warp factor.
func (s *Session) TimeWarp() float64 {
	return s.timeWarp
}

// SetTimeWarp changes the time warp factor. It only scales how fast
// cached ticks are consumed, so it never invalidates the cache.
func (s *Session) SetTimeWarp(factor float64) {
	if factor > 0 {
		s.timeWarp = factor
	}
}

// Update advances the session by the given amount of real elapsed time.
// Whole elapsed ticks are committed from the front of the trajectory
// cache and the cache is extended by the same count at the back, so its
// length stays constant. Fractional tick remainders accumulate.
func (s *Session) Update(realDt float64) {
	s.accumulator += realDt * s.timeWarp

	steps := int(s.accumulator / TrajectoryDT)
	if steps <= 0 {
		return
	}
	for i := 0; i < steps; i++ {
		s.AdvanceTrajectory()
	}
	s.ExtendTrajectory(steps)
	s.accumulator -= float64(steps) * TrajectoryDT
}

// clone copies the present state into an independent scratch session
// used for prediction runs. The scratch carries no cache or bus.
func (s *Session) clone() *Session {
	bodies := make([]*entity.Body, len(s.Bodies))
	for i, body := range s.Bodies {
		bodies[i] = body.Clone()
	}
	return &Session{
		Gravity:  s.Gravity,
		Bodies:   bodies,
		Player:   s.Player.Clone(),
		horizon:  s.horizon,
		substeps: s.substeps,
		timeWarp: s.timeWarp,
	}
}

func (s *Session) publish(e event.Event) {
	if s.EventBus != nil {
		s.EventBus.Publish(e)
	}
}
