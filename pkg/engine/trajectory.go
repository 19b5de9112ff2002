// pkg/engine/trajectory.go
package engine

import (
	"github.com/gammazero/deque"

	"github.com/opd-ai/go-orbit/pkg/event"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// Trajectory is the sliding-window prediction cache: one deque per
// tracked quantity, front = soonest, back = furthest. All deques hold
// the same number of entries except transiently inside a bulk append.
// A trajectory starts invalid and becomes valid only through a full
// recompute; draining never invalidates it.
//
// Pop-front and push-back are amortized O(1), which is what keeps
// per-tick consumption cheap against a horizon of ~100k entries.
type Trajectory struct {
	playerPositions  deque.Deque[physics.Vector2D]
	playerVelocities deque.Deque[physics.Vector2D]
	playerRotations  deque.Deque[float64]
	bodyPositions    []deque.Deque[physics.Vector2D]
	bodyVelocities   []deque.Deque[physics.Vector2D]
	valid            bool
}

func newTrajectory(bodyCount int) *Trajectory {
	return &Trajectory{
		bodyPositions:  make([]deque.Deque[physics.Vector2D], bodyCount),
		bodyVelocities: make([]deque.Deque[physics.Vector2D], bodyCount),
	}
}

// Valid reports whether the cache holds a fully computed prediction.
func (t *Trajectory) Valid() bool {
	return t.valid
}

// Len returns the number of cached ticks.
func (t *Trajectory) Len() int {
	return t.playerPositions.Len()
}

// BodyCount returns the number of tracked passive bodies.
func (t *Trajectory) BodyCount() int {
	return len(t.bodyPositions)
}

// PlayerPositionAt returns the cached player position i ticks ahead.
// i must be in [0, Len()).
func (t *Trajectory) PlayerPositionAt(i int) physics.Vector2D {
	return t.playerPositions.At(i)
}

// PlayerVelocityAt returns the cached player velocity i ticks ahead.
func (t *Trajectory) PlayerVelocityAt(i int) physics.Vector2D {
	return t.playerVelocities.At(i)
}

// PlayerRotationAt returns the cached player rotation i ticks ahead.
func (t *Trajectory) PlayerRotationAt(i int) float64 {
	return t.playerRotations.At(i)
}

// BodyPositionAt returns the cached position of body b, i ticks ahead.
func (t *Trajectory) BodyPositionAt(b, i int) physics.Vector2D {
	return t.bodyPositions[b].At(i)
}

// BodyVelocityAt returns the cached velocity of body b, i ticks ahead.
func (t *Trajectory) BodyVelocityAt(b, i int) physics.Vector2D {
	return t.bodyVelocities[b].At(i)
}

// SamplePlayerPath returns every stride-th cached player position,
// front to back, for drawing trajectory overlays.
func (t *Trajectory) SamplePlayerPath(stride int) []physics.Vector2D {
	return samplePath(&t.playerPositions, stride)
}

// SampleBodyPath returns every stride-th cached position of body b.
func (t *Trajectory) SampleBodyPath(b, stride int) []physics.Vector2D {
	return samplePath(&t.bodyPositions[b], stride)
}

func samplePath(q *deque.Deque[physics.Vector2D], stride int) []physics.Vector2D {
	if stride < 1 {
		stride = 1
	}
	points := make([]physics.Vector2D, 0, q.Len()/stride+1)
	for i := 0; i < q.Len(); i += stride {
		points = append(points, q.At(i))
	}
	return points
}

// RecalculateTrajectory rebuilds the whole cache from the present
// state: the session is cloned into a scratch simulation, run forward
// for the full horizon, and the freshly built buffers replace the old
// cache in a single swap. This is the dominant cost center,
// O(horizon * substeps * n^2); callers trigger it only on events that
// actually change the future trajectory, never per frame.
func (s *Session) RecalculateTrajectory() {
	scratch := s.clone()
	fresh := newTrajectory(len(s.Bodies))

	for step := 0; step < s.horizon; step++ {
		fresh.playerPositions.PushBack(scratch.Player.Position)
		fresh.playerVelocities.PushBack(scratch.Player.Velocity)
		fresh.playerRotations.PushBack(scratch.Player.Rotation)
		for i, body := range scratch.Bodies {
			fresh.bodyPositions[i].PushBack(body.Position)
			fresh.bodyVelocities[i].PushBack(body.Velocity)
		}

		scratch.stepTick()
	}

	fresh.valid = true
	s.Trajectory = fresh
	s.publish(event.NewTrajectoryEvent(event.TrajectoryRecalculated, s, s.horizon, fresh.Len()))
}

// AdvanceTrajectory commits the front cache entry as the new present
// state and drops it from every deque. Rotation is deliberately not
// committed: the present rotation keeps evolving from live input, so
// visual spin is never locked to a stale prediction. Calling this on
// an invalid or empty cache is a no-op.
func (s *Session) AdvanceTrajectory() {
	t := s.Trajectory
	if t == nil || !t.valid || t.playerPositions.Len() == 0 {
		return
	}

	s.Player.Position = t.playerPositions.Front()
	s.Player.Velocity = t.playerVelocities.Front()
	for i, body := range s.Bodies {
		body.Position = t.bodyPositions[i].Front()
		body.Velocity = t.bodyVelocities[i].Front()
	}

	t.playerPositions.PopFront()
	t.playerVelocities.PopFront()
	t.playerRotations.PopFront()
	for i := range s.Bodies {
		t.bodyPositions[i].PopFront()
		t.bodyVelocities[i].PopFront()
	}
}

// ExtendTrajectory appends n freshly predicted ticks to the back of the
// cache. The scratch simulation is seeded from the last cached entry,
// not the present state, so extension produces exactly the continuation
// a longer recompute would have produced. Extending by zero ticks or
// against an invalid or empty cache is a no-op.
func (s *Session) ExtendTrajectory(n int) {
	t := s.Trajectory
	if n <= 0 || t == nil || !t.valid || t.playerPositions.Len() == 0 {
		return
	}

	last := t.playerPositions.Len() - 1

	scratch := s.clone()
	scratch.Player.Position = t.playerPositions.At(last)
	scratch.Player.Velocity = t.playerVelocities.At(last)
	scratch.Player.Rotation = t.playerRotations.At(last)
	for i, body := range scratch.Bodies {
		body.Position = t.bodyPositions[i].At(last)
		body.Velocity = t.bodyVelocities[i].At(last)
	}

	for step := 0; step < n; step++ {
		scratch.stepTick()

		t.playerPositions.PushBack(scratch.Player.Position)
		t.playerVelocities.PushBack(scratch.Player.Velocity)
		t.playerRotations.PushBack(scratch.Player.Rotation)
		for i, body := range scratch.Bodies {
			t.bodyPositions[i].PushBack(body.Position)
			t.bodyVelocities[i].PushBack(body.Velocity)
		}
	}

	s.publish(event.NewTrajectoryEvent(event.TrajectoryExtended, s, n, t.Len()))
}
