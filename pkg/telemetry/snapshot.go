// pkg/telemetry/snapshot.go
package telemetry

import (
	"fmt"

	"github.com/opd-ai/go-orbit/pkg/engine"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// BodyState is the wire form of a celestial body.
type BodyState struct {
	Name     string     `json:"name"`
	Radius   float64    `json:"radius"`
	Mass     float64    `json:"mass"`
	Color    string     `json:"color"`
	Position [2]float64 `json:"position"`
	Velocity [2]float64 `json:"velocity"`
}

// PlayerState is the wire form of the player craft.
type PlayerState struct {
	Position [2]float64 `json:"position"`
	Velocity [2]float64 `json:"velocity"`
	Rotation float64    `json:"rotation"`
}

// PredictionState describes the trajectory cache and carries the
// player's sampled future path.
type PredictionState struct {
	Valid      bool         `json:"valid"`
	Length     int          `json:"length"`
	Stride     int          `json:"stride"`
	PlayerPath [][2]float64 `json:"playerPath,omitempty"`
}

// Snapshot is one broadcast frame of simulation state.
type Snapshot struct {
	Type       string          `json:"type"`
	Bodies     []BodyState     `json:"bodies"`
	Player     PlayerState     `json:"player"`
	TimeWarp   float64         `json:"timeWarp"`
	Dominant   string          `json:"dominant,omitempty"`
	Prediction PredictionState `json:"prediction"`
}

// BuildSnapshot captures the session's current state. The caller must
// invoke it from the goroutine driving the session.
func BuildSnapshot(session *engine.Session, stride int) Snapshot {
	if stride < 1 {
		stride = 1
	}

	snap := Snapshot{
		Type:     "snapshot",
		Bodies:   make([]BodyState, 0, len(session.Bodies)),
		TimeWarp: session.TimeWarp(),
	}

	for _, body := range session.Bodies {
		snap.Bodies = append(snap.Bodies, BodyState{
			Name:     body.Name,
			Radius:   body.Radius,
			Mass:     body.Mass,
			Color:    fmt.Sprintf("#%06X", body.Color&0xFFFFFF),
			Position: [2]float64{body.Position.X, body.Position.Y},
			Velocity: [2]float64{body.Velocity.X, body.Velocity.Y},
		})
	}

	snap.Player = PlayerState{
		Position: [2]float64{session.Player.Position.X, session.Player.Position.Y},
		Velocity: [2]float64{session.Player.Velocity.X, session.Player.Velocity.Y},
		Rotation: session.Player.Rotation,
	}

	if dominant := session.DominantBody(session.Player.Position); dominant != nil {
		snap.Dominant = dominant.Name
	}

	snap.Prediction = PredictionState{
		Valid:  session.Trajectory.Valid(),
		Stride: stride,
	}
	if session.Trajectory.Valid() {
		snap.Prediction.Length = session.Trajectory.Len()
		snap.Prediction.PlayerPath = packPath(session.Trajectory.SamplePlayerPath(stride))
	}

	return snap
}

func packPath(points []physics.Vector2D) [][2]float64 {
	packed := make([][2]float64, len(points))
	for i, p := range points {
		packed[i] = [2]float64{p.X, p.Y}
	}
	return packed
}
