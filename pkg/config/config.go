// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/opd-ai/go-orbit/pkg/entity"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// SceneConfig describes an initial universe: the gravitational
// constant, the passive bodies, and the player. It is plain data; the
// simulation core never reads files itself.
type SceneConfig struct {
	Gravity float64       `json:"gravity"`
	Bodies  []BodyConfig  `json:"bodies"`
	Player  PlayerConfig  `json:"player"`
	Display DisplayConfig `json:"display"`
}

// BodyConfig configures one passive body. Position and velocity may be
// given explicitly, or derived from an Orbit specification around a
// previously listed body.
type BodyConfig struct {
	Name        string       `json:"name"`
	Radius      float64      `json:"radius"`
	Mass        float64      `json:"mass"`
	X           float64      `json:"x"`
	Y           float64      `json:"y"`
	VX          float64      `json:"vx"`
	VY          float64      `json:"vy"`
	Orbit       *OrbitConfig `json:"orbit,omitempty"`
	Color       string       `json:"color"`
	Description string       `json:"description,omitempty"`
}

// OrbitConfig places a body on a Keplerian orbit around a named center
// body that must appear earlier in the body list. Radius is the
// periapsis distance; eccentricity 0 gives a circular orbit.
type OrbitConfig struct {
	Center       string  `json:"center"`
	Radius       float64 `json:"radius"`
	Eccentricity float64 `json:"eccentricity"`
}

// PlayerConfig configures the controlled body.
type PlayerConfig struct {
	Mass     float64      `json:"mass"`
	X        float64      `json:"x"`
	Y        float64      `json:"y"`
	VX       float64      `json:"vx"`
	VY       float64      `json:"vy"`
	Orbit    *OrbitConfig `json:"orbit,omitempty"`
	Rotation float64      `json:"rotation"`
}

// DisplayConfig holds presentation defaults passed through to render
// adapters; the core ignores it.
type DisplayConfig struct {
	WindowWidth      int     `json:"windowWidth"`
	WindowHeight     int     `json:"windowHeight"`
	Zoom             float64 `json:"zoom"`
	TrajectoryStride int     `json:"trajectoryStride"`
}

// LoadConfig loads a scene configuration from a file
func LoadConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SceneConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a scene configuration to a file
func SaveConfig(config *SceneConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the stock Sun/Earth/Moon scene with the player
// parked in low orbit around Earth.
func DefaultConfig() *SceneConfig {
	return &SceneConfig{
		Gravity: 0.000001,
		Bodies: []BodyConfig{
			{
				Name:        "Sun",
				Radius:      300,
				Mass:        1e15,
				Color:       "#FFFF00",
				Description: "The central star.",
			},
			{
				Name:   "Earth",
				Radius: 150,
				Mass:   6e12,
				Color:  "#4040FF",
				Orbit: &OrbitConfig{
					Center: "Sun",
					Radius: 15000,
				},
				Description: "Home.",
			},
			{
				Name:   "Moon",
				Radius: 20,
				Mass:   1e11,
				Color:  "#AAAAAA",
				Orbit: &OrbitConfig{
					Center: "Earth",
					Radius: 1000,
				},
			},
		},
		Player: PlayerConfig{
			Mass: 1,
			Orbit: &OrbitConfig{
				Center: "Earth",
				Radius: 300,
			},
		},
		Display: DisplayConfig{
			WindowWidth:      1200,
			WindowHeight:     800,
			Zoom:             1,
			TrajectoryStride: 100,
		},
	}
}

// stableOrbit returns position and velocity for a body orbiting the
// given center at the requested periapsis radius and eccentricity.
// For a circular orbit v = sqrt(G*M/r); at the periapsis of an
// elliptical one v = sqrt(G*M*(1+e)/(r*(1-e))). The center's own
// velocity is added so nested orbits (a moon around a moving planet)
// come out stable.
func stableOrbit(centerPos, centerVel physics.Vector2D, centerMass, radius, eccentricity, gravity float64) (physics.Vector2D, physics.Vector2D) {
	var orbitalSpeed float64
	if eccentricity == 0 {
		orbitalSpeed = math.Sqrt(gravity * centerMass / radius)
	} else {
		orbitalSpeed = math.Sqrt(gravity * centerMass * (1 + eccentricity) / (radius * (1 - eccentricity)))
	}

	position := physics.Vector2D{X: centerPos.X + radius, Y: centerPos.Y}
	velocity := physics.Vector2D{X: centerVel.X, Y: centerVel.Y + orbitalSpeed}
	return position, velocity
}

// BuildUniverse resolves the scene configuration into simulation
// entities: orbit specifications are converted to explicit positions
// and velocities, and all physical parameters are validated before
// anything reaches the integrator.
func (c *SceneConfig) BuildUniverse() ([]*entity.Body, *entity.Player, error) {
	if c.Gravity <= 0 {
		return nil, nil, fmt.Errorf("gravity must be positive, got %g", c.Gravity)
	}
	if len(c.Bodies) == 0 {
		return nil, nil, fmt.Errorf("scene must contain at least one body")
	}

	bodies := make([]*entity.Body, 0, len(c.Bodies))
	byName := make(map[string]*entity.Body, len(c.Bodies))

	for i, bc := range c.Bodies {
		if _, exists := byName[bc.Name]; exists {
			return nil, nil, fmt.Errorf("duplicate body name %q", bc.Name)
		}

		pos := physics.Vector2D{X: bc.X, Y: bc.Y}
		vel := physics.Vector2D{X: bc.VX, Y: bc.VY}
		if bc.Orbit != nil {
			var err error
			pos, vel, err = c.resolveOrbit(bc.Orbit, byName)
			if err != nil {
				return nil, nil, fmt.Errorf("body %q: %w", bc.Name, err)
			}
		}

		body, err := entity.NewBody(bc.Name, bc.Radius, bc.Mass, pos, vel)
		if err != nil {
			return nil, nil, fmt.Errorf("body %d: %w", i, err)
		}
		body.Color = parseColor(bc.Color)
		body.Description = bc.Description

		bodies = append(bodies, body)
		byName[bc.Name] = body
	}

	pos := physics.Vector2D{X: c.Player.X, Y: c.Player.Y}
	vel := physics.Vector2D{X: c.Player.VX, Y: c.Player.VY}
	if c.Player.Orbit != nil {
		var err error
		pos, vel, err = c.resolveOrbit(c.Player.Orbit, byName)
		if err != nil {
			return nil, nil, fmt.Errorf("player: %w", err)
		}
	}

	player, err := entity.NewPlayer(pos, vel, c.Player.Mass, c.Player.Rotation)
	if err != nil {
		return nil, nil, err
	}

	return bodies, player, nil
}

func (c *SceneConfig) resolveOrbit(orbit *OrbitConfig, byName map[string]*entity.Body) (physics.Vector2D, physics.Vector2D, error) {
	center, ok := byName[orbit.Center]
	if !ok {
		return physics.Vector2D{}, physics.Vector2D{}, fmt.Errorf("orbit center %q not defined earlier in the scene", orbit.Center)
	}
	if orbit.Radius <= 0 {
		return physics.Vector2D{}, physics.Vector2D{}, fmt.Errorf("orbit radius must be positive, got %g", orbit.Radius)
	}
	if orbit.Eccentricity < 0 || orbit.Eccentricity >= 1 {
		return physics.Vector2D{}, physics.Vector2D{}, fmt.Errorf("orbit eccentricity must be in [0, 1), got %g", orbit.Eccentricity)
	}

	pos, vel := stableOrbit(center.Position, center.Velocity, center.Mass, orbit.Radius, orbit.Eccentricity, c.Gravity)
	return pos, vel, nil
}

// parseColor converts "#RRGGBB" to a packed 0xRRGGBB value. Malformed
// colors fall back to white rather than failing scene construction.
func parseColor(s string) uint32 {
	if len(s) != 7 || s[0] != '#' {
		return 0xFFFFFF
	}
	var rgb uint32
	if _, err := fmt.Sscanf(s[1:], "%06x", &rgb); err != nil {
		return 0xFFFFFF
	}
	return rgb
}
