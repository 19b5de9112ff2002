// pkg/engine/dominant_test.go
package engine

import (
	"testing"

	"github.com/opd-ai/go-orbit/pkg/entity"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

func dominantTestSession(t *testing.T, bodies []*entity.Body) *Session {
	t.Helper()
	player := newTestPlayer(t, physics.Vector2D{X: 1e9}, physics.Vector2D{})
	session, err := NewSession(bodies, player, WithHorizon(1))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return session
}

func TestDominantBody(t *testing.T) {
	sun := &entity.Body{Name: "Sun", Radius: 300, Mass: 1e15}
	earth := &entity.Body{Name: "Earth", Radius: 150, Mass: 6e12, Position: physics.Vector2D{X: 15000}}
	moon := &entity.Body{Name: "Moon", Radius: 20, Mass: 1e11, Position: physics.Vector2D{X: 16000}}

	tests := []struct {
		name     string
		pos      physics.Vector2D
		expected string
	}{
		{
			// Close to the Moon its 1/r^2 advantage beats Earth's mass
			name:     "near_moon",
			pos:      physics.Vector2D{X: 16010},
			expected: "Moon",
		},
		{
			name:     "near_earth",
			pos:      physics.Vector2D{X: 15300},
			expected: "Earth",
		},
		{
			name:     "deep_space_sun_dominates",
			pos:      physics.Vector2D{X: 0, Y: 40000},
			expected: "Sun",
		},
		{
			// Sitting exactly on the Moon: the zero-distance guard
			// skips it, so attribution falls to Earth
			name:     "coincident_with_moon",
			pos:      physics.Vector2D{X: 16000},
			expected: "Earth",
		},
	}

	session := dominantTestSession(t, []*entity.Body{sun, earth, moon})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := session.DominantBody(tt.pos)
			if got == nil {
				t.Fatal("DominantBody() returned nil")
			}
			if got.Name != tt.expected {
				t.Errorf("DominantBody() = %q, expected %q", got.Name, tt.expected)
			}
		})
	}
}

func TestDominantBody_TieKeepsFirstMaximum(t *testing.T) {
	first := &entity.Body{Name: "First", Radius: 10, Mass: 1e12, Position: physics.Vector2D{X: -1000}}
	second := &entity.Body{Name: "Second", Radius: 10, Mass: 1e12, Position: physics.Vector2D{X: 1000}}

	session := dominantTestSession(t, []*entity.Body{first, second})

	// Equidistant from two equal masses: first maximum wins
	got := session.DominantBody(physics.Vector2D{})
	if got == nil || got.Name != "First" {
		t.Errorf("DominantBody() = %v, expected First on tie", got)
	}
}

func TestDominantBody_NoCandidates_ReturnsNil(t *testing.T) {
	only := &entity.Body{Name: "Only", Radius: 10, Mass: 1e12, Position: physics.Vector2D{X: 500}}
	session := dominantTestSession(t, []*entity.Body{only})

	// The single body is at zero distance, so nothing qualifies
	if got := session.DominantBody(physics.Vector2D{X: 500}); got != nil {
		t.Errorf("DominantBody() = %v, expected nil", got)
	}
}

func TestDominantBody_UsesLivePositions(t *testing.T) {
	near := &entity.Body{Name: "Near", Radius: 10, Mass: 1e12, Position: physics.Vector2D{X: 100}}
	far := &entity.Body{Name: "Far", Radius: 10, Mass: 1e12, Position: physics.Vector2D{X: 10000}}
	session := dominantTestSession(t, []*entity.Body{near, far})

	probe := physics.Vector2D{}
	if got := session.DominantBody(probe); got.Name != "Near" {
		t.Fatalf("DominantBody() = %q, expected Near", got.Name)
	}

	// Move the bodies: attribution must follow the live state, not any
	// cached prediction
	session.Bodies[0].Position = physics.Vector2D{X: 50000}
	if got := session.DominantBody(probe); got.Name != "Far" {
		t.Errorf("DominantBody() = %q after move, expected Far", got.Name)
	}
}
