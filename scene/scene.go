// Package scene describes the named bodies and camera a chase session is built from
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/cart-chase/vmath"
)

// Required body names
const (
	CartName = "Cart"
)

var (
	ErrBodyNotFound = errors.New("body not found")
	ErrCameraCount  = errors.New("expecting exactly one camera")
)

// AgentName returns the scene name of agent i (zero based): AI1, AI2, ...
func AgentName(i int) string {
	return fmt.Sprintf("AI%d", i+1)
}

type Body struct {
	Name     string
	Position vmath.Vec3
}

type Camera struct {
	Name     string
	Position vmath.Vec3
	// Span is the world width the camera frames
	Span float64
}

type Scene struct {
	Bodies  []Body
	Cameras []Camera
}

// Find returns the first body with name
func (s *Scene) Find(name string) (Body, bool) {
	for _, b := range s.Bodies {
		if b.Name == name {
			return b, true
		}
	}
	return Body{}, false
}

// Camera returns the single camera
func (s *Scene) Camera() (Camera, error) {
	if len(s.Cameras) != 1 {
		return Camera{}, fmt.Errorf("%w, but scene has %d", ErrCameraCount, len(s.Cameras))
	}
	return s.Cameras[0], nil
}

// Validate checks the bodies a session of agentCount agents needs and the camera
func (s *Scene) Validate(agentCount int) error {
	if _, ok := s.Find(CartName); !ok {
		return fmt.Errorf("%s: %w", CartName, ErrBodyNotFound)
	}
	for i := 0; i < agentCount; i++ {
		name := AgentName(i)
		if _, ok := s.Find(name); !ok {
			return fmt.Errorf("%s: %w", name, ErrBodyNotFound)
		}
	}
	_, err := s.Camera()
	return err
}

// Default lays out the arena: cart at origin, agents evenly on a ring at 60% of the arena
// and a camera overhead framing the whole arena
func Default(agentCount int, arenaRadius float64) *Scene {
	s := &Scene{
		Bodies: make([]Body, 0, agentCount+1),
	}
	s.Bodies = append(s.Bodies, Body{Name: CartName})

	ring := arenaRadius * 0.6
	for i := 0; i < agentCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(agentCount)
		s.Bodies = append(s.Bodies, Body{
			Name:     AgentName(i),
			Position: vmath.Lift(vmath.Vec2{X: ring * math.Cos(angle), Y: ring * math.Sin(angle)}, 0),
		})
	}

	s.Cameras = []Camera{{
		Name:     "Camera",
		Position: vmath.Vec3{Z: arenaRadius * 2},
		Span:     arenaRadius * 2,
	}}
	return s
}
