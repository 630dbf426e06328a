// Package scene builds renderable worlds from sphere and camera parameters.
package scene

import (
	"github.com/magus/ray-tracer/pkg/core"
	"github.com/magus/ray-tracer/pkg/geometry"
	"github.com/magus/ray-tracer/pkg/renderer"
)

// Scene pairs a camera configuration with the objects to render
type Scene struct {
	CameraConfig renderer.CameraConfig
	Spheres      []*geometry.Sphere
}

// New creates an empty scene with the given camera configuration
func New(config renderer.CameraConfig) *Scene {
	return &Scene{CameraConfig: config}
}

// Add appends a sphere unconditionally
func (s *Scene) Add(sphere *geometry.Sphere) {
	s.Spheres = append(s.Spheres, sphere)
}

// PlaceSphere adds the sphere only if its center keeps at least minDistance
// from the center of every previously placed sphere that participates in
// collision checks (ground spheres opt out via their Collision flag).
// Reports whether the sphere was placed.
func (s *Scene) PlaceSphere(sphere *geometry.Sphere, minDistance float64) bool {
	for _, other := range s.Spheres {
		if !other.Collision {
			continue
		}
		if sphere.Center.Subtract(other.Center).Length() < minDistance {
			return false
		}
	}
	s.Spheres = append(s.Spheres, sphere)
	return true
}

// World returns the scene contents as a hittable aggregate for rendering
func (s *Scene) World() *geometry.HittableList {
	world := geometry.NewHittableList()
	for _, sphere := range s.Spheres {
		world.Add(sphere)
	}
	return world
}

// PrimitiveCount returns the number of objects in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.Spheres)
}

func vec3(x, y, z float64) core.Vec3 {
	return core.NewVec3(x, y, z)
}
