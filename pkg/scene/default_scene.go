package scene

import (
	"math/rand"

	"github.com/magus/ray-tracer/pkg/geometry"
	"github.com/magus/ray-tracer/pkg/material"
	"github.com/magus/ray-tracer/pkg/renderer"
)

// NewDebugScene returns the two-sphere normals-visualization scene: a small
// foreground sphere over a huge ground sphere, both with the debug material.
func NewDebugScene() *Scene {
	config := renderer.DefaultCameraConfig()

	s := New(config)
	s.Add(geometry.NewSphere(vec3(0, 0, -1), 0.5, material.NewDebug()))
	s.Add(geometry.NewGroundSphere(vec3(0, -100.5, -1), 100, material.NewDebug()))
	return s
}

// NewDefaultScene returns a three-sphere material showcase: diffuse center,
// glass on the left (with a hollow inner shell), fuzzy metal on the right.
func NewDefaultScene() *Scene {
	config := renderer.DefaultCameraConfig()
	config.VFov = 20
	config.LookFrom = vec3(-2, 2, 1)
	config.LookAt = vec3(0, 0, -1)
	config.DefocusAngle = 10
	config.FocusDistance = 3.4

	s := New(config)
	s.Add(geometry.NewGroundSphere(vec3(0, -100.5, -1), 100,
		material.NewLambertian(vec3(0.8, 0.8, 0.0), 1.0, false)))
	s.Add(geometry.NewSphere(vec3(0, 0, -1.2), 0.5,
		material.NewLambertian(vec3(0.1, 0.2, 0.5), 1.0, false)))
	s.Add(geometry.NewSphere(vec3(-1, 0, -1), 0.5,
		material.NewDielectric(1.5)))
	// Air bubble inside the glass sphere makes it hollow.
	s.Add(geometry.NewSphere(vec3(-1, 0, -1), 0.4,
		material.NewDielectric(1.0/1.5)))
	s.Add(geometry.NewSphere(vec3(1, 0, -1), 0.5,
		material.NewMetal(vec3(0.8, 0.6, 0.2), 1.0, 0.3)))
	return s
}

// NewCoverScene returns the classic random-sphere field: a large ground
// sphere, three big feature spheres, and a grid of small spheres with random
// materials. Placement uses the minimum-distance heuristic so small spheres
// never overlap the features; the ground opts out via its Collision flag.
func NewCoverScene(seed int64) *Scene {
	config := renderer.DefaultCameraConfig()
	config.VFov = 20
	config.LookFrom = vec3(13, 2, 3)
	config.LookAt = vec3(0, 0, 0)
	config.DefocusAngle = 0.6
	config.FocusDistance = 10

	random := rand.New(rand.NewSource(seed))

	s := New(config)
	s.Add(geometry.NewGroundSphere(vec3(0, -1000, 0), 1000,
		material.NewLambertian(vec3(0.5, 0.5, 0.5), 1.0, false)))

	s.Add(geometry.NewSphere(vec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	s.Add(geometry.NewSphere(vec3(-4, 1, 0), 1.0,
		material.NewLambertian(vec3(0.4, 0.2, 0.1), 1.0, false)))
	s.Add(geometry.NewSphere(vec3(4, 1, 0), 1.0,
		material.NewMetal(vec3(0.7, 0.6, 0.5), 1.0, 0.0)))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := vec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			sphere := geometry.NewSphere(center, 0.2, randomMaterial(random))
			s.PlaceSphere(sphere, 0.9)
		}
	}

	return s
}

// randomMaterial draws a small-sphere material: mostly diffuse, some metal,
// the occasional glass.
func randomMaterial(random *rand.Rand) material.Material {
	choice := random.Float64()
	switch {
	case choice < 0.8:
		albedo := vec3(
			random.Float64()*random.Float64(),
			random.Float64()*random.Float64(),
			random.Float64()*random.Float64(),
		)
		return material.NewLambertian(albedo, 1.0, false)
	case choice < 0.95:
		albedo := vec3(
			0.5+0.5*random.Float64(),
			0.5+0.5*random.Float64(),
			0.5+0.5*random.Float64(),
		)
		return material.NewMetal(albedo, 1.0, 0.5*random.Float64())
	default:
		return material.NewDielectric(1.5)
	}
}
