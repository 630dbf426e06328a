package geometry

import (
	"math"

	"github.com/magus/ray-tracer/pkg/core"
	"github.com/magus/ray-tracer/pkg/material"
)

// Sphere is the only analytic primitive. A negative radius silently clamps to
// a degenerate zero-radius sphere rather than erroring.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material

	// Collision marks whether the sphere participates in the
	// minimum-distance exclusion heuristic during scene packing. Ground
	// spheres are typically excluded. Scene-construction policy only; the
	// renderer never reads it.
	Collision bool
}

// NewSphere creates a new sphere that participates in scene packing
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:    center,
		Radius:    math.Max(radius, 0),
		Material:  mat,
		Collision: true,
	}
}

// NewGroundSphere creates a sphere excluded from the scene-packing
// minimum-distance heuristic.
func NewGroundSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	s := NewSphere(center, radius, mat)
	s.Collision = false
	return s
}

// Hit tests the ray against the sphere using the closed-form quadratic.
// https://raytracing.github.io/books/RayTracingInOneWeekend.html#addingasphere/ray-sphereintersection
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// A degenerate zero-radius sphere has no surface; without this guard a
	// tangent ray would hit it and divide by the radius below.
	if s.Radius <= 0 {
		return nil, false
	}

	tInterval := core.NewInterval(tMin, tMax)

	oc := s.Center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Prefer the nearer root; fall back to the farther one.
	root := (h - sqrtD) / a
	if !tInterval.Surrounds(root) {
		root = (h + sqrtD) / a
		if !tInterval.Surrounds(root) {
			return nil, false
		}
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(s.Center).Divide(s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
