package core

import (
	"math"
	"math/rand"
)

// Vec2 holds a pair of sample values
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sampler provides uniform random values for rendering algorithms.
// Can be swapped out for a deterministic source in tests.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// RandomUnitVector generates a uniform random direction on the unit sphere
// by rejection sampling the unit ball.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := NewVec3(2*sampler.Get1D()-1, 2*sampler.Get1D()-1, 2*sampler.Get1D()-1)
		lenSq := p.LengthSquared()
		// Reject points outside the ball and tiny vectors whose
		// normalization would blow up.
		if lenSq <= 1.0 && lenSq > 1e-160 {
			return p.Divide(math.Sqrt(lenSq))
		}
	}
}

// RandomOnHemisphere generates a uniform random direction on the hemisphere
// aligned with the given normal.
func RandomOnHemisphere(normal Vec3, sampler Sampler) Vec3 {
	unit := RandomUnitVector(sampler)
	if unit.Dot(normal) > 0 {
		return unit
	}
	return unit.Negate()
}

// RandomInUnitDisk generates a random point in the unit disk on the z=0
// plane (for defocus-disk lens sampling).
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		p := NewVec3(2*sampler.Get1D()-1, 2*sampler.Get1D()-1, 0)
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}
