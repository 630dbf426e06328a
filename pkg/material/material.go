package material

import (
	"math"

	"github.com/magus/ray-tracer/pkg/core"
)

// Kind identifies a material variant. The set is closed so a Material fits in
// a plain value with compile-time-known size and no indirection in the hot
// scattering path.
type Kind int

const (
	// KindEmpty absorbs every ray. Neutral placeholder, never produces light.
	KindEmpty Kind = iota
	// KindDebug returns a terminal color derived from the surface normal.
	KindDebug
	// KindLambertian is a diffuse surface.
	KindLambertian
	// KindMetal is a glossy reflective surface.
	KindMetal
	// KindDielectric is a clear refractive surface (glass, water).
	KindDielectric
)

// Material is an immutable value describing how a surface scatters light.
// Materials are copied by value into each object that uses them.
type Material struct {
	Kind Kind

	// Albedo is the base reflected color (Lambertian, Metal).
	Albedo core.Vec3
	// Reflectance is the probability that a ray is reflected rather than
	// absorbed, in [0, 1] (Lambertian, Metal).
	Reflectance float64
	// Fuzz perturbs the mirror reflection to simulate a rough metal (Metal).
	Fuzz float64
	// RefractionIndex is the material's index over the enclosing medium's
	// (Dielectric).
	RefractionIndex float64
	// Uniform switches lambertian sampling from normal+randomUnit to a
	// uniform hemisphere draw (Lambertian).
	Uniform bool
}

// NewEmpty creates a material that absorbs everything
func NewEmpty() Material {
	return Material{Kind: KindEmpty}
}

// NewDebug creates a material that visualizes surface normals
func NewDebug() Material {
	return Material{Kind: KindDebug}
}

// NewLambertian creates a diffuse material
func NewLambertian(albedo core.Vec3, reflectance float64, uniform bool) Material {
	return Material{
		Kind:        KindLambertian,
		Albedo:      albedo,
		Reflectance: reflectance,
		Uniform:     uniform,
	}
}

// NewMetal creates a glossy reflective material. Fuzz above 1 is clamped.
func NewMetal(albedo core.Vec3, reflectance, fuzz float64) Material {
	return Material{
		Kind:        KindMetal,
		Albedo:      albedo,
		Reflectance: reflectance,
		Fuzz:        math.Min(fuzz, 1.0),
	}
}

// NewDielectric creates a clear refractive material
func NewDielectric(refractionIndex float64) Material {
	return Material{Kind: KindDielectric, RefractionIndex: refractionIndex}
}

// HitRecord contains information about a ray-object intersection.
// It lives for the duration of one intersection query.
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, oriented against the ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal orients the stored normal against the incoming ray and
// records which face was hit.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterRecord contains the result of material scattering.
type ScatterRecord struct {
	Scattered   core.Ray  // The outgoing ray
	Attenuation core.Vec3 // Multiplicative throughput factor
	Color       core.Vec3 // Direct terminal color, valid when HasColor is set
	HasColor    bool      // Terminal color short-circuits further bouncing
}

// Scatter produces an outgoing ray, attenuation, and/or direct color for a
// surface hit. Returns false when the ray is absorbed.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	switch m.Kind {
	case KindDebug:
		return m.scatterDebug(rayIn, hit)
	case KindLambertian:
		return m.scatterLambertian(hit, sampler)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, sampler)
	}
	// Empty (and any zero value) absorbs.
	return ScatterRecord{}, false
}

// scatterDebug maps the normal from [-1,1] to [0,1] per channel and returns
// it as a terminal color, bypassing recursion.
func (m Material) scatterDebug(rayIn core.Ray, hit HitRecord) (ScatterRecord, bool) {
	normal01 := hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
	return ScatterRecord{
		Scattered:   rayIn,
		Attenuation: core.NewVec3(0, 0, 0),
		Color:       normal01,
		HasColor:    true,
	}, true
}

func (m Material) scatterLambertian(hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	var direction core.Vec3
	if m.Uniform {
		direction = core.RandomOnHemisphere(hit.Normal, sampler)
	} else {
		direction = hit.Normal.Add(core.RandomUnitVector(sampler))
		if direction.NearZero() {
			direction = hit.Normal
		}
	}

	return reflectanceScatter(hit, direction, m.Albedo, m.Reflectance, 0, sampler)
}

func (m Material) scatterMetal(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	direction := rayIn.Direction.Reflect(hit.Normal)
	return reflectanceScatter(hit, direction, m.Albedo, m.Reflectance, m.Fuzz, sampler)
}

func (m Material) scatterDielectric(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	// Entering the surface crosses from air into the material, exiting
	// crosses back out.
	refractionIndex := m.RefractionIndex
	if hit.FrontFace {
		refractionIndex = 1.0 / m.RefractionIndex
	}

	incident := rayIn.Direction.Normalize()
	cosTheta := math.Min(incident.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Refract only when Snell's law has a solution; Refract itself assumes
	// this has already been checked.
	cannotRefract := refractionIndex*sinTheta > 1.0
	mustReflect := SchlickReflectance(cosTheta, refractionIndex) > sampler.Get1D()

	var direction core.Vec3
	if cannotRefract || mustReflect {
		direction = incident.Reflect(hit.Normal)
	} else {
		direction = incident.Refract(hit.Normal, refractionIndex)
	}

	return ScatterRecord{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// reflectanceScatter implements "reflect with probability p, else absorb",
// shared by Lambertian and Metal. The surviving ray's attenuation is
// albedo/p, which keeps the estimator unbiased in expectation. The draw is
// in [0, 1), so p == 0 always takes the absorption branch and the division
// below is safe.
func reflectanceScatter(hit HitRecord, direction core.Vec3, albedo core.Vec3, reflectance, fuzz float64, sampler core.Sampler) (ScatterRecord, bool) {
	if sampler.Get1D() >= reflectance {
		return ScatterRecord{}, false
	}

	scattered := direction.Normalize()
	if fuzz > 0 {
		scattered = scattered.Add(core.RandomUnitVector(sampler).Multiply(fuzz))
	}

	// A direction pointing into the surface is absorbed.
	if scattered.Dot(hit.Normal) < 0 {
		return ScatterRecord{}, false
	}

	return ScatterRecord{
		Scattered:   core.NewRay(hit.Point, scattered),
		Attenuation: albedo.Divide(reflectance),
	}, true
}

// SchlickReflectance approximates the angle-dependent Fresnel reflectance of
// a dielectric surface.
// https://en.wikipedia.org/wiki/Schlick%27s_approximation
func SchlickReflectance(cosine, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
