package renderer

import (
	"math"

	"github.com/magus/ray-tracer/pkg/core"
	"github.com/magus/ray-tracer/pkg/geometry"
)

// CameraConfig holds the user-facing camera parameters. A Camera is derived
// from it once and never mutated during a render.
type CameraConfig struct {
	AspectRatio     float64   // Width over height
	ImageHeight     int       // Rendered image height in pixels
	SamplesPerPixel int       // Rays traced per pixel
	MaxDepth        int       // Maximum ray bounce depth
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Eye position
	LookAt          core.Vec3 // Point the camera faces
	Up              core.Vec3 // World-space up direction
	DefocusAngle    float64   // Lens cone angle in degrees; <= 0 disables depth of field
	FocusDistance   float64   // Distance from eye to the plane of perfect focus
	BackgroundTop   core.Vec3 // Sky color straight up
	BackgroundBot   core.Vec3 // Sky color at the horizon
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageHeight:     400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   1,
		BackgroundTop:   core.NewVec3(0.5, 0.7, 1.0),
		BackgroundBot:   core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Camera maps pixel coordinates to world-space rays and owns the recursive
// color integrator. Immutable once constructed; workers share it by reference.
type Camera struct {
	config      CameraConfig
	imageWidth  int
	imageHeight int

	center      core.Vec3 // Eye point
	pixel00     core.Vec3 // Center of the upper-left pixel
	pixelDeltaU core.Vec3 // Offset between horizontally adjacent pixels
	pixelDeltaV core.Vec3 // Offset between vertically adjacent pixels

	u, v, w core.Vec3 // Orthonormal camera basis: right, up, back-toward-eye

	defocusDiskU core.Vec3 // Defocus disk horizontal radius vector
	defocusDiskV core.Vec3 // Defocus disk vertical radius vector
}

// NewCamera derives the full render configuration from a CameraConfig
func NewCamera(config CameraConfig) *Camera {
	imageHeight := config.ImageHeight
	imageWidth := int(float64(imageHeight) * config.AspectRatio)
	if imageWidth < 1 {
		imageWidth = 1
	}

	center := config.LookFrom

	// Viewport extents from the vertical field of view at the focus plane.
	theta := degreesToRadians(config.VFov)
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2 * halfHeight * config.FocusDistance
	// Use the real image aspect ratio, which may differ from the requested
	// one due to integer rounding of the width.
	viewportWidth := viewportHeight * float64(imageWidth) / float64(imageHeight)

	// Orthonormal basis: w points from the target back toward the eye.
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors along the viewport edges; v runs down the image.
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(imageWidth))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	upperLeft := center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	camera := &Camera{
		config:      config,
		imageWidth:  imageWidth,
		imageHeight: imageHeight,
		center:      center,
		pixel00:     pixel00,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		u:           u,
		v:           v,
		w:           w,
	}

	if config.DefocusAngle > 0 {
		defocusRadius := config.FocusDistance * math.Tan(degreesToRadians(config.DefocusAngle)/2)
		camera.defocusDiskU = u.Multiply(defocusRadius)
		camera.defocusDiskV = v.Multiply(defocusRadius)
	}

	return camera
}

// Width returns the rendered image width in pixels
func (c *Camera) Width() int {
	return c.imageWidth
}

// Height returns the rendered image height in pixels
func (c *Camera) Height() int {
	return c.imageHeight
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay returns a ray from the camera toward a jittered sample position
// within pixel (x, y). The jitter covers [-0.5, 0.5)² in pixel-delta units
// for anti-aliasing. With depth of field enabled the ray origin is sampled
// from the defocus disk instead of the exact eye point.
func (c *Camera) GetRay(x, y int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(x) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(y) + offset.Y - 0.5))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		p := core.RandomInUnitDisk(sampler)
		origin = c.center.
			Add(c.defocusDiskU.Multiply(p.X)).
			Add(c.defocusDiskV.Multiply(p.Y))
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// RayColor is the recursive integrator: it bounces a ray through the world
// until the depth budget is exhausted or the ray escapes to the background,
// composing attenuation along the way.
func (c *Camera) RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	// Bounce budget exhausted; no more light is gathered.
	if depth <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	// The 0.001 lower bound is the shadow-acne epsilon preventing immediate
	// self-intersection at the originating surface.
	hit, isHit := world.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		return c.backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.NewVec3(0, 0, 0)
	}

	// Diagnostic materials short-circuit further bouncing.
	if scatter.HasColor {
		return scatter.Color
	}

	return scatter.Attenuation.MultiplyVec(
		c.RayColor(scatter.Scattered, world, depth-1, sampler))
}

// backgroundGradient interpolates between the horizon and sky colors based on
// the ray direction's vertical component.
func (c *Camera) backgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return c.config.BackgroundBot.Lerp(c.config.BackgroundTop, a)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
