package geometry

import (
	"github.com/magus/ray-tracer/pkg/core"
	"github.com/magus/ray-tracer/pkg/material"
)

// Hittable is anything a ray can be tested against for intersection.
// Hit returns the nearest intersection with parameter strictly inside the
// open interval (tMin, tMax), or false if there is none.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

// HittableList is an insertion-ordered collection of hittable objects.
// It is queried read-only during rendering.
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates an empty hittable collection
func NewHittableList() *HittableList {
	return &HittableList{}
}

// Add appends an object to the collection
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Clear removes all objects from the collection
func (l *HittableList) Clear() {
	l.Objects = nil
}

// Hit scans every object linearly, narrowing tMax to the closest hit found so
// far, and returns the globally nearest intersection. Interval bounds are
// open, so an object evaluated earlier in iteration order wins exact ties.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}
