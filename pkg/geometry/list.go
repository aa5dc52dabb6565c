package geometry

import (
	"github.com/glimmerlab/pathtracer/pkg/core"
)

// HittableList is an ordered collection of surfaces that is itself a
// surface: it reports the closest intersection across all of its members
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Hit performs a linear scan over all members, shrinking the search
// interval to the closest hit found so far
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
