package placement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/cszach/three.js-sketches/pkg/geo"
	"github.com/cszach/three.js-sketches/pkg/validation"
)

// Request describes one bounded random placement: Quantity boxes of the
// given half-extents scattered inside Bounds, kept clear of Forbidden.
type Request struct {
	Quantity    int
	Bounds      geo.Sphere
	Forbidden   *geo.Sphere
	HalfExtents mgl64.Vec3
	MaxRetries  int
}

// PlacedObject is one accepted placement.
type PlacedObject struct {
	Index       int        `json:"index"`
	Position    mgl64.Vec3 `json:"position"`
	Bounds      geo.Box    `json:"bounds"`
	Retries     int        `json:"retries"`     // resamples after the first candidate
	Overlapping bool       `json:"overlapping"` // accepted while still colliding
}

// Validate checks the request preconditions.
func (r Request) Validate() error {
	switch {
	case r.Quantity < 0:
		return validation.Invalid("quantity", r.Quantity, "must be >= 0")
	case !(r.Bounds.Radius > 0):
		return validation.Invalid("bounding_sphere.radius", r.Bounds.Radius, "must be > 0")
	case !geo.IsFinite(r.Bounds.Center):
		return validation.Invalid("bounding_sphere.center", r.Bounds.Center, "must be finite")
	case r.MaxRetries < 0:
		return validation.Invalid("max_retries", r.MaxRetries, "must be >= 0")
	case !nonNegative(r.HalfExtents):
		return validation.Invalid("half_extents", r.HalfExtents, "must be >= 0 on every axis")
	case r.Forbidden != nil && !(r.Forbidden.Radius >= 0):
		return validation.Invalid("forbidden_sphere.radius", r.Forbidden.Radius, "must be >= 0")
	}
	return nil
}

// PlaceObjects places req.Quantity boxes by rejection sampling. Each
// candidate is resampled while it overlaps an earlier object or the
// forbidden sphere's bounding box, at most req.MaxRetries times; after that
// the last candidate is accepted anyway. The result always holds exactly
// req.Quantity objects in acceptance order. Invalid requests fail before
// src is consulted.
func PlaceObjects(req Request, src Source) ([]PlacedObject, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	placed := make([]PlacedObject, 0, req.Quantity)
	if req.Quantity == 0 {
		return placed, nil
	}

	var forbidden *geo.Box
	if req.Forbidden != nil {
		fb := req.Forbidden.BoundingBox()
		forbidden = &fb
	}

	for i := 0; i < req.Quantity; i++ {
		box := geo.NewBox(SamplePoint(req.Bounds, src), req.HalfExtents)
		retries := 0
		for collides(box, placed, forbidden) && retries < req.MaxRetries {
			box = box.Translate(SamplePoint(req.Bounds, src))
			retries++
		}

		placed = append(placed, PlacedObject{
			Index:       i,
			Position:    box.Center,
			Bounds:      box,
			Retries:     retries,
			Overlapping: collides(box, placed, forbidden),
		})
	}
	return placed, nil
}

func collides(box geo.Box, placed []PlacedObject, forbidden *geo.Box) bool {
	if forbidden != nil && (box.Overlaps(*forbidden) || box.Contains(*forbidden)) {
		return true
	}
	for _, p := range placed {
		if box.Overlaps(p.Bounds) {
			return true
		}
	}
	return false
}

func nonNegative(v mgl64.Vec3) bool {
	for _, c := range v {
		if !(c >= 0) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
