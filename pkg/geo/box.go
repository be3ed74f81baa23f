package geo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned bounding box described by its center and the
// half-extent along each axis.
type Box struct {
	Center      mgl64.Vec3 `json:"center"`
	HalfExtents mgl64.Vec3 `json:"half_extents"`
}

// NewBox returns the box centered at center with the given half-extents.
func NewBox(center, halfExtents mgl64.Vec3) Box {
	return Box{Center: center, HalfExtents: halfExtents}
}

// BoxFromMinMax builds a box from two opposite corners.
func BoxFromMinMax(min, max mgl64.Vec3) Box {
	return Box{
		Center:      min.Add(max).Mul(0.5),
		HalfExtents: max.Sub(min).Mul(0.5),
	}
}

// Min returns the corner with the smallest coordinates.
func (b Box) Min() mgl64.Vec3 {
	return b.Center.Sub(b.HalfExtents)
}

// Max returns the corner with the largest coordinates.
func (b Box) Max() mgl64.Vec3 {
	return b.Center.Add(b.HalfExtents)
}

// Size returns the full extent along each axis.
func (b Box) Size() mgl64.Vec3 {
	return b.HalfExtents.Mul(2)
}

// Volume returns the box volume.
func (b Box) Volume() float64 {
	s := b.Size()
	return s[0] * s[1] * s[2]
}

// Translate returns the box moved so that its center is at c.
func (b Box) Translate(c mgl64.Vec3) Box {
	return Box{Center: c, HalfExtents: b.HalfExtents}
}

// Overlaps reports whether b and o overlap on all three axes. Boxes that
// only touch along a face do not overlap.
func (b Box) Overlaps(o Box) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(b.Center[i]-o.Center[i]) >= b.HalfExtents[i]+o.HalfExtents[i] {
			return false
		}
	}
	return true
}

// Contains reports whether o lies entirely inside b (boundaries inclusive).
func (b Box) Contains(o Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	for i := 0; i < 3; i++ {
		if oMin[i] < bMin[i] || oMax[i] > bMax[i] {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether p lies inside b (boundaries inclusive).
func (b Box) ContainsPoint(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(p[i]-b.Center[i]) > b.HalfExtents[i] {
			return false
		}
	}
	return true
}

// Union returns the smallest box enclosing both b and o.
func (b Box) Union(o Box) Box {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	var min, max mgl64.Vec3
	for i := 0; i < 3; i++ {
		min[i] = math.Min(bMin[i], oMin[i])
		max[i] = math.Max(bMax[i], oMax[i])
	}
	return BoxFromMinMax(min, max)
}
