package analytics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/cszach/three.js-sketches/pkg/geo"
	"github.com/cszach/three.js-sketches/pkg/layout"
	"github.com/cszach/three.js-sketches/pkg/placement"
)

// maxReach returns the largest horizontal distance from the trunk axis to
// a leaf center.
func maxReach(t layout.Tree) float64 {
	reach := 0.0
	for i := range t.Branches {
		d := t.LeafWorld(i).Sub(t.Position)
		reach = math.Max(reach, math.Hypot(d.X(), d.Z()))
	}
	return reach
}

// fillRatio returns the summed box volume of objs over the volume of s.
func fillRatio(objs []placement.PlacedObject, s geo.Sphere) float64 {
	v := s.Volume()
	if v == 0 {
		return 0
	}
	total := 0.0
	for _, o := range objs {
		total += o.Bounds.Volume()
	}
	return total / v
}

// meanCubedRadius returns mean(|p-c|^3) / R^3 over the object centers.
func meanCubedRadius(objs []placement.PlacedObject, s geo.Sphere) float64 {
	if len(objs) == 0 || s.Radius == 0 {
		return 0
	}
	sum := 0.0
	for _, o := range objs {
		r := geo.Distance(o.Position, s.Center)
		sum += r * r * r
	}
	return sum / float64(len(objs)) / (s.Radius * s.Radius * s.Radius)
}

// pointBounds returns the componentwise min and max of pts.
func pointBounds(pts []mgl64.Vec3) (min, max mgl64.Vec3) {
	if len(pts) == 0 {
		return min, max
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		for i := 0; i < 3; i++ {
			min[i] = math.Min(min[i], p[i])
			max[i] = math.Max(max[i], p[i])
		}
	}
	return min, max
}
