package geo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sphere is a ball given by center and radius.
type Sphere struct {
	Center mgl64.Vec3 `yaml:"center" json:"center"`
	Radius float64    `yaml:"radius" json:"radius"`
}

// ContainsPoint reports whether p is inside the sphere or on its surface.
func (s Sphere) ContainsPoint(p mgl64.Vec3) bool {
	d := p.Sub(s.Center)
	return d.Dot(d) <= s.Radius*s.Radius
}

// BoundingBox returns the axis-aligned cube enclosing the sphere.
func (s Sphere) BoundingBox() Box {
	return Box{
		Center:      s.Center,
		HalfExtents: mgl64.Vec3{s.Radius, s.Radius, s.Radius},
	}
}

// Volume returns the sphere volume.
func (s Sphere) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius
}
