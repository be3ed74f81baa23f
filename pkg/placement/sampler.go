package placement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/cszach/three.js-sketches/pkg/geo"
)

// Source yields uniform floats in [0, 1). *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
}

// SamplePoint returns a point uniformly distributed by volume inside s.
// Angles come from two uniforms (theta = 2πu, phi = acos(2v-1)) and the
// radius from the cube root of a third, so density is constant per unit
// volume rather than per unit radius.
func SamplePoint(s geo.Sphere, src Source) mgl64.Vec3 {
	u := src.Float64()
	v := src.Float64()
	r := math.Cbrt(src.Float64())

	theta := u * 2 * math.Pi
	phi := math.Acos(2*v - 1)

	return s.Center.Add(geo.Spherical(theta, phi).Mul(r * s.Radius))
}
