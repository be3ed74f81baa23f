package geo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is +Y in the scene; trunks grow along it.
var Up = mgl64.Vec3{0, 1, 0}

// V is a shorthand constructor for mgl64.Vec3.
func V(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}

// Lerp returns the linear interpolation between a and b at t in [0,1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec returns the linear interpolation between p and q at t in [0,1].
func LerpVec(p, q mgl64.Vec3, t float64) mgl64.Vec3 {
	return p.Add(q.Sub(p).Mul(t))
}

// Distance returns the Euclidean distance from p to q.
func Distance(p, q mgl64.Vec3) float64 {
	return p.Sub(q).Len()
}

// IsFinite reports whether every component of v is neither NaN nor infinite.
func IsFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Spherical converts a unit-sphere direction given by azimuth theta (around Z
// in the XY plane) and polar angle phi (from +Z) into a unit vector.
func Spherical(theta, phi float64) mgl64.Vec3 {
	sinPhi := math.Sin(phi)
	return mgl64.Vec3{
		sinPhi * math.Cos(theta),
		sinPhi * math.Sin(theta),
		math.Cos(phi),
	}
}
