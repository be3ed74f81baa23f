package placement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BobOffset returns the animated height of an object resting at baseY:
// baseY + sin(t*timeMul)*distMul.
func BobOffset(baseY, t, timeMul, distMul float64) float64 {
	return baseY + math.Sin(t*timeMul)*distMul
}

// Bob returns the positions of objs at time t. Every object moves by the
// same offset, so they rise and fall together.
func Bob(objs []PlacedObject, t, timeMul, distMul float64) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(objs))
	for i, o := range objs {
		p := o.Position
		p[1] = BobOffset(p[1], t, timeMul, distMul)
		out[i] = p
	}
	return out
}
