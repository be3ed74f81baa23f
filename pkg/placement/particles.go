package placement

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/cszach/three.js-sketches/pkg/validation"
)

// ScatterCube returns n points with every coordinate drawn uniformly from
// [lo, hi].
func ScatterCube(n int, lo, hi float64, src Source) ([]mgl64.Vec3, error) {
	switch {
	case n < 0:
		return nil, validation.Invalid("quantity", n, "must be >= 0")
	case !(hi >= lo):
		return nil, validation.Invalid("outer", hi, "must be >= inner")
	}

	span := hi - lo
	pts := make([]mgl64.Vec3, n)
	for i := range pts {
		pts[i] = mgl64.Vec3{
			src.Float64()*span + lo,
			src.Float64()*span + lo,
			src.Float64()*span + lo,
		}
	}
	return pts, nil
}
