package layout

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/cszach/three.js-sketches/pkg/spec"
	"github.com/cszach/three.js-sketches/pkg/validation"
)

// LightGrid is a rectangular arrangement of point lights at a fixed height.
type LightGrid struct {
	Name      string       `json:"name"`
	Rows      int          `json:"rows"`
	Columns   int          `json:"columns"`
	Color     string       `json:"color"`
	Positions []mgl64.Vec3 `json:"positions"`
}

// LightGridPositions returns a symmetric grid of light positions centered on
// the origin: floor(length/xGap)+1 rows along X by floor(width/zGap)+1
// columns along Z, row-major.
func LightGridPositions(def spec.LightGridDef) (rows, cols int, positions []mgl64.Vec3, err error) {
	switch {
	case !(def.XGap > 0):
		return 0, 0, nil, validation.Invalid("x_gap", def.XGap, "must be > 0")
	case !(def.ZGap > 0):
		return 0, 0, nil, validation.Invalid("z_gap", def.ZGap, "must be > 0")
	case !(def.Length >= 0):
		return 0, 0, nil, validation.Invalid("length", def.Length, "must be >= 0")
	case !(def.Width >= 0):
		return 0, 0, nil, validation.Invalid("width", def.Width, "must be >= 0")
	}

	rows = int(math.Floor(def.Length/def.XGap)) + 1
	cols = int(math.Floor(def.Width/def.ZGap)) + 1
	x0 := -float64(rows-1) * def.XGap / 2
	z0 := -float64(cols-1) * def.ZGap / 2

	positions = make([]mgl64.Vec3, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			positions = append(positions, mgl64.Vec3{
				x0 + float64(r)*def.XGap,
				def.Height,
				z0 + float64(c)*def.ZGap,
			})
		}
	}
	return rows, cols, positions, nil
}

// BuildLightGrids lays out every light grid in the spec.
func BuildLightGrids(s *spec.SketchSpec) ([]LightGrid, *validation.Report) {
	report := validation.NewReport()
	var grids []LightGrid

	for i, def := range s.LightGrids {
		path := fmt.Sprintf("light_grids[%d]", i)
		rows, cols, positions, err := LightGridPositions(def)
		if err != nil {
			report.AddErr(validation.LevelLayout, path, err)
			continue
		}
		grids = append(grids, LightGrid{
			Name:      def.Name,
			Rows:      rows,
			Columns:   cols,
			Color:     def.Color,
			Positions: positions,
		})
		report.AddInfo(validation.Result{
			Level:    validation.LevelLayout,
			Message:  fmt.Sprintf("light grid %s: %d x %d lights", def.Name, rows, cols),
			SpecPath: path,
		})
	}
	return grids, report
}
