package analytics

import (
	"fmt"

	"github.com/cszach/three.js-sketches/pkg/layout"
	"github.com/cszach/three.js-sketches/pkg/placement"
	"github.com/cszach/three.js-sketches/pkg/validation"
)

// MaxFillRatio is the object-to-sphere volume ratio above which a field is
// reported as too dense.
const MaxFillRatio = 0.5

// Summarize computes statistics over the generator output and flags
// fields that are likely too dense to avoid overlaps.
func Summarize(trees []layout.Tree, fields []placement.Field, clouds []placement.ParticleCloud) (*Summary, *validation.Report) {
	report := validation.NewReport()
	sum := &Summary{
		Trees:  make([]TreeStats, 0, len(trees)),
		Fields: make([]FieldStats, 0, len(fields)),
		Clouds: make([]CloudStats, 0, len(clouds)),
	}

	// 1. Trees
	for _, t := range trees {
		ts := TreeStats{
			Name:        t.Name,
			Rows:        t.Rows,
			Branches:    len(t.Branches),
			Lights:      len(t.Branches),
			TrunkHeight: t.Trunk.Height,
			Height:      t.Height(),
			MaxReach:    maxReach(t),
		}
		sum.Trees = append(sum.Trees, ts)
		sum.TotalLights += ts.Lights
	}

	// 2. Fields
	for i, f := range fields {
		fs := summarizeField(f)
		sum.Fields = append(sum.Fields, fs)
		sum.TotalObjects += fs.Placed

		if fs.FillRatio > MaxFillRatio {
			report.AddWarning(validation.Result{
				Level:       validation.LevelPlacement,
				Message:     fmt.Sprintf("field %s is likely too dense to avoid overlaps (fill ratio %.2f)", f.Name, fs.FillRatio),
				SpecPath:    fmt.Sprintf("fields[%d]", i),
				ActualValue: fs.FillRatio,
				Expected:    fmt.Sprintf("<= %.2f", MaxFillRatio),
				Suggestions: []string{"Reduce quantity or half_extents", "Enlarge bounding_sphere.radius"},
			})
		}
	}

	// 3. Particle clouds
	for _, c := range clouds {
		min, max := pointBounds(c.Points)
		sum.Clouds = append(sum.Clouds, CloudStats{
			Name:   c.Name,
			Points: len(c.Points),
			Min:    min,
			Max:    max,
		})
	}

	report.AddInfo(validation.Result{
		Level: validation.LevelPlacement,
		Message: fmt.Sprintf("%d trees with %d lights, %d fields with %d objects, %d particle clouds",
			len(sum.Trees), sum.TotalLights, len(sum.Fields), sum.TotalObjects, len(sum.Clouds)),
	})
	return sum, report
}

func summarizeField(f placement.Field) FieldStats {
	fs := FieldStats{
		Name:            f.Name,
		Placed:          len(f.Objects),
		Overlapping:     f.Overlapping(),
		Hidden:          len(f.Hidden),
		Animated:        len(f.Animated),
		FillRatio:       fillRatio(f.Objects, f.Bounds),
		MeanCubedRadius: meanCubedRadius(f.Objects, f.Bounds),
	}
	total := 0
	for _, o := range f.Objects {
		total += o.Retries
		if o.Retries > fs.MaxRetries {
			fs.MaxRetries = o.Retries
		}
	}
	if len(f.Objects) > 0 {
		fs.MeanRetries = float64(total) / float64(len(f.Objects))
	}
	return fs
}
