package validation

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/cszach/three.js-sketches/pkg/spec"
)

// ValidateSchema performs schema validation on a parsed SketchSpec.
// It checks structural correctness before any generator runs.
func ValidateSchema(s *spec.SketchSpec) *Report {
	r := NewReport()

	validateNames(s, r)
	validateTrees(s, r)
	validateFields(s, r)
	validateLightGrids(s, r)
	validateParticles(s, r)

	if len(s.Trees)+len(s.Fields)+len(s.LightGrids)+len(s.Particles) == 0 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "spec declares no trees, fields, light grids or particles",
			Suggestions: []string{"Add at least one entry under trees: or fields:"},
		})
	}

	return r
}

// validateNames rejects duplicate names; scene entity IDs are derived from them.
func validateNames(s *spec.SketchSpec, r *Report) {
	seen := make(map[string]string)
	check := func(name, path string) {
		if prev, ok := seen[name]; ok {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("duplicate name %q (also used by %s)", name, prev),
				SpecPath:    path,
				ActualValue: name,
				Expected:    "unique name",
			})
			return
		}
		seen[name] = path
	}
	for i, t := range s.Trees {
		check(t.Name, fmt.Sprintf("trees[%d].name", i))
	}
	for i, f := range s.Fields {
		check(f.Name, fmt.Sprintf("fields[%d].name", i))
	}
	for i, g := range s.LightGrids {
		check(g.Name, fmt.Sprintf("light_grids[%d].name", i))
	}
	for i, p := range s.Particles {
		check(p.Name, fmt.Sprintf("particles[%d].name", i))
	}
}

func validateTrees(s *spec.SketchSpec, r *Report) {
	for i, t := range s.Trees {
		p := fmt.Sprintf("trees[%d]", i)

		requirePositive(r, p+".trunk.height", t.Trunk.Height)
		requireNonNegative(r, p+".trunk.radius_top", t.Trunk.RadiusTop)
		requireNonNegative(r, p+".trunk.radius_bottom", t.Trunk.RadiusBottom)
		requireNonNegative(r, p+".branch.length", t.Branch.Length)
		requireNonNegative(r, p+".branch.radius", t.Branch.Radius)
		requirePositive(r, p+".branch.row_spacing", t.Branch.RowSpacing)
		requireNonNegative(r, p+".leaf.radius", t.Leaf.Radius)

		if t.Branch.PerRow < 1 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s (%s): branch.per_row must be at least 1", p, t.Name),
				SpecPath:    p + ".branch.per_row",
				ActualValue: t.Branch.PerRow,
				Expected:    ">= 1",
			})
		}

		if t.Branch.RowSpacing > 0 && t.Trunk.Height > 0 && t.Branch.RowSpacing > t.Trunk.Height/2 {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s (%s): row_spacing %.2f exceeds half the trunk height; only one row of branches fits", p, t.Name, t.Branch.RowSpacing),
				SpecPath:    p + ".branch.row_spacing",
				ActualValue: t.Branch.RowSpacing,
			})
		}

		if len(t.LightColors) == 0 {
			r.AddError(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("%s (%s): light_colors must contain at least one color", p, t.Name),
				SpecPath: p + ".light_colors",
				Expected: "non-empty list of hex colors",
			})
		}
		for j, c := range t.LightColors {
			requireColor(r, fmt.Sprintf("%s.light_colors[%d]", p, j), c)
		}
	}
}

func validateFields(s *spec.SketchSpec, r *Report) {
	for i, f := range s.Fields {
		p := fmt.Sprintf("fields[%d]", i)

		if f.Quantity < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s (%s): quantity must be >= 0", p, f.Name),
				SpecPath:    p + ".quantity",
				ActualValue: f.Quantity,
				Expected:    ">= 0",
			})
		}
		requirePositive(r, p+".bounding_sphere.radius", f.BoundingSphere.Radius)
		for axis, h := range f.HalfExtents {
			requireNonNegative(r, fmt.Sprintf("%s.half_extents[%d]", p, axis), h)
		}
		if f.MaxRetries != nil && *f.MaxRetries < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s (%s): max_retries must be >= 0", p, f.Name),
				SpecPath:    p + ".max_retries",
				ActualValue: *f.MaxRetries,
				Expected:    ">= 0",
			})
		}
		if f.ForbiddenSphere != nil {
			requireNonNegative(r, p+".forbidden_sphere.radius", f.ForbiddenSphere.Radius)
			if f.BoundingSphere.Radius > 0 && f.ForbiddenSphere.Radius >= f.BoundingSphere.Radius {
				r.AddWarning(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("%s (%s): forbidden sphere is at least as large as the bounding sphere; every object will exhaust its retry budget", p, f.Name),
					SpecPath:    p + ".forbidden_sphere.radius",
					ActualValue: f.ForbiddenSphere.Radius,
					Expected:    fmt.Sprintf("< %.2f", f.BoundingSphere.Radius),
				})
			}
		}
		if f.ExclusionZone != nil {
			requireNonNegative(r, p+".exclusion_zone.radius", f.ExclusionZone.Radius)
		}

		switch f.Animation {
		case spec.AnimationNone, spec.AnimationSome, spec.AnimationAll:
		default:
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s (%s): unknown animation policy %q", p, f.Name, f.Animation),
				SpecPath:    p + ".animation",
				ActualValue: f.Animation,
				Expected:    "none, some or all",
			})
		}
		requireColor(r, p+".color", f.Color)
	}
}

func validateLightGrids(s *spec.SketchSpec, r *Report) {
	for i, g := range s.LightGrids {
		p := fmt.Sprintf("light_grids[%d]", i)
		requireNonNegative(r, p+".length", g.Length)
		requireNonNegative(r, p+".width", g.Width)
		requirePositive(r, p+".x_gap", g.XGap)
		requirePositive(r, p+".z_gap", g.ZGap)
		requireColor(r, p+".color", g.Color)
	}
}

func validateParticles(s *spec.SketchSpec, r *Report) {
	for i, pd := range s.Particles {
		p := fmt.Sprintf("particles[%d]", i)
		if pd.Quantity < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s (%s): quantity must be >= 0", p, pd.Name),
				SpecPath:    p + ".quantity",
				ActualValue: pd.Quantity,
				Expected:    ">= 0",
			})
		}
		if pd.Outer < pd.Inner {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s (%s): outer bound (%.2f) must not be less than inner bound (%.2f)", p, pd.Name, pd.Outer, pd.Inner),
				SpecPath:    p + ".outer",
				ActualValue: pd.Outer,
				Expected:    fmt.Sprintf(">= %.2f", pd.Inner),
			})
		}
		requireNonNegative(r, p+".size", pd.Size)
		requireColor(r, p+".color", pd.Color)
	}
}

func requirePositive(r *Report, path string, v float64) {
	if !(v > 0) {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be > 0", path),
			SpecPath:    path,
			ActualValue: v,
			Expected:    "> 0",
		})
	}
}

func requireNonNegative(r *Report, path string, v float64) {
	if !(v >= 0) {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be >= 0", path),
			SpecPath:    path,
			ActualValue: v,
			Expected:    ">= 0",
		})
	}
}

func requireColor(r *Report, path, hex string) {
	if _, err := colorful.Hex(hex); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s: %q is not a #rrggbb color", path, hex),
			SpecPath:    path,
			ActualValue: hex,
			Expected:    "#rrggbb",
		})
	}
}
