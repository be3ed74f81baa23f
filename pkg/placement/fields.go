package placement

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/cszach/three.js-sketches/pkg/geo"
	"github.com/cszach/three.js-sketches/pkg/spec"
	"github.com/cszach/three.js-sketches/pkg/validation"
)

// Field is a placed monolith field together with the objects hidden by its
// exclusion zone and the objects picked for animation.
type Field struct {
	Name        string         `json:"name"`
	Bounds      geo.Sphere     `json:"bounds"`
	Forbidden   *geo.Sphere    `json:"forbidden,omitempty"`
	HalfExtents mgl64.Vec3     `json:"half_extents"`
	Color       string         `json:"color"`
	Policy      string         `json:"animation"`
	Bob         spec.BobDef    `json:"bob"`
	Objects     []PlacedObject `json:"objects"`
	Hidden      []int          `json:"hidden"`   // indices inside the exclusion zone
	Animated    []int          `json:"animated"` // indices selected for bobbing
}

// Overlapping returns how many objects were accepted while colliding.
func (f Field) Overlapping() int {
	n := 0
	for _, o := range f.Objects {
		if o.Overlapping {
			n++
		}
	}
	return n
}

// IsHidden reports whether object i lies inside the exclusion zone.
func (f Field) IsHidden(i int) bool {
	return slices.Contains(f.Hidden, i)
}

// IsAnimated reports whether object i was selected for animation.
func (f Field) IsAnimated(i int) bool {
	return slices.Contains(f.Animated, i)
}

// ParticleCloud is a scatter of points in a cube.
type ParticleCloud struct {
	Name   string       `json:"name"`
	Size   float64      `json:"size"`
	Color  string       `json:"color"`
	Points []mgl64.Vec3 `json:"points"`
}

// RequestFor builds the placement request of a field definition.
func RequestFor(def spec.FieldDef) Request {
	retries := spec.DefaultMaxRetries
	if def.MaxRetries != nil {
		retries = *def.MaxRetries
	}
	return Request{
		Quantity:    def.Quantity,
		Bounds:      def.BoundingSphere,
		Forbidden:   def.ForbiddenSphere,
		HalfExtents: def.HalfExtents,
		MaxRetries:  retries,
	}
}

// GenerateFields places every field in the spec, applies its exclusion
// zone and animation policy, and reports objects that could not be placed
// without overlap as warnings. Fields with invalid configuration are
// reported as errors and skipped.
func GenerateFields(s *spec.SketchSpec, src Source) ([]Field, *validation.Report) {
	report := validation.NewReport()
	var fields []Field

	for i, def := range s.Fields {
		path := fmt.Sprintf("fields[%d]", i)

		policy, err := ParsePolicy(def.Animation)
		if err != nil {
			report.AddErr(validation.LevelPlacement, path, err)
			continue
		}
		objs, err := PlaceObjects(RequestFor(def), src)
		if err != nil {
			report.AddErr(validation.LevelPlacement, path, err)
			continue
		}

		f := Field{
			Name:        def.Name,
			Bounds:      def.BoundingSphere,
			Forbidden:   def.ForbiddenSphere,
			HalfExtents: def.HalfExtents,
			Color:       def.Color,
			Policy:      policy.String(),
			Bob:         def.Bob,
			Objects:     objs,
			Hidden:      []int{},
		}
		if def.ExclusionZone != nil {
			f.Hidden = indices(FilterByExclusionZone(objs, *def.ExclusionZone))
		}
		f.Animated = indices(SelectAnimationSubset(objs, policy, src))
		fields = append(fields, f)

		if n := f.Overlapping(); n > 0 {
			report.AddWarning(validation.Result{
				Level:       validation.LevelPlacement,
				Message:     fmt.Sprintf("field %s: %d of %d objects overlap after exhausting the retry budget", def.Name, n, len(objs)),
				SpecPath:    path + ".max_retries",
				ActualValue: RequestFor(def).MaxRetries,
				Suggestions: []string{
					"Increase max_retries",
					"Enlarge bounding_sphere.radius or shrink half_extents",
					"Reduce quantity",
				},
			})
		}
		report.AddInfo(validation.Result{
			Level:    validation.LevelPlacement,
			Message:  fmt.Sprintf("field %s: placed %d objects, %d hidden, %d animated", def.Name, len(objs), len(f.Hidden), len(f.Animated)),
			SpecPath: path,
		})
	}
	return fields, report
}

// GenerateParticles scatters every particle cloud in the spec.
func GenerateParticles(s *spec.SketchSpec, src Source) ([]ParticleCloud, *validation.Report) {
	report := validation.NewReport()
	var clouds []ParticleCloud

	for i, def := range s.Particles {
		path := fmt.Sprintf("particles[%d]", i)
		pts, err := ScatterCube(def.Quantity, def.Inner, def.Outer, src)
		if err != nil {
			report.AddErr(validation.LevelPlacement, path, err)
			continue
		}
		clouds = append(clouds, ParticleCloud{
			Name:   def.Name,
			Size:   def.Size,
			Color:  def.Color,
			Points: pts,
		})
	}
	return clouds, report
}

func indices(objs []PlacedObject) []int {
	out := make([]int, len(objs))
	for i, o := range objs {
		out[i] = o.Index
	}
	return out
}
