package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/cszach/three.js-sketches/pkg/validation"
)

// ValidateGraph performs structural validation on a scene graph output.
// It checks entity integrity, group index consistency, rotations and
// bounds enclosure.
func ValidateGraph(g *Graph) *validation.Report {
	r := validation.NewReport()

	if g == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelScene,
			Message: "scene graph is nil",
		})
		return r
	}

	validateEntityIDs(g, r)
	validateGroupIndices(g, r)
	validateGroupMembership(g, r)
	validateRotations(g, r)
	validateBoundsEnclosure(g, r)
	validateEntityDimensions(g, r)

	return r
}

func validateEntityIDs(g *Graph, r *validation.Report) {
	seen := make(map[string]int, len(g.Entities))

	for i, e := range g.Entities {
		if e.ID == "" {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity at index %d has empty ID", i),
				SpecPath:    fmt.Sprintf("entities[%d].id", i),
				ActualValue: "",
				Expected:    "non-empty string",
			})
			continue
		}
		if prev, exists := seen[e.ID]; exists {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("duplicate entity ID %q at indices %d and %d", e.ID, prev, i),
				SpecPath:    fmt.Sprintf("entities[%d].id", i),
				ActualValue: e.ID,
			})
		}
		seen[e.ID] = i
	}
}

func validateGroupIndices(g *Graph, r *validation.Report) {
	entityIDs := make(map[string]bool, len(g.Entities))
	for _, e := range g.Entities {
		entityIDs[e.ID] = true
	}

	checkGroup := func(groupType, groupName string, ids []string) {
		for _, id := range ids {
			if !entityIDs[id] {
				r.AddError(validation.Result{
					Level:       validation.LevelScene,
					Message:     fmt.Sprintf("group %s.%s references non-existent entity %q", groupType, groupName, id),
					SpecPath:    fmt.Sprintf("groups.%s.%s", groupType, groupName),
					ActualValue: id,
					Expected:    "existing entity ID",
				})
			}
		}
	}

	for name, ids := range g.Groups.Owners {
		checkGroup("owners", name, ids)
	}
	for name, ids := range g.Groups.EntityTypes {
		checkGroup("entity_types", string(name), ids)
	}
	for name, ids := range g.Groups.Tags {
		checkGroup("tags", string(name), ids)
	}
}

func memberSets[K ~string](groups map[K][]string) map[string]map[string]bool {
	sets := make(map[string]map[string]bool, len(groups))
	for name, ids := range groups {
		m := make(map[string]bool, len(ids))
		for _, id := range ids {
			m[id] = true
		}
		sets[string(name)] = m
	}
	return sets
}

func validateGroupMembership(g *Graph, r *validation.Report) {
	owners := memberSets(g.Groups.Owners)
	types := memberSets(g.Groups.EntityTypes)
	tags := memberSets(g.Groups.Tags)

	check := func(e Entity, groupType string, sets map[string]map[string]bool, name string) {
		m, ok := sets[name]
		if !ok {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity %q has %s %q but no such %s group exists", e.ID, groupType, name, groupType),
				SpecPath:    "groups." + groupType,
				ActualValue: name,
			})
			return
		}
		if !m[e.ID] {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity %q has %s %q but is not in %s group", e.ID, groupType, name, groupType),
				SpecPath:    fmt.Sprintf("groups.%s.%s", groupType, name),
				ActualValue: e.ID,
			})
		}
	}

	for _, e := range g.Entities {
		if e.ID == "" {
			continue
		}
		if e.Type != "" {
			check(e, "entity_types", types, string(e.Type))
		}
		if e.Owner != "" {
			check(e, "owners", owners, e.Owner)
		}
		for _, t := range e.Tags {
			check(e, "tags", tags, string(t))
		}
	}
}

func validateRotations(g *Graph, r *validation.Report) {
	for i, e := range g.Entities {
		q := mgl64.Quat{W: e.Rotation[3], V: mgl64.Vec3{e.Rotation[0], e.Rotation[1], e.Rotation[2]}}
		if l := q.Len(); math.IsNaN(l) || math.Abs(l-1) > 1e-6 {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity %q rotation is not a unit quaternion (length %.6f)", e.ID, l),
				SpecPath:    fmt.Sprintf("entities[%d].rotation", i),
				ActualValue: e.Rotation,
				Expected:    "length 1",
			})
		}
	}
}

func validateBoundsEnclosure(g *Graph, r *validation.Report) {
	b := g.Metadata.Bounds
	const tolerance = 1e-6
	min := mgl64.Vec3{b.Min.X, b.Min.Y, b.Min.Z}
	max := mgl64.Vec3{b.Max.X, b.Max.Y, b.Max.Z}
	axes := "XYZ"

	for _, e := range g.Entities {
		lo, hi := extent(e)
		for k := 0; k < 3; k++ {
			if lo[k] < min[k]-tolerance || hi[k] > max[k]+tolerance {
				r.AddWarning(validation.Result{
					Level:       validation.LevelScene,
					Message:     fmt.Sprintf("entity %q %c extent [%.2f, %.2f] outside scene bounds [%.2f, %.2f]", e.ID, axes[k], lo[k], hi[k], min[k], max[k]),
					SpecPath:    "metadata.bounds",
					ActualValue: e.ID,
				})
				return
			}
		}
	}
}

func validateEntityDimensions(g *Graph, r *validation.Report) {
	for _, e := range g.Entities {
		if e.Type == EntityLight {
			continue
		}
		if e.Dimensions.X <= 0 || e.Dimensions.Y <= 0 || e.Dimensions.Z <= 0 {
			r.AddWarning(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity %q has zero or negative dimension (%.2f, %.2f, %.2f)", e.ID, e.Dimensions.X, e.Dimensions.Y, e.Dimensions.Z),
				SpecPath:    fmt.Sprintf("entities.%s.dimensions", e.ID),
				ActualValue: fmt.Sprintf("%.2f x %.2f x %.2f", e.Dimensions.X, e.Dimensions.Y, e.Dimensions.Z),
				Expected:    "all dimensions > 0",
			})
		}
	}
}
