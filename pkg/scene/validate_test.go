package scene

import (
	"testing"
)

func validGraph() *Graph {
	g := NewGraph()
	g.Entities = []Entity{
		{
			ID:         "pltree/trunk",
			Type:       EntityTrunk,
			Position:   Vec3{X: 0, Y: 1.25, Z: 0},
			Dimensions: Vec3{X: 0.16, Y: 2.5, Z: 0.16},
			Rotation:   [4]float64{0, 0, 0, 1},
			Material:   "bark",
			Owner:      "pltree",
		},
		{
			ID:         "monoliths/monolith-0",
			Type:       EntityMonolith,
			Position:   Vec3{X: 5, Y: 0, Z: 5},
			Dimensions: Vec3{X: 5, Y: 5, Z: 5},
			Rotation:   [4]float64{0, 0, 0, 1},
			Material:   "standard",
			Owner:      "monoliths",
			Tags:       []Tag{TagAnimated},
		},
	}
	g.Groups.Owners["pltree"] = []string{"pltree/trunk"}
	g.Groups.Owners["monoliths"] = []string{"monoliths/monolith-0"}
	g.Groups.EntityTypes[EntityTrunk] = []string{"pltree/trunk"}
	g.Groups.EntityTypes[EntityMonolith] = []string{"monoliths/monolith-0"}
	g.Groups.Tags[TagAnimated] = []string{"monoliths/monolith-0"}
	g.Metadata = Metadata{
		SpecVersion: "0.1.0",
		Bounds: BoundingBox{
			Min: Vec3{X: -10, Y: -10, Z: -10},
			Max: Vec3{X: 10, Y: 10, Z: 10},
		},
	}
	return g
}

func TestValidateGraph_Valid(t *testing.T) {
	r := ValidateGraph(validGraph())
	if !r.Valid {
		t.Errorf("expected valid, got %d errors", len(r.Errors))
		for _, e := range r.Errors {
			t.Logf("  error: %s", e.Message)
		}
	}
}

func TestValidateGraph_Nil(t *testing.T) {
	r := ValidateGraph(nil)
	if r.Valid {
		t.Error("expected invalid for nil graph")
	}
}

func TestValidateGraph_DuplicateID(t *testing.T) {
	g := validGraph()
	g.Entities = append(g.Entities, Entity{
		ID:         "pltree/trunk",
		Type:       EntityTrunk,
		Dimensions: Vec3{X: 1, Y: 1, Z: 1},
		Rotation:   [4]float64{0, 0, 0, 1},
		Owner:      "pltree",
	})
	r := ValidateGraph(g)
	if r.Valid {
		t.Error("expected invalid for duplicate ID")
	}
}

func TestValidateGraph_OrphanedGroupReference(t *testing.T) {
	g := validGraph()
	g.Groups.Owners["pltree"] = append(g.Groups.Owners["pltree"], "nonexistent")
	r := ValidateGraph(g)
	if r.Valid {
		t.Error("expected invalid for orphaned group reference")
	}
}

func TestValidateGraph_MissingGroupMembership(t *testing.T) {
	g := validGraph()
	g.Groups.Tags[TagAnimated] = []string{}
	r := ValidateGraph(g)
	if r.Valid {
		t.Error("expected invalid for missing tag membership")
	}
}

func TestValidateGraph_MissingGroup(t *testing.T) {
	g := validGraph()
	delete(g.Groups.Owners, "monoliths")
	r := ValidateGraph(g)
	if r.Valid {
		t.Error("expected invalid for missing owner group")
	}
}

func TestValidateGraph_EmptyID(t *testing.T) {
	g := validGraph()
	g.Entities = append(g.Entities, Entity{
		ID:         "",
		Type:       EntityLeaf,
		Dimensions: Vec3{X: 0.4, Y: 0.4, Z: 0.4},
		Rotation:   [4]float64{0, 0, 0, 1},
	})
	r := ValidateGraph(g)
	if r.Valid {
		t.Error("expected invalid for empty ID")
	}
}

func TestValidateGraph_BadRotation(t *testing.T) {
	g := validGraph()
	g.Entities[0].Rotation = [4]float64{0, 0, 0, 2}
	r := ValidateGraph(g)
	if r.Valid {
		t.Error("expected invalid for non-unit quaternion")
	}
}

func TestValidateGraph_OutsideBoundsWarning(t *testing.T) {
	g := validGraph()
	g.Entities[1].Position.Y = 9
	r := ValidateGraph(g)
	if !r.Valid {
		t.Error("bounds escape is a warning, not an error")
	}
	if len(r.Warnings) == 0 {
		t.Error("expected warning for entity outside bounds")
	}
}

func TestValidateGraph_ZeroDimensionWarning(t *testing.T) {
	g := validGraph()
	g.Entities[0].Dimensions.Y = 0
	r := ValidateGraph(g)
	if len(r.Warnings) == 0 {
		t.Error("expected warning for zero dimension")
	}
}

func TestValidateGraph_PointLightsHaveNoSize(t *testing.T) {
	g := validGraph()
	g.Entities = append(g.Entities, Entity{
		ID:       "pltree/light-0",
		Type:     EntityLight,
		Position: Vec3{X: 0, Y: 2, Z: 0},
		Rotation: [4]float64{0, 0, 0, 1},
		Owner:    "pltree",
	})
	g.Groups.Owners["pltree"] = append(g.Groups.Owners["pltree"], "pltree/light-0")
	g.Groups.EntityTypes[EntityLight] = []string{"pltree/light-0"}
	r := ValidateGraph(g)
	if !r.Valid || len(r.Warnings) != 0 {
		t.Errorf("point light should validate cleanly: %s", r.Summary)
	}
}

func TestValidateGraph_RealGraph(t *testing.T) {
	g := assembleTestGraph(t)
	r := ValidateGraph(g)
	if !r.Valid {
		t.Errorf("real graph validation failed: %d errors", len(r.Errors))
		for _, e := range r.Errors {
			t.Logf("  error: %s", e.Message)
		}
	}
	if len(r.Warnings) != 0 {
		t.Errorf("real graph has warnings: %v", r.Warnings)
	}
	t.Logf("validated %d entities: %s", len(g.Entities), r.Summary)
}
