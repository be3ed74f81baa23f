package scene

import (
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/cszach/three.js-sketches/pkg/geo"
	"github.com/cszach/three.js-sketches/pkg/layout"
	"github.com/cszach/three.js-sketches/pkg/placement"
	"github.com/cszach/three.js-sketches/pkg/spec"
)

func testSpec() *spec.SketchSpec {
	retries := 50
	fixed := spec.NewTreeDef("fixed")
	fixed.Position = mgl64.Vec3{3, 0, -2}
	fixed.Branch.Angle = spec.AngleRange{Start: 75, End: 75}
	fixed.Branch.PerRow = 3

	field := spec.NewFieldDef("monoliths")
	field.Quantity = 15
	field.BoundingSphere = geo.Sphere{Radius: 12}
	field.ForbiddenSphere = &geo.Sphere{Radius: 0.1}
	field.HalfExtents = mgl64.Vec3{2.5, 2.5, 2.5}
	field.MaxRetries = &retries
	field.ExclusionZone = &geo.Sphere{Radius: 8}
	field.Animation = spec.AnimationAll
	field.Color = "#000"

	grid := spec.NewLightGridDef("ceiling")
	grid.Length, grid.Width, grid.XGap, grid.ZGap, grid.Height = 20, 20, 5, 5, 9.5

	dust := spec.NewParticleDef("dust")
	dust.Quantity, dust.Inner, dust.Outer = 200, -20, 20

	s := &spec.SketchSpec{
		Name:       "test",
		Seed:       42,
		Trees:      []spec.TreeDef{spec.NewTreeDef("pltree"), fixed},
		Fields:     []spec.FieldDef{field},
		LightGrids: []spec.LightGridDef{grid},
		Particles:  []spec.ParticleDef{dust},
	}
	spec.ApplyDefaults(s)
	return s
}

func assembleTestGraph(t testing.TB) *Graph {
	t.Helper()
	g, _ := assembleTestScene(t)
	return g
}

func assembleTestScene(t testing.TB) (*Graph, []placement.Field) {
	t.Helper()
	s := testSpec()
	rng := rand.New(rand.NewPCG(s.Seed, 0))

	trees, r := layout.BuildTrees(s)
	if !r.Valid {
		t.Fatalf("trees: %s", r.Summary)
	}
	fields, r := placement.GenerateFields(s, rng)
	if !r.Valid {
		t.Fatalf("fields: %s", r.Summary)
	}
	grids, r := layout.BuildLightGrids(s)
	if !r.Valid {
		t.Fatalf("light grids: %s", r.Summary)
	}
	clouds, r := placement.GenerateParticles(s, rng)
	if !r.Valid {
		t.Fatalf("particles: %s", r.Summary)
	}
	return Assemble(s, trees, fields, grids, clouds), fields
}

func TestAssembleProducesEntities(t *testing.T) {
	g := assembleTestGraph(t)

	counts := map[EntityType]int{}
	for _, e := range g.Entities {
		counts[e.Type]++
	}
	// pltree: 3 rows x 4, fixed: 3 rows x 3.
	branches := 12 + 9
	want := map[EntityType]int{
		EntityTrunk:     2,
		EntityBranch:    branches,
		EntityLeaf:      branches,
		EntityLight:     branches + 25,
		EntityMonolith:  15,
		EntityParticles: 1,
	}
	for typ, n := range want {
		if counts[typ] != n {
			t.Errorf("%s: got %d entities, want %d", typ, counts[typ], n)
		}
		if len(g.Groups.EntityTypes[typ]) != n {
			t.Errorf("%s: group has %d ids, want %d", typ, len(g.Groups.EntityTypes[typ]), n)
		}
	}

	if len(g.Groups.Owners["pltree"]) != 1+3*12 {
		t.Errorf("pltree owns %d entities, want %d", len(g.Groups.Owners["pltree"]), 1+3*12)
	}
	if len(g.Groups.Tags[TagAnimated]) != 15 {
		t.Errorf("animated tag has %d ids, want 15", len(g.Groups.Tags[TagAnimated]))
	}
	t.Logf("assembled %d entities", len(g.Entities))
}

func TestAssembleMetadata(t *testing.T) {
	g := assembleTestGraph(t)

	if _, err := uuid.Parse(g.Metadata.SceneID); err != nil {
		t.Errorf("scene id %q is not a UUID: %v", g.Metadata.SceneID, err)
	}
	if g.Metadata.Seed != 42 || g.Metadata.Name != "test" {
		t.Errorf("unexpected metadata %+v", g.Metadata)
	}
	if g.Metadata.SpecVersion != spec.DefaultSpecVersion {
		t.Errorf("spec version = %q", g.Metadata.SpecVersion)
	}
	b := g.Metadata.Bounds
	if b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y || b.Min.Z >= b.Max.Z {
		t.Errorf("degenerate bounds %+v", b)
	}

	other := assembleTestGraph(t)
	if other.Metadata.SceneID == g.Metadata.SceneID {
		t.Error("every assembly gets a fresh scene id")
	}
}

func TestAssembleTreeEntities(t *testing.T) {
	g := assembleTestGraph(t)

	trunk, ok := g.Entity("fixed/trunk")
	if !ok {
		t.Fatal("missing fixed/trunk")
	}
	if trunk.Position != (Vec3{X: 3, Y: 1.25, Z: -2}) {
		t.Errorf("trunk position = %+v", trunk.Position)
	}

	leaf, _ := g.Entity("pltree/leaf-1")
	light, _ := g.Entity("pltree/light-1")
	if leaf.Color != "#00ff00" || light.Color != "#00ff00" {
		t.Errorf("leaf/light colors = %s/%s, want #00ff00", leaf.Color, light.Color)
	}
	if leaf.Position != light.Position {
		t.Error("light sits inside its leaf")
	}

	branch, _ := g.Entity("pltree/branch-1")
	if branch.Rotation == identityQuat() {
		t.Error("tilted branch should carry a rotation")
	}
}

func TestAssembleFieldTags(t *testing.T) {
	g := assembleTestGraph(t)

	hidden := 0
	for _, e := range g.Entities {
		if e.Type != EntityMonolith {
			continue
		}
		if e.Color != "#000000" {
			t.Errorf("%s color = %s, want normalized #000000", e.ID, e.Color)
		}
		if !e.HasTag(TagAnimated) {
			t.Errorf("%s should be animated", e.ID)
		}
		p := mgl64.Vec3{e.Position.X, e.Position.Y, e.Position.Z}
		inZone := p.Len() <= 8
		if e.HasTag(TagHidden) != inZone {
			t.Errorf("%s hidden = %v, inside exclusion zone = %v", e.ID, e.HasTag(TagHidden), inZone)
		}
		if inZone {
			hidden++
		}
	}
	if len(g.Groups.Tags[TagHidden]) != hidden {
		t.Errorf("hidden group has %d ids, want %d", len(g.Groups.Tags[TagHidden]), hidden)
	}
}

func TestAssembleJSON(t *testing.T) {
	g := assembleTestGraph(t)
	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"scene_id"`, `"entity_types"`, `"rotation"`, `"points"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("JSON missing %s", key)
		}
	}
}

func TestNormalizeColor(t *testing.T) {
	if got := normalizeColor("#FFF"); got != "#ffffff" {
		t.Errorf("normalizeColor(#FFF) = %s", got)
	}
	if got := normalizeColor("teal"); got != "teal" {
		t.Errorf("unparseable colors pass through, got %s", got)
	}
}
