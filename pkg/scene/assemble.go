package scene

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/cszach/three.js-sketches/pkg/geo"
	"github.com/cszach/three.js-sketches/pkg/layout"
	"github.com/cszach/three.js-sketches/pkg/placement"
	"github.com/cszach/three.js-sketches/pkg/spec"
)

// Assemble converts all generator outputs into a scene graph.
func Assemble(
	s *spec.SketchSpec,
	trees []layout.Tree,
	fields []placement.Field,
	grids []layout.LightGrid,
	clouds []placement.ParticleCloud,
) *Graph {
	g := NewGraph()

	assembleTrees(trees, g)
	assembleFields(fields, g)
	assembleLightGrids(grids, g)
	assembleParticles(clouds, g)

	g.Metadata = Metadata{
		SceneID:     uuid.NewString(),
		SpecVersion: s.SpecVersion,
		Name:        s.Name,
		Seed:        s.Seed,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Bounds:      computeBounds(g.Entities),
	}

	return g
}

func assembleTrees(trees []layout.Tree, g *Graph) {
	for _, t := range trees {
		r := math.Max(t.Trunk.RadiusTop, t.Trunk.RadiusBottom)
		addEntity(g, Entity{
			ID:         fmt.Sprintf("%s/trunk", t.Name),
			Type:       EntityTrunk,
			Position:   vec(t.TrunkCenter()),
			Dimensions: Vec3{X: 2 * r, Y: t.Trunk.Height, Z: 2 * r},
			Rotation:   identityQuat(),
			Material:   "bark",
			Owner:      t.Name,
			Metadata: map[string]any{
				"radius_top":    t.Trunk.RadiusTop,
				"radius_bottom": t.Trunk.RadiusBottom,
			},
		})

		leafD := 2 * t.Leaf.Radius
		for i, b := range t.Branches {
			center, q := t.BranchWorld(i)
			leaf := vec(t.LeafWorld(i))
			color := b.Color.Hex()

			addEntity(g, Entity{
				ID:         fmt.Sprintf("%s/branch-%d", t.Name, i),
				Type:       EntityBranch,
				Position:   vec(center),
				Dimensions: Vec3{X: 2 * t.Branch.Radius, Y: b.Length, Z: 2 * t.Branch.Radius},
				Rotation:   quat(q),
				Material:   "bark",
				Owner:      t.Name,
				Metadata: map[string]any{
					"row":  b.Row,
					"slot": b.Slot,
					"tilt": b.Tilt,
				},
			})
			addEntity(g, Entity{
				ID:         fmt.Sprintf("%s/leaf-%d", t.Name, i),
				Type:       EntityLeaf,
				Position:   leaf,
				Dimensions: Vec3{X: leafD, Y: leafD, Z: leafD},
				Rotation:   identityQuat(),
				Material:   "emissive",
				Color:      color,
				Owner:      t.Name,
			})
			addEntity(g, Entity{
				ID:       fmt.Sprintf("%s/light-%d", t.Name, i),
				Type:     EntityLight,
				Position: leaf,
				Rotation: identityQuat(),
				Material: "light",
				Color:    color,
				Owner:    t.Name,
			})
		}
	}
}

func assembleFields(fields []placement.Field, g *Graph) {
	for _, f := range fields {
		color := normalizeColor(f.Color)
		for i, o := range f.Objects {
			var tags []Tag
			meta := map[string]any{"retries": o.Retries}
			if o.Overlapping {
				meta["overlapping"] = true
			}
			if f.IsAnimated(i) {
				tags = append(tags, TagAnimated)
				meta["bob_time_multiplier"] = f.Bob.TimeMultiplier
				meta["bob_distance_multiplier"] = f.Bob.DistanceMultiplier
			}
			if f.IsHidden(i) {
				tags = append(tags, TagHidden)
			}

			size := o.Bounds.Size()
			addEntity(g, Entity{
				ID:         monolithID(f.Name, i),
				Type:       EntityMonolith,
				Position:   vec(o.Position),
				Dimensions: vec(size),
				Rotation:   identityQuat(),
				Material:   "standard",
				Color:      color,
				Owner:      f.Name,
				Tags:       tags,
				Metadata:   meta,
			})
		}
	}
}

func monolithID(field string, i int) string {
	return fmt.Sprintf("%s/monolith-%d", field, i)
}

func assembleLightGrids(grids []layout.LightGrid, g *Graph) {
	for _, lg := range grids {
		color := normalizeColor(lg.Color)
		for i, p := range lg.Positions {
			addEntity(g, Entity{
				ID:       fmt.Sprintf("%s/light-%d", lg.Name, i),
				Type:     EntityLight,
				Position: vec(p),
				Rotation: identityQuat(),
				Material: "light",
				Color:    color,
				Owner:    lg.Name,
				Metadata: map[string]any{
					"row":    i / lg.Columns,
					"column": i % lg.Columns,
				},
			})
		}
	}
}

func assembleParticles(clouds []placement.ParticleCloud, g *Graph) {
	for _, c := range clouds {
		if len(c.Points) == 0 {
			continue
		}
		lo, hi := c.Points[0], c.Points[0]
		pts := make([]Vec3, len(c.Points))
		for i, p := range c.Points {
			pts[i] = vec(p)
			for k := 0; k < 3; k++ {
				lo[k] = math.Min(lo[k], p[k])
				hi[k] = math.Max(hi[k], p[k])
			}
		}
		addEntity(g, Entity{
			ID:         fmt.Sprintf("%s/particles", c.Name),
			Type:       EntityParticles,
			Position:   vec(geo.LerpVec(lo, hi, 0.5)),
			Dimensions: vec(hi.Sub(lo)),
			Rotation:   identityQuat(),
			Material:   "points",
			Color:      normalizeColor(c.Color),
			Owner:      c.Name,
			Metadata:   map[string]any{"size": c.Size, "count": len(c.Points)},
			Points:     pts,
		})
	}
}

// addEntity appends an entity and updates all group indices.
func addEntity(g *Graph, e Entity) {
	g.Entities = append(g.Entities, e)
	id := e.ID

	if e.Owner != "" {
		g.Groups.Owners[e.Owner] = append(g.Groups.Owners[e.Owner], id)
	}
	for _, t := range e.Tags {
		g.Groups.Tags[t] = append(g.Groups.Tags[t], id)
	}
	g.Groups.EntityTypes[e.Type] = append(g.Groups.EntityTypes[e.Type], id)
}

// computeBounds calculates the AABB of all entities.
func computeBounds(entities []Entity) BoundingBox {
	if len(entities) == 0 {
		return BoundingBox{}
	}
	minV := mgl64.Vec3{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64}
	maxV := mgl64.Vec3{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64}

	for _, e := range entities {
		lo, hi := extent(e)
		for k := 0; k < 3; k++ {
			minV[k] = math.Min(minV[k], lo[k])
			maxV[k] = math.Max(maxV[k], hi[k])
		}
	}
	return BoundingBox{Min: vec(minV), Max: vec(maxV)}
}

// extent returns the corners of the world-space box enclosing e. Rotated
// entities use the half-diagonal on every axis.
func extent(e Entity) (lo, hi mgl64.Vec3) {
	c := mgl64.Vec3{e.Position.X, e.Position.Y, e.Position.Z}
	half := mgl64.Vec3{e.Dimensions.X / 2, e.Dimensions.Y / 2, e.Dimensions.Z / 2}
	if e.Rotation != identityQuat() {
		d := half.Len()
		half = mgl64.Vec3{d, d, d}
	}
	return c.Sub(half), c.Add(half)
}

// normalizeColor returns hex as lowercase #rrggbb, or unchanged when it
// does not parse.
func normalizeColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return c.Hex()
}
