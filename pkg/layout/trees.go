package layout

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/cszach/three.js-sketches/pkg/geo"
	"github.com/cszach/three.js-sketches/pkg/spec"
	"github.com/cszach/three.js-sketches/pkg/validation"
)

// Tree is a planted point-light tree: trunk base at Position, branches laid
// out by LayoutBranches.
type Tree struct {
	Name     string         `json:"name"`
	Position mgl64.Vec3     `json:"position"`
	Trunk    spec.Trunk     `json:"trunk"`
	Branch   spec.Branch    `json:"branch"`
	Leaf     spec.Leaf      `json:"leaf"`
	Rows     int            `json:"rows"`
	Branches []PlacedBranch `json:"branches"`
}

// BranchWorld returns the world-space center and orientation of branch i.
func (t Tree) BranchWorld(i int) (mgl64.Vec3, mgl64.Quat) {
	pos, q := t.Branches[i].Transform()
	return t.Position.Add(pos), q
}

// LeafWorld returns the world-space position of the leaf and light of branch i.
func (t Tree) LeafWorld(i int) mgl64.Vec3 {
	return t.Position.Add(t.Branches[i].LeafPosition())
}

// TrunkCenter returns the world-space center of the trunk cylinder.
func (t Tree) TrunkCenter() mgl64.Vec3 {
	return t.Position.Add(mgl64.Vec3{0, t.Trunk.Height / 2, 0})
}

// Bounds returns the axis-aligned box enclosing trunk, branches and leaves.
func (t Tree) Bounds() geo.Box {
	r := math.Max(t.Trunk.RadiusTop, t.Trunk.RadiusBottom)
	box := geo.NewBox(t.TrunkCenter(), mgl64.Vec3{r, t.Trunk.Height / 2, r})

	leafExt := mgl64.Vec3{t.Leaf.Radius, t.Leaf.Radius, t.Leaf.Radius}
	for i, b := range t.Branches {
		center, q := t.BranchWorld(i)
		base := center.Sub(q.Rotate(mgl64.Vec3{0, b.Length / 2, 0}))
		box = box.Union(geo.NewBox(base, mgl64.Vec3{}))
		box = box.Union(geo.NewBox(t.LeafWorld(i), leafExt))
	}
	return box
}

// Height returns the distance from the trunk base to the top of the tree.
func (t Tree) Height() float64 {
	return t.Bounds().Max().Y() - t.Position.Y()
}

// ParseColors converts #rrggbb strings into colors.
func ParseColors(hexes []string) ([]colorful.Color, error) {
	colors := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, validation.Invalid(fmt.Sprintf("light_colors[%d]", i), h, "not a #rrggbb color")
		}
		colors[i] = c
	}
	return colors, nil
}

// BuildTrees lays out every tree in the spec. Trees whose configuration is
// invalid are reported as errors and left out of the result.
func BuildTrees(s *spec.SketchSpec) ([]Tree, *validation.Report) {
	report := validation.NewReport()
	var trees []Tree
	lights := 0

	for i, def := range s.Trees {
		path := fmt.Sprintf("trees[%d]", i)

		colors, err := ParseColors(def.LightColors)
		if err != nil {
			report.AddErr(validation.LevelLayout, path, err)
			continue
		}
		branches, err := LayoutBranches(def.Trunk, def.Branch, colors)
		if err != nil {
			report.AddErr(validation.LevelLayout, path, err)
			continue
		}

		tree := Tree{
			Name:     def.Name,
			Position: def.Position,
			Trunk:    def.Trunk,
			Branch:   def.Branch,
			Leaf:     def.Leaf,
			Rows:     RowCount(def.Trunk, def.Branch),
			Branches: branches,
		}
		trees = append(trees, tree)
		lights += len(branches)

		report.AddInfo(validation.Result{
			Level:    validation.LevelLayout,
			Message:  fmt.Sprintf("tree %s: %d rows x %d branches, height %.2f", def.Name, tree.Rows, def.Branch.PerRow, tree.Height()),
			SpecPath: path,
		})
	}

	report.AddInfo(validation.Result{
		Level:   validation.LevelLayout,
		Message: fmt.Sprintf("laid out %d trees carrying %d point lights", len(trees), lights),
	})
	return trees, report
}
