package layout

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/cszach/three.js-sketches/pkg/geo"
	"github.com/cszach/three.js-sketches/pkg/spec"
	"github.com/cszach/three.js-sketches/pkg/validation"
)

// PlacedBranch is one branch of a point-light tree, positioned relative to
// the trunk base. Each branch carries a leaf at its tip and a point light in
// the leaf.
type PlacedBranch struct {
	Index       int     `json:"index"`        // global index, row-major
	Row         int     `json:"row"`          // 0 is the lowest row
	Slot        int     `json:"slot"`         // position within the row
	OffsetY     float64 `json:"offset_y"`     // height of the row above the trunk base
	Rotation    float64 `json:"rotation"`     // radians around the trunk axis
	Tilt        float64 `json:"tilt"`         // degrees between branch and trunk axis
	Translate   float64 `json:"translate"`    // outward shift along Axis
	TrunkRadius float64 `json:"trunk_radius"` // trunk radius at OffsetY

	Axis   mgl64.Vec3     `json:"axis"`   // unit shift direction in branch space
	Length float64        `json:"length"` // branch cylinder height
	Color  colorful.Color `json:"-"`      // decoration (leaf emissive and light) color
}

// TiltRadians returns the tilt in radians.
func (b PlacedBranch) TiltRadians() float64 {
	return mgl64.DegToRad(b.Tilt)
}

// Orientation returns the branch rotation: yaw around the trunk axis, then
// tilt around the branch's local Z axis (Euler order XYZ).
func (b PlacedBranch) Orientation() mgl64.Quat {
	yaw := mgl64.QuatRotate(b.Rotation, geo.Up)
	tilt := mgl64.QuatRotate(-b.TiltRadians(), mgl64.Vec3{0, 0, 1})
	return yaw.Mul(tilt)
}

// Transform returns the branch center and orientation relative to the trunk
// base.
func (b PlacedBranch) Transform() (mgl64.Vec3, mgl64.Quat) {
	q := b.Orientation()
	pos := mgl64.Vec3{0, b.OffsetY, 0}.Add(q.Rotate(b.Axis.Mul(b.Translate)))
	return pos, q
}

// LeafPosition returns where the leaf (and its light) sits, at the top end
// of the branch cylinder, relative to the trunk base.
func (b PlacedBranch) LeafPosition() mgl64.Vec3 {
	pos, q := b.Transform()
	return pos.Add(q.Rotate(mgl64.Vec3{0, b.Length / 2, 0}))
}

// RowCount returns how many rows of branches fit on the upper half of the
// trunk: floor((height - height/2) / spacing) + 1. A quotient that lands a
// hair below a whole number rounds down, so no row is placed above the top.
func RowCount(trunk spec.Trunk, branch spec.Branch) int {
	start := trunk.Height / 2
	return int(math.Floor((trunk.Height-start)/branch.RowSpacing)) + 1
}

// LayoutBranches computes every branch of a tree, row by row from half the
// trunk height upwards, branch.PerRow branches per row. It is a pure
// function of its inputs. Invalid inputs are rejected with an error
// wrapping validation.ErrInvalidConfiguration before any computation.
func LayoutBranches(trunk spec.Trunk, branch spec.Branch, colors []colorful.Color) ([]PlacedBranch, error) {
	if err := checkBranchInputs(trunk, branch, colors); err != nil {
		return nil, err
	}

	rows := RowCount(trunk, branch)
	perRow := branch.PerRow
	start := trunk.Height / 2

	// The branch's unrotated bounding box: cylinder diameter by length.
	boxW := 2 * branch.Radius
	boxH := branch.Length
	axis := mgl64.Vec3{boxW, boxH, 0}
	if l := axis.Len(); l > 0 {
		axis = axis.Mul(1 / l)
	}
	reach := math.Hypot(boxW, boxH)

	angleStep := 0.0
	if perRow > 1 {
		angleStep = (branch.Angle.End - branch.Angle.Start) / float64(perRow-1)
	}

	branches := make([]PlacedBranch, 0, rows*perRow)
	idx := 0
	for row := 0; row < rows; row++ {
		y := start + branch.RowSpacing*float64(row)
		trunkRadius := trunk.RadiusAt(y)

		for slot := 0; slot < perRow; slot++ {
			tilt := branch.Angle.Start
			switch {
			case perRow == 1:
			case slot == perRow-1:
				// Pinned so float drift never misses the range end.
				tilt = branch.Angle.End
			default:
				tilt += angleStep * float64(slot)
			}

			branches = append(branches, PlacedBranch{
				Index:       idx,
				Row:         row,
				Slot:        slot,
				OffsetY:     y,
				Rotation:    float64(slot) * 2 * math.Pi / float64(perRow),
				Tilt:        tilt,
				Translate:   reach + trunkRadius,
				TrunkRadius: trunkRadius,
				Axis:        axis,
				Length:      branch.Length,
				Color:       colors[idx%len(colors)],
			})
			idx++
		}
	}
	return branches, nil
}

func checkBranchInputs(trunk spec.Trunk, branch spec.Branch, colors []colorful.Color) error {
	switch {
	case !(trunk.Height > 0):
		return validation.Invalid("trunk.height", trunk.Height, "must be > 0")
	case !(trunk.RadiusTop >= 0):
		return validation.Invalid("trunk.radius_top", trunk.RadiusTop, "must be >= 0")
	case !(trunk.RadiusBottom >= 0):
		return validation.Invalid("trunk.radius_bottom", trunk.RadiusBottom, "must be >= 0")
	case branch.PerRow < 1:
		return validation.Invalid("branch.per_row", branch.PerRow, "must be at least 1")
	case !(branch.RowSpacing > 0):
		return validation.Invalid("branch.row_spacing", branch.RowSpacing, "must be > 0")
	case !(branch.Length >= 0):
		return validation.Invalid("branch.length", branch.Length, "must be >= 0")
	case !(branch.Radius >= 0):
		return validation.Invalid("branch.radius", branch.Radius, "must be >= 0")
	case math.IsNaN(branch.Angle.Start) || math.IsNaN(branch.Angle.End):
		return validation.Invalid("branch.angle", branch.Angle, "must be a number")
	case len(colors) == 0:
		return validation.Invalid("light_colors", len(colors), "must contain at least one color")
	}
	return nil
}
