package spec

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/cszach/three.js-sketches/pkg/geo"
)

// SketchSpec is the top-level specification of one sketch: the generative
// parts a renderer decorates its scene with.
type SketchSpec struct {
	SpecVersion string         `yaml:"spec_version" json:"spec_version"`
	Name        string         `yaml:"name" json:"name"`
	Seed        uint64         `yaml:"seed" json:"seed"`
	Trees       []TreeDef      `yaml:"trees" json:"trees"`
	Fields      []FieldDef     `yaml:"fields" json:"fields"`
	LightGrids  []LightGridDef `yaml:"light_grids" json:"light_grids"`
	Particles   []ParticleDef  `yaml:"particles" json:"particles"`
}

// TreeDef describes a point-light tree: a trunk with rows of branches, each
// branch carrying a leaf and a colored point light.
type TreeDef struct {
	Name        string     `yaml:"name" json:"name"`
	Position    mgl64.Vec3 `yaml:"position" json:"position"`
	Trunk       Trunk      `yaml:"trunk" json:"trunk"`
	Branch      Branch     `yaml:"branch" json:"branch"`
	Leaf        Leaf       `yaml:"leaf" json:"leaf"`
	LightColors []string   `yaml:"light_colors" json:"light_colors"`
}

// Trunk is a truncated cone along the Y axis. The radius varies linearly
// from RadiusBottom at the base to RadiusTop at Height.
type Trunk struct {
	Height       float64 `yaml:"height" json:"height"`
	RadiusTop    float64 `yaml:"radius_top" json:"radius_top"`
	RadiusBottom float64 `yaml:"radius_bottom" json:"radius_bottom"`
}

// RadiusAt returns the trunk radius at height h above the base.
func (t Trunk) RadiusAt(h float64) float64 {
	return geo.Lerp(t.RadiusBottom, t.RadiusTop, h/t.Height)
}

// Branch describes the branch cylinder and how branches are arranged in
// rows. Angles are in degrees.
type Branch struct {
	Length     float64    `yaml:"length" json:"length"`
	Radius     float64    `yaml:"radius" json:"radius"`
	Angle      AngleRange `yaml:"angle" json:"angle"`
	PerRow     int        `yaml:"per_row" json:"per_row"`
	RowSpacing float64    `yaml:"row_spacing" json:"row_spacing"`
}

// AngleRange is the tilt of the first (Start) and last (End) branch of a
// row, in degrees. A fixed tilt is Start == End.
type AngleRange struct {
	Start float64 `yaml:"start" json:"start"`
	End   float64 `yaml:"end" json:"end"`
}

// Leaf is the sphere at the tip of each branch.
type Leaf struct {
	Radius float64 `yaml:"radius" json:"radius"`
}

// FieldDef describes a scatter of boxes inside a sphere ("monoliths").
type FieldDef struct {
	Name            string      `yaml:"name" json:"name"`
	Quantity        int         `yaml:"quantity" json:"quantity"`
	BoundingSphere  geo.Sphere  `yaml:"bounding_sphere" json:"bounding_sphere"`
	ForbiddenSphere *geo.Sphere `yaml:"forbidden_sphere,omitempty" json:"forbidden_sphere,omitempty"`
	HalfExtents     mgl64.Vec3  `yaml:"half_extents" json:"half_extents"`
	MaxRetries      *int        `yaml:"max_retries,omitempty" json:"max_retries,omitempty"`
	ExclusionZone   *geo.Sphere `yaml:"exclusion_zone,omitempty" json:"exclusion_zone,omitempty"`
	Animation       string      `yaml:"animation" json:"animation"`
	Bob             BobDef      `yaml:"bob" json:"bob"`
	Color           string      `yaml:"color" json:"color"`
}

// BobDef tunes the vertical oscillation of animated field objects.
type BobDef struct {
	TimeMultiplier     float64 `yaml:"time_multiplier" json:"time_multiplier"`
	DistanceMultiplier float64 `yaml:"distance_multiplier" json:"distance_multiplier"`
}

// LightGridDef describes a rectangular grid of point lights, e.g. a room
// ceiling.
type LightGridDef struct {
	Name   string  `yaml:"name" json:"name"`
	Length float64 `yaml:"length" json:"length"`
	Width  float64 `yaml:"width" json:"width"`
	XGap   float64 `yaml:"x_gap" json:"x_gap"`
	ZGap   float64 `yaml:"z_gap" json:"z_gap"`
	Height float64 `yaml:"height" json:"height"`
	Color  string  `yaml:"color" json:"color"`
}

// ParticleDef describes a particle cloud scattered in the cube [Inner, Outer]^3.
type ParticleDef struct {
	Name     string  `yaml:"name" json:"name"`
	Quantity int     `yaml:"quantity" json:"quantity"`
	Inner    float64 `yaml:"inner" json:"inner"`
	Outer    float64 `yaml:"outer" json:"outer"`
	Size     float64 `yaml:"size" json:"size"`
	Color    string  `yaml:"color" json:"color"`
}

// Animation policy names accepted in FieldDef.Animation.
const (
	AnimationNone = "none"
	AnimationSome = "some"
	AnimationAll  = "all"
)
