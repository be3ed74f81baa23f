package spec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Defaults match the stock point-light tree and monolith field.
const (
	DefaultSpecVersion = "0.1.0"

	DefaultTrunkHeight       = 2.5
	DefaultTrunkRadiusTop    = 0.06
	DefaultTrunkRadiusBottom = 0.08

	DefaultBranchLength     = 0.5
	DefaultBranchRadius     = 0.04
	DefaultBranchAngleStart = 120.0
	DefaultBranchAngleEnd   = 60.0
	DefaultBranchesPerRow   = 4
	DefaultRowSpacing       = 0.5

	DefaultLeafRadius = 0.2

	DefaultMaxRetries   = 100
	DefaultAnimation    = AnimationNone
	DefaultParticleSize = 0.05
)

// DefaultLightColors are red, green and blue.
var DefaultLightColors = []string{"#ff0000", "#00ff00", "#0000ff"}

// NewTreeDef returns the stock point-light tree.
func NewTreeDef(name string) TreeDef {
	return TreeDef{
		Name: name,
		Trunk: Trunk{
			Height:       DefaultTrunkHeight,
			RadiusTop:    DefaultTrunkRadiusTop,
			RadiusBottom: DefaultTrunkRadiusBottom,
		},
		Branch: Branch{
			Length:     DefaultBranchLength,
			Radius:     DefaultBranchRadius,
			Angle:      AngleRange{Start: DefaultBranchAngleStart, End: DefaultBranchAngleEnd},
			PerRow:     DefaultBranchesPerRow,
			RowSpacing: DefaultRowSpacing,
		},
		Leaf:        Leaf{Radius: DefaultLeafRadius},
		LightColors: append([]string(nil), DefaultLightColors...),
	}
}

// NewFieldDef returns a field with default retries, animation, bob and
// color. Quantity and the spheres are left for the caller.
func NewFieldDef(name string) FieldDef {
	retries := DefaultMaxRetries
	return FieldDef{
		Name:       name,
		MaxRetries: &retries,
		Animation:  DefaultAnimation,
		Bob:        BobDef{TimeMultiplier: 1, DistanceMultiplier: 1},
		Color:      "#000000",
	}
}

// NewLightGridDef returns a white light grid with no extent.
func NewLightGridDef(name string) LightGridDef {
	return LightGridDef{Name: name, Color: "#ffffff"}
}

// NewParticleDef returns an empty particle cloud with the default size and
// color.
func NewParticleDef(name string) ParticleDef {
	return ParticleDef{Name: name, Size: DefaultParticleSize, Color: "#ffca28"}
}

// The decoders below start from the New*Def values so that only keys absent
// from the YAML take defaults. An explicit zero stays zero and is reported
// by schema validation.

func (t *TreeDef) UnmarshalYAML(node *yaml.Node) error {
	type plain TreeDef
	v := plain(NewTreeDef(""))
	if err := node.Decode(&v); err != nil {
		return err
	}
	*t = TreeDef(v)
	return nil
}

func (f *FieldDef) UnmarshalYAML(node *yaml.Node) error {
	type plain FieldDef
	v := plain(NewFieldDef(""))
	if err := node.Decode(&v); err != nil {
		return err
	}
	*f = FieldDef(v)
	return nil
}

func (g *LightGridDef) UnmarshalYAML(node *yaml.Node) error {
	type plain LightGridDef
	v := plain(NewLightGridDef(""))
	if err := node.Decode(&v); err != nil {
		return err
	}
	*g = LightGridDef(v)
	return nil
}

func (p *ParticleDef) UnmarshalYAML(node *yaml.Node) error {
	type plain ParticleDef
	v := plain(NewParticleDef(""))
	if err := node.Decode(&v); err != nil {
		return err
	}
	*p = ParticleDef(v)
	return nil
}

// ApplyDefaults names unnamed parts after their index and sets the spec
// version. Per-field defaults come from decoding (see NewTreeDef); Go
// callers build parts with the New*Def constructors.
func ApplyDefaults(s *SketchSpec) {
	if s.SpecVersion == "" {
		s.SpecVersion = DefaultSpecVersion
	}
	for i := range s.Trees {
		if s.Trees[i].Name == "" {
			s.Trees[i].Name = fmt.Sprintf("tree_%d", i)
		}
	}
	for i := range s.Fields {
		if s.Fields[i].Name == "" {
			s.Fields[i].Name = fmt.Sprintf("field_%d", i)
		}
	}
	for i := range s.LightGrids {
		if s.LightGrids[i].Name == "" {
			s.LightGrids[i].Name = fmt.Sprintf("light_grid_%d", i)
		}
	}
	for i := range s.Particles {
		if s.Particles[i].Name == "" {
			s.Particles[i].Name = fmt.Sprintf("particles_%d", i)
		}
	}
}
