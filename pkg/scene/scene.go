package scene

import "github.com/go-gl/mathgl/mgl64"

// EntityType identifies the kind of entity.
type EntityType string

const (
	EntityTrunk     EntityType = "trunk"
	EntityBranch    EntityType = "branch"
	EntityLeaf      EntityType = "leaf"
	EntityLight     EntityType = "point_light"
	EntityMonolith  EntityType = "monolith"
	EntityParticles EntityType = "particles"
)

// Tag marks entities the renderer treats specially.
type Tag string

const (
	TagAnimated Tag = "animated" // bobbing monoliths
	TagHidden   Tag = "hidden"   // inside a field's exclusion zone
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// BoundingBox defines an axis-aligned bounding box.
type BoundingBox struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

// Entity is a single element in the scene graph. Position is the center of
// the entity's extent.
type Entity struct {
	ID         string         `json:"id"`
	Type       EntityType     `json:"type"`
	Position   Vec3           `json:"position"`
	Dimensions Vec3           `json:"dimensions"`
	Rotation   [4]float64     `json:"rotation"` // quaternion [x, y, z, w]
	Material   string         `json:"material"`
	Color      string         `json:"color,omitempty"`
	Owner      string         `json:"owner"`
	Tags       []Tag          `json:"tags,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Points     []Vec3         `json:"points,omitempty"`
}

// HasTag reports whether e carries tag.
func (e Entity) HasTag(tag Tag) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Graph is the complete scene graph output from the solver.
type Graph struct {
	Metadata Metadata `json:"metadata"`
	Entities []Entity `json:"entities"`
	Groups   Groups   `json:"groups"`
}

// Metadata holds scene-level information.
type Metadata struct {
	SceneID     string      `json:"scene_id"`
	SpecVersion string      `json:"spec_version"`
	Name        string      `json:"name"`
	Seed        uint64      `json:"seed"`
	GeneratedAt string      `json:"generated_at"`
	Bounds      BoundingBox `json:"bounds"`
	Time        *float64    `json:"time,omitempty"` // seconds; set by AtTime
}

// Groups organizes entity IDs by various axes for fast filtering.
type Groups struct {
	Owners      map[string][]string     `json:"owners"`
	EntityTypes map[EntityType][]string `json:"entity_types"`
	Tags        map[Tag][]string        `json:"tags"`
}

// NewGraph creates an empty scene graph.
func NewGraph() *Graph {
	return &Graph{
		Entities: []Entity{},
		Groups: Groups{
			Owners:      make(map[string][]string),
			EntityTypes: make(map[EntityType][]string),
			Tags:        make(map[Tag][]string),
		},
	}
}

// Entity returns the entity with the given id.
func (g *Graph) Entity(id string) (Entity, bool) {
	for _, e := range g.Entities {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}

func vec(v mgl64.Vec3) Vec3 {
	return Vec3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func quat(q mgl64.Quat) [4]float64 {
	return [4]float64{q.V.X(), q.V.Y(), q.V.Z(), q.W}
}

func identityQuat() [4]float64 {
	return quat(mgl64.QuatIdent())
}
