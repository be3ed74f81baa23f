package analytics

import "github.com/go-gl/mathgl/mgl64"

// Summary holds the statistics of one generated sketch.
type Summary struct {
	Trees        []TreeStats  `json:"trees"`
	Fields       []FieldStats `json:"fields"`
	Clouds       []CloudStats `json:"clouds"`
	TotalLights  int          `json:"total_lights"`
	TotalObjects int          `json:"total_objects"`
}

// TreeStats describes one laid-out tree.
type TreeStats struct {
	Name        string  `json:"name"`
	Rows        int     `json:"rows"`
	Branches    int     `json:"branches"`
	Lights      int     `json:"lights"`
	TrunkHeight float64 `json:"trunk_height"`
	Height      float64 `json:"height"`    // base to the highest leaf
	MaxReach    float64 `json:"max_reach"` // farthest leaf from the trunk axis
}

// FieldStats describes one placed field.
type FieldStats struct {
	Name        string  `json:"name"`
	Placed      int     `json:"placed"`
	Overlapping int     `json:"overlapping"`
	Hidden      int     `json:"hidden"`
	Animated    int     `json:"animated"`
	MeanRetries float64 `json:"mean_retries"`
	MaxRetries  int     `json:"max_retries"`

	// FillRatio is total object volume over bounding sphere volume.
	FillRatio float64 `json:"fill_ratio"`
	// MeanCubedRadius is mean(|p-c|^3) / R^3; 0.5 for volume-uniform centers.
	MeanCubedRadius float64 `json:"mean_cubed_radius"`
}

// CloudStats describes one particle cloud.
type CloudStats struct {
	Name   string     `json:"name"`
	Points int        `json:"points"`
	Min    mgl64.Vec3 `json:"min"`
	Max    mgl64.Vec3 `json:"max"`
}
