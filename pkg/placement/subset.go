package placement

import (
	"fmt"
	"math"

	"github.com/cszach/three.js-sketches/pkg/geo"
	"github.com/cszach/three.js-sketches/pkg/spec"
	"github.com/cszach/three.js-sketches/pkg/validation"
)

// Policy selects which placed objects are animated.
type Policy int

const (
	None Policy = iota
	SomeRandom
	All
)

func (p Policy) String() string {
	switch p {
	case None:
		return spec.AnimationNone
	case SomeRandom:
		return spec.AnimationSome
	case All:
		return spec.AnimationAll
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps an animation name from a sketch spec to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case spec.AnimationNone, "":
		return None, nil
	case spec.AnimationSome:
		return SomeRandom, nil
	case spec.AnimationAll:
		return All, nil
	}
	return None, validation.Invalid("animation", name, "must be one of none, some, all")
}

// SelectAnimationSubset returns the objects to animate under policy. None
// yields an empty slice and All a copy of placed in the same order.
// SomeRandom draws a size round(u*N) and then that many distinct objects
// without replacement; src is only consulted for SomeRandom.
func SelectAnimationSubset(placed []PlacedObject, policy Policy, src Source) []PlacedObject {
	switch policy {
	case All:
		return append([]PlacedObject(nil), placed...)
	case SomeRandom:
		n := len(placed)
		k := int(math.Round(src.Float64() * float64(n)))
		if k > n {
			k = n
		}

		// Partial Fisher-Yates over the indices.
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		out := make([]PlacedObject, k)
		for i := 0; i < k; i++ {
			j := i + int(src.Float64()*float64(n-i))
			if j >= n {
				j = n - 1
			}
			idx[i], idx[j] = idx[j], idx[i]
			out[i] = placed[idx[i]]
		}
		return out
	}
	return []PlacedObject{}
}

// FilterByExclusionZone returns the objects whose center lies inside zone
// (surface inclusive), in placement order.
func FilterByExclusionZone(placed []PlacedObject, zone geo.Sphere) []PlacedObject {
	inside, _ := PartitionByExclusionZone(placed, zone)
	return inside
}

// PartitionByExclusionZone splits placed into the objects inside zone and
// the rest. Together they cover the input exactly once.
func PartitionByExclusionZone(placed []PlacedObject, zone geo.Sphere) (inside, outside []PlacedObject) {
	inside = []PlacedObject{}
	outside = []PlacedObject{}
	for _, p := range placed {
		if zone.ContainsPoint(p.Position) {
			inside = append(inside, p)
		} else {
			outside = append(outside, p)
		}
	}
	return inside, outside
}
