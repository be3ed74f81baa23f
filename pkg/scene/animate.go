package scene

import (
	"slices"

	"github.com/cszach/three.js-sketches/pkg/placement"
)

// AtTime returns a copy of g with the animated monoliths of fields raised
// or lowered to their bobbing height at time t. Only entity positions, the
// scene bounds and Metadata.Time differ from g; g itself is not modified.
func AtTime(g *Graph, fields []placement.Field, t float64) *Graph {
	out := *g
	out.Entities = slices.Clone(g.Entities)

	index := make(map[string]int, len(out.Entities))
	for i, e := range out.Entities {
		index[e.ID] = i
	}

	for _, f := range fields {
		objs := make([]placement.PlacedObject, len(f.Animated))
		for k, i := range f.Animated {
			objs[k] = f.Objects[i]
		}
		posed := placement.Bob(objs, t, f.Bob.TimeMultiplier, f.Bob.DistanceMultiplier)
		for k, i := range f.Animated {
			if j, ok := index[monolithID(f.Name, i)]; ok {
				out.Entities[j].Position = vec(posed[k])
			}
		}
	}

	out.Metadata.Bounds = computeBounds(out.Entities)
	out.Metadata.Time = &t
	return &out
}
