package placement

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cszach/three.js-sketches/pkg/geo"
	"github.com/cszach/three.js-sketches/pkg/spec"
	"github.com/cszach/three.js-sketches/pkg/validation"
)

func lineOfObjects(n int) []PlacedObject {
	objs := make([]PlacedObject, n)
	for i := range objs {
		pos := mgl64.Vec3{float64(i), 0, 0}
		objs[i] = PlacedObject{Index: i, Position: pos, Bounds: geo.NewBox(pos, mgl64.Vec3{0.25, 0.25, 0.25})}
	}
	return objs
}

func TestSelectAnimationSubsetAll(t *testing.T) {
	objs := lineOfObjects(6)
	src := newCountingSource(1)

	got := SelectAnimationSubset(objs, All, src)
	assert.Equal(t, objs, got)
	assert.Zero(t, src.calls)

	got[0].Index = 100
	assert.Equal(t, 0, objs[0].Index, "All returns a copy")
}

func TestSelectAnimationSubsetNone(t *testing.T) {
	src := newCountingSource(1)
	got := SelectAnimationSubset(lineOfObjects(6), None, src)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Zero(t, src.calls)
}

func TestSelectAnimationSubsetSomeScripted(t *testing.T) {
	// Size round(0.5*4) = 2, then always the first remaining index.
	src := &scriptedSource{vals: []float64{0.5, 0, 0}}
	got := SelectAnimationSubset(lineOfObjects(4), SomeRandom, src)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, 1, got[1].Index)
}

func TestSelectAnimationSubsetSomeDistinct(t *testing.T) {
	objs := lineOfObjects(15)
	sizes := map[int]bool{}
	for seed := uint64(0); seed < 200; seed++ {
		got := SelectAnimationSubset(objs, SomeRandom, seeded(seed))
		require.LessOrEqual(t, len(got), len(objs))
		sizes[len(got)] = true

		seen := map[int]bool{}
		for _, o := range got {
			assert.False(t, seen[o.Index], "seed %d picked %d twice", seed, o.Index)
			seen[o.Index] = true
			assert.Equal(t, objs[o.Index], o)
		}
	}
	assert.Greater(t, len(sizes), 5, "subset size varies between calls")
}

func TestSelectAnimationSubsetEmptyInput(t *testing.T) {
	for _, p := range []Policy{None, SomeRandom, All} {
		got := SelectAnimationSubset(nil, p, seeded(1))
		assert.Empty(t, got, p.String())
	}
}

func TestParsePolicy(t *testing.T) {
	cases := map[string]Policy{
		spec.AnimationNone: None,
		spec.AnimationSome: SomeRandom,
		spec.AnimationAll:  All,
		"":                 None,
	}
	for name, want := range cases {
		got, err := ParsePolicy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParsePolicy("sometimes")
	assert.ErrorIs(t, err, validation.ErrInvalidConfiguration)
	assert.Equal(t, "some", SomeRandom.String())
}

func TestFilterByExclusionZone(t *testing.T) {
	objs := lineOfObjects(6)
	zone := geo.Sphere{Radius: 2}

	inside := FilterByExclusionZone(objs, zone)
	require.Len(t, inside, 3, "surface counts as inside")
	for i, o := range inside {
		assert.Equal(t, i, o.Index)
	}

	assert.Empty(t, FilterByExclusionZone(objs, geo.Sphere{Center: mgl64.Vec3{0, 10, 0}, Radius: 1}))
}

func TestPartitionByExclusionZoneCoversInput(t *testing.T) {
	objs, err := PlaceObjects(monolithRequest(), seeded(11))
	require.NoError(t, err)

	inside, outside := PartitionByExclusionZone(objs, geo.Sphere{Radius: 8})
	assert.Equal(t, len(objs), len(inside)+len(outside))
	for _, o := range inside {
		assert.LessOrEqual(t, o.Position.Len(), 8.0)
	}
	for _, o := range outside {
		assert.Greater(t, o.Position.Len(), 8.0)
	}
}

func TestBob(t *testing.T) {
	assert.InDelta(t, 3.0, BobOffset(1, math.Pi/2, 1, 2), 1e-12)
	assert.InDelta(t, 1.0, BobOffset(1, 0, 5, 2), 1e-12)
	assert.InDelta(t, -1.0, BobOffset(1, math.Pi/4, 2, -2), 1e-12)

	objs := lineOfObjects(3)
	pos := Bob(objs, math.Pi/2, 1, 0.5)
	require.Len(t, pos, 3)
	for i, p := range pos {
		assert.Equal(t, objs[i].Position.X(), p.X())
		assert.Equal(t, objs[i].Position.Z(), p.Z())
		assert.InDelta(t, 0.5, p.Y(), 1e-12)
	}
	assert.Equal(t, 0.0, objs[0].Position.Y(), "input positions are not modified")
}
