package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/cszach/three.js-sketches/pkg/spec"
	"github.com/cszach/three.js-sketches/pkg/validation"
)

func TestLightGridPositions(t *testing.T) {
	rows, cols, pos, err := LightGridPositions(spec.LightGridDef{Length: 20, Width: 10, XGap: 5, ZGap: 5, Height: 9.5})
	if err != nil {
		t.Fatalf("LightGridPositions failed: %v", err)
	}
	if rows != 5 || cols != 3 {
		t.Fatalf("expected 5x3 grid, got %dx%d", rows, cols)
	}
	if len(pos) != 15 {
		t.Fatalf("expected 15 lights, got %d", len(pos))
	}

	var sumX, sumZ float64
	for _, p := range pos {
		if p.Y() != 9.5 {
			t.Errorf("light at %v not at height 9.5", p)
		}
		sumX += p.X()
		sumZ += p.Z()
	}
	if math.Abs(sumX) > 1e-9 || math.Abs(sumZ) > 1e-9 {
		t.Errorf("grid should be centered, sums = %f, %f", sumX, sumZ)
	}
	if pos[0].X() != -10 || pos[0].Z() != -5 {
		t.Errorf("first light = %v, want [-10 9.5 -5]", pos[0])
	}
}

func TestLightGridSingleLight(t *testing.T) {
	rows, cols, pos, err := LightGridPositions(spec.LightGridDef{Length: 2, Width: 0, XGap: 5, ZGap: 5})
	if err != nil {
		t.Fatalf("LightGridPositions failed: %v", err)
	}
	if rows != 1 || cols != 1 || len(pos) != 1 {
		t.Fatalf("expected a single light, got %dx%d", rows, cols)
	}
	if pos[0].X() != 0 || pos[0].Z() != 0 {
		t.Errorf("single light should sit at the origin, got %v", pos[0])
	}
}

func TestLightGridInvalid(t *testing.T) {
	for _, def := range []spec.LightGridDef{
		{Length: 10, Width: 10, XGap: 0, ZGap: 1},
		{Length: 10, Width: 10, XGap: 1, ZGap: -1},
		{Length: -1, Width: 10, XGap: 1, ZGap: 1},
	} {
		_, _, _, err := LightGridPositions(def)
		if !errors.Is(err, validation.ErrInvalidConfiguration) {
			t.Errorf("%+v: expected invalid configuration, got %v", def, err)
		}
	}
}

func TestBuildLightGrids(t *testing.T) {
	s := &spec.SketchSpec{LightGrids: []spec.LightGridDef{
		{Name: "ceiling", Length: 20, Width: 20, XGap: 5, ZGap: 5, Height: 9.5, Color: "#ffffff"},
		{Name: "broken", Length: 20, Width: 20, XGap: 0, ZGap: 5},
	}}
	grids, report := BuildLightGrids(s)
	if report.Valid {
		t.Error("expected invalid report for zero gap")
	}
	if len(grids) != 1 || len(grids[0].Positions) != 25 {
		t.Fatalf("expected one 5x5 grid, got %+v", grids)
	}
}
