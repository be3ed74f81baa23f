// Package solver runs the full generation pipeline shared by the CLI and
// the dev server: schema validation, tree and light layout, field and
// particle placement, analytics and scene assembly.
package solver

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/cszach/three.js-sketches/pkg/analytics"
	"github.com/cszach/three.js-sketches/pkg/layout"
	"github.com/cszach/three.js-sketches/pkg/placement"
	"github.com/cszach/three.js-sketches/pkg/scene"
	"github.com/cszach/three.js-sketches/pkg/spec"
	"github.com/cszach/three.js-sketches/pkg/validation"
)

// Result is the output of one solver run.
type Result struct {
	SpecVersion string             `json:"spec_version"`
	Seed        uint64             `json:"seed"`
	Validation  *validation.Report `json:"validation"`
	Analytics   *analytics.Summary `json:"analytics"`
	Scene       *scene.Graph       `json:"scene_graph"`

	Trees      []layout.Tree             `json:"-"`
	Fields     []placement.Field         `json:"-"`
	LightGrids []layout.LightGrid        `json:"-"`
	Particles  []placement.ParticleCloud `json:"-"`
}

// LoadAndValidate loads the project spec and runs schema validation.
func LoadAndValidate(projectPath string) (*spec.SketchSpec, *validation.Report, error) {
	s, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	return s, validation.ValidateSchema(s), nil
}

// ResolveSeed picks the seed of a run: an explicit override wins, then the
// spec seed, then the current time.
func ResolveSeed(override, specSeed uint64) uint64 {
	switch {
	case override != 0:
		return override
	case specSeed != 0:
		return specSeed
	}
	return uint64(time.Now().UnixNano())
}

// Solve validates s and runs every generator with a PCG source seeded from
// seed (see ResolveSeed). A spec that fails schema validation yields a
// Result carrying only the report and an error wrapping
// validation.ErrInvalidConfiguration.
func Solve(s *spec.SketchSpec, seed uint64) (*Result, error) {
	seed = ResolveSeed(seed, s.Seed)
	res := &Result{SpecVersion: s.SpecVersion, Seed: seed}

	report := validation.ValidateSchema(s)
	res.Validation = report
	if !report.Valid {
		return res, fmt.Errorf("spec has validation errors: %w", report.Err())
	}

	run := *s
	run.Seed = seed
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	// 1. Deterministic layout.
	trees, treeReport := layout.BuildTrees(&run)
	report.Merge(treeReport)
	grids, gridReport := layout.BuildLightGrids(&run)
	report.Merge(gridReport)

	// 2. Random placement.
	fields, fieldReport := placement.GenerateFields(&run, rng)
	report.Merge(fieldReport)
	clouds, particleReport := placement.GenerateParticles(&run, rng)
	report.Merge(particleReport)

	// 3. Statistics and scene.
	summary, summaryReport := analytics.Summarize(trees, fields, clouds)
	report.Merge(summaryReport)

	graph := scene.Assemble(&run, trees, fields, grids, clouds)
	report.Merge(scene.ValidateGraph(graph))

	res.Analytics = summary
	res.Scene = graph
	res.Trees = trees
	res.Fields = fields
	res.LightGrids = grids
	res.Particles = clouds

	if !report.Valid {
		return res, fmt.Errorf("generation failed: %w", report.Err())
	}
	return res, nil
}

// SolveProject loads the spec in projectPath and solves it.
func SolveProject(projectPath string, seed uint64) (*spec.SketchSpec, *Result, error) {
	s, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	res, err := Solve(s, seed)
	return s, res, err
}
