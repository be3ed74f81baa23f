package main

import (
	"fmt"
	"io"

	"github.com/cszach/three.js-sketches/internal/solver"
	"github.com/cszach/three.js-sketches/pkg/validation"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
			if e.SpecPath != "" {
				fmt.Fprintf(w, "    -> %s = %v\n", e.SpecPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Fprintf(w, "    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, wr := range r.Warnings {
			fmt.Fprintf(w, "  [%s] %s\n", wr.Level, wr.Message)
			if wr.SpecPath != "" {
				fmt.Fprintf(w, "    -> %s = %v\n", wr.SpecPath, wr.ActualValue)
			}
			if wr.Expected != "" {
				fmt.Fprintf(w, "    expected: %s\n", wr.Expected)
			}
			for _, s := range wr.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printStats(w io.Writer, res *solver.Result) {
	sum := res.Analytics

	fmt.Fprintf(w, "Sketch statistics (seed %d)\n", res.Seed)
	fmt.Fprintln(w, "===========================")
	fmt.Fprintln(w)

	if len(sum.Trees) > 0 {
		fmt.Fprintf(w, "%-18s %6s %9s %8s %8s %8s\n", "Tree", "Rows", "Branches", "Trunk", "Height", "Reach")
		fmt.Fprintf(w, "%-18s %6s %9s %8s %8s %8s\n", "------------------", "------", "---------", "--------", "--------", "--------")
		for _, t := range sum.Trees {
			fmt.Fprintf(w, "%-18s %6d %9d %8.2f %8.2f %8.2f\n", t.Name, t.Rows, t.Branches, t.TrunkHeight, t.Height, t.MaxReach)
		}
		fmt.Fprintln(w)
	}

	if len(sum.Fields) > 0 {
		fmt.Fprintf(w, "%-18s %6s %8s %7s %9s %8s %7s %7s\n", "Field", "Placed", "Overlap", "Hidden", "Animated", "Retries", "Fill", "r^3")
		fmt.Fprintf(w, "%-18s %6s %8s %7s %9s %8s %7s %7s\n", "------------------", "------", "--------", "-------", "---------", "--------", "-------", "-------")
		for _, f := range sum.Fields {
			fmt.Fprintf(w, "%-18s %6d %8d %7d %9d %8.1f %7.3f %7.3f\n",
				f.Name, f.Placed, f.Overlapping, f.Hidden, f.Animated, f.MeanRetries, f.FillRatio, f.MeanCubedRadius)
		}
		fmt.Fprintln(w)
	}

	if len(res.LightGrids) > 0 {
		fmt.Fprintf(w, "%-18s %6s %8s %7s\n", "Light grid", "Rows", "Columns", "Lights")
		fmt.Fprintf(w, "%-18s %6s %8s %7s\n", "------------------", "------", "--------", "-------")
		for _, g := range res.LightGrids {
			fmt.Fprintf(w, "%-18s %6d %8d %7d\n", g.Name, g.Rows, g.Columns, len(g.Positions))
		}
		fmt.Fprintln(w)
	}

	for _, c := range sum.Clouds {
		fmt.Fprintf(w, "Particles %s: %d points in [%.1f, %.1f] x [%.1f, %.1f] x [%.1f, %.1f]\n",
			c.Name, c.Points, c.Min.X(), c.Max.X(), c.Min.Y(), c.Max.Y(), c.Min.Z(), c.Max.Z())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary")
	fmt.Fprintln(w, "-------")
	fmt.Fprintf(w, "  Tree lights:     %d\n", sum.TotalLights)
	fmt.Fprintf(w, "  Placed objects:  %d\n", sum.TotalObjects)
	fmt.Fprintf(w, "  Scene entities:  %d\n", len(res.Scene.Entities))
}
