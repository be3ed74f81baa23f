package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cszach/three.js-sketches/internal/solver"
	"github.com/cszach/three.js-sketches/pkg/validation"
)

var errInvalidSpec = errors.New("spec has validation errors")

func runValidate(w io.Writer, projectPath string) error {
	_, schemaReport, err := solver.LoadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(w, schemaReport)

	if !schemaReport.Valid {
		return errInvalidSpec
	}
	return nil
}

func runStats(w io.Writer, projectPath string, seed uint64) error {
	_, res, err := solver.SolveProject(projectPath, seed)
	if err != nil {
		if res != nil && errors.Is(err, validation.ErrInvalidConfiguration) {
			printValidationReport(w, res.Validation)
			return errInvalidSpec
		}
		return err
	}

	printStats(w, res)

	if len(res.Validation.Warnings) > 0 {
		fmt.Fprintln(w)
		printValidationReport(w, res.Validation)
	}
	return nil
}

func runSolve(w io.Writer, projectPath string, seed uint64, out string) error {
	_, res, err := solver.SolveProject(projectPath, seed)
	if err != nil {
		if res != nil && errors.Is(err, validation.ErrInvalidConfiguration) {
			printValidationReport(w, res.Validation)
			return errInvalidSpec
		}
		return err
	}
	slog.Info("solved", "project", projectPath, "seed", res.Seed, "entities", len(res.Scene.Entities))

	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("writing scene JSON: %w", err)
	}
	if out != "" {
		slog.Info("wrote scene", "path", out)
	}
	return nil
}
