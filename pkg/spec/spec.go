package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a sketch spec from a YAML file and fills in defaults.
func Load(path string) (*SketchSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a sketch spec from YAML and fills in defaults.
func Parse(data []byte) (*SketchSpec, error) {
	var spec SketchSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}
	ApplyDefaults(&spec)
	return &spec, nil
}

// LoadProject loads a sketch spec from a project directory.
// It looks for sketch.yaml in the given directory.
func LoadProject(projectDir string) (*SketchSpec, error) {
	specPath := filepath.Join(projectDir, ProjectFile)
	return Load(specPath)
}

// ProjectFile is the spec file name inside a project directory.
const ProjectFile = "sketch.yaml"
