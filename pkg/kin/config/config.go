// Package config loads family fact files. A family file is the YAML form
// of the fact-ingestion collaborator: it supplies the three base
// relations and nothing else.
package config

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/famlogic/kin/pkg/kin/facts"
	"github.com/famlogic/kin/pkg/kin/internalerr"
)

// ParentEdge is one parent→child assertion.
type ParentEdge struct {
	Parent string `yaml:"parent"`
	Child  string `yaml:"child"`
}

// Family is a parsed family file.
type Family struct {
	Males   []string     `yaml:"males"`
	Females []string     `yaml:"females"`
	Parents []ParentEdge `yaml:"parents"`
}

// LoadFamily loads a family file from disk.
func LoadFamily(path string) (*Family, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFamily(data)
}

// ParseFamily parses family YAML. An empty document is a valid, empty
// family.
func ParseFamily(data []byte) (*Family, error) {
	var fam Family
	if err := yaml.Unmarshal(data, &fam); err != nil {
		return nil, fmt.Errorf("parse family file: %w: %v", internalerr.ErrInvalidConfig, err)
	}
	for _, edge := range fam.Parents {
		if edge.Parent == "" || edge.Child == "" {
			return nil, fmt.Errorf("parse family file: %w: parent edge needs both parent and child (got %+v)", internalerr.ErrInvalidConfig, edge)
		}
	}
	return &fam, nil
}

// ApplyTo asserts every fact in the family into the store. Assertions
// are idempotent, so applying the same family twice is harmless.
func (f *Family) ApplyTo(ctx context.Context, store facts.Store) error {
	for _, p := range f.Males {
		if err := store.AddMale(ctx, facts.Person(p)); err != nil {
			return fmt.Errorf("assert male(%s): %w", p, err)
		}
	}
	for _, p := range f.Females {
		if err := store.AddFemale(ctx, facts.Person(p)); err != nil {
			return fmt.Errorf("assert female(%s): %w", p, err)
		}
	}
	for _, edge := range f.Parents {
		if err := store.AddParent(ctx, facts.Person(edge.Parent), facts.Person(edge.Child)); err != nil {
			return fmt.Errorf("assert parent(%s, %s): %w", edge.Parent, edge.Child, err)
		}
	}
	return nil
}
