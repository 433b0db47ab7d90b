// Package checklist provides the registry of sign-off checklist types and their questions.
package checklist

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Section is a titled, ordered group of yes/no questions.
type Section struct {
	Title     string   `yaml:"title"`
	Questions []string `yaml:"questions"`
}

// Checklist is one trade checklist type and its sections in catalog order.
type Checklist struct {
	Name     string    `yaml:"name"`
	Sections []Section `yaml:"sections"`
}

// Catalog is the read-only set of registered checklists.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	checklists []Checklist
	index      map[string]int
}

type catalogFile struct {
	Checklists []Checklist `yaml:"checklists"`
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// MustDefault returns the built-in catalog and panics if it is invalid.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("built-in checklist catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CatalogError{
			Message: fmt.Sprintf("failed to read catalog file %s", path),
			Cause:   err,
		}
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &CatalogError{Message: "failed to parse catalog YAML", Cause: err}
	}
	return New(file.Checklists)
}

// New builds a catalog from checklists after checking their structure.
// Every type needs a unique non-empty name and at least one section; every section
// needs a title and at least one question; question text is unique within a type
// since it identifies the answer.
func New(checklists []Checklist) (*Catalog, error) {
	if len(checklists) == 0 {
		return nil, &CatalogError{Message: "catalog defines no checklists"}
	}

	c := &Catalog{
		checklists: make([]Checklist, 0, len(checklists)),
		index:      make(map[string]int, len(checklists)),
	}

	for i, cl := range checklists {
		name := strings.TrimSpace(cl.Name)
		if name == "" {
			return nil, &CatalogError{Message: fmt.Sprintf("checklist %d has no name", i+1)}
		}
		if _, dup := c.index[name]; dup {
			return nil, &CatalogError{Message: fmt.Sprintf("duplicate checklist type %q", name)}
		}
		if len(cl.Sections) == 0 {
			return nil, &CatalogError{Message: fmt.Sprintf("checklist %q has no sections", name)}
		}

		seen := make(map[string]bool)
		for j, sec := range cl.Sections {
			if strings.TrimSpace(sec.Title) == "" {
				return nil, &CatalogError{Message: fmt.Sprintf("checklist %q section %d has no title", name, j+1)}
			}
			if len(sec.Questions) == 0 {
				return nil, &CatalogError{Message: fmt.Sprintf("checklist %q section %q has no questions", name, sec.Title)}
			}
			for _, q := range sec.Questions {
				if strings.TrimSpace(q) == "" {
					return nil, &CatalogError{Message: fmt.Sprintf("checklist %q section %q has a blank question", name, sec.Title)}
				}
				if seen[q] {
					return nil, &CatalogError{Message: fmt.Sprintf("checklist %q repeats question %q", name, q)}
				}
				seen[q] = true
			}
		}

		c.index[name] = len(c.checklists)
		c.checklists = append(c.checklists, Checklist{Name: name, Sections: copySections(cl.Sections)})
	}

	return c, nil
}

// Types returns the registered checklist type names in catalog order.
func (c *Catalog) Types() []string {
	names := make([]string, len(c.checklists))
	for i, cl := range c.checklists {
		names[i] = cl.Name
	}
	return names
}

// Sections returns a copy of the sections for typeName in catalog order.
func (c *Catalog) Sections(typeName string) ([]Section, error) {
	i, ok := c.index[typeName]
	if !ok {
		return nil, &UnknownTypeError{Name: typeName, Known: c.Types()}
	}
	return copySections(c.checklists[i].Sections), nil
}

// Questions returns the flattened question list for typeName in catalog order.
func (c *Catalog) Questions(typeName string) ([]string, error) {
	sections, err := c.Sections(typeName)
	if err != nil {
		return nil, err
	}
	return Flatten(sections), nil
}

// Flatten lists every question of sections in order.
func Flatten(sections []Section) []string {
	var out []string
	for _, s := range sections {
		out = append(out, s.Questions...)
	}
	return out
}

func copySections(in []Section) []Section {
	out := make([]Section, len(in))
	for i, s := range in {
		out[i] = Section{
			Title:     s.Title,
			Questions: append([]string(nil), s.Questions...),
		}
	}
	return out
}
