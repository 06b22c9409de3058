// Package saf holds the structural-analysis interchange data model: nodes,
// 1D members, materials and cross-sections. The package performs field and
// reference validation only; geometry and analysis live elsewhere.
package saf

import (
	"fmt"
	"math"

	"gosaf/internal/catalog"
)

// Model is a complete interchange document.
type Model struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Nodes         []Node         `json:"nodes"`
	Materials     []Material     `json:"materials"`
	CrossSections []CrossSection `json:"cross_sections"`
	Members       []Member       `json:"members"`
}

// Node is a structural point connection.
type Node struct {
	Name string  `json:"name"`
	X    float64 `json:"x"` // m
	Y    float64 `json:"y"` // m
	Z    float64 `json:"z"` // m
}

// Material carries the mechanical constants referenced by cross-sections.
type Material struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"` // e.g. "steel", "concrete"
	E             float64 `json:"e"`    // modulus of elasticity (MPa)
	G             float64 `json:"g,omitempty"`
	Density       float64 `json:"density,omitempty"`        // kg/m³
	YieldStrength float64 `json:"yield_strength,omitempty"` // MPa
}

// CrossSection binds a material to a catalog profile designation.
type CrossSection struct {
	Name     string `json:"name"`
	Material string `json:"material"`
	Profile  string `json:"profile"` // catalog designation, e.g. "CHS 88.9x3.2"

	// Display attributes, carried through unchanged.
	Color string `json:"color,omitempty"`
	Layer string `json:"layer,omitempty"`
}

// Member is a 1D structural member between two nodes.
type Member struct {
	Name         string `json:"name"`
	BegNode      string `json:"beg_node"`
	EndNode      string `json:"end_node"`
	CrossSection string `json:"cross_section"`
	Type         string `json:"type,omitempty"` // "beam" | "column"
}

// ValidationError reports an invalid model document.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func errorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Validate checks field values and cross-references: unique names, positive
// material moduli, member endpoints and cross-section references resolving,
// and cross-section profiles present in the catalog.
func (m *Model) Validate() error {
	nodes := map[string]bool{}
	for i, n := range m.Nodes {
		if n.Name == "" {
			return errorf("node %d has no name", i+1)
		}
		if nodes[n.Name] {
			return errorf("duplicate node name %q", n.Name)
		}
		if !finite(n.X) || !finite(n.Y) || !finite(n.Z) {
			return errorf("node %q has non-finite coordinates", n.Name)
		}
		nodes[n.Name] = true
	}

	materials := map[string]bool{}
	for i, mat := range m.Materials {
		if mat.Name == "" {
			return errorf("material %d has no name", i+1)
		}
		if materials[mat.Name] {
			return errorf("duplicate material name %q", mat.Name)
		}
		if mat.E <= 0 {
			return errorf("material %q must have a positive modulus of elasticity", mat.Name)
		}
		materials[mat.Name] = true
	}

	sections := map[string]bool{}
	for i, cs := range m.CrossSections {
		if cs.Name == "" {
			return errorf("cross-section %d has no name", i+1)
		}
		if sections[cs.Name] {
			return errorf("duplicate cross-section name %q", cs.Name)
		}
		if !materials[cs.Material] {
			return errorf("cross-section %q references unknown material %q", cs.Name, cs.Material)
		}
		if _, err := catalog.Lookup(cs.Profile); err != nil {
			return errorf("cross-section %q: %v", cs.Name, err)
		}
		sections[cs.Name] = true
	}

	members := map[string]bool{}
	for i, mb := range m.Members {
		if mb.Name == "" {
			return errorf("member %d has no name", i+1)
		}
		if members[mb.Name] {
			return errorf("duplicate member name %q", mb.Name)
		}
		if !nodes[mb.BegNode] {
			return errorf("member %q references unknown node %q", mb.Name, mb.BegNode)
		}
		if !nodes[mb.EndNode] {
			return errorf("member %q references unknown node %q", mb.Name, mb.EndNode)
		}
		if mb.BegNode == mb.EndNode {
			return errorf("member %q begins and ends at node %q", mb.Name, mb.BegNode)
		}
		if !sections[mb.CrossSection] {
			return errorf("member %q references unknown cross-section %q", mb.Name, mb.CrossSection)
		}
		members[mb.Name] = true
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
