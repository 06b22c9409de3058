package saf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validModel() *Model {
	return &Model{
		Name: "portal frame",
		Nodes: []Node{
			{Name: "N1", X: 0, Y: 0, Z: 0},
			{Name: "N2", X: 0, Y: 0, Z: 4},
			{Name: "N3", X: 6, Y: 0, Z: 4},
			{Name: "N4", X: 6, Y: 0, Z: 0},
		},
		Materials: []Material{
			{Name: "S355", Type: "steel", E: 210000, G: 81000, Density: 7850, YieldStrength: 355},
		},
		CrossSections: []CrossSection{
			{Name: "CS1", Material: "S355", Profile: "RHS 100x200x5", Color: "#ff0000", Layer: "columns"},
			{Name: "CS2", Material: "S355", Profile: "UNP 200x75"},
		},
		Members: []Member{
			{Name: "B1", BegNode: "N1", EndNode: "N2", CrossSection: "CS1", Type: "column"},
			{Name: "B2", BegNode: "N2", EndNode: "N3", CrossSection: "CS2", Type: "beam"},
			{Name: "B3", BegNode: "N3", EndNode: "N4", CrossSection: "CS1", Type: "column"},
		},
	}
}

func TestValidateAcceptsCompleteModel(t *testing.T) {
	if err := validModel().Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Model)
		want   string
	}{
		{"duplicate node", func(m *Model) { m.Nodes[1].Name = "N1" }, "duplicate node"},
		{"duplicate material", func(m *Model) {
			m.Materials = append(m.Materials, m.Materials[0])
		}, "duplicate material"},
		{"non-positive modulus", func(m *Model) { m.Materials[0].E = 0 }, "modulus"},
		{"unknown material", func(m *Model) { m.CrossSections[0].Material = "S999" }, "unknown material"},
		{"unknown profile", func(m *Model) { m.CrossSections[0].Profile = "IPE 300" }, "not found"},
		{"dangling begin node", func(m *Model) { m.Members[0].BegNode = "N9" }, "unknown node"},
		{"dangling cross-section", func(m *Model) { m.Members[0].CrossSection = "CS9" }, "unknown cross-section"},
		{"zero-length member", func(m *Model) { m.Members[0].EndNode = "N1" }, "begins and ends"},
	}
	for _, tc := range cases {
		m := validModel()
		tc.mutate(m)
		err := m.Validate()
		if err == nil {
			t.Errorf("%s: Validate accepted", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error = %q, want substring %q", tc.name, err, tc.want)
		}
	}
}

func TestValidateDocument(t *testing.T) {
	good := `{
	  "name": "m",
	  "nodes": [{"name": "N1", "x": 0, "y": 0, "z": 0}],
	  "materials": [{"name": "S355", "type": "steel", "e": 210000}],
	  "cross_sections": [],
	  "members": []
	}`
	if err := ValidateDocument([]byte(good)); err != nil {
		t.Errorf("ValidateDocument: %v", err)
	}

	missingKey := `{"name": "m", "nodes": [], "materials": [], "members": []}`
	if err := ValidateDocument([]byte(missingKey)); err == nil {
		t.Error("document missing cross_sections accepted")
	}

	wrongType := `{
	  "name": "m",
	  "nodes": [{"name": "N1", "x": "zero", "y": 0, "z": 0}],
	  "materials": [],
	  "cross_sections": [],
	  "members": []
	}`
	if err := ValidateDocument([]byte(wrongType)); err == nil {
		t.Error("string node coordinate accepted")
	}

	badMemberType := `{
	  "name": "m",
	  "nodes": [],
	  "materials": [],
	  "cross_sections": [],
	  "members": [{"name": "B1", "beg_node": "a", "end_node": "b", "cross_section": "c", "type": "cable"}]
	}`
	if err := ValidateDocument([]byte(badMemberType)); err == nil {
		t.Error("unknown member type accepted")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	m := validModel()
	if err := m.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}
	got, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if got.Name != m.Name {
		t.Errorf("name = %q, want %q", got.Name, m.Name)
	}
	if len(got.Nodes) != len(m.Nodes) || len(got.Members) != len(m.Members) {
		t.Errorf("round trip lost entries: %d nodes, %d members",
			len(got.Nodes), len(got.Members))
	}
	if got.CrossSections[0].Color != "#ff0000" || got.CrossSections[0].Layer != "columns" {
		t.Errorf("display attributes not carried: %+v", got.CrossSections[0])
	}
}

func TestLoadRejectsInvalidReference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	doc := `{
	  "name": "m",
	  "nodes": [{"name": "N1", "x": 0, "y": 0, "z": 0}],
	  "materials": [{"name": "S355", "type": "steel", "e": 210000}],
	  "cross_sections": [{"name": "CS1", "material": "S355", "profile": "IPE 300"}],
	  "members": []
	}`
	if err := writeFile(path, doc); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("model with unknown catalog profile accepted")
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
