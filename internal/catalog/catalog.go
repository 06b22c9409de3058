// Package catalog maps standardized profile designations to their tabulated
// dimensions. The catalog is an explicit immutable mapping built once at
// startup; lookups either return the profile or a not-found error.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gosaf/internal/profile"
)

// ErrNotFound reports an unknown profile designation.
var ErrNotFound = errors.New("profile not found")

// Family groups catalog entries by profile type.
type Family string

const (
	FamilyCHS   Family = "CHS"
	FamilyRHS   Family = "RHS"
	FamilySHS   Family = "SHS"
	FamilyUNP   Family = "UNP"
	FamilyLNP   Family = "LNP"
	FamilyStrip Family = "FL"
)

type entry struct {
	family  Family
	profile profile.Profile
}

var catalog = map[string]entry{}

func register(f Family, p profile.Profile, err error) {
	if err != nil {
		// Tables are package data; a bad row is a programming error.
		panic(fmt.Sprintf("catalog %s: %v", f, err))
	}
	name := p.Designation()
	if _, ok := catalog[name]; ok {
		panic(fmt.Sprintf("catalog: duplicate designation %q", name))
	}
	catalog[name] = entry{family: f, profile: p}
}

// Lookup resolves a designation to its profile. Matching ignores case and
// spacing, so "RHS200x100x5" finds "RHS 100x200x5"-style table keys written
// either way.
func Lookup(name string) (profile.Profile, error) {
	if e, ok := catalog[name]; ok {
		return e.profile, nil
	}
	want := normalize(name)
	for key, e := range catalog {
		if normalize(key) == want {
			return e.profile, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToUpper(name), " ", "")
}

// Families lists the known families in display order.
func Families() []Family {
	return []Family{FamilyCHS, FamilyRHS, FamilySHS, FamilyUNP, FamilyLNP, FamilyStrip}
}

// ByFamily returns a family's profiles sorted by designation.
func ByFamily(f Family) []profile.Profile {
	var out []profile.Profile
	for _, e := range catalog {
		if e.family == f {
			out = append(out, e.profile)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Designation() < out[j].Designation()
	})
	return out
}

// Designations lists every catalog designation sorted.
func Designations() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
