package catalog

import "gosaf/internal/profile"

// Cold-formed circular hollow sections, EN 10219. Outer diameter and wall
// thickness in mm.
var chsTable = []struct {
	d, t float64
}{
	{21.3, 2.3},
	{26.9, 2.3},
	{33.7, 2.6},
	{42.4, 2.6},
	{48.3, 2.9},
	{60.3, 2.9},
	{76.1, 2.9},
	{88.9, 3.2},
	{114.3, 3.6},
	{139.7, 4.0},
	{168.3, 4.5},
	{219.1, 5.9},
}

// Cold-formed rectangular and square hollow sections, EN 10219. The outer
// corner radius is twice the wall thickness.
var rhsTable = []struct {
	w, h, t float64
}{
	{30, 50, 3},
	{40, 60, 3},
	{40, 80, 4},
	{50, 100, 4},
	{80, 120, 5},
	{100, 150, 6},
	{100, 200, 5},
	{100, 200, 8},
	{150, 250, 8},
	{40, 40, 3},
	{50, 50, 4},
	{60, 60, 4},
	{80, 80, 5},
	{100, 100, 5},
	{120, 120, 6},
	{150, 150, 8},
}

// Hot-rolled channels with sloped flanges, DIN 1026-1. Flange slope 8%.
var unpTable = []struct {
	h, b, s, t, r1, r2 float64
}{
	{80, 45, 6, 8, 8, 4},
	{100, 50, 6, 8.5, 8.5, 4.5},
	{120, 55, 7, 9, 9, 4.5},
	{140, 60, 7, 10, 10, 5},
	{160, 65, 7.5, 10.5, 10.5, 5.5},
	{180, 70, 8, 11, 11, 5.5},
	{200, 75, 8.5, 11.5, 11.5, 6},
	{240, 85, 9.5, 13, 13, 6.5},
	{300, 100, 10, 16, 16, 8},
}

// Hot-rolled equal-leg angles, DIN 1028.
var lnpTable = []struct {
	a, t, r1, r2 float64
}{
	{30, 3, 5, 2.5},
	{40, 4, 6, 3},
	{50, 5, 7, 3.5},
	{60, 6, 8, 4},
	{70, 7, 9, 4.5},
	{80, 8, 10, 5},
	{100, 10, 12, 6},
	{120, 12, 13, 6.5},
	{150, 15, 16, 8},
}

// Flat bars: width x thickness.
var stripTable = []struct {
	w, t float64
}{
	{40, 5},
	{50, 5},
	{60, 6},
	{80, 8},
	{100, 10},
	{120, 12},
}

func init() {
	for _, row := range chsTable {
		p, err := profile.NewCHS("", row.d, row.t)
		register(FamilyCHS, p, err)
	}
	for _, row := range rhsTable {
		f := FamilyRHS
		if row.w == row.h {
			f = FamilySHS
		}
		p, err := profile.NewRHS("", row.w, row.h, row.t, 2*row.t)
		register(f, p, err)
	}
	for _, row := range unpTable {
		p, err := profile.NewUNP("", row.h, row.s, profile.Flange{
			Width:      row.b,
			Thickness:  row.t,
			Slope:      8,
			RootRadius: row.r1,
			ToeRadius:  row.r2,
		})
		register(FamilyUNP, p, err)
	}
	for _, row := range lnpTable {
		p, err := profile.NewLNP("", row.a, row.a, row.t, row.r1, row.r2)
		register(FamilyLNP, p, err)
	}
	for _, row := range stripTable {
		p, err := profile.NewStrip("", row.w, row.t)
		register(FamilyStrip, p, err)
	}
}
