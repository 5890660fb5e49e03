// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// variants_platonic.go - canonical vertex and face tables for the solids.
//
// Design:
//   • Single source of truth for every supported solid.
//   • Faces are wound counter-clockwise seen from outside, so each directed
//     edge occurs exactly once and every edge gets a twin.
//   • Tables are immutable; they are part of the fixture contract.

package builder

import "gonum.org/v1/gonum/spatial/r3"

// SolidName enumerates the supported closed solids.
type SolidName int

// Enum values (stable ordering).
const (
	Tetrahedron SolidName = iota // V=4, E=6,  F=4 triangles
	Cube                         // V=8, E=12, F=6 quads
	Octahedron                   // V=6, E=12, F=8 triangles
)

// String provides a readable identifier for logs and errors.
func (s SolidName) String() string {
	switch s {
	case Tetrahedron:
		return "tetrahedron"
	case Cube:
		return "cube"
	case Octahedron:
		return "octahedron"
	default:
		return "unknown"
	}
}

// ParseSolidName maps a String() value back to its SolidName.
func ParseSolidName(name string) (SolidName, bool) {
	for _, s := range []SolidName{Tetrahedron, Cube, Octahedron} {
		if s.String() == name {
			return s, true
		}
	}

	return 0, false
}

// solidTable is the canonical geometry of one solid.
type solidTable struct {
	points []r3.Vec
	faces  [][]int
}

var solidTables = map[SolidName]solidTable{
	// Alternate corners of the cube [-1,1]^3.
	Tetrahedron: {
		points: []r3.Vec{
			{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1},
		},
		faces: [][]int{
			{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2},
		},
	},

	// Layout:
	//   Bottom ring (z=-1): 0-1-2-3
	//   Top ring    (z=+1): 4-5-6-7
	//   Verticals:          0-4, 1-5, 2-6, 3-7
	Cube: {
		points: []r3.Vec{
			{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
		},
		faces: [][]int{
			{0, 3, 2, 1}, // bottom
			{4, 5, 6, 7}, // top
			{0, 1, 5, 4}, // front
			{1, 2, 6, 5}, // right
			{2, 3, 7, 6}, // back
			{3, 0, 4, 7}, // left
		},
	},

	// Poles 0 (+z) and 1 (-z); equator 2(+x) 4(+y) 3(-x) 5(-y).
	Octahedron: {
		points: []r3.Vec{
			{Z: 1}, {Z: -1}, {X: 1}, {X: -1}, {Y: 1}, {Y: -1},
		},
		faces: [][]int{
			{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
			{1, 4, 2}, {1, 3, 4}, {1, 5, 3}, {1, 2, 5},
		},
	},
}
