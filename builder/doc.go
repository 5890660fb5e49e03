// SPDX-License-Identifier: MIT

// Package builder constructs small, deterministic half-edge meshes: the
// Platonic solids with quad or triangle faces and flat regular polygons.
//
// The meshes serve as fixtures for tests, benchmarks and the lvmesh CLI.
//
// Key components:
//
//   • Solid(name, opts...):    Tetrahedron, Cube or Octahedron, closed and
//     fully twin-linked, faces wound counter-clockwise seen from outside.
//   • Polygon(n, opts...):     one open n-gon in the XY plane.
//   • BuilderOption:           WithScale, WithCenter.
//
// Guarantees:
//
//   • Vertex and face ids follow the canonical tables in variants_platonic.go.
//   • Every returned mesh passes (*halfedge.Mesh).Validate.
//   • Option constructors panic on meaningless input; builders return sentinel
//     errors (ErrUnknownSolid, ErrTooFewSides) wrapped with method context.
package builder
