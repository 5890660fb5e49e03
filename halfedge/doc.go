// SPDX-License-Identifier: MIT

// Package halfedge stores polygon mesh connectivity as an index-addressed
// half-edge graph.
//
// What is a half-edge mesh?
//
//	Every undirected edge is split into two directed halfedges, one per
//	adjacent face. A halfedge records its origin vertex, the face it bounds,
//	the next halfedge around that face and its opposite across the edge:
//
//	        v1
//	       /  ^
//	  h0  /    \ h2        h0.Next == h1, h1.Next == h2, h2.Next == h0
//	     v      \          h0.Opposite lives in the neighbouring face
//	   v0 -----> v2
//	        h1
//
// Storage model:
//   • Vertices, halfedges and faces live in three per-mesh arenas.
//   • All relations are arena indices (VertexID, HalfedgeID, FaceID); ids are
//     meaningless across meshes.
//   • Construction is two-phase: AddHalfedge returns an unlinked record whose
//     Next/Opposite are filled in afterwards, since those relations are cyclic.
//
// Key features:
//   • Typed lookups failing with sentinel errors on dangling ids.
//   • Derived geometry: FaceCenter, EdgeCenter, CanonicalHalfedge.
//   • Traversal: Faces (iter.Seq) and FaceHalfedges (owned slice).
//   • FromPolygons builds a fully linked mesh from a polygon soup;
//     LinkOpposites pairs twins by (origin, destination) matching.
//   • Validate checks the structural invariants.
//
// Concurrency:
//
//	A Mesh has no internal locking. Concurrent readers are fine; any writer
//	needs exclusive access.
//
// Usage:
//
//	m, err := halfedge.FromPolygons(points, [][]int{{0, 1, 2, 3}, ...})
//	for f := range m.Faces() {
//		c, _ := m.FaceCenter(f)
//		fmt.Println(f, c)
//	}
package halfedge
