// SPDX-License-Identifier: MIT

// Package subdivide refines half-edge meshes with one level of Catmull-Clark
// subdivision per call.
//
// What one level produces:
//
//	For every input face a face point (its centroid), for every edge an edge
//	point, and for every vertex a relocated vertex point. Each corner of an
//	input face of degree n becomes one quad
//
//	    face point → edge point → vertex point → edge point
//
//	so the output has exactly H faces (H = input halfedges) and V+E+F vertices.
//
// Rules (interior, manifold case):
//   • face point   = centroid of the face corners
//   • edge point   = centroid of both endpoints and both adjacent face points
//   • vertex point = (2*E + F + P*|n-3|) / n, with F the mean adjacent face
//     point, E the mean incident edge midpoint, P the old position, n the valence
//
// Open edges (no opposite) are outside that case; their edge point is the midpoint.
//
// Usage:
//
//	out, err := subdivide.Subdivide(mesh)
//	out2, err := subdivide.SubdivideLevels(mesh, 2, subdivide.WithLogger(log))
//
// The input mesh is never modified. Every derived point is memoized per input
// id, so each face, edge and vertex emits exactly one output vertex regardless
// of how many corners reference it.
package subdivide
