// SPDX-License-Identifier: MIT
// Package: lvmesh/halfedge
//
// geometry.go - positions derived from connectivity.

package halfedge

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodFaceCenter        = "FaceCenter"
	methodEdgeCenter        = "EdgeCenter"
	methodDestination       = "Destination"
	methodCanonicalHalfedge = "CanonicalHalfedge"
)

// Centroid is the arithmetic mean of points; the zero vector for no points.
func Centroid(points ...r3.Vec) r3.Vec {
	if len(points) == 0 {
		return r3.Vec{}
	}
	var sum r3.Vec
	for _, p := range points {
		sum = r3.Add(sum, p)
	}

	return r3.Scale(1/float64(len(points)), sum)
}

// FaceCenter is the centroid of the vertices on f's boundary cycle.
//
// Errors:
//   • Any lookup or traversal error from FaceVertices, wrapped.
func (m *Mesh) FaceCenter(f FaceID) (r3.Vec, error) {
	vs, err := m.FaceVertices(f)
	if err != nil {
		return r3.Vec{}, fmt.Errorf("%s: face %d: %w", methodFaceCenter, f, err)
	}
	var sum r3.Vec
	for _, v := range vs {
		vert, err := m.vertexRecord(methodFaceCenter, v)
		if err != nil {
			return r3.Vec{}, err
		}
		sum = r3.Add(sum, vert.Position)
	}

	return r3.Scale(1/float64(len(vs)), sum), nil
}

// Destination is the origin of h.Next, i.e. the far endpoint of h.
func (m *Mesh) Destination(h HalfedgeID) (VertexID, error) {
	he, err := m.halfedgeRecord(methodDestination, h)
	if err != nil {
		return NoVertex, err
	}
	next, err := m.halfedgeRecord(methodDestination, he.Next)
	if err != nil {
		return NoVertex, err
	}
	if !next.Vertex.Valid() {
		return NoVertex, fmt.Errorf("%s: halfedge %d: %w", methodDestination, he.Next, ErrVertexNotFound)
	}

	return next.Vertex, nil
}

// Endpoints returns the origin and destination positions of h.
func (m *Mesh) Endpoints(h HalfedgeID) (from, to r3.Vec, err error) {
	he, err := m.halfedgeRecord(methodEdgeCenter, h)
	if err != nil {
		return from, to, err
	}
	a, err := m.vertexRecord(methodEdgeCenter, he.Vertex)
	if err != nil {
		return from, to, err
	}
	dst, err := m.Destination(h)
	if err != nil {
		return from, to, err
	}
	b, err := m.vertexRecord(methodEdgeCenter, dst)
	if err != nil {
		return from, to, err
	}

	return a.Position, b.Position, nil
}

// EdgeCenter is the midpoint of the edge containing h.
func (m *Mesh) EdgeCenter(h HalfedgeID) (r3.Vec, error) {
	from, to, err := m.Endpoints(h)
	if err != nil {
		return r3.Vec{}, fmt.Errorf("%s: halfedge %d: %w", methodEdgeCenter, h, err)
	}

	return r3.Scale(0.5, r3.Add(from, to)), nil
}

// CanonicalHalfedge maps h to the representative id of its edge: the smaller
// of h and its opposite, or h itself when the edge is open.
// Both halfedges of one edge therefore share a single id.
func (m *Mesh) CanonicalHalfedge(h HalfedgeID) (HalfedgeID, error) {
	he, err := m.halfedgeRecord(methodCanonicalHalfedge, h)
	if err != nil {
		return NoHalfedge, err
	}
	if he.Opposite.Valid() && he.Opposite < h {
		return he.Opposite, nil
	}

	return h, nil
}
