// SPDX-License-Identifier: MIT
// Package: lvmesh/halfedge
//
// traversal.go - ordered id sequences over a mesh or one face boundary.
//
// Determinism:
//   • Faces and FaceIDs yield ids in storage (creation) order.
//   • FaceHalfedges starts at the given halfedge and follows Next.
//
// Ownership:
//   • FaceHalfedges and FaceVertices return freshly allocated slices, so the
//     caller may mutate any mesh (including another one being built) while
//     iterating them.

package halfedge

import (
	"fmt"
	"iter"
)

const (
	methodFaceHalfedges = "FaceHalfedges"
	methodFaceVertices  = "FaceVertices"
)

// Faces yields every face id in storage order. The sequence is restartable.
func (m *Mesh) Faces() iter.Seq[FaceID] {
	return func(yield func(FaceID) bool) {
		for i := range m.faces {
			if !yield(FaceID(i)) {
				return
			}
		}
	}
}

// FaceIDs is Faces materialized into a slice.
func (m *Mesh) FaceIDs() []FaceID {
	out := make([]FaceID, len(m.faces))
	for i := range m.faces {
		out[i] = FaceID(i)
	}

	return out
}

// FaceHalfedges walks Next from start until it returns to start and returns
// one halfedge per corner, start first.
//
// Implementation:
//   • Stage 1: Resolve start.
//   • Stage 2: Follow Next, appending each id, bounded by HalfedgeCount steps.
//
// Errors:
//   • ErrHalfedgeNotFound if start or any Next addresses no halfedge.
//   • ErrBrokenCycle if a Next is unset (NoHalfedge) or the walk does not
//     close within HalfedgeCount steps.
//
// Complexity:
//   • Time O(d) for a face of degree d, Space O(d).
func (m *Mesh) FaceHalfedges(start HalfedgeID) ([]HalfedgeID, error) {
	he, err := m.halfedgeRecord(methodFaceHalfedges, start)
	if err != nil {
		return nil, err
	}

	out := []HalfedgeID{start}
	limit := len(m.halfedges)
	for cur := he.Next; cur != start; {
		if cur == NoHalfedge {
			return nil, fmt.Errorf("%s: from %d: halfedge %d has no next: %w",
				methodFaceHalfedges, start, out[len(out)-1], ErrBrokenCycle)
		}
		next, err := m.halfedgeRecord(methodFaceHalfedges, cur)
		if err != nil {
			return nil, fmt.Errorf("%s: from %d: %w", methodFaceHalfedges, start, err)
		}
		if len(out) >= limit {
			return nil, fmt.Errorf("%s: from %d: %w", methodFaceHalfedges, start, ErrBrokenCycle)
		}
		out = append(out, cur)
		cur = next.Next
	}

	return out, nil
}

// FaceBoundary is FaceHalfedges started at the face's representative halfedge.
func (m *Mesh) FaceBoundary(f FaceID) ([]HalfedgeID, error) {
	face, err := m.faceRecord(methodFaceHalfedges, f)
	if err != nil {
		return nil, err
	}

	return m.FaceHalfedges(face.Halfedge)
}

// FaceVertices returns the origin of every boundary halfedge of f, in order.
func (m *Mesh) FaceVertices(f FaceID) ([]VertexID, error) {
	hs, err := m.FaceBoundary(f)
	if err != nil {
		return nil, err
	}
	out := make([]VertexID, len(hs))
	for i, h := range hs {
		out[i] = m.halfedges[h].Vertex
		if !out[i].Valid() {
			return nil, fmt.Errorf("%s: halfedge %d has no origin: %w", methodFaceVertices, h, ErrVertexNotFound)
		}
	}

	return out, nil
}

// FaceDegree is the number of corners of f.
func (m *Mesh) FaceDegree(f FaceID) (int, error) {
	hs, err := m.FaceBoundary(f)
	if err != nil {
		return 0, err
	}

	return len(hs), nil
}
