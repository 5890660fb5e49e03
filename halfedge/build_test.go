// SPDX-License-Identifier: MIT

package halfedge_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/halfedge"
)

// TestFromPolygonsCube verifies counts, twins and valence of the closed cube.
func TestFromPolygonsCube(t *testing.T) {
	m := cube(t)

	require.Equal(t, halfedge.Stats{Vertices: 8, Halfedges: 24, Edges: 12, Faces: 6}, m.Stats())
	require.NoError(t, m.Validate())

	for h := 0; h < m.HalfedgeCount(); h++ {
		he, err := m.Halfedge(halfedge.HalfedgeID(h))
		require.NoError(t, err)
		require.True(t, he.Opposite.Valid(), "halfedge %d must be paired", h)

		twin, err := m.Halfedge(he.Opposite)
		require.NoError(t, err)
		require.Equal(t, halfedge.HalfedgeID(h), twin.Opposite)

		// Twins run in opposite directions.
		dst, err := m.Destination(halfedge.HalfedgeID(h))
		require.NoError(t, err)
		require.Equal(t, dst, twin.Vertex)
	}
	for v := 0; v < m.VertexCount(); v++ {
		vert, err := m.Vertex(halfedge.VertexID(v))
		require.NoError(t, err)
		require.Equal(t, 3, vert.Valence(), "cube vertex %d", v)
	}
}

// TestFromPolygonsRejectsBadInput verifies the validation sentinels.
func TestFromPolygonsRejectsBadInput(t *testing.T) {
	_, err := halfedge.FromPolygons(quadPoints, [][]int{{0, 1}})
	require.ErrorIs(t, err, halfedge.ErrDegenerateFace)

	_, err = halfedge.FromPolygons(quadPoints, [][]int{{0, 1, 4}})
	require.ErrorIs(t, err, halfedge.ErrIndexOutOfRange)

	// Same winding on both triangles: edge 0→1 is used twice.
	_, err = halfedge.FromPolygons(quadPoints, [][]int{{0, 1, 2}, {0, 1, 3}})
	require.ErrorIs(t, err, halfedge.ErrNonManifold)
}

// TestFromPolygonsOpenSeam verifies a two-face strip: shared edge paired, border open.
func TestFromPolygonsOpenSeam(t *testing.T) {
	m, err := halfedge.FromPolygons(quadPoints, [][]int{{0, 1, 2}, {0, 2, 3}})
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	require.Equal(t, 5, m.EdgeCount())

	open, err := m.LinkOpposites()
	require.NoError(t, err)
	require.Equal(t, 4, open)
}

// TestPolygonsRoundTrip verifies export reproduces the input soup.
func TestPolygonsRoundTrip(t *testing.T) {
	m := cube(t)
	points, polys, err := m.Polygons()
	require.NoError(t, err)
	require.Equal(t, cubePoints, points)
	require.Equal(t, cubeFaces, polys)
}

// TestLinkOppositesOnHandBuiltMesh pairs twins written without opposites.
func TestLinkOppositesOnHandBuiltMesh(t *testing.T) {
	m := halfedge.New()
	for _, p := range quadPoints {
		m.AddVertex(p)
	}
	for _, tri := range [][]halfedge.VertexID{{0, 1, 2}, {0, 2, 3}} {
		f := m.AddFace()
		var hs []halfedge.HalfedgeID
		for _, v := range tri {
			h := m.AddHalfedge()
			require.NoError(t, m.SetOrigin(h, v))
			he, err := m.HalfedgeMut(h)
			require.NoError(t, err)
			he.Face = f
			hs = append(hs, h)
		}
		for i := range hs {
			require.NoError(t, m.LinkHalfedges(hs[i], hs[(i+1)%len(hs)]))
		}
		fm, err := m.FaceMut(f)
		require.NoError(t, err)
		fm.Halfedge = hs[0]
	}
	require.Equal(t, 6, m.EdgeCount())

	open, err := m.LinkOpposites()
	require.NoError(t, err)
	require.Equal(t, 4, open)
	require.Equal(t, 5, m.EdgeCount())

	// Halfedge 2 runs 2→0, halfedge 3 runs 0→2.
	he, _ := m.Halfedge(2)
	require.Equal(t, halfedge.HalfedgeID(3), he.Opposite)
	require.NoError(t, m.Validate())
}

// TestLinkOppositesUnresolvedDestination verifies a halfedge without a
// destination fails the pass before any opposite is written.
func TestLinkOppositesUnresolvedDestination(t *testing.T) {
	m := halfedge.New()
	v0, v1 := m.AddVertex(r3.Vec{}), m.AddVertex(r3.Vec{X: 1})
	a, b := m.AddHalfedge(), m.AddHalfedge()
	require.NoError(t, m.SetOrigin(a, v0))
	require.NoError(t, m.SetOrigin(b, v1))
	require.NoError(t, m.LinkHalfedges(a, b)) // b.Next stays unset

	_, err := m.LinkOpposites()
	require.ErrorIs(t, err, halfedge.ErrHalfedgeNotFound)

	he, err := m.Halfedge(a)
	require.NoError(t, err)
	require.False(t, he.Opposite.Valid())
	require.Equal(t, 2, m.EdgeCount())
}

// TestValidateDetectsViolations corrupts a valid cube one invariant at a time.
func TestValidateDetectsViolations(t *testing.T) {
	t.Run("asymmetric opposite", func(t *testing.T) {
		m := cube(t)
		he, err := m.HalfedgeMut(0)
		require.NoError(t, err)
		he.Opposite = 5
		require.ErrorIs(t, m.Validate(), halfedge.ErrOppositeMismatch)
	})
	t.Run("origin not in incidence set", func(t *testing.T) {
		m := cube(t)
		he, err := m.HalfedgeMut(0)
		require.NoError(t, err)
		he.Vertex = 6
		require.ErrorIs(t, m.Validate(), halfedge.ErrIncidenceMismatch)
	})
	t.Run("degenerate face", func(t *testing.T) {
		m := halfedge.New()
		v0, v1 := m.AddVertex(r3.Vec{}), m.AddVertex(r3.Vec{X: 1})
		f := m.AddFace()
		a, b := m.AddHalfedge(), m.AddHalfedge()
		require.NoError(t, m.SetOrigin(a, v0))
		require.NoError(t, m.SetOrigin(b, v1))
		require.NoError(t, m.LinkHalfedges(a, b))
		require.NoError(t, m.LinkHalfedges(b, a))
		for _, h := range []halfedge.HalfedgeID{a, b} {
			he, _ := m.HalfedgeMut(h)
			he.Face = f
		}
		fm, _ := m.FaceMut(f)
		fm.Halfedge = a
		require.ErrorIs(t, m.Validate(), halfedge.ErrDegenerateFace)
	})
}
