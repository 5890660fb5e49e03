// SPDX-License-Identifier: MIT

// Package objio reads and writes polygon meshes in the Wavefront OBJ text
// format.
//
// Only geometry and connectivity are kept: "v" and "f" records. Vertex
// colours appended to "v" records are accepted and dropped. Texture
// coordinates, normals, groups, materials and any other record are skipped.
// Face tokens may be "i", "i/t", "i//n" or "i/t/n"; negative indices count
// back from the most recent vertex.
package objio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/halfedge"
)

// Sentinel errors for OBJ parsing.
var (
	// ErrSyntax indicates a malformed v or f record.
	ErrSyntax = errors.New("objio: syntax error")

	// ErrZeroIndex indicates a face index of 0, which OBJ does not define.
	ErrZeroIndex = errors.New("objio: face index 0")
)

// Read parses an OBJ stream into a fully linked half-edge mesh.
//
// Errors:
//   • ErrSyntax / ErrZeroIndex with the offending line number.
//   • halfedge.FromPolygons errors (bad indices, degenerate or non-manifold faces).
//   • Any error from r.
func Read(r io.Reader) (*halfedge.Mesh, error) {
	var (
		points   []r3.Vec
		polygons [][]int
	)

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			p, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objio: line %d: %w", line, err)
			}
			points = append(points, p)
		case "f":
			poly, err := parseFace(fields[1:], len(points))
			if err != nil {
				return nil, fmt.Errorf("objio: line %d: %w", line, err)
			}
			polygons = append(polygons, poly)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objio: read: %w", err)
	}

	m, err := halfedge.FromPolygons(points, polygons)
	if err != nil {
		return nil, fmt.Errorf("objio: %w", err)
	}

	return m, nil
}

// parseVertex reads "x y z", optionally followed by w, an "r g b" vertex
// colour, or both. Only x y z are kept.
func parseVertex(fields []string) (r3.Vec, error) {
	switch len(fields) {
	case 3, 4, 6, 7:
	default:
		return r3.Vec{}, fmt.Errorf("vertex with %d coordinates: %w", len(fields), ErrSyntax)
	}
	var xyz [3]float64
	for i := range xyz {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("vertex coordinate %q: %w", fields[i], ErrSyntax)
		}
		xyz[i] = v
	}

	return r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

// parseFace converts OBJ face tokens into 0-based point indices.
// seen is the number of vertices declared so far, for relative indices.
func parseFace(fields []string, seen int) ([]int, error) {
	poly := make([]int, len(fields))
	for i, tok := range fields {
		head, _, _ := strings.Cut(tok, "/")
		idx, err := strconv.Atoi(head)
		if err != nil {
			return nil, fmt.Errorf("face index %q: %w", tok, ErrSyntax)
		}
		switch {
		case idx > 0:
			poly[i] = idx - 1
		case idx < 0:
			poly[i] = seen + idx
		default:
			return nil, ErrZeroIndex
		}
	}

	return poly, nil
}

// Write emits m as OBJ: one "v" record per vertex in id order, then one "f"
// record per face in id order with 1-based indices.
func Write(w io.Writer, m *halfedge.Mesh) error {
	points, polygons, err := m.Polygons()
	if err != nil {
		return fmt.Errorf("objio: %w", err)
	}

	bw := bufio.NewWriter(w)
	for _, p := range points {
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
	}
	for _, poly := range polygons {
		bw.WriteString("f")
		for _, idx := range poly {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(idx + 1))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
