// SPDX-License-Identifier: MIT
// Package: lvmesh/subdivide
//
// api.go - one-call entry points.

package subdivide

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmesh/halfedge"
)

const methodSubdivideLevels = "SubdivideLevels"

// Subdivide returns one Catmull-Clark level of m. m is not modified.
func Subdivide(m *halfedge.Mesh, opts ...Option) (*halfedge.Mesh, error) {
	s, err := New(m, opts...)
	if err != nil {
		return nil, err
	}

	return s.Generate()
}

// SubdivideLevels applies Subdivide levels times. Zero levels returns m itself.
//
// Notes:
//   • Every level but the last links opposites regardless of opts, since the
//     next level reads them; WithOppositeLinking only governs the final mesh.
//
// Errors:
//   • ErrNegativeLevels for levels < 0.
//   • The first failing level's error, wrapped with its level number.
func SubdivideLevels(m *halfedge.Mesh, levels int, opts ...Option) (*halfedge.Mesh, error) {
	if levels < 0 {
		return nil, fmt.Errorf("%s: %d: %w", methodSubdivideLevels, levels, ErrNegativeLevels)
	}
	if m == nil {
		return nil, fmt.Errorf("%s: %w", methodSubdivideLevels, ErrNilMesh)
	}
	// Intermediate levels append a forced link option; later options win.
	linked := append(slices.Clone(opts), WithOppositeLinking(true))
	cur := m
	for level := 1; level <= levels; level++ {
		levelOpts := linked
		if level == levels {
			levelOpts = opts
		}
		next, err := Subdivide(cur, levelOpts...)
		if err != nil {
			return nil, fmt.Errorf("%s: level %d: %w", methodSubdivideLevels, level, err)
		}
		cur = next
	}

	return cur, nil
}
