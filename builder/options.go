// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Builders themselves never panic.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// BuilderOption customizes placement of a built mesh.
type BuilderOption func(*builderConfig)

// WithScale multiplies all canonical coordinates by s.
// Panics unless s is finite and > 0.
func WithScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithScale requires a finite positive factor")
	}
	return func(c *builderConfig) { c.scale = s }
}

// WithCenter translates the mesh so its canonical origin lands on p.
func WithCenter(p r3.Vec) BuilderOption {
	return func(c *builderConfig) { c.center = p }
}
