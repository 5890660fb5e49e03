// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Builders attach method context with builderErrorf (%w wrapping).

package builder

import (
	"errors"
	"fmt"
)

// ErrUnknownSolid indicates a SolidName outside the supported set.
var ErrUnknownSolid = errors.New("builder: unknown solid")

// ErrTooFewSides indicates a polygon with fewer than MinPolygonSides sides.
var ErrTooFewSides = errors.New("builder: polygon needs at least 3 sides")

// builderErrorf prefixes err with the method tag and formatted detail.
func builderErrorf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
