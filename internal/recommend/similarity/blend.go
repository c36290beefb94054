// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package similarity

import (
	"context"
	"fmt"
	"math"
)

// DefaultBlendWeight is the share of text similarity in the blended score.
const DefaultBlendWeight = 0.5

// MinMaxScale maps values linearly onto [0, 1]. When every value is equal
// the range is degenerate and all scaled values are 0.
func MinMaxScale(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		return out
	}
	for i, v := range values {
		out[i] = (v - lo) / span
	}
	return out
}

// Blend replaces every element of m, in place, with
// weight*m[i][j] + (1-weight)*(1-|scaled[i]-scaled[j]|).
func Blend(ctx context.Context, m *Matrix, scaled []float64, weight float64, workers int) error {
	if len(scaled) != m.Size() {
		return fmt.Errorf("blend: %d scores for a %d×%d matrix", len(scaled), m.Size(), m.Size())
	}
	if weight < 0 || weight > 1 {
		return fmt.Errorf("blend: weight %v outside [0, 1]", weight)
	}

	rest := 1 - weight
	return forEachRow(ctx, m.Size(), workers, func() func(i int) {
		return func(i int) {
			row := m.Row(i)
			si := scaled[i]
			for j := range row {
				row[j] = weight*row[j] + rest*(1-math.Abs(si-scaled[j]))
			}
		}
	})
}
