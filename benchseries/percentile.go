// Copyright 2024 The Benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"errors"
	"math"
	"sort"
)

// ErrNoValues is returned by Percentile for an empty input. There is
// no meaningful default; callers must handle it explicitly.
var ErrNoValues = errors.New("no values")

// Percentile returns the p-th order statistic of vals, p in [0,1],
// using linear interpolation between closest ranks: the real-valued
// rank is k = (n-1)*p, and when k falls between two indices the result
// mixes the bracketing elements with weights (ceil-k) and (k-floor).
//
// vals need not be sorted; it is not modified.
func Percentile(vals []float64, p float64) (float64, error) {
	if len(vals) == 0 {
		return 0, ErrNoValues
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	k := float64(len(sorted)-1) * p
	lo, hi := math.Floor(k), math.Ceil(k)
	if lo == hi {
		return sorted[int(k)], nil
	}
	return sorted[int(lo)]*(hi-k) + sorted[int(hi)]*(k-lo), nil
}
