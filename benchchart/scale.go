// Copyright 2024 The Benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import "math"

// LogitScale is a plot.Normalizer for values in the open interval
// (0,1), placing them by their log-odds. Useful for ratios that
// cluster near 0 or 1.
type LogitScale struct{}

// Normalize implements plot.Normalizer.
func (LogitScale) Normalize(min, max, x float64) float64 {
	lmin, lmax := logit(min), logit(max)
	return (logit(x) - lmin) / (lmax - lmin)
}

func logit(x float64) float64 { return math.Log(x / (1 - x)) }

// HybridLogScale is a plot.Normalizer that is linear below Break and
// logarithmic above it. The linear segment occupies the lower half of
// the axis and the logarithmic segment the upper half, so the bulk of
// the data (everything up to Break) keeps linear resolution while
// outliers stay on screen.
//
// Break is typically an upper order statistic of the plotted values,
// such as their 80th percentile.
type HybridLogScale struct {
	Break float64
}

// Normalize implements plot.Normalizer.
func (s HybridLogScale) Normalize(min, max, x float64) float64 {
	b := s.Break
	if b <= 0 || b <= min || max <= b {
		// No meaningful transition point inside the axis range;
		// degrade to a plain linear axis.
		return (x - min) / (max - min)
	}
	if x <= b {
		return 0.5 * (x - min) / (b - min)
	}
	return 0.5 + 0.5*math.Log(x/b)/math.Log(max/b)
}
