// Copyright 2024 The Benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colspec parses column specifications for benchmark result
// tables and resolves them to field positions.
//
// A specification token selects one recorded statistic of one
// measurement, using the grammar
//
//	token := measurement (":" statistic)?
//
// where measurement is one of "all", "time", "memory", or "cpu" and
// statistic is one of "mean", "median", or "min". When the statistic
// is omitted it defaults to "mean". The pseudo-measurement "all"
// stands for every real measurement and may only appear as the sole
// token of a list.
package colspec

import (
	"errors"
	"fmt"
	"strings"
)

// A Measurement is a tracked resource dimension of a benchmark run.
type Measurement string

// A Statistic is an aggregate value reported per measurement.
type Statistic string

const (
	All    Measurement = "all"
	Time   Measurement = "time"
	Memory Measurement = "memory"
	CPU    Measurement = "cpu"

	Mean   Statistic = "mean"
	Median Statistic = "median"
	Min    Statistic = "min"
)

// Measurements lists the real measurements in table column order.
// "all" expands to exactly this sequence.
var Measurements = []Measurement{Time, Memory, CPU}

// Statistics lists the valid statistics in table column order.
var Statistics = []Statistic{Mean, Median, Min}

// StdDevOffset is the offset of the standard-deviation slot within a
// measurement block, in tables whose layout carries one.
const StdDevOffset = 3

// Parse errors are wrapped around these sentinels so callers can
// distinguish them with errors.Is.
var (
	ErrMeasurement = errors.New("invalid measurement")
	ErrStatistic   = errors.New("invalid statistic")
	ErrConflict    = errors.New("\"all\" cannot be combined with other columns")
)

var (
	measurementIndex = map[Measurement]int{All: 0, Time: 0, Memory: 1, CPU: 2}
	statisticIndex   = map[Statistic]int{Mean: 0, Median: 1, Min: 2}
)

// A Spec is a validated (measurement, statistic) pair. The zero Spec
// is not valid; construct Specs with Parse or ParseList.
type Spec struct {
	Measurement Measurement
	Statistic   Statistic
}

func (s Spec) String() string {
	return string(s.Measurement) + ":" + string(s.Statistic)
}

// FieldPosition returns the 0-based field position of s in a table row
// whose measurement blocks are stride fields wide. Position 0 is the
// benchmark name column. The position depends on the table layout, so
// it must be recomputed for every table rather than cached.
func (s Spec) FieldPosition(stride int) int {
	return 1 + stride*measurementIndex[s.Measurement] + statisticIndex[s.Statistic]
}

// Matches reports whether header plausibly labels the column selected
// by s. The check is a case-insensitive containment test for both the
// measurement and statistic names; it is the structural integrity
// check at the input boundary.
func (s Spec) Matches(header string) bool {
	h := strings.ToLower(header)
	return strings.Contains(h, string(s.Measurement)) && strings.Contains(h, string(s.Statistic))
}

// Parse parses a single specification token.
func Parse(token string) (Spec, error) {
	meas, stat := token, string(Mean)
	if i := strings.IndexByte(token, ':'); i >= 0 {
		meas, stat = token[:i], token[i+1:]
	}
	m := Measurement(meas)
	if _, ok := measurementIndex[m]; !ok {
		return Spec{}, fmt.Errorf("%w %q, expected one of all, time, memory, or cpu", ErrMeasurement, meas)
	}
	st := Statistic(stat)
	if _, ok := statisticIndex[st]; !ok {
		return Spec{}, fmt.Errorf("%w %q, expected one of mean, median, or min", ErrStatistic, stat)
	}
	return Spec{m, st}, nil
}

// ParseList parses a comma-separated list of specification tokens and
// expands "all" into one Spec per real measurement, preserving the
// requested statistic. "all" may only appear alone in the list.
func ParseList(list string) ([]Spec, error) {
	tokens := strings.Split(list, ",")
	specs := make([]Spec, 0, len(tokens))
	for _, tok := range tokens {
		s, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		if s.Measurement == All && len(tokens) > 1 {
			return nil, fmt.Errorf("%w: %q", ErrConflict, list)
		}
		specs = append(specs, s)
	}
	if specs[0].Measurement == All {
		stat := specs[0].Statistic
		specs = specs[:0]
		for _, m := range Measurements {
			specs = append(specs, Spec{m, stat})
		}
	}
	return specs, nil
}
