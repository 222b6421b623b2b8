// Copyright 2024 The Benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"strings"
)

// An Input is one table to read, together with the label used for it
// in legends and error messages.
type Input struct {
	Path  string
	Label string
}

// ParseInputs interprets a list of command-line file arguments.
//
// Entries may be of the form label=path, in which case the label part
// is used verbatim. Bare paths label themselves; if the same bare path
// is given more than once, the duplicates are disambiguated by
// appending "#N", since indistinguishable legend entries are generally
// not what users expect.
func ParseInputs(args []string) []Input {
	inputs := make([]Input, 0, len(args))
	pathCount := make(map[string]int)
	for _, arg := range args {
		label, path := arg, arg
		if i := strings.Index(arg, "="); i >= 0 {
			label, path = arg[:i], arg[i+1:]
		} else {
			pathCount[path]++
		}
		inputs = append(inputs, Input{Path: path, Label: label})
	}

	pathI := make(map[string]int)
	for i := range inputs {
		inp := &inputs[i]
		if inp.Label != inp.Path || pathCount[inp.Path] == 1 {
			continue
		}
		inp.Label = fmt.Sprintf("%s#%d", inp.Path, pathI[inp.Path])
		pathI[inp.Path]++
	}
	return inputs
}
