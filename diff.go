// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package patch

import (
	"errors"
	"fmt"
	"slices"

	"znkr.io/patch/internal/myers"
)

// ErrDifferentiationFailed is returned when the underlying search exhausts all edit costs
// without finding an edit script. This cannot happen for finite inputs and indicates a bug in
// the algorithm rather than a property of the inputs.
var ErrDifferentiationFailed = myers.ErrDifferentiationFailed

// ErrInvariantViolation is returned when the computed edit path is malformed. Like
// [ErrDifferentiationFailed] it signals a bug, not a property of the inputs.
var ErrInvariantViolation = errors.New("diff path is malformed")

// Diff compares the contents of x and y and returns a minimal patch that transforms x into y.
//
// If x and y are identical, the patch is empty.
func Diff[T comparable](x, y []T) (*Patch[T], error) {
	return DiffFunc(x, y, func(a, b T) bool { return a == b })
}

// DiffFunc compares the contents of x and y using the provided equality comparison and returns a
// minimal patch that transforms x into y.
//
// eq must be an equivalence relation: reflexive, symmetric, and transitive. The computation is a
// pure function of x, y, and eq; a fixed eq always yields the same patch for the same inputs.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool) (*Patch[T], error) {
	path, err := myers.Path(x, y, eq)
	if err != nil {
		return nil, err
	}
	return buildRevision(path, x, y)
}

// buildRevision translates a path through the edit graph into a patch.
//
// The path alternates between snake nodes (runs of matches) and diff nodes (runs of insertions
// and deletions). Walking it backwards, every diff node together with its anchoring predecessor
// bounds one delta. Deltas are collected back to front and reversed so that the patch is ordered
// by ascending original position.
func buildRevision[T any](path *myers.Node, x, y []T) (*Patch[T], error) {
	p := &Patch[T]{}
	if path.Snake {
		path = path.Prev
	}
	for path != nil && path.Prev != nil && path.Prev.J >= 0 {
		if path.Snake {
			return nil, fmt.Errorf("%w: snake node where a diff node was expected", ErrInvariantViolation)
		}
		i, j := path.I, path.J
		path = path.Prev
		ianchor, janchor := path.I, path.J

		original := Chunk[T]{Position: ianchor, Lines: slices.Clone(x[ianchor:i])}
		revised := Chunk[T]{Position: janchor, Lines: slices.Clone(y[janchor:j])}
		p.AddDelta(NewDelta(original, revised))

		if path.Snake {
			path = path.Prev
		}
	}
	slices.Reverse(p.deltas)
	return p, nil
}
