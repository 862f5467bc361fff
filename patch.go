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

// DeltaType describes the kind of a delta.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=DeltaType
type DeltaType int

const (
	Insert DeltaType = iota // Elements are only present in the revised slice
	Delete                  // Elements are only present in the original slice
	Change                  // Elements of the original slice are replaced by elements of the revised slice
)

// Chunk is a contiguous run of elements from one side of a comparison.
//
// Position is the index of the run's first element in the slice the chunk was taken from. For an
// empty chunk, Position is the insertion point the chunk refers to.
type Chunk[T any] struct {
	Position int
	Lines    []T
}

// Size returns the number of elements in the chunk.
func (c Chunk[T]) Size() int { return len(c.Lines) }

// Delta describes one localized edit: the elements of Original are replaced by the elements of
// Revised.
//
// Type is fully determined by the sizes of the two chunks, use [NewDelta] to construct a delta
// with a consistent tag:
//
//   - Insert: Original is empty and Revised is not.
//   - Delete: Original is not empty and Revised is.
//   - Change: both chunks are non-empty.
type Delta[T any] struct {
	Type     DeltaType
	Original Chunk[T]
	Revised  Chunk[T]
}

// NewDelta builds a delta from an original and a revised chunk, deriving the delta type from the
// chunk sizes.
func NewDelta[T any](original, revised Chunk[T]) Delta[T] {
	typ := Change
	switch {
	case original.Size() == 0 && revised.Size() > 0:
		typ = Insert
	case original.Size() > 0 && revised.Size() == 0:
		typ = Delete
	}
	return Delta[T]{Type: typ, Original: original, Revised: revised}
}

// Patch is an ordered sequence of deltas. Deltas are ordered by ascending position of their
// original chunks and do not overlap.
//
// A patch is exclusively owned by its producer during construction. Once returned, it is
// immutable from the caller's perspective and can be shared freely.
type Patch[T any] struct {
	deltas []Delta[T]
}

// AddDelta appends d to the patch. The caller is responsible for supplying deltas in ascending,
// non-overlapping order; no re-sorting takes place.
func (p *Patch[T]) AddDelta(d Delta[T]) {
	p.deltas = append(p.deltas, d)
}

// Deltas returns the deltas of the patch in order. The returned slice is a view owned by the
// patch and must not be modified.
func (p *Patch[T]) Deltas() []Delta[T] {
	return p.deltas
}
