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
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want []Delta[string]
	}{
		{
			name: "identical",
			x:    []string{"a", "b", "c"},
			y:    []string{"a", "b", "c"},
			want: nil,
		},
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: nil,
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"x"},
			want: []Delta[string]{
				{
					Type:     Insert,
					Original: Chunk[string]{Position: 0},
					Revised:  Chunk[string]{Position: 0, Lines: []string{"x"}},
				},
			},
		},
		{
			name: "y-empty",
			x:    []string{"x"},
			y:    nil,
			want: []Delta[string]{
				{
					Type:     Delete,
					Original: Chunk[string]{Position: 0, Lines: []string{"x"}},
					Revised:  Chunk[string]{Position: 0},
				},
			},
		},
		{
			name: "single-change",
			x:    []string{"a", "b", "c", "d"},
			y:    []string{"a", "x", "c", "d"},
			want: []Delta[string]{
				{
					Type:     Change,
					Original: Chunk[string]{Position: 1, Lines: []string{"b"}},
					Revised:  Chunk[string]{Position: 1, Lines: []string{"x"}},
				},
			},
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: []Delta[string]{
				{
					Type:     Change,
					Original: Chunk[string]{Position: 1, Lines: []string{"bar"}},
					Revised:  Chunk[string]{Position: 1, Lines: []string{"baz"}},
				},
			},
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: []Delta[string]{
				{
					Type:     Delete,
					Original: Chunk[string]{Position: 0, Lines: []string{"A", "B"}},
					Revised:  Chunk[string]{Position: 0},
				},
				{
					Type:     Insert,
					Original: Chunk[string]{Position: 3},
					Revised:  Chunk[string]{Position: 1, Lines: []string{"B"}},
				},
				{
					Type:     Delete,
					Original: Chunk[string]{Position: 5, Lines: []string{"B"}},
					Revised:  Chunk[string]{Position: 4},
				},
				{
					Type:     Insert,
					Original: Chunk[string]{Position: 7},
					Revised:  Chunk[string]{Position: 5, Lines: []string{"C"}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Diff(tt.x, tt.y)
			if err != nil {
				t.Fatalf("Diff(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, p.Deltas(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Diff result is different [-want, +got]:\n%s", diff)
			}
		})
	}
}

func TestDiffFunc(t *testing.T) {
	x := []string{"Foo", "Bar"}
	y := []string{"foo", "baz"}
	p, err := DiffFunc(x, y, strings.EqualFold)
	if err != nil {
		t.Fatalf("DiffFunc(...) failed: %v", err)
	}
	want := []Delta[string]{
		{
			Type:     Change,
			Original: Chunk[string]{Position: 1, Lines: []string{"Bar"}},
			Revised:  Chunk[string]{Position: 1, Lines: []string{"baz"}},
		},
	}
	if diff := cmp.Diff(want, p.Deltas(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Diff result is different [-want, +got]:\n%s", diff)
	}
}

// applyTo replaces every original chunk range in x with the corresponding revised chunk.
func applyTo(p *Patch[string], x []string) []string {
	var out []string
	s := 0
	for _, d := range p.Deltas() {
		out = append(out, x[s:d.Original.Position]...)
		out = append(out, d.Revised.Lines...)
		s = d.Original.Position + d.Original.Size()
	}
	return append(out, x[s:]...)
}

// cost is the total number of insertions and deletions described by p.
func cost(p *Patch[string]) int {
	d := 0
	for _, delta := range p.Deltas() {
		d += delta.Original.Size() + delta.Revised.Size()
	}
	return d
}

// lcs computes the length of the longest common subsequence of x and y with the quadratic DP,
// independently of the diff implementation under test.
func lcs(x, y []string) int {
	prev := make([]int, len(y)+1)
	cur := make([]int, len(y)+1)
	for i := 1; i <= len(x); i++ {
		for j := 1; j <= len(y); j++ {
			if x[i-1] == y[j-1] {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = max(prev[j], cur[j-1])
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(y)]
}

func TestDiffProperties(t *testing.T) {
	for i := range 50 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		t.Run(fmt.Sprintf("seed=%x", seed[:4]), func(t *testing.T) {
			rng := rand.New(rand.NewChaCha8(seed))

			randomInput := func() []string {
				lines := make([]string, rng.IntN(40))
				for i := range lines {
					lines[i] = string(rune('a' + rng.IntN(4)))
				}
				return lines
			}
			x, y := randomInput(), randomInput()

			p, err := Diff(x, y)
			if err != nil {
				t.Fatalf("Diff(...) failed: %v", err)
			}

			// Applying the patch to x must yield y.
			if diff := cmp.Diff(y, applyTo(p, x), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("applying the patch doesn't produce y [-want, +got]:\n%s", diff)
			}

			// The edit cost must match the shortest edit distance.
			if got, want := cost(p), len(x)+len(y)-2*lcs(x, y); got != want {
				t.Errorf("edit cost is %d, want %d", got, want)
			}

			// Deltas must be ordered, non-overlapping, and tagged consistently.
			pos := 0
			for _, d := range p.Deltas() {
				if d.Original.Position < pos {
					t.Errorf("delta at original position %d overlaps the previous delta ending at %d", d.Original.Position, pos)
				}
				pos = d.Original.Position + d.Original.Size()

				var want DeltaType
				switch {
				case d.Original.Size() == 0 && d.Revised.Size() > 0:
					want = Insert
				case d.Original.Size() > 0 && d.Revised.Size() == 0:
					want = Delete
				case d.Original.Size() > 0 && d.Revised.Size() > 0:
					want = Change
				default:
					t.Fatalf("delta with two empty chunks: %v", d)
				}
				if d.Type != want {
					t.Errorf("delta type is %v, want %v for sizes (%d, %d)", d.Type, want, d.Original.Size(), d.Revised.Size())
				}
			}

			// The same inputs must always produce the same patch.
			again, err := Diff(x, y)
			if err != nil {
				t.Fatalf("Diff(...) failed on second run: %v", err)
			}
			if diff := cmp.Diff(p.Deltas(), again.Deltas(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Diff is not deterministic [-first, +second]:\n%s", diff)
			}

			// The minimum cost is symmetric even though the scripts are not inverses.
			q, err := Diff(y, x)
			if err != nil {
				t.Fatalf("Diff(y, x) failed: %v", err)
			}
			if cost(p) != cost(q) {
				t.Errorf("edit cost is not symmetric: %d vs %d", cost(p), cost(q))
			}
		})
	}
}
