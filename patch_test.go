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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewDelta(t *testing.T) {
	tests := []struct {
		name              string
		original, revised []string
		want              DeltaType
	}{
		{name: "insert", original: nil, revised: []string{"a"}, want: Insert},
		{name: "delete", original: []string{"a"}, revised: nil, want: Delete},
		{name: "change", original: []string{"a"}, revised: []string{"b"}, want: Change},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDelta(
				Chunk[string]{Position: 0, Lines: tt.original},
				Chunk[string]{Position: 0, Lines: tt.revised},
			)
			if d.Type != tt.want {
				t.Errorf("NewDelta(...).Type = %v, want %v", d.Type, tt.want)
			}
		})
	}
}

func TestPatchAddDelta(t *testing.T) {
	var p Patch[string]
	deltas := []Delta[string]{
		NewDelta(
			Chunk[string]{Position: 0, Lines: []string{"a"}},
			Chunk[string]{Position: 0},
		),
		NewDelta(
			Chunk[string]{Position: 3},
			Chunk[string]{Position: 2, Lines: []string{"x"}},
		),
	}
	for _, d := range deltas {
		p.AddDelta(d)
	}
	if diff := cmp.Diff(deltas, p.Deltas(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Deltas() differs from insertion order [-want, +got]:\n%s", diff)
	}
}

func TestDeltaTypeString(t *testing.T) {
	tests := []struct {
		typ  DeltaType
		want string
	}{
		{Insert, "Insert"},
		{Delete, "Delete"},
		{Change, "Change"},
		{DeltaType(42), "DeltaType(42)"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("DeltaType(%d).String() = %q, want %q", int(tt.typ), got, tt.want)
		}
	}
}
