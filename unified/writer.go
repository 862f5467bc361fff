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

package unified

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"znkr.io/patch"
	"znkr.io/patch/internal/config"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

// Format renders doc in unified diff form.
//
// Each delta of a file's patch becomes one hunk. The hunk body interleaves context, deletion,
// and insertion lines; since a delta only records the original and revised line runs, the
// interleaving is recovered by diffing the two runs.
func Format(w io.Writer, doc *Diff) error {
	var b bytes.Buffer
	b.WriteString(doc.Header)
	for _, f := range doc.Files {
		if f.DiffCommand != "" {
			fmt.Fprintf(&b, "%s\n", f.DiffCommand)
		}
		if f.Index != "" {
			fmt.Fprintf(&b, "index %s\n", f.Index)
		}
		writeFileLine(&b, "---", f.FromFile, f.FromTimestamp)
		writeFileLine(&b, "+++", f.ToFile, f.ToTimestamp)
		for _, d := range f.Patch.Deltas() {
			if err := writeHunk(&b, d); err != nil {
				return err
			}
		}
	}
	if doc.Tail != "" {
		// The separator keeps the tail recognizable as tail when the output is parsed again.
		b.WriteString("--\n")
		b.WriteString(doc.Tail)
	}
	_, err := w.Write(b.Bytes())
	return err
}

func writeFileLine(b *bytes.Buffer, prefix, name, timestamp string) {
	if timestamp != "" {
		fmt.Fprintf(b, "%s %s\t%s\n", prefix, name, timestamp)
	} else {
		fmt.Fprintf(b, "%s %s\n", prefix, name)
	}
}

func writeHunk(b *bytes.Buffer, d patch.Delta[string]) error {
	orig, rev := d.Original, d.Revised
	fmt.Fprintf(b, "@@ -%d,%d +%d,%d @@\n", orig.Position+1, orig.Size(), rev.Position+1, rev.Size())

	inner, err := patch.Diff(orig.Lines, rev.Lines)
	if err != nil {
		return err
	}
	s := 0
	for _, id := range inner.Deltas() {
		for ; s < id.Original.Position; s++ {
			fmt.Fprintf(b, "%s%s\n", prefixMatch, orig.Lines[s])
		}
		for _, line := range id.Original.Lines {
			fmt.Fprintf(b, "%s%s\n", prefixDelete, line)
		}
		for _, line := range id.Revised.Lines {
			fmt.Fprintf(b, "%s%s\n", prefixInsert, line)
		}
		s = id.Original.Position + id.Original.Size()
	}
	for ; s < len(orig.Lines); s++ {
		fmt.Fprintf(b, "%s%s\n", prefixMatch, orig.Lines[s])
	}
	return nil
}

// Generate compares the lines in x and y and returns a single-file document describing the
// changes necessary to convert from one to the other. fromFile and toFile only label the
// document's header lines.
//
// Hunks include a number of matching lines before and after each run of edits; the number can
// be configured using [patch.Context]. Hunks whose context windows overlap are merged. If x and
// y are identical, the document contains one file with an empty patch.
func Generate(fromFile, toFile string, x, y []string, opts ...patch.Option) (*Diff, error) {
	cfg := config.FromOptions(opts, config.Context)

	p, err := patch.Diff(x, y)
	if err != nil {
		return nil, err
	}

	f := &File{FromFile: fromFile, ToFile: toFile, Patch: &patch.Patch[string]{}}
	doc := &Diff{Files: []*File{f}}

	deltas := p.Deltas()
	for i := 0; i < len(deltas); {
		first, last := deltas[i], deltas[i]
		j := i + 1
		for ; j < len(deltas); j++ {
			prevEnd := last.Original.Position + last.Original.Size()
			if deltas[j].Original.Position-prevEnd > 2*cfg.Context {
				break
			}
			last = deltas[j]
		}

		s0 := max(0, first.Original.Position-cfg.Context)
		s1 := min(len(x), last.Original.Position+last.Original.Size()+cfg.Context)
		t0 := first.Revised.Position - (first.Original.Position - s0)
		t1 := last.Revised.Position + last.Revised.Size() + (s1 - (last.Original.Position + last.Original.Size()))

		original := patch.Chunk[string]{Position: s0, Lines: slices.Clone(x[s0:s1])}
		revised := patch.Chunk[string]{Position: t0, Lines: slices.Clone(y[t0:t1])}
		f.Patch.AddDelta(patch.NewDelta(original, revised))
		i = j
	}
	return doc, nil
}
