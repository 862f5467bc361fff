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

// Package unified reads and writes multi-file patches in the textual unified diff format.
//
// [Parse] turns a unified diff into a [Diff] document: per-file header metadata plus one
// patch.Patch per file whose deltas correspond to the hunks of the input. [Format] renders a
// document back into text, and [Generate] builds a document from two line slices using the diff
// engine in the root package.
//
// The reader accepts diffs in the canonical "diff --git" form as well as the bare "---"/"+++"
// form without a diff command line.
package unified

import "znkr.io/patch"

// File holds the header metadata and the patch for a single file in a unified diff.
//
// All header fields are optional; a field that was not present in the input is left empty.
type File struct {
	DiffCommand   string // the raw "diff ..." line
	Index         string // the text after "index "
	FromFile      string
	FromTimestamp string
	ToFile        string
	ToTimestamp   string
	Patch         *patch.Patch[string]
}

// Diff is a multi-file unified diff document.
type Diff struct {
	Header string // free text before the first file header line
	Files  []*File
	Tail   string // free text after the last chunk
}
