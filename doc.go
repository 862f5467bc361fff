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

// Package patch provides a structured representation of the difference between two slices and
// functions to compute it.
//
// The difference is represented as a [Patch]: an ordered sequence of [Delta] values, each pairing
// a chunk of the original slice with the chunk of the revised slice that replaces it. [Diff] and
// [DiffFunc] compute a minimal patch using Myers' shortest edit script algorithm; the patch is
// minimal in the sense that no edit script with fewer insertions and deletions exists.
//
// Complexity is O(ND) time and space, where N = len(x) + len(y) and D is the number of
// differences between x and y.
//
// Note: To read and write patches in the textual unified diff format, please see
// [znkr.io/patch/unified].
//
// [znkr.io/patch/unified]: https://pkg.go.dev/znkr.io/patch/unified
package patch
