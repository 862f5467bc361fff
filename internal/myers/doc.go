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

// Package myers contains the greedy variant of Myers' algorithm.
//
// The implementation in this package is the basic O(ND) algorithm from section 3 of the paper,
// extended to record the path it took: instead of storing bare endpoint coordinates in the
// v-array, it stores [Node] values that chain backwards through the edit graph. The terminal node
// returned by [Path] is the head of a reverse-linked list describing a complete shortest edit
// script; translating that list into a patch happens at a higher level.
//
// # Myers Algorithm
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x to
// y. Every vertex (i,j) corresponds to a state where i elements of x and j elements of y have
// been consumed. A step to the right, (i,j) to (i+1,j), deletes x[i]; a step down, (i,j) to
// (i,j+1), inserts y[j]; and when x[i] and y[j] are equal under the caller's predicate, a free
// diagonal step to (i+1,j+1) matches both. A path from (0,0) to (len(x), len(y)) is an edit
// script, and a path with the fewest non-diagonal edges is a shortest one.
//
// Diagonals are numbered k = i - j. Let a D-path be a path with exactly D non-diagonal edges. A
// D-path must end on a diagonal k in {-D, -D+2, ..., D}, and a furthest reaching D-path on
// diagonal k extends a furthest reaching (D-1)-path on diagonal k-1 by a horizontal edge or on
// diagonal k+1 by a vertical edge, followed in either case by the longest possible run of
// diagonal edges (a snake). This yields the greedy search implemented here: for D = 0, 1, 2, ...
// compute the furthest reaching D-path on every eligible diagonal until one of them reaches the
// bottom right corner.
//
// The v-array holds one entry per diagonal. Since only every second diagonal is touched for a
// given D, the entries for D-1 remain readable while the entries for D are being written.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers
