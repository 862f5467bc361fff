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

package myers

import "errors"

// ErrDifferentiationFailed is returned when the search exhausts all edit costs without reaching
// the bottom right corner of the edit graph. This cannot happen for finite inputs, it indicates
// a bug in the search itself.
var ErrDifferentiationFailed = errors.New("could not find a diff path")

// Node is one step on a path through the edit graph. Nodes chain backwards through Prev; walking
// the chain from the terminal node recovers the whole path.
//
// A node has one of two shapes: a diff node is the endpoint of a single horizontal or vertical
// edge, a snake node is the endpoint of a maximal run of diagonal edges. Both shapes share the
// same fields, Snake is the only discriminator needed.
//
// The Prev link of a diff node skips over preceding diff nodes to the nearest snake node, so that
// a chain alternates between the two shapes. The synthetic seed node placed before the first
// search iteration has J == -1 and is never linked into a chain: every chain ends in the diff node
// at (0,0), whose Prev is nil, and that node may directly follow another diff node.
type Node struct {
	I, J  int
	Snake bool
	Prev  *Node
}

// bootstrap reports whether n is the synthetic seed node.
func (n *Node) bootstrap() bool {
	return n.I < 0 || n.J < 0
}

// previousSnake returns n if it is a snake node, otherwise the nearest snake node reachable
// through Prev. The seed node yields nil.
func (n *Node) previousSnake() *Node {
	if n == nil || n.bootstrap() {
		return nil
	}
	if !n.Snake && n.Prev != nil {
		return n.Prev.previousSnake()
	}
	return n
}

// Path finds a shortest path from (0,0) to (len(x), len(y)) in the edit graph of x and y and
// returns its terminal node.
func Path[T any](x, y []T, eq func(a, b T) bool) (*Node, error) {
	n, m := len(x), len(y)
	maxd := n + m + 1

	// The v-array stores the endpoint of the furthest reaching d-path in diagonal k at
	// v[middle+k]. One extra element on both sides of the used range avoids special casing the
	// borders.
	size := 1 + 2*maxd
	middle := size / 2
	v := make([]*Node, size)

	// Seeding v[middle+1] with a snake just above the origin makes the d = 0, k = 0 iteration
	// take the k == -d branch and start at (0,0) like every other diagonal.
	v[middle+1] = &Node{I: 0, J: -1, Snake: true}

	for d := 0; d < maxd; d++ {
		for k := -d; k <= d; k += 2 {
			kmiddle := middle + k
			kminus, kplus := kmiddle-1, kmiddle+1

			// A furthest reaching d-path in diagonal k extends a furthest reaching (d-1)-path
			// in diagonal k-1 by a deletion or in diagonal k+1 by an insertion, whichever
			// reaches further. On equal reach the insertion from k+1 wins.
			var i int
			var prev *Node
			if k == -d || (k != d && v[kminus].I < v[kplus].I) {
				i = v[kplus].I
				prev = v[kplus]
			} else {
				i = v[kminus].I + 1
				prev = v[kminus]
			}
			// v[kminus] is recomputed on the next d before it is read again; clearing it here
			// releases path prefixes that are no longer reachable.
			v[kminus] = nil

			j := i - k
			node := &Node{I: i, J: j, Prev: prev.previousSnake()}

			// Follow the diagonal as far as possible.
			for i < n && j < m && eq(x[i], y[j]) {
				i++
				j++
			}
			if i > node.I {
				node = &Node{I: i, J: j, Snake: true, Prev: node}
			}
			v[kmiddle] = node

			if i >= n && j >= m {
				return node, nil
			}
		}
		v[middle+d-1] = nil
	}
	return nil, ErrDifferentiationFailed
}
