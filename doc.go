/*
Package bintree implements a generic binary tree together with a catalog of
structural algorithms operating on it.

Trees

A tree wraps an optional root node and a display label. Trees come in two
flavours, distinguished only by how they are built:

  - ordered trees are built by repeated BST insertion and maintain the
    binary search tree invariant (left < node <= right, duplicates go right),
  - unordered trees are laid out from an input sequence by midpoint
    recursion and carry no ordering guarantee, only a balanced shape.

Some operations (Insert, Contains, LCA, Balance, KeepRange) are only
meaningful for ordered trees. Clients are responsible for not mixing them
with unordered shapes; CheckOrdered may be used to verify the invariant.

Algorithms

	Operation          |  Time
	-------------------+---------------
	Insert, Contains   |  O(height)
	LCA                |  O(height)
	DeepestNode        |  O(n)
	NodesInLevel       |  O(n)
	Flip               |  O(n)
	CountBST           |  O(n)
	PruneK             |  O(n)
	BuildFromInPreOrder|  O(n)
	Balance            |  O(n)
	KeepRange          |  O(height + k)

Insert, Contains, LCA and the traversal iterators use explicit loops and
stacks. The remaining algorithms recurse to a depth bounded by the tree's
height; clients building chains from unbounded input should prefer the
unordered constructor or call Balance periodically.

Trees are not safe for concurrent mutation.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2024, Edwin TJ

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bintree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the bintree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrInvalidArgument is flagged whenever function parameters are invalid,
// e.g. traversal sequences of different lengths.
const ErrInvalidArgument = TreeError("invalid argument")

// ErrInvalidConfig is flagged for a tree configuration which does not validate.
const ErrInvalidConfig = TreeError("invalid tree configuration")

// ErrBrokenInvariant is returned by the invariant checkers.
const ErrBrokenInvariant = TreeError("tree invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
