/*
 * Copyright 2024 The hld Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package hld provides heavy-light decomposition of a rooted tree. It
// splits the tree into heavy paths so that the nodes of each path occupy
// a contiguous range of a flattened array, which lets any node-to-node
// path be answered as O(log N) range queries against a segment tree.
package hld

import (
	"errors"
	"fmt"

	"github.com/auyeungtsun/heavy-light-decomposition/pkg/segtree"
)

var (
	// ErrNodeOutOfRange is returned when the given node index is out of range.
	ErrNodeOutOfRange = errors.New("node index out of range")

	// ErrNotBuilt is returned when a query or update precedes Build.
	ErrNotBuilt = errors.New("tree not built")

	// ErrAlreadyBuilt is returned when Build is called more than once or
	// an edge is added after Build.
	ErrAlreadyBuilt = errors.New("tree already built")

	// ErrNotATree is returned by Build when the edges contain a cycle or
	// do not connect every node to the root.
	ErrNotATree = errors.New("edges do not form a tree")

	// ErrValueCountMismatch is returned by New when the number of initial
	// values differs from the node count.
	ErrValueCountMismatch = errors.New("value count does not match node count")
)

// NodeInfo is the bookkeeping computed for a single node during Build.
type NodeInfo struct {
	// Parent is the immediate ancestor in the tree rooted at the Build
	// root, -1 for the root itself.
	Parent int

	// Depth is the distance from the root.
	Depth int

	// SubtreeSize is the number of nodes in the subtree rooted here,
	// including the node itself.
	SubtreeSize int

	// HeavyChild is the child rooting the largest subtree, -1 for a leaf.
	// Ties keep the child encountered first in adjacency order.
	HeavyChild int

	// Head is the topmost node of the heavy path containing this node.
	Head int

	// Pos is the node's index in the flattened array. Nodes on one heavy
	// path occupy contiguous increasing positions from the head down.
	Pos int
}

// Tree decomposes a static rooted tree into heavy paths and delegates
// value storage to a segment tree indexed by flattened position.
//
// The zero value is not usable; create instances with New. A Tree is
// built once: edges are added first, Build freezes the topology, and
// updates and path queries follow in any order. A Tree performs no
// internal locking; concurrent use requires external synchronization.
type Tree[V any] struct {
	n      int
	adj    [][]int
	values []V

	parent      []int
	depth       []int
	subtreeSize []int
	heavyChild  []int
	head        []int
	pos         []int

	combine   segtree.CombineFunc[V]
	identity  V
	positions *segtree.Tree[V]
	built     bool
}

// New creates a new instance of Tree with n nodes indexed 0..n-1 holding
// the given initial values. The combine function must be associative and
// commutative; path segments are combined in traversal order.
func New[V any](n int, initial []V, combine segtree.CombineFunc[V], identity V) (*Tree[V], error) {
	if n < 1 {
		return nil, fmt.Errorf("node count %d: %w", n, ErrNodeOutOfRange)
	}
	if len(initial) != n {
		return nil, fmt.Errorf("%d values for %d nodes: %w", len(initial), n, ErrValueCountMismatch)
	}

	values := make([]V, n)
	copy(values, initial)

	return &Tree[V]{
		n:           n,
		adj:         make([][]int, n),
		values:      values,
		parent:      make([]int, n),
		depth:       make([]int, n),
		subtreeSize: make([]int, n),
		heavyChild:  make([]int, n),
		head:        make([]int, n),
		pos:         make([]int, n),
		combine:     combine,
		identity:    identity,
		positions:   segtree.NewTree(n, combine, identity),
	}, nil
}

// NewSum creates a new instance of Tree aggregating int64 node values by
// addition.
func NewSum(n int, initial []int64) (*Tree[int64], error) {
	return New(n, initial, func(a, b int64) int64 { return a + b }, 0)
}

// Len returns the number of nodes.
func (t *Tree[V]) Len() int {
	return t.n
}

// AddEdge records an undirected edge between two nodes. All edges must be
// added before Build.
func (t *Tree[V]) AddEdge(u, v int) error {
	if t.built {
		return ErrAlreadyBuilt
	}
	if err := t.checkNode(u); err != nil {
		return err
	}
	if err := t.checkNode(v); err != nil {
		return err
	}

	t.adj[u] = append(t.adj[u], v)
	t.adj[v] = append(t.adj[v], u)
	return nil
}

// Build computes the decomposition rooted at the given node and freezes
// the topology. The first pass computes parent, depth, subtree size and
// heavy child per node; the second assigns chain heads and contiguous
// flattened positions along each heavy path. Both passes run on explicit
// stacks so deep trees cannot exhaust the call stack. Build rejects edge
// sets that contain a cycle or leave nodes unreachable from the root.
func (t *Tree[V]) Build(root int) error {
	if t.built {
		return ErrAlreadyBuilt
	}
	if err := t.checkNode(root); err != nil {
		return err
	}

	if err := t.computeSizeDepthParent(root); err != nil {
		return err
	}
	t.assignChains(root)

	mapped := make([]V, t.n)
	for u, value := range t.values {
		mapped[t.pos[u]] = value
	}
	if err := t.positions.Build(mapped); err != nil {
		return err
	}

	t.built = true
	return nil
}

// UpdateNodeValue replaces the value of a single node.
func (t *Tree[V]) UpdateNodeValue(u int, newValue V) error {
	if !t.built {
		return ErrNotBuilt
	}
	if err := t.checkNode(u); err != nil {
		return err
	}

	t.values[u] = newValue
	return t.positions.Update(t.pos[u], newValue)
}

// QueryPath returns the combined aggregate of the values of every node on
// the simple path between u and v, both endpoints included. The path is
// covered by jumping chain by chain: while the endpoints lie on different
// heavy paths, the one whose chain head is deeper contributes the range
// from its chain head to itself and moves to the parent of that head.
func (t *Tree[V]) QueryPath(u, v int) (V, error) {
	if !t.built {
		return t.identity, ErrNotBuilt
	}
	if err := t.checkNode(u); err != nil {
		return t.identity, err
	}
	if err := t.checkNode(v); err != nil {
		return t.identity, err
	}

	result := t.identity
	for t.head[u] != t.head[v] {
		if t.depth[t.head[u]] < t.depth[t.head[v]] {
			u, v = v, u
		}
		part, err := t.positions.Query(t.pos[t.head[u]], t.pos[u])
		if err != nil {
			return t.identity, err
		}
		result = t.combine(result, part)
		u = t.parent[t.head[u]]
	}

	if t.depth[u] > t.depth[v] {
		u, v = v, u
	}
	part, err := t.positions.Query(t.pos[u], t.pos[v])
	if err != nil {
		return t.identity, err
	}
	return t.combine(result, part), nil
}

// GetLCA returns the lowest common ancestor of u and v: the same chain
// jumps as QueryPath without accumulating aggregates, then whichever
// endpoint is shallower within the shared chain.
func (t *Tree[V]) GetLCA(u, v int) (int, error) {
	if !t.built {
		return 0, ErrNotBuilt
	}
	if err := t.checkNode(u); err != nil {
		return 0, err
	}
	if err := t.checkNode(v); err != nil {
		return 0, err
	}

	for t.head[u] != t.head[v] {
		if t.depth[t.head[u]] < t.depth[t.head[v]] {
			u, v = v, u
		}
		u = t.parent[t.head[u]]
	}

	if t.depth[u] < t.depth[v] {
		return u, nil
	}
	return v, nil
}

// Value returns the current value of a single node.
func (t *Tree[V]) Value(u int) (V, error) {
	if err := t.checkNode(u); err != nil {
		return t.identity, err
	}
	return t.values[u], nil
}

// Node returns the decomposition bookkeeping of a single node.
func (t *Tree[V]) Node(u int) (NodeInfo, error) {
	if !t.built {
		return NodeInfo{}, ErrNotBuilt
	}
	if err := t.checkNode(u); err != nil {
		return NodeInfo{}, err
	}

	return NodeInfo{
		Parent:      t.parent[u],
		Depth:       t.depth[u],
		SubtreeSize: t.subtreeSize[u],
		HeavyChild:  t.heavyChild[u],
		Head:        t.head[u],
		Pos:         t.pos[u],
	}, nil
}

func (t *Tree[V]) checkNode(u int) error {
	if u < 0 || u >= t.n {
		return fmt.Errorf("node %d, node count %d: %w", u, t.n, ErrNodeOutOfRange)
	}
	return nil
}

// computeSizeDepthParent is the first pass. Nodes are visited root first
// on an explicit stack, then subtree sizes and heavy children accumulate
// in reverse visit order so every child is finished before its parent.
func (t *Tree[V]) computeSizeDepthParent(root int) error {
	visited := make([]bool, t.n)
	order := make([]int, 0, t.n)

	stack := append(make([]int, 0, t.n), root)
	visited[root] = true
	t.parent[root] = -1
	t.depth[root] = 0

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)

		for _, v := range t.adj[u] {
			if v == t.parent[u] {
				continue
			}
			if visited[v] {
				return fmt.Errorf("cycle through node %d: %w", v, ErrNotATree)
			}
			visited[v] = true
			t.parent[v] = u
			t.depth[v] = t.depth[u] + 1
			stack = append(stack, v)
		}
	}

	if len(order) != t.n {
		return fmt.Errorf("reached %d of %d nodes from root: %w", len(order), t.n, ErrNotATree)
	}

	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		t.subtreeSize[u] = 1
		t.heavyChild[u] = -1

		maxChildSize := 0
		for _, v := range t.adj[u] {
			if v == t.parent[u] {
				continue
			}
			t.subtreeSize[u] += t.subtreeSize[v]
			if t.subtreeSize[v] > maxChildSize {
				maxChildSize = t.subtreeSize[v]
				t.heavyChild[u] = v
			}
		}
	}

	return nil
}

// assignChains is the second pass. Each stacked entry starts a new chain;
// walking the heavy-child links from it assigns consecutive positions, so
// pos[heavyChild[u]] == pos[u]+1 holds along every heavy path. Light
// children found on the walk are stacked as heads of their own chains.
func (t *Tree[V]) assignChains(root int) {
	type chain struct {
		node, head int
	}

	curPos := 0
	stack := append(make([]chain, 0, t.n), chain{node: root, head: root})

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for u := c.node; u != -1; u = t.heavyChild[u] {
			t.head[u] = c.head
			t.pos[u] = curPos
			curPos++

			for _, v := range t.adj[u] {
				if v == t.parent[u] || v == t.heavyChild[u] {
					continue
				}
				stack = append(stack, chain{node: v, head: v})
			}
		}
	}
}
