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

// Package segtree provides an array-backed segment tree supporting point
// updates and range aggregate queries over a fixed number of positions.
package segtree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyValues is returned when Build is called with no values.
	ErrEmptyValues = errors.New("values must not be empty")

	// ErrSizeMismatch is returned when Build is called with a number of
	// values different from the tree's capacity.
	ErrSizeMismatch = errors.New("value count does not match capacity")

	// ErrAlreadyBuilt is returned when Build is called more than once.
	ErrAlreadyBuilt = errors.New("tree already built")

	// ErrNotBuilt is returned when a query or update precedes Build.
	ErrNotBuilt = errors.New("tree not built")

	// ErrIndexOutOfRange is returned when the given index is out of range.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// CombineFunc merges the aggregates of two adjacent ranges. It must be
// associative and commutative: callers such as path decomposition combine
// partial ranges in arbitrary traversal order.
type CombineFunc[V any] func(a, b V) V

// Tree is a segment tree over a fixed number of positions. Internal nodes
// are kept in a flat array with implicit 2i+1/2i+2 child indexing, so the
// structure owns a single contiguous buffer and no pointers.
type Tree[V any] struct {
	size     int
	nodes    []V
	combine  CombineFunc[V]
	identity V
	built    bool
}

// NewTree creates a new instance of Tree with the given capacity. The
// identity element is returned for empty ranges and must satisfy
// combine(identity, x) == x.
func NewTree[V any](size int, combine CombineFunc[V], identity V) *Tree[V] {
	return &Tree[V]{
		size:     size,
		nodes:    make([]V, 4*size),
		combine:  combine,
		identity: identity,
	}
}

// NewSum creates a new instance of Tree aggregating int64 values by
// addition.
func NewSum(size int) *Tree[int64] {
	return NewTree(size, func(a, b int64) int64 { return a + b }, 0)
}

// Len returns the number of positions this Tree covers.
func (t *Tree[V]) Len() int {
	return t.size
}

// Build initializes the tree from one value per position. It must be
// called exactly once before any query or update.
func (t *Tree[V]) Build(values []V) error {
	if t.built {
		return ErrAlreadyBuilt
	}
	if len(values) == 0 {
		return ErrEmptyValues
	}
	if len(values) != t.size {
		return fmt.Errorf("%d values for %d positions: %w", len(values), t.size, ErrSizeMismatch)
	}

	t.build(values, 0, 0, t.size-1)
	t.built = true
	return nil
}

// Update replaces the value at the given position and recomputes the
// aggregates on the path to the root.
func (t *Tree[V]) Update(index int, value V) error {
	if !t.built {
		return ErrNotBuilt
	}
	if index < 0 || index >= t.size {
		return fmt.Errorf("index %d, size %d: %w", index, t.size, ErrIndexOutOfRange)
	}

	t.update(0, 0, t.size-1, index, value)
	return nil
}

// Query returns the combined aggregate of positions in [left, right]
// inclusive. An inverted range returns the identity element: callers
// decomposing paths may issue degenerate ranges.
func (t *Tree[V]) Query(left, right int) (V, error) {
	if !t.built {
		return t.identity, ErrNotBuilt
	}
	if left > right {
		return t.identity, nil
	}
	if left < 0 || right >= t.size {
		return t.identity, fmt.Errorf("range [%d,%d], size %d: %w", left, right, t.size, ErrIndexOutOfRange)
	}

	return t.query(0, 0, t.size-1, left, right), nil
}

func (t *Tree[V]) build(values []V, node, start, end int) {
	if start == end {
		t.nodes[node] = values[start]
		return
	}

	mid := (start + end) / 2
	t.build(values, 2*node+1, start, mid)
	t.build(values, 2*node+2, mid+1, end)
	t.nodes[node] = t.combine(t.nodes[2*node+1], t.nodes[2*node+2])
}

func (t *Tree[V]) update(node, start, end, index int, value V) {
	if start == end {
		t.nodes[node] = value
		return
	}

	mid := (start + end) / 2
	if index <= mid {
		t.update(2*node+1, start, mid, index, value)
	} else {
		t.update(2*node+2, mid+1, end, index, value)
	}
	t.nodes[node] = t.combine(t.nodes[2*node+1], t.nodes[2*node+2])
}

func (t *Tree[V]) query(node, start, end, left, right int) V {
	if right < start || end < left {
		return t.identity
	}
	if left <= start && end <= right {
		return t.nodes[node]
	}

	mid := (start + end) / 2
	return t.combine(
		t.query(2*node+1, start, mid, left, right),
		t.query(2*node+2, mid+1, end, left, right),
	)
}
