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

package segtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/auyeungtsun/heavy-light-decomposition/pkg/segtree"
)

func TestSegmentTree(t *testing.T) {
	t.Run("sum query test", func(t *testing.T) {
		tree := segtree.NewSum(6)
		assert.NoError(t, tree.Build([]int64{5, 3, 7, 1, 4, 2}))
		assert.Equal(t, 6, tree.Len())

		sum, err := tree.Query(0, 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(22), sum)

		sum, err = tree.Query(1, 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(11), sum)

		sum, err = tree.Query(4, 4)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), sum)
	})

	t.Run("point update test", func(t *testing.T) {
		tree := segtree.NewSum(4)
		assert.NoError(t, tree.Build([]int64{10, 20, 30, 40}))

		assert.NoError(t, tree.Update(1, 200))

		sum, err := tree.Query(0, 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(280), sum)

		sum, err = tree.Query(1, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(200), sum)

		sum, err = tree.Query(2, 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(70), sum)
	})

	t.Run("inverted range returns identity test", func(t *testing.T) {
		tree := segtree.NewSum(3)
		assert.NoError(t, tree.Build([]int64{1, 2, 3}))

		sum, err := tree.Query(2, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), sum)
	})

	t.Run("non-sum combine test", func(t *testing.T) {
		maxTree := segtree.NewTree(5, func(a, b int) int {
			if a > b {
				return a
			}
			return b
		}, 0)
		assert.NoError(t, maxTree.Build([]int{3, 9, 2, 8, 5}))

		v, err := maxTree.Query(0, 4)
		assert.NoError(t, err)
		assert.Equal(t, 9, v)

		v, err = maxTree.Query(2, 4)
		assert.NoError(t, err)
		assert.Equal(t, 8, v)

		assert.NoError(t, maxTree.Update(2, 100))
		v, err = maxTree.Query(0, 4)
		assert.NoError(t, err)
		assert.Equal(t, 100, v)
	})

	t.Run("build validation test", func(t *testing.T) {
		tree := segtree.NewSum(3)
		assert.ErrorIs(t, tree.Build(nil), segtree.ErrEmptyValues)
		assert.ErrorIs(t, tree.Build([]int64{1, 2}), segtree.ErrSizeMismatch)

		assert.NoError(t, tree.Build([]int64{1, 2, 3}))
		assert.ErrorIs(t, tree.Build([]int64{1, 2, 3}), segtree.ErrAlreadyBuilt)
	})

	t.Run("use before build test", func(t *testing.T) {
		tree := segtree.NewSum(3)

		_, err := tree.Query(0, 2)
		assert.ErrorIs(t, err, segtree.ErrNotBuilt)
		assert.ErrorIs(t, tree.Update(0, 1), segtree.ErrNotBuilt)
	})

	t.Run("out of range test", func(t *testing.T) {
		tree := segtree.NewSum(3)
		assert.NoError(t, tree.Build([]int64{1, 2, 3}))

		_, err := tree.Query(-1, 2)
		assert.ErrorIs(t, err, segtree.ErrIndexOutOfRange)
		_, err = tree.Query(0, 3)
		assert.ErrorIs(t, err, segtree.ErrIndexOutOfRange)

		assert.ErrorIs(t, tree.Update(-1, 1), segtree.ErrIndexOutOfRange)
		assert.ErrorIs(t, tree.Update(3, 1), segtree.ErrIndexOutOfRange)
	})

	t.Run("single position test", func(t *testing.T) {
		tree := segtree.NewSum(1)
		assert.NoError(t, tree.Build([]int64{42}))

		sum, err := tree.Query(0, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), sum)

		assert.NoError(t, tree.Update(0, 7))
		sum, err = tree.Query(0, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), sum)
	})
}

func BenchmarkSegmentTree(b *testing.B) {
	const size = 1 << 16

	values := make([]int64, size)
	for i := range values {
		values[i] = int64(i)
	}

	b.Run("update", func(b *testing.B) {
		tree := segtree.NewSum(size)
		if err := tree.Build(values); err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if err := tree.Update(i%size, int64(i)); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("query", func(b *testing.B) {
		tree := segtree.NewSum(size)
		if err := tree.Build(values); err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := tree.Query(i%(size/2), size/2+i%(size/2)); err != nil {
				b.Fatal(err)
			}
		}
	})
}
