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

package treefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/auyeungtsun/heavy-light-decomposition/internal/validation"
	"github.com/auyeungtsun/heavy-light-decomposition/pkg/treefile"
)

const lineGraph = `
nodes: 4
root: 0
values: [10, 20, 30, 40]
edges:
  - [0, 1]
  - [1, 2]
  - [2, 3]
`

func TestParse(t *testing.T) {
	t.Run("parse and build test", func(t *testing.T) {
		definition, err := treefile.Parse([]byte(lineGraph))
		assert.NoError(t, err)
		assert.Equal(t, 4, definition.Nodes)
		assert.Equal(t, 0, definition.Root)
		assert.Equal(t, []int64{10, 20, 30, 40}, definition.Values)

		tree, err := definition.Build()
		assert.NoError(t, err)

		sum, err := tree.QueryPath(0, 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(100), sum)
	})

	t.Run("single node test", func(t *testing.T) {
		definition, err := treefile.Parse([]byte("nodes: 1\nroot: 0\nvalues: [100]\n"))
		assert.NoError(t, err)

		tree, err := definition.Build()
		assert.NoError(t, err)

		sum, err := tree.QueryPath(0, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(100), sum)
	})

	t.Run("invalid yaml test", func(t *testing.T) {
		_, err := treefile.Parse([]byte("nodes: [not an int"))
		assert.Error(t, err)
	})

	t.Run("tag violation test", func(t *testing.T) {
		_, err := treefile.Parse([]byte("nodes: 0\nroot: 0\nvalues: [1]\n"))
		structError := &validation.StructError{}
		assert.ErrorAs(t, err, &structError)
	})

	t.Run("value count mismatch test", func(t *testing.T) {
		_, err := treefile.Parse([]byte("nodes: 3\nroot: 0\nvalues: [1, 2]\nedges: [[0, 1], [1, 2]]\n"))
		assert.ErrorIs(t, err, treefile.ErrValueCountMismatch)
	})

	t.Run("edge count mismatch test", func(t *testing.T) {
		_, err := treefile.Parse([]byte("nodes: 3\nroot: 0\nvalues: [1, 2, 3]\nedges: [[0, 1]]\n"))
		assert.ErrorIs(t, err, treefile.ErrEdgeCountMismatch)
	})

	t.Run("root out of range test", func(t *testing.T) {
		_, err := treefile.Parse([]byte("nodes: 2\nroot: 2\nvalues: [1, 2]\nedges: [[0, 1]]\n"))
		assert.ErrorIs(t, err, treefile.ErrIndexOutOfRange)
	})

	t.Run("edge endpoint out of range test", func(t *testing.T) {
		_, err := treefile.Parse([]byte("nodes: 2\nroot: 0\nvalues: [1, 2]\nedges: [[0, 5]]\n"))
		assert.ErrorIs(t, err, treefile.ErrIndexOutOfRange)
	})
}

func TestLoad(t *testing.T) {
	t.Run("load file test", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tree.yaml")
		assert.NoError(t, os.WriteFile(path, []byte(lineGraph), 0o600))

		definition, err := treefile.Load(path)
		assert.NoError(t, err)
		assert.Equal(t, 4, definition.Nodes)
	})

	t.Run("missing file test", func(t *testing.T) {
		_, err := treefile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
