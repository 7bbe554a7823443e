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

// Package treefile reads tree definitions from YAML documents and turns
// them into built hld trees. A definition lists the node count, the root,
// one initial value per node and the undirected edges:
//
//	nodes: 4
//	root: 0
//	values: [10, 20, 30, 40]
//	edges:
//	  - [0, 1]
//	  - [1, 2]
//	  - [2, 3]
package treefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/auyeungtsun/heavy-light-decomposition/internal/validation"
	"github.com/auyeungtsun/heavy-light-decomposition/pkg/hld"
)

var (
	// ErrValueCountMismatch is returned when the number of values differs
	// from the node count.
	ErrValueCountMismatch = errors.New("value count does not match node count")

	// ErrEdgeCountMismatch is returned when the number of edges is not
	// node count minus one.
	ErrEdgeCountMismatch = errors.New("edge count must be node count minus one")

	// ErrIndexOutOfRange is returned when the root or an edge endpoint is
	// not a valid node index.
	ErrIndexOutOfRange = errors.New("node index out of range")
)

// Definition is a decoded tree definition file.
type Definition struct {
	Nodes  int     `yaml:"nodes" validate:"required,min=1"`
	Root   int     `yaml:"root" validate:"min=0"`
	Values []int64 `yaml:"values" validate:"required,min=1"`
	Edges  [][]int `yaml:"edges" validate:"omitempty,dive,len=2,dive,min=0"`
}

// Validate checks the definition beyond its field tags: the value list
// covers every node, the root and all edge endpoints are in range, and
// the edge count is exactly nodes-1.
func (d *Definition) Validate() error {
	if err := validation.ValidateStruct(d); err != nil {
		return err
	}

	if len(d.Values) != d.Nodes {
		return fmt.Errorf("%d values for %d nodes: %w", len(d.Values), d.Nodes, ErrValueCountMismatch)
	}
	if d.Root >= d.Nodes {
		return fmt.Errorf("root %d, node count %d: %w", d.Root, d.Nodes, ErrIndexOutOfRange)
	}
	if len(d.Edges) != d.Nodes-1 {
		return fmt.Errorf("%d edges for %d nodes: %w", len(d.Edges), d.Nodes, ErrEdgeCountMismatch)
	}
	for _, e := range d.Edges {
		for _, endpoint := range e {
			if endpoint >= d.Nodes {
				return fmt.Errorf("edge endpoint %d, node count %d: %w", endpoint, d.Nodes, ErrIndexOutOfRange)
			}
		}
	}

	return nil
}

// Build constructs a sum tree from the definition and builds its
// decomposition rooted at the definition's root.
func (d *Definition) Build() (*hld.Tree[int64], error) {
	tree, err := hld.NewSum(d.Nodes, d.Values)
	if err != nil {
		return nil, err
	}
	for _, e := range d.Edges {
		if err := tree.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	if err := tree.Build(d.Root); err != nil {
		return nil, err
	}
	return tree, nil
}

// Parse decodes and validates a tree definition document.
func Parse(data []byte) (*Definition, error) {
	definition := &Definition{}
	if err := yaml.Unmarshal(data, definition); err != nil {
		return nil, fmt.Errorf("unmarshal tree definition: %w", err)
	}
	if err := definition.Validate(); err != nil {
		return nil, err
	}
	return definition, nil
}

// Load reads, decodes and validates the tree definition file at the given
// path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}
