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

package main

import (
	"github.com/spf13/cobra"

	"github.com/auyeungtsun/heavy-light-decomposition/internal/log"
	"github.com/auyeungtsun/heavy-light-decomposition/pkg/treefile"
)

var withLCA bool

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query [file] [u] [v]",
		Short: "Sum the node values on the path between two nodes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := parseNode(args[1])
			if err != nil {
				return err
			}
			v, err := parseNode(args[2])
			if err != nil {
				return err
			}

			definition, err := treefile.Load(args[0])
			if err != nil {
				return err
			}
			log.Logger.Debugf("loaded %s: %d nodes, root %d", args[0], definition.Nodes, definition.Root)

			tree, err := definition.Build()
			if err != nil {
				return err
			}

			sum, err := tree.QueryPath(u, v)
			if err != nil {
				return err
			}
			cmd.Printf("%d\n", sum)

			if withLCA {
				l, err := tree.GetLCA(u, v)
				if err != nil {
					return err
				}
				cmd.Printf("LCA: %d\n", l)
			}

			return nil
		},
	}
}

func init() {
	cmd := newQueryCmd()
	cmd.Flags().BoolVar(&withLCA, "lca", false, "Also print the lowest common ancestor")
	rootCmd.AddCommand(cmd)
}
