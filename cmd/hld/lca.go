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

	"github.com/auyeungtsun/heavy-light-decomposition/pkg/treefile"
)

func newLCACmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lca [file] [u] [v]",
		Short: "Print the lowest common ancestor of two nodes",
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

			tree, err := definition.Build()
			if err != nil {
				return err
			}

			l, err := tree.GetLCA(u, v)
			if err != nil {
				return err
			}
			cmd.Printf("%d\n", l)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newLCACmd())
}
