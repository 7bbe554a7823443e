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
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/auyeungtsun/heavy-light-decomposition/internal/log"
	"github.com/auyeungtsun/heavy-light-decomposition/pkg/treefile"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the decomposition bookkeeping of a tree definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			definition, err := treefile.Load(args[0])
			if err != nil {
				return err
			}
			log.Logger.Debugf("loaded %s: %d nodes, root %d", args[0], definition.Nodes, definition.Root)

			tree, err := definition.Build()
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.Style().Options.DrawBorder = false
			tw.Style().Options.SeparateColumns = false
			tw.Style().Options.SeparateFooter = false
			tw.Style().Options.SeparateHeader = false
			tw.Style().Options.SeparateRows = false
			tw.AppendHeader(table.Row{
				"NODE",
				"VALUE",
				"PARENT",
				"DEPTH",
				"SIZE",
				"HEAVY",
				"HEAD",
				"POS",
			})
			for u := 0; u < tree.Len(); u++ {
				info, err := tree.Node(u)
				if err != nil {
					return err
				}
				value, err := tree.Value(u)
				if err != nil {
					return err
				}
				tw.AppendRow(table.Row{
					u,
					value,
					info.Parent,
					info.Depth,
					info.SubtreeSize,
					info.HeavyChild,
					info.Head,
					info.Pos,
				})
			}
			cmd.Printf("%s\n", tw.Render())

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newInspectCmd())
}
