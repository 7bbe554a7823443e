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

// Package main is the entry point of the hld CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/auyeungtsun/heavy-light-decomposition/internal/log"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "hld",
	Short: "Path-aggregate queries over static trees via heavy-light decomposition",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetVerbose()
		}
	},
}

// Run executes CLI.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}

	return 0
}

func parseNode(arg string) (int, error) {
	node, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("node %q must be an integer index", arg)
	}
	return node, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}
