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
	"errors"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/auyeungtsun/heavy-light-decomposition/internal/version"
)

var output string

type versionInfo struct {
	Version   string `yaml:"version"`
	GoVersion string `yaml:"goVersion"`
	BuildDate string `yaml:"buildDate,omitempty"`
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of hld",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{
				Version:   version.Version,
				GoVersion: runtime.Version(),
				BuildDate: version.BuildDate,
			}

			switch output {
			case "":
				cmd.Printf("hld: %s\n", info.Version)
				cmd.Printf("Go: %s\n", info.GoVersion)
				if info.BuildDate != "" {
					cmd.Printf("Build Date: %s\n", info.BuildDate)
				}
			case "yaml":
				marshalled, err := yaml.Marshal(&info)
				if err != nil {
					return errors.New("failed to marshal YAML")
				}
				cmd.Print(string(marshalled))
			default:
				return errors.New(`--output must be 'yaml'`)
			}

			return nil
		},
	}
}

func init() {
	cmd := newVersionCmd()
	cmd.Flags().StringVarP(
		&output,
		"output",
		"o",
		"",
		"One of 'yaml'",
	)
	rootCmd.AddCommand(cmd)
}
