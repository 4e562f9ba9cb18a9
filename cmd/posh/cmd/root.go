// Copyright 2024-2026 The posh Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd implements the posh CLI: small inspection commands over the
// parser front-end.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set by build flags)
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "posh",
	Short: "Inspect the posh shell parser front-end",
	Long: `posh converts POSIX/bash shell source into an abstract syntax tree.

The subcommands expose the front-end's layers for debugging:

  lex   print the word stream a source produces
  cond  parse the body of a [[ ... ]] conditional and print the tree`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// readInput resolves the common input convention: an inline -e expression, a
// file argument, or stdin.
func readInput(expr string, args []string) ([]byte, string, error) {
	if expr != "" {
		return []byte(expr), "<expr>", nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("error reading file: %w", err)
		}
		return data, args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", fmt.Errorf("error reading stdin: %w", err)
	}
	return data, "<stdin>", nil
}
