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

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/poshlang/posh/parser"
	"github.com/poshlang/posh/reporter"
)

var (
	condExpression string
	condVerbose    bool
)

var condCmd = &cobra.Command{
	Use:   "cond [file]",
	Short: "Parse a [[ ... ]] conditional and print the tree",
	Long: `Parse the body of a [[ ... ]] conditional expression and print the
resulting boolean expression tree.

The input is everything between [[ and ]]; a leading [[ and trailing ]] are
accepted and stripped if present.

Examples:
  posh cond -e '-z foo && bar == baz'
  posh cond -e '[[ x =~ ^a+$ ]]'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCond,
}

func init() {
	rootCmd.AddCommand(condCmd)

	condCmd.Flags().StringVarP(&condExpression, "expression", "e", "", "parse an inline expression instead of a file")
	condCmd.Flags().BoolVarP(&condVerbose, "verbose", "v", false, "print the whole error stack, not just the first record")
}

func runCond(cmd *cobra.Command, args []string) error {
	data, name, err := readInput(condExpression, args)
	if err != nil {
		return err
	}

	body := strings.TrimSpace(string(data))
	body = strings.TrimPrefix(body, "[[")
	if !strings.HasSuffix(body, "]]") {
		body += " ]]"
	}

	session := parser.NewSession()
	src := parser.NewSource(name, []byte(body))
	p := parser.NewBoolParser(parser.NewLexer(session.Registry(), src))

	node := p.Parse()
	if node == nil {
		errs := p.Error()
		for i, e := range errs {
			if i > 0 && !condVerbose {
				break
			}
			if span, ok := e.Span(); ok {
				fmt.Fprintf(os.Stderr, "%s: %s\n", src.Describe(span), e.Message)
			} else {
				fmt.Fprintln(os.Stderr, e.Message)
			}
		}
		return reporter.ErrInvalidSource
	}

	fmt.Println(node)
	return nil
}
