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

	"github.com/spf13/cobra"

	"github.com/poshlang/posh/parser"
	"github.com/poshlang/posh/token"
)

var (
	lexExpression string
	lexDBracket   bool
	lexShowSpans  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Print the word stream a shell source produces",
	Long: `Read shell source and print each word the word reader yields.

If no file is provided, reads from stdin.

Examples:
  # Lex a script file
  posh lex script.sh

  # Lex an inline snippet
  posh lex -e 'x=1; echo "$x"'

  # Lex under the [[ ... ]] mode
  posh lex --dbracket -e '-z foo && bar == baz ]]'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexExpression, "expression", "e", "", "lex an inline snippet instead of a file")
	lexCmd.Flags().BoolVar(&lexDBracket, "dbracket", false, "lex under the double-bracket mode")
	lexCmd.Flags().BoolVar(&lexShowSpans, "show-spans", false, "print source positions")
}

func runLex(cmd *cobra.Command, args []string) error {
	data, name, err := readInput(lexExpression, args)
	if err != nil {
		return err
	}

	mode := token.LexModeNormal
	if lexDBracket {
		mode = token.LexModeDBracket
	}

	session := parser.NewSession()
	lx := session.NewLexer(name, data)
	for {
		w := lx.ReadWord(mode)
		if w == nil {
			e := lx.Errors()[0]
			if span, ok := e.Span(); ok {
				return fmt.Errorf("%s: %s", lx.Source().Describe(span), e.Message)
			}
			return fmt.Errorf("%s", e.Message)
		}
		if lexShowSpans {
			if first, last := w.TokenPair(); first != nil {
				if last == nil {
					last = first
				}
				span := token.Span{Offset: first.Span.Offset, Len: last.Span.End() - first.Span.Offset}
				fmt.Printf("%-12s %s\n", lx.Source().Describe(span), w)
			} else {
				fmt.Printf("%-12s %s\n", "-", w)
			}
		} else {
			fmt.Println(w)
		}
		if w.CommandKind() == token.KindEof {
			return nil
		}
	}
}
