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

package parser

import "fmt"

// RawCommand is the opaque command-AST handle this front-end produces for
// $(...) and backtick substitutions: the verbatim body text plus its span
// start. A command parser layered on top replaces it with a real tree.
type RawCommand struct {
	Text   string
	Offset int
}

func (r *RawCommand) String() string { return fmt.Sprintf("$(%s)", r.Text) }

// RawArith is the opaque arithmetic-AST handle for $((...)).
type RawArith struct {
	Text   string
	Offset int
}

func (r *RawArith) String() string { return fmt.Sprintf("$((%s))", r.Text) }
