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

package token

// OperandType is the operand domain a boolean operator expects. It is purely
// classificatory; the evaluator consults it.
type OperandType uint8

const (
	OperandUndefined OperandType = iota
	OperandPath
	OperandInt
	OperandStr
	OperandOther
)

var operandNames = [...]string{
	OperandUndefined: "Undefined",
	OperandPath:      "Path",
	OperandInt:       "Int",
	OperandStr:       "Str",
	OperandOther:     "Other",
}

func (o OperandType) String() string {
	if int(o) >= len(operandNames) {
		return "OperandType(?)"
	}
	return operandNames[o]
}

// RedirType classifies a redirection operator: filename redirect, descriptor
// redirect, or here-document.
type RedirType uint8

const (
	RedirTypePath RedirType = iota
	RedirTypeDesc
	RedirTypeStr
)

var redirNames = [...]string{
	RedirTypePath: "Path",
	RedirTypeDesc: "Desc",
	RedirTypeStr:  "Str",
}

func (r RedirType) String() string {
	if int(r) >= len(redirNames) {
		return "RedirType(?)"
	}
	return redirNames[r]
}

type redirInfo struct {
	typ RedirType
	fd  int
}

// redirTable records, for every redirection Id, its type and the file
// descriptor it applies to when the program does not name one. cat <input.txt
// means cat 0<input.txt; echo >&2 means echo 1>&2.
var redirTable = map[Id]redirInfo{
	RedirLess:      {RedirTypePath, 0},
	RedirGreat:     {RedirTypePath, 1},
	RedirDGreat:    {RedirTypePath, 1},
	RedirClobber:   {RedirTypePath, 1},
	RedirLessGreat: {RedirTypePath, 1},

	RedirGreatAnd: {RedirTypeDesc, 1},
	RedirLessAnd:  {RedirTypeDesc, 0},

	RedirDLess:     {RedirTypeStr, 0},
	RedirDLessDash: {RedirTypeStr, 0},
	RedirTLess:     {RedirTypeStr, 0},
}

// RedirTypeOf reports the redirection type for id. ok is false when id is not
// a redirection operator.
func RedirTypeOf(id Id) (RedirType, bool) {
	info, ok := redirTable[id]
	return info.typ, ok
}

// DefaultFD reports the default file descriptor for the redirection id. ok is
// false when id is not a redirection operator.
func DefaultFD(id Id) (int, bool) {
	info, ok := redirTable[id]
	return info.fd, ok
}

// OperandTypeOf reports the operand domain of a boolean operator. The logical
// connectives (&&, ||, !) and every other non-boolean Id map to
// OperandUndefined, except RedirLess and RedirGreat, which map to OperandStr
// for their string-comparison use inside [[.
func OperandTypeOf(id Id) OperandType {
	if int(id) >= len(operandTypes) {
		return OperandUndefined
	}
	return operandTypes[id]
}
