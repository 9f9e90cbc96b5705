// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package isa

import (
	"fmt"
	"strings"
)

// Instruction is a single byte made up from a 4bit opcode (high nibble) and a
// 4bit operand (low nibble).  Every instruction is self-describing, so decoding
// never requires looking at neighbouring bytes.
type Instruction uint8

// Encode an opcode and an operand into an instruction.  The operand is masked to
// 4bits.
func Encode(opcode Opcode, operand uint8) Instruction {
	return Instruction((uint8(opcode)&0b1111)<<4 | (operand & 0b1111))
}

// Opcode returns the high nibble of this instruction.
func (p Instruction) Opcode() Opcode {
	return Opcode(uint8(p) >> 4)
}

// Operand returns the low nibble of this instruction.
func (p Instruction) Operand() uint8 {
	return uint8(p) & 0b1111
}

func (p Instruction) String() string {
	var opcode = p.Opcode()
	//
	if d, ok := DefinitionOf(opcode); ok && d.OperandLength > 0 {
		return fmt.Sprintf("%s %d", opcode, p.Operand())
	} else if p.Operand() != 0 {
		// Operand is not meaningful, but we still show it.
		return fmt.Sprintf("%s (%d)", opcode, p.Operand())
	}
	//
	return opcode.String()
}

// Disassemble a program into one line per address, stopping at the first zero
// byte (since execution cannot proceed beyond it).
func Disassemble(program []byte) []string {
	var lines []string
	//
	for pc, b := range program {
		if b == 0 {
			break
		}
		//
		lines = append(lines, fmt.Sprintf("[%d]\t%02X\t%s", pc, b, Instruction(b).String()))
	}
	//
	return lines
}

// DisassembleString is a convenience wrapper which disassembles a program into a
// single string.
func DisassembleString(program []byte) string {
	var builder strings.Builder
	//
	for _, line := range Disassemble(program) {
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	//
	return builder.String()
}
