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

import "fmt"

// Opcode identifies the operation performed by an instruction, and occupies the
// high nibble of an instruction byte.
type Opcode uint8

// The complete set of opcodes.
const (
	NOP Opcode = iota
	PUSH
	POP
	DUP
	ADD
	SUB
	MUL
	DIV
	JMP
	JZ
	CALL
	RET
	LOAD
	STORE
	READ
	WRITE
)

// NUM_OPCODES determines the number of distinct opcodes.
const NUM_OPCODES = 16

var mnemonics = [NUM_OPCODES]string{
	"nop", "push", "pop", "dup", "add", "sub", "mul", "div",
	"jmp", "jz", "call", "ret", "load", "store", "read", "write",
}

func (p Opcode) String() string {
	if uint(p) < NUM_OPCODES {
		return mnemonics[p]
	}
	//
	return fmt.Sprintf("0b%04b", uint8(p))
}

// Definition describes how an opcode symbol is written in source form: which
// opcode it denotes, and how many nucleotides follow it to make up its
// immediate operand.
type Definition struct {
	Symbol        Symbol
	Opcode        Opcode
	OperandLength uint
}

// The opcode-symbol table, keyed by symbol.  This is part of the wire format
// and is an enumeration, not a formula: the operand lengths have no
// relationship with the bit pattern of the opcode.
var definitions = [NUM_OPCODES]Definition{
	def("AA", NOP, 0), def("AT", PUSH, 1), def("AC", POP, 0), def("AG", DUP, 0),
	def("TA", ADD, 0), def("TT", SUB, 0), def("TC", MUL, 0), def("TG", DIV, 0),
	def("CA", JMP, 2), def("CT", JZ, 2), def("CG", CALL, 2), def("CC", RET, 0),
	def("GA", LOAD, 2), def("GT", STORE, 2), def("GC", READ, 2), def("GG", WRITE, 2),
}

// Symbol-keyed index into the definitions table, computed at initialisation.
var symbolTable map[Symbol]*Definition

// Opcode-keyed index into the definitions table, computed at initialisation.
var opcodeTable [NUM_OPCODES]*Definition

func init() {
	symbolTable = make(map[Symbol]*Definition, NUM_OPCODES)
	//
	for i := range definitions {
		d := &definitions[i]
		//
		if _, ok := symbolTable[d.Symbol]; ok {
			panic(fmt.Sprintf("duplicate opcode symbol %s", d.Symbol))
		} else if opcodeTable[d.Opcode] != nil {
			panic(fmt.Sprintf("duplicate opcode %s", d.Opcode))
		}
		//
		symbolTable[d.Symbol] = d
		opcodeTable[d.Opcode] = d
	}
}

func def(symbol string, opcode Opcode, operandLength uint) Definition {
	s, err := ParseSymbol(symbol)
	//
	if err != nil {
		panic(err.Error())
	}
	//
	return Definition{s, opcode, operandLength}
}

// Lookup the definition associated with a given opcode symbol, or return false
// if no such definition exists.
func Lookup(symbol Symbol) (Definition, bool) {
	if d, ok := symbolTable[symbol]; ok {
		return *d, true
	}
	//
	return Definition{}, false
}

// OperandLength returns the number of nucleotides making up the immediate
// operand for a given opcode symbol.  Unknown symbols take no operand.
func OperandLength(symbol Symbol) uint {
	if d, ok := symbolTable[symbol]; ok {
		return d.OperandLength
	}
	//
	return 0
}

// DefinitionOf returns the definition for a given opcode.
func DefinitionOf(opcode Opcode) (Definition, bool) {
	if uint(opcode) < NUM_OPCODES {
		return *opcodeTable[opcode], true
	}
	//
	return Definition{}, false
}

// Definitions returns all opcode definitions in symbol order.
func Definitions() []Definition {
	return definitions[:]
}
