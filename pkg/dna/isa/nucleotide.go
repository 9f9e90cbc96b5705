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

// Nucleotide represents a single letter of the source alphabet, each of which
// carries a 2bit value.
type Nucleotide uint8

const (
	// ADENINE is written 'A' and has value 0.
	ADENINE Nucleotide = iota
	// THYMINE is written 'T' and has value 1.
	THYMINE
	// CYTOSINE is written 'C' and has value 2.
	CYTOSINE
	// GUANINE is written 'G' and has value 3.
	GUANINE
)

// NUCLEOTIDES identifies the letter used for each nucleotide, indexed by its
// value.
var NUCLEOTIDES = [4]rune{'A', 'T', 'C', 'G'}

// ParseNucleotide converts a given character into a nucleotide.  Both upper and
// lower case letters are accepted.  Any other character is rejected.
func ParseNucleotide(c rune) (Nucleotide, bool) {
	switch c {
	case 'A', 'a':
		return ADENINE, true
	case 'T', 't':
		return THYMINE, true
	case 'C', 'c':
		return CYTOSINE, true
	case 'G', 'g':
		return GUANINE, true
	default:
		return 0, false
	}
}

// Rune returns the (upper case) letter for this nucleotide.
func (p Nucleotide) Rune() rune {
	return NUCLEOTIDES[p&0b11]
}

func (p Nucleotide) String() string {
	return string(p.Rune())
}

// Symbol is a two letter opcode symbol, such as "AT" or "GG".
type Symbol struct {
	First  Nucleotide
	Second Nucleotide
}

// ParseSymbol parses a two letter opcode symbol (e.g. "CG").
func ParseSymbol(text string) (Symbol, error) {
	var runes = []rune(text)
	//
	if len(runes) != 2 {
		return Symbol{}, fmt.Errorf("invalid opcode symbol \"%s\"", text)
	}
	//
	first, ok1 := ParseNucleotide(runes[0])
	second, ok2 := ParseNucleotide(runes[1])
	//
	if !ok1 || !ok2 {
		return Symbol{}, fmt.Errorf("invalid opcode symbol \"%s\"", text)
	}
	//
	return Symbol{first, second}, nil
}

// Key returns a unique index for this symbol in the range 0..15.  This is only
// a position within a symbol-keyed table.  It coincides with the opcode which
// the symbol denotes, except for "CG" (call) and "CC" (return) which are
// swapped.
func (p Symbol) Key() uint {
	return uint(p.First&0b11)<<2 | uint(p.Second&0b11)
}

func (p Symbol) String() string {
	return string([]rune{p.First.Rune(), p.Second.Rune()})
}

// OperandValue interprets a sequence of nucleotides as a base-4 number, with
// the most significant nucleotide first.  The result is masked to 4bits.
func OperandValue(operand []Nucleotide) uint8 {
	var value uint
	//
	for _, n := range operand {
		value = (value << 2) | uint(n&0b11)
	}
	//
	return uint8(value & 0b1111)
}
