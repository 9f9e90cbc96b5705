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
package compiler

import (
	"strings"

	"github.com/consensys/go-dna/pkg/dna/isa"
	"github.com/consensys/go-dna/pkg/util/source"
)

// Token represents a single instruction in source form, consisting of a two
// nucleotide opcode symbol followed by zero or more operand nucleotides.
type Token struct {
	// Opcode symbol (always exactly two nucleotides)
	Opcode [2]Symbol
	// Operand nucleotides.  This may be shorter than expected when the source
	// ran out part way through the operand.
	Operand []Symbol
}

// Symbol returns the opcode symbol of this token.
func (p *Token) Symbol() isa.Symbol {
	return isa.Symbol{First: p.Opcode[0].Nucleotide, Second: p.Opcode[1].Nucleotide}
}

// Span returns the span of the original text covered by this token.
func (p *Token) Span() source.Span {
	var span = p.Opcode[0].Span.Join(p.Opcode[1].Span)
	//
	for _, s := range p.Operand {
		span = span.Join(s.Span)
	}
	//
	return span
}

func (p *Token) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Symbol().String())
	//
	for _, s := range p.Operand {
		builder.WriteString(s.Nucleotide.String())
	}
	//
	return builder.String()
}

// Tokenise splits a sequence of symbols into tokens, working from left to
// right.  Each token begins with a two symbol opcode, and the number of operand
// symbols which follow is determined by that opcode symbol.  A trailing lone
// symbol (i.e. an incomplete opcode) is dropped.  Likewise, if the input runs
// out part way through an operand then the token simply has a shorter operand.
func Tokenise(symbols []Symbol) []Token {
	var (
		tokens []Token
		index  = 0
	)
	//
	for index+2 <= len(symbols) {
		var (
			opcode = [2]Symbol{symbols[index], symbols[index+1]}
			symbol = isa.Symbol{First: opcode[0].Nucleotide, Second: opcode[1].Nucleotide}
			// Determine operand length
			n   = int(isa.OperandLength(symbol))
			end = min(index+2+n, len(symbols))
		)
		//
		tokens = append(tokens, Token{opcode, symbols[index+2 : end]})
		// Advance past opcode and full operand, irrespective of how much was
		// actually available.
		index += 2 + n
	}
	//
	return tokens
}
