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
	"fmt"

	"github.com/consensys/go-dna/pkg/dna/isa"
	"github.com/consensys/go-dna/pkg/util/source"
)

// Encoder is responsible for packing tokens into instructions.
type Encoder struct {
	srcfile *source.File
	// Indicates whether incomplete operands are reported as errors.
	strict bool
	// Opcode symbols accepted by this encoder.
	lookup func(isa.Symbol) (isa.Definition, bool)
}

// NewEncoder constructs a new encoder for tokens drawn from the given source
// file.
func NewEncoder(srcfile *source.File, strict bool) *Encoder {
	return &Encoder{srcfile, strict, isa.Lookup}
}

// Encode a sequence of tokens into instructions, or produce one or more syntax
// errors.  Encoding is all or nothing: if any errors arise then no instructions
// are returned.
func (p *Encoder) Encode(tokens []Token) ([]isa.Instruction, []source.SyntaxError) {
	var (
		insns  = make([]isa.Instruction, 0, len(tokens))
		errors []source.SyntaxError
	)
	//
	for _, token := range tokens {
		insn, err := p.EncodeToken(token)
		//
		if err != nil {
			errors = append(errors, *err)
		} else {
			insns = append(insns, insn)
		}
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	return insns, nil
}

// EncodeToken encodes a single token into an instruction.  This fails if the
// token's opcode symbol is not recognised or, in strict mode, if its operand is
// incomplete.
func (p *Encoder) EncodeToken(token Token) (isa.Instruction, *source.SyntaxError) {
	var symbol = token.Symbol()
	//
	def, ok := p.lookup(symbol)
	//
	if !ok {
		span := token.Opcode[0].Span.Join(token.Opcode[1].Span)
		msg := fmt.Sprintf("unknown opcode symbol %s", symbol)
		//
		return 0, p.srcfile.SyntaxError(span, msg)
	} else if p.strict && uint(len(token.Operand)) != def.OperandLength {
		msg := fmt.Sprintf("incomplete operand for %s (expected %d symbols, found %d)",
			def.Opcode, def.OperandLength, len(token.Operand))
		//
		return 0, p.srcfile.SyntaxError(token.Span(), msg)
	}
	// Operand is base-4, most significant first, masked to 4bits
	operand := isa.OperandValue(Nucleotides(token.Operand))
	//
	return isa.Encode(def.Opcode, operand), nil
}
