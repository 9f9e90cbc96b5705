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
	"github.com/consensys/go-dna/pkg/dna/isa"
	"github.com/consensys/go-dna/pkg/util/source"
)

// Symbol is a single nucleotide taken from the source text, along with the
// position in the original text from which it was taken.
type Symbol struct {
	Nucleotide isa.Nucleotide
	Span       source.Span
}

// Normalise filters the contents of a source file down to its nucleotides.
// Letters are accepted irrespective of case, and every other character is
// discarded silently.  Thus, anything which is not a nucleotide acts as a
// comment or whitespace.
func Normalise(srcfile *source.File) []Symbol {
	var symbols []Symbol
	//
	for i, c := range srcfile.Contents() {
		if n, ok := isa.ParseNucleotide(c); ok {
			symbols = append(symbols, Symbol{n, source.NewSpan(i, i+1)})
		}
	}
	//
	return symbols
}

// Nucleotides extracts the nucleotides from a sequence of symbols.
func Nucleotides(symbols []Symbol) []isa.Nucleotide {
	var nucleotides = make([]isa.Nucleotide, len(symbols))
	//
	for i, s := range symbols {
		nucleotides[i] = s.Nucleotide
	}
	//
	return nucleotides
}
