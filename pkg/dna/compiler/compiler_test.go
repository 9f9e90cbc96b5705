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
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-dna/pkg/dna/isa"
	"github.com/consensys/go-dna/pkg/util/source"
)

// ===================================================================
// Normalisation
// ===================================================================

func Test_Normalise_01(t *testing.T) {
	checkNormalise(t, "ATCG", "ATCG")
	checkNormalise(t, "at-CA-tt", "ATCATT")
	checkNormalise(t, "; push 0\nAT A\n", "ATA")
	checkNormalise(t, "xyz 123", "")
}

func Test_Normalise_02(t *testing.T) {
	var symbols = Normalise(source.NewSourceFile("test", []byte("x-aT")))
	//
	if len(symbols) != 2 {
		t.Fatalf("expected 2 symbols, got %d", len(symbols))
	}
	// Spans refer back to the original text
	if symbols[0].Span.Start() != 2 || symbols[1].Span.Start() != 3 {
		t.Errorf("unexpected spans %d, %d", symbols[0].Span.Start(), symbols[1].Span.Start())
	}
}

// ===================================================================
// Tokenisation
// ===================================================================

func Test_Tokenise_01(t *testing.T) {
	checkTokenise(t, "ATAGGAA", "ATA", "GGAA")
	checkTokenise(t, "AAACAGTATCTGCC", "AA", "AC", "AG", "TA", "TC", "TG", "CC")
	checkTokenise(t, "CAGTCTAA", "CAGT", "CTAA")
}

func Test_Tokenise_02(t *testing.T) {
	// Trailing partial opcode is dropped
	checkTokenise(t, "ATAG", "ATA")
	checkTokenise(t, "A")
	checkTokenise(t, "")
}

func Test_Tokenise_03(t *testing.T) {
	// Short operands are kept
	checkTokenise(t, "ATAGGA", "ATA", "GGA")
	checkTokenise(t, "AT", "AT")
	checkTokenise(t, "CA", "CA")
}

// ===================================================================
// Compilation
// ===================================================================

func Test_Compile_01(t *testing.T) {
	checkCompile(t, "ATAGGAA", 0x10, 0xF0)
}

func Test_Compile_02(t *testing.T) {
	checkCompile(t, "at-CA-tt", 0x12, 0x11)
}

func Test_Compile_03(t *testing.T) {
	// push 3; push 2; add; write
	checkCompile(t, "ATG ATC TA GGAA", 0x13, 0x12, 0x40, 0xF0)
	// jmp 15; jz 9; call 6; ret
	checkCompile(t, "CAGG CTCT CGTC CC", 0x8F, 0x99, 0xA6, 0xB0)
	// load 1; store 2; read; write
	checkCompile(t, "GAAT GTAC GCAA GGAA", 0xC1, 0xD2, 0xE0, 0xF0)
}

func Test_Compile_04(t *testing.T) {
	// Trailing partial opcode dropped
	checkCompile(t, "ATAG", 0x10)
	// Short operand encoded with what is available
	checkCompile(t, "ATAGGG", 0x10, 0xF3)
	checkCompile(t, "CA", 0x80)
	// Nothing at all
	checkCompile(t, "; --- 0123 ---")
}

func Test_Compile_05(t *testing.T) {
	var text = "push 0 AT A ; write GG AA"
	// Determinism
	p1, e1 := CompileString(text)
	p2, e2 := CompileString(text)
	//
	if len(e1) != 0 || len(e2) != 0 {
		t.Fatalf("unexpected errors %v, %v", e1, e2)
	} else if !bytes.Equal(p1, p2) {
		t.Errorf("compilation not deterministic: %v vs %v", p1, p2)
	}
}

func Test_Compile_06(t *testing.T) {
	// Every opcode symbol encodes to its opcode
	for _, d := range isa.Definitions() {
		var text = d.Symbol.String() + strings.Repeat("A", int(d.OperandLength))
		//
		program, errs := CompileString(text)
		//
		if len(errs) != 0 || len(program) != 1 {
			t.Fatalf("failed compiling %s: %v", text, errs)
		} else if op := isa.Instruction(program[0]).Opcode(); op != d.Opcode {
			t.Errorf("symbol %s encoded as %s, not %s", d.Symbol, op, d.Opcode)
		}
	}
}

func Test_Compile_Strict_01(t *testing.T) {
	program, errs := CompileString("ATAGGA", Strict(true))
	//
	if program != nil {
		t.Errorf("strict compilation should not produce a program")
	}
	//
	checkErrors(t, errs, "incomplete operand for write (expected 2 symbols, found 1)")
	// Span covers the whole incomplete token
	if span := errs[0].Span(); span.Start() != 3 || span.End() != 6 {
		t.Errorf("unexpected span %d..%d", span.Start(), span.End())
	}
}

func Test_Compile_Strict_02(t *testing.T) {
	program, errs := CompileString("ATA GGAA", Strict(true))
	//
	if len(errs) != 0 || !bytes.Equal(program, []byte{0x10, 0xF0}) {
		t.Errorf("unexpected result %v, %v", program, errs)
	}
}

func Test_Compile_Invalid_01(t *testing.T) {
	var (
		srcfile = source.NewSourceFile("test", []byte("ATA GG AA"))
		encoder = NewEncoder(srcfile, false)
	)
	// Restrict the accepted symbols to exercise unknown opcodes
	encoder.lookup = func(s isa.Symbol) (isa.Definition, bool) {
		if s.String() == "GG" {
			return isa.Definition{}, false
		}
		//
		return isa.Lookup(s)
	}
	//
	insns, errs := encoder.Encode(Tokenise(Normalise(srcfile)))
	//
	if insns != nil {
		t.Errorf("encoding should fail entirely, got %v", insns)
	}
	//
	checkErrors(t, errs, "unknown opcode symbol GG")
	//
	if span := errs[0].Span(); span.Start() != 4 || span.End() != 6 {
		t.Errorf("unexpected span %d..%d", span.Start(), span.End())
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkNormalise(t *testing.T, input string, expected string) {
	t.Helper()
	//
	var builder strings.Builder
	//
	for _, s := range Normalise(source.NewSourceFile("test", []byte(input))) {
		builder.WriteString(s.Nucleotide.String())
	}
	//
	if actual := builder.String(); actual != expected {
		t.Errorf("normalising \"%s\" gave \"%s\", expected \"%s\"", input, actual, expected)
	}
}

func checkTokenise(t *testing.T, input string, expected ...string) {
	t.Helper()
	//
	var tokens = Tokenise(Normalise(source.NewSourceFile("test", []byte(input))))
	//
	if len(tokens) != len(expected) {
		t.Fatalf("tokenising \"%s\" gave %d tokens, expected %d", input, len(tokens), len(expected))
	}
	//
	for i, token := range tokens {
		if token.String() != expected[i] {
			t.Errorf("token %d of \"%s\" is %s, expected %s", i, input, token.String(), expected[i])
		}
	}
}

func checkCompile(t *testing.T, input string, expected ...byte) {
	t.Helper()
	//
	program, errs := CompileString(input)
	//
	if len(errs) != 0 {
		t.Fatalf("compiling \"%s\" failed: %v", input, errs)
	} else if !bytes.Equal(program, expected) {
		t.Errorf("compiling \"%s\" gave %X, expected %X", input, program, expected)
	}
}

func checkErrors(t *testing.T, errs []source.SyntaxError, expected ...string) {
	t.Helper()
	//
	if len(errs) != len(expected) {
		t.Fatalf("expected %d errors, got %d", len(expected), len(errs))
	}
	//
	for i, err := range errs {
		if err.Message() != expected[i] {
			t.Errorf("expected error \"%s\", got \"%s\"", expected[i], err.Message())
		}
	}
}
