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

	"github.com/consensys/go-dna/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Option configures the behaviour of the compiler.
type Option func(*config)

type config struct {
	strict bool
}

// Strict causes an operand which is cut short by the end of the source to be
// reported as an error.  By default, such operands are silently encoded using
// only the nucleotides available.
func Strict(strict bool) Option {
	return func(c *config) {
		c.strict = strict
	}
}

// Compile a source file into a program, or produce one or more syntax errors.
// The source is normalised, tokenised and then encoded.  Compilation is all or
// nothing, so either a complete program or a nil program is returned.
func Compile(srcfile *source.File, options ...Option) ([]byte, []source.SyntaxError) {
	var cfg config
	//
	for _, opt := range options {
		opt(&cfg)
	}
	//
	symbols := Normalise(srcfile)
	tokens := Tokenise(symbols)
	//
	log.Debug(fmt.Sprintf("%s: %d nucleotides, %d tokens", srcfile.Filename(), len(symbols), len(tokens)))
	// Encode tokens
	insns, errors := NewEncoder(srcfile, cfg.strict).Encode(tokens)
	//
	if len(errors) > 0 {
		return nil, errors
	}
	// Flatten instructions into bytes
	program := make([]byte, len(insns))
	//
	for i, insn := range insns {
		program[i] = byte(insn)
	}
	//
	return program, nil
}

// CompileString is a convenience function for compiling source held in memory.
func CompileString(text string, options ...Option) ([]byte, []source.SyntaxError) {
	return Compile(source.NewSourceFile("<string>", []byte(text)), options...)
}
