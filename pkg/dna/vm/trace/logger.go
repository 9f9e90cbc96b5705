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
package trace

import (
	"fmt"
	"io"

	"github.com/consensys/go-dna/pkg/dna/isa"
	"github.com/consensys/go-dna/pkg/dna/vm/machine"
	"github.com/consensys/go-dna/pkg/util/termio"
	log "github.com/sirupsen/logrus"
)

// Logger is an observer which reports every step of execution, and every
// output, at debug level through a given logrus logger.
type Logger struct {
	logger *log.Logger
	colour bool
}

// NewLogger constructs a trace logger writing through the given logger.
// Mnemonics are highlighted when colour is enabled.
func NewLogger(logger *log.Logger, colour bool) *Logger {
	return &Logger{logger, colour}
}

// Step implementation for the machine.Observer interface.
func (p *Logger) Step(pc uint, insn isa.Instruction, stack []uint8) {
	var (
		event    = NewEvent(pc, insn, stack)
		mnemonic = insn.String()
	)
	//
	if p.colour {
		mnemonic = termio.BoldAnsiEscape().FgColour(termio.TERM_CYAN).Wrap(mnemonic)
	}
	//
	p.logger.WithFields(log.Fields{
		"pc":      event.PC,
		"byte":    fmt.Sprintf("%02X", event.Byte),
		"opcode":  fmt.Sprintf("%04b", event.Opcode),
		"operand": fmt.Sprintf("%04b", event.Operand),
		"stack":   fmt.Sprintf("%v", event.Stack),
	}).Debug(mnemonic)
}

// Output implementation for the machine.Observer interface.
func (p *Logger) Output(value uint8) {
	p.logger.WithField("value", value).Debug("output")
}

// Printer is an observer which writes each output value to a given writer on
// its own line.  Steps are ignored.
type Printer struct {
	out io.Writer
}

// NewPrinter constructs a printer for the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out}
}

// Step implementation for the machine.Observer interface.
func (p *Printer) Step(uint, isa.Instruction, []uint8) {}

// Output implementation for the machine.Observer interface.
func (p *Printer) Output(value uint8) {
	fmt.Fprintf(p.out, "output: %d\n", value)
}

// Compile-time interface checks
var (
	_ machine.Observer = &Recorder{}
	_ machine.Observer = &Logger{}
	_ machine.Observer = &Printer{}
)
