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
	"slices"

	"github.com/consensys/go-dna/pkg/dna/isa"
	"github.com/fxamacker/cbor/v2"
)

// Event captures the state of the machine immediately before an instruction
// is dispatched.
type Event struct {
	PC      uint    `cbor:"pc"`
	Byte    uint8   `cbor:"byte"`
	Opcode  uint8   `cbor:"opcode"`
	Operand uint8   `cbor:"operand"`
	Stack   []uint8 `cbor:"stack"`
}

// Instruction returns the instruction executed at this event.
func (p *Event) Instruction() isa.Instruction {
	return isa.Instruction(p.Byte)
}

func (p *Event) String() string {
	return fmt.Sprintf("PC=%d, Byte=%02X, Opcode=%04b, Operand=%04b, Stack=%v", p.PC, p.Byte, p.Opcode, p.Operand,
		p.Stack)
}

// Trace is a complete record of an execution.
type Trace struct {
	Events  []Event `cbor:"events"`
	Outputs []uint8 `cbor:"outputs"`
}

// Recorder is an observer which records every step and output of an execution
// in memory.
type Recorder struct {
	trace Trace
}

// NewRecorder constructs an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Step implementation for the machine.Observer interface.
func (p *Recorder) Step(pc uint, insn isa.Instruction, stack []uint8) {
	p.trace.Events = append(p.trace.Events, NewEvent(pc, insn, stack))
}

// Output implementation for the machine.Observer interface.
func (p *Recorder) Output(value uint8) {
	p.trace.Outputs = append(p.trace.Outputs, value)
}

// Trace returns the trace recorded so far.
func (p *Recorder) Trace() Trace {
	return p.trace
}

// NewEvent constructs an event for a given step of execution.
func NewEvent(pc uint, insn isa.Instruction, stack []uint8) Event {
	return Event{pc, uint8(insn), uint8(insn.Opcode()), insn.Operand(), slices.Clone(stack)}
}

// ============================================================================
// Encoding / Decoding
// ============================================================================

// Canonical encoding mode, such that identical traces always encode
// identically.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("trace: failed to create CBOR enc mode: %v", err))
	}
	//
	cborEncMode = em
}

// Marshal serialises a trace into CBOR bytes.
func Marshal(trace Trace) ([]byte, error) {
	return cborEncMode.Marshal(trace)
}

// Unmarshal deserialises a trace from CBOR bytes.
func Unmarshal(data []byte) (Trace, error) {
	var trace Trace
	//
	if err := cbor.Unmarshal(data, &trace); err != nil {
		return Trace{}, fmt.Errorf("trace: unmarshal: %w", err)
	}
	//
	return trace, nil
}
