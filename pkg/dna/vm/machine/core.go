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
package machine

import (
	"fmt"

	"github.com/consensys/go-dna/pkg/dna/isa"
)

// PLACEHOLDER_INPUT is the value produced by the read instruction when no other
// input has been configured.
const PLACEHOLDER_INPUT = 42

// ExecuteAll executes a given machine to completion in chunks of n steps,
// returning the number of steps executed and/or any error arising.  Observe
// that this never returns for a program which does not terminate.
func ExecuteAll[M Core](machine M, n uint) (uint, error) {
	var nsteps uint
	// Must make progress
	n = max(n, 1)
	//
	for {
		// Execute upto n steps
		m, err := machine.Execute(n)
		// update the tally
		nsteps += m
		// check for termination
		if err != nil || m < n {
			return nsteps, err
		}
	}
}

// Core represents an executing machine which can be run for a given number of
// steps at a time.  A machine may be executing or terminated.
type Core interface {
	// Execute the machine for the given number of steps, returning the actual
	// number of steps executed and an error (if execution failed).  Fewer steps
	// than requested are executed only when the machine terminates.
	Execute(steps uint) (uint, error)
	// Halted determines whether or not this machine has terminated.
	Halted() bool
}

// Input provides the values consumed by the read instruction.
type Input interface {
	// Read the next input value.
	Read() uint8
}

// ConstantInput is an input which always produces the same value.
type ConstantInput uint8

// Read implementation for the Input interface.
func (p ConstantInput) Read() uint8 {
	return uint8(p)
}

// Observer is notified of significant events during execution, such as for
// tracing or collecting output.  Observers cannot affect execution.
type Observer interface {
	// Step is called immediately before an instruction is dispatched, with the
	// program counter, the raw instruction and the contents of the stack (from
	// bottom to top).
	Step(pc uint, insn isa.Instruction, stack []uint8)
	// Output is called whenever a value is written by the write instruction.
	Output(value uint8)
}

// UnknownOpcodeError is reported when an instruction is decoded whose opcode
// has no entry in the dispatch table.
type UnknownOpcodeError struct {
	PC          uint
	Instruction isa.Instruction
}

func (p *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0b%04b (pc=%d, byte=0x%02X)", uint8(p.Instruction.Opcode()), p.PC,
		uint8(p.Instruction))
}
