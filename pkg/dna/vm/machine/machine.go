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
	"github.com/consensys/go-dna/pkg/dna/vm/memory"
	"github.com/consensys/go-dna/pkg/util/collection/stack"
)

// Machine is the execution context of a single program.  It holds the address
// space (in which the program resides), the operand stack, the program counter
// and the output stream.  Nothing is shared between machines, so any number of
// them can run in isolation.
type Machine struct {
	memory  *memory.AddressSpace
	stack   *stack.Stack[uint8]
	outputs *memory.WriteOnceMemory
	// Program Counter.  This is signed because control-flow instructions set
	// it to one before their target.
	pc int
	// Source of values for the read instruction
	input Input
	// Observers notified during execution
	observers []Observer
}

// New constructs a fresh machine with an empty address space and stack.
func New() Machine {
	return Machine{
		memory:    memory.NewAddressSpace(),
		stack:     stack.NewStack[uint8](),
		outputs:   memory.NewWriteOnceMemory(),
		pc:        0,
		input:     ConstantInput(PLACEHOLDER_INPUT),
		observers: nil,
	}
}

// WithInput returns a machine updated with the given input, but which is
// otherwise identical to before.
func (p Machine) WithInput(input Input) Machine {
	var m = p
	//
	m.input = input
	//
	return m
}

// WithObservers returns a machine updated with the given observers (in
// addition to any existing ones), but which is otherwise identical to before.
func (p Machine) WithObservers(observers ...Observer) Machine {
	var m = p
	//
	m.observers = append(append([]Observer(nil), p.observers...), observers...)
	//
	return m
}

// Load a program into the address space, starting at address 0.  Addresses
// beyond the end of the program continue to hold zero.
func (p *Machine) Load(program []byte) error {
	if err := p.memory.Load(program); err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	//
	return nil
}

// Halted implementation for the Core interface.  A machine is halted when its
// program counter is outside the address space, or the byte it points at is
// zero.  Thus, a zero byte terminates execution even when it was intended as a
// nop instruction.
func (p *Machine) Halted() bool {
	return p.pc < 0 || p.pc >= memory.CAPACITY || p.memory.Read(uint(p.pc)) == 0
}

// Step executes a single instruction, returning false if the machine was
// already halted.  An error is returned if the instruction could not be
// dispatched, in which case the machine is left as it was.
func (p *Machine) Step() (bool, error) {
	if p.Halted() {
		return false, nil
	}
	//
	var (
		pc      = uint(p.pc)
		insn    = isa.Instruction(p.memory.Read(pc))
		opcode  = insn.Opcode()
		operand = insn.Operand()
	)
	//
	if len(p.observers) > 0 {
		var contents = p.stack.Items()
		//
		for _, o := range p.observers {
			o.Step(pc, insn, contents)
		}
	}
	//
	if uint(opcode) >= uint(len(dispatch)) {
		return false, &UnknownOpcodeError{pc, insn}
	}
	// Dispatch
	dispatch[opcode](p, operand)
	// Control-flow instructions have already accounted for this
	p.pc++
	//
	return true, nil
}

// Execute implementation for the Core interface.
func (p *Machine) Execute(steps uint) (uint, error) {
	var nsteps uint
	//
	for nsteps < steps {
		if ok, err := p.Step(); err != nil {
			return nsteps, err
		} else if !ok {
			break
		}
		//
		nsteps++
	}
	//
	return nsteps, nil
}

// PC returns the current position of the program counter.
func (p *Machine) PC() int {
	return p.pc
}

// Stack returns a copy of the operand stack, from bottom to top.
func (p *Machine) Stack() []uint8 {
	return p.stack.Items()
}

// Memory returns the address space of this machine.
func (p *Machine) Memory() *memory.AddressSpace {
	return p.memory
}

// Outputs returns the values written so far, in order.
func (p *Machine) Outputs() []uint8 {
	return p.outputs.Contents()
}
