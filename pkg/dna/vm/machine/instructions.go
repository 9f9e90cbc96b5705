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
	"github.com/consensys/go-dna/pkg/dna/isa"
)

type handler func(*Machine, uint8)

// Dispatch table, indexed by opcode.  Instructions never fail: stack underflow
// and division by zero are silently absorbed.
var dispatch = [isa.NUM_OPCODES]handler{
	isa.NOP:   (*Machine).nop,
	isa.PUSH:  (*Machine).push,
	isa.POP:   (*Machine).pop,
	isa.DUP:   (*Machine).dup,
	isa.ADD:   (*Machine).add,
	isa.SUB:   (*Machine).sub,
	isa.MUL:   (*Machine).mul,
	isa.DIV:   (*Machine).div,
	isa.JMP:   (*Machine).jmp,
	isa.JZ:    (*Machine).jz,
	isa.CALL:  (*Machine).call,
	isa.RET:   (*Machine).ret,
	isa.LOAD:  (*Machine).load,
	isa.STORE: (*Machine).store,
	isa.READ:  (*Machine).read,
	isa.WRITE: (*Machine).write,
}

// ============================================================================
// Stack instructions
// ============================================================================

func (p *Machine) nop(_ uint8) {}

func (p *Machine) push(operand uint8) {
	p.stack.Push(operand)
}

func (p *Machine) pop(_ uint8) {
	if !p.stack.IsEmpty() {
		p.stack.Pop()
	}
}

func (p *Machine) dup(_ uint8) {
	if !p.stack.IsEmpty() {
		p.stack.Push(p.stack.Peek(0))
	}
}

// ============================================================================
// Arithmetic instructions
// ============================================================================

// Pop a then b, and push f(a,b).  Nothing happens with fewer than two items.
func (p *Machine) binary(f func(a, b uint8) (uint8, bool)) {
	if p.stack.Len() >= 2 {
		a := p.stack.Pop()
		b := p.stack.Pop()
		//
		if r, ok := f(a, b); ok {
			p.stack.Push(r)
		}
	}
}

func (p *Machine) add(_ uint8) {
	p.binary(func(a, b uint8) (uint8, bool) { return a + b, true })
}

func (p *Machine) sub(_ uint8) {
	p.binary(func(a, b uint8) (uint8, bool) { return b - a, true })
}

func (p *Machine) mul(_ uint8) {
	p.binary(func(a, b uint8) (uint8, bool) { return a * b, true })
}

// Division by zero consumes both operands and pushes nothing.
func (p *Machine) div(_ uint8) {
	p.binary(func(a, b uint8) (uint8, bool) {
		if a == 0 {
			return 0, false
		}
		//
		return b / a, true
	})
}

// ============================================================================
// Control-flow instructions
// ============================================================================

// -1 because the PC will be incremented after dispatch.
func (p *Machine) goTo(target int) {
	p.pc = target - 1
}

func (p *Machine) jmp(operand uint8) {
	p.goTo(int(operand))
}

// Branch when the top of stack is zero, without popping it.
func (p *Machine) jz(operand uint8) {
	if !p.stack.IsEmpty() && p.stack.Peek(0) == 0 {
		p.goTo(int(operand))
	}
}

func (p *Machine) call(operand uint8) {
	// Return address is truncated to a byte like any other stack value.
	p.stack.Push(uint8(p.pc + 1))
	p.goTo(int(operand))
}

func (p *Machine) ret(_ uint8) {
	if !p.stack.IsEmpty() {
		p.goTo(int(p.stack.Pop()))
	}
}

// ============================================================================
// Memory & I/O instructions
// ============================================================================

func (p *Machine) load(operand uint8) {
	p.stack.Push(p.memory.Read(uint(operand & 0b1111)))
}

func (p *Machine) store(operand uint8) {
	if !p.stack.IsEmpty() {
		p.memory.Write(uint(operand&0b1111), p.stack.Pop())
	}
}

func (p *Machine) read(_ uint8) {
	p.stack.Push(p.input.Read())
}

func (p *Machine) write(_ uint8) {
	if !p.stack.IsEmpty() {
		value := p.stack.Pop()
		//
		p.outputs.Append(value)
		//
		for _, o := range p.observers {
			o.Output(value)
		}
	}
}
