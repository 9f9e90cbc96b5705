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
package memory

import (
	"errors"
	"fmt"
	"slices"
)

// CAPACITY determines the number of cells in an address space.
const CAPACITY = 256

// ErrProgramTooLarge is reported when loading a program which does not fit into
// the address space.
var ErrProgramTooLarge = errors.New("program exceeds address space")

// Memory represents (in many ways) the simplest form of memory which can be
// read or written without restrictions.  Initially, all locations can be
// considered to hold zero.  Thus, reading a location which has not yet been
// written will return zero; otherwise, it will return the last value written.
type Memory interface {
	// Read the byte at a given address.
	Read(address uint) uint8
	// Write a given byte to a given address, overwriting the previous value
	// stored at that address.
	Write(address uint, value uint8)
	// Return the number of addressable cells.
	Size() uint
}

// AddressSpace is a fixed capacity memory used both for holding the program
// being executed and as general purpose scratch storage.
type AddressSpace struct {
	cells [CAPACITY]uint8
}

// NewAddressSpace constructs an address space where every cell holds zero.
func NewAddressSpace() *AddressSpace {
	return &AddressSpace{}
}

// Load a given program into this address space, starting from address 0.
// Cells beyond the end of the program are left untouched.  This fails if the
// program is too large for the address space, in which case nothing is
// written.
func (p *AddressSpace) Load(program []byte) error {
	if len(program) > CAPACITY {
		return fmt.Errorf("%w (%d bytes, capacity %d)", ErrProgramTooLarge, len(program), CAPACITY)
	}
	//
	copy(p.cells[:], program)
	//
	return nil
}

// Read implementation for Memory interface.
func (p *AddressSpace) Read(address uint) uint8 {
	return p.cells[address]
}

// Write implementation for Memory interface.
func (p *AddressSpace) Write(address uint, value uint8) {
	p.cells[address] = value
}

// Size implementation for Memory interface.
func (p *AddressSpace) Size() uint {
	return CAPACITY
}

// Contents returns a copy of all cells in this address space.
func (p *AddressSpace) Contents() []uint8 {
	return slices.Clone(p.cells[:])
}
