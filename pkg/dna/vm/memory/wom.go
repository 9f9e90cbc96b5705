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

import "slices"

// WriteOnceMemory (WOM) represents a form of memory where each cell can be
// written exactly once and, furthermore, cells are written consecutively
// starting from zero.  Thus, a WOM can be viewed as an output stream (which is
// exactly what it is used for).
type WriteOnceMemory struct {
	data []uint8
}

// NewWriteOnceMemory constructs an initially empty WOM.
func NewWriteOnceMemory() *WriteOnceMemory {
	return &WriteOnceMemory{}
}

// Append a value to the next free cell of this memory.
func (p *WriteOnceMemory) Append(value uint8) {
	p.data = append(p.data, value)
}

// Len returns the number of cells written so far.
func (p *WriteOnceMemory) Len() uint {
	return uint(len(p.data))
}

// Contents returns a copy of the cells written so far, in order.
func (p *WriteOnceMemory) Contents() []uint8 {
	return slices.Clone(p.data)
}
