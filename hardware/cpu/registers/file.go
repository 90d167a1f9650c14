// This file is part of singlecycle.
//
// singlecycle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// singlecycle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with singlecycle.  If not, see <https://www.gnu.org/licenses/>.

package registers

import (
	"fmt"
	"strings"
)

// NumRegisters is the number of registers in the register file.
const NumRegisters = 32

// IndexMask is applied to every register index.
const IndexMask = NumRegisters - 1

// File is the general purpose register file. The zero value is a register
// file with every register set to zero.
type File struct {
	regs [NumRegisters]uint32

	// HardwiredZero discards writes to register zero. By default register
	// zero is an ordinary register.
	HardwiredZero bool
}

// Read the register at the index. The index is masked to five bits.
func (rf *File) Read(idx uint8) uint32 {
	return rf.regs[idx&IndexMask]
}

// Write the value to the register at the index. The index is masked to five
// bits.
func (rf *File) Write(idx uint8, v uint32) {
	idx &= IndexMask
	if idx == 0 && rf.HardwiredZero {
		return
	}
	rf.regs[idx] = v
}

// Reset all registers to zero.
func (rf *File) Reset() {
	clear(rf.regs[:])
}

// Snapshot returns a copy of every register value.
func (rf *File) Snapshot() [NumRegisters]uint32 {
	return rf.regs
}

// Label returns an identifying string for the register file.
func (rf *File) Label() string {
	return "RF"
}

// String returns the register file as eight rows of four registers.
func (rf *File) String() string {
	s := strings.Builder{}
	for i, v := range rf.regs {
		s.WriteString(fmt.Sprintf("r%-2d=%08x", i, v))
		if i%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
	}
	return s.String()
}
