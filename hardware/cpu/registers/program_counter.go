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

import "fmt"

// ProgramCounter holds the index of the next instruction to fetch. The width
// of the register matches the address width of the instruction store and the
// value wraps around at that width.
type ProgramCounter struct {
	value uint32
	mask  uint32
}

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter type. The bits argument is clamped to the range 1 to 32.
func NewProgramCounter(bits int) ProgramCounter {
	bits = max(1, min(32, bits))
	return ProgramCounter{
		mask: uint32((uint64(1) << bits) - 1),
	}
}

// Label returns an identifying string for the PC
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#04x", pc.value)
}

// Address returns the current value of the PC.
func (pc ProgramCounter) Address() uint32 {
	return pc.value
}

// Mask returns the mask that is applied to every value loaded into the PC.
func (pc ProgramCounter) Mask() uint32 {
	return pc.mask
}

// Load a value into the PC. The value is masked to the width of the PC.
func (pc *ProgramCounter) Load(val uint32) {
	pc.value = val & pc.mask
}
