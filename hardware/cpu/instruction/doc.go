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

// Package instruction extracts the fields of a 32 bit encoded instruction.
//
// Every instruction has the same opcode, rs and rt fields. The remaining bits
// are interpreted depending on the instruction class:
//
//	R-type: | opcode:6 | rs:5 | rt:5 | rd:5 | sh:5 | funct:6 |
//	I-type: | opcode:6 | rs:5 | rt:5 |     immediate:16     |
//	J-type: | opcode:6 |            address:26             |
//
// Decode() extracts all fields regardless of class. It does no validation and
// any 32 bit pattern decodes without error. Which fields are meaningful is
// decided by the control unit.
//
// The Encode functions are the inverse of Decode() and are useful for building
// programs in tests. They are not an assembler.
package instruction
