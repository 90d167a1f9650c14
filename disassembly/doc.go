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

// Package disassembly produces a listing of a program in assembly language
// form. Each entry in the listing also records the output of the control
// unit for the instruction and the addresses that execution may continue at.
//
// The listing is produced without running the program. Branch targets are
// calculated from the immediate field and wrap around at the size of the
// instruction store, in the same way as the program counter.
package disassembly
