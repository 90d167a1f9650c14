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

// Package control is the control unit of the datapath. It maps the opcode and
// function code of an instruction to the bundle of signals that govern every
// other part of the datapath.
//
// Decoding happens in two steps. Classify() identifies the Kind of
// instruction, one of the nine supported instructions or Unsupported. The
// Signals() function of the Kind then produces the control bundle. Lookup()
// does both steps at once.
//
// Unsupported instructions produce the zero bundle. In effect this is an ADD
// with register writing disabled, ie. a no-op. This is not an error.
//
// The bundle can be packed into a ten bit control word for display purposes:
//
//	bit   9       8       7          6..5      4          3           2..0
//	      reg_dst branch  reg_write  alu_src   mem_write  mem_to_reg  alu_op
package control
