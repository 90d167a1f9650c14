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

package result

import (
	"github.com/jetsetilly/singlecycle/hardware/cpu/control"
	"github.com/jetsetilly/singlecycle/hardware/cpu/instruction"
)

// Tick is the value of every signal in the datapath during a single clock
// tick. All values are computed from the state as it was at the start of the
// tick.
type Tick struct {
	// the tick number. the first tick of a simulation is tick zero
	Cycle int

	// address of the instruction and the instruction itself
	PC          uint32
	Instruction instruction.Encoded
	Fields      instruction.Fields

	// output of the control unit
	Kind    control.Kind
	Signals control.Signals

	// ALU inputs. Data0 is the value of register rs and Data1 is the output of
	// the operand B multiplexer
	Data0 uint32
	Data1 uint32

	// value of register rt. this is the value written to data memory by a
	// store instruction
	RtValue uint32

	// ALU output and the zero test used by the branch logic
	ALUOut uint32
	Zero   bool

	// word read from data memory. zero if MemWrite is set or if the value
	// isn't needed and the address is out of range
	MemOut uint32

	// register index and value for the write-back stage. only written if
	// Signals.RegWrite is set
	WriteRegister uint8
	WriteBack     uint32

	// value of the program counter after the tick
	NextPC uint32

	// whether the branch was taken
	BranchTaken bool
}

// NamedSignal is the name and value of a single signal.
type NamedSignal struct {
	Name  string
	Value uint32
	Width int
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// NamedSignals returns every named signal in the tick in a fixed order. The
// names are those of the wires in the datapath diagram.
func (t Tick) NamedSignals() []NamedSignal {
	return []NamedSignal{
		{Name: "pc", Value: t.PC, Width: 32},
		{Name: "instr", Value: uint32(t.Instruction), Width: 32},
		{Name: "op", Value: uint32(t.Fields.Opcode), Width: 6},
		{Name: "rs", Value: uint32(t.Fields.Rs), Width: 5},
		{Name: "rt", Value: uint32(t.Fields.Rt), Width: 5},
		{Name: "rd", Value: uint32(t.Fields.Rd), Width: 5},
		{Name: "sh", Value: uint32(t.Fields.Shamt), Width: 5},
		{Name: "func", Value: uint32(t.Fields.Funct), Width: 6},
		{Name: "imm", Value: uint32(t.Fields.Immediate), Width: 16},
		{Name: "addr", Value: t.Fields.Address, Width: 26},
		{Name: "control_signals", Value: uint32(t.Signals.Pack()), Width: 10},
		{Name: "alu_op", Value: uint32(t.Signals.ALUOp), Width: 3},
		{Name: "mem_to_reg", Value: b2u(t.Signals.MemToReg), Width: 1},
		{Name: "mem_write", Value: b2u(t.Signals.MemWrite), Width: 1},
		{Name: "alu_src", Value: uint32(t.Signals.ALUSrc), Width: 2},
		{Name: "regwrite", Value: b2u(t.Signals.RegWrite), Width: 1},
		{Name: "branch", Value: b2u(t.Signals.Branch), Width: 1},
		{Name: "reg_dst", Value: b2u(t.Signals.RegDst), Width: 1},
		{Name: "data0", Value: t.Data0, Width: 32},
		{Name: "data1", Value: t.Data1, Width: 32},
		{Name: "write_register", Value: uint32(t.WriteRegister), Width: 5},
		{Name: "alu_out", Value: t.ALUOut, Width: 32},
		{Name: "mem_out", Value: t.MemOut, Width: 32},
		{Name: "write_back_value", Value: t.WriteBack, Width: 32},
		{Name: "next_pc", Value: t.NextPC, Width: 32},
	}
}
