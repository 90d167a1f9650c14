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

package control

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/singlecycle/hardware/cpu/alu"
)

// Signals is the bundle of control signals produced for a single instruction.
type Signals struct {
	// operation selector for the ALU
	ALUOp alu.Operation

	// write-back value is taken from data memory rather than the ALU
	MemToReg bool

	// data memory is written to rather than read from
	MemWrite bool

	// two bit selector for ALU operand B. see alu.OperandB()
	ALUSrc uint8

	// register file write enable
	RegWrite bool

	// program counter takes the branch target if the ALU result is zero
	Branch bool

	// write register is rd. if false the write register is rt
	RegDst bool
}

// Signals returns the control bundle for the Kind.
func (k Kind) Signals() Signals {
	switch k {
	case ADD:
		return Signals{ALUOp: alu.Add, ALUSrc: alu.SourceRegister, RegWrite: true, RegDst: true}
	case AND:
		return Signals{ALUOp: alu.And, ALUSrc: alu.SourceRegister, RegWrite: true, RegDst: true}
	case SLT:
		return Signals{ALUOp: alu.LessThan, ALUSrc: alu.SourceRegister, RegWrite: true, RegDst: true}
	case ADDI:
		return Signals{ALUOp: alu.Add, ALUSrc: alu.SourceImmediate, RegWrite: true}
	case LUI:
		return Signals{ALUOp: alu.ShiftImmediate, ALUSrc: alu.SourceImmediate, RegWrite: true}
	case ORI:
		return Signals{ALUOp: alu.Or, ALUSrc: alu.SourceImmediate, RegWrite: true}
	case LW:
		return Signals{ALUOp: alu.Add, ALUSrc: alu.SourceImmediate, MemToReg: true, RegWrite: true}
	case SW:
		return Signals{ALUOp: alu.Add, ALUSrc: alu.SourceImmediate, MemWrite: true}
	case BEQ:
		return Signals{ALUOp: alu.Subtract, ALUSrc: alu.SourceRegister, Branch: true}
	case Unsupported:
		return Signals{}
	}
	panic(fmt.Sprintf("control: unknown instruction kind (%d)", int(k)))
}

// Lookup returns the control bundle for the opcode and function code.
func Lookup(opcode uint8, funct uint8) Signals {
	return Classify(opcode, funct).Signals()
}

// bit positions in the packed control word
const (
	bitMemToReg = 3
	bitMemWrite = 4
	bitALUSrc   = 5
	bitRegWrite = 7
	bitBranch   = 8
	bitRegDst   = 9

	aluSrcMask = 0x03
)

// WordMask is the mask for a packed control word.
const WordMask = 0x3ff

func b2u(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

// Pack the Signals into a ten bit control word.
func (sig Signals) Pack() uint16 {
	return uint16(sig.ALUOp&alu.OperationMask) |
		b2u(sig.MemToReg)<<bitMemToReg |
		b2u(sig.MemWrite)<<bitMemWrite |
		uint16(sig.ALUSrc&aluSrcMask)<<bitALUSrc |
		b2u(sig.RegWrite)<<bitRegWrite |
		b2u(sig.Branch)<<bitBranch |
		b2u(sig.RegDst)<<bitRegDst
}

// Unpack a ten bit control word into Signals. Bits above the width of the
// control word are ignored.
func Unpack(w uint16) Signals {
	return Signals{
		ALUOp:    alu.Operation(w & alu.OperationMask),
		MemToReg: w&(1<<bitMemToReg) != 0,
		MemWrite: w&(1<<bitMemWrite) != 0,
		ALUSrc:   uint8(w>>bitALUSrc) & aluSrcMask,
		RegWrite: w&(1<<bitRegWrite) != 0,
		Branch:   w&(1<<bitBranch) != 0,
		RegDst:   w&(1<<bitRegDst) != 0,
	}
}

func (sig Signals) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#05x alu=%s src=%d", sig.Pack(), sig.ALUOp, sig.ALUSrc))
	if sig.MemToReg {
		s.WriteString(" memtoreg")
	}
	if sig.MemWrite {
		s.WriteString(" memwrite")
	}
	if sig.RegWrite {
		s.WriteString(" regwrite")
	}
	if sig.Branch {
		s.WriteString(" branch")
	}
	if sig.RegDst {
		s.WriteString(" regdst")
	}
	return s.String()
}
