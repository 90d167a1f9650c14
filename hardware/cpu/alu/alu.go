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

// Package alu implements the arithmetic/logic unit of the datapath. The ALU is
// a pure function of its two operands, the immediate field of the current
// instruction and a three bit operation selector.
package alu

import (
	"fmt"

	"github.com/jetsetilly/singlecycle/hardware/cpu/instruction"
)

// Operation is the three bit selector driven by the control unit.
type Operation uint8

// List of valid Operation values. Values 6 and 7 are not defined and produce a
// zero result.
const (
	Add Operation = iota
	And
	ShiftImmediate
	Or
	LessThan
	Subtract
)

// Mask for the width of the Operation selector.
const OperationMask = 0x07

func (op Operation) String() string {
	switch op {
	case Add:
		return "add"
	case And:
		return "and"
	case ShiftImmediate:
		return "lui"
	case Or:
		return "or"
	case LessThan:
		return "slt"
	case Subtract:
		return "sub"
	}
	return fmt.Sprintf("undefined(%d)", uint8(op))
}

// Source of operand B, selected by the two bit ALUSrc control signal.
const (
	SourceRegister  = 0
	SourceImmediate = 1
)

// OperandB is the multiplexer in front of the second ALU input. The register
// source is the value of register rt. The immediate source is zero-extended
// for the Or operation and sign-extended otherwise. Source values 2 and 3 are
// not connected and produce zero.
func OperandB(src uint8, op Operation, rt uint32, imm uint16) uint32 {
	switch src {
	case SourceRegister:
		return rt
	case SourceImmediate:
		if op == Or {
			return instruction.ZeroExtend16(imm)
		}
		return instruction.SignExtend16(imm)
	}
	return 0
}

// Execute performs the operation on A and B. The ShiftImmediate operation uses
// only the immediate value and ignores both A and B.
//
// Arithmetic wraps around on overflow. Note that the Subtract operation is
// B - A, the reverse of the order used by Add.
func Execute(op Operation, a, b uint32, imm uint16) uint32 {
	switch op & OperationMask {
	case Add:
		return a + b
	case And:
		return a & b
	case ShiftImmediate:
		return instruction.ZeroExtend16(imm) << 16
	case Or:
		return a | b
	case LessThan:
		if a < b {
			return 1
		}
		return 0
	case Subtract:
		return b - a
	}
	return 0
}
