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

package instruction_test

import (
	"testing"

	"github.com/jetsetilly/singlecycle/hardware/cpu/instruction"
	"github.com/jetsetilly/singlecycle/test"
)

func TestDecodeRType(t *testing.T) {
	// add $10, $8, $9
	f := instruction.Decode(0x01095020)
	test.ExpectEquality(t, f.Opcode, uint8(0x00))
	test.ExpectEquality(t, f.Rs, uint8(8))
	test.ExpectEquality(t, f.Rt, uint8(9))
	test.ExpectEquality(t, f.Rd, uint8(10))
	test.ExpectEquality(t, f.Shamt, uint8(0))
	test.ExpectEquality(t, f.Funct, uint8(0x20))
	test.ExpectEquality(t, f.Immediate, uint16(0x5020))
	test.ExpectEquality(t, f.Address, uint32(0x01095020))
}

func TestDecodeIType(t *testing.T) {
	// addi $8, $0, -1
	f := instruction.Decode(0x2008ffff)
	test.ExpectEquality(t, f.Opcode, uint8(0x08))
	test.ExpectEquality(t, f.Rs, uint8(0))
	test.ExpectEquality(t, f.Rt, uint8(8))
	test.ExpectEquality(t, f.Immediate, uint16(0xffff))
}

func TestDecodeAllOnes(t *testing.T) {
	// any bit pattern decodes
	f := instruction.Decode(0xffffffff)
	test.ExpectEquality(t, f.Opcode, uint8(0x3f))
	test.ExpectEquality(t, f.Rs, uint8(0x1f))
	test.ExpectEquality(t, f.Rt, uint8(0x1f))
	test.ExpectEquality(t, f.Rd, uint8(0x1f))
	test.ExpectEquality(t, f.Shamt, uint8(0x1f))
	test.ExpectEquality(t, f.Funct, uint8(0x3f))
	test.ExpectEquality(t, f.Immediate, uint16(0xffff))
	test.ExpectEquality(t, f.Address, uint32(0x03ffffff))
}

func TestEncodeDecode(t *testing.T) {
	e := instruction.EncodeR(0x00, 3, 4, 5, 6, 0x2a)
	test.ExpectEquality(t, instruction.Decode(e), instruction.Fields{
		Opcode: 0x00, Rs: 3, Rt: 4, Rd: 5, Shamt: 6, Funct: 0x2a,
		Immediate: uint16(5<<11 | 6<<6 | 0x2a),
		Address:   uint32(3<<21 | 4<<16 | 5<<11 | 6<<6 | 0x2a),
	})

	e = instruction.EncodeI(0x04, 1, 2, -2)
	f := instruction.Decode(e)
	test.ExpectEquality(t, f.Opcode, uint8(0x04))
	test.ExpectEquality(t, f.Rs, uint8(1))
	test.ExpectEquality(t, f.Rt, uint8(2))
	test.ExpectEquality(t, f.Immediate, uint16(0xfffe))

	e = instruction.EncodeJ(0x02, 0xffffffff)
	f = instruction.Decode(e)
	test.ExpectEquality(t, f.Opcode, uint8(0x02))
	test.ExpectEquality(t, f.Address, uint32(0x03ffffff))
}

func TestExtension(t *testing.T) {
	test.ExpectEquality(t, instruction.SignExtend16(0x7fff), uint32(0x00007fff))
	test.ExpectEquality(t, instruction.SignExtend16(0x8000), uint32(0xffff8000))
	test.ExpectEquality(t, instruction.SignExtend16(0xffff), uint32(0xffffffff))
	test.ExpectEquality(t, instruction.ZeroExtend16(0xffff), uint32(0x0000ffff))
	test.ExpectEquality(t, instruction.ZeroExtend16(0x8000), uint32(0x00008000))
}
