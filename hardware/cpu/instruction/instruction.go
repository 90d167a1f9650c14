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

package instruction

import "fmt"

// Encoded is a single 32 bit instruction as found in the instruction store.
type Encoded uint32

// Fields are the decoded subfields of an Encoded instruction.
type Fields struct {
	Opcode    uint8
	Rs        uint8
	Rt        uint8
	Rd        uint8
	Shamt     uint8
	Funct     uint8
	Immediate uint16
	Address   uint32
}

// bit positions and masks of each field
const (
	opcodeShift = 26
	rsShift     = 21
	rtShift     = 16
	rdShift     = 11
	shamtShift  = 6

	opcodeMask    = 0x3f
	registerMask  = 0x1f
	shamtMask     = 0x1f
	functMask     = 0x3f
	immediateMask = 0xffff
	addressMask   = 0x03ffffff
)

// Decode extracts every field from the encoded instruction.
func Decode(e Encoded) Fields {
	v := uint32(e)
	return Fields{
		Opcode:    uint8((v >> opcodeShift) & opcodeMask),
		Rs:        uint8((v >> rsShift) & registerMask),
		Rt:        uint8((v >> rtShift) & registerMask),
		Rd:        uint8((v >> rdShift) & registerMask),
		Shamt:     uint8((v >> shamtShift) & shamtMask),
		Funct:     uint8(v & functMask),
		Immediate: uint16(v & immediateMask),
		Address:   v & addressMask,
	}
}

func (f Fields) String() string {
	return fmt.Sprintf("op=%#02x rs=%d rt=%d rd=%d sh=%d funct=%#02x imm=%#04x",
		f.Opcode, f.Rs, f.Rt, f.Rd, f.Shamt, f.Funct, f.Immediate)
}

func (e Encoded) String() string {
	return fmt.Sprintf("%08x", uint32(e))
}

// EncodeR creates an R-type instruction. Values are truncated to the width of
// their field.
func EncodeR(opcode, rs, rt, rd, shamt, funct uint8) Encoded {
	return Encoded(uint32(opcode&opcodeMask)<<opcodeShift |
		uint32(rs&registerMask)<<rsShift |
		uint32(rt&registerMask)<<rtShift |
		uint32(rd&registerMask)<<rdShift |
		uint32(shamt&shamtMask)<<shamtShift |
		uint32(funct&functMask))
}

// EncodeI creates an I-type instruction. The immediate value is a signed value
// for convenience. Only the lower 16 bits are used.
func EncodeI(opcode, rs, rt uint8, immediate int32) Encoded {
	return Encoded(uint32(opcode&opcodeMask)<<opcodeShift |
		uint32(rs&registerMask)<<rsShift |
		uint32(rt&registerMask)<<rtShift |
		uint32(immediate)&immediateMask)
}

// EncodeJ creates a J-type instruction.
func EncodeJ(opcode uint8, address uint32) Encoded {
	return Encoded(uint32(opcode&opcodeMask)<<opcodeShift | address&addressMask)
}

// SignExtend16 widens a 16 bit value to 32 bits by replicating the sign bit.
func SignExtend16(v uint16) uint32 {
	return uint32(int32(int16(v)))
}

// ZeroExtend16 widens a 16 bit value to 32 bits by padding with zeroes.
func ZeroExtend16(v uint16) uint32 {
	return uint32(v)
}
