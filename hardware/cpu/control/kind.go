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

// Kind is the class of instruction identified by its opcode and function code.
type Kind int

// List of valid Kind values.
const (
	Unsupported Kind = iota
	ADD
	AND
	SLT
	ADDI
	LUI
	ORI
	LW
	SW
	BEQ
)

// Opcodes of the supported instructions. All R-type instructions share the
// Special opcode and are distinguished by their function code.
const (
	OpSpecial = 0x00
	OpBEQ     = 0x04
	OpADDI    = 0x08
	OpORI     = 0x0d
	OpLUI     = 0x0f
	OpLW      = 0x23
	OpSW      = 0x2b
)

// Function codes of the supported R-type instructions.
const (
	FnADD = 0x20
	FnAND = 0x24
	FnSLT = 0x2a
)

func (k Kind) String() string {
	switch k {
	case ADD:
		return "ADD"
	case AND:
		return "AND"
	case SLT:
		return "SLT"
	case ADDI:
		return "ADDI"
	case LUI:
		return "LUI"
	case ORI:
		return "ORI"
	case LW:
		return "LW"
	case SW:
		return "SW"
	case BEQ:
		return "BEQ"
	}
	return "???"
}

// Classify returns the Kind of instruction for the opcode and function code.
// The function code is ignored unless the opcode is OpSpecial.
func Classify(opcode uint8, funct uint8) Kind {
	switch opcode {
	case OpSpecial:
		switch funct {
		case FnADD:
			return ADD
		case FnAND:
			return AND
		case FnSLT:
			return SLT
		}
	case OpADDI:
		return ADDI
	case OpLUI:
		return LUI
	case OpORI:
		return ORI
	case OpLW:
		return LW
	case OpSW:
		return SW
	case OpBEQ:
		return BEQ
	}
	return Unsupported
}
