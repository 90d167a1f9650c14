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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/hardware/cpu/instruction"
)

// Sentinal error patterns for the instruction store.
const (
	InvalidWidth   = "memory: invalid instruction store width (%d bits)"
	ProgramTooLong = "memory: program too long for instruction store (%d words, capacity %d)"
)

// Limits for the address width of the instruction store.
const (
	MinInstructionBits = 1
	MaxInstructionBits = 20
)

// Instructions is the instruction store.
type Instructions struct {
	words []instruction.Encoded
	mask  uint32
	bits  int
}

// NewInstructions is the preferred method of initialisation for the
// Instructions type. The bits argument is the width of the address and so the
// store will contain 2^bits words.
func NewInstructions(bits int) (*Instructions, error) {
	if bits < MinInstructionBits || bits > MaxInstructionBits {
		return nil, curated.Errorf(InvalidWidth, bits)
	}

	return &Instructions{
		words: make([]instruction.Encoded, 1<<bits),
		mask:  (1 << bits) - 1,
		bits:  bits,
	}, nil
}

// Load program into the instruction store, starting at address zero. Any
// previous content is cleared.
func (is *Instructions) Load(program []instruction.Encoded) error {
	if len(program) > len(is.words) {
		return curated.Errorf(ProgramTooLong, len(program), len(is.words))
	}
	clear(is.words)
	copy(is.words, program)
	return nil
}

// Fetch the instruction at the address. The address wraps around at the size
// of the store.
func (is *Instructions) Fetch(address uint32) instruction.Encoded {
	return is.words[address&is.mask]
}

// Bits returns the width of the address.
func (is *Instructions) Bits() int {
	return is.bits
}

// Size returns the number of words in the store.
func (is *Instructions) Size() int {
	return len(is.words)
}

func (is *Instructions) String() string {
	s := strings.Builder{}
	for i, w := range is.words {
		s.WriteString(fmt.Sprintf("%04x: %s\n", i, w))
	}
	return s.String()
}
