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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/singlecycle/assertions"
)

// State produces a hash of the committed state of the machine.
type State struct {
	digest [sha1.Size]byte
}

// Hash implements digest.Digest interface
func (dig State) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *State) ResetDigest() {
	clear(dig.digest[:])
}

// Update the digest with the state of the target. The target is any type that
// can be used for end-of-run assertions.
func (dig *State) Update(target assertions.Target) {
	regs := target.Registers()
	mem := target.Memory()

	// the previous digest, the program counter, the register file and the
	// data memory. all values are little-endian
	b := make([]byte, 0, len(dig.digest)+4*(1+len(regs)+len(mem)))
	b = append(b, dig.digest[:]...)
	b = binary.LittleEndian.AppendUint32(b, target.PC())
	for _, v := range regs {
		b = binary.LittleEndian.AppendUint32(b, v)
	}
	for _, v := range mem {
		b = binary.LittleEndian.AppendUint32(b, v)
	}

	dig.digest = sha1.Sum(b)
}
