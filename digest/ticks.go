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

	"github.com/jetsetilly/singlecycle/hardware/cpu/result"
)

// Ticks produces a chained hash of every tick.
type Ticks struct {
	digest [sha1.Size]byte
	buffer []byte
	count  int
}

// Hash implements digest.Digest interface
func (dig Ticks) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *Ticks) ResetDigest() {
	clear(dig.digest[:])
	dig.count = 0
}

// Count returns the number of ticks in the digest.
func (dig Ticks) Count() int {
	return dig.count
}

// Tick adds the tick to the digest.
func (dig *Ticks) Tick(t result.Tick) {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the buffer
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)
	for _, sig := range t.NamedSignals() {
		dig.buffer = binary.LittleEndian.AppendUint32(dig.buffer, sig.Value)
	}
	dig.digest = sha1.Sum(dig.buffer)
	dig.count++
}
