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
)

// OutOfRange is returned by Read() and Write() when the address is outside of
// the provisioned data memory.
const OutOfRange = "memory: address out of range (%#08x)"

// InvalidSize is returned by NewData() when the requested size is not usable.
const InvalidSize = "memory: invalid data memory size (%d words)"

// Data is the data memory.
type Data struct {
	words []uint32
}

// NewData is the preferred method of initialisation for the Data type. The
// size argument is the number of words to provision.
func NewData(size int) (*Data, error) {
	if size <= 0 {
		return nil, curated.Errorf(InvalidSize, size)
	}
	return &Data{
		words: make([]uint32, size),
	}, nil
}

// Read the word at the address.
func (d *Data) Read(address uint32) (uint32, error) {
	if uint64(address) >= uint64(len(d.words)) {
		return 0, curated.Errorf(OutOfRange, address)
	}
	return d.words[address], nil
}

// Write the value to the address.
func (d *Data) Write(address uint32, value uint32) error {
	if uint64(address) >= uint64(len(d.words)) {
		return curated.Errorf(OutOfRange, address)
	}
	d.words[address] = value
	return nil
}

// Size returns the number of provisioned words.
func (d *Data) Size() int {
	return len(d.words)
}

// Reset all words to zero.
func (d *Data) Reset() {
	clear(d.words)
}

// Snapshot returns a copy of the data memory.
func (d *Data) Snapshot() []uint32 {
	c := make([]uint32, len(d.words))
	copy(c, d.words)
	return c
}

// Copy returns an independent instance of Data with the same content.
func (d *Data) Copy() *Data {
	return &Data{words: d.Snapshot()}
}

// String returns a hex dump of the data memory. Runs of rows that contain only
// zero are skipped.
func (d *Data) String() string {
	const perRow = 8

	s := strings.Builder{}
	s.WriteString("       -0       -1       -2       -3       -4       -5       -6       -7\n")
	skipped := false
	for y := 0; y < len(d.words); y += perRow {
		row := d.words[y:min(y+perRow, len(d.words))]

		zero := true
		for _, w := range row {
			if w != 0 {
				zero = false
				break
			}
		}
		if zero && y > 0 {
			if !skipped {
				s.WriteString("...\n")
			}
			skipped = true
			continue
		}
		skipped = false

		s.WriteString(fmt.Sprintf("%04x |", y))
		for _, w := range row {
			s.WriteString(fmt.Sprintf(" %08x", w))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}
