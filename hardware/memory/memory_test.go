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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/hardware/cpu/instruction"
	"github.com/jetsetilly/singlecycle/hardware/memory"
	"github.com/jetsetilly/singlecycle/test"
)

func TestInstructions(t *testing.T) {
	is, err := memory.NewInstructions(4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, is.Size(), 16)
	test.ExpectEquality(t, is.Bits(), 4)

	err = is.Load([]instruction.Encoded{0x20080005, 0x20090005})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, is.Fetch(0), instruction.Encoded(0x20080005))
	test.ExpectEquality(t, is.Fetch(1), instruction.Encoded(0x20090005))

	// unloaded locations are zero
	test.ExpectEquality(t, is.Fetch(2), instruction.Encoded(0))

	// address wraps around
	test.ExpectEquality(t, is.Fetch(16), instruction.Encoded(0x20080005))
	test.ExpectEquality(t, is.Fetch(0xffffffff), instruction.Encoded(0))

	// loading a new program clears the old one
	err = is.Load([]instruction.Encoded{0x01095020})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, is.Fetch(1), instruction.Encoded(0))

	// program is too long
	err = is.Load(make([]instruction.Encoded, 17))
	test.ExpectSuccess(t, curated.Is(err, memory.ProgramTooLong))
}

func TestInstructionsWidth(t *testing.T) {
	_, err := memory.NewInstructions(0)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidWidth))
	_, err = memory.NewInstructions(memory.MaxInstructionBits + 1)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidWidth))
	_, err = memory.NewInstructions(memory.MaxInstructionBits)
	test.ExpectSuccess(t, err)
}

func TestData(t *testing.T) {
	d, err := memory.NewData(16)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.Size(), 16)

	v, err := d.Read(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0))

	test.ExpectSuccess(t, d.Write(15, 0xdeadbeef))
	v, err = d.Read(15)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xdeadbeef))

	// out of range
	_, err = d.Read(16)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))
	err = d.Write(0xffffffff, 1)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))
	test.ExpectEquality(t, err.Error(), "memory: address out of range (0xffffffff)")

	// copies are independent
	c := d.Copy()
	test.ExpectSuccess(t, d.Write(15, 0))
	v, _ = c.Read(15)
	test.ExpectEquality(t, v, uint32(0xdeadbeef))

	snap := d.Snapshot()
	test.ExpectEquality(t, len(snap), 16)

	d.Reset()
	v, _ = d.Read(15)
	test.ExpectEquality(t, v, uint32(0))

	_, err = memory.NewData(0)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidSize))
}

func TestDataString(t *testing.T) {
	d, err := memory.NewData(32)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, d.Write(0, 10))
	test.ExpectSuccess(t, d.Write(25, 0xff))

	expected := "       -0       -1       -2       -3       -4       -5       -6       -7\n" +
		"0000 | 0000000a 00000000 00000000 00000000 00000000 00000000 00000000 00000000\n" +
		"...\n" +
		"0018 | 00000000 000000ff 00000000 00000000 00000000 00000000 00000000 00000000"
	test.ExpectEquality(t, d.String(), expected)
}
