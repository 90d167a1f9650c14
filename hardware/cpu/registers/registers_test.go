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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/singlecycle/hardware/cpu/registers"
	"github.com/jetsetilly/singlecycle/test"
)

func TestFile(t *testing.T) {
	var rf registers.File

	// registers start at zero
	for i := range registers.NumRegisters {
		test.ExpectEquality(t, rf.Read(uint8(i)), uint32(0), i)
	}

	rf.Write(8, 10)
	test.ExpectEquality(t, rf.Read(8), uint32(10))

	// index is masked to five bits
	rf.Write(8+32, 20)
	test.ExpectEquality(t, rf.Read(8), uint32(20))
	test.ExpectEquality(t, rf.Read(8+64), uint32(20))

	// register zero is writable by default
	rf.Write(0, 99)
	test.ExpectEquality(t, rf.Read(0), uint32(99))

	snap := rf.Snapshot()
	test.ExpectEquality(t, snap[0], uint32(99))
	test.ExpectEquality(t, snap[8], uint32(20))

	// changing the register file doesn't change the snapshot
	rf.Write(8, 1)
	test.ExpectEquality(t, snap[8], uint32(20))

	rf.Reset()
	test.ExpectEquality(t, rf.Read(0), uint32(0))
	test.ExpectEquality(t, rf.Read(8), uint32(0))
}

func TestHardwiredZero(t *testing.T) {
	rf := registers.File{HardwiredZero: true}
	rf.Write(0, 99)
	test.ExpectEquality(t, rf.Read(0), uint32(0))
	rf.Write(1, 99)
	test.ExpectEquality(t, rf.Read(1), uint32(99))
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(4)
	test.ExpectEquality(t, pc.Address(), uint32(0))
	test.ExpectEquality(t, pc.Mask(), uint32(0x0f))

	pc.Load(15)
	test.ExpectEquality(t, pc.Address(), uint32(15))

	// value wraps at the width of the PC
	pc.Load(16)
	test.ExpectEquality(t, pc.Address(), uint32(0))
	pc.Load(0xffffffff)
	test.ExpectEquality(t, pc.Address(), uint32(15))

	pc = registers.NewProgramCounter(32)
	test.ExpectEquality(t, pc.Mask(), uint32(0xffffffff))

	pc = registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Mask(), uint32(0x01))
}
