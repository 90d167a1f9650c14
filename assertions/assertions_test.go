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

package assertions_test

import (
	"testing"

	"github.com/jetsetilly/singlecycle/assertions"
	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/test"
)

type target struct {
	regs [32]uint32
	mem  []uint32
	pc   uint32
}

func (t target) Registers() [32]uint32 { return t.regs }
func (t target) Memory() []uint32      { return t.mem }
func (t target) PC() uint32            { return t.pc }

func TestParse(t *testing.T) {
	a, err := assertions.Parse("r8::10; m0::0x0a; PC::4;; $31::-1")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(a), 4)

	test.ExpectEquality(t, a[0], assertions.Assertion{Area: assertions.Register, Address: 8, Value: 10})
	test.ExpectEquality(t, a[1], assertions.Assertion{Area: assertions.Memory, Address: 0, Value: 10})
	test.ExpectEquality(t, a[2], assertions.Assertion{Area: assertions.ProgramCounter, Value: 4})
	test.ExpectEquality(t, a[3], assertions.Assertion{Area: assertions.Register, Address: 31, Value: 0xffffffff})

	test.ExpectEquality(t, a[0].String(), "r8::10")
	test.ExpectEquality(t, a[1].String(), "m0::10")

	// conventional register names
	a, err = assertions.Parse("t0::5; $sp::1")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(a), 2)
	test.ExpectEquality(t, a[0].Address, uint32(8))
	test.ExpectEquality(t, a[1].Address, uint32(29))
	test.ExpectEquality(t, a[0].String(), "r8::5")

	a, err = assertions.Parse("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(a), 0)
}

func TestParseErrors(t *testing.T) {
	_, err := assertions.Parse("r8=10")
	test.ExpectSuccess(t, curated.Is(err, assertions.Malformed))

	_, err = assertions.Parse("r32::1")
	test.ExpectSuccess(t, curated.Is(err, assertions.BadLocation))

	_, err = assertions.Parse("x1::1")
	test.ExpectSuccess(t, curated.Is(err, assertions.BadLocation))

	_, err = assertions.Parse("mfoo::1")
	test.ExpectSuccess(t, curated.Is(err, assertions.BadLocation))

	_, err = assertions.Parse("r1::ten")
	test.ExpectSuccess(t, curated.Is(err, assertions.BadValue))

	_, err = assertions.Parse("r1::0x100000000")
	test.ExpectSuccess(t, curated.Is(err, assertions.BadValue))
}

func TestCheck(t *testing.T) {
	tg := target{mem: make([]uint32, 4), pc: 4}
	tg.regs[8] = 10
	tg.mem[0] = 10

	a, err := assertions.Parse("r8::10; m0::10; pc::4")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, assertions.Check(tg, a))

	// every failure is listed
	a, err = assertions.Parse("r8::11; m0::10; m4::0; pc::3")
	test.DemandSuccess(t, err)
	err = assertions.Check(tg, a)
	test.ExpectSuccess(t, curated.Is(err, assertions.Failed))
	test.ExpectEquality(t, err.Error(), "assertions: 3 of 4 failed: r8 is 10 not 11, m4 is out of range, pc is 4 not 3")
}
