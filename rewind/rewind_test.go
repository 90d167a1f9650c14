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

package rewind_test

import (
	"testing"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/debugger/govern"
	"github.com/jetsetilly/singlecycle/hardware"
	"github.com/jetsetilly/singlecycle/hardware/cpu/control"
	"github.com/jetsetilly/singlecycle/hardware/cpu/instruction"
	"github.com/jetsetilly/singlecycle/hardware/cpu/result"
	"github.com/jetsetilly/singlecycle/rewind"
	"github.com/jetsetilly/singlecycle/test"
)

// r8 is incremented on every odd tick
var counter = []instruction.Encoded{
	instruction.EncodeI(control.OpADDI, 8, 8, 1),
	instruction.EncodeI(control.OpBEQ, 0, 0, -2),
}

func newRewind(t *testing.T, entries int) (*hardware.Machine, *rewind.Rewind) {
	t.Helper()
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.Load(counter))
	r, err := rewind.NewRewind(m, entries)
	test.DemandSuccess(t, err)
	return m, r
}

func step(t *testing.T, m *hardware.Machine, r *rewind.Rewind, n int) {
	t.Helper()
	for range n {
		_, err := m.Step()
		test.DemandSuccess(t, err)
		r.Record()
	}
}

func TestGotoTick(t *testing.T) {
	m, r := newRewind(t, 10)
	step(t, m, r, 5)
	test.ExpectEquality(t, r.Summary(), rewind.Summary{Start: 0, End: 5, Current: 5})
	test.ExpectEquality(t, m.Registers()[8], uint32(3))

	n, err := r.GotoTick(2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, m.Cycles(), 2)
	test.ExpectEquality(t, m.Registers()[8], uint32(1))

	// the history is not changed by moving around in it
	test.ExpectEquality(t, r.Summary(), rewind.Summary{Start: 0, End: 5, Current: 2})

	// out of range requests are moved to the nearest end
	n, err = r.GotoTick(100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 5)
	test.ExpectEquality(t, m.Registers()[8], uint32(3))

	n, err = r.GotoTick(-1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, m.Registers()[8], uint32(0))

	n, err = r.GotoLast()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 5)
}

func TestTruncation(t *testing.T) {
	m, r := newRewind(t, 10)
	step(t, m, r, 5)

	_, err := r.GotoTick(2)
	test.ExpectSuccess(t, err)

	// recording after moving back forgets the later entries
	step(t, m, r, 1)
	test.ExpectEquality(t, r.Summary(), rewind.Summary{Start: 0, End: 3, Current: 3})

	n, err := r.GotoLast()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)
}

func TestOverflow(t *testing.T) {
	m, r := newRewind(t, 3)
	step(t, m, r, 8)

	// only the most recent entries are kept
	test.ExpectEquality(t, r.Summary(), rewind.Summary{Start: 6, End: 8, Current: 8})

	n, err := r.GotoTick(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 6)
	test.ExpectEquality(t, m.Registers()[8], uint32(3))
}

func TestCheck(t *testing.T) {
	m, r := newRewind(t, rewind.DefaultEntries)

	err := m.Run(250, func(_ result.Tick) (govern.State, error) {
		r.Check()
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Summary(), rewind.Summary{Start: 0, End: 200, Current: 250})

	// ticks between recorded states are reached by running the machine
	n, err := r.GotoTick(151)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 151)
	test.ExpectEquality(t, m.Registers()[8], uint32(76))

	// recording a state for a tick that is already recorded replaces it
	r.Reset()
	r.Record()
	test.ExpectEquality(t, r.Summary(), rewind.Summary{Start: 151, End: 151, Current: 151})
}

func TestNewRewind(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	_, err = rewind.NewRewind(m, 1)
	test.ExpectSuccess(t, curated.Is(err, rewind.InvalidSize))
}
