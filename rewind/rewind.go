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

package rewind

import (
	"fmt"
	"sort"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/hardware"
	"github.com/jetsetilly/singlecycle/hardware/cpu"
)

// InvalidSize is returned by NewRewind() when the number of entries is too
// small to be useful.
const InvalidSize = "rewind: invalid number of entries (%d)"

// DefaultEntries is a reasonable number of entries for NewRewind().
const DefaultEntries = 500

// the interval in ticks between states recorded by Check().
const frequency = 100

// there is an overhead of one entry to distinguish a full history from an
// empty one.
const overhead = 1

// Rewind contains a history of machine states.
type Rewind struct {
	machine *hardware.Machine

	// circular array of snapshotted states
	entries []*cpu.State
	start   int
	end     int

	// the entry most recently recorded or plumbed in
	curr int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The current state of the machine is the first entry in the history.
func NewRewind(m *hardware.Machine, entries int) (*Rewind, error) {
	if entries < 2 {
		return nil, curated.Errorf(InvalidSize, entries)
	}

	r := &Rewind{
		machine: m,
		entries: make([]*cpu.State, entries+overhead),
	}
	r.Reset()

	return r, nil
}

// Reset removes all entries and records the current state of the machine.
// Should be called whenever the machine is reset.
func (r *Rewind) Reset() {
	clear(r.entries)
	r.entries[0] = r.machine.Snapshot()
	r.start = 0
	r.curr = 0
	r.end = 1
}

func (r *Rewind) next(idx int) int {
	idx++
	if idx >= len(r.entries) {
		return 0
	}
	return idx
}

// number of entries in the history.
func (r *Rewind) len() int {
	n := r.end - r.start
	if n < 0 {
		n += len(r.entries)
	}
	return n
}

// the physical index of the i'th entry from the start of the history.
func (r *Rewind) physical(i int) int {
	return (r.start + i) % len(r.entries)
}

// Record a snapshot of the machine after the current position.
func (r *Rewind) Record() {
	s := r.machine.Snapshot()

	// replace rather than append if the current entry is for the same tick
	if r.entries[r.curr].Cycles == s.Cycles {
		r.entries[r.curr] = s
		r.end = r.next(r.curr)
		return
	}

	r.curr = r.next(r.curr)
	r.entries[r.curr] = s
	r.end = r.next(r.curr)

	// push start index along
	if r.end == r.start {
		r.start = r.next(r.start)
	}
}

// Check records a snapshot if the number of ticks is a multiple of the
// recording frequency.
func (r *Rewind) Check() {
	if r.machine.Cycles()%frequency == 0 {
		r.Record()
	}
}

// Summary of the history. Values are tick numbers.
type Summary struct {
	Start   int
	End     int
	Current int
}

func (s Summary) String() string {
	return fmt.Sprintf("ticks %d to %d (current %d)", s.Start, s.End, s.Current)
}

// Summary returns the range of recorded ticks and the current tick of the
// machine.
func (r *Rewind) Summary() Summary {
	return Summary{
		Start:   r.entries[r.start].Cycles,
		End:     r.entries[r.physical(r.len()-1)].Cycles,
		Current: r.machine.Cycles(),
	}
}

// plumb the entry into the machine and run forward to the tick.
func (r *Rewind) plumb(idx int, tick int) (int, error) {
	r.curr = idx

	s := r.entries[idx]
	if err := r.machine.Plumb(s); err != nil {
		return 0, curated.Errorf("rewind: %v", err)
	}

	if tick > s.Cycles {
		if err := r.machine.Run(tick-s.Cycles, nil); err != nil {
			return r.machine.Cycles(), curated.Errorf("rewind: %v", err)
		}
	}

	return r.machine.Cycles(), nil
}

// GotoTick moves the machine to the tick. Requests for a tick before the
// start of the history are moved to the start and requests for a tick after
// the end of the history are moved to the end. Returns the tick the machine
// is at.
func (r *Rewind) GotoTick(tick int) (int, error) {
	n := r.len()

	// the first entry after the tick
	i := sort.Search(n, func(i int) bool {
		return r.entries[r.physical(i)].Cycles > tick
	})

	if i == 0 {
		return r.plumb(r.start, 0)
	}

	i--
	idx := r.physical(i)

	// do not run beyond the last recorded tick
	if i == n-1 {
		return r.plumb(idx, r.entries[idx].Cycles)
	}

	return r.plumb(idx, tick)
}

// GotoLast moves the machine to the last entry in the history.
func (r *Rewind) GotoLast() (int, error) {
	idx := r.physical(r.len() - 1)
	return r.plumb(idx, r.entries[idx].Cycles)
}
