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

package hardware

import (
	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/hardware/cpu"
)

// Snapshot the state of the machine. The trace is not part of the snapshot.
func (m *Machine) Snapshot() *cpu.State {
	return m.State.Snapshot()
}

// Plumb a previously snapshotted state into the machine. The state must have
// been created by the same machine, or by a machine with the same program.
func (m *Machine) Plumb(state *cpu.State) error {
	if state == nil {
		return curated.Errorf("machine: cannot plumb in a nil state")
	}
	if state.Program() != m.State.Program() {
		return curated.Errorf("machine: cannot plumb in a state with a different program")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// machine to change the state the caller is holding on to
	m.State = state.Snapshot()
	m.State.Log = m

	return nil
}
