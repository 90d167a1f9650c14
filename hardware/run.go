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
	"github.com/jetsetilly/singlecycle/debugger/govern"
	"github.com/jetsetilly/singlecycle/hardware/cpu/result"
)

// Sentinal error patterns for the Run() function.
const (
	UnsupportedState = "machine: unsupported simulation state (%s) in Run() function"
	UnboundedRun     = "machine: cannot run for an unlimited number of ticks without a continue check"
)

// Run the simulation for the specified number of ticks. If the number of ticks
// is zero then the simulation runs until the continue check returns
// govern.Ending.
//
// The continueCheck() function is called after every committed tick with the
// tick that was committed. It can be nil. While the check returns govern.Paused
// it is called repeatedly with the most recent tick and no more ticks are
// evaluated.
func (m *Machine) Run(cycles int, continueCheck func(result.Tick) (govern.State, error)) error {
	if continueCheck == nil {
		if cycles <= 0 {
			return curated.Errorf(UnboundedRun)
		}
		continueCheck = func(_ result.Tick) (govern.State, error) { return govern.Running, nil }
	}

	var t result.Tick
	var err error
	var count int

	state := govern.Running

	for state != govern.Ending && (cycles <= 0 || count < cycles) {
		if state.Continues() {
			t, err = m.Step()
			if err != nil {
				return err
			}
			count++
		} else if state != govern.Paused {
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck(t)
		if err != nil {
			return err
		}
	}

	return nil
}
