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
	"github.com/jetsetilly/singlecycle/hardware/cpu/instruction"
	"github.com/jetsetilly/singlecycle/hardware/cpu/result"
	"github.com/jetsetilly/singlecycle/hardware/memory"
	"github.com/jetsetilly/singlecycle/hardware/preferences"
	"github.com/jetsetilly/singlecycle/logger"
)

// Sentinal error patterns for the Machine type.
const (
	AlreadyStarted = "machine: cannot load a program once ticks have started"
)

// Machine is the root of the simulation.
type Machine struct {
	Prefs *preferences.Preferences

	// the committed state of the datapath
	State *cpu.State

	// every tick since the last reset is kept if tracing is enabled
	tracing bool
	trace   []result.Tick
}

// NewMachine creates a new Machine with empty instruction and data memories.
// The sizes of the memories are taken from the preferences. If prefs is nil
// then a new instance of the preferences is created.
func NewMachine(prefs *preferences.Preferences) (*Machine, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf("machine: %v", err)
		}
	}

	m := &Machine{
		Prefs: prefs,
	}

	program, err := memory.NewInstructions(prefs.InstructionBits.Get().(int))
	if err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}

	data, err := memory.NewData(prefs.DataWords.Get().(int))
	if err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}

	m.State = cpu.NewState(program, data)
	m.State.Log = m

	return m, nil
}

// AllowLogging implements the logger.Permission interface.
func (m *Machine) AllowLogging() bool {
	return m.Prefs.Logging.Get().(bool)
}

// Load the program into the instruction store. A program can only be loaded
// before the first tick or after a Reset().
func (m *Machine) Load(program []instruction.Encoded) error {
	if m.State.Cycles > 0 {
		return curated.Errorf(AlreadyStarted)
	}

	if err := m.State.Program().Load(program); err != nil {
		return curated.Errorf("machine: %v", err)
	}

	logger.Logf(m, "machine", "loaded %d instructions", len(program))

	return nil
}

// Reset the machine to its initial state. The program is not changed.
func (m *Machine) Reset() {
	m.State.Reset()
	m.trace = m.trace[:0]
}

// SetTracing turns the recording of ticks on or off. The existing trace is
// not cleared.
func (m *Machine) SetTracing(tracing bool) {
	m.tracing = tracing
}

// Trace returns every tick recorded while tracing was enabled.
func (m *Machine) Trace() []result.Tick {
	return m.trace
}

// Step the machine by a single tick. The committed tick is returned. Nothing
// is committed if there is an error.
func (m *Machine) Step() (result.Tick, error) {
	m.State.Registers.HardwiredZero = m.Prefs.HardwiredZero.Get().(bool)

	t, err := m.State.Step()
	if err != nil {
		return t, err
	}

	if m.tracing {
		m.trace = append(m.trace, t)
	}

	return t, nil
}

// PC returns the current value of the program counter.
func (m *Machine) PC() uint32 {
	return m.State.PC.Address()
}

// Cycles returns the number of ticks since the last reset.
func (m *Machine) Cycles() int {
	return m.State.Cycles
}

// Registers returns a copy of the register file.
func (m *Machine) Registers() [32]uint32 {
	return m.State.Registers.Snapshot()
}

// Memory returns a copy of the data memory.
func (m *Machine) Memory() []uint32 {
	return m.State.Memory.Snapshot()
}
