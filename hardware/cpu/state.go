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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/singlecycle/hardware/cpu/registers"
	"github.com/jetsetilly/singlecycle/hardware/cpu/result"
	"github.com/jetsetilly/singlecycle/hardware/memory"
	"github.com/jetsetilly/singlecycle/logger"
)

// State is the committed state of the datapath between ticks.
type State struct {
	PC        registers.ProgramCounter
	Registers registers.File
	Memory    *memory.Data

	// number of ticks committed since the last reset
	Cycles int

	program *memory.Instructions

	// permission for log entries made during evaluation. nil means no log
	// entries will be made
	Log logger.Permission
}

// NewState is the preferred method of initialisation for the State type. The
// width of the program counter matches the width of the instruction store.
func NewState(program *memory.Instructions, data *memory.Data) *State {
	return &State{
		PC:      registers.NewProgramCounter(program.Bits()),
		Memory:  data,
		program: program,
	}
}

// Program returns the instruction store used by the State.
func (st *State) Program() *memory.Instructions {
	return st.program
}

// Reset the PC, the registers and the data memory to zero.
func (st *State) Reset() {
	st.PC.Load(0)
	st.Registers.Reset()
	st.Memory.Reset()
	st.Cycles = 0
}

// Snapshot creates a copy of the State. The data memory is copied so the
// snapshot is unaffected by further ticks of the original. The instruction
// store is shared.
func (st *State) Snapshot() *State {
	n := *st
	n.Memory = st.Memory.Copy()
	return &n
}

func (st *State) String() string {
	return fmt.Sprintf("%s=%s cycles=%d", st.PC.Label(), st.PC, st.Cycles)
}

// Commit the writes of the tick to the state. The register file, the data
// memory and the program counter are updated together.
//
// The tick should be the result of calling Evaluate() on the same State,
// without any intervening changes.
func (st *State) Commit(t result.Tick) error {
	if t.Signals.MemWrite {
		if err := st.Memory.Write(t.ALUOut, t.RtValue); err != nil {
			return err
		}
	}

	if t.Signals.RegWrite {
		st.Registers.Write(t.WriteRegister, t.WriteBack)
	}

	st.PC.Load(t.NextPC)
	st.Cycles++

	return nil
}

// Step evaluates and commits a single tick. Nothing is committed if
// evaluation fails.
func (st *State) Step() (result.Tick, error) {
	t, err := Evaluate(st)
	if err != nil {
		return t, err
	}
	return t, st.Commit(t)
}
