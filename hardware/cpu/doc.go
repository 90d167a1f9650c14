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

// Package cpu composes the components of the single-cycle datapath into a
// repeatable clock tick.
//
// The State type holds everything that persists between ticks: the program
// counter, the register file and the data memory. It also refers to the
// instruction store, which is never written to once a simulation has begun.
//
// A tick happens in two phases. Evaluate() computes the value of every signal
// in the datapath from the state as it is at the start of the tick. It does
// not change the state. Commit() then applies the register write, the memory
// write and the new program counter in one go. Because nothing is written
// until Commit(), every read during Evaluate() sees the state from the end of
// the previous tick. Step() performs both phases.
//
//	st := cpu.NewState(program, data)
//	for range 500 {
//		if _, err := st.Step(); err != nil {
//			return err
//		}
//	}
//
// Evaluate() fails only when a memory access is outside of the provisioned
// data memory. In that case Step() does not commit anything.
//
// State values are independent of each other. Many simulations can run
// concurrently provided each State is used by only one goroutine at a time.
// The instruction store can be shared.
package cpu
