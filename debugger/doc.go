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

// Package debugger implements an interactive stepper for the simulator. The
// debugger reads commands from a terminal.Terminal and reports the result of
// each command to the same terminal.
//
// The machine can be stepped a tick at a time, or run until a breakpoint is
// met. Every signal of the most recent tick can be inspected, as can the
// register file and the data memory. Machine states are recorded by the
// rewind package as the machine is stepped, so the REWIND command can return
// the machine to an earlier tick.
//
// The debugger is started with the Start() function:
//
//	m, _ := hardware.NewMachine(nil)
//	_ = m.Load(program)
//	dbg, _ := debugger.NewDebugger(m, plainterm.NewPlainTerminal(os.Stdin, os.Stdout))
//	_ = dbg.Start()
//
// Type HELP at the debugger prompt for a list of commands.
package debugger
