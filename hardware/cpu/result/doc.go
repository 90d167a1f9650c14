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

// Package result records the outcome of a single clock tick of the datapath.
// The Tick type holds the value of every named signal in the datapath for one
// tick. It is produced by cpu.Evaluate() and consumed by cpu.State.Commit().
//
// The Tick type can also be used to produce a trace of a simulation, either
// as a single line per tick with GetString(), or as a table of every named
// signal with the Columnise() function.
package result
