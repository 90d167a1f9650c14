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

// Package rewind keeps a history of machine states so that the simulation can
// be returned to an earlier tick.
//
// States are recorded with Record() or Check(). Check() only records a state
// at regular intervals and is suitable for calling on every tick of a long
// run. GotoTick() plumbs in the nearest recorded state before the requested
// tick and then runs the machine forward to the exact tick.
//
// Recording a state when the current position is not the end of the history
// causes the later states to be forgotten.
package rewind
