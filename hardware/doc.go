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

// Package hardware is the base package for the simulation. It and its
// sub-packages contain everything required for a headless simulation of the
// single-cycle datapath.
//
// The Machine type is the root of the simulation and contains references to
// the CPU state and the preferences. From here, the simulation can either be
// run for a number of ticks (with an optional callback to check for
// continuation) or it can be stepped tick by tick.
//
//	m, _ := hardware.NewMachine(nil)
//	_ = m.Load(program)
//	_ = m.Run(500, nil)
//	fmt.Println(m.Registers()[8])
package hardware
