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

// Package macro runs a script of debugger commands. A macro file starts with
// a two line header. The first line identifies the file as a macro and the
// second line is the version of the macro format, currently ignored.
//
//	singlecycle macro
//	1
//
// Every other line is passed to the Commander, except for comment lines, which
// start with "--", and the loop instructions. The macro language has no flow
// control other than basic loops:
//
//	DO loopCt [loopName]
//		...
//	LOOP
//
// Loops can be nested. When a loop is named, the current value of the counter
// can be used in a command by prefixing the name with %. Counters start at
// zero.
//
//	DO 4 i
//		MEM %i
//	LOOP
package macro
