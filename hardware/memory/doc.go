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

// Package memory implements the two storage areas of the datapath: the
// read-only instruction store and the data memory.
//
// Both areas are word addressed. Address N refers to the Nth 32 bit word, not
// the Nth byte.
//
// The instruction store has a power-of-two size and is addressed by the
// program counter. Addresses wrap around at the size of the store so a fetch
// can never fail. Locations that were not loaded by the program contain zero.
//
// The data memory is provisioned to a fixed number of words. Accesses outside
// of the provisioned area fail with the OutOfRange error.
package memory
