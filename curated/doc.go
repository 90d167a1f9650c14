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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function. The pattern passed to Errorf() identifies the error and
// is used by the Is() and Has() functions.
//
//	e := curated.Errorf(memory.OutOfRange, address)
//
//	if curated.Is(e, memory.OutOfRange) {
//		fmt.Println("true")
//	}
//
// Has() checks whether the pattern occurs anywhere in the error chain. A chain
// is created by passing a curated error as one of the values to Errorf().
//
//	f := curated.Errorf("cpu: %v", e)
//
//	curated.Has(f, memory.OutOfRange) // true
//	curated.Is(f, memory.OutOfRange)  // false
//
// The Error() implementation normalises the message so that adjacent duplicate
// parts of the chain are removed. Parts are separated by the sub-string ": ".
// So wrapping "memory: address out of range" with "memory: %v" produces:
//
//	memory: address out of range
//
// and not:
//
//	memory: memory: address out of range
//
// Sentinal patterns should be stored as exported const strings in the package
// that produces them. For example, memory.OutOfRange.
package curated
