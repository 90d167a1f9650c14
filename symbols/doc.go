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

// Package symbols maps the conventional MIPS register names to register
// numbers and back again.
//
// A register can be referred to by number, with or without an R or $ prefix,
// or by its conventional name, with or without a $ prefix. Case is not
// significant. For example, all of the following refer to register 8:
//
//	r8 R8 $8 t0 $t0 T0
package symbols
