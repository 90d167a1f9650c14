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

package symbols

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/singlecycle/hardware/cpu/registers"
)

// the conventional names of the registers, indexed by register number.
var registerNames = [registers.NumRegisters]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// reverse lookup of registerNames.
var registerNumbers map[string]uint8

func init() {
	registerNumbers = make(map[string]uint8, len(registerNames))
	for i, n := range registerNames {
		registerNumbers[n] = uint8(i)
	}
}

// RegisterName returns the conventional name of the register. An empty string
// is returned for an invalid register number.
func RegisterName(n uint8) string {
	if int(n) >= len(registerNames) {
		return ""
	}
	return registerNames[n]
}

// SearchRegister returns the register number referred to by the string.
func SearchRegister(s string) (uint8, bool) {
	s = strings.ToLower(s)

	// $ is an optional prefix for names and numbers
	s = strings.TrimPrefix(s, "$")

	if n, ok := registerNumbers[s]; ok {
		return n, true
	}

	// r is an optional prefix for numbers only
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "r"), 10, 8)
	if err != nil || n >= registers.NumRegisters {
		return 0, false
	}

	return uint8(n), true
}
