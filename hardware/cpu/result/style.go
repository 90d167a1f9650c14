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

package result

// Style specifies the elements to include in the output of GetString().
type Style int

// list of valid style flags
const (
	// the cycle number and the program counter
	StyleFlagAddress Style = 0x01 << iota

	// the instruction mnemonic and its register operands
	StyleFlagMnemonic

	// the packed control word
	StyleFlagControl

	// the ALU inputs and output
	StyleFlagALU

	// the writes that take place at the end of the tick
	StyleFlagCommit
)

// compound styles
const (
	StyleBrief = StyleFlagAddress | StyleFlagMnemonic
	StyleFull  = StyleFlagAddress | StyleFlagMnemonic | StyleFlagControl | StyleFlagALU | StyleFlagCommit
)

// Has tests to see if style has the supplied flag in its definition
func (style Style) Has(flag Style) bool {
	return style&flag == flag
}
