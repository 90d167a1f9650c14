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

package terminal

import (
	"fmt"
	"strings"
)

// Prompt specifies the prompt text.
type Prompt struct {
	// the address of the next instruction
	PC uint32

	// number of ticks committed so far
	Cycle int

	// the simulation is running and the prompt is a request for a
	// confirmation
	Confirm bool

	// the content of the prompt if Confirm is true
	Content string
}

// String returns the prompt with "standard" decoration.
func (p Prompt) String() string {
	if p.Confirm {
		return p.Content
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[ pc=%04x cycle=%d ]", p.PC, p.Cycle))
	s.WriteString(" >> ")
	return s.String()
}
