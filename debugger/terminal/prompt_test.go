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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/singlecycle/debugger/terminal"
	"github.com/jetsetilly/singlecycle/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{PC: 4, Cycle: 12}
	test.ExpectEquality(t, p.String(), "[ pc=0004 cycle=12 ] >> ")

	p = terminal.Prompt{Confirm: true, Content: "quit? "}
	test.ExpectEquality(t, p.String(), "quit? ")
}
