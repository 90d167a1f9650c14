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

package colorterm

import (
	"testing"

	"github.com/jetsetilly/singlecycle/debugger/terminal/easyterm"
	"github.com/jetsetilly/singlecycle/test"
)

func TestLineEditor(t *testing.T) {
	var ed lineEditor

	for _, k := range []byte("stpe") {
		test.ExpectEquality(t, ed.key(k), keyContinue)
	}
	test.ExpectEquality(t, ed.String(), "stpe")

	test.ExpectEquality(t, ed.key(easyterm.KeyDelete), keyErase)
	test.ExpectEquality(t, ed.key(easyterm.KeyBackspace), keyErase)
	test.ExpectEquality(t, ed.key('e'), keyContinue)
	test.ExpectEquality(t, ed.key('p'), keyContinue)

	// escape sequences are ignored
	test.ExpectEquality(t, ed.key(easyterm.KeyEsc), keyContinue)
	test.ExpectEquality(t, ed.key(0x80), keyContinue)

	// EOT is only EOF when the line is empty
	test.ExpectEquality(t, ed.key(easyterm.KeyEOT), keyBell)

	test.ExpectEquality(t, ed.key(easyterm.KeyCR), keyDone)
	test.ExpectEquality(t, ed.String(), "step")

	test.ExpectEquality(t, ed.key(easyterm.KeyClearLine), keyClear)
	test.ExpectEquality(t, ed.String(), "")
	test.ExpectEquality(t, ed.key(easyterm.KeyBackspace), keyBell)
	test.ExpectEquality(t, ed.key(easyterm.KeyEOT), keyEOF)

	ed.key('x')
	test.ExpectEquality(t, ed.key(easyterm.KeyInterrupt), keyInterrupt)
	test.ExpectEquality(t, ed.String(), "")
	test.ExpectEquality(t, ed.key(easyterm.KeySuspend), keySuspend)
}
