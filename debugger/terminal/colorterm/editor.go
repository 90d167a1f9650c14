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
	"github.com/jetsetilly/singlecycle/debugger/terminal/easyterm"
)

// lineEditor collects key presses into a line of input.
type lineEditor struct {
	buffer []byte
}

// result of a key press
type keyResult int

const (
	keyContinue keyResult = iota
	keyDone
	keyInterrupt
	keyEOF
	keySuspend
	keyBell
	keyErase
	keyClear
)

// key processes a single key press. Printable characters are added to the
// buffer.
func (ed *lineEditor) key(k byte) keyResult {
	switch k {
	case easyterm.KeyCR, easyterm.KeyLF:
		return keyDone
	case easyterm.KeyInterrupt:
		ed.buffer = ed.buffer[:0]
		return keyInterrupt
	case easyterm.KeyEOT:
		if len(ed.buffer) == 0 {
			return keyEOF
		}
		return keyBell
	case easyterm.KeySuspend:
		return keySuspend
	case easyterm.KeyBackspace, easyterm.KeyDelete:
		if len(ed.buffer) == 0 {
			return keyBell
		}
		ed.buffer = ed.buffer[:len(ed.buffer)-1]
		return keyErase
	case easyterm.KeyClearLine:
		ed.buffer = ed.buffer[:0]
		return keyClear
	}

	// ignore control codes and escape sequences
	if k < ' ' || k > '~' {
		return keyContinue
	}

	ed.buffer = append(ed.buffer, k)
	return keyContinue
}

func (ed *lineEditor) String() string {
	return string(ed.buffer)
}

func (ed *lineEditor) reset() {
	ed.buffer = ed.buffer[:0]
}
