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

package easyterm

// List of ASCII key codes used by the line editor in the colorterm package.
const (
	KeyInterrupt = 3
	KeyEOT       = 4
	KeyBell      = 7
	KeyBackspace = 8
	KeyTab       = 9
	KeyLF        = 10
	KeyCR        = 13
	KeyClearLine = 21
	KeySuspend   = 26
	KeyEsc       = 27
	KeyDelete    = 127
)
