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

import "fmt"

// ansi colours
const (
	black = iota
	red
	green
	yellow
	blue
	magenta
	cyan
	white
)

// ansi attributes
const (
	normal = 0
	bold   = 1
	dim    = 2
)

func ansiPen(colour int, attribute int) string {
	return fmt.Sprintf("\033[%d;3%dm", attribute, colour)
}

var (
	penError      = ansiPen(red, bold)
	penFeedback   = ansiPen(white, dim)
	penHelp       = ansiPen(white, dim)
	penInstrument = ansiPen(cyan, normal)
	penInfo       = ansiPen(yellow, normal)
	penLog        = ansiPen(magenta, dim)
	penPrompt     = ansiPen(white, bold)
	penOff        = "\033[0m"
)
