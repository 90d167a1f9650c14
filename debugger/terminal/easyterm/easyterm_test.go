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

package easyterm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/singlecycle/debugger/terminal/easyterm"
	"github.com/jetsetilly/singlecycle/test"
)

func TestNotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "notaterminal"))
	test.DemandSuccess(t, err)
	defer f.Close()

	test.ExpectFailure(t, easyterm.IsTerminal(f))
	test.ExpectFailure(t, easyterm.IsTerminal(nil))

	var pt easyterm.Terminal
	test.ExpectFailure(t, pt.Initialise(f, f))
	test.ExpectFailure(t, pt.Initialise(nil, f))
	test.ExpectFailure(t, pt.Initialise(f, nil))
}
