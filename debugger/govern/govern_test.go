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

package govern_test

import (
	"testing"

	"github.com/jetsetilly/singlecycle/debugger/govern"
	"github.com/jetsetilly/singlecycle/test"
)

func TestState(t *testing.T) {
	test.ExpectSuccess(t, govern.Running.Continues())
	test.ExpectSuccess(t, govern.Stepping.Continues())
	test.ExpectFailure(t, govern.Paused.Continues())
	test.ExpectFailure(t, govern.Ending.Continues())
	test.ExpectFailure(t, govern.Initialising.Continues())

	test.ExpectEquality(t, govern.Ending.String(), "Ending")
	test.ExpectEquality(t, govern.State(99).String(), "")
}
