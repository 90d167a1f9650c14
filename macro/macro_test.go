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

package macro_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/macro"
	"github.com/jetsetilly/singlecycle/test"
)

// commander records every command. the STOP command ends the macro and the
// FAIL command returns an error.
type commander struct {
	commands []string
}

func (cmd *commander) MacroCommand(input string) (bool, error) {
	switch input {
	case "STOP":
		return false, nil
	case "FAIL":
		return true, fmt.Errorf("failed")
	}
	cmd.commands = append(cmd.commands, input)
	return true, nil
}

func write(t *testing.T, lines ...string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.macro")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(strings.Join(lines, "\n")), 0o600))
	return fn
}

func run(t *testing.T, lines ...string) (*commander, error) {
	t.Helper()
	mcr, err := macro.NewMacro(write(t, append([]string{"singlecycle macro", "1"}, lines...)...))
	test.DemandSuccess(t, err)
	cmd := &commander{}
	return cmd, mcr.Run(cmd)
}

func TestLoops(t *testing.T) {
	cmd, err := run(t,
		"-- comment",
		"STEP",
		"DO 2 i",
		"  DO 2 j",
		"    MEM %i %j",
		"  LOOP",
		"LOOP",
		"",
		"REGS",
	)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Join(cmd.commands, ";"), "STEP;MEM 0 0;MEM 0 1;MEM 1 0;MEM 1 1;REGS")
}

func TestStop(t *testing.T) {
	cmd, err := run(t, "DO 10", "STEP", "STOP", "LOOP", "REGS")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Join(cmd.commands, ";"), "STEP")
}

func TestErrors(t *testing.T) {
	_, err := run(t, "STEP", "FAIL", "REGS")
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, macro.LineError))
	test.ExpectSuccess(t, strings.HasSuffix(err.Error(), "line 4: failed"))

	_, err = run(t, "LOOP")
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, strings.HasSuffix(err.Error(), "line 3: LOOP without a DO"))

	_, err = run(t, "DO 2", "STEP")
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, strings.HasSuffix(err.Error(), "line 3: DO without a LOOP"))

	_, err = run(t, "DO x")
	test.ExpectSuccess(t, curated.Is(err, macro.LineError))

	_, err = run(t, "MEM %k")
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, strings.HasSuffix(err.Error(), "variable k does not exist"))

	_, err = macro.NewMacro(write(t, "not a macro", "1", "STEP"))
	test.ExpectSuccess(t, curated.Is(err, macro.NotMacro))

	_, err = macro.NewMacro(filepath.Join(t.TempDir(), "missing"))
	test.ExpectFailure(t, err)
}
