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

package debugger_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/debugger"
	"github.com/jetsetilly/singlecycle/debugger/govern"
	"github.com/jetsetilly/singlecycle/debugger/terminal"
	"github.com/jetsetilly/singlecycle/hardware"
	"github.com/jetsetilly/singlecycle/hardware/cpu/control"
	"github.com/jetsetilly/singlecycle/hardware/cpu/instruction"
	"github.com/jetsetilly/singlecycle/test"
)

// mockTerm implements the terminal.Terminal interface with a fixed list of
// input lines. all output is recorded.
type mockTerm struct {
	input  []string
	output []string
	errors []string

	// the input line "^C" is returned as a user interrupt
	interactive bool
	prompts     []string
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) IsInteractive() bool {
	return trm.interactive
}

func (trm *mockTerm) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleEcho:
	case terminal.StyleError:
		trm.errors = append(trm.errors, s)
	default:
		trm.output = append(trm.output, s)
	}
}

func (trm *mockTerm) TermRead(prompt terminal.Prompt) (string, error) {
	trm.prompts = append(trm.prompts, prompt.String())
	if len(trm.input) == 0 {
		return "", io.EOF
	}
	s := trm.input[0]
	trm.input = trm.input[1:]
	if s == "^C" {
		return "", curated.Errorf(terminal.UserInterrupt)
	}
	return s, nil
}

// contains returns true if any line of output contains the string.
func (trm *mockTerm) contains(s string) bool {
	for _, o := range trm.output {
		if strings.Contains(o, s) {
			return true
		}
	}
	return false
}

var sample = []instruction.Encoded{
	instruction.EncodeI(control.OpADDI, 0, 9, 3),
	instruction.EncodeI(control.OpADDI, 0, 10, 7),
	instruction.EncodeR(control.OpSpecial, 9, 10, 8, 0, control.FnADD),
	instruction.EncodeI(control.OpSW, 0, 8, 0),
}

func session(t *testing.T, program []instruction.Encoded, input ...string) (*hardware.Machine, *mockTerm) {
	t.Helper()

	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.Load(program))

	trm := &mockTerm{input: input}
	dbg, err := debugger.NewDebugger(m, trm)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start())
	test.ExpectEquality(t, dbg.State(), govern.Ending)

	return m, trm
}

func TestStep(t *testing.T) {
	m, trm := session(t, sample,
		"LAST",
		"step",
		"STEP 3",
		"REGS",
		"MEM",
		"mem 0 2",
		"LAST",
		"LAST SIGNALS",
		"QUIT",
		"STEP",
	)

	test.ExpectEquality(t, len(trm.errors), 0)
	test.ExpectEquality(t, m.Cycles(), 4)

	test.ExpectSuccess(t, trm.contains("no ticks yet"))
	test.ExpectSuccess(t, trm.contains("r9<-00000003"))
	test.ExpectSuccess(t, trm.contains("r8<-0000000a"))
	test.ExpectSuccess(t, trm.contains("m[00000000]<-0000000a"))
	test.ExpectSuccess(t, trm.contains("$8/t0     0000000a 10"))
	test.ExpectSuccess(t, trm.contains("m[0] 0000000a 10\nm[1] 00000000 0"))
	test.ExpectSuccess(t, trm.contains("control_signals  030"))
	test.ExpectSuccess(t, trm.contains("next_pc          00000004"))
}

func TestBreakpoints(t *testing.T) {
	m, trm := session(t, sample,
		"BREAK R8 10",
		"BREAK PC",
		"BREAK T0 0xa",
		"LIST",
		"RUN",
		"DROP 1",
		"LIST",
		"BREAK M0 10",
		"RUN 100",
		"CLEAR",
		"LIST",
		"BREAK X1 2",
		"DROP 9",
	)

	test.ExpectSuccess(t, trm.contains("breakpoint added (R8->0xa)"))
	test.ExpectSuccess(t, trm.contains(" 0: R8->0xa\n 1: PC->0x0"))

	// PC breakpoint is already met so RUN stops on the R8 breakpoint
	test.ExpectSuccess(t, trm.contains("break on R8->0xa"))
	test.ExpectSuccess(t, trm.contains("ran for 3 ticks"))
	test.ExpectSuccess(t, trm.contains("breakpoint #1 dropped"))

	// memory breakpoint stops after the store
	test.ExpectSuccess(t, trm.contains("break on M0->0xa"))
	test.ExpectSuccess(t, trm.contains("ran for 1 ticks"))
	test.ExpectEquality(t, m.Cycles(), 4)

	test.ExpectSuccess(t, trm.contains("no breakpoints"))

	// duplicate breakpoint, unknown target and bad drop
	test.DemandEquality(t, len(trm.errors), 3)
	test.ExpectEquality(t, trm.errors[0], "break: already exists (R8->0xa)")
	test.ExpectEquality(t, trm.errors[1], "break: unrecognised target (X1)")
	test.ExpectEquality(t, trm.errors[2], "break: no breakpoint #9")
}

func TestRunLimit(t *testing.T) {
	m, trm := session(t, sample, "RUN 500", "DIGEST", "RESET", "DIGEST", "RUN 500", "DIGEST")
	test.ExpectEquality(t, m.Registers()[8], uint32(10))
	test.ExpectEquality(t, m.Memory()[0], uint32(10))
	test.ExpectSuccess(t, trm.contains("ran for 500 ticks"))
	test.ExpectSuccess(t, trm.contains("machine reset"))

	// the digests after both runs are the same
	var hashes []string
	for _, o := range trm.output {
		if len(o) == 40 && !strings.Contains(o, " ") {
			hashes = append(hashes, o)
		}
	}
	test.DemandEquality(t, len(hashes), 3)
	test.ExpectEquality(t, hashes[0], hashes[2])
	test.ExpectInequality(t, hashes[0], hashes[1])
}

func TestRewind(t *testing.T) {
	m, trm := session(t, sample,
		"STEP 3",
		"REWIND",
		"REWIND BACK",
		"REWIND 1",
		"REGS",
		"REWIND last",
		"RUN 250",
		"REWIND 120",
		"REWIND x",
	)

	test.ExpectEquality(t, m.Cycles(), 120)
	test.ExpectEquality(t, m.Registers()[8], uint32(10))

	test.ExpectSuccess(t, trm.contains("ticks 0 to 3 (current 3)"))
	test.ExpectSuccess(t, trm.contains("rewound to tick 2"))
	test.ExpectSuccess(t, trm.contains("rewound to tick 1"))
	test.ExpectSuccess(t, trm.contains("$10/t2    00000000 0"))
	test.ExpectSuccess(t, trm.contains("rewound to tick 3"))
	test.ExpectSuccess(t, trm.contains("rewound to tick 120"))

	test.DemandEquality(t, len(trm.errors), 1)
	test.ExpectEquality(t, trm.errors[0], "REWIND: invalid argument (x)")
}

func TestMacro(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "steps.macro")
	err := os.WriteFile(fn, []byte("singlecycle macro\n1\n-- step to the store\nDO 3\nSTEP\nLOOP\nMACRO "+fn+"\n"), 0o600)
	test.DemandSuccess(t, err)

	m, trm := session(t, sample, "MACRO "+fn, "MACRO", "MACRO "+filepath.Join(dir, "missing"))
	test.ExpectEquality(t, m.Cycles(), 3)
	test.ExpectEquality(t, m.Registers()[8], uint32(10))

	test.DemandEquality(t, len(trm.errors), 3)
	test.ExpectSuccess(t, strings.HasSuffix(trm.errors[0], "line 7: MACRO: cannot be used inside a macro"))
	test.ExpectEquality(t, trm.errors[1], "MACRO: missing argument")
	test.ExpectSuccess(t, strings.HasPrefix(trm.errors[2], "macro: "))

	// a macro that ends the session
	quit := filepath.Join(dir, "quit.macro")
	err = os.WriteFile(quit, []byte("singlecycle macro\n1\nSTEP\nQUIT\nSTEP\n"), 0o600)
	test.DemandSuccess(t, err)

	m, trm = session(t, sample, "MACRO "+quit, "STEP")
	test.ExpectEquality(t, m.Cycles(), 1)
	test.ExpectEquality(t, len(trm.errors), 0)
}

func TestInterrupt(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.Load(sample))

	// non-interactive terminals are told how to quit
	trm := &mockTerm{input: []string{"^C", "STEP"}}
	dbg, err := debugger.NewDebugger(m, trm)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start())
	test.ExpectSuccess(t, trm.contains("type QUIT to end the debugging session"))
	test.ExpectEquality(t, m.Cycles(), 1)

	// interactive terminals are asked for confirmation
	trm = &mockTerm{input: []string{"^C", "n", "STEP", "^C", "yes", "STEP"}, interactive: true}
	dbg, err = debugger.NewDebugger(m, trm)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start())
	test.ExpectEquality(t, dbg.State(), govern.Ending)
	test.ExpectEquality(t, m.Cycles(), 2)
	test.DemandEquality(t, len(trm.prompts), 5)
	test.ExpectEquality(t, trm.prompts[0], "[ pc=0001 cycle=1 ] >> ")
	test.ExpectEquality(t, trm.prompts[1], "really quit (y/n) ")
}

func TestErrors(t *testing.T) {
	program := []instruction.Encoded{
		instruction.EncodeI(control.OpLW, 0, 1, 0x7fff),
	}
	m, trm := session(t, program, "FOO", "STEP x", "STEP", "MEM 5000", "BREAK", "PREFS hardware.datawords zero")

	test.DemandEquality(t, len(trm.errors), 6)
	test.ExpectEquality(t, trm.errors[0], "FOO is not a debugger command")
	test.ExpectEquality(t, trm.errors[1], "STEP: invalid argument (x)")
	test.ExpectSuccess(t, strings.Contains(trm.errors[2], "address out of range"))
	test.ExpectSuccess(t, strings.Contains(trm.errors[3], "address out of range"))
	test.ExpectEquality(t, trm.errors[4], "BREAK: missing argument")
	test.ExpectSuccess(t, strings.HasPrefix(trm.errors[5], "prefs: hardware.datawords"))

	// nothing was committed
	test.ExpectEquality(t, m.Cycles(), 0)
}

func TestMiscellaneous(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "state.dot")

	m, trm := session(t, sample,
		"HELP",
		"help step",
		"HELP nothing",
		"PREFS",
		"PREFS hardware.logging true",
		"# comment only",
		"",
		"GRAPH "+fn,
		"LOG 1",
	)

	test.ExpectEquality(t, len(trm.errors), 0)
	test.ExpectSuccess(t, trm.contains("BREAK CLEAR DIGEST DROP"))
	test.ExpectSuccess(t, trm.contains("STEP [ticks]"))
	test.ExpectSuccess(t, trm.contains("no help for NOTHING"))
	test.ExpectSuccess(t, trm.contains("hardware.datawords :: 1024"))
	test.ExpectSuccess(t, trm.contains("hardware.logging set to true"))
	test.ExpectEquality(t, m.Prefs.Logging.Get().(bool), true)
	test.ExpectSuccess(t, trm.contains("machine state written to"))

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}

func TestNewDebugger(t *testing.T) {
	_, err := debugger.NewDebugger(nil, &mockTerm{})
	test.ExpectFailure(t, err)

	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	_, err = debugger.NewDebugger(m, nil)
	test.ExpectFailure(t, err)
}
