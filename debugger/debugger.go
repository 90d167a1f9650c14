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

package debugger

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/debugger/govern"
	"github.com/jetsetilly/singlecycle/debugger/terminal"
	"github.com/jetsetilly/singlecycle/hardware"
	"github.com/jetsetilly/singlecycle/hardware/cpu/result"
	"github.com/jetsetilly/singlecycle/rewind"
)

// runLimit is the maximum number of ticks for the RUN command when no limit
// is given.
const runLimit = 1000000

// Debugger is the basic debugging frontend for the simulation.
type Debugger struct {
	machine *hardware.Machine
	term    terminal.Terminal

	breakpoints breakpoints
	rewind      *rewind.Rewind

	// the current state of the debugger. the debugger ends when the state is
	// govern.Ending
	state govern.State

	// a macro is being run. macros cannot be nested
	inMacro bool

	// the most recent tick and whether it is valid
	lastTick result.Tick
	hasTick  bool
}

// NewDebugger creates and initialises everything required for a new debugging
// session.
func NewDebugger(m *hardware.Machine, term terminal.Terminal) (*Debugger, error) {
	if m == nil {
		return nil, curated.Errorf("debugger: a machine is required")
	}
	if term == nil {
		return nil, curated.Errorf("debugger: a terminal is required")
	}

	r, err := rewind.NewRewind(m, rewind.DefaultEntries)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	return &Debugger{
		machine: m,
		term:    term,
		rewind:  r,
		state:   govern.Initialising,
	}, nil
}

// State returns the current state of the debugger.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// Start the main debugger sequence. Returns when the QUIT command is given or
// when there is no more input.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.state = govern.Paused

	for dbg.state != govern.Ending {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				dbg.state = govern.Ending
				break
			}
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.interrupt()
				continue
			}
			return curated.Errorf("debugger: %v", err)
		}

		dbg.term.TermPrintLine(terminal.StyleEcho, input)

		if err := dbg.parseCommand(input); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

// MacroCommand implements the macro.Commander interface.
func (dbg *Debugger) MacroCommand(input string) (bool, error) {
	dbg.term.TermPrintLine(terminal.StyleEcho, input)
	err := dbg.parseCommand(input)
	return dbg.state != govern.Ending, err
}

// interrupt asks the user to confirm the end of the session. terminals that
// aren't interactive can't answer so the user is told how to end the session.
func (dbg *Debugger) interrupt() {
	if !dbg.term.IsInteractive() {
		dbg.printLine(terminal.StyleFeedback, "type QUIT to end the debugging session")
		return
	}

	confirm, err := dbg.term.TermRead(terminal.Prompt{
		Confirm: true,
		Content: "really quit (y/n) ",
	})
	if err != nil {
		// a second interrupt or the end of input is taken as a yes
		dbg.state = govern.Ending
		return
	}

	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(confirm)), "y") {
		dbg.state = govern.Ending
	}
}

func (dbg *Debugger) prompt() terminal.Prompt {
	return terminal.Prompt{
		PC:    dbg.machine.PC(),
		Cycle: dbg.machine.Cycles(),
	}
}

func (dbg *Debugger) printLine(style terminal.Style, format string, args ...any) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(format, args...))
}

// step the machine by the number of ticks. stepping stops early if a
// breakpoint is triggered. every tick is printed.
func (dbg *Debugger) step(n int) error {
	dbg.state = govern.Stepping
	defer func() { dbg.state = govern.Paused }()

	for range n {
		t, err := dbg.machine.Step()
		if err != nil {
			return err
		}
		dbg.lastTick = t
		dbg.hasTick = true
		dbg.rewind.Record()

		dbg.printLine(terminal.StyleInstrument, "%s", t.GetString(result.StyleFull))

		if dbg.reportBreaks() {
			break
		}
	}

	return nil
}

// run the machine for the number of ticks or until a breakpoint is triggered.
func (dbg *Debugger) run(n int) error {
	dbg.state = govern.Running
	defer func() { dbg.state = govern.Paused }()

	var count int

	err := dbg.machine.Run(n, func(t result.Tick) (govern.State, error) {
		count++
		dbg.lastTick = t
		dbg.hasTick = true
		dbg.rewind.Check()

		if dbg.reportBreaks() {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	dbg.rewind.Record()

	dbg.printLine(terminal.StyleFeedback, "ran for %d ticks", count)
	if dbg.hasTick {
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.lastTick.GetString(result.StyleFull))
	}

	return err
}

// reportBreaks checks the breakpoints and prints any that have been
// triggered. returns true if any breakpoint has been triggered.
func (dbg *Debugger) reportBreaks() bool {
	triggered := dbg.breakpoints.check(dbg.machine)
	for _, bk := range triggered {
		dbg.printLine(terminal.StyleFeedback, "break on %s", bk)
	}
	return len(triggered) > 0
}
