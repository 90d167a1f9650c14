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
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/debugger/govern"
	"github.com/jetsetilly/singlecycle/debugger/terminal"
	"github.com/jetsetilly/singlecycle/digest"
	"github.com/jetsetilly/singlecycle/dump"
	"github.com/jetsetilly/singlecycle/hardware/cpu/result"
	"github.com/jetsetilly/singlecycle/logger"
	"github.com/jetsetilly/singlecycle/macro"
)

// debugger keywords.
const (
	KeywordHelp   = "HELP"
	KeywordStep   = "STEP"
	KeywordRun    = "RUN"
	KeywordLast   = "LAST"
	KeywordRegs   = "REGS"
	KeywordMem    = "MEM"
	KeywordBreak  = "BREAK"
	KeywordList   = "LIST"
	KeywordClear  = "CLEAR"
	KeywordDrop   = "DROP"
	KeywordReset  = "RESET"
	KeywordRewind = "REWIND"
	KeywordLog    = "LOG"
	KeywordMacro  = "MACRO"
	KeywordPrefs  = "PREFS"
	KeywordDigest = "DIGEST"
	KeywordGraph  = "GRAPH"
	KeywordQuit   = "QUIT"
)

// Help contains the help text for the debugger's top level commands.
var Help = map[string]string{
	KeywordHelp:   "Lists commands and provides help for individual debugger commands",
	KeywordStep:   "Step forward one tick, or the specified number of ticks. Stops early on a breakpoint",
	KeywordRun:    fmt.Sprintf("Run until a breakpoint is met. Runs for at most the specified number of ticks, or %d", runLimit),
	KeywordLast:   "Prints the result of the last tick. LAST SIGNALS lists every named signal",
	KeywordRegs:   "Display the register file",
	KeywordMem:    "Display the non-zero data memory, or the specified number of words from an address",
	KeywordBreak:  "Halt when a target (PC, R0 to R31, M followed by an address) changes to the value",
	KeywordList:   "List current breakpoints",
	KeywordClear:  "Clear all breakpoints",
	KeywordDrop:   "Drop a specific breakpoint, using the number reported by LIST",
	KeywordReset:  "Reset the machine to its initial state. The program is not changed",
	KeywordRewind: "Return the machine to an earlier tick. BACK moves back one tick and LAST moves to the most recent tick",
	KeywordLog:    "Display the most recent log entries",
	KeywordMacro:  "Run the debugger commands in a macro file",
	KeywordPrefs:  "Display the hardware preferences or set a preference value",
	KeywordDigest: "Display the hash of the current machine state",
	KeywordGraph:  "Write the machine state to a file in graphviz dot format",
	KeywordQuit:   "End the debugging session",
}

// Usage contains the argument template for each command.
var Usage = map[string]string{
	KeywordHelp:   "[keyword]",
	KeywordStep:   "[ticks]",
	KeywordRun:    "[ticks]",
	KeywordLast:   "[SIGNALS]",
	KeywordRegs:   "",
	KeywordMem:    "[address [words]]",
	KeywordBreak:  "target [value]",
	KeywordList:   "",
	KeywordClear:  "",
	KeywordDrop:   "number",
	KeywordReset:  "",
	KeywordRewind: "[tick|BACK|LAST]",
	KeywordLog:    "[entries]",
	KeywordMacro:  "filename",
	KeywordPrefs:  "[key value]",
	KeywordDigest: "",
	KeywordGraph:  "filename",
	KeywordQuit:   "",
}

// Sentinal error patterns for commands.
const (
	UnknownCommand  = "%s is not a debugger command"
	InvalidArgument = "%s: invalid argument (%s)"
	MissingArgument = "%s: missing argument"
)

// keywords returns the sorted list of debugger keywords.
func keywords() []string {
	k := make([]string, 0, len(Help))
	for key := range Help {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// numericArg returns the next token as an integer. The default value is
// returned if there is no next token.
func numericArg(command string, tokens *tokens, def int) (int, error) {
	s, ok := tokens.get()
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil || n < 0 {
		return 0, curated.Errorf(InvalidArgument, command, s)
	}
	return int(n), nil
}

// parseCommand tokenises the input and executes the command.
func (dbg *Debugger) parseCommand(input string) error {
	tokens := tokeniseInput(input)

	command, ok := tokens.get()
	if !ok {
		// user pressed return
		return nil
	}
	command = strings.ToUpper(command)

	switch command {
	default:
		return curated.Errorf(UnknownCommand, command)

	case KeywordHelp:
		if keyword, ok := tokens.get(); ok {
			keyword = strings.ToUpper(keyword)
			txt, ok := Help[keyword]
			if !ok {
				dbg.printLine(terminal.StyleHelp, "no help for %s", keyword)
			} else {
				dbg.printLine(terminal.StyleHelp, "%s %s\n  %s", keyword, Usage[keyword], txt)
			}
		} else {
			dbg.printLine(terminal.StyleHelp, "%s", strings.Join(keywords(), " "))
		}

	case KeywordStep:
		n, err := numericArg(command, tokens, 1)
		if err != nil {
			return err
		}
		return dbg.step(n)

	case KeywordRun:
		n, err := numericArg(command, tokens, runLimit)
		if err != nil {
			return err
		}
		if n == 0 {
			n = runLimit
		}
		return dbg.run(n)

	case KeywordLast:
		if !dbg.hasTick {
			dbg.printLine(terminal.StyleFeedback, "no ticks yet")
			return nil
		}

		option, _ := tokens.get()
		switch strings.ToUpper(option) {
		case "":
			dbg.printLine(terminal.StyleInstrument, "%s", dbg.lastTick.GetString(result.StyleFull))
		case "SIGNALS":
			s := strings.Builder{}
			for _, sig := range dbg.lastTick.NamedSignals() {
				s.WriteString(fmt.Sprintf("%-16s %0*x\n", sig.Name, (sig.Width+3)/4, sig.Value))
			}
			dbg.printLine(terminal.StyleInstrument, "%s", strings.TrimSuffix(s.String(), "\n"))
		default:
			return curated.Errorf(InvalidArgument, command, option)
		}

	case KeywordRegs:
		s := strings.Builder{}
		if err := dump.Registers(&s, dbg.machine.Registers()); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleMachineInfo, "%s", strings.TrimSuffix(s.String(), "\n"))

	case KeywordMem:
		if tokens.remaining() == 0 {
			s := strings.Builder{}
			if err := dump.Memory(&s, dbg.machine.Memory()); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleMachineInfo, "%s", strings.TrimSuffix(s.String(), "\n"))
			return nil
		}

		address, err := numericArg(command, tokens, 0)
		if err != nil {
			return err
		}
		words, err := numericArg(command, tokens, 1)
		if err != nil {
			return err
		}

		s := strings.Builder{}
		for a := address; a < address+words; a++ {
			v, err := dbg.machine.State.Memory.Read(uint32(a))
			if err != nil {
				return err
			}
			s.WriteString(fmt.Sprintf("m[%d] %08x %d\n", a, v, int32(v)))
		}
		dbg.printLine(terminal.StyleMachineInfo, "%s", strings.TrimSuffix(s.String(), "\n"))

	case KeywordBreak:
		if tokens.remaining() == 0 {
			return curated.Errorf(MissingArgument, command)
		}
		bk, err := dbg.breakpoints.parse(dbg.machine, tokens)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint added (%s)", bk)

	case KeywordList:
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.breakpoints.list())

	case KeywordClear:
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")

	case KeywordDrop:
		if tokens.remaining() == 0 {
			return curated.Errorf(MissingArgument, command)
		}
		num, err := numericArg(command, tokens, 0)
		if err != nil {
			return err
		}
		if err := dbg.breakpoints.drop(num); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint #%d dropped", num)

	case KeywordReset:
		dbg.machine.Reset()
		dbg.rewind.Reset()
		dbg.breakpoints.sync(dbg.machine)
		dbg.hasTick = false
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case KeywordRewind:
		option, ok := tokens.peek()
		if !ok {
			dbg.printLine(terminal.StyleFeedback, "%s", dbg.rewind.Summary())
			return nil
		}

		var n int
		var err error

		switch strings.ToUpper(option) {
		case "BACK":
			tokens.get()
			n, err = dbg.rewind.GotoTick(dbg.machine.Cycles() - 1)
		case "LAST":
			tokens.get()
			n, err = dbg.rewind.GotoLast()
		default:
			var tick int
			tick, err = numericArg(command, tokens, 0)
			if err != nil {
				return err
			}
			n, err = dbg.rewind.GotoTick(tick)
		}
		if err != nil {
			return err
		}

		// the last tick is no longer the tick that produced the current state
		dbg.hasTick = false
		dbg.breakpoints.sync(dbg.machine)
		dbg.printLine(terminal.StyleFeedback, "rewound to tick %d", n)

	case KeywordLog:
		n, err := numericArg(command, tokens, 10)
		if err != nil {
			return err
		}
		s := strings.Builder{}
		logger.Tail(&s, n)
		if s.Len() == 0 {
			dbg.printLine(terminal.StyleFeedback, "log is empty")
		} else {
			dbg.printLine(terminal.StyleLog, "%s", strings.TrimSuffix(s.String(), "\n"))
		}

	case KeywordMacro:
		filename, ok := tokens.get()
		if !ok {
			return curated.Errorf(MissingArgument, command)
		}
		if dbg.inMacro {
			return curated.Errorf("%s: cannot be used inside a macro", command)
		}
		mcr, err := macro.NewMacro(filename)
		if err != nil {
			return err
		}
		dbg.inMacro = true
		defer func() { dbg.inMacro = false }()
		if err := mcr.Run(dbg); err != nil {
			return err
		}
		if dbg.state != govern.Ending {
			dbg.printLine(terminal.StyleFeedback, "macro %s finished", mcr)
		}

	case KeywordPrefs:
		if tokens.remaining() == 0 {
			dbg.printLine(terminal.StyleFeedback, "%s", strings.TrimSuffix(dbg.machine.Prefs.String(), "\n"))
			return nil
		}
		key, _ := tokens.get()
		if tokens.remaining() == 0 {
			return curated.Errorf(MissingArgument, command)
		}
		if err := dbg.machine.Prefs.Set(key, tokens.remainder()); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%s set to %s", key, tokens.remainder())

	case KeywordDigest:
		var dig digest.State
		dig.Update(dbg.machine)
		dbg.printLine(terminal.StyleFeedback, "%s", dig.Hash())

	case KeywordGraph:
		filename, ok := tokens.get()
		if !ok {
			return curated.Errorf(MissingArgument, command)
		}
		f, err := os.Create(filename)
		if err != nil {
			return curated.Errorf("%s: %v", command, err)
		}
		dump.Graph(f, dbg.machine.State)
		if err := f.Close(); err != nil {
			return curated.Errorf("%s: %v", command, err)
		}
		dbg.printLine(terminal.StyleFeedback, "machine state written to %s", filename)

	case KeywordQuit:
		dbg.state = govern.Ending
	}

	return nil
}
