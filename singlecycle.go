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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/singlecycle/assertions"
	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/debugger"
	"github.com/jetsetilly/singlecycle/debugger/govern"
	"github.com/jetsetilly/singlecycle/debugger/terminal"
	"github.com/jetsetilly/singlecycle/debugger/terminal/colorterm"
	"github.com/jetsetilly/singlecycle/debugger/terminal/easyterm"
	"github.com/jetsetilly/singlecycle/debugger/terminal/plainterm"
	"github.com/jetsetilly/singlecycle/digest"
	"github.com/jetsetilly/singlecycle/disassembly"
	"github.com/jetsetilly/singlecycle/dump"
	"github.com/jetsetilly/singlecycle/hardware"
	"github.com/jetsetilly/singlecycle/hardware/cpu/result"
	"github.com/jetsetilly/singlecycle/hardware/preferences"
	"github.com/jetsetilly/singlecycle/logger"
	"github.com/jetsetilly/singlecycle/modalflag"
	"github.com/jetsetilly/singlecycle/performance"
	"github.com/jetsetilly/singlecycle/prefs"
	"github.com/jetsetilly/singlecycle/programloader"
	"github.com/jetsetilly/singlecycle/regression"
	"github.com/jetsetilly/singlecycle/resources"
	"github.com/jetsetilly/singlecycle/statsview"
	"github.com/jetsetilly/singlecycle/version"
)

// location of the regression database in the resources directory
const regressionDB = "regressionDB"

// exit values returned by launch()
const (
	exitArgs = 10
	exitMode = 20
)

func main() {
	os.Exit(launch(os.Stdin, os.Stdout, os.Args[1:]))
}

// launch the mode requested by the arguments. the return value is the exit
// value of the program.
func launch(input io.Reader, output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DEBUG", "DIGEST", "PERFORMANCE", "DISASM", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "DEBUG":
		err = debug(md, input, output)

	case "DIGEST":
		err = digestMode(md, output)

	case "PERFORMANCE":
		err = perform(md, output)

	case "DISASM":
		err = disasm(md, output)

	case "REGRESS":
		err = regress(md, input, output)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitMode
	}

	return 0
}

// options common to every mode.
type common struct {
	prefs *string
	log   *bool
}

func addCommon(md *modalflag.Modes) common {
	return common{
		prefs: md.AddString("prefs", "", `hardware preferences. eg. "hardware.hardwiredzero::true; hardware.datawords::256"`),
		log:   md.AddBool("log", false, "echo log to stdout"),
	}
}

// prepare a machine with the program named by the only remaining argument.
// options are applied to the machine and to the logger.
func prepare(md *modalflag.Modes, output io.Writer, opts common) (*hardware.Machine, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, curated.Errorf("program file required for %s mode", md)
	case 1:
	default:
		return nil, curated.Errorf("too many arguments for %s mode", md)
	}

	if *opts.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	prefs.PushCommandLineStack(*opts.prefs)
	defer prefs.PopCommandLineStack()

	m, err := hardware.NewMachine(nil)
	if err != nil {
		return nil, err
	}

	// logging is assumed to be wanted if it is being echoed
	if *opts.log {
		if err := m.Prefs.Logging.Set(true); err != nil {
			return nil, err
		}
	}

	ld := programloader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return nil, err
	}
	if err := m.Load(ld.Data); err != nil {
		return nil, err
	}

	return m, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	opts := addCommon(md)
	cycles := md.AddInt("cycles", 500, "number of ticks to run. zero runs until interrupted")
	trace := md.AddBool("trace", false, "print every tick as it happens")
	columns := md.AddBool("columns", false, "print every named signal of every tick at the end of the run")
	expect := md.AddString("expect", "", `expected machine state at the end of the run. eg. "r8::10; m0::10"`)
	quiet := md.AddBool("quiet", false, "do not print registers and memory at the end of the run")
	memviz := md.AddString("memviz", "", "write the final machine state to file in graphviz dot format")
	profile := md.AddString("profile", "none", "run through profiler: CPU, MEM, TRACE, ALL (comma separated)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *cycles < 0 {
		return curated.Errorf("number of cycles cannot be negative (%d)", *cycles)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	// parse assertions before running so that a malformed string is noticed
	// immediately
	var exp []assertions.Assertion
	if *expect != "" {
		exp, err = assertions.Parse(*expect)
		if err != nil {
			return err
		}
	}

	m, err := prepare(md, output, opts)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(output)
	}

	m.SetTracing(*columns)

	// ctrl-c ends the run early. the final state is still reported
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	err = performance.RunProfiler(prf, "run", func() error {
		return m.Run(*cycles, func(t result.Tick) (govern.State, error) {
			if *trace {
				fmt.Fprintln(output, t.GetString(result.StyleFull))
			}
			select {
			case <-intChan:
				return govern.Ending, nil
			default:
			}
			return govern.Running, nil
		})
	})
	if err != nil {
		return err
	}

	if *columns {
		if err := result.Columnise(output, m.Trace()); err != nil {
			return err
		}
	}

	if !*quiet {
		fmt.Fprintf(output, "ran for %d ticks. pc=%04x\n", m.Cycles(), m.PC())
		if err := dump.Registers(output, m.Registers()); err != nil {
			return err
		}
		if err := dump.Memory(output, m.Memory()); err != nil {
			return err
		}
	}

	if *memviz != "" {
		f, err := os.Create(*memviz)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		dump.Graph(f, m.State)
		if err := f.Close(); err != nil {
			return curated.Errorf("memviz: %v", err)
		}
	}

	if exp != nil {
		return assertions.Check(m, exp)
	}

	return nil
}

func debug(md *modalflag.Modes, input io.Reader, output io.Writer) error {
	md.NewMode()

	opts := addCommon(md)
	termType := md.AddString("term", "AUTO", "terminal type to use in debug mode: AUTO, COLOR, PLAIN")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "AUTO":
		if f, ok := input.(*os.File); ok && easyterm.IsTerminal(f) {
			term = &colorterm.ColorTerminal{}
		} else {
			term = plainterm.NewPlainTerminal(input, output)
		}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = plainterm.NewPlainTerminal(input, output)
	default:
		return curated.Errorf("unknown terminal type (%s)", *termType)
	}

	m, err := prepare(md, output, opts)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(m, term)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func digestMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	opts := addCommon(md)
	cycles := md.AddInt("cycles", 500, "number of ticks to run")
	ticks := md.AddBool("ticks", false, "digest every tick rather than the final state")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *cycles <= 0 {
		return curated.Errorf("number of cycles must be positive (%d)", *cycles)
	}

	m, err := prepare(md, output, opts)
	if err != nil {
		return err
	}

	var tickDigest digest.Ticks

	err = m.Run(*cycles, func(t result.Tick) (govern.State, error) {
		if *ticks {
			tickDigest.Tick(t)
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	var dig digest.Digest = &tickDigest
	if !*ticks {
		var stateDigest digest.State
		stateDigest.Update(m)
		dig = &stateDigest
	}

	fmt.Fprintln(output, dig.Hash())

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	opts := addCommon(md)
	duration := md.AddString("duration", "5s", "length of time to run for")
	profile := md.AddString("profile", "none", "run through profiler: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	m, err := prepare(md, output, opts)
	if err != nil {
		return err
	}

	return performance.Check(output, prf, m, *duration)
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	pref := md.AddString("prefs", "", `hardware preferences. eg. "hardware.instructionbits::6"`)
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	ctl := md.AddBool("control", false, "include the output of the control unit")
	flow := md.AddBool("flow", false, "include the addresses execution can continue at")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("program file required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	prefs.PushCommandLineStack(*pref)
	hw, err := preferences.NewPreferences()
	prefs.PopCommandLineStack()
	if err != nil {
		return err
	}

	ld := programloader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return err
	}

	dsm, err := disassembly.FromProgram(ld.Data, hw.InstructionBits.Get().(int))
	if err != nil {
		return err
	}

	return dsm.Write(output, disassembly.WriteAttr{
		ByteCode: *bytecode,
		Control:  *ctl,
		FlowInfo: *flow,
	})
}

func regress(md *modalflag.Modes, input io.Reader, output io.Writer) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dbPath, err := resources.JoinPath(regressionDB)
	if err != nil {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")
		failOnError := md.AddBool("fail", false, "fail on error")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRun(output, dbPath, *verbose, *failOnError, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return curated.Errorf("no additional arguments required for %s mode", md)
		}

		return regression.RegressList(output, dbPath)

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return curated.Errorf("database key required for %s mode", md)
		case 1:
		default:
			return curated.Errorf("only one entry can be deleted at at time")
		}

		confirmation := input
		if *answerYes {
			confirmation = nil
		}

		return regression.RegressDelete(output, confirmation, dbPath, md.GetArg(0))

	case "ADD":
		md.NewMode()

		cycles := md.AddInt("cycles", 500, "number of ticks to run")
		mode := md.AddString("mode", "state", "what to digest: STATE or TICKS")
		prefsArg := md.AddString("prefs", "", "hardware preferences to run the program with")
		notes := md.AddString("notes", "", "additional annotation for the database")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return curated.Errorf("program file required for %s mode", md)
		case 1:
		default:
			return curated.Errorf("regression tests can only be added one at a time")
		}

		dm, err := regression.ParseDigestMode(*mode)
		if err != nil {
			return err
		}

		return regression.RegressAdd(output, dbPath, &regression.DigestRegression{
			Program: md.GetArg(0),
			Cycles:  *cycles,
			Prefs:   *prefsArg,
			Mode:    dm,
			Notes:   *notes,
		})
	}

	return nil
}
