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

package macro

import (
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/singlecycle/curated"
)

// Sentinal error patterns for the macro package.
const (
	NotMacro  = "macro: %s: not a macro file"
	LineError = "macro: %s: line %d: %v"
)

// Commander executes a single line of a macro. Returning false stops the
// macro.
type Commander interface {
	MacroCommand(input string) (bool, error)
}

const (
	headerLineID = iota
	headerLineVersion
	headerNumLines
)

const headerID = "singlecycle macro"

// Macro is a list of instructions loaded from a macro file.
type Macro struct {
	filename     string
	instructions []string
}

// NewMacro is the preferred method of initialisation for the Macro type.
func NewMacro(filename string) (*Macro, error) {
	buffer, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("macro: %v", err)
	}

	mcr := &Macro{
		filename: filename,
	}

	// convert file contents to an array of lines
	mcr.instructions = strings.Split(strings.ReplaceAll(string(buffer), "\r\n", "\n"), "\n")
	if len(mcr.instructions) < headerNumLines {
		return nil, curated.Errorf(NotMacro, filename)
	}
	if strings.TrimSpace(mcr.instructions[headerLineID]) != headerID {
		return nil, curated.Errorf(NotMacro, filename)
	}

	// we no longer need the header
	mcr.instructions = mcr.instructions[headerNumLines:]

	return mcr, nil
}

func (mcr *Macro) String() string {
	return mcr.filename
}

type loop struct {
	line int

	// loop counters count upwards because it is more natural when referencing
	// the counter value to think of the counter as counting upwards
	count    int
	countEnd int

	// name of the counter in the variables table. can be empty
	countName string
}

// Run the macro to completion. Running stops at the first error or when the
// Commander returns false.
func (mcr *Macro) Run(cmd Commander) error {
	var loops []loop
	variables := make(map[string]int)

	lineError := func(ln int, err any) error {
		return curated.Errorf(LineError, mcr.filename, ln+headerNumLines+1, err)
	}

	for ln := 0; ln < len(mcr.instructions); ln++ {
		toks := strings.Fields(mcr.instructions[ln])
		if len(toks) == 0 {
			continue // for loop
		}

		switch strings.ToUpper(toks[0]) {
		case "--":
			// ignore comment lines

		case "DO":
			if len(toks) < 2 {
				return lineError(ln, "too few arguments for DO")
			}
			if len(toks) > 3 {
				return lineError(ln, "too many arguments for DO")
			}

			ct, err := strconv.Atoi(toks[1])
			if err != nil || ct < 1 {
				return lineError(ln, "loop count must be a positive number")
			}

			lp := loop{
				line:     ln,
				countEnd: ct,
			}
			if len(toks) == 3 {
				lp.countName = toks[2]
				variables[lp.countName] = lp.count
			}
			loops = append(loops, lp)

		case "LOOP":
			if len(toks) > 1 {
				return lineError(ln, "too many arguments for LOOP")
			}

			idx := len(loops) - 1
			if idx == -1 {
				return lineError(ln, "LOOP without a DO")
			}

			lp := &loops[idx]
			lp.count++

			if lp.count < lp.countEnd {
				// loop is ongoing so return to start of loop
				ln = lp.line

				// update named variable
				if lp.countName != "" {
					variables[lp.countName] = lp.count
				}
			} else {
				// loop has ended. remove from loop stack and delete variable name
				delete(variables, lp.countName)
				loops = loops[:idx]
			}

		default:
			for i := range toks {
				if n, ok := strings.CutPrefix(toks[i], "%"); ok {
					v, ok := variables[n]
					if !ok {
						return lineError(ln, curated.Errorf("variable %s does not exist", n))
					}
					toks[i] = strconv.Itoa(v)
				}
			}

			cont, err := cmd.MacroCommand(strings.Join(toks, " "))
			if err != nil {
				return lineError(ln, err)
			}
			if !cont {
				return nil
			}
		}
	}

	if len(loops) > 0 {
		return lineError(loops[len(loops)-1].line, "DO without a LOOP")
	}

	return nil
}
