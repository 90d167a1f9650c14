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

// Package assertions checks the state of a machine against a list of expected
// values. The list is specified with a string of the form:
//
//	"r8::10; m0::0x0a; pc::4"
//
// Each entry is a location and a value separated by "::". Locations are a
// register (r0 to r31, $0 to $31 or a conventional name such as t0), a data
// memory word (m followed by the word address) or the program counter (pc). Values and memory addresses can
// be decimal or hexadecimal with a 0x prefix. Negative decimal values are
// stored as their two's complement.
package assertions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/hardware/cpu/registers"
	"github.com/jetsetilly/singlecycle/symbols"
)

// Sentinal error patterns for the assertions package.
const (
	Malformed   = "assertions: malformed assertion (%s)"
	BadLocation = "assertions: unrecognised location (%s)"
	BadValue    = "assertions: unrecognised value (%s)"
	Failed      = "assertions: %d of %d failed: %s"
)

// Area of the machine being tested.
type Area int

// List of valid areas.
const (
	Register Area = iota
	Memory
	ProgramCounter
)

// Assertion is a single expected value.
type Assertion struct {
	Area    Area
	Address uint32
	Value   uint32
}

func (a Assertion) location() string {
	switch a.Area {
	case Register:
		return fmt.Sprintf("r%d", a.Address)
	case Memory:
		return fmt.Sprintf("m%d", a.Address)
	}
	return "pc"
}

func (a Assertion) String() string {
	return fmt.Sprintf("%s::%d", a.location(), a.Value)
}

// Target is the state that assertions are checked against. The
// hardware.Machine type satisfies this interface.
type Target interface {
	Registers() [registers.NumRegisters]uint32
	Memory() []uint32
	PC() uint32
}

func parseValue(s string) (uint32, bool) {
	if v, err := strconv.ParseUint(s, 0, 32); err == nil {
		return uint32(v), true
	}
	if v, err := strconv.ParseInt(s, 10, 32); err == nil {
		return uint32(v), true
	}
	return 0, false
}

// Parse the assertion string. Empty entries are ignored.
func Parse(s string) ([]Assertion, error) {
	var r []Assertion

	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		loc, val, ok := strings.Cut(entry, "::")
		if !ok {
			return nil, curated.Errorf(Malformed, entry)
		}
		loc = strings.ToLower(strings.TrimSpace(loc))
		val = strings.TrimSpace(val)

		var a Assertion

		reg, isReg := symbols.SearchRegister(loc)

		switch {
		case loc == "pc":
			a.Area = ProgramCounter
		case isReg:
			a.Area = Register
			a.Address = uint32(reg)
		case strings.HasPrefix(loc, "m"):
			a.Area = Memory
			n, err := strconv.ParseUint(loc[1:], 0, 32)
			if err != nil {
				return nil, curated.Errorf(BadLocation, loc)
			}
			a.Address = uint32(n)
		default:
			return nil, curated.Errorf(BadLocation, loc)
		}

		if a.Value, ok = parseValue(val); !ok {
			return nil, curated.Errorf(BadValue, val)
		}

		r = append(r, a)
	}

	return r, nil
}

// Check every assertion against the target. All assertions are checked and
// the returned error lists every failure.
func Check(target Target, assertions []Assertion) error {
	regs := target.Registers()
	mem := target.Memory()
	pc := target.PC()

	var failures []string

	for _, a := range assertions {
		var v uint32
		switch a.Area {
		case Register:
			v = regs[a.Address]
		case Memory:
			if uint64(a.Address) >= uint64(len(mem)) {
				failures = append(failures, fmt.Sprintf("%s is out of range", a.location()))
				continue
			}
			v = mem[a.Address]
		case ProgramCounter:
			v = pc
		}

		if v != a.Value {
			failures = append(failures, fmt.Sprintf("%s is %d not %d", a.location(), v, a.Value))
		}
	}

	if len(failures) > 0 {
		return curated.Errorf(Failed, len(failures), len(assertions), strings.Join(failures, ", "))
	}

	return nil
}
