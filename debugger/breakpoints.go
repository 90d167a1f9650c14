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
	"strconv"
	"strings"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/hardware"
	"github.com/jetsetilly/singlecycle/symbols"
)

// Sentinal error patterns for breakpoints.
const (
	BreakpointTarget = "break: unrecognised target (%s)"
	BreakpointValue  = "break: unrecognised value (%s)"
	BreakpointExists = "break: already exists (%s)"
	BreakpointDrop   = "break: no breakpoint #%d"
)

// target is the part of the machine being watched by a breakpoint.
type target struct {
	label string
	value func(m *hardware.Machine) uint32
}

// parseTarget returns the target named by the token. Valid targets are PC, a
// register (R0 to R31, $0 to $31 or a conventional name such as T0) or a data
// memory word (M followed by the word address).
func parseTarget(s string) (target, error) {
	s = strings.ToUpper(s)

	if s == "PC" {
		return target{
			label: "PC",
			value: func(m *hardware.Machine) uint32 { return m.PC() },
		}, nil
	}

	if n, ok := symbols.SearchRegister(s); ok {
		return target{
			label: fmt.Sprintf("R%d", n),
			value: func(m *hardware.Machine) uint32 { return m.State.Registers.Read(n) },
		}, nil
	}

	if strings.HasPrefix(s, "M") {
		n, err := strconv.ParseUint(s[1:], 0, 32)
		if err == nil {
			return target{
				label: fmt.Sprintf("M%d", n),
				value: func(m *hardware.Machine) uint32 {
					v, _ := m.State.Memory.Read(uint32(n))
					return v
				},
			}, nil
		}
	}

	return target{}, curated.Errorf(BreakpointTarget, s)
}

// breaker defines a specific break condition.
type breaker struct {
	target target
	value  uint32

	// whether the condition was met on the previous check
	met bool
}

func (bk breaker) String() string {
	return fmt.Sprintf("%s->%#x", bk.target.label, bk.value)
}

// breakpoints are used to halt execution when a target is *changed to* a
// specific value.
type breakpoints struct {
	breaks []*breaker
}

// parse the remaining tokens as a target and value pair. if the target is the
// only token then the value is taken to be the target's current value.
func (bp *breakpoints) parse(m *hardware.Machine, tokens *tokens) (*breaker, error) {
	s, _ := tokens.get()
	tgt, err := parseTarget(s)
	if err != nil {
		return nil, err
	}

	bk := &breaker{target: tgt}

	if s, ok := tokens.get(); ok {
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil || v < -(1<<31) || v >= 1<<32 {
			return nil, curated.Errorf(BreakpointValue, s)
		}
		bk.value = uint32(v)
	} else {
		bk.value = tgt.value(m)
	}

	for _, b := range bp.breaks {
		if b.target.label == bk.target.label && b.value == bk.value {
			return nil, curated.Errorf(BreakpointExists, bk)
		}
	}

	// a breakpoint that is already met doesn't trigger until the target has
	// changed to some other value and back again
	bk.met = bk.target.value(m) == bk.value

	bp.breaks = append(bp.breaks, bk)
	return bk, nil
}

// check every breakpoint and return the ones that have been triggered.
func (bp *breakpoints) check(m *hardware.Machine) []*breaker {
	var triggered []*breaker
	for _, bk := range bp.breaks {
		met := bk.target.value(m) == bk.value
		if met && !bk.met {
			triggered = append(triggered, bk)
		}
		bk.met = met
	}
	return triggered
}

// sync the met flag of every breakpoint with the machine. used after a reset.
func (bp *breakpoints) sync(m *hardware.Machine) {
	for _, bk := range bp.breaks {
		bk.met = bk.target.value(m) == bk.value
	}
}

func (bp *breakpoints) drop(num int) error {
	if num < 0 || num >= len(bp.breaks) {
		return curated.Errorf(BreakpointDrop, num)
	}
	bp.breaks = append(bp.breaks[:num], bp.breaks[num+1:]...)
	return nil
}

func (bp *breakpoints) clear() {
	bp.breaks = bp.breaks[:0]
}

func (bp *breakpoints) list() string {
	if len(bp.breaks) == 0 {
		return "no breakpoints"
	}
	s := strings.Builder{}
	for i, bk := range bp.breaks {
		s.WriteString(fmt.Sprintf("% 2d: %s\n", i, bk))
	}
	return strings.TrimSuffix(s.String(), "\n")
}
