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

package result

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/singlecycle/hardware/cpu/control"
)

// columnise forces the string into the given width.
func columnise(s string, width int) string {
	if width > len(s) {
		return s + strings.Repeat(" ", width-len(s))
	}
	return s[:width]
}

// Mnemonic returns the instruction in assembly language form.
func (t Tick) Mnemonic() string {
	f := t.Fields
	switch t.Kind {
	case control.ADD, control.AND, control.SLT:
		return fmt.Sprintf("%s $%d, $%d, $%d", t.Kind, f.Rd, f.Rs, f.Rt)
	case control.ADDI:
		return fmt.Sprintf("%s $%d, $%d, %d", t.Kind, f.Rt, f.Rs, int16(f.Immediate))
	case control.ORI:
		return fmt.Sprintf("%s $%d, $%d, %#x", t.Kind, f.Rt, f.Rs, f.Immediate)
	case control.LUI:
		return fmt.Sprintf("%s $%d, %#x", t.Kind, f.Rt, f.Immediate)
	case control.LW, control.SW:
		return fmt.Sprintf("%s $%d, %d($%d)", t.Kind, f.Rt, int16(f.Immediate), f.Rs)
	case control.BEQ:
		return fmt.Sprintf("%s $%d, $%d, %d", t.Kind, f.Rs, f.Rt, int16(f.Immediate))
	}
	if t.Instruction == 0 {
		return "nop"
	}
	return fmt.Sprintf("%s %s", t.Kind, t.Instruction)
}

// GetString returns a human readable version of the tick, according to the
// style.
func (t Tick) GetString(style Style) string {
	s := strings.Builder{}

	if style.Has(StyleFlagAddress) {
		s.WriteString(fmt.Sprintf("%6d %04x ", t.Cycle, t.PC))
	}

	if style.Has(StyleFlagMnemonic) {
		s.WriteString(columnise(t.Mnemonic(), 24))
	}

	if style.Has(StyleFlagControl) {
		s.WriteString(fmt.Sprintf(" ctl=%03x", t.Signals.Pack()))
	}

	if style.Has(StyleFlagALU) {
		s.WriteString(fmt.Sprintf(" alu %s(%08x, %08x)=%08x", columnise(t.Signals.ALUOp.String(), 3), t.Data0, t.Data1, t.ALUOut))
	}

	if style.Has(StyleFlagCommit) {
		if t.Signals.RegWrite {
			s.WriteString(fmt.Sprintf(" r%d<-%08x", t.WriteRegister, t.WriteBack))
		}
		if t.Signals.MemWrite {
			s.WriteString(fmt.Sprintf(" m[%08x]<-%08x", t.ALUOut, t.RtValue))
		}
		if t.BranchTaken {
			s.WriteString(fmt.Sprintf(" pc<-%04x", t.NextPC))
		}
	}

	return strings.TrimRight(s.String(), " ")
}

func (t Tick) String() string {
	return t.GetString(StyleBrief)
}

// Columnise writes every named signal of every tick to the io.Writer. The
// output is a table with one row per tick and one column per signal. Values
// are in hex and each column is as wide as the wider of the signal name or the
// signal's width in hex digits.
func Columnise(w io.Writer, ticks []Tick) error {
	if len(ticks) == 0 {
		return nil
	}

	width := func(sig NamedSignal) int {
		return max(len(sig.Name), (sig.Width+3)/4)
	}

	s := strings.Builder{}
	s.WriteString(columnise("cycle", 7))
	for _, sig := range ticks[0].NamedSignals() {
		s.WriteString(" ")
		s.WriteString(columnise(sig.Name, width(sig)))
	}
	if _, err := io.WriteString(w, strings.TrimRight(s.String(), " ")+"\n"); err != nil {
		return err
	}

	for _, t := range ticks {
		s.Reset()
		s.WriteString(columnise(fmt.Sprintf("%d", t.Cycle), 7))
		for _, sig := range t.NamedSignals() {
			s.WriteString(" ")
			v := fmt.Sprintf("%0*x", (sig.Width+3)/4, sig.Value)
			s.WriteString(columnise(v, width(sig)))
		}
		if _, err := io.WriteString(w, strings.TrimRight(s.String(), " ")+"\n"); err != nil {
			return err
		}
	}

	return nil
}
