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

package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/hardware/cpu"
	"github.com/jetsetilly/singlecycle/symbols"
)

// Registers writes the register file in four columns. Each register is shown
// with its number, its conventional name and its value in hex and decimal.
func Registers(w io.Writer, regs [32]uint32) error {
	s := strings.Builder{}
	for i, v := range regs {
		s.WriteString(fmt.Sprintf("%-9s %08x %-11d", fmt.Sprintf("$%d/%s", i, symbols.RegisterName(uint8(i))), v, int32(v)))
		if i%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString("  ")
		}
	}

	if _, err := io.WriteString(w, s.String()); err != nil {
		return curated.Errorf("dump: %v", err)
	}
	return nil
}

// Memory writes every non-zero word in the data memory, one per line.
func Memory(w io.Writer, mem []uint32) error {
	s := strings.Builder{}
	for i, v := range mem {
		if v != 0 {
			s.WriteString(fmt.Sprintf("m[%d] %08x %d\n", i, v, int32(v)))
		}
	}
	if s.Len() == 0 {
		s.WriteString("all zero\n")
	}

	if _, err := io.WriteString(w, s.String()); err != nil {
		return curated.Errorf("dump: %v", err)
	}
	return nil
}

// Graph writes the state as a graphviz dot file. The logging permission is
// not included in the graph.
func Graph(w io.Writer, st *cpu.State) {
	s := st.Snapshot()
	s.Log = nil
	memviz.Map(w, s)
}
