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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/singlecycle/curated"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Control  bool
	FlowInfo bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e Entry) error {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%04x ", e.Address))

	if attr.ByteCode {
		s.WriteString(fmt.Sprintf("%s ", e.Instruction))
	}

	s.WriteString(fmt.Sprintf("%-24s", e.Mnemonic))

	if attr.Control {
		s.WriteString(fmt.Sprintf(" ctl=%03x", e.Signals.Pack()))
	}

	if attr.FlowInfo {
		s.WriteString(" ->")
		for _, n := range e.Next {
			s.WriteString(fmt.Sprintf(" %04x", n))
		}
	}

	if _, err := io.WriteString(output, strings.TrimRight(s.String(), " ")+"\n"); err != nil {
		return curated.Errorf("disassembly: %v", err)
	}

	return nil
}
