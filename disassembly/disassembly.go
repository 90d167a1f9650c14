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
	"github.com/jetsetilly/singlecycle/hardware/cpu"
	"github.com/jetsetilly/singlecycle/hardware/cpu/control"
	"github.com/jetsetilly/singlecycle/hardware/cpu/instruction"
	"github.com/jetsetilly/singlecycle/hardware/cpu/result"
	"github.com/jetsetilly/singlecycle/hardware/memory"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address     uint32
	Instruction instruction.Encoded
	Kind        control.Kind
	Signals     control.Signals
	Mnemonic    string

	// the addresses execution can continue at. a branch has two entries
	// unless the branch target is the next instruction
	Next []uint32
}

// Disassembly is the disassembled program.
type Disassembly struct {
	Entries []Entry
}

// FromProgram disassembles the program. The bits argument is the address
// width of the instruction store the program is intended for.
func FromProgram(program []instruction.Encoded, bits int) (*Disassembly, error) {
	// the instruction store checks the width and the program length
	is, err := memory.NewInstructions(bits)
	if err != nil {
		return nil, err
	}
	if err := is.Load(program); err != nil {
		return nil, err
	}

	mask := uint32(is.Size() - 1)

	dsm := &Disassembly{
		Entries: make([]Entry, len(program)),
	}

	for i, ins := range program {
		pc := uint32(i)
		f := instruction.Decode(ins)
		k := control.Classify(f.Opcode, f.Funct)

		e := Entry{
			Address:     pc,
			Instruction: ins,
			Kind:        k,
			Signals:     k.Signals(),
			Mnemonic:    result.Tick{Instruction: ins, Fields: f, Kind: k}.Mnemonic(),
		}

		e.Next = append(e.Next, cpu.NextPC(pc, e.Signals, 1, f.Immediate)&mask)
		if e.Signals.Branch {
			taken := cpu.NextPC(pc, e.Signals, 0, f.Immediate) & mask
			if taken != e.Next[0] {
				e.Next = append(e.Next, taken)
			}
		}

		dsm.Entries[i] = e
	}

	return dsm, nil
}
