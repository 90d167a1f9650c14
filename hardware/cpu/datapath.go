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

package cpu

import (
	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/hardware/cpu/alu"
	"github.com/jetsetilly/singlecycle/hardware/cpu/control"
	"github.com/jetsetilly/singlecycle/hardware/cpu/instruction"
	"github.com/jetsetilly/singlecycle/hardware/cpu/result"
	"github.com/jetsetilly/singlecycle/hardware/memory"
	"github.com/jetsetilly/singlecycle/logger"
)

// Evaluate computes every signal in the datapath for the next tick. The state
// is not changed.
func Evaluate(st *State) (result.Tick, error) {
	t := result.Tick{
		Cycle: st.Cycles,
		PC:    st.PC.Address(),
	}

	// fetch and decode
	t.Instruction = st.program.Fetch(t.PC)
	t.Fields = instruction.Decode(t.Instruction)

	// control unit
	t.Kind = control.Classify(t.Fields.Opcode, t.Fields.Funct)
	t.Signals = t.Kind.Signals()

	if t.Kind == control.Unsupported && t.Instruction != 0 && st.Log != nil {
		logger.Logf(st.Log, "cpu", "unsupported instruction %s at %#04x", t.Instruction, t.PC)
	}

	// register file read and ALU
	t.Data0 = st.Registers.Read(t.Fields.Rs)
	t.RtValue = st.Registers.Read(t.Fields.Rt)
	t.Data1 = alu.OperandB(t.Signals.ALUSrc, t.Signals.ALUOp, t.RtValue, t.Fields.Immediate)
	t.ALUOut = alu.Execute(t.Signals.ALUOp, t.Data0, t.Data1, t.Fields.Immediate)
	t.Zero = t.ALUOut == 0

	// next program counter
	t.BranchTaken = t.Signals.Branch && t.Zero
	t.NextPC = NextPC(t.PC, t.Signals, t.ALUOut, t.Fields.Immediate) & st.PC.Mask()

	// data memory
	var err error
	t.MemOut, err = memoryStage(st.Memory, t.Signals, t.ALUOut)
	if err != nil {
		return t, curated.Errorf("cpu: %v", err)
	}

	// write back
	if t.Signals.RegDst {
		t.WriteRegister = t.Fields.Rd
	} else {
		t.WriteRegister = t.Fields.Rt
	}
	t.WriteBack = writeBack(t.Signals, t.ALUOut, t.MemOut)

	return t, nil
}

// NextPC returns the address of the next instruction. The value is not masked
// to the width of the program counter.
func NextPC(pc uint32, sig control.Signals, aluOut uint32, imm uint16) uint32 {
	if sig.Branch && aluOut == 0 {
		return pc + 1 + instruction.SignExtend16(imm)
	}
	return pc + 1
}

// memoryStage returns the word read from data memory. Nothing is read when
// the memory is being written to. The write itself happens in Commit().
//
// An out of range address is an error if the memory is being written to or if
// the value read is needed by the write-back stage.
func memoryStage(mem *memory.Data, sig control.Signals, address uint32) (uint32, error) {
	if sig.MemWrite {
		if uint64(address) >= uint64(mem.Size()) {
			return 0, curated.Errorf(memory.OutOfRange, address)
		}
		return 0, nil
	}

	v, err := mem.Read(address)
	if err != nil {
		if sig.MemToReg {
			return 0, err
		}
		return 0, nil
	}

	return v, nil
}

// writeBack is the multiplexer that chooses the value to be written to the
// register file.
func writeBack(sig control.Signals, aluOut uint32, memOut uint32) uint32 {
	if sig.MemToReg {
		return memOut
	}
	return aluOut
}
