// This file is part of armbf.
//
// armbf is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// armbf is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with armbf.  If not, see <https://www.gnu.org/licenses/>.

package disassembly

import (
	"fmt"

	"github.com/eigenform/armbf/thumb"
)

// thumbFormatter returns the formatting function for the kind.
func thumbFormatter(k thumb.Kind) func(thumb.Instruction, uint32) Entry {
	switch k.Shape() {
	case thumb.ShapeDpFmt1:
		return formatThumbAddSubtractReg
	case thumb.ShapeDpFmt2:
		return formatThumbAddSubtractImm
	case thumb.ShapeDpFmt3:
		return formatThumbMovCmpAddSubImm
	case thumb.ShapeDpFmt4:
		return formatThumbMoveShiftedRegister
	case thumb.ShapeDpFmt5:
		return formatThumbALUoperations
	case thumb.ShapeDpFmt6:
		return formatThumbLoadAddress
	case thumb.ShapeDpFmt7:
		return formatThumbAddOffsetToSP
	case thumb.ShapeDpFmt8:
		return formatThumbHiRegisterOps
	case thumb.ShapeBranchExchange:
		return formatThumbBranchExchange
	case thumb.ShapeLsFmt1:
		return formatThumbLoadStoreWithImmOffset
	case thumb.ShapeLsFmt2:
		return formatThumbLoadStoreWithRegisterOffset
	case thumb.ShapeLsFmt3:
		return formatThumbPCrelativeLoad
	case thumb.ShapeLsFmt4:
		return formatThumbSPRelativeLoadStore
	case thumb.ShapeLsMultiFmt1:
		return formatThumbMultipleLoadStore
	case thumb.ShapeLsMultiFmt2:
		return formatThumbPushPopRegisters
	case thumb.ShapeException:
		return formatThumbException
	case thumb.ShapeCondBranch:
		return formatThumbConditionalBranch
	}
	return formatUndefinedThumb
}

func formatUndefinedThumb(_ thumb.Instruction, _ uint32) Entry {
	return Entry{Operator: UndefinedOperator}
}

func formatThumbAddSubtractReg(ins thumb.Instruction, _ uint32) Entry {
	v := thumb.DpFmt1View(ins.Halfword)
	return Entry{
		Operator: ins.Kind.Mnemonic(),
		Operand:  fmt.Sprintf("%s, %s, %s", v.Rd(), v.Rn(), v.Rm()),
	}
}

func formatThumbAddSubtractImm(ins thumb.Instruction, _ uint32) Entry {
	v := thumb.DpFmt2View(ins.Halfword)
	return Entry{
		Operator: ins.Kind.Mnemonic(),
		Operand:  fmt.Sprintf("%s, %s, %s", v.Rd(), v.Rn(), immediate(uint32(v.Imm3()))),
	}
}

func formatThumbMovCmpAddSubImm(ins thumb.Instruction, _ uint32) Entry {
	v := thumb.DpFmt3View(ins.Halfword)
	return Entry{
		Operator: ins.Kind.Mnemonic(),
		Operand:  fmt.Sprintf("%s, %s", v.Rd(), immediate(uint32(v.Imm8()))),
	}
}

func formatThumbMoveShiftedRegister(ins thumb.Instruction, _ uint32) Entry {
	v := thumb.DpFmt4View(ins.Halfword)

	// a shift of zero means 32 for the right shifts
	amount := v.Imm5()
	if amount == 0 && ins.Kind != thumb.LslImm {
		amount = 32
	}

	return Entry{
		Operator: ins.Kind.Mnemonic(),
		Operand:  fmt.Sprintf("%s, %s, #%d", v.Rd(), v.Rm(), amount),
	}
}

func formatThumbALUoperations(ins thumb.Instruction, _ uint32) Entry {
	v := thumb.DpFmt5View(ins.Halfword)
	return Entry{
		Operator: ins.Kind.Mnemonic(),
		Operand:  fmt.Sprintf("%s, %s", v.Rd(), v.Rm()),
	}
}

func formatThumbLoadAddress(ins thumb.Instruction, _ uint32) Entry {
	v := thumb.DpFmt6View(ins.Halfword)
	base := "pc"
	if v.SP() {
		base = "sp"
	}
	return Entry{
		Operator: ins.Kind.Mnemonic(),
		Operand:  fmt.Sprintf("%s, %s, %s", v.Rd(), base, immediate(uint32(v.Imm8())*4)),
	}
}

func formatThumbAddOffsetToSP(ins thumb.Instruction, _ uint32) Entry {
	v := thumb.DpFmt7View(ins.Halfword)
	return Entry{
		Operator: ins.Kind.Mnemonic(),
		Operand:  fmt.Sprintf("sp, %s", immediate(uint32(v.Imm7())*4)),
	}
}

func formatThumbHiRegisterOps(ins thumb.Instruction, _ uint32) Entry {
	v := thumb.DpFmt8View(ins.Halfword)
	return Entry{
		Operator: ins.Kind.Mnemonic(),
		Operand:  fmt.Sprintf("%s, %s", v.RdFull(), v.RmFull()),
	}
}

func formatThumbBranchExchange(ins thumb.Instruction, _ uint32) Entry {
	v := thumb.BranchExchangeView(ins.Halfword)
	return Entry{
		Operator: ins.Kind.Mnemonic(),
		Operand:  v.Rm().String(),
	}
}

func formatThumbLoadStoreWithImmOffset(ins thumb.Instruction, _ uint32) Entry {
	v := thumb.LsFmt1View(ins.Halfword)

	// the immediate is scaled by the size of the transfer
	offset := uint32(v.Imm5())
	switch ins.Kind {
	case thumb.StrImm1, thumb.LdrImm1:
		offset *= 4
	case thumb.StrhImm, thumb.LdrhImm:
		offset *= 2
	}

	return Entry{
		Operator: ins.Kind.Mnemonic(),
		Operand:  fmt.Sprintf("%s, [%s, %s]", v.Rd(), v.Rn(), immediate(offset)),
	}
}

func formatThumbLoadStoreWithRegisterOffset(ins thumb.Instruction, _ uint32) Entry {
	v := thumb.LsFmt2View(ins.Halfword)
	return Entry{
		Operator: ins.Kind.Mnemonic(),
		Operand:  fmt.Sprintf("%s, [%s, %s]", v.Rd(), v.Rn(), v.Rm()),
	}
}

func formatThumbPCrelativeLoad(ins thumb.Instruction, addr uint32) Entry {
	v := thumb.LsFmt3View(ins.Halfword)
	offset := uint32(v.Imm8()) * 4

	// the value of the PC is word aligned for the address calculation
	target := ((addr + 4) &^ 3) + offset

	return Entry{
		Operator:  ins.Kind.Mnemonic(),
		Operand:   fmt.Sprintf("%s, [pc, %s]", v.Rd(), immediate(offset)),
		Target:    target,
		HasTarget: true,
	}
}

func formatThumbSPRelativeLoadStore(ins thumb.Instruction, _ uint32) Entry {
	v := thumb.LsFmt4View(ins.Halfword)
	return Entry{
		Operator: ins.Kind.Mnemonic(),
		Operand:  fmt.Sprintf("%s, [sp, %s]", v.Rd(), immediate(uint32(v.Imm8())*4)),
	}
}

func formatThumbMultipleLoadStore(ins thumb.Instruction, _ uint32) Entry {
	v := thumb.LsMultiFmt1View(ins.Halfword)
	return Entry{
		Operator: ins.Kind.Mnemonic(),
		Operand:  fmt.Sprintf("%s!, %s", v.Rn(), reglistToMnemonic(v.Registers())),
	}
}

func formatThumbPushPopRegisters(ins thumb.Instruction, _ uint32) Entry {
	v := thumb.LsMultiFmt2View(ins.Halfword)
	return Entry{
		Operator: ins.Kind.Mnemonic(),
		Operand:  reglistToMnemonic(v.Registers()),
	}
}

func formatThumbException(ins thumb.Instruction, _ uint32) Entry {
	v := thumb.ExceptionView(ins.Halfword)
	return Entry{
		Operator: ins.Kind.Mnemonic(),
		Operand:  fmt.Sprintf("0x%x", v.Imm8()),
	}
}

func formatThumbConditionalBranch(ins thumb.Instruction, addr uint32) Entry {
	v := thumb.CondBranchView(ins.Halfword)
	target := addr + 4 + uint32(v.Offset())
	return Entry{
		Operator:  ins.Kind.Mnemonic() + v.Cond().String(),
		Operand:   fmt.Sprintf("0x%08x", target),
		Target:    target,
		HasTarget: true,
	}
}
