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
	"strings"

	"github.com/eigenform/armbf/arm"
)

// armFormatter returns the formatting function for the kind. Operators are
// written in unified syntax, with the flag suffix before the condition.
func armFormatter(k arm.Kind) func(arm.Instruction, uint32) Entry {
	switch k.Shape() {
	case arm.ShapeDpShiftImm:
		return formatDpShiftImm
	case arm.ShapeDpShiftReg:
		return formatDpShiftReg
	case arm.ShapeDpRotImm:
		return formatDpRotImm
	case arm.ShapeMrs:
		return formatMrs
	case arm.ShapeMsrReg:
		return formatMsrReg
	case arm.ShapeMsrImm:
		return formatMsrImm
	case arm.ShapeBx:
		return formatBx
	case arm.ShapeClz:
		return formatClz
	case arm.ShapeSat:
		return formatSat
	case arm.ShapeMul:
		return formatMul
	case arm.ShapeSwp:
		return formatSwp
	case arm.ShapeLsMiscImm:
		return formatLsMiscImm
	case arm.ShapeLsMiscReg:
		return formatLsMiscReg
	case arm.ShapeLsImm:
		return formatLsImm
	case arm.ShapeLsShift:
		return formatLsShift
	case arm.ShapeLsMulti:
		return formatLsMulti
	case arm.ShapeBranch:
		return formatBranch
	case arm.ShapeBkpt:
		return formatBkpt
	case arm.ShapeSwi:
		return formatSwi
	case arm.ShapeCoprocLs:
		return formatCoprocLs
	case arm.ShapeCoprocDp:
		return formatCoprocDp
	case arm.ShapeCoprocRt:
		return formatCoprocRt
	}
	return formatUndefinedARM
}

func formatUndefinedARM(_ arm.Instruction, _ uint32) Entry {
	return Entry{Operator: UndefinedOperator}
}

// operator returns the mnemonic of the kind with the condition suffix.
func operator(k arm.Kind, c arm.Cond) string {
	return k.Mnemonic() + c.Suffix()
}

// immediate formats a value as an immediate operand.
func immediate(v uint32) string {
	return fmt.Sprintf("#0x%x", v)
}

// offsetImmediate formats a value as a signed immediate offset.
func offsetImmediate(u bool, v uint32) string {
	if u {
		return fmt.Sprintf("#0x%x", v)
	}
	return fmt.Sprintf("#-0x%x", v)
}

// offsetRegister formats a register offset with its sign.
func offsetRegister(u bool, rm string) string {
	if u {
		return rm
	}
	return "-" + rm
}

// shiftedRegister formats a register shifted by an immediate amount. An
// amount of zero means 32 for lsr and asr and selects rrx for ror.
func shiftedRegister(rm arm.Register, st arm.ShiftType, amount uint32) string {
	if amount == 0 {
		switch st {
		case arm.LSL:
			return rm.String()
		case arm.ROR:
			return fmt.Sprintf("%s, rrx", rm)
		}
		amount = 32
	}
	return fmt.Sprintf("%s, %s #%d", rm, st, amount)
}

// addressing formats the address of a load/store instruction. the offset is
// omitted from pre-indexed addresses if omit is true.
func addressing(rn arm.Register, p bool, w bool, offset string, omit bool) string {
	if !p {
		return fmt.Sprintf("[%s], %s", rn, offset)
	}

	var s string
	if omit {
		s = fmt.Sprintf("[%s]", rn)
	} else {
		s = fmt.Sprintf("[%s, %s]", rn, offset)
	}
	if w {
		s += "!"
	}
	return s
}

// reglistToMnemonic converts a list of registers to a string of register
// names separated by commas.
func reglistToMnemonic(regs []arm.Register) string {
	s := strings.Builder{}
	s.WriteString("{")
	for i, r := range regs {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(r.String())
	}
	s.WriteString("}")
	return s.String()
}

// the operator of a data-processing instruction. the compare operations
// always set the flags so no suffix is shown for them.
func dpOperator(k arm.Kind, op arm.Opcode, s bool, c arm.Cond) string {
	if s && !op.IsCompare() {
		return k.Mnemonic() + "s" + c.Suffix()
	}
	return operator(k, c)
}

func dpOperand(op arm.Opcode, rd arm.Register, rn arm.Register, shifter string) string {
	switch {
	case op.IsCompare():
		return fmt.Sprintf("%s, %s", rn, shifter)
	case op.IsMove():
		return fmt.Sprintf("%s, %s", rd, shifter)
	}
	return fmt.Sprintf("%s, %s, %s", rd, rn, shifter)
}

func formatDpShiftImm(ins arm.Instruction, _ uint32) Entry {
	v := arm.DpShiftImmView(ins.Word)
	return Entry{
		Operator: dpOperator(ins.Kind, v.Opcode(), v.S(), v.Cond()),
		Operand:  dpOperand(v.Opcode(), v.Rd(), v.Rn(), shiftedRegister(v.Rm(), v.ShiftType(), v.ShiftImm())),
	}
}

func formatDpShiftReg(ins arm.Instruction, _ uint32) Entry {
	v := arm.DpShiftRegView(ins.Word)
	shifter := fmt.Sprintf("%s, %s %s", v.Rm(), v.ShiftType(), v.Rs())
	return Entry{
		Operator: dpOperator(ins.Kind, v.Opcode(), v.S(), v.Cond()),
		Operand:  dpOperand(v.Opcode(), v.Rd(), v.Rn(), shifter),
	}
}

func formatDpRotImm(ins arm.Instruction, _ uint32) Entry {
	v := arm.DpRotImmView(ins.Word)
	return Entry{
		Operator: dpOperator(ins.Kind, v.Opcode(), v.S(), v.Cond()),
		Operand:  dpOperand(v.Opcode(), v.Rd(), v.Rn(), immediate(v.Immediate())),
	}
}

// statusRegister returns the name of the status register with the field
// suffix for the mask. A zero mask has no suffix.
func statusRegister(r bool, mask uint32) string {
	s := "cpsr"
	if r {
		s = "spsr"
	}
	if mask == 0 {
		return s
	}

	s += "_"
	for i, f := range "fsxc" {
		if mask&(0x08>>i) != 0 {
			s += string(f)
		}
	}
	return s
}

func formatMrs(ins arm.Instruction, _ uint32) Entry {
	v := arm.MrsView(ins.Word)
	return Entry{
		Operator: operator(ins.Kind, v.Cond()),
		Operand:  fmt.Sprintf("%s, %s", v.Rd(), statusRegister(v.R(), 0)),
	}
}

func formatMsrReg(ins arm.Instruction, _ uint32) Entry {
	v := arm.MsrRegView(ins.Word)
	return Entry{
		Operator: operator(ins.Kind, v.Cond()),
		Operand:  fmt.Sprintf("%s, %s", statusRegister(v.R(), v.FieldMask()), v.Rm()),
	}
}

func formatMsrImm(ins arm.Instruction, _ uint32) Entry {
	v := arm.MsrImmView(ins.Word)
	return Entry{
		Operator: operator(ins.Kind, v.Cond()),
		Operand:  fmt.Sprintf("%s, %s", statusRegister(v.R(), v.FieldMask()), immediate(v.Immediate())),
	}
}

func formatBx(ins arm.Instruction, _ uint32) Entry {
	v := arm.BxView(ins.Word)
	return Entry{
		Operator: operator(ins.Kind, v.Cond()),
		Operand:  v.Rm().String(),
	}
}

func formatClz(ins arm.Instruction, _ uint32) Entry {
	v := arm.ClzView(ins.Word)
	return Entry{
		Operator: operator(ins.Kind, v.Cond()),
		Operand:  fmt.Sprintf("%s, %s", v.Rd(), v.Rm()),
	}
}

func formatSat(ins arm.Instruction, _ uint32) Entry {
	v := arm.SatView(ins.Word)
	return Entry{
		Operator: operator(ins.Kind, v.Cond()),
		Operand:  fmt.Sprintf("%s, %s, %s", v.Rd(), v.Rm(), v.Rn()),
	}
}

// halfSelect returns the letter that selects the top or bottom half of a
// register in the signed multiply instructions.
func halfSelect(top bool) string {
	if top {
		return "t"
	}
	return "b"
}

func formatMul(ins arm.Instruction, _ uint32) Entry {
	v := arm.MulView(ins.Word)

	op := ins.Kind.Mnemonic()
	var operand string

	switch ins.Kind {
	case arm.Mul:
		operand = fmt.Sprintf("%s, %s, %s", v.RdHi(), v.Rm(), v.Rs())
	case arm.Mla:
		operand = fmt.Sprintf("%s, %s, %s, %s", v.RdHi(), v.Rm(), v.Rs(), v.RdLo())
	case arm.Umull, arm.Umlal, arm.Smull, arm.Smlal:
		operand = fmt.Sprintf("%s, %s, %s, %s", v.RdLo(), v.RdHi(), v.Rm(), v.Rs())
	case arm.SmlaXy:
		op += halfSelect(v.X()) + halfSelect(v.Y())
		operand = fmt.Sprintf("%s, %s, %s, %s", v.RdHi(), v.Rm(), v.Rs(), v.RdLo())
	case arm.SmlawY:
		op += halfSelect(v.Y())
		operand = fmt.Sprintf("%s, %s, %s, %s", v.RdHi(), v.Rm(), v.Rs(), v.RdLo())
	case arm.SmulwY:
		op += halfSelect(v.Y())
		operand = fmt.Sprintf("%s, %s, %s", v.RdHi(), v.Rm(), v.Rs())
	case arm.SmlalXy:
		op += halfSelect(v.X()) + halfSelect(v.Y())
		operand = fmt.Sprintf("%s, %s, %s, %s", v.RdLo(), v.RdHi(), v.Rm(), v.Rs())
	case arm.SmulXy:
		op += halfSelect(v.X()) + halfSelect(v.Y())
		operand = fmt.Sprintf("%s, %s, %s", v.RdHi(), v.Rm(), v.Rs())
	}

	// only the long and short multiplies have an S bit
	switch ins.Kind {
	case arm.Mul, arm.Mla, arm.Umull, arm.Umlal, arm.Smull, arm.Smlal:
		if v.S() {
			op += "s"
		}
	}

	return Entry{
		Operator: op + v.Cond().Suffix(),
		Operand:  operand,
	}
}

func formatSwp(ins arm.Instruction, _ uint32) Entry {
	v := arm.SwpView(ins.Word)
	return Entry{
		Operator: operator(ins.Kind, v.Cond()),
		Operand:  fmt.Sprintf("%s, %s, [%s]", v.Rd(), v.Rm(), v.Rn()),
	}
}

func formatLsMiscImm(ins arm.Instruction, _ uint32) Entry {
	v := arm.LsMiscImmView(ins.Word)
	address := addressing(v.Rn(), v.P(), v.W(), offsetImmediate(v.U(), v.Imm()), v.Imm() == 0 && v.U())
	return Entry{
		Operator: operator(ins.Kind, v.Cond()),
		Operand:  fmt.Sprintf("%s, %s", v.Rd(), address),
	}
}

func formatLsMiscReg(ins arm.Instruction, _ uint32) Entry {
	v := arm.LsMiscRegView(ins.Word)
	address := addressing(v.Rn(), v.P(), v.W(), offsetRegister(v.U(), v.Rm().String()), false)
	return Entry{
		Operator: operator(ins.Kind, v.Cond()),
		Operand:  fmt.Sprintf("%s, %s", v.Rd(), address),
	}
}

func formatLsImm(ins arm.Instruction, _ uint32) Entry {
	v := arm.LsImmView(ins.Word)
	address := addressing(v.Rn(), v.P(), v.W(), offsetImmediate(v.U(), v.Imm12()), v.Imm12() == 0 && v.U())
	return Entry{
		Operator: operator(ins.Kind, v.Cond()),
		Operand:  fmt.Sprintf("%s, %s", v.Rd(), address),
	}
}

func formatLsShift(ins arm.Instruction, _ uint32) Entry {
	v := arm.LsShiftView(ins.Word)
	offset := offsetRegister(v.U(), shiftedRegister(v.Rm(), v.ShiftType(), v.ShiftImm()))
	return Entry{
		Operator: operator(ins.Kind, v.Cond()),
		Operand:  fmt.Sprintf("%s, %s", v.Rd(), addressing(v.Rn(), v.P(), v.W(), offset, false)),
	}
}

func formatLsMulti(ins arm.Instruction, _ uint32) Entry {
	v := arm.LsMultiView(ins.Word)

	rn := v.Rn().String()
	if v.W() {
		rn += "!"
	}
	regs := reglistToMnemonic(v.Registers())
	if v.S() {
		regs += "^"
	}

	return Entry{
		Operator: operator(ins.Kind, v.Cond()),
		Operand:  fmt.Sprintf("%s, %s", rn, regs),
	}
}

func formatBranch(ins arm.Instruction, addr uint32) Entry {
	v := arm.BranchView(ins.Word)
	target := addr + 8 + uint32(v.Offset())
	return Entry{
		Operator:  operator(ins.Kind, v.Cond()),
		Operand:   fmt.Sprintf("0x%08x", target),
		Target:    target,
		HasTarget: true,
	}
}

func formatBkpt(ins arm.Instruction, _ uint32) Entry {
	v := arm.BkptView(ins.Word)
	return Entry{
		Operator: operator(ins.Kind, v.Cond()),
		Operand:  fmt.Sprintf("0x%x", v.Imm()),
	}
}

func formatSwi(ins arm.Instruction, _ uint32) Entry {
	v := arm.SwiView(ins.Word)
	return Entry{
		Operator: operator(ins.Kind, v.Cond()),
		Operand:  fmt.Sprintf("0x%x", v.Imm24()),
	}
}

func formatCoprocLs(ins arm.Instruction, _ uint32) Entry {
	v := arm.CoprocLsView(ins.Word)

	op := ins.Kind.Mnemonic()
	if v.N() {
		op += "l"
	}

	var address string
	if !v.P() && !v.W() {
		// unindexed with an option field for the coprocessor
		address = fmt.Sprintf("[%s], {%d}", v.Rn(), v.Imm8())
	} else {
		address = addressing(v.Rn(), v.P(), v.W(), offsetImmediate(v.U(), v.Imm8()*4), v.Imm8() == 0 && v.U())
	}

	return Entry{
		Operator: op + v.Cond().Suffix(),
		Operand:  fmt.Sprintf("%s, %s, %s", v.CpNum(), v.CRd(), address),
	}
}

func formatCoprocDp(ins arm.Instruction, _ uint32) Entry {
	v := arm.CoprocDpView(ins.Word)
	return Entry{
		Operator: operator(ins.Kind, v.Cond()),
		Operand: fmt.Sprintf("%s, %d, %s, %s, %s, %d",
			v.CpNum(), v.CpOpcode1(), v.CRd(), v.CRn(), v.CRm(), v.CpOpcode2()),
	}
}

func formatCoprocRt(ins arm.Instruction, _ uint32) Entry {
	v := arm.CoprocRtView(ins.Word)
	return Entry{
		Operator: operator(ins.Kind, v.Cond()),
		Operand: fmt.Sprintf("%s, %d, %s, %s, %s, %d",
			v.CpNum(), v.CpOpcode1Rt(), v.Rd(), v.CRn(), v.CRm(), v.CpOpcode2()),
	}
}
