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

package thumb

import (
	"github.com/eigenform/armbf/arm"
	"github.com/eigenform/armbf/bitmask"
)

// Cond is the condition field of a conditional branch.
type Cond = arm.Cond

// RdFull returns the destination register including the high register bit.
func (v DpFmt8View) RdFull() arm.Register {
	r := v.Rd()
	if v.H1() {
		r |= 0x08
	}
	return r
}

// RmFull returns the source register including the high register bit.
func (v DpFmt8View) RmFull() arm.Register {
	r := v.Rm()
	if v.H2() {
		r |= 0x08
	}
	return r
}

// Offset returns the sign extended branch offset in bytes. The offset is
// relative to the address of the instruction plus four.
func (v CondBranchView) Offset() int32 {
	return int32(bitmask.SignExtend(uint32(v.Imm8()), 8)) << 1
}

// Registers returns the registers in the register list in ascending order.
func (v LsMultiFmt1View) Registers() []arm.Register {
	return arm.RegisterList(uint32(v.Reglist()))
}

// Registers returns the registers in the register list in ascending order.
// The R bit adds LR to a push and PC to a pop.
func (v LsMultiFmt2View) Registers() []arm.Register {
	m := uint32(v.Reglist())
	if v.R() {
		if v.L() {
			m |= 1 << arm.PC
		} else {
			m |= 1 << arm.LR
		}
	}
	return arm.RegisterList(m)
}
