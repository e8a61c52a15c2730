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

package arm

import (
	"math/bits"

	"github.com/eigenform/armbf/bitmask"
)

// Immediate returns the 8bit immediate rotated right by twice the rotate
// field.
func (v DpRotImmView) Immediate() uint32 {
	return bits.RotateLeft32(v.Imm8(), -int(v.RotImm()*2))
}

// Immediate returns the 8bit immediate rotated right by twice the rotate
// field.
func (v MsrImmView) Immediate() uint32 {
	return bits.RotateLeft32(v.Imm8(), -int(v.RotImm()*2))
}

// Imm returns the 8bit offset formed from the two halves of the immediate.
func (v LsMiscImmView) Imm() uint32 {
	return v.ImmHi()<<4 | v.ImmLo()
}

// Imm returns the 16bit comment field formed from the two halves of the
// immediate.
func (v BkptView) Imm() uint32 {
	return v.ImmHi()<<4 | v.ImmLo()
}

// Offset returns the sign extended branch offset in bytes. The offset is
// relative to the address of the instruction plus eight.
//
// For the BLX (immediate) instruction the link bit is the H bit, which adds
// a halfword to the offset.
func (v BranchView) Offset() int32 {
	o := int32(bitmask.SignExtend(v.Imm24(), 24)) << 2
	if v.Cond() == NV && v.Link() {
		o += 2
	}
	return o
}

// Registers returns the list of registers in the register list in ascending
// order.
func (v LsMultiView) Registers() []Register {
	return RegisterList(uint32(v.Reglist()))
}

// RegisterList expands a register bitmap into a list of registers in
// ascending order.
func RegisterList(m uint32) []Register {
	l := make([]Register, 0, bits.OnesCount32(m))
	for m != 0 {
		r := bits.TrailingZeros32(m)
		l = append(l, Register(r))
		m &= m - 1
	}
	return l
}
