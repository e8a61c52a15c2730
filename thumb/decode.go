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

import "github.com/eigenform/armbf/bitmask"

// Decode classifies an instruction halfword.
func Decode(h uint16) Instruction {
	return Instruction{Kind: DecodeKind(h), Halfword: h}
}

// DecodeKind classifies an instruction halfword and returns only the Kind.
// The kind depends only on bits 15:5 of the halfword.
func DecodeKind(h uint16) Kind {
	switch bitmask.Field(h, 15, 13) {
	case 0b000:
		op := bitmask.Field(h, 12, 11)
		if op == 0b11 {
			return AddReg1 + Kind(bitmask.Field(h, 10, 9))
		}
		return LslImm + Kind(op)

	case 0b001:
		return MovImm + Kind(bitmask.Field(h, 12, 11))

	case 0b010:
		switch bitmask.Field(h, 12, 10) {
		case 0b000:
			return AndReg + Kind(bitmask.Field(h, 9, 6))
		case 0b001:
			return decodeSpecial(h)
		case 0b010, 0b011:
			return LdrLit
		}
		return StrReg + Kind(bitmask.Field(h, 11, 9))

	case 0b011:
		// L is bit 11 and B is bit 12
		return StrImm1 + Kind(bitmask.Field(h, 12, 11))

	case 0b100:
		return StrhImm + Kind(bitmask.Field(h, 12, 11))

	case 0b101:
		switch bitmask.Field(h, 12, 11) {
		case 0b00:
			return AddImmPc
		case 0b01:
			return AddImmSp
		}
		return decodeMisc(h)

	case 0b110:
		switch bitmask.Field(h, 12, 11) {
		case 0b00:
			return Stmia
		case 0b01:
			return Ldmia
		}
		return decodeCondBranch(h)
	}

	// unconditional branch and the BL/BLX prefixes
	return Undefined
}

// high register operations and branch exchange.
func decodeSpecial(h uint16) Kind {
	switch bitmask.Field(h, 9, 8) {
	case 0b00:
		return AddReg2
	case 0b01:
		return CmpReg2
	case 0b10:
		return MovReg
	}
	if bitmask.Bit(h, 7) {
		return BlxReg
	}
	return Bx
}

func decodeMisc(h uint16) Kind {
	switch bitmask.Field(h, 11, 8) {
	case 0b0000:
		if bitmask.Bit(h, 7) {
			return SubImmSp7
		}
		return AddImmSp7
	case 0b0100, 0b0101:
		return Push
	case 0b1100, 0b1101:
		return Pop
	case 0b1110:
		return Bkpt
	}
	return Undefined
}

func decodeCondBranch(h uint16) Kind {
	switch bitmask.Field(h, 11, 8) {
	case 0b1110:
		return Undefined
	case 0b1111:
		return Swi
	}
	return BranchCond
}
