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

import "github.com/eigenform/armbf/bitmask"

// the masks used to separate the instruction families that share group 000.
// the masks overlap so the order in which they are tested is important.
const (
	// bits 27:24 == 0000 and bits 7:4 == 1001
	multiplyMask  = 0x0f0000f0
	multiplyMatch = 0x00000090

	// bits 27:25 == 000 and bits 7 and 4 set
	lsMiscMask  = 0x0e000090
	lsMiscMatch = 0x00000090

	// bits 27:26 == 00, bits 24:23 == 10 and bit 20 clear. this is the space
	// of the compare opcodes without the S bit
	controlMask  = 0x0d900000
	controlMatch = 0x01000000
)

// Decode classifies an instruction word.
func Decode(w uint32) Instruction {
	return Instruction{Kind: DecodeKind(w), Word: w}
}

// DecodeKind classifies an instruction word and returns only the Kind.
//
// The kind depends only on bits 27:20 and 7:4 of the word and on whether the
// condition field is 1111.
func DecodeKind(w uint32) Kind {
	switch bitmask.Field(w, 27, 25) {
	case 0b000:
		if bitmask.Match(w, multiplyMask, multiplyMatch) {
			return decodeMultiply(w)
		}
		if bitmask.Match(w, lsMiscMask, lsMiscMatch) {
			return decodeLsMisc(w)
		}
		if isControl(w) {
			return decodeControl(w)
		}
		op := Kind(bitmask.Field(w, 24, 21))
		if bitmask.Bit(w, 4) {
			return AndShiftReg + op
		}
		return AndShiftImm + op

	case 0b001:
		if isControl(w) {
			return MsrImm
		}
		return AndRotImm + Kind(bitmask.Field(w, 24, 21))

	case 0b010:
		return StrImm + loadStoreIndex(w)

	case 0b011:
		// media instructions
		if bitmask.Bit(w, 4) {
			return Undefined
		}
		return StrReg + loadStoreIndex(w)

	case 0b100:
		k := Stmda + Kind(bitmask.Field(w, 24, 23))
		if bitmask.Bit(w, 20) {
			k += Ldmda - Stmda
		}
		return k

	case 0b101:
		if Cond(bitmask.Field(w, 31, 28)) == NV {
			return BlxImm
		}
		if bitmask.Bit(w, 24) {
			return Bl
		}
		return B

	case 0b110:
		if bitmask.Bit(w, 20) {
			return Ldc
		}
		return Stc

	case 0b111:
		if bitmask.Bit(w, 24) {
			if Cond(bitmask.Field(w, 31, 28)) == NV {
				return Undefined
			}
			return Swi
		}
		if bitmask.Bit(w, 4) {
			if bitmask.Bit(w, 20) {
				return Mrc
			}
			return Mcr
		}
		return Cdp
	}

	return Undefined
}

// loadStoreIndex returns the offset from the first kind of a load/store
// family selected by the L and B bits.
func loadStoreIndex(w uint32) Kind {
	var k Kind
	if bitmask.Bit(w, 20) {
		k += 2
	}
	if bitmask.Bit(w, 22) {
		k++
	}
	return k
}

// isControl returns true if the word is in the control and DSP extension
// space. Words with bit 25 clear and bits 7 and 4 set are in the
// miscellaneous load/store space instead.
func isControl(w uint32) bool {
	if !bitmask.Match(w, controlMask, controlMatch) {
		return false
	}
	return bitmask.Bit(w, 25) || !bitmask.Bit(w, 7) || !bitmask.Bit(w, 4)
}

func decodeMultiply(w uint32) Kind {
	switch bitmask.Field(w, 23, 21) {
	case 0b000:
		return Mul
	case 0b001:
		return Mla
	case 0b100:
		return Umull
	case 0b101:
		return Umlal
	case 0b110:
		return Smull
	case 0b111:
		return Smlal
	}
	return Undefined
}

func decodeLsMisc(w uint32) Kind {
	l := bitmask.Bit(w, 20)
	imm := bitmask.Bit(w, 22)

	switch bitmask.Field(w, 7, 4) {
	case 0b1001:
		if imm {
			return Swpb
		}
		return Swp

	case 0b1011:
		switch {
		case l && imm:
			return LdrhImm
		case l:
			return LdrhReg
		case imm:
			return StrhImm
		}
		return StrhReg

	case 0b1101, 0b1110, 0b1111:
		h := bitmask.Bit(w, 5)
		if l {
			switch {
			case imm && h:
				return LdrshImm
			case imm:
				return LdrsbImm
			case h:
				return LdrshReg
			}
			return LdrsbReg
		}
		switch {
		case imm && h:
			return StrdImm
		case imm:
			return LdrdImm
		case h:
			return StrdReg
		}
		return LdrdReg
	}

	return Undefined
}

func decodeControl(w uint32) Kind {
	switch bitmask.Field(w, 7, 4) {
	case 0b0000:
		if bitmask.Bit(w, 21) {
			return MsrReg
		}
		return Mrs

	case 0b0001:
		if bitmask.Bit(w, 22) {
			return Clz
		}
		return Bx

	case 0b0011:
		return BlxReg

	case 0b0101:
		return Qadd + Kind(bitmask.Field(w, 22, 21))

	case 0b0111:
		return Bkpt

	case 0b1000, 0b1010, 0b1100, 0b1110:
		switch bitmask.Field(w, 22, 21) {
		case 0b00:
			return SmlaXy
		case 0b01:
			if bitmask.Bit(w, 5) {
				return SmulwY
			}
			return SmlawY
		case 0b10:
			return SmlalXy
		}
		return SmulXy
	}

	return Undefined
}
