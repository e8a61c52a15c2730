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

// Kind identifies the operation of a decoded instruction. The zero value is
// Undefined.
type Kind uint8

// List of valid Kind values. Kinds selected by a bit field are in field
// order.
const (
	Undefined Kind = iota

	// shift by immediate
	LslImm
	LsrImm
	AsrImm

	// add/subtract register or 3bit immediate
	AddReg1
	SubReg
	AddImm1
	SubImm1

	// 8bit immediate
	MovImm
	CmpImm
	AddImm2
	SubImm2

	// ALU operations
	AndReg
	EorReg
	LslReg
	LsrReg
	AsrReg
	AdcReg
	SbcReg
	RorReg
	TstReg
	RsbImm
	CmpReg1
	CmnReg
	OrrReg
	MulReg
	BicReg
	MvnReg

	// high register operations and branch exchange
	AddReg2
	CmpReg2
	MovReg
	Bx
	BlxReg

	LdrLit

	// load/store with register offset
	StrReg
	StrhReg
	StrbReg
	LdrsbReg
	LdrReg
	LdrhReg
	LdrbReg
	LdrshReg

	// load/store with immediate offset
	StrImm1
	LdrImm1
	StrbImm
	LdrbImm
	StrhImm
	LdrhImm
	StrImm2
	LdrImm2

	// address and stack adjustment
	AddImmPc
	AddImmSp
	AddImmSp7
	SubImmSp7

	// miscellaneous
	Push
	Pop
	Bkpt

	// load/store multiple, conditional branch and software interrupt
	Stmia
	Ldmia
	BranchCond
	Swi

	// NumKinds is the number of Kind values, including Undefined
	NumKinds
)

type kindInfo struct {
	name     string
	mnemonic string
	shape    Shape
}

var kinds = [NumKinds]kindInfo{
	Undefined: {"Undefined", "undefined", ShapeNone},

	LslImm: {"LslImm", "lsl", ShapeDpFmt4},
	LsrImm: {"LsrImm", "lsr", ShapeDpFmt4},
	AsrImm: {"AsrImm", "asr", ShapeDpFmt4},

	AddReg1: {"AddReg1", "add", ShapeDpFmt1},
	SubReg:  {"SubReg", "sub", ShapeDpFmt1},
	AddImm1: {"AddImm1", "add", ShapeDpFmt2},
	SubImm1: {"SubImm1", "sub", ShapeDpFmt2},

	MovImm:  {"MovImm", "mov", ShapeDpFmt3},
	CmpImm:  {"CmpImm", "cmp", ShapeDpFmt3},
	AddImm2: {"AddImm2", "add", ShapeDpFmt3},
	SubImm2: {"SubImm2", "sub", ShapeDpFmt3},

	AndReg:  {"AndReg", "and", ShapeDpFmt5},
	EorReg:  {"EorReg", "eor", ShapeDpFmt5},
	LslReg:  {"LslReg", "lsl", ShapeDpFmt5},
	LsrReg:  {"LsrReg", "lsr", ShapeDpFmt5},
	AsrReg:  {"AsrReg", "asr", ShapeDpFmt5},
	AdcReg:  {"AdcReg", "adc", ShapeDpFmt5},
	SbcReg:  {"SbcReg", "sbc", ShapeDpFmt5},
	RorReg:  {"RorReg", "ror", ShapeDpFmt5},
	TstReg:  {"TstReg", "tst", ShapeDpFmt5},
	RsbImm:  {"RsbImm", "neg", ShapeDpFmt5},
	CmpReg1: {"CmpReg1", "cmp", ShapeDpFmt5},
	CmnReg:  {"CmnReg", "cmn", ShapeDpFmt5},
	OrrReg:  {"OrrReg", "orr", ShapeDpFmt5},
	MulReg:  {"MulReg", "mul", ShapeDpFmt5},
	BicReg:  {"BicReg", "bic", ShapeDpFmt5},
	MvnReg:  {"MvnReg", "mvn", ShapeDpFmt5},

	AddReg2: {"AddReg2", "add", ShapeDpFmt8},
	CmpReg2: {"CmpReg2", "cmp", ShapeDpFmt8},
	MovReg:  {"MovReg", "mov", ShapeDpFmt8},
	Bx:      {"Bx", "bx", ShapeBranchExchange},
	BlxReg:  {"BlxReg", "blx", ShapeBranchExchange},

	LdrLit: {"LdrLit", "ldr", ShapeLsFmt3},

	StrReg:   {"StrReg", "str", ShapeLsFmt2},
	StrhReg:  {"StrhReg", "strh", ShapeLsFmt2},
	StrbReg:  {"StrbReg", "strb", ShapeLsFmt2},
	LdrsbReg: {"LdrsbReg", "ldrsb", ShapeLsFmt2},
	LdrReg:   {"LdrReg", "ldr", ShapeLsFmt2},
	LdrhReg:  {"LdrhReg", "ldrh", ShapeLsFmt2},
	LdrbReg:  {"LdrbReg", "ldrb", ShapeLsFmt2},
	LdrshReg: {"LdrshReg", "ldrsh", ShapeLsFmt2},

	StrImm1: {"StrImm1", "str", ShapeLsFmt1},
	LdrImm1: {"LdrImm1", "ldr", ShapeLsFmt1},
	StrbImm: {"StrbImm", "strb", ShapeLsFmt1},
	LdrbImm: {"LdrbImm", "ldrb", ShapeLsFmt1},
	StrhImm: {"StrhImm", "strh", ShapeLsFmt1},
	LdrhImm: {"LdrhImm", "ldrh", ShapeLsFmt1},
	StrImm2: {"StrImm2", "str", ShapeLsFmt4},
	LdrImm2: {"LdrImm2", "ldr", ShapeLsFmt4},

	AddImmPc:  {"AddImmPc", "add", ShapeDpFmt6},
	AddImmSp:  {"AddImmSp", "add", ShapeDpFmt6},
	AddImmSp7: {"AddImmSp7", "add", ShapeDpFmt7},
	SubImmSp7: {"SubImmSp7", "sub", ShapeDpFmt7},

	Push: {"Push", "push", ShapeLsMultiFmt2},
	Pop:  {"Pop", "pop", ShapeLsMultiFmt2},
	Bkpt: {"Bkpt", "bkpt", ShapeException},

	Stmia:      {"Stmia", "stmia", ShapeLsMultiFmt1},
	Ldmia:      {"Ldmia", "ldmia", ShapeLsMultiFmt1},
	BranchCond: {"BranchCond", "b", ShapeCondBranch},
	Swi:        {"Swi", "swi", ShapeException},
}

func (k Kind) String() string {
	if k >= NumKinds {
		return kinds[Undefined].name
	}
	return kinds[k].name
}

// Mnemonic returns the assembler mnemonic for the kind.
func (k Kind) Mnemonic() string {
	if k >= NumKinds {
		return kinds[Undefined].mnemonic
	}
	return kinds[k].mnemonic
}

// Shape returns the shape of the instruction halfword for the kind.
func (k Kind) Shape() Shape {
	if k >= NumKinds {
		return ShapeNone
	}
	return kinds[k].shape
}
