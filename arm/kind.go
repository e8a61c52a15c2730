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

import "strings"

// Kind identifies the operation of a decoded instruction. The zero value is
// Undefined.
type Kind uint8

// List of valid Kind values.
//
// The data-processing kinds are in opcode order for each of the three
// operand shapes so that the kind can be found by adding the opcode to the
// first kind of the shape.
const (
	Undefined Kind = iota

	AndShiftImm
	EorShiftImm
	SubShiftImm
	RsbShiftImm
	AddShiftImm
	AdcShiftImm
	SbcShiftImm
	RscShiftImm
	TstShiftImm
	TeqShiftImm
	CmpShiftImm
	CmnShiftImm
	OrrShiftImm
	MovShiftImm
	BicShiftImm
	MvnShiftImm

	AndShiftReg
	EorShiftReg
	SubShiftReg
	RsbShiftReg
	AddShiftReg
	AdcShiftReg
	SbcShiftReg
	RscShiftReg
	TstShiftReg
	TeqShiftReg
	CmpShiftReg
	CmnShiftReg
	OrrShiftReg
	MovShiftReg
	BicShiftReg
	MvnShiftReg

	AndRotImm
	EorRotImm
	SubRotImm
	RsbRotImm
	AddRotImm
	AdcRotImm
	SbcRotImm
	RscRotImm
	TstRotImm
	TeqRotImm
	CmpRotImm
	CmnRotImm
	OrrRotImm
	MovRotImm
	BicRotImm
	MvnRotImm

	// status register access
	Mrs
	MsrReg
	MsrImm

	// control and DSP extensions
	Bx
	BlxReg
	Clz
	Qadd
	Qsub
	QdAdd
	QdSub
	Bkpt
	SmlaXy
	SmlawY
	SmulwY
	SmlalXy
	SmulXy

	// multiply
	Mul
	Mla
	Umull
	Umlal
	Smull
	Smlal

	// miscellaneous load/store
	Swp
	Swpb
	StrhImm
	StrhReg
	LdrhImm
	LdrhReg
	LdrsbImm
	LdrsbReg
	LdrshImm
	LdrshReg
	LdrdImm
	LdrdReg
	StrdImm
	StrdReg

	// load/store in (L, B) order
	StrImm
	StrbImm
	LdrImm
	LdrbImm
	StrReg
	StrbReg
	LdrReg
	LdrbReg

	// load/store multiple in (L, P, U) order
	Stmda
	Stmia
	Stmdb
	Stmib
	Ldmda
	Ldmia
	Ldmdb
	Ldmib

	// branch
	B
	Bl
	BlxImm

	// coprocessor and software interrupt
	Stc
	Ldc
	Cdp
	Mrc
	Mcr
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

	Mrs:    {"Mrs", "mrs", ShapeMrs},
	MsrReg: {"MsrReg", "msr", ShapeMsrReg},
	MsrImm: {"MsrImm", "msr", ShapeMsrImm},

	Bx:      {"Bx", "bx", ShapeBx},
	BlxReg:  {"BlxReg", "blx", ShapeBx},
	Clz:     {"Clz", "clz", ShapeClz},
	Qadd:    {"Qadd", "qadd", ShapeSat},
	Qsub:    {"Qsub", "qsub", ShapeSat},
	QdAdd:   {"QdAdd", "qdadd", ShapeSat},
	QdSub:   {"QdSub", "qdsub", ShapeSat},
	Bkpt:    {"Bkpt", "bkpt", ShapeBkpt},
	SmlaXy:  {"SmlaXy", "smla", ShapeMul},
	SmlawY:  {"SmlawY", "smlaw", ShapeMul},
	SmulwY:  {"SmulwY", "smulw", ShapeMul},
	SmlalXy: {"SmlalXy", "smlal", ShapeMul},
	SmulXy:  {"SmulXy", "smul", ShapeMul},

	Mul:   {"Mul", "mul", ShapeMul},
	Mla:   {"Mla", "mla", ShapeMul},
	Umull: {"Umull", "umull", ShapeMul},
	Umlal: {"Umlal", "umlal", ShapeMul},
	Smull: {"Smull", "smull", ShapeMul},
	Smlal: {"Smlal", "smlal", ShapeMul},

	Swp:      {"Swp", "swp", ShapeSwp},
	Swpb:     {"Swpb", "swpb", ShapeSwp},
	StrhImm:  {"StrhImm", "strh", ShapeLsMiscImm},
	StrhReg:  {"StrhReg", "strh", ShapeLsMiscReg},
	LdrhImm:  {"LdrhImm", "ldrh", ShapeLsMiscImm},
	LdrhReg:  {"LdrhReg", "ldrh", ShapeLsMiscReg},
	LdrsbImm: {"LdrsbImm", "ldrsb", ShapeLsMiscImm},
	LdrsbReg: {"LdrsbReg", "ldrsb", ShapeLsMiscReg},
	LdrshImm: {"LdrshImm", "ldrsh", ShapeLsMiscImm},
	LdrshReg: {"LdrshReg", "ldrsh", ShapeLsMiscReg},
	LdrdImm:  {"LdrdImm", "ldrd", ShapeLsMiscImm},
	LdrdReg:  {"LdrdReg", "ldrd", ShapeLsMiscReg},
	StrdImm:  {"StrdImm", "strd", ShapeLsMiscImm},
	StrdReg:  {"StrdReg", "strd", ShapeLsMiscReg},

	StrImm:  {"StrImm", "str", ShapeLsImm},
	StrbImm: {"StrbImm", "strb", ShapeLsImm},
	LdrImm:  {"LdrImm", "ldr", ShapeLsImm},
	LdrbImm: {"LdrbImm", "ldrb", ShapeLsImm},
	StrReg:  {"StrReg", "str", ShapeLsShift},
	StrbReg: {"StrbReg", "strb", ShapeLsShift},
	LdrReg:  {"LdrReg", "ldr", ShapeLsShift},
	LdrbReg: {"LdrbReg", "ldrb", ShapeLsShift},

	Stmda: {"Stmda", "stmda", ShapeLsMulti},
	Stmia: {"Stmia", "stmia", ShapeLsMulti},
	Stmdb: {"Stmdb", "stmdb", ShapeLsMulti},
	Stmib: {"Stmib", "stmib", ShapeLsMulti},
	Ldmda: {"Ldmda", "ldmda", ShapeLsMulti},
	Ldmia: {"Ldmia", "ldmia", ShapeLsMulti},
	Ldmdb: {"Ldmdb", "ldmdb", ShapeLsMulti},
	Ldmib: {"Ldmib", "ldmib", ShapeLsMulti},

	B:      {"B", "b", ShapeBranch},
	Bl:     {"Bl", "bl", ShapeBranch},
	BlxImm: {"BlxImm", "blx", ShapeBranch},

	Stc: {"Stc", "stc", ShapeCoprocLs},
	Ldc: {"Ldc", "ldc", ShapeCoprocLs},
	Cdp: {"Cdp", "cdp", ShapeCoprocDp},
	Mrc: {"Mrc", "mrc", ShapeCoprocRt},
	Mcr: {"Mcr", "mcr", ShapeCoprocRt},
	Swi: {"Swi", "swi", ShapeSwi},
}

func init() {
	for op := OpAnd; op <= OpMvn; op++ {
		m := op.String()
		n := strings.ToUpper(m[:1]) + m[1:]
		kinds[AndShiftImm+Kind(op)] = kindInfo{n + "ShiftImm", m, ShapeDpShiftImm}
		kinds[AndShiftReg+Kind(op)] = kindInfo{n + "ShiftReg", m, ShapeDpShiftReg}
		kinds[AndRotImm+Kind(op)] = kindInfo{n + "RotImm", m, ShapeDpRotImm}
	}
}

func (k Kind) String() string {
	if k >= NumKinds {
		return kinds[Undefined].name
	}
	return kinds[k].name
}

// Mnemonic returns the base assembler mnemonic for the kind, without
// condition or flag suffixes.
func (k Kind) Mnemonic() string {
	if k >= NumKinds {
		return kinds[Undefined].mnemonic
	}
	return kinds[k].mnemonic
}

// Shape returns the shape of the instruction word for the kind.
func (k Kind) Shape() Shape {
	if k >= NumKinds {
		return ShapeNone
	}
	return kinds[k].shape
}

// Opcode returns the data-processing opcode for the kind. The second return
// value is false if the kind is not a data-processing kind.
func (k Kind) Opcode() (Opcode, bool) {
	switch {
	case k >= AndShiftImm && k <= MvnShiftImm:
		return Opcode(k - AndShiftImm), true
	case k >= AndShiftReg && k <= MvnShiftReg:
		return Opcode(k - AndShiftReg), true
	case k >= AndRotImm && k <= MvnRotImm:
		return Opcode(k - AndRotImm), true
	}
	return 0, false
}
