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

// Common is implemented by every view.
type Common interface {
	Word() uint32
	Cond() Cond
	Group() uint32
}

// DataProcessing is implemented by views with an opcode and a set-flags bit.
type DataProcessing interface {
	Opcode() Opcode
	S() bool
}

// LoadStore is implemented by views with the addressing mode bits.
type LoadStore interface {
	P() bool
	U() bool
	B() bool
	W() bool
	L() bool
}

// LoadStoreMultiple is implemented by views with a register list.
type LoadStoreMultiple interface {
	LoadStore
	Reglist() uint16
}

// RnField is implemented by views with a first operand or base register.
type RnField interface {
	Rn() Register
}

// RdField is implemented by views with a destination register.
type RdField interface {
	Rd() Register
}

// RsField is implemented by views with a shift or multiply register.
type RsField interface {
	Rs() Register
}

// RmField is implemented by views with a second operand register.
type RmField interface {
	Rm() Register
}

// Imm8Field is implemented by views with an 8bit immediate.
type Imm8Field interface {
	Imm8() uint32
}

// Imm12Field is implemented by views with a 12bit immediate.
type Imm12Field interface {
	Imm12() uint32
}

// Imm24Field is implemented by views with a 24bit immediate.
type Imm24Field interface {
	Imm24() uint32
}

// SplitImmediate is implemented by views where the immediate is encoded in two
// parts. Imm() returns the combined value.
type SplitImmediate interface {
	ImmHi() uint32
	ImmLo() uint32
	Imm() uint32
}

// Shifted is implemented by views with a shifted register operand.
type Shifted interface {
	ShiftType() ShiftType
}

// ShiftImmField is implemented by views where the shift amount is an
// immediate.
type ShiftImmField interface {
	Shifted
	ShiftImm() uint32
}

// Rotated is implemented by views with a rotated 8bit immediate. Immediate()
// returns the value after rotation.
type Rotated interface {
	Imm8Field
	RotImm() uint32
	Immediate() uint32
}

// BranchLink is implemented by branch views.
type BranchLink interface {
	Imm24Field
	Link() bool
	Offset() int32
}

// Coprocessor is implemented by coprocessor views.
type Coprocessor interface {
	CpNum() CoprocNumber
}

// StatusRegister is implemented by views that access CPSR or SPSR. R() is
// true for SPSR.
type StatusRegister interface {
	R() bool
}

// MultiplyExtra is implemented by the multiply view.
type MultiplyExtra interface {
	RdHi() Register
	RdLo() Register
	A() bool
	Signed() bool
	X() bool
	Y() bool
}

// the capability sets of each view.
var (
	_ Common         = DpShiftImmView(0)
	_ DataProcessing = DpShiftImmView(0)
	_ RnField        = DpShiftImmView(0)
	_ RdField        = DpShiftImmView(0)
	_ RmField        = DpShiftImmView(0)
	_ ShiftImmField  = DpShiftImmView(0)

	_ Common         = DpShiftRegView(0)
	_ DataProcessing = DpShiftRegView(0)
	_ RnField        = DpShiftRegView(0)
	_ RdField        = DpShiftRegView(0)
	_ RsField        = DpShiftRegView(0)
	_ RmField        = DpShiftRegView(0)
	_ Shifted        = DpShiftRegView(0)

	_ Common         = DpRotImmView(0)
	_ DataProcessing = DpRotImmView(0)
	_ RnField        = DpRotImmView(0)
	_ RdField        = DpRotImmView(0)
	_ Rotated        = DpRotImmView(0)

	_ Common         = MrsView(0)
	_ StatusRegister = MrsView(0)
	_ RdField        = MrsView(0)

	_ Common         = MsrRegView(0)
	_ StatusRegister = MsrRegView(0)
	_ RmField        = MsrRegView(0)

	_ Common         = MsrImmView(0)
	_ StatusRegister = MsrImmView(0)
	_ Rotated        = MsrImmView(0)

	_ Common  = BxView(0)
	_ RmField = BxView(0)

	_ Common  = ClzView(0)
	_ RdField = ClzView(0)
	_ RmField = ClzView(0)

	_ Common  = SatView(0)
	_ RnField = SatView(0)
	_ RdField = SatView(0)
	_ RmField = SatView(0)

	_ Common        = MulView(0)
	_ MultiplyExtra = MulView(0)
	_ RsField       = MulView(0)
	_ RmField       = MulView(0)

	_ Common  = SwpView(0)
	_ RnField = SwpView(0)
	_ RdField = SwpView(0)
	_ RmField = SwpView(0)

	_ Common         = LsMiscImmView(0)
	_ LoadStore      = LsMiscImmView(0)
	_ RnField        = LsMiscImmView(0)
	_ RdField        = LsMiscImmView(0)
	_ SplitImmediate = LsMiscImmView(0)

	_ Common    = LsMiscRegView(0)
	_ LoadStore = LsMiscRegView(0)
	_ RnField   = LsMiscRegView(0)
	_ RdField   = LsMiscRegView(0)
	_ RmField   = LsMiscRegView(0)

	_ Common     = LsImmView(0)
	_ LoadStore  = LsImmView(0)
	_ RnField    = LsImmView(0)
	_ RdField    = LsImmView(0)
	_ Imm12Field = LsImmView(0)

	_ Common        = LsShiftView(0)
	_ LoadStore     = LsShiftView(0)
	_ RnField       = LsShiftView(0)
	_ RdField       = LsShiftView(0)
	_ RmField       = LsShiftView(0)
	_ ShiftImmField = LsShiftView(0)

	_ Common            = LsMultiView(0)
	_ LoadStoreMultiple = LsMultiView(0)
	_ RnField           = LsMultiView(0)

	_ Common     = BranchView(0)
	_ BranchLink = BranchView(0)

	_ Common         = BkptView(0)
	_ SplitImmediate = BkptView(0)

	_ Common     = SwiView(0)
	_ Imm24Field = SwiView(0)

	_ Common      = CoprocLsView(0)
	_ Coprocessor = CoprocLsView(0)
	_ LoadStore   = CoprocLsView(0)
	_ RnField     = CoprocLsView(0)
	_ Imm8Field   = CoprocLsView(0)

	_ Common      = CoprocDpView(0)
	_ Coprocessor = CoprocDpView(0)

	_ Common      = CoprocRtView(0)
	_ Coprocessor = CoprocRtView(0)
	_ RdField     = CoprocRtView(0)
)
