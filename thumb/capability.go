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

import "github.com/eigenform/armbf/arm"

// Common is implemented by every view.
type Common interface {
	Word() uint16
}

// RdField is implemented by views with a destination register.
type RdField interface {
	Rd() arm.Register
}

// RnField is implemented by views with a base or first operand register.
type RnField interface {
	Rn() arm.Register
}

// RmField is implemented by views with a second operand register.
type RmField interface {
	Rm() arm.Register
}

// Imm8Field is implemented by views with an 8bit immediate.
type Imm8Field interface {
	Imm8() uint16
}

// LoadFlag is implemented by views that can either load or store.
type LoadFlag interface {
	L() bool
}

// RegisterList is implemented by views with a register list.
type RegisterList interface {
	Reglist() uint16
	Registers() []arm.Register
}

// the capability sets of each view.
var (
	_ Common  = DpFmt1View(0)
	_ RdField = DpFmt1View(0)
	_ RnField = DpFmt1View(0)
	_ RmField = DpFmt1View(0)

	_ Common  = DpFmt2View(0)
	_ RdField = DpFmt2View(0)
	_ RnField = DpFmt2View(0)

	_ Common    = DpFmt3View(0)
	_ RdField   = DpFmt3View(0)
	_ Imm8Field = DpFmt3View(0)

	_ Common  = DpFmt4View(0)
	_ RdField = DpFmt4View(0)
	_ RmField = DpFmt4View(0)

	_ Common  = DpFmt5View(0)
	_ RdField = DpFmt5View(0)
	_ RmField = DpFmt5View(0)

	_ Common    = DpFmt6View(0)
	_ RdField   = DpFmt6View(0)
	_ Imm8Field = DpFmt6View(0)

	_ Common = DpFmt7View(0)

	_ Common  = DpFmt8View(0)
	_ RdField = DpFmt8View(0)
	_ RmField = DpFmt8View(0)

	_ Common   = BranchExchangeView(0)
	_ RmField  = BranchExchangeView(0)
	_ LoadFlag = BranchExchangeView(0)

	_ Common   = LsFmt1View(0)
	_ LoadFlag = LsFmt1View(0)
	_ RdField  = LsFmt1View(0)
	_ RnField  = LsFmt1View(0)

	_ Common  = LsFmt2View(0)
	_ RdField = LsFmt2View(0)
	_ RnField = LsFmt2View(0)
	_ RmField = LsFmt2View(0)

	_ Common    = LsFmt3View(0)
	_ RdField   = LsFmt3View(0)
	_ Imm8Field = LsFmt3View(0)

	_ Common    = LsFmt4View(0)
	_ LoadFlag  = LsFmt4View(0)
	_ RdField   = LsFmt4View(0)
	_ Imm8Field = LsFmt4View(0)

	_ Common       = LsMultiFmt1View(0)
	_ LoadFlag     = LsMultiFmt1View(0)
	_ RnField      = LsMultiFmt1View(0)
	_ RegisterList = LsMultiFmt1View(0)

	_ Common       = LsMultiFmt2View(0)
	_ LoadFlag     = LsMultiFmt2View(0)
	_ RegisterList = LsMultiFmt2View(0)

	_ Common    = ExceptionView(0)
	_ Imm8Field = ExceptionView(0)

	_ Common    = CondBranchView(0)
	_ Imm8Field = CondBranchView(0)
)
