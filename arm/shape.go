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

// Shape identifies the layout of the fields in an instruction word. Every
// Kind has exactly one Shape and every Shape other than ShapeNone has
// exactly one view type.
type Shape uint8

// List of valid Shape values.
const (
	ShapeNone Shape = iota
	ShapeDpShiftImm
	ShapeDpShiftReg
	ShapeDpRotImm
	ShapeMrs
	ShapeMsrReg
	ShapeMsrImm
	ShapeBx
	ShapeClz
	ShapeSat
	ShapeMul
	ShapeSwp
	ShapeLsMiscImm
	ShapeLsMiscReg
	ShapeLsImm
	ShapeLsShift
	ShapeLsMulti
	ShapeBranch
	ShapeBkpt
	ShapeSwi
	ShapeCoprocLs
	ShapeCoprocDp
	ShapeCoprocRt

	// NumShapes is the number of Shape values, including ShapeNone
	NumShapes
)

var shapeNames = [NumShapes]string{
	"None", "DpShiftImm", "DpShiftReg", "DpRotImm", "Mrs", "MsrReg", "MsrImm",
	"Bx", "Clz", "Sat", "Mul", "Swp", "LsMiscImm", "LsMiscReg", "LsImm",
	"LsShift", "LsMulti", "Branch", "Bkpt", "Swi", "CoprocLs", "CoprocDp",
	"CoprocRt",
}

func (s Shape) String() string {
	if s >= NumShapes {
		return shapeNames[ShapeNone]
	}
	return shapeNames[s]
}

// View wraps the word in the view type for the shape. Returns nil for
// ShapeNone.
func (s Shape) View(w uint32) Common {
	switch s {
	case ShapeDpShiftImm:
		return DpShiftImmView(w)
	case ShapeDpShiftReg:
		return DpShiftRegView(w)
	case ShapeDpRotImm:
		return DpRotImmView(w)
	case ShapeMrs:
		return MrsView(w)
	case ShapeMsrReg:
		return MsrRegView(w)
	case ShapeMsrImm:
		return MsrImmView(w)
	case ShapeBx:
		return BxView(w)
	case ShapeClz:
		return ClzView(w)
	case ShapeSat:
		return SatView(w)
	case ShapeMul:
		return MulView(w)
	case ShapeSwp:
		return SwpView(w)
	case ShapeLsMiscImm:
		return LsMiscImmView(w)
	case ShapeLsMiscReg:
		return LsMiscRegView(w)
	case ShapeLsImm:
		return LsImmView(w)
	case ShapeLsShift:
		return LsShiftView(w)
	case ShapeLsMulti:
		return LsMultiView(w)
	case ShapeBranch:
		return BranchView(w)
	case ShapeBkpt:
		return BkptView(w)
	case ShapeSwi:
		return SwiView(w)
	case ShapeCoprocLs:
		return CoprocLsView(w)
	case ShapeCoprocDp:
		return CoprocDpView(w)
	case ShapeCoprocRt:
		return CoprocRtView(w)
	}
	return nil
}
