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

// Shape identifies the layout of the fields in an instruction halfword.
type Shape uint8

// List of valid Shape values.
const (
	ShapeNone Shape = iota
	ShapeDpFmt1
	ShapeDpFmt2
	ShapeDpFmt3
	ShapeDpFmt4
	ShapeDpFmt5
	ShapeDpFmt6
	ShapeDpFmt7
	ShapeDpFmt8
	ShapeBranchExchange
	ShapeLsFmt1
	ShapeLsFmt2
	ShapeLsFmt3
	ShapeLsFmt4
	ShapeLsMultiFmt1
	ShapeLsMultiFmt2
	ShapeException
	ShapeCondBranch

	// NumShapes is the number of Shape values, including ShapeNone
	NumShapes
)

var shapeNames = [NumShapes]string{
	"None", "DpFmt1", "DpFmt2", "DpFmt3", "DpFmt4", "DpFmt5", "DpFmt6",
	"DpFmt7", "DpFmt8", "BranchExchange", "LsFmt1", "LsFmt2", "LsFmt3",
	"LsFmt4", "LsMultiFmt1", "LsMultiFmt2", "Exception", "CondBranch",
}

func (s Shape) String() string {
	if s >= NumShapes {
		return shapeNames[ShapeNone]
	}
	return shapeNames[s]
}

// View wraps the halfword in the view type for the shape. Returns nil for
// ShapeNone.
func (s Shape) View(h uint16) Common {
	switch s {
	case ShapeDpFmt1:
		return DpFmt1View(h)
	case ShapeDpFmt2:
		return DpFmt2View(h)
	case ShapeDpFmt3:
		return DpFmt3View(h)
	case ShapeDpFmt4:
		return DpFmt4View(h)
	case ShapeDpFmt5:
		return DpFmt5View(h)
	case ShapeDpFmt6:
		return DpFmt6View(h)
	case ShapeDpFmt7:
		return DpFmt7View(h)
	case ShapeDpFmt8:
		return DpFmt8View(h)
	case ShapeBranchExchange:
		return BranchExchangeView(h)
	case ShapeLsFmt1:
		return LsFmt1View(h)
	case ShapeLsFmt2:
		return LsFmt2View(h)
	case ShapeLsFmt3:
		return LsFmt3View(h)
	case ShapeLsFmt4:
		return LsFmt4View(h)
	case ShapeLsMultiFmt1:
		return LsMultiFmt1View(h)
	case ShapeLsMultiFmt2:
		return LsMultiFmt2View(h)
	case ShapeException:
		return ExceptionView(h)
	case ShapeCondBranch:
		return CondBranchView(h)
	}
	return nil
}
