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

import "fmt"

// Instruction is the result of decoding an instruction halfword.
type Instruction struct {
	Kind     Kind
	Halfword uint16
}

func (ins Instruction) String() string {
	return fmt.Sprintf("%s (%04x)", ins.Kind, ins.Halfword)
}

// View returns the halfword wrapped in the view for the kind. Returns nil if
// the kind is Undefined.
func (ins Instruction) View() Common {
	return ins.Kind.Shape().View(ins.Halfword)
}
