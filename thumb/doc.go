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

// Package thumb decodes 16bit Thumb instruction halfwords (ARMv4T and the
// ARMv5T additions).
//
// The package follows the same pattern as the arm package. Decode() returns
// an Instruction with a Kind, and View() wraps the halfword in the bitfield
// view for the kind's Shape:
//
//	ins := thumb.Decode(0x4770)
//	if v, ok := ins.View().(thumb.BranchExchangeView); ok {
//		fmt.Println(ins.Kind, v.Rm())
//	}
//
// Registers and conditions use the types from the arm package.
//
// The 32bit Thumb-2 encodings are not supported. The BL/BLX prefix and the
// unconditional branch in the top group of the encoding space decode as
// Undefined.
package thumb

//go:generate go run ../tools/viewgen -pkg thumb -word uint16 -in views.def -out views_gen.go
