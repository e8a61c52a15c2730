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

// Package arm decodes 32bit ARM (ARMv5TE) instruction words.
//
// Decode() classifies a word into an Instruction. The Kind field of the
// Instruction identifies the operation and the View() function wraps the word
// in the bitfield view for the kind's Shape:
//
//	ins := arm.Decode(0xe3a01005)
//	if v, ok := ins.View().(arm.DpRotImmView); ok {
//		fmt.Println(ins.Kind, v.Rd(), v.Immediate())
//	}
//
// Decoding is total. Every possible word decodes to exactly one Kind and words
// with no defined encoding decode to Undefined. Decoding never panics and
// never allocates.
//
// Views are named integer types over the raw word and have no state other
// than the word itself. Each view has accessors for the fields defined for its
// shape and nothing else. Code that handles many shapes should use the
// capability interfaces (LoadStore, RdField, Rotated, etc.) rather than
// switching on the concrete view type.
//
// The accessors are generated by tools/viewgen from the definitions in
// views.def.
package arm

//go:generate go run ../tools/viewgen -pkg arm -word uint32 -in views.def -out views_gen.go
