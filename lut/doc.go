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

// Package lut builds lookup tables that turn the classification of an
// instruction into a single indexed read.
//
// A table is built once by walking every index, creating a synthetic
// instruction word from the index and decoding it with the decode tree of the
// arm or thumb package. The caller supplies the payload for each kind, for
// example a handler function, and a default payload for Undefined.
//
// For ARM the index is made from bits 27:20 and 7:4 of the instruction word:
//
//	index = ((w >> 16) & 0x0ff0) | ((w >> 4) & 0x000f)
//
// The condition field only changes the kind when it is 1111, so the ARM table
// has two banks of 4096 entries. The bank is selected by the condition field
// of the word being looked up.
//
// For Thumb the index is bits 15:5 of the halfword, giving 2048 entries.
//
// Tables are not changed after they have been built and can be shared
// between goroutines.
package lut
