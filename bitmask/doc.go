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

// Package bitmask contains the primitive bit and field extraction functions
// that the rest of the decoder is built on. The functions are generic over
// the two word widths used by the ARM (32bit) and Thumb (16bit) instruction
// sets.
//
// All functions are total. A bit number outside the width of the word
// results in a false or zero result rather than a panic. For example:
//
//	bitmask.Field(uint32(0xe3a01005), 31, 28) == 0xe
//	bitmask.Bit(uint16(0x4770), 6) == true
//	bitmask.Bit(uint16(0x4770), 20) == false
package bitmask
