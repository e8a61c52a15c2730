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

package lut

// The number of entries in each bank of an ARM table and in a Thumb table.
const (
	ARMEntries   = 4096
	ThumbEntries = 2048
)

// ARMIndex returns the table index for an ARM instruction word.
func ARMIndex(w uint32) int {
	return int(((w >> 16) & 0x0ff0) | ((w >> 4) & 0x000f))
}

// ARMWord returns the synthetic instruction word for a table index. It is
// the inverse of ARMIndex. The condition field of the word is zero.
func ARMWord(i int) uint32 {
	return ((uint32(i) & 0x0ff0) << 16) | ((uint32(i) & 0x000f) << 4)
}

// ThumbIndex returns the table index for a Thumb instruction halfword.
func ThumbIndex(h uint16) int {
	return int(h >> 5)
}

// ThumbWord returns the synthetic instruction halfword for a table index. It
// is the inverse of ThumbIndex.
func ThumbWord(i int) uint16 {
	return uint16(i) << 5
}

// condition field value of the unconditional instruction space.
const unconditional = 0xf0000000
