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

package bitmask

// Word is the set of types that can be used with the functions in this
// package.
type Word interface {
	~uint16 | ~uint32
}

// width returns the number of bits in the word type.
func width[W Word]() uint {
	var w W
	w = ^w
	if uint32(w) == 0xffff {
		return 16
	}
	return 32
}

// Bit returns true if bit n of word w is set.
func Bit[W Word](w W, n uint) bool {
	if n >= width[W]() {
		return false
	}
	return w&(1<<n) != 0
}

// Mask returns a mask with bits hi to lo (inclusive) set. Out of range bits
// are ignored and a mask where hi is less than lo is empty.
func Mask[W Word](hi, lo uint) W {
	sz := width[W]()
	if lo >= sz || hi < lo {
		return 0
	}
	if hi >= sz {
		hi = sz - 1
	}
	var m W
	m = ^m
	m >>= sz - 1 - hi + lo
	return m << lo
}

// Field returns bits hi to lo (inclusive) of word w, shifted down so that bit
// lo is in the least significant position.
func Field[W Word](w W, hi, lo uint) W {
	if lo >= width[W]() {
		return 0
	}
	return (w & Mask[W](hi, lo)) >> lo
}

// Match returns true if the masked bits of w are equal to match.
func Match[W Word](w, mask, match W) bool {
	return w&mask == match
}

// SignExtend treats the lowest n bits of v as a two's complement number and
// extends the sign to the full 32bits of the result.
func SignExtend(v uint32, n uint) uint32 {
	if n == 0 || n >= 32 {
		return v
	}
	shift := 32 - n
	return uint32(int32(v<<shift) >> shift)
}
