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

package bitmask_test

import (
	"testing"

	"github.com/eigenform/armbf/bitmask"
	"github.com/eigenform/armbf/test"
)

func TestBit(t *testing.T) {
	test.ExpectEquality(t, bitmask.Bit(uint32(0x80000000), 31), true)
	test.ExpectEquality(t, bitmask.Bit(uint32(0x80000000), 30), false)
	test.ExpectEquality(t, bitmask.Bit(uint16(0x8000), 15), true)
	test.ExpectEquality(t, bitmask.Bit(uint16(0x4770), 6), true)

	// out of range bits are never set
	test.ExpectEquality(t, bitmask.Bit(uint16(0xffff), 16), false)
	test.ExpectEquality(t, bitmask.Bit(uint32(0xffffffff), 32), false)
	test.ExpectEquality(t, bitmask.Bit(uint32(0xffffffff), 1000), false)
}

func TestMask(t *testing.T) {
	test.ExpectEquality(t, bitmask.Mask[uint32](31, 28), uint32(0xf0000000))
	test.ExpectEquality(t, bitmask.Mask[uint32](27, 20), uint32(0x0ff00000))
	test.ExpectEquality(t, bitmask.Mask[uint32](31, 0), uint32(0xffffffff))
	test.ExpectEquality(t, bitmask.Mask[uint32](0, 0), uint32(0x00000001))
	test.ExpectEquality(t, bitmask.Mask[uint16](15, 5), uint16(0xffe0))
	test.ExpectEquality(t, bitmask.Mask[uint16](15, 0), uint16(0xffff))

	// hi beyond the word is clamped. lo beyond the word or hi below lo is empty
	test.ExpectEquality(t, bitmask.Mask[uint16](20, 12), uint16(0xf000))
	test.ExpectEquality(t, bitmask.Mask[uint16](20, 16), uint16(0))
	test.ExpectEquality(t, bitmask.Mask[uint32](3, 4), uint32(0))
}

func TestField(t *testing.T) {
	w := uint32(0xe3a01005)
	test.ExpectEquality(t, bitmask.Field(w, 31, 28), uint32(0xe))
	test.ExpectEquality(t, bitmask.Field(w, 27, 25), uint32(0b001))
	test.ExpectEquality(t, bitmask.Field(w, 24, 21), uint32(0b1101))
	test.ExpectEquality(t, bitmask.Field(w, 15, 12), uint32(1))
	test.ExpectEquality(t, bitmask.Field(w, 7, 0), uint32(5))

	h := uint16(0x4770)
	test.ExpectEquality(t, bitmask.Field(h, 15, 13), uint16(0b010))
	test.ExpectEquality(t, bitmask.Field(h, 6, 3), uint16(14))
	test.ExpectEquality(t, bitmask.Field(h, 31, 16), uint16(0))
}

func TestMatch(t *testing.T) {
	test.ExpectEquality(t, bitmask.Match(uint32(0x00000090), 0x0f0000f0, 0x00000090), true)
	test.ExpectEquality(t, bitmask.Match(uint32(0x01000090), 0x0f0000f0, 0x00000090), false)
}

func TestSignExtend(t *testing.T) {
	test.ExpectEquality(t, bitmask.SignExtend(0x00ffffff, 24), uint32(0xffffffff))
	test.ExpectEquality(t, bitmask.SignExtend(0x007fffff, 24), uint32(0x007fffff))
	test.ExpectEquality(t, bitmask.SignExtend(0x80, 8), uint32(0xffffff80))
	test.ExpectEquality(t, bitmask.SignExtend(0x12345678, 0), uint32(0x12345678))
}
