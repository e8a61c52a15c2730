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

import (
	"github.com/eigenform/armbf/arm"
	"github.com/eigenform/armbf/logger"
	"github.com/eigenform/armbf/thumb"
)

// ARM is a lookup table for ARM instruction words.
type ARM[T any] struct {
	conditional   [ARMEntries]T
	unconditional [ARMEntries]T
}

// BuildARM creates a new table. The fn function is called once per index
// and bank with the kind of the synthetic word. Indexes that decode to
// Undefined are given the undefined payload and fn is not called for them.
func BuildARM[T any](undefined T, fn func(arm.Kind) T) *ARM[T] {
	tab := &ARM[T]{}

	var n int
	fill := func(bank *[ARMEntries]T, cond uint32) {
		for i := range ARMEntries {
			k := arm.DecodeKind(ARMWord(i) | cond)
			if k == arm.Undefined {
				bank[i] = undefined
				n++
				continue
			}
			bank[i] = fn(k)
		}
	}

	fill(&tab.conditional, 0)
	fill(&tab.unconditional, unconditional)

	logger.Logf(logger.Allow, "lut", "arm table: %d entries, %d undefined", 2*ARMEntries, n)

	return tab
}

// Lookup returns the payload for the instruction word.
func (tab *ARM[T]) Lookup(w uint32) T {
	if w&unconditional == unconditional {
		return tab.unconditional[ARMIndex(w)]
	}
	return tab.conditional[ARMIndex(w)]
}

// At returns the payload at the index of the conditional bank.
func (tab *ARM[T]) At(i int) T {
	return tab.conditional[i]
}

// Len returns the number of entries in a bank.
func (tab *ARM[T]) Len() int {
	return ARMEntries
}

// Thumb is a lookup table for Thumb instruction halfwords.
type Thumb[T any] struct {
	entries [ThumbEntries]T
}

// BuildThumb creates a new table. The fn function is called once per index
// with the kind of the synthetic halfword. Indexes that decode to Undefined
// are given the undefined payload and fn is not called for them.
func BuildThumb[T any](undefined T, fn func(thumb.Kind) T) *Thumb[T] {
	tab := &Thumb[T]{}

	var n int
	for i := range ThumbEntries {
		k := thumb.DecodeKind(ThumbWord(i))
		if k == thumb.Undefined {
			tab.entries[i] = undefined
			n++
			continue
		}
		tab.entries[i] = fn(k)
	}

	logger.Logf(logger.Allow, "lut", "thumb table: %d entries, %d undefined", ThumbEntries, n)

	return tab
}

// Lookup returns the payload for the instruction halfword.
func (tab *Thumb[T]) Lookup(h uint16) T {
	return tab.entries[ThumbIndex(h)]
}

// At returns the payload at the index.
func (tab *Thumb[T]) At(i int) T {
	return tab.entries[i]
}

// Len returns the number of entries in the table.
func (tab *Thumb[T]) Len() int {
	return ThumbEntries
}
