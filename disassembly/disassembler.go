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

package disassembly

import (
	"github.com/eigenform/armbf/arm"
	"github.com/eigenform/armbf/lut"
	"github.com/eigenform/armbf/thumb"
)

// the payload of the ARM lookup table.
type armHandler struct {
	kind   arm.Kind
	format func(ins arm.Instruction, addr uint32) Entry
}

// the payload of the Thumb lookup table.
type thumbHandler struct {
	kind   thumb.Kind
	format func(ins thumb.Instruction, addr uint32) Entry
}

// Disassembler formats ARM and Thumb instructions. It is safe to use from
// more than one goroutine.
type Disassembler struct {
	arm   *lut.ARM[armHandler]
	thumb *lut.Thumb[thumbHandler]
}

// NewDisassembler is the preferred method of initialisation for the
// Disassembler type.
func NewDisassembler() *Disassembler {
	return &Disassembler{
		arm: lut.BuildARM(armHandler{format: formatUndefinedARM}, func(k arm.Kind) armHandler {
			return armHandler{kind: k, format: armFormatter(k)}
		}),
		thumb: lut.BuildThumb(thumbHandler{format: formatUndefinedThumb}, func(k thumb.Kind) thumbHandler {
			return thumbHandler{kind: k, format: thumbFormatter(k)}
		}),
	}
}

// ARM disassembles a single ARM instruction word at the address.
func (dsm *Disassembler) ARM(w uint32, addr uint32) Entry {
	h := dsm.arm.Lookup(w)
	e := h.format(arm.Instruction{Kind: h.kind, Word: w}, addr)
	e.Kind = h.kind.String()
	e.complete(addr, w, true)
	return e
}

// Thumb disassembles a single Thumb instruction halfword at the address.
func (dsm *Disassembler) Thumb(h uint16, addr uint32) Entry {
	t := dsm.thumb.Lookup(h)
	e := t.format(thumb.Instruction{Kind: t.kind, Halfword: h}, addr)
	e.Kind = t.kind.String()
	e.complete(addr, uint32(h), false)
	return e
}

// DisassembleARM disassembles a sequence of ARM instruction words. The first
// word is at the base address.
func (dsm *Disassembler) DisassembleARM(words []uint32, base uint32) []Entry {
	entries := make([]Entry, 0, len(words))
	for i, w := range words {
		entries = append(entries, dsm.ARM(w, base+uint32(i)*4))
	}
	return entries
}

// DisassembleThumb disassembles a sequence of Thumb instruction halfwords.
// The first halfword is at the base address.
func (dsm *Disassembler) DisassembleThumb(halfwords []uint16, base uint32) []Entry {
	entries := make([]Entry, 0, len(halfwords))
	for i, h := range halfwords {
		entries = append(entries, dsm.Thumb(h, base+uint32(i)*2))
	}
	return entries
}
