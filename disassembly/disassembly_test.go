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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/eigenform/armbf/disassembly"
	"github.com/eigenform/armbf/terminal"
	"github.com/eigenform/armbf/test"
)

func TestARMGolden(t *testing.T) {
	dsm := disassembly.NewDisassembler()

	golden := []struct {
		w    uint32
		addr uint32
		s    string
	}{
		{0xe12fff1e, 0x000, "bx lr"},
		{0xe0810002, 0x000, "add r0, r1, r2"},
		{0xe0910102, 0x000, "adds r0, r1, r2, lsl #2"},
		{0xe3a004ff, 0x000, "mov r0, #0xff000000"},
		{0xe3510000, 0x000, "cmp r1, #0x0"},
		{0x01a00000, 0x000, "moveq r0, r0"},
		{0xe1a00110, 0x000, "mov r0, r0, lsl r1"},
		{0xe1a00060, 0x000, "mov r0, r0, rrx"},
		{0xe1a00020, 0x000, "mov r0, r0, lsr #32"},
		{0xe59f1010, 0x000, "ldr r1, [pc, #0x10]"},
		{0xe5910000, 0x000, "ldr r0, [r1]"},
		{0xe4910004, 0x000, "ldr r0, [r1], #0x4"},
		{0xe5310004, 0x000, "ldr r0, [r1, #-0x4]!"},
		{0xe7912102, 0x000, "ldr r2, [r1, r2, lsl #2]"},
		{0xe1d000b2, 0x000, "ldrh r0, [r0, #0x2]"},
		{0xe18100b2, 0x000, "strh r0, [r1, r2]"},
		{0xe92d4010, 0x000, "stmdb sp!, {r4, lr}"},
		{0xe8bd8010, 0x000, "ldmia sp!, {r4, pc}"},
		{0xeafffffe, 0x100, "b 0x00000100"},
		{0xeb000002, 0x000, "bl 0x00000010"},
		{0xfb000000, 0x000, "blx 0x0000000a"},
		{0xef123456, 0x000, "swi 0x123456"},
		{0xe1212374, 0x000, "bkpt 0x1234"},
		{0xee110f10, 0x000, "mrc p15, 0, r0, c1, c0, 0"},
		{0xe10f0000, 0x000, "mrs r0, cpsr"},
		{0xe129f000, 0x000, "msr cpsr_fc, r0"},
		{0xe328f20f, 0x000, "msr cpsr_f, #0xf0000000"},
		{0xe0000291, 0x000, "mul r0, r1, r2"},
		{0xe0a10392, 0x000, "umlal r0, r1, r2, r3"},
		{0xe14103a2, 0x000, "smlaltb r0, r1, r2, r3"},
		{0xe1010092, 0x000, "swp r0, r2, [r1]"},
		{0xe16f0f11, 0x000, "clz r0, r1"},
		{0xed931a02, 0x000, "ldc p10, c1, [r3, #0x8]"},
		{0xe7f000f0, 0x000, "undefined"},
	}

	for _, g := range golden {
		e := dsm.ARM(g.w, g.addr)
		test.ExpectEquality(t, e.String(), g.s, g.w)
		test.ExpectEquality(t, e.Size(), 4, g.w)
	}
}

func TestThumbGolden(t *testing.T) {
	dsm := disassembly.NewDisassembler()

	golden := []struct {
		h    uint16
		addr uint32
		s    string
	}{
		{0x4770, 0x000, "bx lr"},
		{0x0088, 0x000, "lsl r0, r1, #2"},
		{0x0808, 0x000, "lsr r0, r1, #32"},
		{0x1888, 0x000, "add r0, r1, r2"},
		{0x1c48, 0x000, "add r0, r1, #0x1"},
		{0x2001, 0x000, "mov r0, #0x1"},
		{0x4248, 0x000, "neg r0, r1"},
		{0x46c0, 0x000, "mov r8, r8"},
		{0x4801, 0x102, "ldr r0, [pc, #0x4]"},
		{0x6848, 0x000, "ldr r0, [r1, #0x4]"},
		{0x7848, 0x000, "ldrb r0, [r1, #0x1]"},
		{0x8848, 0x000, "ldrh r0, [r1, #0x2]"},
		{0x5088, 0x000, "str r0, [r1, r2]"},
		{0x9801, 0x000, "ldr r0, [sp, #0x4]"},
		{0xa801, 0x000, "add r0, sp, #0x4"},
		{0xb082, 0x000, "sub sp, #0x8"},
		{0xb510, 0x000, "push {r4, lr}"},
		{0xbd10, 0x000, "pop {r4, pc}"},
		{0xc903, 0x000, "ldmia r1!, {r0, r1}"},
		{0xd0fe, 0x200, "beq 0x00000200"},
		{0xdf12, 0x000, "swi 0x12"},
		{0xbe01, 0x000, "bkpt 0x1"},
		{0xe7fe, 0x000, "undefined"},
	}

	for _, g := range golden {
		e := dsm.Thumb(g.h, g.addr)
		test.ExpectEquality(t, e.String(), g.s, g.h)
		test.ExpectEquality(t, e.Size(), 2, g.h)
	}
}

func TestTargets(t *testing.T) {
	dsm := disassembly.NewDisassembler()

	e := dsm.Thumb(0x4801, 0x102)
	test.ExpectSuccess(t, e.HasTarget)
	test.ExpectEquality(t, e.Target, uint32(0x108))

	e = dsm.Thumb(0xd0fe, 0x200)
	test.ExpectSuccess(t, e.HasTarget)
	test.ExpectEquality(t, e.Target, uint32(0x200))

	e = dsm.ARM(0xeb000002, 0x1000)
	test.ExpectSuccess(t, e.HasTarget)
	test.ExpectEquality(t, e.Target, uint32(0x1010))

	e = dsm.ARM(0xe0810002, 0x1000)
	test.ExpectFailure(t, e.HasTarget)
}

func TestEntryFields(t *testing.T) {
	dsm := disassembly.NewDisassembler()

	e := dsm.ARM(0xe12fff1e, 0x8000)
	test.ExpectEquality(t, e.Address, "00008000")
	test.ExpectEquality(t, e.Key(), "00008000")
	test.ExpectEquality(t, e.Bytecode, "e12fff1e")
	test.ExpectEquality(t, e.Kind, "Bx")
	test.ExpectEquality(t, e.CSV(), "00008000;e12fff1e;Bx;bx;lr")
	test.ExpectFailure(t, e.IsUndefined())

	e = dsm.Thumb(0xe7fe, 0x10)
	test.ExpectEquality(t, e.Bytecode, "e7fe")
	test.ExpectEquality(t, e.Kind, "Undefined")
	test.ExpectSuccess(t, e.IsUndefined())
}

func TestSequence(t *testing.T) {
	dsm := disassembly.NewDisassembler()

	entries := dsm.DisassembleARM([]uint32{0xe12fff1e, 0xe1a00001}, 0x100)
	test.DemandEquality(t, len(entries), 2)
	test.ExpectEquality(t, entries[1].Addr, uint32(0x104))

	th := dsm.DisassembleThumb([]uint16{0x4770, 0x46c0, 0xe7fe}, 0x100)
	test.DemandEquality(t, len(th), 3)
	test.ExpectEquality(t, th[2].Addr, uint32(0x104))
}

func TestWrite(t *testing.T) {
	dsm := disassembly.NewDisassembler()
	w := &test.Writer{}

	entries := dsm.DisassembleARM([]uint32{0xe12fff1e, 0xe1a00001}, 0)
	test.ExpectSuccess(t, disassembly.Write(w, entries, disassembly.WriteAttr{}))
	test.ExpectEquality(t, w.String(), "00000000  bx  lr\n00000004  mov r0, r1\n")

	w.Clear()
	test.ExpectSuccess(t, disassembly.Write(w, entries[:1], disassembly.WriteAttr{Bytecode: true}))
	test.ExpectEquality(t, w.String(), "00000000  e12fff1e  bx lr\n")

	w.Clear()
	test.ExpectSuccess(t, disassembly.WriteLine(w, dsm.Thumb(0x4801, 0x102), disassembly.WriteAttr{}))
	test.ExpectEquality(t, w.String(), "00000102  ldr r0, [pc, #0x4] ; 0x00000108\n")

	w.Clear()
	test.ExpectSuccess(t, disassembly.WriteCSV(w, entries))
	test.ExpectEquality(t, w.String(), "00000000;e12fff1e;Bx;bx;lr\n00000004;e1a00001;MovShiftImm;mov;r0, r1\n")

	w.Clear()
	test.ExpectSuccess(t, disassembly.Write(w, entries, disassembly.WriteAttr{Color: true}))
	test.ExpectSuccess(t, strings.Contains(w.String(), terminal.Pens["yellow"]))
	test.ExpectSuccess(t, strings.Contains(w.String(), terminal.NormalPen))
}
