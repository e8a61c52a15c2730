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

package thumb_test

import (
	"testing"

	"github.com/eigenform/armbf/arm"
	"github.com/eigenform/armbf/test"
	"github.com/eigenform/armbf/thumb"
)

func TestGoldenVector(t *testing.T) {
	// bx lr
	ins := thumb.Decode(0x4770)
	test.DemandEquality(t, ins.Kind, thumb.Bx)
	test.ExpectEquality(t, ins.Halfword, uint16(0x4770))

	v, ok := ins.View().(thumb.BranchExchangeView)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, v.Rm(), arm.LR)
	test.ExpectFailure(t, v.L())
}

func TestVectors(t *testing.T) {
	vectors := []struct {
		h    uint16
		kind thumb.Kind
	}{
		{0x0088, thumb.LslImm},     // lsl r0, r1, #2
		{0x0888, thumb.LsrImm},     // lsr r0, r1, #2
		{0x1088, thumb.AsrImm},     // asr r0, r1, #2
		{0x1888, thumb.AddReg1},    // add r0, r1, r2
		{0x1a88, thumb.SubReg},     // sub r0, r1, r2
		{0x1c48, thumb.AddImm1},    // add r0, r1, #1
		{0x1e48, thumb.SubImm1},    // sub r0, r1, #1
		{0x2001, thumb.MovImm},     // mov r0, #1
		{0x2801, thumb.CmpImm},     // cmp r0, #1
		{0x3001, thumb.AddImm2},    // add r0, #1
		{0x3801, thumb.SubImm2},    // sub r0, #1
		{0x4008, thumb.AndReg},     // and r0, r1
		{0x4248, thumb.RsbImm},     // neg r0, r1
		{0x4348, thumb.MulReg},     // mul r0, r1
		{0x4488, thumb.AddReg2},    // add r8, r1
		{0x4540, thumb.CmpReg2},    // cmp r0, r8
		{0x46c0, thumb.MovReg},     // mov r8, r8
		{0x4780, thumb.BlxReg},     // blx r0
		{0x4801, thumb.LdrLit},     // ldr r0, [pc, #4]
		{0x5088, thumb.StrReg},     // str r0, [r1, r2]
		{0x5688, thumb.LdrsbReg},   // ldrsb r0, [r1, r2]
		{0x5e88, thumb.LdrshReg},   // ldrsh r0, [r1, r2]
		{0x6048, thumb.StrImm1},    // str r0, [r1, #4]
		{0x6848, thumb.LdrImm1},    // ldr r0, [r1, #4]
		{0x7048, thumb.StrbImm},    // strb r0, [r1, #1]
		{0x7848, thumb.LdrbImm},    // ldrb r0, [r1, #1]
		{0x8048, thumb.StrhImm},    // strh r0, [r1, #2]
		{0x8848, thumb.LdrhImm},    // ldrh r0, [r1, #2]
		{0x9001, thumb.StrImm2},    // str r0, [sp, #4]
		{0x9801, thumb.LdrImm2},    // ldr r0, [sp, #4]
		{0xa001, thumb.AddImmPc},   // add r0, pc, #4
		{0xa801, thumb.AddImmSp},   // add r0, sp, #4
		{0xb002, thumb.AddImmSp7},  // add sp, #8
		{0xb082, thumb.SubImmSp7},  // sub sp, #8
		{0xb510, thumb.Push},       // push {r4, lr}
		{0xbd10, thumb.Pop},        // pop {r4, pc}
		{0xbe00, thumb.Bkpt},       // bkpt 0
		{0xb100, thumb.Undefined},  // unallocated miscellaneous
		{0xc103, thumb.Stmia},      // stmia r1!, {r0, r1}
		{0xc903, thumb.Ldmia},      // ldmia r1!, {r0, r1}
		{0xd0fe, thumb.BranchCond}, // beq .
		{0xde00, thumb.Undefined},  // cond 1110
		{0xdf00, thumb.Swi},        // swi 0
		{0xe7fe, thumb.Undefined},  // b .
		{0xf000, thumb.Undefined},  // bl prefix
	}

	for _, v := range vectors {
		test.ExpectEquality(t, thumb.DecodeKind(v.h), v.kind, v.h)
	}
}

func TestTotality(t *testing.T) {
	var seen [thumb.NumKinds]bool

	for i := range 0x10000 {
		h := uint16(i)
		k := thumb.DecodeKind(h)
		if !test.ExpectSuccess(t, k < thumb.NumKinds, h) {
			return
		}
		seen[k] = true

		// only bits 15:5 take part in the decision
		test.ExpectEquality(t, k, thumb.DecodeKind(h&0xffe0), h)

		ins := thumb.Decode(h)
		if k == thumb.Undefined {
			test.ExpectEquality(t, ins.View(), nil, h)
		} else {
			test.ExpectEquality(t, ins.View().Word(), h, h)
		}
	}

	for k := range thumb.NumKinds {
		test.ExpectSuccess(t, seen[k], thumb.Kind(k))
	}
}

func TestALUSpace(t *testing.T) {
	for op := range uint16(16) {
		h := 0x4000 | op<<6 | 0x0a
		test.ExpectEquality(t, thumb.DecodeKind(h), thumb.AndReg+thumb.Kind(op), h)
		test.ExpectEquality(t, thumb.DpFmt5View(h).Opcode(), op, h)
	}
}

func TestRegisterOffsetSpace(t *testing.T) {
	for op := range uint16(8) {
		h := 0x5000 | op<<9
		test.ExpectEquality(t, thumb.DecodeKind(h), thumb.StrReg+thumb.Kind(op), h)
		test.ExpectEquality(t, thumb.LsFmt2View(h).Opcode(), op, h)
	}
}

func TestCondBranchSpace(t *testing.T) {
	for c := range uint16(16) {
		h := 0xd000 | c<<8
		switch c {
		case 0b1110:
			test.ExpectEquality(t, thumb.DecodeKind(h), thumb.Undefined, h)
		case 0b1111:
			test.ExpectEquality(t, thumb.DecodeKind(h), thumb.Swi, h)
		default:
			test.ExpectEquality(t, thumb.DecodeKind(h), thumb.BranchCond, h)
			test.ExpectEquality(t, thumb.CondBranchView(h).Cond(), thumb.Cond(c), h)
		}
	}
}

func TestKinds(t *testing.T) {
	test.ExpectEquality(t, thumb.Undefined.Shape(), thumb.ShapeNone)
	test.ExpectEquality(t, thumb.NumKinds.String(), "Undefined")
	test.ExpectEquality(t, thumb.NumKinds.Shape(), thumb.ShapeNone)

	for k := thumb.Undefined + 1; k < thumb.NumKinds; k++ {
		test.ExpectInequality(t, k.String(), "Undefined", k)
		test.ExpectInequality(t, k.Mnemonic(), "", k)
		test.ExpectInequality(t, k.Shape(), thumb.ShapeNone, k)
	}

	test.ExpectEquality(t, thumb.RsbImm.Mnemonic(), "neg")
	test.ExpectEquality(t, thumb.Decode(0x4770).String(), "Bx (4770)")
}
