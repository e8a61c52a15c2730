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

package arm_test

import (
	"reflect"
	"testing"

	"github.com/eigenform/armbf/arm"
	"github.com/eigenform/armbf/test"
)

// methods on views that are derived from other fields.
var derived = map[string]bool{
	"Word":      true,
	"Immediate": true,
	"Imm":       true,
	"Offset":    true,
	"Registers": true,
}

// fields that intentionally share bits.
var aliases = map[[2]string]bool{
	{"B", "S"}: true,
	{"S", "B"}: true,
	{"B", "N"}: true,
	{"N", "B"}: true,
}

// fieldMasks returns the bits read by every field of the view for the shape.
// each bit is probed by setting it on its own.
func fieldMasks(t *testing.T, s arm.Shape) map[string]uint32 {
	t.Helper()

	masks := make(map[string]uint32)
	typ := reflect.TypeOf(s.View(0))

	for i := range typ.NumMethod() {
		m := typ.Method(i)
		if derived[m.Name] || m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		switch m.Type.Out(0).Kind() {
		case reflect.Bool, reflect.Uint16, reflect.Uint32:
		default:
			continue
		}

		masks[m.Name] = 0
		for b := range 32 {
			v := reflect.ValueOf(s.View(1 << b)).Method(i).Call(nil)[0]
			if (v.Kind() == reflect.Bool && v.Bool()) || (v.Kind() != reflect.Bool && v.Uint() != 0) {
				masks[m.Name] |= 1 << b
			}
		}
	}

	return masks
}

func TestFieldsDoNotOverlap(t *testing.T) {
	for s := arm.ShapeNone + 1; s < arm.NumShapes; s++ {
		masks := fieldMasks(t, s)
		test.ExpectInequality(t, len(masks), 0, s)

		for a, ma := range masks {
			test.ExpectInequality(t, ma, uint32(0), s, a)
			for b, mb := range masks {
				if a == b || aliases[[2]string{a, b}] {
					continue
				}
				test.ExpectEquality(t, ma&mb, uint32(0), s, a, b)
			}
		}
	}
}

func TestFieldLayout(t *testing.T) {
	layout := map[string]uint32{
		"Cond":        0xf0000000,
		"Group":       0x0e000000,
		"Opcode":      0x01e00000,
		"P":           0x01000000,
		"U":           0x00800000,
		"B":           0x00400000,
		"N":           0x00400000,
		"W":           0x00200000,
		"L":           0x00100000,
		"Rn":          0x000f0000,
		"Rd":          0x0000f000,
		"Rs":          0x00000f00,
		"Rm":          0x0000000f,
		"Imm8":        0x000000ff,
		"Imm12":       0x00000fff,
		"Imm24":       0x00ffffff,
		"RotImm":      0x00000f00,
		"ShiftImm":    0x00000f80,
		"ShiftType":   0x00000060,
		"CpOpcode1":   0x00f00000,
		"CpOpcode1Rt": 0x00e00000,
		"CpNum":       0x00000f00,
		"CpOpcode2":   0x000000e0,
		"CRn":         0x000f0000,
		"CRd":         0x0000f000,
		"CRm":         0x0000000f,
		"FieldMask":   0x000f0000,
		"R":           0x00400000,
		"Link":        0x01000000,
		"Reglist":     0x0000ffff,
		"RdHi":        0x000f0000,
		"RdLo":        0x0000f000,
		"A":           0x00200000,
		"Signed":      0x00400000,
		"X":           0x00000020,
		"Y":           0x00000040,
	}

	for s := arm.ShapeNone + 1; s < arm.NumShapes; s++ {
		for name, m := range fieldMasks(t, s) {
			switch {
			case name == "S" && s == arm.ShapeLsMulti:
				test.ExpectEquality(t, m, uint32(0x00400000), s, name)
			case name == "S":
				test.ExpectEquality(t, m, uint32(0x00100000), s, name)
			case name == "ImmHi" && s == arm.ShapeBkpt:
				test.ExpectEquality(t, m, uint32(0x000fff00), s, name)
			case name == "ImmHi":
				test.ExpectEquality(t, m, uint32(0x00000f00), s, name)
			case name == "ImmLo":
				test.ExpectEquality(t, m, uint32(0x0000000f), s, name)
			default:
				l, ok := layout[name]
				if test.ExpectSuccess(t, ok, s, name) {
					test.ExpectEquality(t, m, l, s, name)
				}
			}
		}
	}
}

func TestViewReconstruction(t *testing.T) {
	// a view is a function of the word alone
	const w = 0xe59f1010
	ins := arm.Decode(w)
	test.DemandEquality(t, ins.Kind, arm.LdrImm)

	a := ins.View().(arm.LsImmView)
	b := arm.LsImmView(w)
	test.ExpectEquality(t, a, b)
	test.ExpectEquality(t, a.Rn(), arm.PC)
	test.ExpectEquality(t, a.Rd(), arm.Register(1))
	test.ExpectEquality(t, a.Imm12(), uint32(0x10))
	test.ExpectSuccess(t, a.U())
}

func TestCapabilities(t *testing.T) {
	test.ExpectImplements(t, arm.Decode(0xe5910004).View(), (*arm.LoadStore)(nil))
	test.ExpectImplements(t, arm.Decode(0xe5910004).View(), (*arm.Imm12Field)(nil))
	test.ExpectNotImplements(t, arm.Decode(0xe5910004).View(), (*arm.RmField)(nil))
	test.ExpectImplements(t, arm.Decode(0xe0810002).View(), (*arm.DataProcessing)(nil))
	test.ExpectImplements(t, arm.Decode(0xe0810002).View(), (*arm.ShiftImmField)(nil))
	test.ExpectNotImplements(t, arm.Decode(0xe0810002).View(), (*arm.RsField)(nil))
	test.ExpectImplements(t, arm.Decode(0xe1a00110).View(), (*arm.RsField)(nil))
	test.ExpectNotImplements(t, arm.Decode(0xe1a00110).View(), (*arm.ShiftImmField)(nil))
	test.ExpectImplements(t, arm.Decode(0xe321f01f).View(), (*arm.StatusRegister)(nil))
	test.ExpectImplements(t, arm.Decode(0xe321f01f).View(), (*arm.Rotated)(nil))
	test.ExpectNotImplements(t, arm.Decode(0xe321f01f).View(), (*arm.DataProcessing)(nil))
	test.ExpectImplements(t, arm.Decode(0xee110110).View(), (*arm.Coprocessor)(nil))
	test.ExpectImplements(t, arm.Decode(0xe0e10392).View(), (*arm.MultiplyExtra)(nil))
	test.ExpectImplements(t, arm.Decode(0xe1d000b2).View(), (*arm.SplitImmediate)(nil))
	test.ExpectNotImplements(t, arm.Decode(0xe18100b2).View(), (*arm.SplitImmediate)(nil))
	test.ExpectImplements(t, arm.Decode(0xe8bd8010).View(), (*arm.LoadStoreMultiple)(nil))
	test.ExpectImplements(t, arm.Decode(0xeb000002).View(), (*arm.BranchLink)(nil))
}

func TestDerivedFields(t *testing.T) {
	// mov r0, #0xff000000
	dp := arm.DpRotImmView(0xe3a004ff)
	test.ExpectEquality(t, dp.RotImm(), uint32(4))
	test.ExpectEquality(t, dp.Immediate(), uint32(0xff000000))

	// msr cpsr_f, #0xf0000000
	msr := arm.MsrImmView(0xe328f20f)
	test.ExpectEquality(t, msr.FieldMask(), uint32(0x8))
	test.ExpectEquality(t, msr.Immediate(), uint32(0xf0000000))
	test.ExpectFailure(t, msr.R())

	// ldrh r0, [r1, #0x3a]
	ls := arm.LsMiscImmView(0xe1d103ba)
	test.ExpectEquality(t, ls.ImmHi(), uint32(0x3))
	test.ExpectEquality(t, ls.ImmLo(), uint32(0xa))
	test.ExpectEquality(t, ls.Imm(), uint32(0x3a))

	// bkpt 0x1234
	bk := arm.BkptView(0xe1212374)
	test.ExpectEquality(t, bk.Imm(), uint32(0x1234))

	// b -8 (branch to self)
	br := arm.BranchView(0xeafffffe)
	test.ExpectEquality(t, br.Offset(), int32(-8))
	test.ExpectFailure(t, br.Link())

	// blx with the H bit set
	blx := arm.BranchView(0xfb000000)
	test.ExpectEquality(t, blx.Offset(), int32(2))

	// smlaltb r0, r1, r2, r3
	mul := arm.MulView(0xe14103a2)
	test.ExpectEquality(t, mul.RdHi(), arm.Register(1))
	test.ExpectEquality(t, mul.RdLo(), arm.Register(0))
	test.ExpectEquality(t, mul.Rs(), arm.Register(3))
	test.ExpectEquality(t, mul.Rm(), arm.Register(2))
	test.ExpectSuccess(t, mul.X())
	test.ExpectFailure(t, mul.Y())

	test.ExpectEquality(t, len(arm.RegisterList(0)), 0)
	test.ExpectEquality(t, len(arm.RegisterList(0xffff)), 16)
}
