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
	"reflect"
	"slices"
	"testing"

	"github.com/eigenform/armbf/arm"
	"github.com/eigenform/armbf/test"
	"github.com/eigenform/armbf/thumb"
)

var derived = map[string]bool{
	"Word":      true,
	"RdFull":    true,
	"RmFull":    true,
	"Offset":    true,
	"Registers": true,
}

func TestFieldsDoNotOverlap(t *testing.T) {
	for s := thumb.ShapeNone + 1; s < thumb.NumShapes; s++ {
		masks := make(map[string]uint16)
		typ := reflect.TypeOf(s.View(0))

		for i := range typ.NumMethod() {
			m := typ.Method(i)
			if derived[m.Name] || m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
				continue
			}

			for b := range 16 {
				v := reflect.ValueOf(s.View(1 << b)).Method(i).Call(nil)[0]
				switch v.Kind() {
				case reflect.Bool:
					if v.Bool() {
						masks[m.Name] |= 1 << b
					}
				case reflect.Uint16, reflect.Uint32:
					if v.Uint() != 0 {
						masks[m.Name] |= 1 << b
					}
				}
			}
		}

		test.ExpectInequality(t, len(masks), 0, s)
		for a, ma := range masks {
			for b, mb := range masks {
				if a != b {
					test.ExpectEquality(t, ma&mb, uint16(0), s, a, b)
				}
			}
		}
	}
}

func TestCapabilities(t *testing.T) {
	test.ExpectImplements(t, thumb.Decode(0x1888).View(), (*thumb.RmField)(nil))
	test.ExpectImplements(t, thumb.Decode(0x2001).View(), (*thumb.Imm8Field)(nil))
	test.ExpectNotImplements(t, thumb.Decode(0x2001).View(), (*thumb.RnField)(nil))
	test.ExpectImplements(t, thumb.Decode(0x6848).View(), (*thumb.LoadFlag)(nil))
	test.ExpectImplements(t, thumb.Decode(0xb510).View(), (*thumb.RegisterList)(nil))
	test.ExpectImplements(t, thumb.Decode(0xc903).View(), (*thumb.RegisterList)(nil))
	test.ExpectNotImplements(t, thumb.Decode(0xdf00).View(), (*thumb.RdField)(nil))
}

func TestHighRegisters(t *testing.T) {
	// add r8, r1
	v := thumb.DpFmt8View(0x4488)
	test.ExpectEquality(t, v.RdFull(), arm.Register(8))
	test.ExpectEquality(t, v.RmFull(), arm.Register(1))

	// cmp r0, r8
	v = thumb.DpFmt8View(0x4540)
	test.ExpectEquality(t, v.RdFull(), arm.Register(0))
	test.ExpectEquality(t, v.RmFull(), arm.Register(8))

	// mov pc, lr
	v = thumb.DpFmt8View(0x46f7)
	test.ExpectEquality(t, v.RdFull(), arm.PC)
	test.ExpectEquality(t, v.RmFull(), arm.LR)
}

func TestBranchOffset(t *testing.T) {
	test.ExpectEquality(t, thumb.CondBranchView(0xd0fe).Offset(), int32(-4))
	test.ExpectEquality(t, thumb.CondBranchView(0xd001).Offset(), int32(2))
	test.ExpectEquality(t, thumb.CondBranchView(0xd07f).Offset(), int32(254))
	test.ExpectEquality(t, thumb.CondBranchView(0xd080).Offset(), int32(-256))
}

func TestRegisters(t *testing.T) {
	// push {r4, lr}
	test.ExpectSuccess(t, slices.Equal(thumb.LsMultiFmt2View(0xb510).Registers(),
		[]arm.Register{4, arm.LR}))

	// pop {r4, pc}
	test.ExpectSuccess(t, slices.Equal(thumb.LsMultiFmt2View(0xbd10).Registers(),
		[]arm.Register{4, arm.PC}))

	// push {r4}
	test.ExpectSuccess(t, slices.Equal(thumb.LsMultiFmt2View(0xb410).Registers(),
		[]arm.Register{4}))

	// ldmia r1!, {r0, r1}
	v := thumb.LsMultiFmt1View(0xc903)
	test.ExpectEquality(t, v.Rn(), arm.Register(1))
	test.ExpectSuccess(t, v.L())
	test.ExpectSuccess(t, slices.Equal(v.Registers(), []arm.Register{0, 1}))
}
