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
	"testing"

	"github.com/eigenform/armbf/arm"
	"github.com/eigenform/armbf/test"
)

func TestCond(t *testing.T) {
	test.ExpectEquality(t, arm.EQ.String(), "eq")
	test.ExpectEquality(t, arm.LE.String(), "le")
	test.ExpectEquality(t, arm.NE.Suffix(), "ne")
	test.ExpectEquality(t, arm.AL.Suffix(), "")
	test.ExpectEquality(t, arm.NV.Suffix(), "")
	test.ExpectEquality(t, arm.Decode(0x1a000000).Cond(), arm.NE)
}

func TestRegister(t *testing.T) {
	test.ExpectEquality(t, arm.Register(0).String(), "r0")
	test.ExpectEquality(t, arm.Register(12).String(), "r12")
	test.ExpectEquality(t, arm.SP.String(), "sp")
	test.ExpectEquality(t, arm.LR.String(), "lr")
	test.ExpectEquality(t, arm.PC.String(), "pc")
	test.ExpectEquality(t, arm.CoprocNumber(15).String(), "p15")
	test.ExpectEquality(t, arm.CoprocRegister(7).String(), "c7")
}

func TestOpcode(t *testing.T) {
	var compares, moves int
	for op := arm.OpAnd; op <= arm.OpMvn; op++ {
		if op.IsCompare() {
			compares++
		}
		if op.IsMove() {
			moves++
		}
	}
	test.ExpectEquality(t, compares, 4)
	test.ExpectEquality(t, moves, 2)
	test.ExpectSuccess(t, arm.OpCmn.IsCompare())
	test.ExpectFailure(t, arm.OpOrr.IsCompare())
	test.ExpectSuccess(t, arm.OpMvn.IsMove())
	test.ExpectEquality(t, arm.OpRsc.String(), "rsc")
	test.ExpectEquality(t, arm.ROR.String(), "ror")
}
