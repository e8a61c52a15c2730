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

package random_test

import (
	"slices"
	"testing"

	"github.com/eigenform/armbf/loader"
	"github.com/eigenform/armbf/random"
	"github.com/eigenform/armbf/test"
)

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom(1)
	b := random.NewRandom(1)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for range 256 {
		test.ExpectEquality(t, a.Word(), b.Word())
	}

	c := random.NewRandom(2)
	c.ZeroSeed = true
	test.ExpectFailure(t, slices.Equal(a.Words(16), c.Words(16)))
}

func TestStreams(t *testing.T) {
	a := random.NewRandom(100)
	a.ZeroSeed = true
	test.ExpectEquality(t, len(a.Words(10)), 10)
	test.ExpectEquality(t, len(a.Halfwords(10)), 10)
	test.ExpectEquality(t, len(a.Data(10, false)), 40)
	test.ExpectEquality(t, len(a.Data(10, true)), 20)
}

func TestData(t *testing.T) {
	a := random.NewRandom(7)
	b := random.NewRandom(7)
	a.ZeroSeed = true
	b.ZeroSeed = true

	ld := loader.NewLoaderFromData("random", a.Data(64, false))
	words, err := ld.Words()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, slices.Equal(words, b.Words(64)))

	ld = loader.NewLoaderFromData("random", a.Data(64, true))
	hw, err := ld.Halfwords()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, slices.Equal(hw, b.Halfwords(64)))
}
