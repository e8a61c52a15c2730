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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

// initialise base seed
func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Random is a generator of instruction words.
type Random struct {
	seed uint64
	rnd  *rand.Rand

	// use zero seed rather than the random base seed. the stream for a given
	// seed value is then the same on every run
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
// The seed value distinguishes generators created during the same run.
func NewRandom(seed uint64) *Random {
	return &Random{
		seed: seed,
	}
}

// the generator is created on first use so that ZeroSeed can be set after
// NewRandom()
func (rnd *Random) source() *rand.Rand {
	if rnd.rnd == nil {
		if rnd.ZeroSeed {
			rnd.rnd = rand.New(rand.NewPCG(rnd.seed, 0))
		} else {
			rnd.rnd = rand.New(rand.NewPCG(rnd.seed, baseSeed))
		}
	}
	return rnd.rnd
}

// Word returns the next ARM word in the stream.
func (rnd *Random) Word() uint32 {
	return rnd.source().Uint32()
}

// Halfword returns the next Thumb halfword in the stream.
func (rnd *Random) Halfword() uint16 {
	return uint16(rnd.source().Uint32())
}

// Words returns the next n ARM words in the stream.
func (rnd *Random) Words(n int) []uint32 {
	words := make([]uint32, n)
	for i := range words {
		words[i] = rnd.Word()
	}
	return words
}

// Halfwords returns the next n Thumb halfwords in the stream.
func (rnd *Random) Halfwords(n int) []uint16 {
	hw := make([]uint16, n)
	for i := range hw {
		hw[i] = rnd.Halfword()
	}
	return hw
}

// Data returns the next n instructions in the stream as big-endian bytes, in
// the form expected by the loader package.
func (rnd *Random) Data(n int, isThumb bool) []byte {
	if isThumb {
		data := make([]byte, 0, n*2)
		for range n {
			h := rnd.Halfword()
			data = append(data, byte(h>>8), byte(h))
		}
		return data
	}

	data := make([]byte, 0, n*4)
	for range n {
		w := rnd.Word()
		data = append(data, byte(w>>24), byte(w>>16), byte(w>>8), byte(w))
	}
	return data
}
