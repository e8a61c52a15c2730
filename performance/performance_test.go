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

package performance_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/eigenform/armbf/arm"
	"github.com/eigenform/armbf/curated"
	"github.com/eigenform/armbf/loader"
	"github.com/eigenform/armbf/lut"
	"github.com/eigenform/armbf/performance"
	"github.com/eigenform/armbf/random"
	"github.com/eigenform/armbf/test"
	"github.com/eigenform/armbf/thumb"
)

// bx lr; mov r0, r1; ldr r1, [pc, #16]; b .
var sample = []byte{
	0xe1, 0x2f, 0xff, 0x1e,
	0xe1, 0xa0, 0x00, 0x01,
	0xe5, 0x9f, 0x10, 0x10,
	0xea, 0xff, 0xff, 0xfe,
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "none")

	p, err = performance.ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "cpu,mem,trace")

	_, err = performance.ParseProfile("cpu,gpu")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestCalcMdips(t *testing.T) {
	test.ExpectApproximate(t, performance.CalcMdips(5000000, 2*time.Second), 2.5, 0.0001)
	test.ExpectEquality(t, performance.CalcMdips(100, 0), 0.0)
}

func TestRunProfiler(t *testing.T) {
	var ran bool
	err := performance.RunProfiler(performance.ProfileNone, "", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	hdr := filepath.Join(t.TempDir(), "test")
	err = performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, hdr, func() error {
		return nil
	})
	test.ExpectSuccess(t, err)

	_, err = os.Stat(hdr + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(hdr + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(hdr + "_trace.profile")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	ld := loader.NewLoaderFromData("sample", sample)
	match := regexp.MustCompile(`^[0-9]+\.[0-9]{2} Mdips \([0-9]+ instructions in 0\.10 seconds\)\n$`)

	for _, method := range []string{"tree", "lut"} {
		for _, isThumb := range []bool{false, true} {
			w := &test.Writer{}
			err := performance.Check(w, performance.ProfileNone, ld, isThumb, method, "100ms")
			test.ExpectSuccess(t, err, method, isThumb)
			test.ExpectSuccess(t, match.MatchString(w.String()), method, isThumb)
		}
	}
}

func TestCheckErrors(t *testing.T) {
	ld := loader.NewLoaderFromData("sample", sample)
	w := &test.Writer{}

	err := performance.Check(w, performance.ProfileNone, ld, false, "magic", "100ms")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownMethod))

	err = performance.Check(w, performance.ProfileNone, ld, false, "tree", "soon")
	test.ExpectFailure(t, err)

	empty := loader.NewLoaderFromData("empty", nil)
	err = performance.Check(w, performance.ProfileNone, empty, false, "tree", "100ms")
	test.ExpectSuccess(t, curated.Is(err, performance.NoInstructions))

	truncated := loader.NewLoaderFromData("truncated", sample[:3])
	err = performance.Check(w, performance.ProfileNone, truncated, false, "tree", "100ms")
	test.ExpectSuccess(t, curated.Has(err, loader.TruncatedInput))

	test.ExpectEquality(t, w.String(), "")
}

// words for the benchmarks. the same pseudo-random words are used for every
// run.
func benchWords() []uint32 {
	rnd := random.NewRandom(0x2545f491)
	rnd.ZeroSeed = true
	return rnd.Words(4096)
}

func reportMdips(b *testing.B, n int) {
	b.ReportMetric(performance.CalcMdips(b.N*n, b.Elapsed()), "Mdips")
}

func BenchmarkDecodeARMTree(b *testing.B) {
	words := benchWords()
	var k arm.Kind
	b.ResetTimer()
	for range b.N {
		for _, w := range words {
			k ^= arm.DecodeKind(w)
		}
	}
	reportMdips(b, len(words))
	_ = k
}

func BenchmarkDecodeARMLUT(b *testing.B) {
	words := benchWords()
	tab := lut.BuildARM(arm.Undefined, func(k arm.Kind) arm.Kind { return k })
	var k arm.Kind
	b.ResetTimer()
	for range b.N {
		for _, w := range words {
			k ^= tab.Lookup(w)
		}
	}
	reportMdips(b, len(words))
	_ = k
}

func BenchmarkDecodeThumbTree(b *testing.B) {
	words := benchWords()
	var k thumb.Kind
	b.ResetTimer()
	for range b.N {
		for _, w := range words {
			k ^= thumb.DecodeKind(uint16(w))
		}
	}
	reportMdips(b, len(words))
	_ = k
}

func BenchmarkDecodeThumbLUT(b *testing.B) {
	words := benchWords()
	tab := lut.BuildThumb(thumb.Undefined, func(k thumb.Kind) thumb.Kind { return k })
	var k thumb.Kind
	b.ResetTimer()
	for range b.N {
		for _, w := range words {
			k ^= tab.Lookup(uint16(w))
		}
	}
	reportMdips(b, len(words))
	_ = k
}
