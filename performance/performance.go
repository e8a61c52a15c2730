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

package performance

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/eigenform/armbf/arm"
	"github.com/eigenform/armbf/curated"
	"github.com/eigenform/armbf/loader"
	"github.com/eigenform/armbf/logger"
	"github.com/eigenform/armbf/lut"
	"github.com/eigenform/armbf/thumb"
)

// Sentinal error patterns.
const (
	UnknownMethod  = "performance: unknown decode method (%s)"
	NoInstructions = "performance: no instructions to decode"
)

// sentinal error returned by the run loop.
var timedOut = errors.New("performance timed out")

// the longest period allowed for the decoding rate to settle before
// measurement starts.
const maxLeadtime = 2 * time.Second

// the result of each decode is folded into sink so that the decode cannot be
// optimised away.
var sink uint8

// decoder returns a function that decodes every instruction in the loaded
// data once and returns the number of instructions decoded.
//
// The method is either TREE, for decoding with the decode tree, or LUT, for
// decoding with a lookup table.
func decoder(method string, ld loader.Loader, isThumb bool) (func() int, error) {
	method = strings.ToUpper(strings.TrimSpace(method))

	if isThumb {
		hw, err := ld.Halfwords()
		if err != nil {
			return nil, curated.Errorf("performance: %v", err)
		}
		if len(hw) == 0 {
			return nil, curated.Errorf(NoInstructions)
		}

		switch method {
		case "TREE":
			return func() int {
				for _, h := range hw {
					sink ^= uint8(thumb.DecodeKind(h))
				}
				return len(hw)
			}, nil
		case "LUT":
			tab := lut.BuildThumb(thumb.Undefined, func(k thumb.Kind) thumb.Kind { return k })
			return func() int {
				for _, h := range hw {
					sink ^= uint8(tab.Lookup(h))
				}
				return len(hw)
			}, nil
		}
		return nil, curated.Errorf(UnknownMethod, method)
	}

	words, err := ld.Words()
	if err != nil {
		return nil, curated.Errorf("performance: %v", err)
	}
	if len(words) == 0 {
		return nil, curated.Errorf(NoInstructions)
	}

	switch method {
	case "TREE":
		return func() int {
			for _, w := range words {
				sink ^= uint8(arm.DecodeKind(w))
			}
			return len(words)
		}, nil
	case "LUT":
		tab := lut.BuildARM(arm.Undefined, func(k arm.Kind) arm.Kind { return k })
		return func() int {
			for _, w := range words {
				sink ^= uint8(tab.Lookup(w))
			}
			return len(words)
		}, nil
	}
	return nil, curated.Errorf(UnknownMethod, method)
}

// Check the decoding performance using the supplied data.
//
// Decoding will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, ld loader.Loader, isThumb bool, method string, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	step, err := decoder(method, ld, isThumb)
	if err != nil {
		return err
	}

	// number of instructions decoded and the number decoded when the
	// measurement period started
	var numInstructions int
	var startInstructions int

	runner := func() error {
		// signals false to indicate that the measurement period has started
		// and true when the duration has expired
		timerChan := make(chan bool)

		// allow the decoding rate to settle down before starting the timer
		// for the specified duration
		time.AfterFunc(min(dur/4, maxLeadtime), func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		for {
			numInstructions += step()

			select {
			case v := <-timerChan:
				if v {
					return timedOut
				}
				startInstructions = numInstructions
			default:
			}
		}
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	n := numInstructions - startInstructions
	mdips := CalcMdips(n, dur)

	set := "arm"
	if isThumb {
		set = "thumb"
	}
	logger.Logf(logger.Allow, "performance", "%s %s: %.2f Mdips", set, strings.ToLower(method), mdips)

	if _, err := fmt.Fprintf(output, "%.2f Mdips (%d instructions in %.2f seconds)\n", mdips, n, dur.Seconds()); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}
