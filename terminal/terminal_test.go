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

package terminal_test

import (
	"os"
	"testing"

	"github.com/eigenform/armbf/terminal"
	"github.com/eigenform/armbf/test"
)

func TestColorBuild(t *testing.T) {
	s, err := terminal.ColorBuild("red", "", true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91m")

	s, err = terminal.ColorBuild("green", "bold", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[32;1m")

	s, err = terminal.ColorBuild("", "", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, terminal.NormalPen)

	_, err = terminal.ColorBuild("puce", "", false)
	test.ExpectFailure(t, err)

	_, err = terminal.ColorBuild("", "blink", false)
	test.ExpectFailure(t, err)
}

func TestPens(t *testing.T) {
	test.ExpectEquality(t, terminal.Pens["cyan"], "\033[96m")
	test.ExpectEquality(t, terminal.DimPens["cyan"], "\033[36m")
	test.ExpectEquality(t, terminal.PenStyles["underline"], "\033[4m")
	test.ExpectEquality(t, len(terminal.Pens), 8)
}

func TestColorize(t *testing.T) {
	test.ExpectEquality(t, terminal.Colorize("", "mov"), "mov")
	test.ExpectEquality(t, terminal.Colorize(terminal.Pens["red"], "mov"), "\033[91mmov\033[m")
}

func TestIsTerminal(t *testing.T) {
	test.ExpectFailure(t, terminal.IsTerminal(nil))

	f, err := os.CreateTemp(t.TempDir(), "tty")
	test.DemandSuccess(t, err)
	defer f.Close()
	test.ExpectFailure(t, terminal.IsTerminal(f))
}
