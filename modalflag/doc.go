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

// Package modalflag wraps the flag package in the Go standard library. It
// handles program modes, each with their own set of flags, in the manner of
// the go command (go build, go test, etc.)
//
// Arguments are supplied with NewArgs() and then processed with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("DECODE", "DISASM", "LUT", "PERFORMANCE")
//	p, err := md.Parse()
//
// The first sub-mode is the default and is selected when the first argument
// is not a sub-mode name. Sub-mode comparisons are case insensitive and the
// name is reported in upper case by Mode().
//
// Once a mode has been selected, NewMode() starts a new layer of flags for
// that mode. The next Parse() processes those flags and any further
// sub-modes:
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		thumb := md.AddBool("thumb", false, "input is thumb code")
//		base := md.AddAddress("base", 0, "address of the first instruction")
//		p, err := md.Parse()
//		...
//	}
//
// Parse() returns ParseHelp if help was requested. The help message will
// have already been written to the Output field. Arguments that are not flags
// or sub-modes are available with RemainingArgs() and GetArg().
package modalflag
