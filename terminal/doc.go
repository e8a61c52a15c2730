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

// Package terminal contains the small amount of terminal handling needed by
// the armbf command line tool: a test for whether an output file is an
// interactive terminal and the ANSI sequences used to colour disassembly and
// log output.
//
// Colouring is only ever applied when it has been requested or when the
// output is a terminal. Output redirected to a file is always plain text
// unless colour is forced.
package terminal
