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

// Package disassembly formats decoded ARM and Thumb instructions as text.
//
// The Disassembler type holds one lookup table for each instruction set. The
// payload of each table entry is the kind of the instruction and the
// function that formats instructions of that kind. The live instruction word
// is wrapped in the view for the kind by the formatting function, so the
// decode tree is not consulted once the tables have been built.
//
// Each formatted instruction is returned as an Entry. Entries can be written
// in columns, with or without colour, or as CSV.
package disassembly
