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

// Package random generates streams of instruction words for exercising the
// decoders. Words are drawn uniformly from the whole encoding space so a
// stream visits rare instruction kinds as well as common ones.
//
// Every Random instance is seeded from a base seed chosen when the program
// starts, so two runs see different streams. If the same stream is required
// every single time then set ZeroSeed to true before the first word is
// requested. This is useful for testing and for comparing performance runs.
package random
