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

// Package logger is the central log for armbf. Table builds, the loader and
// the command line tool all log here. The decoder itself never logs.
//
// Log entries are a tag and a detail string. The tag is usually the name of
// the package or component making the entry:
//
//	logger.Log(logger.Allow, "lut", "arm table built")
//
// Consecutive identical entries are folded into one entry with a repeat
// count. The log is capped and the oldest entries are dropped first.
//
// Every request to log is accompanied by a Permission. Components that may
// run in contexts where logging is unwanted (a benchmark for example) can
// supply their own implementation.
package logger
