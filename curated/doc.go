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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
// The pattern is kept with the error and is used to identify it later:
//
//	const TruncatedInput = "loader: input is truncated: %d bytes remain"
//
//	err := curated.Errorf(TruncatedInput, 2)
//	if curated.Is(err, TruncatedInput) {
//		...
//	}
//
// The Has() function is similar to Is() but checks if a pattern occurs
// somewhere in the error chain. A chain is formed when a curated error is one
// of the placeholder values of another curated error.
//
//	f := curated.Errorf("disasm: %v", err)
//
//	curated.Has(f, TruncatedInput) // true
//	curated.Is(f, TruncatedInput)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We think of curated errors as expected errors and
// uncurated errors as unexpected.
//
// The Error() implementation normalises the error chain so that duplicate
// adjacent parts are removed. A part is a sub-string separated by ": ". This
// means that each level of a call stack can wrap an error with the same
// prefix without the message stuttering:
//
//	disasm: disasm: input is truncated
//
// becomes
//
//	disasm: input is truncated
//
// Curated errors also implement Unwrap() so that the standard errors.Is()
// and errors.As() functions can see errors wrapped by the %v verb.
package curated
