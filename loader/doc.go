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

// Package loader is used to specify the binary data that is to be decoded.
//
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported. Once loaded, the
// data can be converted into ARM instruction words or Thumb instruction
// halfwords. Both conversions treat the data as big-endian.
//
// The simplest instance of the Loader type:
//
//	ld := loader.Loader{
//		Filename: "firmware.bin",
//	}
//
// It is preferred however that the NewLoader() function is used.
package loader
