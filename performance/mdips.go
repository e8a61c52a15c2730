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

import "time"

// CalcMdips takes the number of decoded instructions and the duration and
// returns the number of millions of decoded instructions per second.
func CalcMdips(numInstructions int, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(numInstructions) / duration.Seconds() / 1e6
}
