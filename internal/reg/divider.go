/*
   Copyright Mycophonic.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reg

import "fmt"

// DividerAuto is the MasterMode divider index meaning "detect the
// MCLK/BCLK ratio automatically".
const DividerAuto byte = 0

// bclkDividers is the hardware's canonical divider table. The encoded
// value is the one-based position in this list, not the divider itself,
// and the list is not sorted by magnitude — reordering it would produce
// silently wrong clocking.
//
//nolint:gochecknoglobals
var bclkDividers = [...]int{
	1, 2, 3, 4, 6, 8, 9, 11, 12, 16, 18, 22, 24, 33, 36, 44, 48, 66, 72,
	5, 10, 15, 17, 20, 25, 30, 32, 34,
}

// ResolveDivider maps an MCLK-to-BCLK divider value to its MasterMode
// index encoding.
func ResolveDivider(value int) (byte, error) {
	for idx, div := range bclkDividers {
		if div == value {
			return byte(idx + 1), nil
		}
	}

	return 0, fmt.Errorf("%w: %d", ErrDivider, value)
}
