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

package reg_test

import (
	"errors"
	"testing"

	"github.com/mycophonic/mycelium-es8388/internal/reg"
)

func TestResolveDivider(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value int
		want  byte
	}{
		{1, 1},
		{4, 4},
		{6, 5},  // table index order, not numeric order
		{72, 19},
		{5, 20}, // out-of-sequence tail of the table
		{34, 28},
	}

	for _, tc := range cases {
		got, err := reg.ResolveDivider(tc.value)
		if err != nil {
			t.Fatalf("ResolveDivider(%d): %v", tc.value, err)
		}

		if got != tc.want {
			t.Errorf("ResolveDivider(%d) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestResolveDivider_Unsupported(t *testing.T) {
	t.Parallel()

	for _, value := range []int{0, 7, 13, 100} {
		if _, err := reg.ResolveDivider(value); !errors.Is(err, reg.ErrDivider) {
			t.Errorf("ResolveDivider(%d): expected ErrDivider, got %v", value, err)
		}
	}
}
