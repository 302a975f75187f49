/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package domain

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	cases := map[string]color.NRGBA{
		"#FED500":   {R: 0xFE, G: 0xD5, B: 0x00, A: 0xFF},
		"#fff":      {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		"#0008":     {R: 0, G: 0, B: 0, A: 0x88},
		"#21808D80": {R: 0x21, G: 0x80, B: 0x8D, A: 0x80},
		" #000000 ": {A: 0xFF},
		"#8aF":      {R: 0x88, G: 0xAA, B: 0xFF, A: 0xFF},
		"112233":    {R: 0x11, G: 0x22, B: 0x33, A: 0xFF},
	}
	for in, want := range cases {
		got, err := ParseHex(in)
		if err != nil {
			t.Fatalf("ParseHex(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseHex(%q) = %v, want %v", in, got, want)
		}
	}
	for _, bad := range []string{"", "#", "#12", "#GGGGGG", "#1234567", "#12345Z", "#12 345", "red;x"} {
		if _, err := ParseHex(bad); err == nil {
			t.Fatalf("ParseHex(%q) expected error", bad)
		}
	}
}
