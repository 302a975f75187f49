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
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const hexDigits = "0123456789abcdefABCDEF"

// ParseHex converts "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" into a color.
// The leading '#' is optional.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	// colorful.Hex stops at the first non-hex rune, so reject those up front
	if h == "" || strings.TrimLeft(h, hexDigits) != "" {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	alpha := "ff"
	switch len(h) {
	case 3, 6:
	case 4:
		h, alpha = h[:3], strings.Repeat(h[3:], 2)
	case 8:
		h, alpha = h[:6], h[6:]
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	a, err := strconv.ParseUint(alpha, 16, 8)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a)}, nil
}

// MustParseHex is ParseHex for literals; it panics on malformed input.
func MustParseHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
