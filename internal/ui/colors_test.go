/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import "testing"

func TestSwatchColor(t *testing.T) {
	if c := swatchColor("#21808D"); c.R != 0x21 || c.G != 0x80 || c.B != 0x8D || c.A != 0xFF {
		t.Fatalf("swatchColor(#21808D) = %v", c)
	}
	if c := swatchColor("nope"); c.A != 255 || c.R != 128 {
		t.Fatalf("swatchColor fallback = %v", c)
	}
}
