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

// This file defines the data model of the portfolio showcase.
// Records are loaded once at startup and treated as immutable afterwards.

// CategoryAll is the synthetic category label meaning "no filter".
// A catalog always declares it as its first category.
const CategoryAll = "All"

// ProjectRecord is one design project in the showcase catalog.
// The JSON field names are the recognized catalog document fields.
type ProjectRecord struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	Type           string   `json:"type"`
	Description    string   `json:"description"`
	Colors         []string `json:"colors"`
	Tools          []string `json:"tools"`
	Dimensions     string   `json:"dimensions"`
	TargetAudience string   `json:"target_audience"`
	KeyFeatures    []string `json:"key_features"`
	StyleKeywords  []string `json:"style_keywords"`
}

// Clone returns a deep copy so callers cannot alias the catalog's slices.
func (p ProjectRecord) Clone() ProjectRecord {
	c := p
	c.Colors = append([]string(nil), p.Colors...)
	c.Tools = append([]string(nil), p.Tools...)
	c.KeyFeatures = append([]string(nil), p.KeyFeatures...)
	c.StyleKeywords = append([]string(nil), p.StyleKeywords...)
	return c
}

// Document is the on-disk shape of a catalog: the project list and the
// ordered category labels.
type Document struct {
	Projects   []ProjectRecord `json:"portfolio_projects"`
	Categories []string        `json:"categories"`
}
