/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package view

import (
	"strings"

	"portfolioshowcase/internal/domain"
)

const (
	// SummaryLimit is the number of description characters a card shows.
	SummaryLimit = 120
	// Ellipsis marks a truncated card description.
	Ellipsis = "..."
)

// CardView is the compact grid summary of one project.
type CardView struct {
	ID          int
	Title       string
	Category    string
	Description string
	Truncated   bool
	Colors      []string
	Dimensions  string
}

// DetailView is the full modal view of one project. Nothing is truncated.
type DetailView struct {
	ID             int
	Title          string
	Category       string
	Type           string
	Heading        string // "<category> • <type>"
	Caption        string // "<title> - <type>", the image placeholder text
	Description    string
	Colors         []string
	Tools          []string
	Dimensions     string
	TargetAudience string
	KeyFeatures    []string
	StyleKeywords  string
}

// Summarize projects a record onto its card.
// The description is cut at a fixed count of SummaryLimit characters (runes,
// never splitting a code point) without looking for word boundaries; Ellipsis
// is appended only when something was cut.
func Summarize(p domain.ProjectRecord) CardView {
	desc, cut := truncate(p.Description, SummaryLimit)
	if cut {
		desc += Ellipsis
	}
	return CardView{
		ID:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Description: desc,
		Truncated:   cut,
		Colors:      append([]string(nil), p.Colors...),
		Dimensions:  p.Dimensions,
	}
}

// SummarizeAll maps Summarize over projects, keeping order.
func SummarizeAll(projects []domain.ProjectRecord) []CardView {
	cards := make([]CardView, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, Summarize(p))
	}
	return cards
}

// Detail projects a record onto the modal view.
func Detail(p domain.ProjectRecord) DetailView {
	return DetailView{
		ID:             p.ID,
		Title:          p.Title,
		Category:       p.Category,
		Type:           p.Type,
		Heading:        p.Category + " • " + p.Type,
		Caption:        p.Title + " - " + p.Type,
		Description:    p.Description,
		Colors:         append([]string(nil), p.Colors...),
		Tools:          append([]string(nil), p.Tools...),
		Dimensions:     p.Dimensions,
		TargetAudience: p.TargetAudience,
		KeyFeatures:    append([]string(nil), p.KeyFeatures...),
		StyleKeywords:  strings.Join(p.StyleKeywords, ", "),
	}
}

func truncate(s string, n int) (string, bool) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], true
		}
		i++
	}
	return s, false
}
