/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"portfolioshowcase/internal/view"
)

// gridRow is one rendered line of cards plus the ids in column order.
type gridRow struct {
	text   string
	ids    []int
	height int
}

// columns returns how many cards fit side by side in width.
func columns(width int) int {
	n := (width + cardGap) / (cardWidth + cardGap)
	return max(n, 1)
}

// swatch renders a hex color as a two-cell block. Alpha digits are dropped
// since terminals have no transparency.
func swatch(hex string) string {
	if len(hex) == 9 {
		hex = hex[:7]
	} else if len(hex) == 5 {
		hex = hex[:4]
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func swatches(colors []string) string {
	parts := make([]string, 0, len(colors))
	for _, c := range colors {
		parts = append(parts, swatch(c))
	}
	return strings.Join(parts, " ")
}

// renderCard draws one card. Unrevealed cards keep their size but stay blank.
func renderCard(c view.CardView, selected, revealed bool) string {
	inner := cardWidth - 4
	desc := strings.Split(wordwrap.String(c.Description, inner), "\n")
	if len(desc) > descLines {
		desc = desc[:descLines]
	}
	lines := []string{
		swatches(c.Colors),
		cardTitleStyle.Render(wordwrap.String(c.Title, inner)),
		headingStyle.Render(c.Category),
		strings.Join(desc, "\n"),
	}
	if c.Dimensions != "" {
		lines = append(lines, mutedStyle.Render(c.Dimensions))
	}
	st := cardStyle
	if selected {
		st = selectedCardStyle
	}
	out := st.Render(strings.Join(lines, "\n"))
	if revealed {
		return out
	}
	w, h := lipgloss.Size(out)
	return lipgloss.NewStyle().Width(w).Height(h).Render("")
}

// layoutGrid renders cards in rows for width. selected is a card index or -1;
// only the first revealed cards are drawn.
func layoutGrid(cards []view.CardView, width, selected, revealed int) []gridRow {
	cols := columns(width)
	var rows []gridRow
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		parts := make([]string, 0, 2*(end-start))
		ids := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			if i > start {
				parts = append(parts, strings.Repeat(" ", cardGap))
			}
			parts = append(parts, renderCard(cards[i], i == selected, i < revealed))
			ids = append(ids, cards[i].ID)
		}
		text := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		rows = append(rows, gridRow{text: text, ids: ids, height: lipgloss.Height(text)})
	}
	return rows
}

// tabZone is the horizontal extent of one filter tab.
type tabZone struct {
	label    string
	from, to int
}

func renderTabs(categories []string, active string) (string, []tabZone) {
	parts := make([]string, 0, len(categories))
	zones := make([]tabZone, 0, len(categories))
	x := 0
	for _, c := range categories {
		st := tabStyle
		if c == active {
			st = activeTabStyle
		}
		s := st.Render(c)
		w := lipgloss.Width(s)
		zones = append(zones, tabZone{label: c, from: x, to: x + w})
		parts = append(parts, s)
		x += w + 1
	}
	return strings.Join(parts, " "), zones
}

func bullets(items []string, width int) string {
	if len(items) == 0 {
		return mutedStyle.Render("none")
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		wrapped := wordwrap.String(it, max(width-2, 1))
		lines = append(lines, "• "+strings.ReplaceAll(wrapped, "\n", "\n  "))
	}
	return strings.Join(lines, "\n")
}

// detailLines renders the full detail body, wrapped to width, one entry per terminal line.
func detailLines(d view.DetailView, width int) []string {
	palette := make([]string, 0, len(d.Colors))
	for _, c := range d.Colors {
		palette = append(palette, swatch(c)+" "+c)
	}
	blocks := []string{
		captionStyle.Width(width).Render(d.Caption),
		"",
		cardTitleStyle.Render(wordwrap.String(d.Title, width)),
		headingStyle.Render(d.Heading),
		"",
		wordwrap.String(d.Description, width),
		sectionStyle.Render("Dimensions"),
		d.Dimensions,
		sectionStyle.Render("Tools Used"),
		bullets(d.Tools, width),
		sectionStyle.Render("Target Audience"),
		wordwrap.String(d.TargetAudience, width),
		sectionStyle.Render("Style Keywords"),
		wordwrap.String(d.StyleKeywords, width),
		sectionStyle.Render("Key Features"),
		bullets(d.KeyFeatures, width),
		sectionStyle.Render("Color Palette"),
		strings.Join(palette, "\n"),
	}
	return strings.Split(strings.Join(blocks, "\n"), "\n")
}

// modalBox renders the detail box for the given viewport. bodyHeight limits
// the visible body lines; scroll is the first visible body line.
func modalBox(d view.DetailView, boxWidth, bodyHeight, scroll int, border lipgloss.TerminalColor) string {
	inner := boxWidth - 6
	lines := detailLines(d, inner)
	if bodyHeight > 0 && len(lines) > bodyHeight {
		scroll = max(min(scroll, len(lines)-bodyHeight), 0)
		lines = lines[scroll : scroll+bodyHeight]
	}
	header := lipgloss.PlaceHorizontal(inner, lipgloss.Right, closeStyle.Render(closeLabel))
	content := header + "\n" + strings.Join(lines, "\n")
	return modalStyle.BorderForeground(border).Width(boxWidth - 2).Render(content)
}

const closeLabel = "[x] close"

// GridText renders the card grid for a terminal of the given width, with
// every card shown. The CLI uses it for non-interactive output.
func GridText(categories []string, active string, cards []view.CardView, width int) string {
	tabs, _ := renderTabs(categories, active)
	var b strings.Builder
	b.WriteString(tabs)
	b.WriteString("\n\n")
	if len(cards) == 0 {
		b.WriteString(mutedStyle.Render("No projects in this category."))
		b.WriteString("\n")
		return b.String()
	}
	for _, r := range layoutGrid(cards, width, -1, len(cards)) {
		b.WriteString(r.text)
		b.WriteString("\n")
	}
	return b.String()
}

// DetailText renders one project's detail box at the given width.
func DetailText(d view.DetailView, width int) string {
	w := min(max(width, 30), modalMaxWidth)
	return modalBox(d, w, 0, 0, colorAccent) + "\n"
}
