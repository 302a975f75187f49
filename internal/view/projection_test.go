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
	"testing"

	"github.com/stretchr/testify/require"

	"portfolioshowcase/internal/catalog"
	"portfolioshowcase/internal/domain"
)

func withDescription(desc string) domain.ProjectRecord {
	return domain.ProjectRecord{
		ID:          1,
		Title:       "Poster",
		Category:    "Print",
		Type:        "Event",
		Description: desc,
		Colors:      []string{"#111111", "#222222"},
		Dimensions:  "1080 x 1080px",
	}
}

func TestSummarize_TruncatesLongDescription(t *testing.T) {
	desc := strings.Repeat("abcdefghij", 15) // 150 characters
	card := Summarize(withDescription(desc))
	require.Equal(t, desc[:120]+"...", card.Description)
	require.True(t, card.Truncated)
}

func TestSummarize_KeepsShortDescription(t *testing.T) {
	desc := strings.Repeat("x", 50)
	card := Summarize(withDescription(desc))
	require.Equal(t, desc, card.Description)
	require.False(t, card.Truncated)
}

func TestSummarize_ExactLimitIsNotTruncated(t *testing.T) {
	desc := strings.Repeat("y", SummaryLimit)
	card := Summarize(withDescription(desc))
	require.Equal(t, desc, card.Description)
	require.False(t, card.Truncated)
}

func TestSummarize_CutsMidWord(t *testing.T) {
	desc := strings.Repeat("word ", 23) + "boundary" // the 120th character falls inside "boundary"
	card := Summarize(withDescription(desc))
	require.True(t, strings.HasSuffix(card.Description, "bound..."), card.Description)
}

func TestSummarize_CountsRunesNotBytes(t *testing.T) {
	desc := strings.Repeat("é", 130)
	card := Summarize(withDescription(desc))
	require.Equal(t, strings.Repeat("é", 120)+"...", card.Description)
}

func TestSummarize_CopiesFields(t *testing.T) {
	p := withDescription("short")
	card := Summarize(p)
	require.Equal(t, CardView{
		ID:          1,
		Title:       "Poster",
		Category:    "Print",
		Description: "short",
		Colors:      []string{"#111111", "#222222"},
		Dimensions:  "1080 x 1080px",
	}, card)

	card.Colors[0] = "#FFFFFF"
	require.Equal(t, "#111111", p.Colors[0])
}

func TestSummarize_DefaultCatalogCards(t *testing.T) {
	for _, p := range catalog.Default().Projects() {
		card := Summarize(p)
		require.True(t, card.Truncated, p.Title)
		require.Len(t, []rune(card.Description), SummaryLimit+len(Ellipsis))
		require.Len(t, card.Colors, len(p.Colors))
	}
}

func TestDetail_ExposesEveryFieldUntruncated(t *testing.T) {
	p, ok := catalog.Default().Project(4)
	require.True(t, ok)
	d := Detail(p)

	require.Equal(t, p.Description, d.Description)
	require.Equal(t, "Gourmet Burger Food Advertisement - Restaurant Marketing", d.Caption)
	require.Equal(t, []string{"Adobe Photoshop", "Food Photography"}, d.Tools)
	require.Equal(t, []string{"High-quality food photography", "Bold typography", "Price highlighting", "Call-to-action button"}, d.KeyFeatures)
	require.Equal(t, []string{"#FED500", "#000000", "#DC2626"}, d.Colors)
	require.Equal(t, "1131 x 1600px", d.Dimensions)
	require.Equal(t, "Food lovers, restaurant customers, delivery app users", d.TargetAudience)
}

func TestDetail_EmptyKeywords(t *testing.T) {
	d := Detail(withDescription("d"))
	require.Equal(t, "", d.StyleKeywords)
	require.Empty(t, d.Tools)
}
