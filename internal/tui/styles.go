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

import "github.com/charmbracelet/lipgloss"

// Palette follows the showcase page: teal accent on neutral grays.
var (
	colorAccent = lipgloss.Color("#21808D")
	colorText   = lipgloss.Color("#F5F5F5")
	colorMuted  = lipgloss.Color("245")
	colorBorder = lipgloss.Color("240")
)

// fadeRamp is the modal border color per fade step; the last entry is the settled color.
var fadeRamp = []lipgloss.Color{"236", "239", "242", "246", colorAccent}

const (
	// cardWidth is the outer width of a grid card including its border.
	cardWidth = 36
	// cardGap separates grid columns.
	cardGap = 1
	// descLines caps the card description height.
	descLines = 5
	// modalMaxWidth bounds the detail box on wide terminals.
	modalMaxWidth = 76
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(colorText).Background(colorAccent)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			Width(cardWidth - 2)
	selectedCardStyle = cardStyle.BorderForeground(colorAccent)

	cardTitleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	headingStyle   = lipgloss.NewStyle().Foreground(colorAccent)
	sectionStyle   = lipgloss.NewStyle().Bold(true).MarginTop(1)
	captionStyle   = lipgloss.NewStyle().Italic(true).Foreground(colorMuted).Align(lipgloss.Center)
	closeStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	helpStyle      = lipgloss.NewStyle().Foreground(colorMuted)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
)
