/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package export writes static snapshots of the showcase: a PDF brochure,
// a PNG contact sheet and a standalone HTML page.
package export

import (
	"fmt"

	"portfolioshowcase/internal/catalog"
	"portfolioshowcase/internal/view"
)

// Snapshot is what a front end would show for one filter: the grid cards
// and, for every card, the detail the modal would open with.
type Snapshot struct {
	Categories []string
	Filter     string
	Cards      []view.CardView
	Details    []view.DetailView
}

// capture is a view.Renderer that keeps the last grid and every detail.
type capture struct {
	cards   []view.CardView
	details []view.DetailView
}

func (c *capture) RenderGrid(cards []view.CardView) { c.cards = cards }
func (c *capture) RenderDetail(d view.DetailView)   { c.details = append(c.details, d) }
func (c *capture) HideDetail()                      {}
func (c *capture) SetScrollLock(bool)               {}

// Capture drives a controller through the filter and every visible project
// and records what it renders.
func Capture(store *catalog.Store, filter string) (Snapshot, error) {
	rec := &capture{}
	ctrl := view.NewController(store, rec)
	if err := ctrl.SetFilter(filter); err != nil {
		return Snapshot{}, fmt.Errorf("capture %q: %w", filter, err)
	}
	for _, card := range rec.cards {
		if err := ctrl.OpenModal(card.ID); err != nil {
			return Snapshot{}, fmt.Errorf("capture project %d: %w", card.ID, err)
		}
	}
	if err := ctrl.CloseModal(view.CloseButton); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Categories: store.Categories(),
		Filter:     filter,
		Cards:      rec.cards,
		Details:    rec.details,
	}, nil
}
