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
	"fmt"

	"portfolioshowcase/internal/catalog"
	"portfolioshowcase/internal/domain"
)

// Reduce is the single transition function of the showcase:
// (State, Action) -> (State, effects). It never mutates its inputs.
// On error the input state is returned unchanged together with no effects,
// so a failed transition cannot leave a half-applied render behind.
func Reduce(store *catalog.Store, s State, a Action) (State, []Effect, error) {
	switch a := a.(type) {
	case SetFilter:
		if !store.HasCategory(a.Label) {
			return s, nil, fmt.Errorf("%w: %q", ErrInvalidCategory, a.Label)
		}
		next := s
		next.ActiveFilter = a.Label
		cards := SummarizeAll(store.InCategory(a.Label))
		return next, []Effect{RenderGrid{Cards: cards}}, nil

	case OpenModal:
		p, ok := store.Project(a.ID)
		if !ok {
			return s, nil, fmt.Errorf("%w: id %d", ErrUnknownProject, a.ID)
		}
		wasOpen := s.ModalOpen()
		next := s
		next.Modal = &p
		effects := []Effect{RenderDetail{View: Detail(p)}}
		if !wasOpen {
			effects = append(effects, ScrollLock{Locked: true})
		}
		return next, effects, nil

	case CloseModal:
		if !s.ModalOpen() {
			return s, nil, nil
		}
		next := s
		next.Modal = nil
		return next, []Effect{HideDetail{}, ScrollLock{Locked: false}}, nil

	default:
		return s, nil, fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
}

// Visible returns the projects the grid shows for s, in catalog order.
func Visible(store *catalog.Store, s State) []domain.ProjectRecord {
	return store.InCategory(s.ActiveFilter)
}
