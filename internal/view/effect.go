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

// Renderer is the external collaborator that draws view models into a
// concrete medium (terminal, desktop window, document).
// Implementations report card selections back as OpenModal and the three
// close controls as CloseModal.
type Renderer interface {
	// RenderGrid replaces the whole grid with one element per card, in order.
	RenderGrid(cards []CardView)
	// RenderDetail replaces the modal content and shows the modal.
	RenderDetail(v DetailView)
	// HideDetail hides the modal.
	HideDetail()
	// SetScrollLock suppresses (true) or restores (false) background scrolling.
	SetScrollLock(locked bool)
}

// Effect is a render command emitted by Reduce. Effects are applied in order
// only after the transition has fully succeeded.
type Effect interface {
	Apply(r Renderer)
}

// RenderGrid asks the renderer to replace the grid.
type RenderGrid struct {
	Cards []CardView
}

// RenderDetail asks the renderer to show a project's detail view.
type RenderDetail struct {
	View DetailView
}

// HideDetail asks the renderer to hide the modal.
type HideDetail struct{}

// ScrollLock toggles background scrolling.
type ScrollLock struct {
	Locked bool
}

func (e RenderGrid) Apply(r Renderer)   { r.RenderGrid(e.Cards) }
func (e RenderDetail) Apply(r Renderer) { r.RenderDetail(e.View) }
func (HideDetail) Apply(r Renderer)     { r.HideDetail() }
func (e ScrollLock) Apply(r Renderer)   { r.SetScrollLock(e.Locked) }
