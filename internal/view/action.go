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

import "fmt"

// Action is a discrete user intent consumed by Reduce.
// The set is closed: SetFilter, OpenModal and CloseModal.
type Action interface {
	fmt.Stringer
	isAction()
}

// SetFilter selects the category whose projects the grid shows.
type SetFilter struct {
	Label string
}

// OpenModal shows the detail view of the project with the given id.
type OpenModal struct {
	ID int
}

// CloseModal hides the detail view. Source records which control asked for it;
// every source yields the same resulting state.
type CloseModal struct {
	Source CloseSource
}

func (SetFilter) isAction()  {}
func (OpenModal) isAction()  {}
func (CloseModal) isAction() {}

func (a SetFilter) String() string  { return fmt.Sprintf("set_filter(%q)", a.Label) }
func (a OpenModal) String() string  { return fmt.Sprintf("open_modal(%d)", a.ID) }
func (a CloseModal) String() string { return fmt.Sprintf("close_modal(%s)", a.Source) }

// CloseSource identifies what requested the modal to close.
type CloseSource int

const (
	// CloseButton is the explicit close control inside the modal.
	CloseButton CloseSource = iota
	// CloseOverlay is a click on the backdrop outside the modal content.
	CloseOverlay
	// CloseCancelKey is the Escape key.
	CloseCancelKey
)

func (s CloseSource) String() string {
	switch s {
	case CloseButton:
		return "button"
	case CloseOverlay:
		return "overlay"
	case CloseCancelKey:
		return "cancel_key"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}
