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

	"portfolioshowcase/internal/domain"
)

// State is the mutable UI state: the active filter and the project shown in
// the modal. Modal is nil while the modal is closed.
type State struct {
	ActiveFilter string
	Modal        *domain.ProjectRecord
}

// InitialState is the state at startup: no filter, modal closed.
func InitialState() State {
	return State{ActiveFilter: domain.CategoryAll}
}

// ModalOpen reports whether the modal currently shows a project.
func (s State) ModalOpen() bool { return s.Modal != nil }

func (s State) String() string {
	if s.Modal == nil {
		return fmt.Sprintf("filter=%q modal=closed", s.ActiveFilter)
	}
	return fmt.Sprintf("filter=%q modal=open(%d)", s.ActiveFilter, s.Modal.ID)
}
