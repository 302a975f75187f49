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

import "errors"

var (
	// ErrInvalidCategory indicates a filter label that the catalog does not declare.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrUnknownProject indicates a project id that is not in the catalog.
	ErrUnknownProject = errors.New("unknown project")
	// ErrUnknownAction indicates an action type the reducer does not handle.
	ErrUnknownAction = errors.New("unknown action")
)
