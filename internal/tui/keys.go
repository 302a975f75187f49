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

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	nextFilter key.Binding
	prevFilter key.Binding
	left       key.Binding
	right      key.Binding
	up         key.Binding
	down       key.Binding
	open       key.Binding
	close      key.Binding
	cancel     key.Binding
	quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		nextFilter: key.NewBinding(key.WithKeys("tab", "]"), key.WithHelp("tab", "next filter")),
		prevFilter: key.NewBinding(key.WithKeys("shift+tab", "["), key.WithHelp("shift+tab", "prev filter")),
		left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "move")),
		right:      key.NewBinding(key.WithKeys("right", "l")),
		up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "move/scroll")),
		down:       key.NewBinding(key.WithKeys("down", "j")),
		open:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "details")),
		close:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close")),
		cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) gridHelp() []key.Binding {
	return []key.Binding{k.nextFilter, k.left, k.up, k.open, k.quit}
}

func (k keyMap) modalHelp() []key.Binding {
	return []key.Binding{k.up, k.close, k.cancel, k.quit}
}
