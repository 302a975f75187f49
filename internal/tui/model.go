/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package tui is the interactive terminal front end of the showcase. Its
// Model is a view.Renderer: the controller pushes grid and detail effects
// into it and the bubbletea loop draws them.
package tui

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"portfolioshowcase/internal/catalog"
	"portfolioshowcase/internal/view"
)

const (
	headerHeight  = 3 // title, tabs, blank
	footerHeight  = 1
	defaultWidth  = 100
	defaultHeight = 30
)

type revealMsg struct{ gen int }

type fadeMsg struct{ gen int }

// Fatal wraps a panic raised while handling input so it can be re-raised
// after the terminal has been restored.
type Fatal struct {
	Value any
	stack []byte
}

func (f *Fatal) Error() string { return fmt.Sprintf("%v", f.Value) }

// Stack returns the stack captured where the panic happened.
func (f *Fatal) Stack() []byte { return f.stack }

// Model is the bubbletea model and the controller's renderer.
type Model struct {
	ctrl *view.Controller
	keys keyMap
	anim view.Animation

	width, height int

	cards    []view.CardView
	revealed int
	cursor   int
	offset   int // first visible grid row
	locked   bool
	gen      int

	detail       *view.DetailView
	detailScroll int
	fadeStep     int
	fadeGen      int

	pending  []tea.Cmd
	quitting bool
	fatal    *Fatal
}

var (
	_ view.Renderer = (*Model)(nil)
	_ view.Animated = (*Model)(nil)
	_ tea.Model     = (*Model)(nil)
)

// New builds the model, wires a controller to it and renders the initial grid.
func New(store *catalog.Store, opts ...view.Option) (*Model, error) {
	m := &Model{keys: defaultKeys(), width: defaultWidth, height: defaultHeight, fadeStep: len(fadeRamp) - 1}
	m.ctrl = view.NewController(store, m, opts...)
	if err := m.ctrl.Start(); err != nil {
		return nil, err
	}
	return m, nil
}

// Controller returns the controller driving the model.
func (m *Model) Controller() *view.Controller { return m.ctrl }

// RenderGrid replaces the grid and restarts the reveal stagger.
func (m *Model) RenderGrid(cards []view.CardView) {
	m.cards = cards
	m.cursor = 0
	if !m.locked {
		m.offset = 0
	}
	m.gen++
	if m.anim.Stagger <= 0 || len(cards) == 0 {
		m.revealed = len(cards)
		return
	}
	m.revealed = 0
	m.schedule(m.anim.Stagger, revealMsg{gen: m.gen})
}

// RenderDetail shows the detail box and starts the fade.
func (m *Model) RenderDetail(d view.DetailView) {
	m.detail = &d
	m.detailScroll = 0
	m.fadeGen++
	if m.anim.Fade <= 0 {
		m.fadeStep = len(fadeRamp) - 1
		return
	}
	m.fadeStep = 0
	m.schedule(m.fadeInterval(), fadeMsg{gen: m.fadeGen})
}

// HideDetail removes the detail box.
func (m *Model) HideDetail() {
	m.detail = nil
	m.detailScroll = 0
}

// SetScrollLock freezes the grid scroll position while the detail is shown.
func (m *Model) SetScrollLock(locked bool) { m.locked = locked }

// SetAnimation stores the cosmetic timings.
func (m *Model) SetAnimation(a view.Animation) { m.anim = a }

func (m *Model) fadeInterval() time.Duration {
	return m.anim.Fade / time.Duration(len(fadeRamp)-1)
}

func (m *Model) schedule(d time.Duration, msg tea.Msg) {
	m.pending = append(m.pending, tea.Tick(d, func(time.Time) tea.Msg { return msg }))
}

func (m *Model) flush() tea.Cmd {
	cmds := m.pending
	m.pending = nil
	if m.quitting {
		cmds = append(cmds, tea.Quit)
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// Init returns the ticks scheduled by the initial render.
func (m *Model) Init() tea.Cmd { return m.flush() }

// Update handles input. A panic from the controller ends the program and is
// kept for Run to re-raise.
func (m *Model) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.fatal = &Fatal{Value: r, stack: debug.Stack()}
			m.quitting = true
			model, cmd = m, tea.Quit
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ensureCursorVisible()
	case tea.KeyMsg:
		if m.detail != nil {
			m.handleModalKey(msg)
		} else {
			m.handleGridKey(msg)
		}
	case tea.MouseMsg:
		m.handleMouse(tea.MouseEvent(msg))
	case revealMsg:
		if msg.gen == m.gen && m.revealed < len(m.cards) {
			m.revealed++
			if m.revealed < len(m.cards) {
				m.schedule(m.anim.Stagger, revealMsg{gen: m.gen})
			}
		}
	case fadeMsg:
		if msg.gen == m.fadeGen && m.fadeStep < len(fadeRamp)-1 {
			m.fadeStep++
			if m.fadeStep < len(fadeRamp)-1 {
				m.schedule(m.fadeInterval(), fadeMsg{gen: m.fadeGen})
			}
		}
	}
	return m, m.flush()
}

func (m *Model) cycleFilter(step int) {
	cats := m.ctrl.Catalog().Categories()
	cur := 0
	active := m.ctrl.State().ActiveFilter
	for i, c := range cats {
		if c == active {
			cur = i
		}
	}
	next := (cur + step + len(cats)) % len(cats)
	m.ctrl.MustDispatch(view.SetFilter{Label: cats[next]})
}

func (m *Model) handleGridKey(msg tea.KeyMsg) {
	cols := columns(m.width)
	switch {
	case key.Matches(msg, m.keys.quit):
		m.quitting = true
	case key.Matches(msg, m.keys.nextFilter):
		m.cycleFilter(1)
	case key.Matches(msg, m.keys.prevFilter):
		m.cycleFilter(-1)
	case key.Matches(msg, m.keys.left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.up):
		m.moveCursor(-cols)
	case key.Matches(msg, m.keys.down):
		m.moveCursor(cols)
	case key.Matches(msg, m.keys.open):
		if m.cursor < len(m.cards) {
			m.ctrl.MustDispatch(view.OpenModal{ID: m.cards[m.cursor].ID})
		}
	case key.Matches(msg, m.keys.cancel):
		// closing a closed modal is a no-op transition
		m.ctrl.MustDispatch(view.CloseModal{Source: view.CloseCancelKey})
	default:
		s := msg.String()
		if n, err := strconv.Atoi(s); err == nil && len(s) == 1 && n >= 1 {
			cats := m.ctrl.Catalog().Categories()
			if n <= len(cats) {
				m.ctrl.MustDispatch(view.SetFilter{Label: cats[n-1]})
			}
		}
	}
}

func (m *Model) handleModalKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.quitting = true
	case key.Matches(msg, m.keys.cancel):
		m.ctrl.MustDispatch(view.CloseModal{Source: view.CloseCancelKey})
	case key.Matches(msg, m.keys.close):
		m.ctrl.MustDispatch(view.CloseModal{Source: view.CloseButton})
	case key.Matches(msg, m.keys.up):
		m.scrollDetail(-1)
	case key.Matches(msg, m.keys.down):
		m.scrollDetail(1)
	}
}

func (m *Model) moveCursor(delta int) {
	if len(m.cards) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.cards)-1)
	m.ensureCursorVisible()
}

// gridHeight is the number of terminal lines available to card rows.
func (m *Model) gridHeight() int { return max(m.height-headerHeight-footerHeight, 1) }

func (m *Model) ensureCursorVisible() {
	if m.locked || len(m.cards) == 0 {
		return
	}
	row := m.cursor / columns(m.width)
	if row < m.offset {
		m.offset = row
		return
	}
	rows := layoutGrid(m.cards, m.width, -1, len(m.cards))
	for {
		used := 0
		for i := m.offset; i <= row && i < len(rows); i++ {
			used += rows[i].height
		}
		if used <= m.gridHeight() || m.offset >= row {
			return
		}
		m.offset++
	}
}

func (m *Model) scrollGrid(delta int) {
	if m.locked {
		return
	}
	rows := (len(m.cards) + columns(m.width) - 1) / columns(m.width)
	m.offset = min(max(m.offset+delta, 0), max(rows-1, 0))
}

func (m *Model) scrollDetail(delta int) {
	if m.detail == nil {
		return
	}
	total := len(detailLines(*m.detail, m.modalWidth()-6))
	limit := max(total-m.modalBodyHeight(), 0)
	m.detailScroll = min(max(m.detailScroll+delta, 0), limit)
}

func (m *Model) handleMouse(ev tea.MouseEvent) {
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		if m.detail != nil {
			m.scrollDetail(-1)
		} else {
			m.scrollGrid(-1)
		}
		return
	case tea.MouseButtonWheelDown:
		if m.detail != nil {
			m.scrollDetail(1)
		} else {
			m.scrollGrid(1)
		}
		return
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress {
			return
		}
	default:
		return
	}

	if m.detail != nil {
		x, y, w, h := m.modalRect()
		switch {
		case ev.Y <= y+1 && ev.Y >= y && ev.X >= x+w-3-len(closeLabel) && ev.X < x+w:
			m.ctrl.MustDispatch(view.CloseModal{Source: view.CloseButton})
		case ev.X < x || ev.X >= x+w || ev.Y < y || ev.Y >= y+h:
			m.ctrl.MustDispatch(view.CloseModal{Source: view.CloseOverlay})
		}
		return
	}

	if ev.Y == 1 {
		_, zones := renderTabs(m.ctrl.Catalog().Categories(), m.ctrl.State().ActiveFilter)
		for _, z := range zones {
			if ev.X >= z.from && ev.X < z.to {
				m.ctrl.MustDispatch(view.SetFilter{Label: z.label})
				return
			}
		}
		return
	}
	if id, idx, ok := m.cardAt(ev.X, ev.Y); ok {
		m.cursor = idx
		m.ctrl.MustDispatch(view.OpenModal{ID: id})
	}
}

// cardAt maps a screen position to the card under it.
func (m *Model) cardAt(x, y int) (id, index int, ok bool) {
	cols := columns(m.width)
	col := x / (cardWidth + cardGap)
	if col >= cols || x%(cardWidth+cardGap) >= cardWidth {
		return 0, 0, false
	}
	top := headerHeight
	rows := layoutGrid(m.cards, m.width, -1, len(m.cards))
	end := m.lastVisibleRow(rows)
	for r := m.offset; r < end; r++ {
		if y >= top && y < top+rows[r].height {
			if col < len(rows[r].ids) {
				idx := r*cols + col
				if idx >= m.revealed {
					return 0, 0, false
				}
				return rows[r].ids[col], idx, true
			}
			return 0, 0, false
		}
		top += rows[r].height
	}
	return 0, 0, false
}

// lastVisibleRow returns the index after the last row drawn from m.offset.
// The first row is always drawn even when it is taller than the grid.
func (m *Model) lastVisibleRow(rows []gridRow) int {
	lines, budget := 0, m.gridHeight()
	r := m.offset
	for ; r < len(rows); r++ {
		if lines+rows[r].height > budget && lines > 0 {
			break
		}
		lines += rows[r].height
	}
	return r
}

func (m *Model) modalWidth() int { return min(max(m.width-4, 30), modalMaxWidth) }

// modalBodyHeight leaves room for borders, the close header and the footer.
func (m *Model) modalBodyHeight() int { return max(m.height-footerHeight-4, 3) }

func (m *Model) renderModal() string {
	return modalBox(*m.detail, m.modalWidth(), m.modalBodyHeight(), m.detailScroll, fadeRamp[m.fadeStep])
}

// modalRect returns the screen rectangle of the detail box.
func (m *Model) modalRect() (x, y, w, h int) {
	w, h = lipgloss.Size(m.renderModal())
	x = max((m.width-w)/2, 0)
	y = max((m.height-footerHeight-h)/2, 0)
	return x, y, w, h
}

func (m *Model) help(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}

// View draws either the grid screen or the detail box over a blank backdrop.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.detail != nil {
		return m.viewModal()
	}
	return m.viewGrid()
}

func (m *Model) viewGrid() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Design Portfolio"))
	b.WriteString("\n")
	tabs, _ := renderTabs(m.ctrl.Catalog().Categories(), m.ctrl.State().ActiveFilter)
	b.WriteString(tabs)
	b.WriteString("\n\n")

	lines := 0
	budget := m.gridHeight()
	if len(m.cards) == 0 {
		b.WriteString(mutedStyle.Render("No projects in this category."))
		b.WriteString("\n")
		lines++
	}
	rows := layoutGrid(m.cards, m.width, m.cursor, m.revealed)
	end := m.lastVisibleRow(rows)
	for r := m.offset; r < end; r++ {
		b.WriteString(rows[r].text)
		b.WriteString("\n")
		lines += rows[r].height
	}
	for ; lines < budget; lines++ {
		b.WriteString("\n")
	}
	b.WriteString(m.help(m.keys.gridHelp()))
	return b.String()
}

func (m *Model) viewModal() string {
	box := m.renderModal()
	x, y, _, h := m.modalRect()
	pad := strings.Repeat(" ", x)
	var b strings.Builder
	b.WriteString(strings.Repeat("\n", y))
	for _, line := range strings.Split(box, "\n") {
		b.WriteString(pad)
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := y + h; i < m.height-footerHeight; i++ {
		b.WriteString("\n")
	}
	b.WriteString(m.help(m.keys.modalHelp()))
	return b.String()
}

// Run starts the full-screen program. A controller panic raised during the
// session is re-raised here once the terminal is restored.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return err
	}
	if m.fatal != nil {
		panic(m.fatal)
	}
	return nil
}
