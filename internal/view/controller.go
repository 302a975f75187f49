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
	"log/slog"
	"time"

	"portfolioshowcase/internal/catalog"
	"portfolioshowcase/internal/domain"
	applog "portfolioshowcase/internal/log"
)

// Animation carries purely cosmetic timings to renderers that support them.
// The zero value disables every delay. State transitions never wait on it.
type Animation struct {
	// Stagger is the delay between revealing consecutive grid cards.
	Stagger time.Duration
	// Fade is the modal fade-in duration.
	Fade time.Duration
}

// Animated is implemented by renderers that honor Animation hints.
type Animated interface {
	SetAnimation(a Animation)
}

// Tracker receives anonymous usage events. telemetry.Client satisfies it.
type Tracker interface {
	Event(name string, props map[string]any)
}

// Controller owns the State and is its only writer. It is not safe for
// concurrent use; front ends call it from their UI loop.
type Controller struct {
	store    *catalog.Store
	renderer Renderer
	state    State
	log      *slog.Logger
	tracker  Tracker
	anim     Animation
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger replaces the component logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTracker installs a usage event sink.
func WithTracker(t Tracker) Option { return func(c *Controller) { c.tracker = t } }

// WithAnimation sets the cosmetic timings forwarded to an Animated renderer.
func WithAnimation(a Animation) Option { return func(c *Controller) { c.anim = a } }

// NewController creates a controller in the initial state.
// Nothing is rendered until Start is called.
func NewController(store *catalog.Store, r Renderer, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		renderer: r,
		state:    InitialState(),
		log:      applog.WithComponent("view"),
	}
	for _, o := range opts {
		o(c)
	}
	if a, ok := r.(Animated); ok {
		a.SetAnimation(c.anim)
	}
	return c
}

// Start renders the grid for the current filter.
func (c *Controller) Start() error {
	return c.Dispatch(SetFilter{Label: c.state.ActiveFilter})
}

// Dispatch runs a through Reduce, commits the new state and applies the
// resulting effects to the renderer. Contract violations are returned
// unchanged in kind and leave state and renderer untouched.
func (c *Controller) Dispatch(a Action) error {
	next, effects, err := Reduce(c.store, c.state, a)
	if err != nil {
		c.log.Error("rejected action", slog.String("action", actionName(a)), slog.Any("err", err))
		return err
	}
	prev := c.state
	c.state = next
	c.log.Debug("transition",
		slog.String("action", actionName(a)),
		slog.String("from", prev.String()),
		slog.String("to", next.String()),
		slog.Int("effects", len(effects)),
	)
	if c.renderer != nil {
		for _, e := range effects {
			e.Apply(c.renderer)
		}
	}
	c.track(a, prev, effects)
	return nil
}

// MustDispatch is Dispatch for front ends whose inputs come from the catalog
// itself; an error there is a programming defect, so it panics.
func (c *Controller) MustDispatch(a Action) {
	if err := c.Dispatch(a); err != nil {
		panic(fmt.Sprintf("dispatch %s: %v", a, err))
	}
}

// SetFilter dispatches SetFilter{label}.
func (c *Controller) SetFilter(label string) error { return c.Dispatch(SetFilter{Label: label}) }

// OpenModal dispatches OpenModal{id}.
func (c *Controller) OpenModal(id int) error { return c.Dispatch(OpenModal{ID: id}) }

// CloseModal dispatches CloseModal{src}.
func (c *Controller) CloseModal(src CloseSource) error { return c.Dispatch(CloseModal{Source: src}) }

// State returns a copy of the current state.
func (c *Controller) State() State {
	s := c.state
	if s.Modal != nil {
		p := s.Modal.Clone()
		s.Modal = &p
	}
	return s
}

// VisibleProjects returns the projects the grid currently shows.
func (c *Controller) VisibleProjects() []domain.ProjectRecord {
	return Visible(c.store, c.state)
}

// Catalog returns the store the controller reads from.
func (c *Controller) Catalog() *catalog.Store { return c.store }

// Animation returns the configured cosmetic timings.
func (c *Controller) Animation() Animation { return c.anim }

// Describe summarizes the state for crash reports.
func (c *Controller) Describe() string { return c.state.String() }

func (c *Controller) track(a Action, prev State, effects []Effect) {
	if c.tracker == nil {
		return
	}
	switch a := a.(type) {
	case SetFilter:
		c.tracker.Event("filter_set", map[string]any{"category": a.Label})
	case OpenModal:
		c.tracker.Event("modal_open", map[string]any{"project_id": a.ID, "replaced": prev.ModalOpen()})
	case CloseModal:
		if len(effects) > 0 {
			c.tracker.Event("modal_close", map[string]any{"source": a.Source.String()})
		}
	}
}

func actionName(a Action) string {
	if a == nil {
		return "<nil>"
	}
	return a.String()
}
