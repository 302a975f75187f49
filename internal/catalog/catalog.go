/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package catalog holds the immutable project catalog shown by the showcase.
// A Store is built once at startup and only offers read access afterwards.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"portfolioshowcase/internal/domain"
)

var (
	// ErrInconsistent indicates the catalog violates its own invariants
	// (duplicate ids, undeclared categories, missing fields).
	ErrInconsistent = errors.New("inconsistent catalog")
	// ErrInvalidDocument indicates a catalog document failed schema validation or parsing.
	ErrInvalidDocument = errors.New("invalid catalog document")
)

// Store is the read-only catalog. The zero value is an empty catalog that
// declares no categories; use New to build a usable one.
type Store struct {
	projects   []domain.ProjectRecord
	byID       map[int]int
	categories []string
	declared   map[string]struct{}
}

// New validates projects against the declared categories and builds a Store.
// Categories must start with domain.CategoryAll and be unique. Every project
// needs a unique positive id, non-empty text fields, at least one color and a
// declared category.
func New(projects []domain.ProjectRecord, categories []string) (*Store, error) {
	if len(categories) == 0 || categories[0] != domain.CategoryAll {
		return nil, fmt.Errorf("%w: categories must start with %q", ErrInconsistent, domain.CategoryAll)
	}
	s := &Store{
		projects:   make([]domain.ProjectRecord, 0, len(projects)),
		byID:       make(map[int]int, len(projects)),
		categories: append([]string(nil), categories...),
		declared:   make(map[string]struct{}, len(categories)),
	}
	for _, c := range categories {
		if strings.TrimSpace(c) == "" {
			return nil, fmt.Errorf("%w: empty category label", ErrInconsistent)
		}
		if _, dup := s.declared[c]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInconsistent, c)
		}
		s.declared[c] = struct{}{}
	}

	for _, p := range projects {
		if err := s.checkProject(p); err != nil {
			return nil, err
		}
		s.byID[p.ID] = len(s.projects)
		s.projects = append(s.projects, p.Clone())
	}
	return s, nil
}

func (s *Store) checkProject(p domain.ProjectRecord) error {
	if p.ID <= 0 {
		return fmt.Errorf("%w: project id %d must be positive", ErrInconsistent, p.ID)
	}
	if _, dup := s.byID[p.ID]; dup {
		return fmt.Errorf("%w: duplicate project id %d", ErrInconsistent, p.ID)
	}
	for field, v := range map[string]string{
		"title":       p.Title,
		"category":    p.Category,
		"type":        p.Type,
		"description": p.Description,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: project %d has empty %s", ErrInconsistent, p.ID, field)
		}
	}
	if len(p.Colors) == 0 {
		return fmt.Errorf("%w: project %d has no colors", ErrInconsistent, p.ID)
	}
	// "All" is a filter, not a category a record can belong to.
	if p.Category == domain.CategoryAll {
		return fmt.Errorf("%w: project %d uses reserved category %q", ErrInconsistent, p.ID, p.Category)
	}
	if _, ok := s.declared[p.Category]; !ok {
		return fmt.Errorf("%w: project %d category %q is not declared", ErrInconsistent, p.ID, p.Category)
	}
	return nil
}

// Projects returns every record in catalog order.
func (s *Store) Projects() []domain.ProjectRecord {
	out := make([]domain.ProjectRecord, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

// Categories returns the declared labels in order, "All" first.
func (s *Store) Categories() []string {
	return append([]string(nil), s.categories...)
}

// Project looks up a record by id.
func (s *Store) Project(id int) (domain.ProjectRecord, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.ProjectRecord{}, false
	}
	return s.projects[i].Clone(), true
}

// HasCategory reports whether label is a declared category (including "All").
func (s *Store) HasCategory(label string) bool {
	_, ok := s.declared[label]
	return ok
}

// Len returns the number of projects.
func (s *Store) Len() int { return len(s.projects) }

// InCategory returns the stable subsequence of projects whose category equals
// label, or every project for "All". Unknown labels yield nil.
func (s *Store) InCategory(label string) []domain.ProjectRecord {
	if label == domain.CategoryAll {
		return s.Projects()
	}
	if !s.HasCategory(label) {
		return nil
	}
	var out []domain.ProjectRecord
	for _, p := range s.projects {
		if p.Category == label {
			out = append(out, p.Clone())
		}
	}
	return out
}
