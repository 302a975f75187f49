/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"portfolioshowcase/internal/domain"
)

func project(id int, category string) domain.ProjectRecord {
	return domain.ProjectRecord{
		ID:          id,
		Title:       "Project",
		Category:    category,
		Type:        "Poster",
		Description: "A poster.",
		Colors:      []string{"#000000"},
	}
}

func TestDefaultCatalog(t *testing.T) {
	s := Default()
	require.Equal(t, 4, s.Len())
	require.Equal(t,
		[]string{"All", "Digital Marketing", "Event Design", "Service Marketing", "Food & Beverage"},
		s.Categories())

	ids := []int{}
	for _, p := range s.Projects() {
		ids = append(ids, p.ID)
	}
	require.Equal(t, []int{1, 2, 3, 4}, ids)

	p, ok := s.Project(4)
	require.True(t, ok)
	require.Equal(t, "Gourmet Burger Food Advertisement", p.Title)
	require.Equal(t, []string{"Bold", "Appetizing", "Commercial", "Eye-catching", "Direct"}, p.StyleKeywords)
}

func TestNew_RejectsUndeclaredCategory(t *testing.T) {
	_, err := New([]domain.ProjectRecord{project(1, "Print")}, []string{"All", "Web"})
	require.ErrorIs(t, err, ErrInconsistent)
}

func TestNew_RejectsDuplicateID(t *testing.T) {
	_, err := New([]domain.ProjectRecord{project(1, "Web"), project(1, "Web")}, []string{"All", "Web"})
	require.ErrorIs(t, err, ErrInconsistent)
}

func TestNew_RequiresAllFirst(t *testing.T) {
	_, err := New(nil, []string{"Web", "All"})
	require.ErrorIs(t, err, ErrInconsistent)

	_, err = New(nil, nil)
	require.ErrorIs(t, err, ErrInconsistent)
}

func TestNew_RejectsMissingFields(t *testing.T) {
	p := project(1, "Web")
	p.Colors = nil
	_, err := New([]domain.ProjectRecord{p}, []string{"All", "Web"})
	require.ErrorIs(t, err, ErrInconsistent)

	p = project(2, "Web")
	p.Description = "  "
	_, err = New([]domain.ProjectRecord{p}, []string{"All", "Web"})
	require.ErrorIs(t, err, ErrInconsistent)

	_, err = New([]domain.ProjectRecord{project(0, "Web")}, []string{"All", "Web"})
	require.ErrorIs(t, err, ErrInconsistent)
}

func TestNew_RejectsReservedCategoryOnRecord(t *testing.T) {
	_, err := New([]domain.ProjectRecord{project(1, "All")}, []string{"All"})
	require.ErrorIs(t, err, ErrInconsistent)
}

func TestStore_ReadsDoNotExposeInternals(t *testing.T) {
	s, err := New([]domain.ProjectRecord{project(1, "Web")}, []string{"All", "Web"})
	require.NoError(t, err)

	ps := s.Projects()
	ps[0].Colors[0] = "#FFFFFF"
	cs := s.Categories()
	cs[1] = "Print"

	p, _ := s.Project(1)
	require.Equal(t, "#000000", p.Colors[0])
	require.True(t, s.HasCategory("Web"))
	require.False(t, s.HasCategory("Print"))
}

func TestStore_InCategoryKeepsOrder(t *testing.T) {
	s, err := New([]domain.ProjectRecord{
		project(5, "Web"), project(2, "Print"), project(9, "Web"),
	}, []string{"All", "Web", "Print", "Motion"})
	require.NoError(t, err)

	var ids []int
	for _, p := range s.InCategory("Web") {
		ids = append(ids, p.ID)
	}
	require.Equal(t, []int{5, 9}, ids)
	require.Len(t, s.InCategory(domain.CategoryAll), 3)
	require.Empty(t, s.InCategory("Motion"))
	require.Nil(t, s.InCategory("Sculpture"))
}

func TestLoad_SchemaViolations(t *testing.T) {
	cases := map[string]string{
		"unknown top-level field": `{"portfolio_projects": [], "categories": ["All"], "extra": 1}`,
		"missing categories":      `{"portfolio_projects": []}`,
		"empty colors": `{"categories": ["All", "Web"], "portfolio_projects": [{"id": 1, "title": "t",
			"category": "Web", "type": "x", "description": "d", "colors": [], "tools": [], "dimensions": "",
			"target_audience": "", "key_features": [], "style_keywords": []}]}`,
		"unknown project field": `{"categories": ["All", "Web"], "portfolio_projects": [{"id": 1, "title": "t",
			"category": "Web", "type": "x", "description": "d", "colors": ["#fff"], "tools": [], "dimensions": "",
			"target_audience": "", "key_features": [], "style_keywords": [], "thumbnail": "a.png"}]}`,
		"not json": `portfolio`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(doc))
			require.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

func TestLoad_ConsistencyCheckedAfterSchema(t *testing.T) {
	doc := `{"categories": ["All", "Web"], "portfolio_projects": [{"id": 1, "title": "t",
		"category": "Print", "type": "x", "description": "d", "colors": ["#fff"], "tools": [], "dimensions": "",
		"target_audience": "", "key_features": [], "style_keywords": []}]}`
	_, err := Load([]byte(doc))
	require.ErrorIs(t, err, ErrInconsistent)
}

func TestLoadFile(t *testing.T) {
	s, err := LoadFile("")
	require.NoError(t, err)
	require.Equal(t, 4, s.Len())

	path := filepath.Join(t.TempDir(), "catalog.json")
	doc := `{"categories": ["All", "Web"], "portfolio_projects": [{"id": 7, "title": "Landing page",
		"category": "Web", "type": "Site", "description": "d", "colors": ["#112233"], "tools": ["Figma"],
		"dimensions": "1440 x 900px", "target_audience": "Everyone", "key_features": [], "style_keywords": []}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err = LoadFile(path)
	require.NoError(t, err)
	p, ok := s.Project(7)
	require.True(t, ok)
	require.Equal(t, "Landing page", p.Title)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestSchemaIsACopy(t *testing.T) {
	a := Schema()
	a[0] = 'x'
	require.Equal(t, byte('{'), Schema()[0])
}
