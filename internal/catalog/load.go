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
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"portfolioshowcase/internal/domain"
	applog "portfolioshowcase/internal/log"
)

//go:embed portfolio.json
var defaultDocument []byte

//go:embed portfolio.schema.json
var schemaDocument []byte

// Schema returns the JSON Schema every catalog document must satisfy.
func Schema() []byte { return append([]byte(nil), schemaDocument...) }

// Default builds the Store from the embedded showcase catalog.
// The embedded document is part of the binary, so failure here is a build defect.
func Default() *Store {
	s, err := Load(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return s
}

// LoadFile reads a catalog document from path. An empty path selects the
// embedded catalog.
func LoadFile(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	l := applog.WithOperation(applog.WithComponent("catalog"), "load_file").With(slog.String("path", path))
	data, err := os.ReadFile(path)
	if err != nil {
		l.Error("read catalog failed", slog.Any("err", err))
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	s, err := Load(data)
	if err != nil {
		l.Error("load catalog failed", slog.Any("err", err))
		return nil, err
	}
	l.Info("catalog loaded", slog.Int("projects", s.Len()), slog.Int("categories", len(s.categories)))
	return s, nil
}

// Load validates data against the catalog schema, decodes it and builds the Store.
// Only the documented field names are recognized; unknown fields are rejected.
func Load(data []byte) (*Store, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaDocument),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
	}

	var doc domain.Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return New(doc.Projects, doc.Categories)
}
