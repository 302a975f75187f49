/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	applog "portfolioshowcase/internal/log"
)

// Format names an export target.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatPNG  Format = "png"
	FormatHTML Format = "html"
)

// Formats lists every supported format in the order Batch writes them.
var Formats = []Format{FormatPDF, FormatPNG, FormatHTML}

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want pdf, png or html)", s)
}

// Write exports snap in format f to path.
func Write(f Format, path string, snap Snapshot) error {
	switch f {
	case FormatPDF:
		return PDFFile(path, snap, PDFOptions{})
	case FormatPNG:
		return PNGFile(path, snap, PNGOptions{})
	case FormatHTML:
		return HTMLFile(path, snap)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// Batch writes snap into dir once per format as portfolio.<format>.
// An empty formats list means every format. It returns the written paths.
func Batch(snap Snapshot, dir string, formats []Format) ([]string, error) {
	if len(formats) == 0 {
		formats = Formats
	}
	l := applog.WithOperation(applog.WithComponent("export"), "batch")
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := filepath.Join(dir, "portfolio."+string(f))
		if err := Write(f, path, snap); err != nil {
			l.Error("export failed", slog.String("format", string(f)), slog.Any("err", err))
			return paths, err
		}
		l.Info("exported", slog.String("format", string(f)), slog.String("path", path), slog.Int("cards", len(snap.Cards)))
		paths = append(paths, path)
	}
	return paths, nil
}
