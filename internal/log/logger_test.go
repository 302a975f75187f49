/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package log

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestInitWritesJSONFile checks that the rotated file handler receives JSON records
// carrying the static and contextual attributes.
func TestInitWritesJSONFile(t *testing.T) {
	fpath := filepath.Join(os.TempDir(), fmt.Sprintf("pfs_log_%d.json", time.Now().UnixNano()))

	Init(Options{Level: "debug", Format: "json", File: fpath, Console: io.Discard})

	l := WithOperation(WithComponent("catalog"), "load_file")
	l.Info("catalog loaded", slog.Int("projects", 4))

	// Windows keeps the handle busy for a moment.
	time.Sleep(50 * time.Millisecond)

	b, err := os.ReadFile(fpath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	scanner := bufio.NewScanner(bytes.NewReader(b))
	var last string
	for scanner.Scan() {
		if s := strings.TrimSpace(scanner.Text()); s != "" {
			last = s
		}
	}
	if last == "" {
		t.Fatalf("no log lines found")
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(last), &m); err != nil {
		t.Fatalf("unmarshal json log: %v", err)
	}
	if m["app"] != "portfolioshowcase" {
		t.Fatalf("missing app attr: %v", m["app"])
	}
	if _, ok := m["ver"].(string); !ok {
		t.Fatalf("missing ver attr")
	}
	if m["component"] != "catalog" || m["op"] != "load_file" {
		t.Fatalf("context attrs mismatch: %v %v", m["component"], m["op"])
	}
	if m["projects"] != float64(4) {
		t.Fatalf("projects attr mismatch: %v", m["projects"])
	}
}

func TestInitConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "info", Console: &buf})
	L().Debug("hidden")
	L().Info("shown", slog.String("category", "Event Design"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record leaked at info level: %q", out)
	}
	if !strings.Contains(out, "INF shown") || !strings.Contains(out, `category="Event Design"`) {
		t.Fatalf("unexpected console output: %q", out)
	}
	if !strings.Contains(out, "app=portfolioshowcase") {
		t.Fatalf("missing app attr: %q", out)
	}
}

func TestInitDiscardWithoutFile(t *testing.T) {
	Init(Options{Console: io.Discard})
	if L().Enabled(nil, slog.LevelError) {
		t.Fatalf("logger without sinks should be disabled")
	}
}
