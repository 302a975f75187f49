/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package crash

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"portfolioshowcase/internal/catalog"
	"portfolioshowcase/internal/view"
)

func useReportDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := ReportDir
	ReportDir = func() string { return dir }
	t.Cleanup(func() { ReportDir = old })
	return dir
}

func TestWriteReportIncludesState(t *testing.T) {
	dir := useReportDir(t)
	path, err := writeReport(`filter="Event Design" modal=open(2)`, "boom", []byte("stacktrace"))
	if err != nil {
		t.Fatalf("writeReport error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("report written to %s, want %s", path, dir)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	s := string(b)
	for _, want := range []string{"Portfolio Showcase Crash Report", `View: filter="Event Design" modal=open(2)`, "Panic: boom", "stacktrace"} {
		if !strings.Contains(s, want) {
			t.Fatalf("report missing %q:\n%s", want, s)
		}
	}
}

func TestWriteReportWithoutState(t *testing.T) {
	useReportDir(t)
	path, err := writeReport("", "boom", nil)
	if err != nil {
		t.Fatalf("writeReport error: %v", err)
	}
	b, _ := os.ReadFile(path)
	if bytes.Contains(b, []byte("View:")) {
		t.Fatalf("unexpected view line: %s", b)
	}
}

func TestRecover_ControllerContractViolation(t *testing.T) {
	dir := useReportDir(t)

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w
	defer func() {
		_ = w.Close()
		os.Stderr = oldStderr
		_, _ = io.Copy(io.Discard, r)
	}()

	code := 0
	oldExit := exitFn
	exitFn = func(c int) { code = c }
	defer func() { exitFn = oldExit }()

	ctrl := view.NewController(catalog.Default(), nil)
	func() {
		defer Recover(ctrl)
		ctrl.MustDispatch(view.SetFilter{Label: "Event Design"})
		ctrl.MustDispatch(view.OpenModal{ID: 99})
	}()

	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	files, _ := os.ReadDir(dir)
	var found string
	for _, f := range files {
		if strings.HasPrefix(f.Name(), "crash-") && strings.HasSuffix(f.Name(), ".log") {
			found = filepath.Join(dir, f.Name())
		}
	}
	if found == "" {
		t.Fatalf("expected crash report in %s", dir)
	}
	b, _ := os.ReadFile(found)
	if !bytes.Contains(b, []byte(`filter="Event Design"`)) || !bytes.Contains(b, []byte("unknown project")) {
		t.Fatalf("report lacks view state or panic: %s", b)
	}
}

func TestRecover_DescribeFuncBeforeControllerExists(t *testing.T) {
	dir := useReportDir(t)

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w
	defer func() {
		_ = w.Close()
		os.Stderr = oldStderr
		_, _ = io.Copy(io.Discard, r)
	}()

	code := 0
	oldExit := exitFn
	exitFn = func(c int) { code = c }
	defer func() { exitFn = oldExit }()

	var ctrl *view.Controller
	func() {
		defer Recover(DescribeFunc(func() string {
			if ctrl == nil {
				return "starting"
			}
			return ctrl.Describe()
		}))
		panic("tab setup failed")
	}()

	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	files, _ := os.ReadDir(dir)
	if len(files) != 1 {
		t.Fatalf("expected one crash report in %s, got %d", dir, len(files))
	}
	b, _ := os.ReadFile(filepath.Join(dir, files[0].Name()))
	if !bytes.Contains(b, []byte("View: starting")) || !bytes.Contains(b, []byte("tab setup failed")) {
		t.Fatalf("report lacks startup state or panic: %s", b)
	}
}

func TestRecoverWithoutPanicIsNoop(t *testing.T) {
	called := false
	oldExit := exitFn
	exitFn = func(int) { called = true }
	defer func() { exitFn = oldExit }()

	func() {
		defer Recover(nil)
	}()
	if called {
		t.Fatalf("exit called without panic")
	}
}
