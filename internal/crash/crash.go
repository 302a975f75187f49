/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package crash turns a fatal panic into a logged error, a report file and an
// optional crash upload before the process exits with code 2.
package crash

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	applog "portfolioshowcase/internal/log"
	"portfolioshowcase/internal/telemetry"
	"portfolioshowcase/internal/version"
)

// StateDescriber reports the state a crash report should record,
// typically the showcase view controller.
type StateDescriber interface {
	Describe() string
}

// DescribeFunc adapts a function to StateDescriber. It lets a caller register
// Recover before the object it describes exists.
type DescribeFunc func() string

func (f DescribeFunc) Describe() string { return f() }

// exitFn is replaced in tests so Recover does not end the test process.
var exitFn = os.Exit

// ReportDir returns the directory crash reports are written to: a
// portfolioshowcase folder in the user cache dir, or the temp dir.
var ReportDir = func() string {
	if base, err := os.UserCacheDir(); err == nil && base != "" {
		dir := filepath.Join(base, "portfolioshowcase", "crash")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			return dir
		}
	}
	return os.TempDir()
}

// Recover captures a panic, logs it with the stack trace, writes a report
// containing d's state and exits. d may be nil.
//
// Usage: defer crash.Recover(ctrl)
func Recover(d StateDescriber) {
	r := recover()
	if r == nil {
		return
	}
	l := applog.WithComponent("crash")
	stack := debug.Stack()
	if f, ok := r.(interface{ Stack() []byte }); ok {
		stack = f.Stack()
	}
	l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

	reportPath, err := writeReport(describe(d), r, stack)
	if err != nil {
		l.Error("write crash report failed", slog.Any("err", err), slog.String("path", reportPath))
	}

	if _, err := fmt.Fprintf(os.Stderr, "A fatal error occurred. A crash report was saved to: %s\n", reportPath); err != nil {
		l.Error("failed to write crash message to stderr", slog.Any("err", err))
	}
	if _, err := fmt.Fprintf(os.Stderr, "Version: %s\nOS/Arch: %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH); err != nil {
		l.Error("failed to write version info to stderr", slog.Any("err", err))
	}
	exitFn(2)
}

// describe guards against typed-nil describers.
func describe(d StateDescriber) (s string) {
	if d == nil {
		return ""
	}
	defer func() {
		if recover() != nil {
			s = "<unavailable>"
		}
	}()
	return d.Describe()
}

func writeReport(state string, panicVal any, stack []byte) (string, error) {
	stamp := time.Now().Format("20060102-150405")
	path := filepath.Join(ReportDir(), fmt.Sprintf("crash-%s.log", stamp))

	var buf bytes.Buffer
	_, _ = fmt.Fprintf(&buf, "Portfolio Showcase Crash Report\n")
	_, _ = fmt.Fprintf(&buf, "Timestamp: %s\n", time.Now().Format(time.RFC3339))
	_, _ = fmt.Fprintf(&buf, "Version: %s\n", version.String())
	_, _ = fmt.Fprintf(&buf, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	if state != "" {
		_, _ = fmt.Fprintf(&buf, "View: %s\n", state)
	}
	_, _ = fmt.Fprintf(&buf, "\nPanic: %v\n\n", panicVal)
	_, _ = fmt.Fprintf(&buf, "Stack:\n%s\n", string(stack))

	// the upload goes out even when the local write fails
	defer telemetry.UploadCrash(buf.Bytes())

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return path, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			applog.WithComponent("crash").Error("failed to close crash report file", slog.Any("err", err), slog.String("path", path))
		}
	}()
	if _, err := f.Write(buf.Bytes()); err != nil {
		return path, err
	}
	_ = f.Sync()
	return path, nil
}
