/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package telemetry

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type sink struct {
	mu      sync.Mutex
	events  []map[string]any
	crashes []string
	auth    []string
}

func (s *sink) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/events", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		var m map[string]any
		_ = json.Unmarshal(b, &m)
		s.mu.Lock()
		s.events = append(s.events, m)
		s.auth = append(s.auth, r.Header.Get("Authorization"))
		s.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/crash", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		s.mu.Lock()
		s.crashes = append(s.crashes, string(b))
		s.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func (s *sink) snapshot() ([]map[string]any, []string, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.events...), append([]string(nil), s.auth...), append([]string(nil), s.crashes...)
}

func TestClient_EventAndUploadCrash(t *testing.T) {
	s := &sink{}
	srv := s.server(t)

	c := New(Config{OptIn: true, EventsURL: srv.URL + "/events", CrashURL: srv.URL + "/crash", Token: "secret", Timeout: 2 * time.Second})
	defer c.Close()
	if !c.Enabled() {
		t.Fatalf("expected client to be enabled")
	}

	c.Event("modal_open", map[string]any{"project_id": 4, "replaced": false})
	c.Flush(context.Background())

	events, auth, _ := s.snapshot()
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	m := events[0]
	if m["name"] != "modal_open" || m["project_id"] != float64(4) || m["replaced"] != false {
		t.Fatalf("event payload mismatch: %v", m)
	}
	if m["app"] != "portfolioshowcase" || m["session"] != c.Session() {
		t.Fatalf("static fields mismatch: %v", m)
	}
	if _, ok := m["ts"].(string); !ok {
		t.Fatalf("missing ts field")
	}
	if auth[0] != "Bearer secret" {
		t.Fatalf("authorization header = %q", auth[0])
	}

	c.UploadCrash([]byte("STACKTRACE"))
	if _, _, crashes := s.snapshot(); len(crashes) != 1 || crashes[0] != "STACKTRACE" {
		t.Fatalf("expected crash upload, got %v", crashes)
	}
}

func TestClient_DisabledAndEmptyEventName(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(Config{OptIn: false, EventsURL: srv.URL, CrashURL: srv.URL, Timeout: time.Second})
	defer c.Close()
	if c.Enabled() {
		t.Fatalf("expected disabled client")
	}
	c.Event("filter_set", nil)
	c.UploadCrash([]byte("ignored"))

	c2 := New(Config{OptIn: true, EventsURL: srv.URL, Timeout: time.Second})
	defer c2.Close()
	c2.Event("", nil)
	c2.Flush(nil)

	time.Sleep(50 * time.Millisecond)
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatalf("expected no requests, got %d", hits)
	}
}

func TestClient_EventAfterCloseIsDropped(t *testing.T) {
	s := &sink{}
	srv := s.server(t)

	c := New(Config{OptIn: true, EventsURL: srv.URL + "/events", Timeout: time.Second})
	c.Close()
	c.Event("filter_set", map[string]any{"label": "All"})

	if n := c.pending.Load(); n != 0 {
		t.Fatalf("pending = %d after close, want 0", n)
	}
	if len(c.q) != 0 {
		t.Fatalf("queue holds %d events after close", len(c.q))
	}
	start := time.Now()
	c.Flush(context.Background())
	if d := time.Since(start); d > 500*time.Millisecond {
		t.Fatalf("Flush after close took %v", d)
	}
	if events, _, _ := s.snapshot(); len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}

func TestClient_SendErrorsAreSwallowed(t *testing.T) {
	c := New(Config{
		OptIn:        true,
		EventsURL:    "http://127.0.0.1:1/events",
		CrashURL:     "http://127.0.0.1:1/crash",
		Timeout:      50 * time.Millisecond,
		DebugLogging: true,
	})
	defer c.Close()

	c.Event("filter_set", map[string]any{"category": "All"})
	c.Flush(context.Background())
	c.UploadCrash([]byte("oops"))
}

func TestNilClientIsInert(t *testing.T) {
	var c *Client
	if c.Enabled() || c.Session() != "" {
		t.Fatalf("nil client should be disabled")
	}
	c.Event("filter_set", nil)
	c.Flush(context.Background())
	c.UploadCrash(nil)
	c.Close()
}

func TestDefaultClient(t *testing.T) {
	if Default() == nil {
		t.Fatalf("Default returned nil")
	}
	if Default().Enabled() {
		t.Fatalf("implicit default client must be disabled")
	}
	c := NewDefault(Config{OptIn: true, EventsURL: "http://127.0.0.1:1/events"})
	t.Cleanup(func() { NewDefault(Config{}) })
	if Default() != c || !Default().Enabled() {
		t.Fatalf("NewDefault did not install the client")
	}
}
