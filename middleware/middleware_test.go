// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jlorne/timegrid/models"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, map[string]string{"slug": "abc"})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["slug"] != "abc" {
		t.Errorf("body = %v", body)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusNotFound, "Poll not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}

	var body models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Error != "Not Found" || body.Message != "Poll not found" {
		t.Errorf("body = %+v", body)
	}
}

func TestParseJSONBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Alice"}`))

	var payload struct {
		Name string `json:"name"`
	}
	if err := ParseJSONBody(r, &payload); err != nil {
		t.Fatalf("ParseJSONBody failed: %v", err)
	}
	if payload.Name != "Alice" {
		t.Errorf("name = %q", payload.Name)
	}

	bad := httptest.NewRequest("POST", "/", strings.NewReader(`{broken`))
	if err := ParseJSONBody(bad, &payload); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestWithLoggingPassesThrough(t *testing.T) {
	called := false
	h := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", "/polls", nil))

	if !called {
		t.Error("wrapped handler was not called")
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want handler's status", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight should not reach the handler")
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/polls", nil)
	req.Header.Set("Origin", "https://example.edu")
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://example.edu" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"x-forwarded-for single", map[string]string{"X-Forwarded-For": "10.0.0.1"}, "1.2.3.4:5678", "10.0.0.1"},
		{"x-forwarded-for chain", map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}, "1.2.3.4:5678", "10.0.0.1"},
		{"x-real-ip", map[string]string{"X-Real-IP": "10.0.0.9"}, "1.2.3.4:5678", "10.0.0.9"},
		{"remote addr fallback", nil, "1.2.3.4:5678", "1.2.3.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := GetClientIP(r); got != tt.want {
				t.Errorf("GetClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
