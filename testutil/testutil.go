// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jlorne/timegrid/cliparse"
	"github.com/jlorne/timegrid/models"
	"github.com/jlorne/timegrid/session"
	"github.com/jlorne/timegrid/store"
)

// NewTestService wires a poll service onto a fresh in-memory store so
// handler tests run hermetically, with no database.
func NewTestService() (*session.Service, *store.Memory) {
	mem := store.NewMemory()
	return session.NewService(mem), mem
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:               3318,
		DatabaseURL:        "postgres://test",
		BaseURL:            "http://127.0.0.1:3318",
		PurgeRetentionDays: 90,
	}
}

// CreateTestPoll creates a two-day, two-slot-per-day poll and returns it
// with its delete token intact.
func CreateTestPoll(t *testing.T, svc *session.Service) *models.Poll {
	t.Helper()

	poll, err := svc.CreatePoll(context.Background(), models.CreatePollRequest{
		Title:           "Test Poll",
		Description:     "A test poll",
		CreatedBy:       "TestUser",
		Dates:           []string{"2025-03-14", "2025-03-15"},
		StartTime:       "09:00",
		EndTime:         "10:00",
		TimeSlotMinutes: 30,
	})
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return poll
}

// SubmitTestResponse records availability for one named respondent.
func SubmitTestResponse(t *testing.T, svc *session.Service, pollID, name string, availability []string) {
	t.Helper()

	_, _, err := svc.SubmitResponse(context.Background(), pollID, models.SubmitResponseRequest{
		Name:         name,
		Availability: &availability,
	})
	if err != nil {
		t.Fatalf("Failed to submit test response: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
