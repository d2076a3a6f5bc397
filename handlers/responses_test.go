// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jlorne/timegrid/models"
	"github.com/jlorne/timegrid/testutil"
)

func submitBody(name string, availability []string) map[string]interface{} {
	return map[string]interface{}{
		"name":         name,
		"availability": availability,
	}
}

func TestSubmitResponse(t *testing.T) {
	svc, _ := testutil.NewTestService()
	handler := NewResponseHandler(svc)

	poll := testutil.CreateTestPoll(t, svc)

	req := testutil.MakeRequest("POST", "/polls/"+poll.ID+"/responses",
		submitBody("Alice", []string{"2025-03-14_09:00"}))
	req.SetPathValue("id", poll.ID)
	w := httptest.NewRecorder()
	handler.SubmitResponse(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.SubmitResponseResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Updated || resp.ResponseCount != 1 {
		t.Errorf("first submission: %+v, want updated=false count=1", resp)
	}

	// Resubmission under the same name updates in place.
	req = testutil.MakeRequest("POST", "/polls/"+poll.ID+"/responses",
		submitBody("alice", []string{"2025-03-14_09:30"}))
	req.SetPathValue("id", poll.ID)
	w = httptest.NewRecorder()
	handler.SubmitResponse(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &resp)
	if !resp.Updated || resp.ResponseCount != 1 {
		t.Errorf("resubmission: %+v, want updated=true count=1", resp)
	}
}

func TestSubmitResponseValidation(t *testing.T) {
	svc, _ := testutil.NewTestService()
	handler := NewResponseHandler(svc)

	poll := testutil.CreateTestPoll(t, svc)

	tests := []struct {
		name string
		body string
	}{
		{"blank name", `{"name":"  ","availability":[]}`},
		{"missing availability", `{"name":"Alice"}`},
		{"null availability", `{"name":"Alice","availability":null}`},
		{"availability not an array", `{"name":"Alice","availability":"everything"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/polls/"+poll.ID+"/responses", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("id", poll.ID)

			w := httptest.NewRecorder()
			handler.SubmitResponse(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestSubmitResponseMissingPoll(t *testing.T) {
	svc, _ := testutil.NewTestService()
	handler := NewResponseHandler(svc)

	req := testutil.MakeRequest("POST", "/polls/nope/responses", submitBody("Alice", []string{}))
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	handler.SubmitResponse(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestSubmitResponseExpiredPoll(t *testing.T) {
	svc, mem := testutil.NewTestService()
	handler := NewResponseHandler(svc)

	poll := testutil.CreateTestPoll(t, svc)

	// Expire the poll behind the service's back.
	stored, _ := mem.FetchByID(t.Context(), poll.ID)
	past := time.Now().Add(-time.Hour)
	stored.ExpiresAt = &past
	if err := mem.Patch(t.Context(), poll.ID, stored, stored.Rev); err != nil {
		t.Fatalf("failed to expire poll: %v", err)
	}

	req := testutil.MakeRequest("POST", "/polls/"+poll.ID+"/responses", submitBody("Alice", []string{}))
	req.SetPathValue("id", poll.ID)
	w := httptest.NewRecorder()
	handler.SubmitResponse(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
}
