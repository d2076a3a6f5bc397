// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jlorne/timegrid/models"
	"github.com/jlorne/timegrid/testutil"
)

func TestCreatePoll(t *testing.T) {
	svc, _ := testutil.NewTestService()
	handler := NewPollHandler(svc)

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{
			name: "valid poll",
			body: models.CreatePollRequest{
				Title:     "Game Night",
				CreatedBy: "Alice",
				Dates:     []string{"2025-03-14"},
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "missing title",
			body: models.CreatePollRequest{
				CreatedBy: "Alice",
				Dates:     []string{"2025-03-14"},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing creator",
			body: models.CreatePollRequest{
				Title: "Game Night",
				Dates: []string{"2025-03-14"},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing dates",
			body: models.CreatePollRequest{
				Title:     "Game Night",
				CreatedBy: "Alice",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed JSON",
			body:       nil, // sent as a raw broken body below
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body == nil {
				req = testutil.MakeRequest("POST", "/polls", nil)
				req.Body = http.NoBody
			} else {
				req = testutil.MakeRequest("POST", "/polls", tt.body)
			}

			w := httptest.NewRecorder()
			handler.CreatePoll(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)

			if tt.wantStatus == http.StatusCreated {
				var resp models.CreatePollResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.ID == "" || resp.Slug == "" {
					t.Errorf("response missing id/slug: %+v", resp)
				}
				if len(resp.DeleteToken) != 32 {
					t.Errorf("delete token = %q, want 32 hex chars", resp.DeleteToken)
				}
				if resp.Visibility != models.VisibilityPublic {
					t.Errorf("visibility = %q", resp.Visibility)
				}
			}
		})
	}
}

func TestDeletePoll(t *testing.T) {
	svc, _ := testutil.NewTestService()
	handler := NewPollHandler(svc)

	poll := testutil.CreateTestPoll(t, svc)

	// Wrong token is rejected and the poll survives.
	req := testutil.MakeRequest("POST", "/polls/"+poll.ID+"/delete",
		models.DeletePollRequest{DeleteToken: "not-the-token"})
	req.SetPathValue("id", poll.ID)
	w := httptest.NewRecorder()
	handler.DeletePoll(w, req)
	testutil.AssertStatus(t, w, http.StatusForbidden)

	// Correct token deletes.
	req = testutil.MakeRequest("POST", "/polls/"+poll.ID+"/delete",
		models.DeletePollRequest{DeleteToken: poll.DeleteToken})
	req.SetPathValue("id", poll.ID)
	w = httptest.NewRecorder()
	handler.DeletePoll(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Second delete: the poll is already gone.
	req = testutil.MakeRequest("POST", "/polls/"+poll.ID+"/delete",
		models.DeletePollRequest{DeleteToken: poll.DeleteToken})
	req.SetPathValue("id", poll.ID)
	w = httptest.NewRecorder()
	handler.DeletePoll(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
