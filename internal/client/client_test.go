package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nakram/coach-builder/internal/domain"
	"nakram/coach-builder/internal/service"
)

func TestLogin_DecodesSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Code string `json:"code"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Code != "COACH-123" {
			t.Fatalf("unexpected code %q", body.Code)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"code": "COACH-123", "coach_name": "Jane", "role": "coach",
		})
	}))
	defer server.Close()

	sess, err := New(server.URL).Login(context.Background(), "COACH-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sess.IsCoach() || sess.CoachName != "Jane" {
		t.Fatalf("unexpected session %+v", sess)
	}
}

func TestCreateWorkoutLog_SendsAccessCodeHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-access-code"); got != "COACH-123" {
			t.Fatalf("expected access code header, got %q", got)
		}
		var req service.CreateLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.ClientName != "Alex Smith" {
			t.Fatalf("unexpected body %+v", req)
		}
		json.NewEncoder(w).Encode(domain.WorkoutLog{CoachCode: req.CoachCode, ClientName: req.ClientName})
	}))
	defer server.Close()

	age := 30.0
	row, err := New(server.URL).CreateWorkoutLog(context.Background(), "COACH-123", service.CreateLogRequest{
		CoachCode:  "COACH-123",
		ClientName: "Alex Smith",
		ClientAge:  &age,
		Exercises:  domain.NewExerciseList([]domain.ExerciseDetail{{ID: "squat", Name: "Squat"}}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.ClientName != "Alex Smith" {
		t.Fatalf("unexpected row %+v", row)
	}
}

func TestErrorBodyBecomesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "coach_code must match your access code"})
	}))
	defer server.Close()

	_, err := New(server.URL).CreateWorkoutLog(context.Background(), "COACH-123", service.CreateLogRequest{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Fatalf("unexpected status %d", apiErr.StatusCode)
	}
	if apiErr.Error() != "coach_code must match your access code" {
		t.Fatalf("unexpected message %q", apiErr.Error())
	}
	if !apiErr.IsAuthError() {
		t.Fatalf("403 must classify as auth error")
	}
}

func TestErrorWithoutBodyStillErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := New(server.URL).Health(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Error() != "Request failed (502)" {
		t.Fatalf("unexpected message %q", apiErr.Error())
	}
	if apiErr.IsAuthError() {
		t.Fatalf("502 is not an auth error")
	}
}

func TestDeleteAllWorkoutLogs_ReturnsCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("unexpected method %s", r.Method)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"deleted": true, "count": 7})
	}))
	defer server.Close()

	count, err := New(server.URL).DeleteAllWorkoutLogs(context.Background(), "ADMIN-99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 7 {
		t.Fatalf("expected count 7, got %d", count)
	}
}

func TestListWorkoutLogs_DecodesRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"coach_code": "COACH-123", "client_name": "Alex", "exercises_json": []map[string]string{{"id": "squat", "name": "Squat"}}},
		})
	}))
	defer server.Close()

	rows, err := New(server.URL).ListWorkoutLogs(context.Background(), "ADMIN-99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Exercises.List[0].ID != "squat" {
		t.Fatalf("unexpected rows %+v", rows)
	}
}
