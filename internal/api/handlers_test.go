package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nakram/coach-builder/internal/domain"
	"nakram/coach-builder/internal/repository"
	"nakram/coach-builder/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testAdminCode = "ADMIN-99"

// In-memory repositories backing a full router for handler tests.

type memAccessCodeRepo struct {
	rows map[string]*domain.AccessCode
}

func (m *memAccessCodeRepo) GetByCode(ctx context.Context, code string) (*domain.AccessCode, error) {
	if ac, ok := m.rows[code]; ok {
		cp := *ac
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memAccessCodeRepo) GetCoachByCode(ctx context.Context, code string) (*domain.AccessCode, error) {
	if ac, ok := m.rows[code]; ok && ac.Role == domain.RoleCoach {
		cp := *ac
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memAccessCodeRepo) Upsert(ctx context.Context, ac *domain.AccessCode) error {
	cp := *ac
	m.rows[ac.Code] = &cp
	return nil
}

type memWorkoutLogRepo struct {
	rows []domain.WorkoutLog
}

func (m *memWorkoutLogRepo) Insert(ctx context.Context, row *domain.WorkoutLog) (primitive.ObjectID, error) {
	row.ID = primitive.NewObjectID()
	row.CreatedAt = time.Now().UTC()
	m.rows = append(m.rows, *row)
	return row.ID, nil
}

func (m *memWorkoutLogRepo) ListAll(ctx context.Context) ([]domain.WorkoutLog, error) {
	out := make([]domain.WorkoutLog, 0, len(m.rows))
	for i := len(m.rows) - 1; i >= 0; i-- {
		out = append(out, m.rows[i])
	}
	return out, nil
}

func (m *memWorkoutLogRepo) ListIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(m.rows))
	for _, r := range m.rows {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

func (m *memWorkoutLogRepo) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	keep := m.rows[:0]
	var deleted int64
	for _, row := range m.rows {
		found := false
		for _, id := range ids {
			if row.ID == id {
				found = true
				break
			}
		}
		if found {
			deleted++
		} else {
			keep = append(keep, row)
		}
	}
	m.rows = keep
	return deleted, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	accessRepo := &memAccessCodeRepo{rows: map[string]*domain.AccessCode{
		"COACH-123": {Code: "COACH-123", Role: domain.RoleCoach, CoachName: "Jane", CommissionPerWorkout: 3},
	}}
	logRepo := &memWorkoutLogRepo{}

	authService := service.NewAuthService(accessRepo, testAdminCode)
	logService := service.NewLogService(logRepo, accessRepo, 2)

	router := gin.New()
	SetupRoutes(router, authService, logService)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, accessCode string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if accessCode != "" {
		req.Header.Set(AccessCodeHeader, accessCode)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return body.Error
}

func validLogBody() map[string]interface{} {
	return map[string]interface{}{
		"coach_code":       "COACH-123",
		"client_name":      "Alex Smith",
		"client_gender":    "Male",
		"client_age":       30,
		"client_height_cm": 180,
		"client_weight_kg": 80,
		"course_name":      "Strength Block",
		"exercises_json": []map[string]interface{}{
			{"id": "squat", "name": "Squat", "sets": 3, "reps": 10},
		},
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter()
	w := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestLogin_Coach(t *testing.T) {
	router := newTestRouter()
	w := doJSON(t, router, http.MethodPost, "/api/login", "", map[string]string{"code": "COACH-123"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Role != domain.RoleCoach || resp.CoachName != "Jane" {
		t.Fatalf("unexpected login response: %+v", resp)
	}
}

func TestLogin_Admin(t *testing.T) {
	router := newTestRouter()
	w := doJSON(t, router, http.MethodPost, "/api/login", "", map[string]string{"code": testAdminCode})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Role != domain.RoleAdmin || resp.CoachName != "" {
		t.Fatalf("unexpected login response: %+v", resp)
	}
}

func TestLogin_Failures(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/login", "", map[string]string{"code": "NOPE"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if errorMessage(t, w) != "Invalid access code" {
		t.Fatalf("unexpected message %q", errorMessage(t, w))
	}

	// An empty body is treated the same as a missing code.
	w = doJSON(t, router, http.MethodPost, "/api/login", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing code, got %d", w.Code)
	}
	if errorMessage(t, w) != "Code is required" {
		t.Fatalf("unexpected message %q", errorMessage(t, w))
	}
}

func TestCreateWorkoutLog_Success(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/workout-logs", "COACH-123", validLogBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var row domain.WorkoutLog
	if err := json.Unmarshal(w.Body.Bytes(), &row); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if row.ID.IsZero() {
		t.Fatalf("expected assigned id")
	}
	if row.CommissionAmount != 3 {
		t.Fatalf("expected coach rate 3 fixed on row, got %v", row.CommissionAmount)
	}
	if len(row.Exercises.List) != 1 || row.Exercises.List[0].ID != "squat" {
		t.Fatalf("exercise payload did not survive: %+v", row.Exercises)
	}
}

func TestCreateWorkoutLog_AuthFailures(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/workout-logs", "", validLogBody())
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for missing header, got %d", w.Code)
	}
	if errorMessage(t, w) != "Missing access code" {
		t.Fatalf("unexpected message %q", errorMessage(t, w))
	}

	w = doJSON(t, router, http.MethodPost, "/api/workout-logs", "WRONG", validLogBody())
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown code, got %d", w.Code)
	}
	if errorMessage(t, w) != "Invalid coach code" {
		t.Fatalf("unexpected message %q", errorMessage(t, w))
	}

	// The admin sentinel is not a coach row; it cannot write logs.
	w = doJSON(t, router, http.MethodPost, "/api/workout-logs", testAdminCode, validLogBody())
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for admin sentinel on coach route, got %d", w.Code)
	}
}

func TestCreateWorkoutLog_OwnershipMismatch(t *testing.T) {
	router := newTestRouter()

	body := validLogBody()
	body["coach_code"] = "COACH-999"

	w := doJSON(t, router, http.MethodPost, "/api/workout-logs", "COACH-123", body)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if errorMessage(t, w) != "coach_code must match your access code" {
		t.Fatalf("unexpected message %q", errorMessage(t, w))
	}
}

func TestCreateWorkoutLog_ValidationMessage(t *testing.T) {
	router := newTestRouter()

	body := validLogBody()
	body["client_name"] = ""
	body["client_gender"] = "" // later failure must not mask the first

	w := doJSON(t, router, http.MethodPost, "/api/workout-logs", "COACH-123", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if errorMessage(t, w) != "client_name is required" {
		t.Fatalf("unexpected message %q", errorMessage(t, w))
	}
}

func TestCreateWorkoutLog_ByDayPayloadAccepted(t *testing.T) {
	router := newTestRouter()

	body := validLogBody()
	body["exercises_json"] = map[string]interface{}{
		"Monday": []map[string]interface{}{{"id": "squat", "name": "Squat"}},
	}

	w := doJSON(t, router, http.MethodPost, "/api/workout-logs", "COACH-123", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for day-map payload, got %d: %s", w.Code, w.Body.String())
	}

	var row domain.WorkoutLog
	if err := json.Unmarshal(w.Body.Bytes(), &row); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if row.Exercises.ByDay == nil || row.Exercises.ByDay["Monday"][0].ID != "squat" {
		t.Fatalf("day-map payload did not survive: %+v", row.Exercises)
	}
}

func TestListWorkoutLogs_AdminOnly(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/workout-logs", "COACH-123", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for coach on admin route, got %d", w.Code)
	}
	if errorMessage(t, w) != "Invalid admin code" {
		t.Fatalf("unexpected message %q", errorMessage(t, w))
	}

	w = doJSON(t, router, http.MethodGet, "/api/workout-logs", testAdminCode, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	// Empty table serializes as [], not null.
	if w.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %s", w.Body.String())
	}
}

func TestListWorkoutLogs_NewestFirst(t *testing.T) {
	router := newTestRouter()

	first := validLogBody()
	first["client_name"] = "First Client"
	second := validLogBody()
	second["client_name"] = "Second Client"

	for _, body := range []map[string]interface{}{first, second} {
		if w := doJSON(t, router, http.MethodPost, "/api/workout-logs", "COACH-123", body); w.Code != http.StatusOK {
			t.Fatalf("seed failed: %d %s", w.Code, w.Body.String())
		}
	}

	w := doJSON(t, router, http.MethodGet, "/api/workout-logs", testAdminCode, nil)
	var rows []domain.WorkoutLog
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 2 || rows[0].ClientName != "Second Client" {
		t.Fatalf("expected newest first, got %+v", rows)
	}
}

func TestDeleteWorkoutLogs_Idempotent(t *testing.T) {
	router := newTestRouter()

	if w := doJSON(t, router, http.MethodPost, "/api/workout-logs", "COACH-123", validLogBody()); w.Code != http.StatusOK {
		t.Fatalf("seed failed: %d", w.Code)
	}

	w := doJSON(t, router, http.MethodDelete, "/api/workout-logs", testAdminCode, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp DeleteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Deleted || resp.Count != 1 {
		t.Fatalf("expected count 1, got %+v", resp)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/workout-logs", testAdminCode, nil)
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 0 {
		t.Fatalf("expected count 0 on second reset, got %+v", resp)
	}
}
