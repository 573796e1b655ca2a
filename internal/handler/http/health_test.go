package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHealthHandler_NoDatabase(t *testing.T) {
	handler := &HealthHandler{DB: nil, Version: "test"}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var body HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "healthy" {
		t.Errorf("status = %q, expected healthy", body.Status)
	}
	if body.Version != "test" {
		t.Errorf("version = %q, expected test", body.Version)
	}
	db := body.Checks["database"]
	if db.Status != "healthy" || db.Message != "not configured" {
		t.Errorf("database check = %+v, expected healthy/not configured", db)
	}
}

func TestHealthHandler_DatabaseReachable(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()
	mock.ExpectPing()

	handler := &HealthHandler{DB: db, Version: "test"}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	db2 := body.Checks["database"]
	if db2.Status != "healthy" || db2.Message != "" {
		t.Errorf("database check = %+v, expected healthy with no message", db2)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestHealthHandler_DatabaseUnreachable(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = db.Close() }()
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	handler := &HealthHandler{DB: db, Version: "test"}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	// A degraded database never fails the health endpoint.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var body HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "healthy" {
		t.Errorf("overall status = %q, expected healthy", body.Status)
	}
	if db2 := body.Checks["database"]; db2.Status != "degraded" {
		t.Errorf("database check = %+v, expected degraded", db2)
	}
}
