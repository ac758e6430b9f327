package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPEstimate(t *testing.T) {
	body, _ := json.Marshal(estimateRequest{Password: "correcthorsebatterystaple"})
	req := httptest.NewRequest(http.MethodPost, "/estimate", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	HTTP(DefaultConfig()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp estimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Password != "correcthorsebatterystaple" {
		t.Errorf("Password = %q", resp.Password)
	}
	if !resp.Passed {
		t.Error("expected Passed true when MinScore is unset")
	}
}

func TestHTTPEstimateMinScoreGate(t *testing.T) {
	body, _ := json.Marshal(estimateRequest{Password: "password"})
	req := httptest.NewRequest(http.MethodPost, "/estimate", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	cfg := DefaultConfig()
	cfg.MinScore = 4
	HTTP(cfg).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestHTTPEstimateRejectsNonPost(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/estimate", nil)
	rec := httptest.NewRecorder()

	HTTP(DefaultConfig()).ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHTTPEstimateInvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/estimate", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()

	HTTP(DefaultConfig()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestChiWrapsHTTP(t *testing.T) {
	body, _ := json.Marshal(estimateRequest{Password: "hunter2"})
	req := httptest.NewRequest(http.MethodPost, "/estimate", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	Chi(DefaultConfig()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
