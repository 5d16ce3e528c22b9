package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestUserIDDefault verifies that requests without a user_id parameter fall
// back to the single-user default.
func TestUserIDDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	if id := userID(req); id != 1 {
		t.Errorf("userID = %d, want 1", id)
	}
}

// TestUserIDFromQuery verifies that a valid user_id parameter is honored and
// invalid values fall back to the default.
func TestUserIDFromQuery(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"user_id=7", 7},
		{"user_id=0", 1},
		{"user_id=-3", 1},
		{"user_id=abc", 1},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile?"+tt.query, nil)
		if id := userID(req); id != tt.want {
			t.Errorf("userID(%q) = %d, want %d", tt.query, id, tt.want)
		}
	}
}

// TestParseTimeRangeDefaults verifies the default lookback window when no
// start/end parameters are given.
func TestParseTimeRangeDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recovery/correlation", nil)
	start, end, err := parseTimeRange(req, 28)
	if err != nil {
		t.Fatalf("parseTimeRange error: %v", err)
	}
	window := end.Sub(start)
	if window < 27*24*time.Hour || window > 29*24*time.Hour {
		t.Errorf("window = %v, want about 28 days", window)
	}
}

// TestParseTimeRangeDateOnly verifies that YYYY-MM-DD values are accepted.
func TestParseTimeRangeDateOnly(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/progression?start=2026-07-01&end=2026-08-01", nil)
	start, end, err := parseTimeRange(req, 28)
	if err != nil {
		t.Fatalf("parseTimeRange error: %v", err)
	}
	if start.Format("2006-01-02") != "2026-07-01" {
		t.Errorf("start = %v, want 2026-07-01", start)
	}
	if end.Format("2006-01-02") != "2026-08-01" {
		t.Errorf("end = %v, want 2026-08-01", end)
	}
}

// TestParseTimeRangeInvalid verifies that malformed timestamps error.
func TestParseTimeRangeInvalid(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/progression?start=yesterday", nil)
	if _, _, err := parseTimeRange(req, 28); err == nil {
		t.Error("expected error for malformed start, got nil")
	}
}

// TestParseBlockWindow verifies parsing of the mesocycle window parameters.
func TestParseBlockWindow(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/mesocycle/analysis?start=2026-06-01&weeks=5", nil)
	blockStart, weeks, err := parseBlockWindow(req)
	if err != nil {
		t.Fatalf("parseBlockWindow error: %v", err)
	}
	if blockStart.Format("2006-01-02") != "2026-06-01" {
		t.Errorf("blockStart = %v, want 2026-06-01", blockStart)
	}
	if weeks != 5 {
		t.Errorf("weeks = %d, want 5", weeks)
	}
}

// TestParseBlockWindowDefaults verifies the default block length and the
// required start parameter.
func TestParseBlockWindowDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/mesocycle/analysis?start=2026-06-01", nil)
	_, weeks, err := parseBlockWindow(req)
	if err != nil {
		t.Fatalf("parseBlockWindow error: %v", err)
	}
	if weeks != 4 {
		t.Errorf("default weeks = %d, want 4", weeks)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/mesocycle/analysis", nil)
	if _, _, err := parseBlockWindow(req); err == nil {
		t.Error("expected error for missing start, got nil")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/mesocycle/analysis?start=2026-06-01&weeks=99", nil)
	if _, _, err := parseBlockWindow(req); err == nil {
		t.Error("expected error for out-of-range weeks, got nil")
	}
}

// TestIngestSetsRejectsBadJSON verifies malformed ingest payloads return 400
// before touching storage.
func TestIngestSetsRejectsBadJSON(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ingest/sets", http.NoBody)
	rec := httptest.NewRecorder()

	s.handleIngestSets(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestProgressionRequiresExercise verifies the exercise parameter is
// mandatory.
func TestProgressionRequiresExercise(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/progression", nil)
	rec := httptest.NewRecorder()

	s.handleExerciseProgression(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
