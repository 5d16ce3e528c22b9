package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

func (s *Server) handleIngestSets(w http.ResponseWriter, r *http.Request) {
	var sets []models.SetLogRow
	if err := json.NewDecoder(r.Body).Decode(&sets); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	uid := userID(r)
	for i := range sets {
		sets[i].UserID = uid
	}

	inserted, err := s.db.InsertSetLogs(r.Context(), sets)
	if err != nil {
		s.log.Error("set ingest error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"received": len(sets),
		"inserted": inserted,
	})
}

func (s *Server) handleIngestCheckins(w http.ResponseWriter, r *http.Request) {
	var checkins []models.CheckinRow
	if err := json.NewDecoder(r.Body).Decode(&checkins); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	uid := userID(r)
	for i := range checkins {
		checkins[i].UserID = uid
		if err := s.db.UpsertCheckin(r.Context(), checkins[i]); err != nil {
			s.log.Error("checkin ingest error", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"received": len(checkins)})
}

func (s *Server) handleIngestSessions(w http.ResponseWriter, r *http.Request) {
	var sessions []models.WorkoutSessionRow
	if err := json.NewDecoder(r.Body).Decode(&sessions); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	uid := userID(r)
	for i := range sessions {
		sessions[i].UserID = uid
		if err := s.db.InsertSession(r.Context(), sessions[i]); err != nil {
			s.log.Error("session ingest error", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"received": len(sessions)})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.advisor.Profile(r.Context(), userID(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleVolumeSummary(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.advisor.VolumeSummary(r.Context(), userID(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleFatigueAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.advisor.FatigueAlerts(r.Context(), userID(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (s *Server) handleMesocycleAnalysis(w http.ResponseWriter, r *http.Request) {
	blockStart, weeks, err := parseBlockWindow(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	analysis, err := s.advisor.AnalyzeMesocycle(r.Context(), userID(r), blockStart, weeks)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleMesocycleComplete(w http.ResponseWriter, r *http.Request) {
	blockStart, weeks, err := parseBlockWindow(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	analysis, profile, err := s.advisor.CompleteMesocycle(r.Context(), userID(r), blockStart, weeks)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"analysis": analysis,
		"profile":  profile,
	})
}

func (s *Server) handleExerciseProgression(w http.ResponseWriter, r *http.Request) {
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
		return
	}

	start, end, err := parseTimeRange(r, defaultAnalysisDays)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	analysis, err := s.advisor.ExerciseProgression(r.Context(), userID(r), exercise, start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleRecoveryCorrelation(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r, defaultAnalysisDays)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result, err := s.advisor.RecoveryCorrelation(r.Context(), userID(r), start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// defaultAnalysisDays is the lookback window when no start/end is given.
// Four weeks covers a typical mesocycle.
const defaultAnalysisDays = 28

// userID reads the user_id query parameter, defaulting to 1 for the
// single-user deployment.
func userID(r *http.Request) int {
	if v := r.URL.Query().Get("user_id"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id > 0 {
			return id
		}
	}
	return 1
}

// parseTimeRange extracts start/end query parameters.
// Accepts RFC3339 or YYYY-MM-DD. Defaults to the last defaultDays days.
func parseTimeRange(r *http.Request, defaultDays int) (start, end time.Time, err error) {
	now := time.Now().UTC()
	end = now
	start = now.AddDate(0, 0, -defaultDays)

	if v := r.URL.Query().Get("start"); v != "" {
		start, err = parseFlexTime(v)
		if err != nil {
			return start, end, fmt.Errorf("invalid start: %w", err)
		}
	}
	if v := r.URL.Query().Get("end"); v != "" {
		end, err = parseFlexTime(v)
		if err != nil {
			return start, end, fmt.Errorf("invalid end: %w", err)
		}
	}
	return start, end, nil
}

// parseBlockWindow extracts the mesocycle window: a required start date and
// an optional weeks count (default 4).
func parseBlockWindow(r *http.Request) (time.Time, int, error) {
	v := r.URL.Query().Get("start")
	if v == "" {
		return time.Time{}, 0, fmt.Errorf("start parameter required")
	}
	blockStart, err := parseFlexTime(v)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid start: %w", err)
	}

	weeks := 4
	if w := r.URL.Query().Get("weeks"); w != "" {
		weeks, err = strconv.Atoi(w)
		if err != nil || weeks < 1 || weeks > 16 {
			return time.Time{}, 0, fmt.Errorf("weeks must be an integer between 1 and 16")
		}
	}
	return blockStart, weeks, nil
}

// parseFlexTime parses RFC3339 timestamps with a date-only fallback.
func parseFlexTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		t, err = time.Parse("2006-01-02", v)
	}
	return t, err
}
