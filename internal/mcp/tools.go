package mcp

import (
	"context"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// defaultTimeRange returns start/end defaulting to the last 28 days, the
// length of a typical training block.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -28)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// --- Tool definitions ---

var toolGetVolumeProfile = mcp.NewTool("get_volume_profile",
	mcp.WithDescription("Get the learned per-muscle volume tolerances: MEV (minimum effective volume) and MRV (maximum recoverable volume) in weekly sets, with confidence level and data point count per muscle."),
)

var toolGetVolumeSummary = mcp.NewTool("get_volume_summary",
	mcp.WithDescription("Current-week volume summary per muscle group: effective sets, percent of MRV, status (below_mev/low/optimal/high/at_limit), and week-over-week trend."),
)

var toolGetFatigueAlerts = mcp.NewTool("get_fatigue_alerts",
	mcp.WithDescription("Intra-block fatigue warnings: muscles approaching their MRV, climbing RIR at held loads, or degrading form. Each alert includes a suggested action."),
)

var toolAnalyzeMesocycle = mcp.NewTool("analyze_mesocycle",
	mcp.WithDescription("End-of-block analysis for a mesocycle. Returns per-muscle verdicts (too_high/too_low/optimal) with confidence, overall recovery classification, and suggested next-block volumes. Read-only: does not update the stored profile."),
	mcp.WithString("start", mcp.Required(), mcp.Description("Block start date (ISO 8601 or YYYY-MM-DD)")),
	mcp.WithString("weeks", mcp.Description("Block length in weeks (1-16). Defaults to 4.")),
)

var toolGetExerciseProgression = mcp.NewTool("get_exercise_progression",
	mcp.WithDescription("Week-over-week strength progression for one exercise: estimated 1RM trend, average weekly rate of change, and RIR drift. Needs at least 3 weeks of data."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name (exact match, e.g. 'Barbell Bench Press')")),
	mcp.WithString("start", mcp.Description("Start date. Defaults to 28 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

var toolGetRecoveryCorrelation = mcp.NewTool("get_recovery_correlation",
	mcp.WithDescription("Pearson correlation between daily check-in recovery scores and next-day session performance. Needs at least 8 matched pairs."),
	mcp.WithString("start", mcp.Description("Start date. Defaults to 28 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

// --- Tool handlers ---

func (h *handlers) getVolumeProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	profile, err := h.ds.Profile(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_volume_profile", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(profile)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getVolumeSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	summaries, err := h.ds.VolumeSummary(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_volume_summary", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(summaries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getFatigueAlerts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	alerts, err := h.ds.FatigueAlerts(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_fatigue_alerts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(alerts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) analyzeMesocycle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	startStr, err := req.RequireString("start")
	if err != nil {
		return mcp.NewToolResultError("start parameter is required"), nil
	}
	blockStart, err := parseFlexTime(startStr)
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	weeks := 4
	if w := req.GetString("weeks", ""); w != "" {
		weeks, err = strconv.Atoi(w)
		if err != nil || weeks < 1 || weeks > 16 {
			return mcp.NewToolResultError("weeks must be an integer between 1 and 16"), nil
		}
	}

	uid := UserIDFromContext(ctx)
	analysis, err := h.ds.AnalyzeMesocycle(ctx, uid, blockStart, weeks)
	if err != nil {
		h.log.Error("mcp analyze_mesocycle", "error", err)
		return mcp.NewToolResultError("analysis failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(analysis)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseProgression(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	analysis, err := h.ds.ExerciseProgression(ctx, uid, exercise, start, end)
	if err != nil {
		h.log.Error("mcp get_exercise_progression", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(analysis)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getRecoveryCorrelation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	corr, err := h.ds.RecoveryCorrelation(ctx, uid, start, end)
	if err != nil {
		h.log.Error("mcp get_recovery_correlation", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(corr)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
