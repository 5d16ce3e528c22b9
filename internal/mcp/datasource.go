package mcp

import (
	"context"
	"time"

	"github.com/Joshfkon/workout-app-sub012/internal/advisor"
	"github.com/Joshfkon/workout-app-sub012/internal/engine"
	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// DataSource abstracts the analysis layer for MCP tools. Both
// *advisor.Advisor (local database) and HTTPClient (remote via REST API)
// satisfy this interface.
type DataSource interface {
	Profile(ctx context.Context, userID int) (*models.UserVolumeProfile, error)
	VolumeSummary(ctx context.Context, userID int) ([]engine.VolumeSummary, error)
	FatigueAlerts(ctx context.Context, userID int) ([]engine.FatigueAlert, error)
	AnalyzeMesocycle(ctx context.Context, userID int, blockStart time.Time, weeks int) (*engine.MesocycleAnalysis, error)
	ExerciseProgression(ctx context.Context, userID int, exercise string, start, end time.Time) (*engine.ProgressionAnalysis, error)
	RecoveryCorrelation(ctx context.Context, userID int, start, end time.Time) (*engine.RecoveryCorrelationResult, error)
}

// Compile-time check: *advisor.Advisor satisfies DataSource.
var _ DataSource = (*advisor.Advisor)(nil)
