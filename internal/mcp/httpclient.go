package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Joshfkon/workout-app-sub012/internal/engine"
	"github.com/Joshfkon/workout-app-sub012/internal/models"
)

// HTTPClient implements DataSource by calling the volume server's REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but data
// lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func userParams(userID int) url.Values {
	v := url.Values{}
	v.Set("user_id", strconv.Itoa(userID))
	return v
}

func rangeParams(start, end time.Time, userID int) url.Values {
	v := userParams(userID)
	v.Set("start", start.Format(time.RFC3339))
	v.Set("end", end.Format(time.RFC3339))
	return v
}

func (c *HTTPClient) Profile(ctx context.Context, userID int) (*models.UserVolumeProfile, error) {
	body, err := c.get(ctx, "/api/v1/profile", userParams(userID))
	if err != nil {
		return nil, err
	}

	var profile models.UserVolumeProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("httpclient: decode profile: %w", err)
	}
	return &profile, nil
}

func (c *HTTPClient) VolumeSummary(ctx context.Context, userID int) ([]engine.VolumeSummary, error) {
	body, err := c.get(ctx, "/api/v1/volume/summary", userParams(userID))
	if err != nil {
		return nil, err
	}

	var summaries []engine.VolumeSummary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, fmt.Errorf("httpclient: decode volume summary: %w", err)
	}
	return summaries, nil
}

func (c *HTTPClient) FatigueAlerts(ctx context.Context, userID int) ([]engine.FatigueAlert, error) {
	body, err := c.get(ctx, "/api/v1/fatigue/alerts", userParams(userID))
	if err != nil {
		return nil, err
	}

	var alerts []engine.FatigueAlert
	if err := json.Unmarshal(body, &alerts); err != nil {
		return nil, fmt.Errorf("httpclient: decode fatigue alerts: %w", err)
	}
	return alerts, nil
}

func (c *HTTPClient) AnalyzeMesocycle(ctx context.Context, userID int, blockStart time.Time, weeks int) (*engine.MesocycleAnalysis, error) {
	params := userParams(userID)
	params.Set("start", blockStart.Format(time.RFC3339))
	params.Set("weeks", strconv.Itoa(weeks))

	body, err := c.get(ctx, "/api/v1/mesocycle/analysis", params)
	if err != nil {
		return nil, err
	}

	var analysis engine.MesocycleAnalysis
	if err := json.Unmarshal(body, &analysis); err != nil {
		return nil, fmt.Errorf("httpclient: decode mesocycle analysis: %w", err)
	}
	return &analysis, nil
}

func (c *HTTPClient) ExerciseProgression(ctx context.Context, userID int, exercise string, start, end time.Time) (*engine.ProgressionAnalysis, error) {
	params := rangeParams(start, end, userID)
	params.Set("exercise", exercise)

	body, err := c.get(ctx, "/api/v1/progression", params)
	if err != nil {
		return nil, err
	}

	var analysis engine.ProgressionAnalysis
	if err := json.Unmarshal(body, &analysis); err != nil {
		return nil, fmt.Errorf("httpclient: decode progression: %w", err)
	}
	return &analysis, nil
}

func (c *HTTPClient) RecoveryCorrelation(ctx context.Context, userID int, start, end time.Time) (*engine.RecoveryCorrelationResult, error) {
	body, err := c.get(ctx, "/api/v1/recovery/correlation", rangeParams(start, end, userID))
	if err != nil {
		return nil, err
	}

	var result engine.RecoveryCorrelationResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("httpclient: decode recovery correlation: %w", err)
	}
	return &result, nil
}
