package advisor

import (
	"testing"
	"time"
)

// TestStartOfWeek verifies truncation to the Monday of the ISO week,
// including the Sunday wrap.
func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday stays", time.Date(2026, 8, 24, 15, 30, 0, 0, time.UTC), "2026-08-24"},
		{"wednesday", time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC), "2026-08-24"},
		{"sunday wraps back", time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC), "2026-08-24"},
		{"month boundary", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), "2026-08-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := startOfWeek(tt.in)
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("startOfWeek(%v) = %v, want %s", tt.in, got, tt.want)
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Errorf("startOfWeek(%v) not midnight: %v", tt.in, got)
			}
		})
	}
}
