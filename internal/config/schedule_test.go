package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePolicyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSchedulePolicy_MissingFileFallsBackToDefaults(t *testing.T) {
	policy, err := LoadSchedulePolicy(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Len(t, policy.HourLabels, 10)
	assert.Equal(t, "08:00", policy.HourLabels[0])
	assert.Equal(t, "17:00", policy.HourLabels[9])
	assert.Equal(t, 5, policy.DefaultCapacity)
	assert.Equal(t, 3*time.Hour, policy.CancellationWindow())
}

func TestLoadSchedulePolicy_FileOverridesDefaults(t *testing.T) {
	path := writePolicyFile(t, `
hour_labels:
  - "06:00"
  - "18:00"
default_capacity: 8
cancellation_window_hours: 12
`)

	policy, err := LoadSchedulePolicy(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"06:00", "18:00"}, policy.HourLabels)
	assert.Equal(t, 8, policy.DefaultCapacity)
	assert.Equal(t, 12*time.Hour, policy.CancellationWindow())
}

func TestLoadSchedulePolicy_MalformedYAML(t *testing.T) {
	path := writePolicyFile(t, "hour_labels: [unterminated")

	_, err := LoadSchedulePolicy(path)
	assert.Error(t, err)
}

func TestLoadSchedulePolicy_BadHourLabel(t *testing.T) {
	path := writePolicyFile(t, `
hour_labels:
  - "25:00"
`)

	_, err := LoadSchedulePolicy(path)
	assert.ErrorContains(t, err, "invalid hour label")
}

func TestSchedulePolicyValidate(t *testing.T) {
	tests := []struct {
		name    string
		policy  SchedulePolicy
		wantErr bool
	}{
		{
			name:   "valid",
			policy: SchedulePolicy{HourLabels: []string{"08:00"}, DefaultCapacity: 1},
		},
		{
			name:    "no labels",
			policy:  SchedulePolicy{DefaultCapacity: 5},
			wantErr: true,
		},
		{
			name:    "zero capacity",
			policy:  SchedulePolicy{HourLabels: []string{"08:00"}},
			wantErr: true,
		},
		{
			name:    "negative window",
			policy:  SchedulePolicy{HourLabels: []string{"08:00"}, DefaultCapacity: 1, CancellationWindowHours: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
