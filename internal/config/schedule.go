package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SchedulePolicy fixes the cargo-scheduling business parameters: which hour
// labels a generated week covers, the per-slot capacity, and how many hours
// before a slot starts a requester may still self-cancel.
type SchedulePolicy struct {
	HourLabels              []string `yaml:"hour_labels"`
	DefaultCapacity         int      `yaml:"default_capacity"`
	CancellationWindowHours int      `yaml:"cancellation_window_hours"`
}

// DefaultSchedulePolicy covers business hours 08:00-17:00 with capacity 5.
func DefaultSchedulePolicy() *SchedulePolicy {
	return &SchedulePolicy{
		HourLabels: []string{
			"08:00", "09:00", "10:00", "11:00", "12:00",
			"13:00", "14:00", "15:00", "16:00", "17:00",
		},
		DefaultCapacity:         5,
		CancellationWindowHours: 3,
	}
}

// LoadSchedulePolicy reads the policy file at path; a missing file falls back
// to defaults. A present but malformed file is a startup error.
func LoadSchedulePolicy(path string) (*SchedulePolicy, error) {
	policy := DefaultSchedulePolicy()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return policy, nil
		}
		return nil, fmt.Errorf("read schedule policy file: %w", err)
	}

	if err := yaml.Unmarshal(data, policy); err != nil {
		return nil, fmt.Errorf("parse schedule policy file: %w", err)
	}

	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("schedule policy validation failed: %w", err)
	}

	return policy, nil
}

// Validate checks hour labels are parseable HH:MM and bounds are sane.
func (p *SchedulePolicy) Validate() error {
	if len(p.HourLabels) == 0 {
		return fmt.Errorf("at least one hour label is required")
	}
	for _, label := range p.HourLabels {
		if _, err := time.Parse("15:04", label); err != nil {
			return fmt.Errorf("invalid hour label %q: %w", label, err)
		}
	}
	if p.DefaultCapacity < 1 {
		return fmt.Errorf("default capacity must be at least 1")
	}
	if p.CancellationWindowHours < 0 {
		return fmt.Errorf("cancellation window cannot be negative")
	}
	return nil
}

// CancellationWindow returns the window as a duration.
func (p *SchedulePolicy) CancellationWindow() time.Duration {
	return time.Duration(p.CancellationWindowHours) * time.Hour
}
