// ABOUTME: Tests for the metric catalog, severity tiers, and trend labels.
// ABOUTME: Validates units mapping, tier thresholds, and nil handling.
package models

import (
	"testing"
)

func TestMetricTypeUnit(t *testing.T) {
	tests := []struct {
		metricType MetricType
		wantUnit   string
	}{
		{MetricRecovery, "%"},
		{MetricHRV, "ms"},
		{MetricStrain, ""},
		{MetricSleepPerformance, "%"},
		{MetricRestingHeartRate, "bpm"},
	}

	for _, tt := range tests {
		t.Run(string(tt.metricType), func(t *testing.T) {
			got := MetricUnits[tt.metricType]
			if got != tt.wantUnit {
				t.Errorf("MetricUnits[%s] = %s, want %s", tt.metricType, got, tt.wantUnit)
			}
		})
	}
}

func TestAllMetricTypesHaveInfo(t *testing.T) {
	for _, mt := range AllMetricTypes {
		if _, ok := MetricUnits[mt]; !ok {
			t.Errorf("MetricType %s has no unit defined", mt)
		}
		if InfoFor(mt).Tier == nil {
			t.Errorf("MetricType %s has no tier function", mt)
		}
	}
}

func TestIsValidMetricType(t *testing.T) {
	if !IsValidMetricType("recovery") {
		t.Error("expected recovery to be valid")
	}
	if IsValidMetricType("mood") {
		t.Error("expected mood to be invalid")
	}
}

func TestScoreTier(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name  string
		value *float64
		want  Tier
	}{
		{"nil is no data", nil, TierNoData},
		{"67 is good", f(67), TierGood},
		{"100 is good", f(100), TierGood},
		{"66 is caution", f(66), TierCaution},
		{"30 is caution", f(30), TierCaution},
		{"29 is poor", f(29), TierPoor},
		{"0 is poor", f(0), TierPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreTier(tt.value); got != tt.want {
				t.Errorf("ScoreTier = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNeutralMetricsTier(t *testing.T) {
	v := 12.5
	if got := InfoFor(MetricStrain).Tier(&v); got != TierGood {
		t.Errorf("strain tier = %s, want good", got)
	}
	if got := InfoFor(MetricHRV).Tier(nil); got != TierNoData {
		t.Errorf("nil hrv tier = %s, want no_data", got)
	}
}
