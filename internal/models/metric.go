// ABOUTME: Metric catalog, severity tiers, and trend labels for athlete readings.
// ABOUTME: Defines the five tracked metrics with units and score thresholds.
package models

// MetricType represents one of the tracked physiological metrics.
type MetricType string

const (
	MetricRecovery         MetricType = "recovery"
	MetricHRV              MetricType = "hrv"
	MetricStrain           MetricType = "strain"
	MetricSleepPerformance MetricType = "sleep_performance"
	MetricRestingHeartRate MetricType = "resting_heart_rate"
)

// MetricUnits maps metric types to their display units. Strain is a
// unitless 0-21 scale.
var MetricUnits = map[MetricType]string{
	MetricRecovery:         "%",
	MetricHRV:              "ms",
	MetricStrain:           "",
	MetricSleepPerformance: "%",
	MetricRestingHeartRate: "bpm",
}

// AllMetricTypes returns all tracked metric types, in display order.
var AllMetricTypes = []MetricType{
	MetricRecovery, MetricHRV, MetricStrain,
	MetricSleepPerformance, MetricRestingHeartRate,
}

// IsValidMetricType checks if a string is a valid metric type.
func IsValidMetricType(s string) bool {
	for _, mt := range AllMetricTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// Tier is the severity classification of a metric value. The view
// layer maps tiers to visuals; the core never emits color tokens.
type Tier string

const (
	TierGood    Tier = "good"
	TierCaution Tier = "caution"
	TierPoor    Tier = "poor"
	TierNoData  Tier = "no_data"
)

// MetricInfo describes a tracked metric: its display unit and the
// tier function applied to its values.
type MetricInfo struct {
	Unit string
	Tier func(v *float64) Tier
}

// InfoFor returns the MetricInfo for a tracked metric. The mapping is
// exhaustive over AllMetricTypes; recovery and sleep performance are
// 0-100 scores with alert bands, the rest carry no bands.
func InfoFor(mt MetricType) MetricInfo {
	switch mt {
	case MetricRecovery:
		return MetricInfo{Unit: MetricUnits[MetricRecovery], Tier: ScoreTier}
	case MetricSleepPerformance:
		return MetricInfo{Unit: MetricUnits[MetricSleepPerformance], Tier: ScoreTier}
	case MetricHRV:
		return MetricInfo{Unit: MetricUnits[MetricHRV], Tier: neutralTier}
	case MetricStrain:
		return MetricInfo{Unit: MetricUnits[MetricStrain], Tier: neutralTier}
	case MetricRestingHeartRate:
		return MetricInfo{Unit: MetricUnits[MetricRestingHeartRate], Tier: neutralTier}
	}
	return MetricInfo{Tier: neutralTier}
}

// ScoreTier classifies a 0-100 score: >=67 good, 30-66 caution,
// <=29 poor. A nil value is no_data, never coerced to zero.
func ScoreTier(v *float64) Tier {
	if v == nil {
		return TierNoData
	}
	switch {
	case *v >= 67:
		return TierGood
	case *v >= 30:
		return TierCaution
	default:
		return TierPoor
	}
}

func neutralTier(v *float64) Tier {
	if v == nil {
		return TierNoData
	}
	return TierGood
}

// TrendLabel is one step of an athlete's week-over-week HRV trend.
type TrendLabel string

const (
	TrendRising    TrendLabel = "rising"
	TrendFlat      TrendLabel = "flat"
	TrendDeclining TrendLabel = "declining"
	TrendNoData    TrendLabel = "no_data"
)
