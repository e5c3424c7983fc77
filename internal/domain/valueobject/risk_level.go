package valueobject

import (
	"fmt"
)

// ---------------------------------------------------------------------------
// RiskLevel – immutable value object
// ---------------------------------------------------------------------------

// RiskLevel buckets a credit score into the advisory risk bands reported
// alongside scores. Bands align with the lending tiers: LOW opens the top
// tier, HIGH means ineligible.
type RiskLevel struct {
	value string
}

const (
	riskLevelLow    = "LOW"
	riskLevelMedium = "MEDIUM"
	riskLevelHigh   = "HIGH"
)

var (
	RiskLevelLow    = RiskLevel{value: riskLevelLow}
	RiskLevelMedium = RiskLevel{value: riskLevelMedium}
	RiskLevelHigh   = RiskLevel{value: riskLevelHigh}
)

var validRiskLevels = map[string]RiskLevel{
	riskLevelLow:    RiskLevelLow,
	riskLevelMedium: RiskLevelMedium,
	riskLevelHigh:   RiskLevelHigh,
}

// NewRiskLevel creates a RiskLevel from a raw string.
func NewRiskLevel(s string) (RiskLevel, error) {
	v, ok := validRiskLevels[s]
	if !ok {
		return RiskLevel{}, fmt.Errorf("invalid risk level: %q", s)
	}
	return v, nil
}

// RiskLevelForScore derives the band for a score: LOW at 700 and above,
// MEDIUM at 300 and above, HIGH below.
func RiskLevelForScore(score uint32) RiskLevel {
	switch {
	case score >= 700:
		return RiskLevelLow
	case score >= 300:
		return RiskLevelMedium
	default:
		return RiskLevelHigh
	}
}

// String returns the string representation of the risk level.
func (r RiskLevel) String() string { return r.value }

// IsZero returns true if the risk level has not been initialised.
func (r RiskLevel) IsZero() bool { return r.value == "" }

// Equal returns true when both levels carry the same value.
func (r RiskLevel) Equal(other RiskLevel) bool { return r.value == other.value }
