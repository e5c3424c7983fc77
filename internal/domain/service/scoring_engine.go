package service

import (
	"github.com/stellarcredit/credit-service/pkg/money"
)

// ---------------------------------------------------------------------------
// ScoringEngine – deterministic creditworthiness scoring
// ---------------------------------------------------------------------------

// Metric weights in percent, applied to {normalized volume, punctuality,
// normalized frequency, diversification, normalized balance}. They sum to
// 100 by construction.
const (
	weightVolume          = 20
	weightPunctuality     = 30
	weightFrequency       = 15
	weightDiversification = 20
	weightBalance         = 15
)

// Normalization ceilings: the raw value at which each metric saturates its
// 0-100 contribution.
const (
	volumeCeilingUnits  = 10_000 // transaction volume, currency units
	frequencyCeiling    = 50     // transactions per period
	balanceCeilingUnits = 5_000  // average balance, currency units
)

// MaxScore is the upper bound of the score range the engine produces.
const MaxScore uint32 = 1000

// ScoringEngine computes the bounded creditworthiness score from five raw
// behavioral metrics. All arithmetic is integer, with truncating division at
// exactly two points (the weighted composite and the final upscale), so equal
// inputs reproduce equal scores bit for bit across runs and backends.
type ScoringEngine struct{}

// NewScoringEngine returns a new engine instance.
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

// NormalizeVolume maps a fixed-point transaction volume onto 0-100,
// saturating at the 10,000-unit ceiling.
func (e *ScoringEngine) NormalizeVolume(volume money.Micros) uint32 {
	return normalizeAmount(volume, volumeCeilingUnits)
}

// NormalizeFrequency maps a transactions-per-period count onto 0-100,
// saturating at 50.
func (e *ScoringEngine) NormalizeFrequency(frequency uint32) uint32 {
	if frequency >= frequencyCeiling {
		return 100
	}
	return frequency * 100 / frequencyCeiling
}

// NormalizeBalance maps a fixed-point average balance onto 0-100, saturating
// at the 5,000-unit ceiling.
func (e *ScoringEngine) NormalizeBalance(balance money.Micros) uint32 {
	return normalizeAmount(balance, balanceCeilingUnits)
}

func normalizeAmount(m money.Micros, ceilingUnits int64) uint32 {
	if m <= 0 {
		return 0
	}
	ceiling := ceilingUnits * money.Precision
	if int64(m) >= ceiling {
		return 100
	}
	return uint32(int64(m) * 100 / ceiling)
}

// CalculateScore maps the five raw metrics onto the 0-1000 score range.
//
// punctuality and diversification are consumed as-is: callers are trusted to
// supply values in [0,100], and out-of-range values skew the composite
// accordingly. ClampPercent is available to callers that want to bound them
// first; the engine itself never alters inputs so historic scores stay
// reproducible.
func (e *ScoringEngine) CalculateScore(
	volume money.Micros,
	punctuality uint32,
	frequency uint32,
	diversification uint32,
	balance money.Micros,
) uint32 {
	weighted := uint64(e.NormalizeVolume(volume))*weightVolume +
		uint64(punctuality)*weightPunctuality +
		uint64(e.NormalizeFrequency(frequency))*weightFrequency +
		uint64(diversification)*weightDiversification +
		uint64(e.NormalizeBalance(balance))*weightBalance

	// Truncate at the composite, then upscale: this exact order is the
	// scoring contract.
	return uint32(weighted / 100 * 10)
}

// ClampPercent bounds a 0-100 metric, for callers that choose to sanitize
// punctuality or diversification before scoring.
func ClampPercent(v uint32) uint32 {
	if v > 100 {
		return 100
	}
	return v
}
