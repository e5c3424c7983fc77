package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stellarcredit/credit-service/internal/domain/service"
	"github.com/stellarcredit/credit-service/pkg/money"
)

func TestScoringEngine_NormalizeVolume(t *testing.T) {
	engine := service.NewScoringEngine()

	tests := []struct {
		name     string
		volume   money.Micros
		expected uint32
	}{
		{"zero", 0, 0},
		{"negative treated as zero", money.FromUnits(-10), 0},
		{"half the ceiling", money.FromUnits(5000), 50},
		{"exactly the ceiling", money.FromUnits(10_000), 100},
		{"beyond the ceiling saturates", money.FromUnits(1_000_000), 100},
		{"sub-unit truncates", money.FromUnits(99) + 999_999, 0}, // 99.999999 units -> 0.99..% -> 0
		{"one percent of ceiling", money.FromUnits(100), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.NormalizeVolume(tt.volume))
		})
	}
}

func TestScoringEngine_NormalizeFrequency(t *testing.T) {
	engine := service.NewScoringEngine()

	tests := []struct {
		name      string
		frequency uint32
		expected  uint32
	}{
		{"zero", 0, 0},
		{"half the ceiling", 25, 50},
		{"exactly the ceiling", 50, 100},
		{"beyond the ceiling saturates", 500, 100},
		{"truncating division", 1, 2},
		{"odd value truncates", 13, 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.NormalizeFrequency(tt.frequency))
		})
	}
}

func TestScoringEngine_NormalizeBalance(t *testing.T) {
	engine := service.NewScoringEngine()

	tests := []struct {
		name     string
		balance  money.Micros
		expected uint32
	}{
		{"zero", 0, 0},
		{"fifth of the ceiling", money.FromUnits(1000), 20},
		{"exactly the ceiling", money.FromUnits(5000), 100},
		{"beyond the ceiling saturates", money.FromUnits(50_000), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.NormalizeBalance(tt.balance))
		})
	}
}

// The reference composite: volume 5000 units, punctuality 95, frequency 25,
// diversification 80, balance 1000 units. Normalized {50, 95, 50, 80, 20},
// weighted sum 50·20+95·30+50·15+80·20+20·15 = 6500, score (6500/100)·10 = 650.
func TestScoringEngine_CalculateScore_ReferenceComposite(t *testing.T) {
	engine := service.NewScoringEngine()

	score := engine.CalculateScore(money.FromUnits(5000), 95, 25, 80, money.FromUnits(1000))
	assert.Equal(t, uint32(650), score)
}

func TestScoringEngine_CalculateScore_Bounds(t *testing.T) {
	engine := service.NewScoringEngine()

	t.Run("all metrics zero", func(t *testing.T) {
		assert.Equal(t, uint32(0), engine.CalculateScore(0, 0, 0, 0, 0))
	})

	t.Run("all metrics at ceiling", func(t *testing.T) {
		score := engine.CalculateScore(money.FromUnits(10_000), 100, 50, 100, money.FromUnits(5000))
		assert.Equal(t, uint32(1000), score)
	})

	t.Run("all metrics beyond ceiling still 1000", func(t *testing.T) {
		score := engine.CalculateScore(money.FromUnits(999_999), 100, 9999, 100, money.FromUnits(999_999))
		assert.Equal(t, uint32(1000), score)
	})
}

func TestScoringEngine_CalculateScore_WithinRangeForValidInputs(t *testing.T) {
	engine := service.NewScoringEngine()

	volumes := []money.Micros{0, money.FromUnits(1), money.FromUnits(4999), money.FromUnits(10_000), money.FromUnits(20_000)}
	percents := []uint32{0, 1, 50, 99, 100}
	frequencies := []uint32{0, 1, 25, 50, 200}

	for _, v := range volumes {
		for _, p := range percents {
			for _, f := range frequencies {
				score := engine.CalculateScore(v, p, f, p, v)
				assert.LessOrEqual(t, score, uint32(1000),
					"score out of range for volume=%d punctuality=%d frequency=%d", v, p, f)
			}
		}
	}
}

func TestScoringEngine_CalculateScore_Deterministic(t *testing.T) {
	engine := service.NewScoringEngine()

	first := engine.CalculateScore(money.FromUnits(3210), 87, 13, 64, money.FromUnits(912))
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, engine.CalculateScore(money.FromUnits(3210), 87, 13, 64, money.FromUnits(912)))
	}
}

func TestScoringEngine_CalculateScore_Monotonic(t *testing.T) {
	engine := service.NewScoringEngine()

	base := engine.CalculateScore(money.FromUnits(2000), 60, 10, 40, money.FromUnits(500))

	t.Run("volume up", func(t *testing.T) {
		higher := engine.CalculateScore(money.FromUnits(4000), 60, 10, 40, money.FromUnits(500))
		assert.GreaterOrEqual(t, higher, base)
	})
	t.Run("punctuality up", func(t *testing.T) {
		higher := engine.CalculateScore(money.FromUnits(2000), 90, 10, 40, money.FromUnits(500))
		assert.GreaterOrEqual(t, higher, base)
	})
	t.Run("frequency up", func(t *testing.T) {
		higher := engine.CalculateScore(money.FromUnits(2000), 60, 30, 40, money.FromUnits(500))
		assert.GreaterOrEqual(t, higher, base)
	})
	t.Run("diversification up", func(t *testing.T) {
		higher := engine.CalculateScore(money.FromUnits(2000), 60, 10, 80, money.FromUnits(500))
		assert.GreaterOrEqual(t, higher, base)
	})
	t.Run("balance up", func(t *testing.T) {
		higher := engine.CalculateScore(money.FromUnits(2000), 60, 10, 40, money.FromUnits(2500))
		assert.GreaterOrEqual(t, higher, base)
	})
}

// Truncation happens at the composite before the upscale: a weighted sum of
// 6599 collapses to the same score as 6500, not 659.
func TestScoringEngine_CalculateScore_TruncatesAtComposite(t *testing.T) {
	engine := service.NewScoringEngine()

	// punctuality 33: weighted = 33*30 = 990 -> 990/100 = 9 -> 90.
	assert.Equal(t, uint32(90), engine.CalculateScore(0, 33, 0, 0, 0))

	// punctuality 33, diversification 1: weighted = 990+20 = 1010 -> 10 -> 100.
	assert.Equal(t, uint32(100), engine.CalculateScore(0, 33, 0, 1, 0))
}

// Out-of-range punctuality/diversification are passed through untouched and
// skew the composite; bounding them is the caller's choice via ClampPercent.
func TestScoringEngine_CalculateScore_TrustsPreBoundedInputs(t *testing.T) {
	engine := service.NewScoringEngine()

	skewed := engine.CalculateScore(0, 200, 0, 0, 0)
	assert.Equal(t, uint32(600), skewed) // 200*30/100*10

	clamped := engine.CalculateScore(0, service.ClampPercent(200), 0, 0, 0)
	assert.Equal(t, uint32(300), clamped)
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, uint32(0), service.ClampPercent(0))
	assert.Equal(t, uint32(100), service.ClampPercent(100))
	assert.Equal(t, uint32(100), service.ClampPercent(101))
	assert.Equal(t, uint32(37), service.ClampPercent(37))
}
