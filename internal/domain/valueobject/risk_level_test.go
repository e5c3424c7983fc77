package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarcredit/credit-service/internal/domain/valueobject"
)

func TestRiskLevel_String(t *testing.T) {
	assert.Equal(t, "LOW", valueobject.RiskLevelLow.String())
	assert.Equal(t, "MEDIUM", valueobject.RiskLevelMedium.String())
	assert.Equal(t, "HIGH", valueobject.RiskLevelHigh.String())
}

func TestRiskLevel_New(t *testing.T) {
	tests := []struct {
		input    string
		expected valueobject.RiskLevel
		wantErr  bool
	}{
		{"LOW", valueobject.RiskLevelLow, false},
		{"MEDIUM", valueobject.RiskLevelMedium, false},
		{"HIGH", valueobject.RiskLevelHigh, false},
		{"low", valueobject.RiskLevel{}, true},
		{"CRITICAL", valueobject.RiskLevel{}, true},
		{"", valueobject.RiskLevel{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := valueobject.NewRiskLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, tt.expected.Equal(result))
			}
		})
	}
}

func TestRiskLevel_ForScore(t *testing.T) {
	tests := []struct {
		name     string
		score    uint32
		expected valueobject.RiskLevel
	}{
		{"score 1000 is LOW", 1000, valueobject.RiskLevelLow},
		{"score 700 is LOW", 700, valueobject.RiskLevelLow},
		{"score 699 is MEDIUM", 699, valueobject.RiskLevelMedium},
		{"score 300 is MEDIUM", 300, valueobject.RiskLevelMedium},
		{"score 299 is HIGH", 299, valueobject.RiskLevelHigh},
		{"score 0 is HIGH", 0, valueobject.RiskLevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := valueobject.RiskLevelForScore(tt.score)
			assert.True(t, tt.expected.Equal(result),
				"expected %s for score %d, got %s", tt.expected.String(), tt.score, result.String())
		})
	}
}

func TestRiskLevel_Equal(t *testing.T) {
	assert.True(t, valueobject.RiskLevelLow.Equal(valueobject.RiskLevelLow))
	assert.False(t, valueobject.RiskLevelLow.Equal(valueobject.RiskLevelHigh))
}

func TestRiskLevel_IsZero(t *testing.T) {
	var zero valueobject.RiskLevel
	assert.True(t, zero.IsZero())
	assert.False(t, valueobject.RiskLevelMedium.IsZero())
}
