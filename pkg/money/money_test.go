package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

func TestFromUnits(t *testing.T) {
	tests := []struct {
		units int64
		want  Micros
	}{
		{0, 0},
		{1, 1_000_000},
		{1000, 1_000_000_000},
		{-50, -50_000_000},
	}
	for _, tt := range tests {
		if got := FromUnits(tt.units); got != tt.want {
			t.Errorf("FromUnits(%d) = %d, want %d", tt.units, got, tt.want)
		}
	}
}

func TestFromDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want Micros
	}{
		{"0", 0},
		{"1", 1_000_000},
		{"0.5", 500_000},
		{"-2.25", -2_250_000},
		{"0.000001", 1},
		{"0.0000009", 0}, // below precision truncates
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		if err != nil {
			t.Fatalf("decimal.NewFromString(%q): %v", tt.in, err)
		}
		if got := FromDecimal(d); got != tt.want {
			t.Errorf("FromDecimal(%s) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseUnits_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want Micros
	}{
		{"100", 100_000_000},
		{"0", 0},
		{"-50.5", -50_500_000},
		{"99.9999", 99_999_900},
	}
	for _, tt := range tests {
		got, err := ParseUnits(tt.in)
		if err != nil {
			t.Errorf("ParseUnits(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseUnits(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseUnits_Invalid(t *testing.T) {
	_, err := ParseUnits("not-a-number")
	if err == nil {
		t.Error("ParseUnits with invalid amount expected error, got nil")
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		n    int64
		want Micros
	}{
		{2, 20_000},
		{4, 40_000},
		{6, 60_000},
		{10, 100_000},
		{100, 1_000_000},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Percent(tt.n); got != tt.want {
			t.Errorf("Percent(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func TestUnits_Truncates(t *testing.T) {
	tests := []struct {
		m    Micros
		want int64
	}{
		{FromUnits(1000), 1000},
		{1_999_999, 1},
		{-1_999_999, -1},
		{999_999, 0},
	}
	for _, tt := range tests {
		if got := tt.m.Units(); got != tt.want {
			t.Errorf("Micros(%d).Units() = %d, want %d", tt.m, got, tt.want)
		}
	}
}

func TestDecimal_Exact(t *testing.T) {
	m := Micros(1_500_000)
	want := decimal.NewFromFloat(1.5)
	if !m.Decimal().Equal(want) {
		t.Errorf("Decimal() = %s, want %s", m.Decimal(), want)
	}
}

// ---------------------------------------------------------------------------
// Predicates: IsZero, IsPositive, IsNegative
// ---------------------------------------------------------------------------

func TestIsZero(t *testing.T) {
	if !Micros(0).IsZero() {
		t.Error("expected IsZero true for 0")
	}
	if Micros(1).IsZero() {
		t.Error("expected IsZero false for 1")
	}
}

func TestIsPositive(t *testing.T) {
	if !Micros(10).IsPositive() {
		t.Error("expected IsPositive true for 10")
	}
	if Micros(0).IsPositive() {
		t.Error("expected IsPositive false for 0")
	}
	if Micros(-1).IsPositive() {
		t.Error("expected IsPositive false for -1")
	}
}

func TestIsNegative(t *testing.T) {
	if !Micros(-5).IsNegative() {
		t.Error("expected IsNegative true for -5")
	}
	if Micros(0).IsNegative() {
		t.Error("expected IsNegative false for 0")
	}
	if Micros(3).IsNegative() {
		t.Error("expected IsNegative false for 3")
	}
}

// ---------------------------------------------------------------------------
// String
// ---------------------------------------------------------------------------

func TestString(t *testing.T) {
	tests := []struct {
		m    Micros
		want string
	}{
		{FromUnits(1000), "1000"},
		{Percent(2), "0.02"},
		{Micros(500_000), "0.5"},
		{Micros(-25_000_000), "-25"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Micros(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// Round trips
// ---------------------------------------------------------------------------

func TestUnitsRoundTrip(t *testing.T) {
	for _, units := range []int64{0, 1, 100, 5000, 10_000} {
		if got := FromUnits(units).Units(); got != units {
			t.Errorf("FromUnits(%d).Units() = %d", units, got)
		}
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	for _, s := range []string{"0.02", "0.5", "1000", "-25"} {
		m, err := ParseUnits(s)
		if err != nil {
			t.Fatalf("ParseUnits(%q): %v", s, err)
		}
		if got := m.String(); got != s {
			t.Errorf("ParseUnits(%q).String() = %q", s, got)
		}
	}
}
