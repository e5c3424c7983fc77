package storage

import "testing"

func TestKeyPaths(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{"score", ScoreKey("GBORROWER"), "score:GBORROWER"},
		{"loan", LoanKey(42), "loan:42"},
		{"first loan", LoanKey(1), "loan:1"},
		{"counter", CounterKey(), "loan_counter"},
		{"admin", AdminKey(), "admin_identity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.Path(); got != tt.want {
				t.Errorf("Path() = %q, want %q", got, tt.want)
			}
			if got := tt.key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyClasses(t *testing.T) {
	if got := ScoreKey("GX").Class(); got != ClassScore {
		t.Errorf("ScoreKey class = %v, want ClassScore", got)
	}
	for _, k := range []Key{LoanKey(1), CounterKey(), AdminKey()} {
		if got := k.Class(); got != ClassPersistent {
			t.Errorf("%s class = %v, want ClassPersistent", k, got)
		}
	}
}

func TestKeysAreComparable(t *testing.T) {
	if ScoreKey("GA") != ScoreKey("GA") {
		t.Error("equal score keys compare unequal")
	}
	if ScoreKey("GA") == ScoreKey("GB") {
		t.Error("distinct score keys compare equal")
	}
	if LoanKey(1) == LoanKey(2) {
		t.Error("distinct loan keys compare equal")
	}
	if CounterKey() != CounterKey() {
		t.Error("counter keys compare unequal")
	}
}
