package services

import "testing"

func TestClampHealth(t *testing.T) {
	tests := []struct {
		name     string
		in       int
		expected int
	}{
		{name: "negative", in: -50, expected: 0},
		{name: "zero", in: 0, expected: 0},
		{name: "in range", in: 55, expected: 55},
		{name: "max", in: 100, expected: 100},
		{name: "over max", in: 150, expected: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampHealth(tt.in); got != tt.expected {
				t.Fatalf("clampHealth(%d) = %d, want %d", tt.in, got, tt.expected)
			}
		})
	}
}

func TestResolveOutcome(t *testing.T) {
	tests := []struct {
		name                     string
		answered, total          int
		bossHealth, playerHealth int
		expected                 Verdict
	}{
		{"boss down wins", 1, 3, 0, 80, VerdictWon},
		{"both down favors player", 2, 3, 0, 0, VerdictWon},
		{"player down loses", 1, 3, 40, 0, VerdictLost},
		{"turns remain", 1, 3, 70, 90, VerdictContinue},
		{"last turn both standing boss weaker", 3, 3, 40, 60, VerdictWon},
		{"last turn equal health goes to boss", 3, 3, 60, 60, VerdictLost},
		{"last turn player weaker", 3, 3, 60, 40, VerdictLost},
		{"knockout beats tie-break on final turn", 3, 3, 0, 55, VerdictWon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveOutcome(tt.answered, tt.total, tt.bossHealth, tt.playerHealth)
			if got != tt.expected {
				t.Fatalf("resolveOutcome(%d, %d, %d, %d) = %q, want %q",
					tt.answered, tt.total, tt.bossHealth, tt.playerHealth, got, tt.expected)
			}
		})
	}
}
