package roles

import "testing"

func TestGet(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		found bool
	}{
		{"known role", "software_engineer", true},
		{"hard role", "product_manager", true},
		{"unknown role", "astronaut", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := Get(tt.id)
			if ok != tt.found {
				t.Fatalf("Get(%q) found = %v, want %v", tt.id, ok, tt.found)
			}
			if ok && role.ID != tt.id {
				t.Errorf("Get(%q) returned role %q", tt.id, role.ID)
			}
		})
	}
}

func TestListIsACopy(t *testing.T) {
	first := List()
	first[0].Name = "mutated"

	if List()[0].Name == "mutated" {
		t.Fatal("List exposes the registry backing array")
	}
}

func TestTurnBudget(t *testing.T) {
	if got := TurnBudget(DifficultyMedium); got != 3 {
		t.Errorf("TurnBudget(Medium) = %d, want 3", got)
	}
	if got := TurnBudget(DifficultyHard); got != 5 {
		t.Errorf("TurnBudget(Hard) = %d, want 5", got)
	}
	if got := TurnBudget("unknown"); got != 3 {
		t.Errorf("TurnBudget(unknown) = %d, want default 3", got)
	}
}
