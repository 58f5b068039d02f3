// Package roles holds the interview tracks a player can battle against.
// The registry is static reference data: read-only, no side effects.
package roles

type Role struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
}

const (
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

var registry = []Role{
	{ID: "software_engineer", Name: "Software Engineer", Difficulty: DifficultyMedium},
	{ID: "product_manager", Name: "Product Manager", Difficulty: DifficultyHard},
	{ID: "data_scientist", Name: "Data Scientist", Difficulty: DifficultyMedium},
}

// List returns all registered roles in display order.
func List() []Role {
	out := make([]Role, len(registry))
	copy(out, registry)
	return out
}

// Get looks up a role by id. The second return is false for unknown ids.
func Get(id string) (Role, bool) {
	for _, r := range registry {
		if r.ID == id {
			return r, true
		}
	}
	return Role{}, false
}

// TurnBudget is the number of questions a battle runs for at the given
// difficulty. The budget is fixed when the session starts.
func TurnBudget(difficulty string) int {
	switch difficulty {
	case DifficultyHard:
		return 5
	default:
		return 3
	}
}
