package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jacfrist/hr-pg/internal/roles"
)

// Grader is the external collaborator that turns an answer into a battle
// outcome. Returned health values are proposals only; the session state
// machine clamps them before anything is stored.
type Grader interface {
	Grade(req GradeRequest) (*GradeResult, error)
}

type GradeRequest struct {
	RequestID    string
	Role         roles.Role
	Prompt       string
	Answer       string
	BossHealth   int
	PlayerHealth int
}

type GradeResult struct {
	BossHealth   int
	PlayerHealth int
	Score        int
	Feedback     string
	Rubric       map[string]int
}

// AIGrader grades answers with an LLM when one is configured, and with the
// word-count heuristic otherwise. An LLM failure is surfaced as
// ErrGradingService, never papered over with the heuristic.
type AIGrader struct {
	llm *LLMClient
}

func NewAIGrader(llm *LLMClient) *AIGrader {
	return &AIGrader{llm: llm}
}

const gradeSystemPrompt = `You are grading one answer in a mock-interview boss battle. The user message contains the role, the question, the candidate's answer and the current health of both sides (0-100). Respond with ONLY valid JSON (no markdown, no code fences, no explanations) in this format:

{
  "boss_health": 70,
  "player_health": 100,
  "score": 25,
  "feedback": "One or two sentences of interview feedback, phrased as the boss reacting.",
  "rubric": {"structure": 7, "specificity": 6, "impact": 8}
}

Rules:
- A strong answer lowers boss_health; a weak answer lowers player_health
- Never raise either health above its current value
- score is 0-35, the damage dealt to the boss
- rubric values are 0-10
- Return ONLY the JSON object, nothing else`

func (g *AIGrader) Grade(req GradeRequest) (*GradeResult, error) {
	if g.llm == nil || !g.llm.IsAvailable() {
		return heuristicGrade(req), nil
	}

	userPrompt := fmt.Sprintf(
		"request_id: %s\nrole: %s\nquestion: %s\nboss_health: %d\nplayer_health: %d\nanswer: %s",
		req.RequestID, req.Role.Name, req.Prompt, req.BossHealth, req.PlayerHealth, req.Answer,
	)

	content, err := g.llm.Complete(gradeSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGradingService, err)
	}

	var parsed struct {
		BossHealth   *int           `json:"boss_health"`
		PlayerHealth *int           `json:"player_health"`
		Score        int            `json:"score"`
		Feedback     string         `json:"feedback"`
		Rubric       map[string]int `json:"rubric"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON from grader: %v", ErrGradingService, err)
	}
	if parsed.BossHealth == nil || parsed.PlayerHealth == nil {
		return nil, fmt.Errorf("%w: grader response missing health fields", ErrGradingService)
	}

	return &GradeResult{
		BossHealth:   *parsed.BossHealth,
		PlayerHealth: *parsed.PlayerHealth,
		Score:        parsed.Score,
		Feedback:     parsed.Feedback,
		Rubric:       parsed.Rubric,
	}, nil
}

// heuristicGrade is the reference scoring used when no LLM is configured:
// damage scales with answer length, and a weak answer lets the boss counter.
func heuristicGrade(req GradeRequest) *GradeResult {
	words := len(strings.Fields(req.Answer))

	damage := 5
	feedback := "Weak answer. The boss counters!"
	playerHealth := req.PlayerHealth

	switch {
	case words > 50:
		damage = 35
		feedback = "Excellent answer! Critical hit!"
	case words > 30:
		damage = 25
		feedback = "Good answer! Solid damage."
	case words > 15:
		damage = 15
		feedback = "Decent answer, but could be stronger."
	default:
		playerHealth -= 20
	}

	return &GradeResult{
		BossHealth:   req.BossHealth - damage,
		PlayerHealth: playerHealth,
		Score:        damage,
		Feedback:     feedback,
	}
}

// NewGradeRequestID returns a correlation id for one grading call.
func NewGradeRequestID() string {
	return uuid.New().String()
}
