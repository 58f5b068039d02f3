package services

import (
	"encoding/json"
	"fmt"

	"github.com/jacfrist/hr-pg/internal/roles"
)

// QuestionSource hands out the prompt for a given role and 1-based turn
// index. Failures leave the session untouched so the caller can retry the
// same turn.
type QuestionSource interface {
	Question(role roles.Role, turnIndex int) (QuestionPrompt, error)
}

type QuestionPrompt struct {
	Prompt       string `json:"prompt"`
	QuestionType string `json:"question_type,omitempty"`
}

var questionBank = map[string][]QuestionPrompt{
	"software_engineer": {
		{Prompt: "Tell me about a time you debugged a complex issue.", QuestionType: "behavioral"},
		{Prompt: "Describe your experience with data structures and algorithms.", QuestionType: "technical"},
		{Prompt: "How do you handle code reviews and feedback?", QuestionType: "behavioral"},
		{Prompt: "Walk me through how you would design a rate limiter.", QuestionType: "technical"},
		{Prompt: "Tell me about a project you shipped under a tight deadline.", QuestionType: "behavioral"},
	},
	"product_manager": {
		{Prompt: "Tell me about a time you had to prioritize features.", QuestionType: "behavioral"},
		{Prompt: "Describe your experience working with engineering teams.", QuestionType: "behavioral"},
		{Prompt: "How do you gather and incorporate user feedback?", QuestionType: "behavioral"},
		{Prompt: "How would you decide whether to sunset an underperforming product?", QuestionType: "technical"},
		{Prompt: "Tell me about a launch that did not go as planned.", QuestionType: "behavioral"},
	},
	"data_scientist": {
		{Prompt: "Tell me about a time you worked with a large dataset.", QuestionType: "behavioral"},
		{Prompt: "Describe your experience with machine learning models.", QuestionType: "technical"},
		{Prompt: "How do you communicate technical findings to non-technical stakeholders?", QuestionType: "behavioral"},
		{Prompt: "How do you validate that a model is not overfitting?", QuestionType: "technical"},
		{Prompt: "Tell me about an analysis that changed a business decision.", QuestionType: "behavioral"},
	},
}

// QuestionService serves prompts from the built-in per-role bank, or
// generates them with the LLM when one is configured.
type QuestionService struct {
	llm *LLMClient
}

func NewQuestionService(llm *LLMClient) *QuestionService {
	return &QuestionService{llm: llm}
}

const questionSystemPrompt = `You write one open-ended mock-interview question. The user message names the role and the question number. Respond with ONLY valid JSON (no markdown, no code fences, no explanations):

{"prompt": "The question text?", "question_type": "behavioral"}

Rules:
- question_type is "behavioral" or "technical"
- The question must suit the role and be answerable in a few paragraphs
- Return ONLY the JSON object, nothing else`

func (s *QuestionService) Question(role roles.Role, turnIndex int) (QuestionPrompt, error) {
	if s.llm != nil && s.llm.IsAvailable() {
		return s.generate(role, turnIndex)
	}

	bank, ok := questionBank[role.ID]
	if !ok {
		return QuestionPrompt{}, fmt.Errorf("%w: no questions for role %q", ErrQuestionSource, role.ID)
	}
	if turnIndex < 1 || turnIndex > len(bank) {
		return QuestionPrompt{}, fmt.Errorf("%w: no question %d for role %q", ErrQuestionSource, turnIndex, role.ID)
	}
	return bank[turnIndex-1], nil
}

func (s *QuestionService) generate(role roles.Role, turnIndex int) (QuestionPrompt, error) {
	userPrompt := fmt.Sprintf("role: %s\ndifficulty: %s\nquestion_number: %d", role.Name, role.Difficulty, turnIndex)

	content, err := s.llm.Complete(questionSystemPrompt, userPrompt)
	if err != nil {
		return QuestionPrompt{}, fmt.Errorf("%w: %v", ErrQuestionSource, err)
	}

	var q QuestionPrompt
	if err := json.Unmarshal([]byte(content), &q); err != nil {
		return QuestionPrompt{}, fmt.Errorf("%w: invalid JSON from generator: %v", ErrQuestionSource, err)
	}
	if q.Prompt == "" {
		return QuestionPrompt{}, fmt.Errorf("%w: generator returned an empty prompt", ErrQuestionSource)
	}
	return q, nil
}
