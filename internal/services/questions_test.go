package services

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jacfrist/hr-pg/internal/roles"
)

func TestQuestionBankCoversEveryRoleBudget(t *testing.T) {
	svc := NewQuestionService(nil)

	for _, role := range roles.List() {
		budget := roles.TurnBudget(role.Difficulty)
		for turn := 1; turn <= budget; turn++ {
			q, err := svc.Question(role, turn)
			if err != nil {
				t.Fatalf("Question(%s, %d): %v", role.ID, turn, err)
			}
			if q.Prompt == "" {
				t.Errorf("Question(%s, %d) returned an empty prompt", role.ID, turn)
			}
		}
	}
}

func TestQuestionOutOfRange(t *testing.T) {
	svc := NewQuestionService(nil)
	role, _ := roles.Get("software_engineer")

	tests := []struct {
		name string
		turn int
	}{
		{"zero index", 0},
		{"beyond bank", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Question(role, tt.turn); !errors.Is(err, ErrQuestionSource) {
				t.Fatalf("Question(%d) error = %v, want ErrQuestionSource", tt.turn, err)
			}
		})
	}
}

func TestGeneratedQuestion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatCompletion(`{"prompt":"How would you scale a websocket fleet?","question_type":"technical"}`))
	}))
	defer srv.Close()

	svc := NewQuestionService(NewLLMClient("test-key", srv.URL, "test-model"))
	role, _ := roles.Get("software_engineer")

	q, err := svc.Question(role, 1)
	if err != nil {
		t.Fatalf("Question: %v", err)
	}
	if q.Prompt != "How would you scale a websocket fleet?" || q.QuestionType != "technical" {
		t.Errorf("unexpected question: %+v", q)
	}
}

func TestGeneratorFailureSurfacesQuestionSourceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewQuestionService(NewLLMClient("test-key", srv.URL, "test-model"))
	role, _ := roles.Get("software_engineer")

	if _, err := svc.Question(role, 1); !errors.Is(err, ErrQuestionSource) {
		t.Fatalf("Question error = %v, want ErrQuestionSource", err)
	}
}
