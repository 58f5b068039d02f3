package services

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jacfrist/hr-pg/internal/roles"
)

func testGradeRequest(answer string) GradeRequest {
	role, _ := roles.Get("software_engineer")
	return GradeRequest{
		RequestID:    NewGradeRequestID(),
		Role:         role,
		Prompt:       "Tell me about a time you debugged a complex issue.",
		Answer:       answer,
		BossHealth:   100,
		PlayerHealth: 100,
	}
}

func wordsOf(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestHeuristicGrade(t *testing.T) {
	tests := []struct {
		name           string
		words          int
		expectBoss     int
		expectPlayer   int
		expectScore    int
	}{
		{"long answer critical hit", 51, 65, 100, 35},
		{"good answer", 31, 75, 100, 25},
		{"decent answer", 16, 85, 100, 15},
		{"weak answer draws a counter", 10, 95, 80, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := heuristicGrade(testGradeRequest(wordsOf(tt.words)))

			if got.BossHealth != tt.expectBoss {
				t.Errorf("boss health = %d, want %d", got.BossHealth, tt.expectBoss)
			}
			if got.PlayerHealth != tt.expectPlayer {
				t.Errorf("player health = %d, want %d", got.PlayerHealth, tt.expectPlayer)
			}
			if got.Score != tt.expectScore {
				t.Errorf("score = %d, want %d", got.Score, tt.expectScore)
			}
			if got.Feedback == "" {
				t.Error("feedback missing")
			}
		})
	}
}

func TestAIGraderWithoutLLMUsesHeuristic(t *testing.T) {
	grader := NewAIGrader(NewLLMClient("", "", ""))

	got, err := grader.Grade(testGradeRequest(wordsOf(40)))
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if got.Score != 25 {
		t.Errorf("score = %d, want heuristic score 25", got.Score)
	}
}

func chatCompletion(content string) string {
	return fmt.Sprintf(`{"choices":[{"message":{"content":%q}}]}`, content)
}

func TestAIGraderParsesLLMResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("authorization header = %q", auth)
		}
		fmt.Fprint(w, chatCompletion("```json\n{\"boss_health\":62,\"player_health\":97,\"score\":28,\"feedback\":\"Sharp answer.\",\"rubric\":{\"structure\":8}}\n```"))
	}))
	defer srv.Close()

	grader := NewAIGrader(NewLLMClient("test-key", srv.URL, "test-model"))

	got, err := grader.Grade(testGradeRequest("a detailed answer"))
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if got.BossHealth != 62 || got.PlayerHealth != 97 {
		t.Errorf("health = (%d,%d), want (62,97)", got.BossHealth, got.PlayerHealth)
	}
	if got.Score != 28 || got.Feedback != "Sharp answer." {
		t.Errorf("score/feedback = (%d, %q)", got.Score, got.Feedback)
	}
	if got.Rubric["structure"] != 8 {
		t.Errorf("rubric = %v", got.Rubric)
	}
}

func TestAIGraderFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "upstream error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "rate limited", http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed grade JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, chatCompletion("I think the answer deserves a 7/10"))
			},
		},
		{
			name: "missing health fields",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, chatCompletion(`{"score":10,"feedback":"ok"}`))
			},
		},
		{
			name: "empty choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"choices":[]}`)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			grader := NewAIGrader(NewLLMClient("test-key", srv.URL, "test-model"))

			if _, err := grader.Grade(testGradeRequest("an answer")); !errors.Is(err, ErrGradingService) {
				t.Fatalf("Grade error = %v, want ErrGradingService", err)
			}
		})
	}
}
