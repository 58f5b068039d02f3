package services

import (
	"testing"

	"github.com/jacfrist/hr-pg/internal/models"
)

func TestHistoryRoundTrip(t *testing.T) {
	grader := &stubGrader{results: []GradeResult{
		{BossHealth: 70, PlayerHealth: 90, Score: 30, Feedback: "hit"},
		{BossHealth: 35, PlayerHealth: 85, Score: 35, Feedback: "hit"},
		{BossHealth: 0, PlayerHealth: 80, Score: 35, Feedback: "finisher"},
	}}
	svc, db := newTestBattle(t, grader)
	history := NewHistoryService(db)

	userID := uint(7)
	session, err := svc.Start("software_engineer", &userID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	for turn := 1; turn <= 3; turn++ {
		if _, err := svc.NextQuestion(session.ID); err != nil {
			t.Fatalf("NextQuestion(turn %d): %v", turn, err)
		}
		if _, err := svc.SubmitAnswer(session.ID, turn, "a thorough answer"); err != nil {
			t.Fatalf("SubmitAnswer(turn %d): %v", turn, err)
		}
	}

	entries, err := history.ListSessions(userID)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}

	got := entries[0]
	if got.Status != models.SessionStatusWon {
		t.Errorf("status = %q, want won", got.Status)
	}
	if got.EndedAt == nil {
		t.Error("ended_at missing from terminal session")
	}
	if got.RoleName != "Software Engineer" {
		t.Errorf("role name = %q", got.RoleName)
	}
	if len(got.Turns) != 3 {
		t.Fatalf("turns = %d, want 3 (one per successful submission)", len(got.Turns))
	}
	for i, turn := range got.Turns {
		if turn.TurnIndex != i+1 {
			t.Errorf("turn %d has index %d, want %d", i, turn.TurnIndex, i+1)
		}
		if turn.Answer == nil || turn.Score == nil || turn.AnsweredAt == nil {
			t.Errorf("turn %d missing answer, score or answered_at", turn.TurnIndex)
		}
		if turn.Feedback == "" {
			t.Errorf("turn %d missing feedback", turn.TurnIndex)
		}
	}
}

func TestHistoryOrderingAndIsolation(t *testing.T) {
	svc, db := newTestBattle(t, &stubGrader{})
	history := NewHistoryService(db)

	owner := uint(1)
	other := uint(2)

	first, err := svc.Start("software_engineer", &owner)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	second, err := svc.Start("data_scientist", &owner)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := svc.Start("product_manager", &other); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Make ordering deterministic regardless of clock resolution.
	db.Model(&models.Session{}).Where("id = ?", second.ID).
		Update("started_at", first.StartedAt.Add(1_000_000_000))

	entries, err := history.ListSessions(owner)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Errorf("order = [%d, %d], want most recent first [%d, %d]",
			entries[0].ID, entries[1].ID, second.ID, first.ID)
	}
}
