package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jacfrist/hr-pg/internal/models"
	"github.com/jacfrist/hr-pg/internal/roles"

	"gorm.io/gorm"
)

// BattleService is the authoritative session state machine. Every mutation
// goes through a conditional update keyed on the session's current turn and
// status, so a stale write (two submissions racing on the same session) is
// rejected with ErrConcurrentModification instead of corrupting the battle.
type BattleService struct {
	db        *gorm.DB
	questions QuestionSource
	grader    Grader
}

func NewBattleService(db *gorm.DB, questions QuestionSource, grader Grader) *BattleService {
	return &BattleService{db: db, questions: questions, grader: grader}
}

// Start creates a fresh session for the role: full health on both sides,
// no turns answered, budget fixed by difficulty.
func (s *BattleService) Start(roleID string, userID *uint) (*models.Session, error) {
	role, ok := roles.Get(roleID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, roleID)
	}

	session := models.Session{
		UserID:       userID,
		RoleID:       role.ID,
		Difficulty:   role.Difficulty,
		Status:       models.SessionStatusActive,
		BossHealth:   MaxHealth,
		PlayerHealth: MaxHealth,
		CurrentTurn:  0,
		TotalTurns:   roles.TurnBudget(role.Difficulty),
		StartedAt:    time.Now(),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

type TurnPrompt struct {
	TurnIndex    int    `json:"turn_index"`
	TotalTurns   int    `json:"total_turns"`
	Prompt       string `json:"prompt"`
	QuestionType string `json:"question_type,omitempty"`
}

// NextQuestion issues the question for the session's next unanswered turn.
// Calling it again before answering returns the same prompt, so a caller
// that lost the response can safely retry.
func (s *BattleService) NextQuestion(sessionID uint) (*TurnPrompt, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Terminal() {
		return nil, ErrSessionNotActive
	}
	if session.CurrentTurn >= session.TotalTurns {
		return nil, fmt.Errorf("%w: question budget exhausted", ErrInvalidTurn)
	}

	nextIndex := session.CurrentTurn + 1

	var existing models.Turn
	if err := s.db.Where("session_id = ? AND turn_index = ?", sessionID, nextIndex).
		First(&existing).Error; err == nil {
		return &TurnPrompt{
			TurnIndex:    existing.TurnIndex,
			TotalTurns:   session.TotalTurns,
			Prompt:       existing.Prompt,
			QuestionType: existing.QuestionType,
		}, nil
	}

	role, _ := roles.Get(session.RoleID)
	q, err := s.questions.Question(role, nextIndex)
	if err != nil {
		return nil, err
	}

	turn := models.Turn{
		SessionID:    sessionID,
		TurnIndex:    nextIndex,
		QuestionType: q.QuestionType,
		Prompt:       q.Prompt,
	}
	if err := s.db.Create(&turn).Error; err != nil {
		return nil, err
	}

	return &TurnPrompt{
		TurnIndex:    turn.TurnIndex,
		TotalTurns:   session.TotalTurns,
		Prompt:       turn.Prompt,
		QuestionType: turn.QuestionType,
	}, nil
}

type TurnResult struct {
	TurnIndex    int            `json:"turn_index"`
	TotalTurns   int            `json:"total_turns"`
	BossHealth   int            `json:"boss_health"`
	PlayerHealth int            `json:"player_health"`
	Score        int            `json:"score"`
	Feedback     string         `json:"feedback"`
	Rubric       map[string]int `json:"rubric,omitempty"`
	Status       string         `json:"status"`
	EndedAt      *time.Time     `json:"ended_at,omitempty"`
}

// SubmitAnswer grades the answer for an issued turn and applies the outcome:
// clamp the grader's health proposals, record the graded turn, advance the
// turn counter and evaluate termination. The grader call happens before any
// write, so any failure leaves the session exactly as it was.
func (s *BattleService) SubmitAnswer(sessionID uint, turnIndex int, answerText string) (*TurnResult, error) {
	answerText = strings.TrimSpace(answerText)
	if answerText == "" {
		return nil, ErrEmptyAnswer
	}

	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Terminal() {
		return nil, ErrSessionNotActive
	}

	var turn models.Turn
	if err := s.db.Where("session_id = ? AND turn_index = ?", sessionID, turnIndex).
		First(&turn).Error; err != nil {
		return nil, fmt.Errorf("%w: turn %d not issued", ErrInvalidTurn, turnIndex)
	}
	if turn.Answered() {
		return nil, fmt.Errorf("%w: turn %d already answered", ErrInvalidTurn, turnIndex)
	}
	if turnIndex != session.CurrentTurn+1 {
		return nil, fmt.Errorf("%w: turn %d is not the current turn", ErrInvalidTurn, turnIndex)
	}

	role, _ := roles.Get(session.RoleID)
	graded, err := s.grader.Grade(GradeRequest{
		RequestID:    NewGradeRequestID(),
		Role:         role,
		Prompt:       turn.Prompt,
		Answer:       answerText,
		BossHealth:   session.BossHealth,
		PlayerHealth: session.PlayerHealth,
	})
	if err != nil {
		if errors.Is(err, ErrGradingService) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrGradingService, err)
	}

	bossHealth := clampHealth(graded.BossHealth)
	playerHealth := clampHealth(graded.PlayerHealth)
	verdict := resolveOutcome(turnIndex, session.TotalTurns, bossHealth, playerHealth)

	now := time.Now()
	sessionUpdates := map[string]interface{}{
		"current_turn":  turnIndex,
		"boss_health":   bossHealth,
		"player_health": playerHealth,
	}
	var endedAt *time.Time
	status := models.SessionStatusActive
	switch verdict {
	case VerdictWon:
		status = models.SessionStatusWon
	case VerdictLost:
		status = models.SessionStatusLost
	}
	if verdict != VerdictContinue {
		endedAt = &now
		sessionUpdates["status"] = status
		sessionUpdates["ended_at"] = now
	}

	rubricJSON := ""
	if len(graded.Rubric) > 0 {
		var t models.Turn
		if err := t.SetRubricScores(graded.Rubric); err == nil {
			rubricJSON = t.RubricJSON
		}
	}

	tx := s.db.Begin()

	// CAS on (status, current_turn): a concurrent submission for the same
	// turn already advanced the counter and must not be applied twice.
	res := tx.Model(&models.Session{}).
		Where("id = ? AND status = ? AND current_turn = ?",
			sessionID, models.SessionStatusActive, turnIndex-1).
		Updates(sessionUpdates)
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrConcurrentModification
	}

	res = tx.Model(&models.Turn{}).
		Where("id = ? AND answer IS NULL", turn.ID).
		Updates(map[string]interface{}{
			"answer":      answerText,
			"answered_at": now,
			"score":       graded.Score,
			"feedback":    graded.Feedback,
			"rubric_json": rubricJSON,
		})
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrConcurrentModification
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &TurnResult{
		TurnIndex:    turnIndex,
		TotalTurns:   session.TotalTurns,
		BossHealth:   bossHealth,
		PlayerHealth: playerHealth,
		Score:        graded.Score,
		Feedback:     graded.Feedback,
		Rubric:       graded.Rubric,
		Status:       status,
		EndedAt:      endedAt,
	}, nil
}

// GetSession returns the session with its turns in battle order.
func (s *BattleService) GetSession(sessionID uint) (*models.Session, error) {
	var session models.Session
	if err := s.db.Preload("Turns", func(db *gorm.DB) *gorm.DB {
		return db.Order("turn_index ASC")
	}).First(&session, sessionID).Error; err != nil {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *BattleService) loadSession(sessionID uint) (*models.Session, error) {
	var session models.Session
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}
