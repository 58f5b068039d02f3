package models

import (
	"encoding/json"
	"time"
)

// Turn is one question/answer/grade cycle. A turn belongs to exactly one
// session and its index is unique within it. Once graded it carries the
// answer, the score and the boss feedback; an answered turn always has
// AnsweredAt and Score set.
type Turn struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	SessionID    uint       `gorm:"not null;uniqueIndex:idx_session_turn" json:"session_id"`
	TurnIndex    int        `gorm:"not null;uniqueIndex:idx_session_turn" json:"turn_index"`
	QuestionType string     `gorm:"size:50" json:"question_type,omitempty"`
	Prompt       string     `gorm:"type:text;not null" json:"prompt"`
	Answer       *string    `gorm:"type:text" json:"answer,omitempty"`
	AnsweredAt   *time.Time `json:"answered_at,omitempty"`
	Score        *int       `json:"score,omitempty"`
	Feedback     string     `gorm:"type:text" json:"feedback,omitempty"`
	RubricJSON   string     `gorm:"type:text" json:"-"`
}

func (t *Turn) Answered() bool {
	return t.Answer != nil
}

// RubricScores decodes the per-criterion grading breakdown, if the grader
// supplied one.
func (t *Turn) RubricScores() map[string]int {
	if t.RubricJSON == "" {
		return map[string]int{}
	}
	var scores map[string]int
	if err := json.Unmarshal([]byte(t.RubricJSON), &scores); err != nil {
		return map[string]int{}
	}
	return scores
}

func (t *Turn) SetRubricScores(scores map[string]int) error {
	if len(scores) == 0 {
		t.RubricJSON = ""
		return nil
	}
	data, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	t.RubricJSON = string(data)
	return nil
}
