package models

import "time"

type Session struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       *uint      `gorm:"index" json:"user_id,omitempty"`
	RoleID       string     `gorm:"size:50;not null;index" json:"role_id"`
	Difficulty   string     `gorm:"size:20;not null" json:"difficulty"`
	Status       string     `gorm:"size:20;not null;default:'active';index" json:"status"`
	BossHealth   int        `gorm:"not null;default:100" json:"boss_health"`
	PlayerHealth int        `gorm:"not null;default:100" json:"player_health"`
	CurrentTurn  int        `gorm:"not null;default:0" json:"current_turn"`
	TotalTurns   int        `gorm:"not null" json:"total_turns"`
	Turns        []Turn     `gorm:"foreignKey:SessionID" json:"turns,omitempty"`
	StartedAt    time.Time  `gorm:"index" json:"started_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
}

const (
	SessionStatusActive = "active"
	SessionStatusWon    = "won"
	SessionStatusLost   = "lost"
)

// Terminal reports whether the session has reached a final verdict.
// A terminal session is never mutated again.
func (s *Session) Terminal() bool {
	return s.Status == SessionStatusWon || s.Status == SessionStatusLost
}
