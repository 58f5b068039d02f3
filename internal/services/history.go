package services

import (
	"github.com/jacfrist/hr-pg/internal/models"
	"github.com/jacfrist/hr-pg/internal/roles"

	"gorm.io/gorm"
)

// HistoryService is the read side of the battle record: completed and
// in-progress sessions for one owner, newest first, each with its turns in
// battle order. Writes happen only through BattleService; terminal sessions
// are never touched again.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

type HistoryEntry struct {
	models.Session
	RoleName string `json:"role_name"`
}

func (s *HistoryService) ListSessions(userID uint) ([]HistoryEntry, error) {
	var sessions []models.Session
	if err := s.db.Where("user_id = ?", userID).
		Preload("Turns", func(db *gorm.DB) *gorm.DB {
			return db.Order("turn_index ASC")
		}).
		Order("started_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, len(sessions))
	for i, sess := range sessions {
		entries[i] = HistoryEntry{Session: sess}
		if role, ok := roles.Get(sess.RoleID); ok {
			entries[i].RoleName = role.Name
		}
	}
	return entries, nil
}
