package models

import "time"

// Achievement records a one-time unlock. The (user_id, type) unique index is
// what keeps concurrent evaluations from double-unlocking; a rejected
// duplicate insert is a benign race, not an error. Rows are never updated or
// deleted, so no soft-delete column.
type Achievement struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"uniqueIndex:idx_user_achievement_type;not null"`
	Type       string    `gorm:"size:32;uniqueIndex:idx_user_achievement_type;not null"`
	UnlockedAt time.Time `gorm:"not null"`
}
