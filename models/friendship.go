package models

import "time"

// Friendship is directional: UserID follows FriendID.
type Friendship struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	FriendID  uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
}
