package services

import (
	"errors"
	"fmt"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/models"

	"gorm.io/gorm"
)

type FriendService struct{ db *gorm.DB }

func NewFriendService(db *gorm.DB) *FriendService { return &FriendService{db: db} }

// Follow is idempotent: following someone twice is a no-op.
func (s *FriendService) Follow(userID, friendID uint) error {
	if userID == friendID {
		return fmt.Errorf("%w: cannot follow yourself", ErrInvalidInput)
	}
	var friend models.User
	if err := s.db.First(&friend, friendID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	f := models.Friendship{UserID: userID, FriendID: friendID}
	return s.db.Where("user_id = ? AND friend_id = ?", userID, friendID).
		FirstOrCreate(&f).Error
}

func (s *FriendService) Unfollow(userID, friendID uint) error {
	res := s.db.Where("user_id = ? AND friend_id = ?", userID, friendID).
		Delete(&models.Friendship{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type FriendInfo struct {
	ID       uint   `json:"id"`
	PublicID string `json:"public_id"`
	FullName string `json:"full_name"`
	Streak   int    `json:"streak"`
}

func (s *FriendService) ListFriends(userID uint) ([]FriendInfo, error) {
	var friends []FriendInfo
	err := s.db.
		Table("friendships").
		Select("users.id, users.public_id, users.full_name, users.streak").
		Joins("JOIN users ON users.id = friendships.friend_id").
		Where("friendships.user_id = ? AND users.deleted_at IS NULL", userID).
		Order("friendships.created_at DESC").
		Scan(&friends).Error
	return friends, err
}
