package services

import (
	"fmt"
	"time"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/models"

	"gorm.io/gorm"
)

type StreakService struct {
	db    *gorm.DB
	store EventStore
	now   func() time.Time
}

func NewStreakService(db *gorm.DB, store EventStore) *StreakService {
	return &StreakService{db: db, store: store, now: time.Now}
}

// ComputeStreak walks backward from today over the distinct local dates that
// have at least one meal log. A user who has not logged today yet keeps the
// streak alive through yesterday; a missing yesterday on top of a missing
// today means the streak is 0. The result is a full recompute written through
// to users.streak, so it self-heals after deletions or missed days.
func (s *StreakService) ComputeStreak(userID uint) (int, error) {
	stamps, err := s.store.MealLogTimes(userID)
	if err != nil {
		// leave the previously cached value untouched
		return 0, fmt.Errorf("%w: meal log dates: %v", ErrDataUnavailable, err)
	}

	days := make(map[time.Time]struct{}, len(stamps))
	for _, t := range stamps {
		days[dayStartLocal(t)] = struct{}{}
	}

	streak := 0
	if len(days) > 0 {
		cursor := dayStartLocal(s.now())
		if _, ok := days[cursor]; !ok {
			// grace: nothing logged today yet, resume from yesterday
			cursor = cursor.AddDate(0, 0, -1)
		}
		for {
			if _, ok := days[cursor]; !ok {
				break
			}
			streak++
			cursor = cursor.AddDate(0, 0, -1)
		}
	}

	if err := s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("streak", streak).Error; err != nil {
		return 0, err
	}
	return streak, nil
}
