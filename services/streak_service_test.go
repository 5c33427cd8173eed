package services

import (
	"errors"
	"testing"
	"time"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type brokenMealStore struct {
	EventStore
}

func (brokenMealStore) MealLogTimes(uint) ([]time.Time, error) {
	return nil, errors.New("connection refused")
}

func newStreakService(db *gorm.DB, now time.Time) *StreakService {
	svc := NewStreakService(db, NewEventStore(db))
	svc.now = func() time.Time { return now }
	return svc
}

func TestComputeStreakEmpty(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db)

	svc := newStreakService(db, time.Now())
	streak, err := svc.ComputeStreak(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestComputeStreakConsecutiveDays(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db)
	today := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	// D-6 .. D, all logged
	for i := 0; i <= 6; i++ {
		logMealOn(t, db, u.ID, today.AddDate(0, 0, -i))
	}

	svc := newStreakService(db, today)
	streak, err := svc.ComputeStreak(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, streak)
}

func TestComputeStreakGraceRule(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db)
	today := time.Date(2025, 6, 15, 9, 0, 0, 0, time.Local)

	// logged yesterday and the two days before, nothing yet today
	for i := 1; i <= 3; i++ {
		logMealOn(t, db, u.ID, today.AddDate(0, 0, -i))
	}

	svc := newStreakService(db, today)
	streak, err := svc.ComputeStreak(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, streak, "streak stays alive until today fully elapses")
}

func TestComputeStreakNoTodayNoYesterday(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db)
	today := time.Date(2025, 6, 15, 9, 0, 0, 0, time.Local)

	logMealOn(t, db, u.ID, today.AddDate(0, 0, -2))
	logMealOn(t, db, u.ID, today.AddDate(0, 0, -3))

	svc := newStreakService(db, today)
	streak, err := svc.ComputeStreak(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestComputeStreakGapBreaksContinuity(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db)
	d := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	// meals on D-6..D give a 7-day streak on D
	for i := 0; i <= 6; i++ {
		logMealOn(t, db, u.ID, d.AddDate(0, 0, -i))
	}
	svc := newStreakService(db, d)
	streak, err := svc.ComputeStreak(u.ID)
	require.NoError(t, err)
	require.Equal(t, 7, streak)

	// nothing on D+1, a meal on D+2: recompute gives 1, not 8
	logMealOn(t, db, u.ID, d.AddDate(0, 0, 2))
	svc = newStreakService(db, d.AddDate(0, 0, 2))
	streak, err = svc.ComputeStreak(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestComputeStreakMultipleMealsOneDay(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db)
	today := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	logMealOn(t, db, u.ID, today.Add(-8*time.Hour))
	logMealOn(t, db, u.ID, today)
	logMealOn(t, db, u.ID, today.AddDate(0, 0, -1))

	svc := newStreakService(db, today)
	streak, err := svc.ComputeStreak(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, streak, "duplicate meals on a day count once")
}

func TestComputeStreakWritesThroughCache(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db)
	today := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	require.NoError(t, db.Model(u).Update("streak", 99).Error)
	logMealOn(t, db, u.ID, today)

	svc := newStreakService(db, today)
	_, err := svc.ComputeStreak(u.ID)
	require.NoError(t, err)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, u.ID).Error)
	assert.Equal(t, 1, reloaded.Streak, "full recompute overwrites stale cache")
}

func TestComputeStreakStoreFailureLeavesCacheUntouched(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db)
	require.NoError(t, db.Model(u).Update("streak", 5).Error)

	svc := NewStreakService(db, brokenMealStore{})
	_, err := svc.ComputeStreak(u.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataUnavailable)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, u.ID).Error)
	assert.Equal(t, 5, reloaded.Streak, "failed read must not cache a wrong value")
}
