package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/config"
	"github.com/nevzaterdem/SmartCalorieApp-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AchievementDefinition is a static catalog entry; the catalog is process-wide
// and read-only, not user data.
type AchievementDefinition struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// aggregates carries the per-invocation inputs to the rule table. Each field
// has a matching "have" flag so a failed fetch only disables the rules that
// actually need it.
type aggregates struct {
	mealCount   int64
	waterCount  int64
	planCount   int64
	friendCount int64
	streak      int
	waterToday  float64
	waterGoal   float64

	haveMeals      bool
	haveWater      bool
	havePlans      bool
	haveFriends    bool
	haveStreak     bool
	haveWaterToday bool
}

type achievementRule struct {
	def AchievementDefinition
	met func(ag aggregates) bool
}

// Rules are independent and order-insensitive: adding one is additive, no
// rule reads another's result.
var achievementRules = []achievementRule{
	{
		def: AchievementDefinition{Type: "first_meal", Name: "First Bite", Icon: "🍽️", Description: "Log your first meal", Category: "meals"},
		met: func(ag aggregates) bool { return ag.haveMeals && ag.mealCount >= 1 },
	},
	{
		def: AchievementDefinition{Type: "meals_10", Name: "Consistent Eater", Icon: "🥗", Description: "Log 10 meals", Category: "meals"},
		met: func(ag aggregates) bool { return ag.haveMeals && ag.mealCount >= 10 },
	},
	{
		def: AchievementDefinition{Type: "meals_50", Name: "Meal Master", Icon: "🍱", Description: "Log 50 meals", Category: "meals"},
		met: func(ag aggregates) bool { return ag.haveMeals && ag.mealCount >= 50 },
	},
	{
		def: AchievementDefinition{Type: "meals_100", Name: "Century Club", Icon: "💯", Description: "Log 100 meals", Category: "meals"},
		met: func(ag aggregates) bool { return ag.haveMeals && ag.mealCount >= 100 },
	},
	{
		def: AchievementDefinition{Type: "first_water", Name: "First Sip", Icon: "💧", Description: "Log your first glass of water", Category: "hydration"},
		met: func(ag aggregates) bool { return ag.haveWater && ag.waterCount >= 1 },
	},
	{
		def: AchievementDefinition{Type: "water_goal_1", Name: "Hydration Hero", Icon: "🌊", Description: "Reach your daily water goal", Category: "hydration"},
		met: func(ag aggregates) bool {
			return ag.haveWaterToday && ag.waterGoal > 0 && ag.waterToday >= ag.waterGoal
		},
	},
	{
		def: AchievementDefinition{Type: "first_diet", Name: "Plan Maker", Icon: "📋", Description: "Create your first diet plan", Category: "diet"},
		met: func(ag aggregates) bool { return ag.havePlans && ag.planCount >= 1 },
	},
	{
		def: AchievementDefinition{Type: "first_friend", Name: "Making Friends", Icon: "🤝", Description: "Follow your first friend", Category: "social"},
		met: func(ag aggregates) bool { return ag.haveFriends && ag.friendCount >= 1 },
	},
	{
		def: AchievementDefinition{Type: "friends_5", Name: "Squad Goals", Icon: "👥", Description: "Follow 5 friends", Category: "social"},
		met: func(ag aggregates) bool { return ag.haveFriends && ag.friendCount >= 5 },
	},
	{
		def: AchievementDefinition{Type: "streak_3", Name: "On a Roll", Icon: "🔥", Description: "Keep a 3-day logging streak", Category: "streak"},
		met: func(ag aggregates) bool { return ag.haveStreak && ag.streak >= 3 },
	},
	{
		def: AchievementDefinition{Type: "streak_7", Name: "Week Warrior", Icon: "⚡", Description: "Keep a 7-day logging streak", Category: "streak"},
		met: func(ag aggregates) bool { return ag.haveStreak && ag.streak >= 7 },
	},
	{
		def: AchievementDefinition{Type: "streak_14", Name: "Fortnight Fighter", Icon: "🏆", Description: "Keep a 14-day logging streak", Category: "streak"},
		met: func(ag aggregates) bool { return ag.haveStreak && ag.streak >= 14 },
	},
	{
		def: AchievementDefinition{Type: "streak_30", Name: "Monthly Master", Icon: "👑", Description: "Keep a 30-day logging streak", Category: "streak"},
		met: func(ag aggregates) bool { return ag.haveStreak && ag.streak >= 30 },
	},
}

type AchievementService struct {
	db    *gorm.DB
	store EventStore
	now   func() time.Time
}

func NewAchievementService(db *gorm.DB, store EventStore) *AchievementService {
	return &AchievementService{db: db, store: store, now: time.Now}
}

// EvaluateAchievements checks every rule against the current aggregates and
// persists each newly-qualifying achievement exactly once. Safe to call after
// every log event: already-unlocked types are skipped, and a duplicate insert
// lost to a concurrent evaluation is dropped from the result, not surfaced.
func (s *AchievementService) EvaluateAchievements(userID uint) ([]AchievementDefinition, error) {
	var unlockedTypes []string
	if err := s.db.Model(&models.Achievement{}).
		Where("user_id = ?", userID).
		Pluck("type", &unlockedTypes).Error; err != nil {
		return nil, err
	}
	unlocked := make(map[string]bool, len(unlockedTypes))
	for _, t := range unlockedTypes {
		unlocked[t] = true
	}

	ag := s.gatherAggregates(userID)

	var newly []AchievementDefinition
	for _, rule := range achievementRules {
		if unlocked[rule.def.Type] || !rule.met(ag) {
			continue
		}
		row := models.Achievement{UserID: userID, Type: rule.def.Type, UnlockedAt: s.now()}
		if err := s.db.Create(&row).Error; err != nil {
			if isDuplicateKey(err) {
				continue // another evaluation got there first
			}
			config.Log.Warn("achievement insert failed",
				zap.Uint("user_id", userID), zap.String("type", rule.def.Type), zap.Error(err))
			continue
		}
		newly = append(newly, rule.def)
	}
	return newly, nil
}

// gatherAggregates fetches each input independently; a failed fetch disables
// only the rules that read it, so partial evaluation still unlocks what it
// can determine.
func (s *AchievementService) gatherAggregates(userID uint) aggregates {
	var ag aggregates
	var err error

	if ag.mealCount, err = s.store.MealLogCount(userID); err != nil {
		config.Log.Warn("meal count unavailable", zap.Uint("user_id", userID), zap.Error(err))
	} else {
		ag.haveMeals = true
	}
	if ag.waterCount, err = s.store.WaterLogCount(userID); err != nil {
		config.Log.Warn("water count unavailable", zap.Uint("user_id", userID), zap.Error(err))
	} else {
		ag.haveWater = true
	}
	if ag.planCount, err = s.store.DietPlanCount(userID); err != nil {
		config.Log.Warn("diet plan count unavailable", zap.Uint("user_id", userID), zap.Error(err))
	} else {
		ag.havePlans = true
	}
	if ag.friendCount, err = s.store.FriendCount(userID); err != nil {
		config.Log.Warn("friend count unavailable", zap.Uint("user_id", userID), zap.Error(err))
	} else {
		ag.haveFriends = true
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		config.Log.Warn("user row unavailable", zap.Uint("user_id", userID), zap.Error(err))
	} else {
		ag.streak = user.Streak
		ag.waterGoal = user.WaterGoal
		ag.haveStreak = true

		if ag.waterToday, err = s.store.WaterTotalOn(userID, s.now()); err != nil {
			config.Log.Warn("water total unavailable", zap.Uint("user_id", userID), zap.Error(err))
		} else {
			ag.haveWaterToday = true
		}
	}
	return ag
}

type AchievementStatus struct {
	AchievementDefinition
	Earned     bool       `json:"earned"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

type AchievementStats struct {
	Earned     int `json:"earned"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type AchievementsView struct {
	Categories map[string][]AchievementStatus `json:"categories"`
	Stats      AchievementStats               `json:"stats"`
}

// GetAchievementsView returns the full catalog with earned flags, grouped by
// category, plus summary stats.
func (s *AchievementService) GetAchievementsView(userID uint) (*AchievementsView, error) {
	var rows []models.Achievement
	if err := s.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	unlockedAt := make(map[string]time.Time, len(rows))
	for _, r := range rows {
		unlockedAt[r.Type] = r.UnlockedAt
	}

	view := &AchievementsView{Categories: make(map[string][]AchievementStatus)}
	for _, rule := range achievementRules {
		st := AchievementStatus{AchievementDefinition: rule.def}
		if at, ok := unlockedAt[rule.def.Type]; ok {
			st.Earned = true
			t := at
			st.UnlockedAt = &t
			view.Stats.Earned++
		}
		view.Categories[rule.def.Category] = append(view.Categories[rule.def.Category], st)
	}
	view.Stats.Total = len(achievementRules)
	if view.Stats.Total > 0 {
		view.Stats.Percentage = int(math.Round(float64(view.Stats.Earned) / float64(view.Stats.Total) * 100))
	}
	return view, nil
}

// isDuplicateKey matches gorm's translated sentinel plus the raw driver
// messages for postgres and sqlite, which not every dialector translates.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
