package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/models"

	"gorm.io/gorm"
)

var mealSlots = []string{"breakfast", "lunch", "snack", "dinner"}

func validMealType(t string) bool {
	for _, s := range mealSlots {
		if s == t {
			return true
		}
	}
	return false
}

type DietService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDietService(db *gorm.DB) *DietService {
	return &DietService{db: db, now: time.Now}
}

type PlanSlotRequest struct {
	MealType string  `json:"meal_type"`
	Items    string  `json:"items"`
	Calories float64 `json:"calories"`
}

// CreatePlan stores a new plan as the active one. Deactivating the previous
// active plan and inserting the new one happen in one transaction so at most
// one plan is ever active.
func (s *DietService) CreatePlan(userID uint, slots []PlanSlotRequest) (*models.DietPlan, error) {
	if len(slots) != len(mealSlots) {
		return nil, fmt.Errorf("%w: a plan needs exactly %d meal slots", ErrInvalidInput, len(mealSlots))
	}
	seen := make(map[string]bool, len(slots))
	var total float64
	for _, sl := range slots {
		if !validMealType(sl.MealType) {
			return nil, fmt.Errorf("%w: unknown meal type %q", ErrInvalidInput, sl.MealType)
		}
		if seen[sl.MealType] {
			return nil, fmt.Errorf("%w: duplicate meal type %q", ErrInvalidInput, sl.MealType)
		}
		seen[sl.MealType] = true
		total += sl.Calories
	}

	plan := &models.DietPlan{UserID: userID, IsActive: true, TotalCalories: total}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.DietPlan{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		for _, sl := range slots {
			m := models.DietPlanMeal{
				DietPlanID: plan.ID,
				MealType:   sl.MealType,
				Items:      sl.Items,
				Calories:   sl.Calories,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var populated models.DietPlan
	if err := s.db.Preload("Meals").First(&populated, plan.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

// ActivatePlan makes an existing plan the active one, again in a single
// transaction with the deactivation of the previous plan.
func (s *DietService) ActivatePlan(userID, planID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.DietPlan
		if err := tx.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Model(&models.DietPlan{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&plan).Update("is_active", true).Error
	})
}

func (s *DietService) GetActivePlan(userID uint) (*models.DietPlan, error) {
	var plan models.DietPlan
	err := s.db.Preload("Meals").
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (s *DietService) ListPlans(userID uint) ([]models.DietPlan, error) {
	var plans []models.DietPlan
	err := s.db.Preload("Meals").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

// DeletePlan removes a plan with its slots and completion records; the plan
// owns its completions, so they go with it.
func (s *DietService) DeletePlan(userID, planID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.DietPlan
		if err := tx.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("diet_plan_id = ?", plan.ID).
			Delete(&models.DietMealCompletion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("diet_plan_id = ?", plan.ID).
			Delete(&models.DietPlanMeal{}).Error; err != nil {
			return err
		}
		return tx.Delete(&plan).Error
	})
}

type CompletionResult struct {
	Success  bool    `json:"success"`
	Message  string  `json:"message"`
	MealType string  `json:"meal_type"`
	Calories float64 `json:"calories,omitempty"`
}

// SetMealCompletion flips one (plan, slot, date) between Completed and
// Incomplete. Completing upserts the record on its natural key and mirrors
// the slot into the meal log so the calories count for the day. Note the
// mirror fires on every transition into Completed and un-completing never
// retracts it, so toggling a slot repeatedly duplicates calories — kept
// as-is until product decides otherwise.
func (s *DietService) SetMealCompletion(userID, planID uint, mealType string, date time.Time, completed bool) (*CompletionResult, error) {
	if !validMealType(mealType) {
		return nil, fmt.Errorf("%w: unknown meal type %q", ErrInvalidInput, mealType)
	}

	var plan models.DietPlan
	err := s.db.Where("id = ? AND user_id = ? AND is_active = ?", planID, userID, true).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no active plan %d", ErrNotFound, planID)
		}
		return nil, err
	}

	day := dayStartLocal(date)

	if !completed {
		if err := s.db.Where("diet_plan_id = ? AND meal_type = ? AND date = ?", plan.ID, mealType, day).
			Delete(&models.DietMealCompletion{}).Error; err != nil {
			return nil, err
		}
		return &CompletionResult{Success: true, Message: "meal marked incomplete", MealType: mealType}, nil
	}

	var slot models.DietPlanMeal
	if err := s.db.Where("diet_plan_id = ? AND meal_type = ?", plan.ID, mealType).
		First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: plan has no %s slot", ErrNotFound, mealType)
		}
		return nil, err
	}

	rec := models.DietMealCompletion{
		DietPlanID: plan.ID,
		MealType:   mealType,
		Date:       day,
		Completed:  true,
	}
	if err := s.db.Where("diet_plan_id = ? AND meal_type = ? AND date = ?", plan.ID, mealType, day).
		Assign(models.DietMealCompletion{Completed: true}).
		FirstOrCreate(&rec).Error; err != nil {
		return nil, err
	}

	log := models.MealLog{
		UserID:   userID,
		Name:     slot.Items,
		Calories: slot.Calories,
		AteAt:    s.now(),
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}

	return &CompletionResult{
		Success:  true,
		Message:  "meal marked complete",
		MealType: mealType,
		Calories: slot.Calories,
	}, nil
}

// AdherencePercent counts a plan's completion records over its full history
// against the four slots. Multi-day plans can exceed 100.
func (s *DietService) AdherencePercent(userID, planID uint) (int, error) {
	var plan models.DietPlan
	if err := s.db.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	var n int64
	if err := s.db.Model(&models.DietMealCompletion{}).
		Where("diet_plan_id = ?", plan.ID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return int(math.Round(float64(n) / float64(len(mealSlots)) * 100)), nil
}

type TodayProgress struct {
	CompletedMeals    []string `json:"completed_meals"`
	CompletedCalories float64  `json:"completed_calories"`
	TotalMeals        int      `json:"total_meals"`
	TotalCalories     float64  `json:"total_calories"`
}

type PlanProgress struct {
	Plan          *models.DietPlan `json:"plan"`
	TodayProgress TodayProgress    `json:"today_progress"`
}

// GetActivePlanProgress is the live daily view: which of today's slots are
// done and how many of the plan's calories that covers.
func (s *DietService) GetActivePlanProgress(userID uint) (*PlanProgress, error) {
	plan, err := s.GetActivePlan(userID)
	if err != nil {
		return nil, err
	}

	today := dayStartLocal(s.now())
	var recs []models.DietMealCompletion
	if err := s.db.Where("diet_plan_id = ? AND date = ?", plan.ID, today).
		Find(&recs).Error; err != nil {
		return nil, err
	}

	caloriesBySlot := make(map[string]float64, len(plan.Meals))
	for _, m := range plan.Meals {
		caloriesBySlot[m.MealType] = m.Calories
	}

	progress := TodayProgress{
		CompletedMeals: []string{},
		TotalMeals:     len(mealSlots),
		TotalCalories:  plan.TotalCalories,
	}
	for _, r := range recs {
		progress.CompletedMeals = append(progress.CompletedMeals, r.MealType)
		progress.CompletedCalories += caloriesBySlot[r.MealType]
	}

	return &PlanProgress{Plan: plan, TodayProgress: progress}, nil
}
