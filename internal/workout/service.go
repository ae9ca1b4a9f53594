package workout

import (
	"gorm.io/gorm"
)

type WorkoutService struct {
	DB *gorm.DB
}

const workoutColumns = "w.workout_id, w.workout_name, w.description, " +
	"wp.workout_schedule, wp.workout_repetition"

func (s *WorkoutService) GetAllWorkouts() ([]WorkoutRow, error) {
	rows := []WorkoutRow{}
	err := s.DB.Table("workout w").
		Select(workoutColumns).
		Joins("LEFT JOIN workout_plan wp ON w.workout_id = wp.workout_id").
		Order("w.workout_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *WorkoutService) GetWorkoutByID(id uint) (*WorkoutRow, error) {
	var row WorkoutRow
	err := s.DB.Table("workout w").
		Select(workoutColumns).
		Joins("LEFT JOIN workout_plan wp ON w.workout_id = wp.workout_id").
		Where("w.workout_id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateWorkout inserts the workout and, only when a schedule was supplied,
// its plan row. Both inserts share one transaction.
func (s *WorkoutService) CreateWorkout(input WorkoutInput) (uint, error) {
	w := Workout{
		WorkoutName: input.WorkoutName,
		Description: input.Description,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&w).Error; err != nil {
			return err
		}
		if input.Schedule == "" {
			return nil
		}
		return tx.Create(&WorkoutPlan{
			WorkoutID:         w.WorkoutID,
			WorkoutSchedule:   input.Schedule,
			WorkoutRepetition: input.Repetition,
		}).Error
	})
	if err != nil {
		return 0, err
	}
	return w.WorkoutID, nil
}

// UpdateWorkout rewrites the scalar fields and replaces the plan row. An
// empty schedule removes any existing plan without inserting a new one.
func (s *WorkoutService) UpdateWorkout(input WorkoutInput) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Workout{}).Where("workout_id = ?", input.WorkoutID).
			Updates(map[string]interface{}{
				"workout_name": input.WorkoutName,
				"description":  input.Description,
			}).Error
		if err != nil {
			return err
		}

		if err := tx.Where("workout_id = ?", input.WorkoutID).Delete(&WorkoutPlan{}).Error; err != nil {
			return err
		}
		if input.Schedule == "" {
			return nil
		}
		return tx.Create(&WorkoutPlan{
			WorkoutID:         input.WorkoutID,
			WorkoutSchedule:   input.Schedule,
			WorkoutRepetition: input.Repetition,
		}).Error
	})
}

func (s *WorkoutService) DeleteWorkout(id uint) error {
	return s.DB.Where("workout_id = ?", id).Delete(&Workout{}).Error
}
