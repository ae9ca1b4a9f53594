package workout

type Workout struct {
	WorkoutID   uint   `gorm:"primaryKey;autoIncrement;column:workout_id" json:"workout_id"`
	WorkoutName string `gorm:"size:100;not null;column:workout_name" json:"workout_name"`
	Description string `gorm:"size:500;column:description" json:"description"`
}

func (Workout) TableName() string {
	return "workout"
}

// WorkoutPlan is the optional 0:1 plan row; absent when no schedule was given.
type WorkoutPlan struct {
	WorkoutID         uint   `gorm:"primaryKey;column:workout_id" json:"workout_id"`
	WorkoutSchedule   string `gorm:"size:100;column:workout_schedule" json:"workout_schedule"`
	WorkoutRepetition int    `gorm:"column:workout_repetition" json:"workout_repetition"`
}

func (WorkoutPlan) TableName() string {
	return "workout_plan"
}

// WorkoutRow flattens a workout with its plan for responses.
type WorkoutRow struct {
	WorkoutID         uint    `json:"workout_id"`
	WorkoutName       string  `json:"workout_name"`
	Description       string  `json:"description"`
	WorkoutSchedule   *string `json:"workout_schedule"`
	WorkoutRepetition *int    `json:"workout_repetition"`
}

type WorkoutInput struct {
	WorkoutID   uint   `json:"workout_id"`
	WorkoutName string `json:"workout_name" binding:"required"`
	Description string `json:"description"`
	Schedule    string `json:"schedule"`
	Repetition  int    `json:"repetition"`
}

type WorkoutDeleteInput struct {
	WorkoutID uint `json:"workout_id" binding:"required"`
}
