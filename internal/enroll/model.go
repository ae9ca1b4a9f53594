package enroll

import (
	"github.com/tnishagarg/Gym-Management-System/internal/util"
)

// Enrollment links a member to a workout. The table has no surrogate key;
// identity is the (mem_id, workout_id) pair and duplicates are not prevented
// at this layer.
type Enrollment struct {
	MemID     uint      `gorm:"column:mem_id" json:"mem_id"`
	WorkoutID uint      `gorm:"column:workout_id" json:"workout_id"`
	Date      util.Date `gorm:"type:date;column:date" json:"date"`
}

func (Enrollment) TableName() string {
	return "enrolls_to"
}

// EnrollRow flattens an enrollment with the member and workout names.
type EnrollRow struct {
	MemID        uint      `json:"mem_id"`
	WorkoutID    uint      `json:"workout_id"`
	Date         util.Date `json:"date"`
	MemFirstName *string   `json:"mem_first_name"`
	MemLastName  *string   `json:"mem_last_name"`
	WorkoutName  *string   `json:"workout_name"`
}

type EnrollInput struct {
	MemID     uint       `json:"mem_id" binding:"required"`
	WorkoutID uint       `json:"workout_id" binding:"required"`
	Date      *util.Date `json:"date"`
}

// EnrollUpdateInput rekeys an enrollment from the old pair to the new pair.
// The old pair arrives as old_mem_id/old_workout_id in the request body;
// old_mem/old_wid are the query-parameter names on the GET route only.
type EnrollUpdateInput struct {
	OldMemID     uint       `json:"old_mem_id" binding:"required"`
	OldWorkoutID uint       `json:"old_workout_id" binding:"required"`
	MemID        uint       `json:"mem_id" binding:"required"`
	WorkoutID    uint       `json:"workout_id" binding:"required"`
	Date         *util.Date `json:"date"`
}

type EnrollDeleteInput struct {
	MemID     uint `json:"mem_id" binding:"required"`
	WorkoutID uint `json:"workout_id" binding:"required"`
}
