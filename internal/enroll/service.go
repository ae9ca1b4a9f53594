package enroll

import (
	"github.com/tnishagarg/Gym-Management-System/internal/util"

	"gorm.io/gorm"
)

type EnrollService struct {
	DB *gorm.DB
}

const enrollColumns = "e.mem_id, e.workout_id, e.date, " +
	"m.mem_first_name, m.mem_last_name, w.workout_name"

func (s *EnrollService) GetAllEnrollments() ([]EnrollRow, error) {
	rows := []EnrollRow{}
	err := s.DB.Table("enrolls_to e").
		Select(enrollColumns).
		Joins("LEFT JOIN member m ON e.mem_id = m.mem_id").
		Joins("LEFT JOIN workout w ON e.workout_id = w.workout_id").
		Order("e.mem_id, e.workout_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *EnrollService) GetEnrollmentByPair(memID, workoutID uint) (*EnrollRow, error) {
	var row EnrollRow
	err := s.DB.Table("enrolls_to e").
		Select(enrollColumns).
		Joins("LEFT JOIN member m ON e.mem_id = m.mem_id").
		Joins("LEFT JOIN workout w ON e.workout_id = w.workout_id").
		Where("e.mem_id = ? AND e.workout_id = ?", memID, workoutID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateEnrollment inserts the pair; an omitted date defaults to today.
func (s *EnrollService) CreateEnrollment(input EnrollInput) error {
	date := util.Today()
	if input.Date != nil {
		date = *input.Date
	}
	return s.DB.Create(&Enrollment{
		MemID:     input.MemID,
		WorkoutID: input.WorkoutID,
		Date:      date,
	}).Error
}

// UpdateEnrollment rekeys the enrollment: the old pair is removed and the
// new pair inserted in one transaction.
func (s *EnrollService) UpdateEnrollment(input EnrollUpdateInput) error {
	date := util.Today()
	if input.Date != nil {
		date = *input.Date
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("mem_id = ? AND workout_id = ?", input.OldMemID, input.OldWorkoutID).
			Delete(&Enrollment{}).Error
		if err != nil {
			return err
		}
		return tx.Create(&Enrollment{
			MemID:     input.MemID,
			WorkoutID: input.WorkoutID,
			Date:      date,
		}).Error
	})
}

func (s *EnrollService) DeleteEnrollment(memID, workoutID uint) error {
	return s.DB.Where("mem_id = ? AND workout_id = ?", memID, workoutID).
		Delete(&Enrollment{}).Error
}
