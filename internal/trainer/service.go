package trainer

import (
	"github.com/tnishagarg/Gym-Management-System/internal/util"

	"gorm.io/gorm"
)

type TrainerService struct {
	DB *gorm.DB
}

func (s *TrainerService) GetAllTrainers() ([]TrainerRow, error) {
	rows := []TrainerRow{}
	timesAgg := util.GroupConcat(s.DB, "tt.time")
	mobilesAgg := util.GroupConcat(s.DB, "tm.mobile_no")

	err := s.DB.Table("trainer t").
		Select("t.trainer_id, t.trainer_first_name, t.trainer_last_name, "+
			"(SELECT "+timesAgg+" FROM trainer_time tt WHERE tt.trainer_id = t.trainer_id) AS times, "+
			"(SELECT "+mobilesAgg+" FROM trainer_mobile_no tm WHERE tm.trainer_id = t.trainer_id) AS mobiles").
		Order("t.trainer_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *TrainerService) GetTrainerByID(id uint) (*TrainerRow, error) {
	var row TrainerRow
	timesAgg := util.GroupConcat(s.DB, "tt.time")
	mobilesAgg := util.GroupConcat(s.DB, "tm.mobile_no")

	err := s.DB.Table("trainer t").
		Select("t.trainer_id, t.trainer_first_name, t.trainer_last_name, "+
			"(SELECT "+timesAgg+" FROM trainer_time tt WHERE tt.trainer_id = t.trainer_id) AS times, "+
			"(SELECT "+mobilesAgg+" FROM trainer_mobile_no tm WHERE tm.trainer_id = t.trainer_id) AS mobiles").
		Where("t.trainer_id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateTrainer inserts the trainer and its time slots and mobiles in one
// transaction. Empty lists are simply skipped.
func (s *TrainerService) CreateTrainer(input TrainerInput) (uint, error) {
	tr := Trainer{
		TrainerFirstName: input.TrainerFirstName,
		TrainerLastName:  input.TrainerLastName,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tr).Error; err != nil {
			return err
		}
		if len(input.Times) > 0 {
			times := make([]TrainerTime, 0, len(input.Times))
			for _, slot := range input.Times {
				times = append(times, TrainerTime{TrainerID: tr.TrainerID, Time: slot})
			}
			if err := tx.Create(&times).Error; err != nil {
				return err
			}
		}
		if len(input.Mobiles) > 0 {
			mobiles := make([]TrainerMobile, 0, len(input.Mobiles))
			for _, no := range input.Mobiles {
				mobiles = append(mobiles, TrainerMobile{TrainerID: tr.TrainerID, MobileNo: no})
			}
			if err := tx.Create(&mobiles).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return tr.TrainerID, nil
}

// UpdateTrainerFull rewrites the trainer's names and fully replaces both its
// mobile and time sets in a single transaction. The whole update happens
// in-process rather than behind a stored procedure so it carries the same
// atomicity guarantees as the other entities.
func (s *TrainerService) UpdateTrainerFull(id uint, firstName, lastName string, phones, times []string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Trainer{}).Where("trainer_id = ?", id).
			Updates(map[string]interface{}{
				"trainer_first_name": firstName,
				"trainer_last_name":  lastName,
			}).Error
		if err != nil {
			return err
		}

		if err := tx.Where("trainer_id = ?", id).Delete(&TrainerMobile{}).Error; err != nil {
			return err
		}
		if len(phones) > 0 {
			mobiles := make([]TrainerMobile, 0, len(phones))
			for _, no := range phones {
				mobiles = append(mobiles, TrainerMobile{TrainerID: id, MobileNo: no})
			}
			if err := tx.Create(&mobiles).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("trainer_id = ?", id).Delete(&TrainerTime{}).Error; err != nil {
			return err
		}
		if len(times) > 0 {
			slots := make([]TrainerTime, 0, len(times))
			for _, slot := range times {
				slots = append(slots, TrainerTime{TrainerID: id, Time: slot})
			}
			if err := tx.Create(&slots).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *TrainerService) DeleteTrainer(id uint) error {
	return s.DB.Where("trainer_id = ?", id).Delete(&Trainer{}).Error
}
