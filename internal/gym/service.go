package gym

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GymService struct {
	DB *gorm.DB
}

const gymColumns = "g.gym_id, g.gym_name, g.street_no, g.street_name, g.pin_code, g.landmark, gt.type"

func (s *GymService) GetAllGyms() ([]GymRow, error) {
	rows := []GymRow{}
	err := s.DB.Table("gym g").
		Select(gymColumns).
		Joins("LEFT JOIN gym_type gt ON g.gym_id = gt.gym_id").
		Order("g.gym_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GymService) GetGymByID(id uint) (*GymRow, error) {
	var row GymRow
	err := s.DB.Table("gym g").
		Select(gymColumns).
		Joins("LEFT JOIN gym_type gt ON g.gym_id = gt.gym_id").
		Where("g.gym_id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateGym inserts the gym and its type row in one transaction.
func (s *GymService) CreateGym(input GymInput) (uint, error) {
	g := Gym{
		GymName:    input.GymName,
		StreetNo:   input.StreetNo,
		StreetName: input.StreetName,
		PinCode:    input.PinCode,
		Landmark:   input.Landmark,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&g).Error; err != nil {
			return err
		}
		return tx.Create(&GymType{GymID: g.GymID, Type: input.Type}).Error
	})
	if err != nil {
		return 0, err
	}
	return g.GymID, nil
}

// UpdateGym rewrites the gym's scalar fields and upserts its single type row.
func (s *GymService) UpdateGym(input GymInput) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Gym{}).Where("gym_id = ?", input.GymID).
			Updates(map[string]interface{}{
				"gym_name":    input.GymName,
				"street_no":   input.StreetNo,
				"street_name": input.StreetName,
				"pin_code":    input.PinCode,
				"landmark":    input.Landmark,
			}).Error
		if err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "gym_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"type"}),
		}).Create(&GymType{GymID: input.GymID, Type: input.Type}).Error
	})
}

// DeleteGym removes the parent row only; dependents are the schema's concern.
func (s *GymService) DeleteGym(id uint) error {
	return s.DB.Where("gym_id = ?", id).Delete(&Gym{}).Error
}
