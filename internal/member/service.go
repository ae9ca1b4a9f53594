package member

import (
	"time"

	"github.com/tnishagarg/Gym-Management-System/internal/util"

	"gorm.io/gorm"
)

type MemberService struct {
	DB *gorm.DB
}

func (s *MemberService) GetAllMembers() ([]MemberRow, error) {
	rows := []MemberRow{}
	agg := util.GroupConcat(s.DB, "mm.mobile_no")

	err := s.DB.Table("member m").
		Select("m.mem_id, m.mem_first_name, m.mem_last_name, m.dob, m.trainer_id, "+
			agg+" AS mobiles, t.trainer_first_name, t.trainer_last_name").
		Joins("LEFT JOIN member_detail md ON m.mem_id = md.mem_id").
		Joins("LEFT JOIN mem_mobile_no mm ON m.mem_id = mm.mem_id").
		Joins("LEFT JOIN trainer t ON m.trainer_id = t.trainer_id").
		Group("m.mem_id, m.mem_first_name, m.mem_last_name, m.dob, m.trainer_id, t.trainer_first_name, t.trainer_last_name").
		Order("m.mem_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range rows {
		rows[i].Age = util.AgeYears(rows[i].Dob, now)
	}
	return rows, nil
}

func (s *MemberService) GetMemberByID(id uint) (*MemberDetailRow, error) {
	var row MemberDetailRow
	agg := util.GroupConcat(s.DB, "mm.mobile_no")

	err := s.DB.Table("member m").
		Select("m.mem_id, m.mem_first_name, m.mem_last_name, m.dob, m.trainer_id, "+agg+" AS mobiles").
		Joins("LEFT JOIN mem_mobile_no mm ON m.mem_id = mm.mem_id").
		Where("m.mem_id = ?", id).
		Group("m.mem_id, m.mem_first_name, m.mem_last_name, m.dob, m.trainer_id").
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateMember inserts the member, its empty detail row and any mobiles in
// one transaction so a failed child insert cannot orphan the parent.
func (s *MemberService) CreateMember(input MemberInput) (uint, error) {
	m := Member{
		MemFirstName: input.MemFirstName,
		MemLastName:  input.MemLastName,
		Dob:          input.Dob,
		TrainerID:    normalizeTrainerID(input.TrainerID),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if err := tx.Create(&MemberDetail{MemID: m.MemID}).Error; err != nil {
			return err
		}
		if len(input.Mobiles) == 0 {
			return nil
		}
		mobiles := make([]MemberMobile, 0, len(input.Mobiles))
		for _, no := range input.Mobiles {
			mobiles = append(mobiles, MemberMobile{MemID: m.MemID, MobileNo: no})
		}
		return tx.Create(&mobiles).Error
	})
	if err != nil {
		return 0, err
	}
	return m.MemID, nil
}

// UpdateMember rewrites the scalar fields and fully replaces the mobile set.
func (s *MemberService) UpdateMember(input MemberInput) error {
	var trainerID interface{}
	if tid := normalizeTrainerID(input.TrainerID); tid != nil {
		trainerID = *tid
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Member{}).Where("mem_id = ?", input.MemID).
			Updates(map[string]interface{}{
				"mem_first_name": input.MemFirstName,
				"mem_last_name":  input.MemLastName,
				"dob":            input.Dob,
				"trainer_id":     trainerID,
			}).Error
		if err != nil {
			return err
		}

		if err := tx.Where("mem_id = ?", input.MemID).Delete(&MemberMobile{}).Error; err != nil {
			return err
		}
		if len(input.Mobiles) == 0 {
			return nil
		}
		mobiles := make([]MemberMobile, 0, len(input.Mobiles))
		for _, no := range input.Mobiles {
			mobiles = append(mobiles, MemberMobile{MemID: input.MemID, MobileNo: no})
		}
		return tx.Create(&mobiles).Error
	})
}

func (s *MemberService) DeleteMember(id uint) error {
	return s.DB.Where("mem_id = ?", id).Delete(&Member{}).Error
}

// Zero or absent trainer_id means the member is unassigned; stored as NULL.
func normalizeTrainerID(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}
