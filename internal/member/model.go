package member

import (
	"github.com/tnishagarg/Gym-Management-System/internal/util"
)

type Member struct {
	MemID        uint      `gorm:"primaryKey;autoIncrement;column:mem_id" json:"mem_id"`
	MemFirstName string    `gorm:"size:100;not null;column:mem_first_name" json:"mem_first_name"`
	MemLastName  string    `gorm:"size:100;column:mem_last_name" json:"mem_last_name"`
	Dob          util.Date `gorm:"type:date;column:dob" json:"dob"`
	TrainerID    *uint     `gorm:"column:trainer_id" json:"trainer_id"`
}

func (Member) TableName() string {
	return "member"
}

// MemberDetail is created empty alongside every member.
type MemberDetail struct {
	MemID uint `gorm:"primaryKey;column:mem_id" json:"mem_id"`
}

func (MemberDetail) TableName() string {
	return "member_detail"
}

type MemberMobile struct {
	MemID    uint   `gorm:"primaryKey;column:mem_id" json:"mem_id"`
	MobileNo string `gorm:"primaryKey;size:20;column:mobile_no" json:"mobile_no"`
}

func (MemberMobile) TableName() string {
	return "mem_mobile_no"
}

// MemberRow is a member flattened with its mobiles and trainer for listing.
// Mobiles are comma-joined by the database; their order is not guaranteed.
type MemberRow struct {
	MemID            uint      `json:"mem_id"`
	MemFirstName     string    `json:"mem_first_name"`
	MemLastName      string    `json:"mem_last_name"`
	Dob              util.Date `json:"dob"`
	TrainerID        *uint     `json:"trainer_id"`
	Age              int       `gorm:"-" json:"age"`
	Mobiles          *string   `json:"mobiles"`
	TrainerFirstName *string   `json:"trainer_first_name"`
	TrainerLastName  *string   `json:"trainer_last_name"`
}

// MemberDetailRow backs the get-by-id response.
type MemberDetailRow struct {
	MemID        uint      `json:"mem_id"`
	MemFirstName string    `json:"mem_first_name"`
	MemLastName  string    `json:"mem_last_name"`
	Dob          util.Date `json:"dob"`
	TrainerID    *uint     `json:"trainer_id"`
	Mobiles      *string   `json:"mobiles"`
}

type MemberInput struct {
	MemID        uint      `json:"mem_id"`
	MemFirstName string    `json:"mem_first_name" binding:"required"`
	MemLastName  string    `json:"mem_last_name"`
	Dob          util.Date `json:"dob" binding:"required"`
	TrainerID    *uint     `json:"trainer_id"`
	Mobiles      []string  `json:"mobiles"`
}

type MemberDeleteInput struct {
	MemID uint `json:"mem_id" binding:"required"`
}
