package gym

type Gym struct {
	GymID      uint   `gorm:"primaryKey;autoIncrement;column:gym_id" json:"gym_id"`
	GymName    string `gorm:"size:100;not null;column:gym_name" json:"gym_name"`
	StreetNo   string `gorm:"size:20;column:street_no" json:"street_no"`
	StreetName string `gorm:"size:100;column:street_name" json:"street_name"`
	PinCode    string `gorm:"size:10;column:pin_code" json:"pin_code"`
	Landmark   string `gorm:"size:100" json:"landmark"`
}

func (Gym) TableName() string {
	return "gym"
}

// GymType is the 1:1 side table; a gym carries at most one type row.
type GymType struct {
	GymID uint   `gorm:"primaryKey;column:gym_id" json:"gym_id"`
	Type  string `gorm:"size:50;not null" json:"type"`
}

func (GymType) TableName() string {
	return "gym_type"
}

// GymRow is a gym flattened with its type for list/get responses.
type GymRow struct {
	GymID      uint    `json:"gym_id"`
	GymName    string  `json:"gym_name"`
	StreetNo   string  `json:"street_no"`
	StreetName string  `json:"street_name"`
	PinCode    string  `json:"pin_code"`
	Landmark   string  `json:"landmark"`
	Type       *string `json:"type"`
}

type GymInput struct {
	GymID      uint   `json:"gym_id"`
	GymName    string `json:"gym_name" binding:"required"`
	StreetNo   string `json:"street_no"`
	StreetName string `json:"street_name"`
	PinCode    string `json:"pin_code"`
	Landmark   string `json:"landmark"`
	Type       string `json:"type"`
}

type GymDeleteInput struct {
	GymID uint `json:"gym_id" binding:"required"`
}
