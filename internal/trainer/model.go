package trainer

type Trainer struct {
	TrainerID        uint   `gorm:"primaryKey;autoIncrement;column:trainer_id" json:"trainer_id"`
	TrainerFirstName string `gorm:"size:100;not null;column:trainer_first_name" json:"trainer_first_name"`
	TrainerLastName  string `gorm:"size:100;column:trainer_last_name" json:"trainer_last_name"`
}

func (Trainer) TableName() string {
	return "trainer"
}

type TrainerTime struct {
	TrainerID uint   `gorm:"primaryKey;column:trainer_id" json:"trainer_id"`
	Time      string `gorm:"primaryKey;size:50;column:time" json:"time"`
}

func (TrainerTime) TableName() string {
	return "trainer_time"
}

type TrainerMobile struct {
	TrainerID uint   `gorm:"primaryKey;column:trainer_id" json:"trainer_id"`
	MobileNo  string `gorm:"primaryKey;size:20;column:mobile_no" json:"mobile_no"`
}

func (TrainerMobile) TableName() string {
	return "trainer_mobile_no"
}

// TrainerRow flattens a trainer with its aggregated times and mobiles.
// Both lists are comma-joined by the database; order is not guaranteed.
type TrainerRow struct {
	TrainerID        uint    `json:"trainer_id"`
	TrainerFirstName string  `json:"trainer_first_name"`
	TrainerLastName  string  `json:"trainer_last_name"`
	Times            *string `json:"times"`
	Mobiles          *string `json:"mobiles"`
}

type TrainerInput struct {
	TrainerID        uint     `json:"trainer_id"`
	TrainerFirstName string   `json:"trainer_first_name" binding:"required"`
	TrainerLastName  string   `json:"trainer_last_name"`
	Times            []string `json:"times"`
	Mobiles          []string `json:"mobiles"`
}

// TrainerUpdateInput carries the legacy update form. Phones and Times arrive
// as delimited strings; Mobiles is accepted as an alias for Phones.
type TrainerUpdateInput struct {
	TrainerID        uint   `json:"trainer_id" binding:"required"`
	TrainerFirstName string `json:"trainer_first_name" binding:"required"`
	TrainerLastName  string `json:"trainer_last_name"`
	Phones           string `json:"phones"`
	Mobiles          string `json:"mobiles"`
	Times            string `json:"times"`
}

type TrainerDeleteInput struct {
	TrainerID uint `json:"trainer_id" binding:"required"`
}
