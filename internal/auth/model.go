package auth

type Admin struct {
	AdminID  uint   `gorm:"primaryKey;autoIncrement;column:admin_id" json:"admin_id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}

func (Admin) TableName() string {
	return "admin"
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}
