package auth

import (
	"github.com/tnishagarg/Gym-Management-System/internal/util"

	"gorm.io/gorm"
)

type AuthService struct {
	DB *gorm.DB
}

func (s *AuthService) GetAdmin(email string) (*Admin, error) {
	var admin Admin
	result := s.DB.Where("email = ?", email).First(&admin)
	if result.Error != nil {
		return nil, result.Error
	}
	return &admin, nil
}

// VerifyCredentials returns the admin matching the email and password.
func (s *AuthService) VerifyCredentials(email, password string) (*Admin, error) {
	admin, err := s.GetAdmin(email)
	if err != nil {
		return nil, err
	}
	if err := util.VerifyPassword(password, admin.Password); err != nil {
		return nil, err
	}
	return admin, nil
}
