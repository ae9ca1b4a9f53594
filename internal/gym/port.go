package gym

type GymServicePort interface {
	GetAllGyms() ([]GymRow, error)
	GetGymByID(id uint) (*GymRow, error)
	CreateGym(input GymInput) (uint, error)
	UpdateGym(input GymInput) error
	DeleteGym(id uint) error
}

var _ GymServicePort = (*GymService)(nil)
