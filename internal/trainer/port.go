package trainer

type TrainerServicePort interface {
	GetAllTrainers() ([]TrainerRow, error)
	GetTrainerByID(id uint) (*TrainerRow, error)
	CreateTrainer(input TrainerInput) (uint, error)
	UpdateTrainerFull(id uint, firstName, lastName string, phones, times []string) error
	DeleteTrainer(id uint) error
}

var _ TrainerServicePort = (*TrainerService)(nil)
