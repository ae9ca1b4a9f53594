package workout

type WorkoutServicePort interface {
	GetAllWorkouts() ([]WorkoutRow, error)
	GetWorkoutByID(id uint) (*WorkoutRow, error)
	CreateWorkout(input WorkoutInput) (uint, error)
	UpdateWorkout(input WorkoutInput) error
	DeleteWorkout(id uint) error
}

var _ WorkoutServicePort = (*WorkoutService)(nil)
