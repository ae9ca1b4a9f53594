package enroll

type EnrollServicePort interface {
	GetAllEnrollments() ([]EnrollRow, error)
	GetEnrollmentByPair(memID, workoutID uint) (*EnrollRow, error)
	CreateEnrollment(input EnrollInput) error
	UpdateEnrollment(input EnrollUpdateInput) error
	DeleteEnrollment(memID, workoutID uint) error
}

var _ EnrollServicePort = (*EnrollService)(nil)
