package auth

type AuthServicePort interface {
	GetAdmin(email string) (*Admin, error)
	VerifyCredentials(email, password string) (*Admin, error)
}

var _ AuthServicePort = (*AuthService)(nil)
