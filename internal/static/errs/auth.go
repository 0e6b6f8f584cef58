package errs

import "errors"

var (
	InvalidCredentials = errors.New("invalid credentials")
	GeneratingToken    = errors.New("error generating token")
	FailedToCreateUser = errors.New("failed to create user")
)
