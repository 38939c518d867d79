package repository

import "errors"

// ErrInvalidCredentials is returned by UserRepository.FindByCredentials when the
// email is unknown or the password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")
