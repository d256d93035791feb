package utils

import "errors"

var (
	ErrNoPlanGenerated    = errors.New("no plan could be generated")
	ErrLocationNotFound   = errors.New("location not found")
	ErrTripNotFound       = errors.New("trip not found")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrDatabaseError      = errors.New("database error")
)
