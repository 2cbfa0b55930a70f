package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
	ErrBadGateway           = http.StatusBadGateway
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrNotFound           = errors.New("Resource not found")
	ErrInvalidCredentials = errors.New("Username or password is incorrect")
	ErrNotLoggedIn        = errors.New("Unauthorized access")
	ErrNoPermission       = errors.New("Forbidden access")
	ErrExpiredToken       = errors.New("Token has expired")
	ErrConflict           = errors.New("Conflicting record found")
	ErrMediaAuthority     = errors.New("Media authority request failed")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrClient:             ErrStatusClient,
	ErrNotFound:           ErrStatusNotFound,
	ErrInvalidCredentials: ErrStatusUnauthorized,
	ErrNotLoggedIn:        ErrStatusUnauthorized,
	ErrNoPermission:       ErrStatusNoPermission,
	ErrExpiredToken:       ErrStatusUnauthorized,
	ErrConflict:           ErrStatusConflict,
	ErrMediaAuthority:     ErrBadGateway,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
