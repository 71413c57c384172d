package app_error

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords so the two cases are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
}

func NewNotFoundError(entity string, key any) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: fmt.Sprint(key)}
}

type DuplicateNameError struct {
	Entity string
	Name   string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s with name %q already exists", e.Entity, e.Name)
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// HTTPStatus maps a service error to the status code it should produce at
// the request boundary.
func HTTPStatus(err error) int {
	var notFound *NotFoundError
	var duplicate *DuplicateNameError
	var validation *ValidationError
	switch {
	case errors.As(err, &notFound):
		return 404
	case errors.As(err, &duplicate):
		return 409
	case errors.As(err, &validation):
		return 400
	case errors.Is(err, ErrInvalidCredentials):
		return 401
	default:
		return 500
	}
}

func Respond(c *gin.Context, err error) {
	c.JSON(HTTPStatus(err), gin.H{"error": err.Error()})
}
