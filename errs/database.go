package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

// NewDatabaseError converts a storage-layer failure around a commit attempt
// into an ApiErr. Commit-time uniqueness violations become conflicts; every
// other failure is reported as a generic error for the operation, without
// leaking storage internals to the caller.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	if cause != nil && isUniqueViolation(cause) {
		return &ApiErr{
			StatusCode: http.StatusConflict,
			err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
			Cause:      cause,
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("error %s %s", operation, entity),
		Cause:      cause,
	}
}

// isUniqueViolation matches the unique-constraint messages of both supported
// stores (postgres and sqlite).
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
