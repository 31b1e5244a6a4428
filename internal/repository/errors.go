package repository

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateTitle = errors.New("title already taken")
	ErrNotFound       = errors.New("not found")
)

const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation on a constraint whose name contains substr.
func isUniqueViolation(err error, substr string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == uniqueViolation && strings.Contains(pqErr.Constraint, substr)
}
