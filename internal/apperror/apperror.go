// Package apperror carries HTTP-facing error classification through the
// service layer. Handlers render any *Error as-is; everything else
// becomes a 500.
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func Newf(status int, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

func Wrap(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

func BadRequest(message string) *Error { return New(http.StatusBadRequest, message) }

func Unauthorized(message string) *Error { return New(http.StatusUnauthorized, message) }

func NotFound(message string) *Error { return New(http.StatusNotFound, message) }

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

const mysqlDuplicateEntry = 1062

// FromDB maps persistence-layer failures onto the taxonomy: missing
// rows to 404, duplicate unique keys to 409, the rest to 500.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Wrap(http.StatusNotFound, "Resource not found.", err)
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return Wrap(http.StatusConflict, "Duplicate value detected.", err)
	}
	return Wrap(http.StatusInternalServerError, "Unexpected server error.", err)
}
