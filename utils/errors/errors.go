package errors

import (
	goerrors "errors"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/go-sql-driver/mysql"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// Is reports whether err is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	var custom CustomError
	if goerrors.As(err, &custom) {
		return custom.errType == errorType
	}
	return false
}

// IsDuplicateEntry reports whether err is a MySQL unique-constraint violation
// (error 1062), raised when a concurrent writer won a race on a unique key.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if goerrors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}

// IsLockConflict reports whether err is a MySQL deadlock (error 1213) or lock
// wait timeout (error 1205). InnoDB aborted this transaction in favor of a
// competing one; the operation is safe to retry as-is.
func IsLockConflict(err error) bool {
	var mysqlErr *mysql.MySQLError
	if goerrors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}
