package repository

import (
	"errors"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
)

const (
	mysqlDuplicateEntry  = 1062
	mysqlLockWaitTimeout = 1205
	mysqlDeadlock        = 1213
	mysqlForeignKey      = 1452
)

func mysqlCode(err error) (uint16, bool) {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number, true
	}
	return 0, false
}

// IsLockConflict reports whether err came from another transaction holding
// the same room or property row.
func IsLockConflict(err error) bool {
	if code, ok := mysqlCode(err); ok {
		return code == mysqlLockWaitTimeout || code == mysqlDeadlock
	}
	return false
}

func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := mysqlCode(err); ok {
		return code == mysqlDuplicateEntry
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "duplicate entry") || strings.Contains(lower, "unique constraint")
}

func IsForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := mysqlCode(err); ok {
		return code == mysqlForeignKey
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "foreign key")
}
