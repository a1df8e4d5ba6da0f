package repository

import (
	"errors"
	"fmt"
	"testing"

	mysql "github.com/go-sql-driver/mysql"
)

func TestMySQLErrorClassification(t *testing.T) {
	deadlock := fmt.Errorf("update room: %w", &mysql.MySQLError{Number: 1213, Message: "Deadlock found"})
	lockWait := &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'x' for key 'reference_code'"}
	fk := &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}

	if !IsLockConflict(deadlock) || !IsLockConflict(lockWait) {
		t.Error("expected deadlock and lock wait timeout to be lock conflicts")
	}
	if IsLockConflict(dup) || IsLockConflict(errors.New("deadlock")) {
		t.Error("only MySQL lock errors count as lock conflicts")
	}
	if !IsDuplicate(dup) || IsDuplicate(fk) {
		t.Error("duplicate classification wrong")
	}
	if !IsDuplicate(errors.New("UNIQUE constraint failed: bookings.reference_code")) {
		t.Error("expected sqlite-style unique error to be a duplicate")
	}
	if !IsForeignKeyError(fk) || IsForeignKeyError(dup) || IsForeignKeyError(nil) {
		t.Error("foreign key classification wrong")
	}
}
