package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/JC-Quero/gym-tracker/internal/entity"
)

const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrNoReferencedRow = 1452
)

// translateDBError maps driver-level constraint violations onto the error
// taxonomy. Both the MySQL and SQLite drivers are covered.
func translateDBError(err error, reference, uniqueField string) error {
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrNoReferencedRow:
			return &entity.ReferentialIntegrityError{Reference: reference}
		case mysqlErrDuplicateEntry:
			return &entity.ValidationError{Field: uniqueField, Reason: "already exists"}
		}
		return err
	}

	// modernc.org/sqlite surfaces constraint failures as plain messages.
	msg := err.Error()
	if strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return &entity.ReferentialIntegrityError{Reference: reference}
	}
	if strings.Contains(msg, "UNIQUE constraint failed") {
		return &entity.ValidationError{Field: uniqueField, Reason: "already exists"}
	}
	return err
}
