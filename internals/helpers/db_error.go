package helper

import (
	"errors"
	"log"

	"github.com/go-sql-driver/mysql"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	MsgRecordNotFound     = "Record not found"
	MsgReferenceNotFound  = "Referenced record not found"
	MsgDuplicateRecord    = "Record already exists"
	msgInternalDatabase   = "Server error"
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	myDuplicateEntry      = 1062
	myNoReferencedRow     = 1452
)

// MapDBError menerjemahkan error gorm/driver ke *fiber.Error.
// Konflik unik → 400 dengan conflictMsg; pesan DB mentah tidak pernah diteruskan.
func MapDBError(err error, conflictMsg string) error {
	if err == nil {
		return nil
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}
	if conflictMsg == "" {
		conflictMsg = MsgDuplicateRecord
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.NewError(fiber.StatusNotFound, MsgRecordNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fiber.NewError(fiber.StatusBadRequest, conflictMsg)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fiber.NewError(fiber.StatusBadRequest, MsgReferenceNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fiber.NewError(fiber.StatusBadRequest, conflictMsg)
		case pgForeignKeyViolation:
			return fiber.NewError(fiber.StatusBadRequest, MsgReferenceNotFound)
		}
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case myDuplicateEntry:
			return fiber.NewError(fiber.StatusBadRequest, conflictMsg)
		case myNoReferencedRow:
			return fiber.NewError(fiber.StatusBadRequest, MsgReferenceNotFound)
		}
	}

	log.Printf("[ERROR] database: %v", err)
	return fiber.NewError(fiber.StatusInternalServerError, msgInternalDatabase)
}
