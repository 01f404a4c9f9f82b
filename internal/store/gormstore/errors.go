package gormstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MarkoPoloResearchLab/bankdata/pkg/bank"
	gosqlite "github.com/glebarez/go-sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgIntegrityViolationClass = "23"
	sqliteConstraintCode      = 19

	errorOperationStore = "store"

	errorSubjectAccount     = "account"
	errorSubjectTransaction = "transaction"
	errorSubjectMetadata    = "transaction_metadata"
	errorSubjectCustomer    = "customer"
	errorSubjectBranch      = "branch"
	errorSubjectStatistics  = "statistics"
	errorSubjectRouter      = "router"

	errorCodeCount      = "count"
	errorCodeList       = "list"
	errorCodeGet        = "get"
	errorCodeInsert     = "insert"
	errorCodeUpdate     = "update"
	errorCodeDelete     = "delete"
	errorCodeInvalid    = "invalid"
	errorCodeConstraint = "constraint"
	errorCodeConfig     = "config"
	errorCodePing       = "ping"
)

func wrapStoreError(subject string, code string, err error) error {
	if isConstraintViolation(err) {
		return bank.WrapError(errorOperationStore, subject, errorCodeConstraint, fmt.Errorf("%w: %w", bank.ErrConstraintViolation, err))
	}
	return bank.WrapError(errorOperationStore, subject, code, err)
}

func wrapLookupError(subject string, id int64, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return bank.WrapError(errorOperationStore, subject, errorCodeGet, fmt.Errorf("%w: %s %d", bank.ErrNotFound, subject, id))
	}
	return wrapStoreError(subject, errorCodeGet, err)
}

func isConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, pgIntegrityViolationClass)
	}
	var sqliteErr *gosqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xFF == sqliteConstraintCode
	}
	return false
}
