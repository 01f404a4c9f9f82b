package gormstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/MarkoPoloResearchLab/bankdata/pkg/bank"
	"gorm.io/gorm"
)

// Dialect selects SQL that differs between the supported engines.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// ParseDialect validates a gorm dialector name.
func ParseDialect(name string) (Dialect, error) {
	switch Dialect(name) {
	case DialectPostgres, DialectSQLite:
		return Dialect(name), nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", name)
	}
}

type columnTypes struct {
	identity  string
	timestamp string
}

var dialectColumnTypes = map[Dialect]columnTypes{
	DialectPostgres: {identity: "BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY", timestamp: "TIMESTAMPTZ"},
	DialectSQLite:   {identity: "INTEGER PRIMARY KEY AUTOINCREMENT", timestamp: "DATETIME"},
}

// SchemaStatements returns the DDL that creates every table, in dependency order.
func SchemaStatements(dialect Dialect) ([]string, error) {
	types, ok := dialectColumnTypes[dialect]
	if !ok {
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
	domains := map[string]string{}
	for _, domain := range bank.EnumDomains() {
		quoted := make([]string, 0, len(domain.Labels))
		for _, label := range domain.Labels {
			quoted = append(quoted, "'"+label+"'")
		}
		domains[domain.Name] = strings.Join(quoted, ", ")
	}
	return []string{
		`CREATE TABLE IF NOT EXISTS customers (
			customer_id ` + types.identity + `,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			customer_type TEXT NOT NULL CHECK (customer_type IN (` + domains["customer_type"] + `)),
			created_at ` + types.timestamp + ` NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS accounts (
			account_id ` + types.identity + `,
			customer_id BIGINT NOT NULL REFERENCES customers (customer_id),
			account_type TEXT NOT NULL CHECK (account_type IN (` + domains["account_type"] + `)),
			status TEXT NOT NULL CHECK (status IN (` + domains["account_status"] + `)),
			balance NUMERIC(15, 2) NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_accounts_customer_id ON accounts (customer_id)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id ` + types.identity + `,
			account_id BIGINT NOT NULL REFERENCES accounts (account_id),
			transaction_type TEXT NOT NULL CHECK (transaction_type IN (` + domains["transaction_type"] + `)),
			transaction_date ` + types.timestamp + ` NOT NULL,
			amount NUMERIC(15, 2) NOT NULL,
			currency TEXT NOT NULL DEFAULT 'USD' CHECK (currency IN (` + domains["currency"] + `)),
			channel TEXT CHECK (channel IN (` + domains["channel"] + `))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_account_id ON transactions (account_id)`,
		`CREATE TABLE IF NOT EXISTS transaction_metadata (
			transaction_id BIGINT PRIMARY KEY REFERENCES transactions (transaction_id),
			location TEXT,
			device_type TEXT CHECK (device_type IN (` + domains["device_type"] + `)),
			auth_method TEXT CHECK (auth_method IN (` + domains["auth_method"] + `)),
			channel_details TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS branches (
			branch_id ` + types.identity + `,
			name TEXT NOT NULL,
			region TEXT NOT NULL CHECK (region IN (` + domains["region"] + `)),
			manager_name TEXT
		)`,
	}, nil
}

// ApplySchema creates any missing tables and indexes.
func ApplySchema(ctx context.Context, db *gorm.DB, dialect Dialect) error {
	statements, err := SchemaStatements(dialect)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		for _, statement := range statements {
			if err := transaction.Exec(statement).Error; err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}
		return nil
	})
}
