package gormstore

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer mirrors the customers table.
type Customer struct {
	CustomerID   int64     `gorm:"column:customer_id;primaryKey;autoIncrement"`
	FirstName    string    `gorm:"column:first_name;not null"`
	LastName     string    `gorm:"column:last_name;not null"`
	Email        string    `gorm:"column:email;not null"`
	Phone        *string   `gorm:"column:phone"`
	CustomerType string    `gorm:"column:customer_type;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
}

func (Customer) TableName() string { return "customers" }

// Account mirrors the accounts table.
type Account struct {
	AccountID   int64           `gorm:"column:account_id;primaryKey;autoIncrement"`
	CustomerID  int64           `gorm:"column:customer_id;not null"`
	AccountType string          `gorm:"column:account_type;not null"`
	Status      string          `gorm:"column:status;not null"`
	Balance     decimal.Decimal `gorm:"column:balance;type:numeric(15,2);not null"`
}

func (Account) TableName() string { return "accounts" }

// Transaction mirrors the transactions table.
type Transaction struct {
	TransactionID   int64           `gorm:"column:transaction_id;primaryKey;autoIncrement"`
	AccountID       int64           `gorm:"column:account_id;not null"`
	TransactionType string          `gorm:"column:transaction_type;not null"`
	TransactionDate time.Time       `gorm:"column:transaction_date;not null"`
	Amount          decimal.Decimal `gorm:"column:amount;type:numeric(15,2);not null"`
	Currency        string          `gorm:"column:currency;not null"`
	Channel         *string         `gorm:"column:channel"`
}

func (Transaction) TableName() string { return "transactions" }

// TransactionMetadata mirrors the transaction_metadata table, keyed 1:1 by transaction.
type TransactionMetadata struct {
	TransactionID  int64   `gorm:"column:transaction_id;primaryKey;autoIncrement:false"`
	Location       *string `gorm:"column:location"`
	DeviceType     *string `gorm:"column:device_type"`
	AuthMethod     *string `gorm:"column:auth_method"`
	ChannelDetails *string `gorm:"column:channel_details"`
}

func (TransactionMetadata) TableName() string { return "transaction_metadata" }

// Branch mirrors the branches table.
type Branch struct {
	BranchID    int64   `gorm:"column:branch_id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name;not null"`
	Region      string  `gorm:"column:region;not null"`
	ManagerName *string `gorm:"column:manager_name"`
}

func (Branch) TableName() string { return "branches" }

// transactionRow is one row of the transactions/transaction_metadata left join.
type transactionRow struct {
	TransactionID         int64           `gorm:"column:transaction_id"`
	AccountID             int64           `gorm:"column:account_id"`
	TransactionType       string          `gorm:"column:transaction_type"`
	TransactionDate       time.Time       `gorm:"column:transaction_date"`
	Amount                decimal.Decimal `gorm:"column:amount"`
	Currency              string          `gorm:"column:currency"`
	Channel               *string         `gorm:"column:channel"`
	MetadataTransactionID *int64          `gorm:"column:metadata_transaction_id"`
	Location              *string         `gorm:"column:location"`
	DeviceType            *string         `gorm:"column:device_type"`
	AuthMethod            *string         `gorm:"column:auth_method"`
	ChannelDetails        *string         `gorm:"column:channel_details"`
}

// customerRow is one customer with its account identifiers aggregated into text.
type customerRow struct {
	CustomerID   int64     `gorm:"column:customer_id"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
	Email        string    `gorm:"column:email"`
	Phone        *string   `gorm:"column:phone"`
	CustomerType string    `gorm:"column:customer_type"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	AccountIDs   *string   `gorm:"column:account_ids"`
}

type statusCount struct {
	Status string `gorm:"column:status"`
	Total  int64  `gorm:"column:total"`
}
