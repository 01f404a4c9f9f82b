package bank

import "context"

// StoreRouter resolves the Store bound to a storage target.
type StoreRouter interface {
	For(target Target) Store
}

// Store is the persistence contract used by Service. Delete primitives report
// rows affected so that callers can distinguish missing rows.
type Store interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error
	AccountStore
	TransactionStore
	CustomerStore
	BranchStore
	StatisticsStore
}

// AccountStore persists accounts.
type AccountStore interface {
	ListAccounts(ctx context.Context, query AccountQuery) (Page[Account], error)
	GetAccount(ctx context.Context, accountID int64) (Account, error)
	InsertAccount(ctx context.Context, account Account) (Account, error)
	UpdateAccountStatus(ctx context.Context, accountID int64, status AccountStatus) (int64, error)
	DeleteAccountTransactionMetadata(ctx context.Context, accountID int64) (int64, error)
	DeleteAccountTransactions(ctx context.Context, accountID int64) (int64, error)
	DeleteAccount(ctx context.Context, accountID int64) (int64, error)
}

// TransactionStore persists transactions and their metadata rows.
type TransactionStore interface {
	ListTransactions(ctx context.Context, query TransactionQuery) (Page[Transaction], error)
	GetTransaction(ctx context.Context, transactionID int64) (Transaction, error)
	InsertTransaction(ctx context.Context, transaction Transaction) (Transaction, error)
	DeleteTransactionMetadata(ctx context.Context, transactionID int64) (int64, error)
	DeleteTransaction(ctx context.Context, transactionID int64) (int64, error)
}

// CustomerStore persists customers.
type CustomerStore interface {
	ListCustomers(ctx context.Context, query CustomerQuery) (Page[Customer], error)
	GetCustomer(ctx context.Context, customerID int64) (Customer, error)
	InsertCustomer(ctx context.Context, customer Customer) (Customer, error)
	ListCustomerAccountIDs(ctx context.Context, customerID int64) ([]int64, error)
	DeleteCustomer(ctx context.Context, customerID int64) (int64, error)
}

// BranchStore persists branches.
type BranchStore interface {
	ListBranches(ctx context.Context) ([]Branch, error)
	GetBranch(ctx context.Context, branchID int64) (Branch, error)
	InsertBranch(ctx context.Context, branch Branch) (Branch, error)
	UpdateBranchManager(ctx context.Context, branchID int64, managerName string) (int64, error)
	DeleteBranch(ctx context.Context, branchID int64) (int64, error)
}

// StatisticsStore answers aggregate counts.
type StatisticsStore interface {
	CountTransactions(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountAccounts(ctx context.Context) (int64, error)
	CountBranches(ctx context.Context) (int64, error)
	CountAccountsByStatus(ctx context.Context) (map[AccountStatus]int64, error)
}
