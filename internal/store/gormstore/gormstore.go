package gormstore

import (
	"context"

	"github.com/MarkoPoloResearchLab/bankdata/pkg/bank"
	"gorm.io/gorm"
)

const deleteAccountMetadataSQL = "DELETE FROM transaction_metadata WHERE transaction_id IN " +
	"(SELECT transaction_id FROM transactions WHERE account_id = ?)"

// Store implements bank.Store using GORM.
type Store struct {
	db      *gorm.DB
	builder QueryBuilder
}

// New returns a Store backed by gorm.DB.
func New(db *gorm.DB, dialect Dialect) *Store {
	return &Store{db: db, builder: NewQueryBuilder(dialect)}
}

// WithTx executes fn within a transaction.
func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore bank.Store) error) error {
	return store.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		return fn(ctx, &Store{db: transaction, builder: store.builder})
	})
}

// Ping verifies the underlying connection pool is reachable.
func (store *Store) Ping(ctx context.Context) error {
	sqlDB, err := store.db.DB()
	if err != nil {
		return wrapStoreError(errorSubjectRouter, errorCodePing, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return wrapStoreError(errorSubjectRouter, errorCodePing, err)
	}
	return nil
}

// selectPage runs the count query and then the data query. The two reads are
// separate round trips, so a concurrent write can make the count disagree with the page.
func (store *Store) selectPage(ctx context.Context, subject string, query SelectQuery, rows any) (int64, error) {
	var total int64
	if err := store.db.WithContext(ctx).Raw(query.CountSQL, query.CountArgs...).Scan(&total).Error; err != nil {
		return 0, wrapStoreError(subject, errorCodeCount, err)
	}
	if err := store.db.WithContext(ctx).Raw(query.DataSQL, query.DataArgs...).Scan(rows).Error; err != nil {
		return 0, wrapStoreError(subject, errorCodeList, err)
	}
	return total, nil
}

func (store *Store) ListAccounts(ctx context.Context, query bank.AccountQuery) (bank.Page[bank.Account], error) {
	built, err := store.builder.Accounts(query)
	if err != nil {
		return bank.Page[bank.Account]{}, err
	}
	var rows []Account
	total, err := store.selectPage(ctx, errorSubjectAccount, built, &rows)
	if err != nil {
		return bank.Page[bank.Account]{}, err
	}
	items := make([]bank.Account, 0, len(rows))
	for _, row := range rows {
		account, err := mapAccountRow(row)
		if err != nil {
			return bank.Page[bank.Account]{}, wrapStoreError(errorSubjectAccount, errorCodeInvalid, err)
		}
		items = append(items, account)
	}
	return bank.Page[bank.Account]{Items: items, TotalCount: total}, nil
}

func (store *Store) GetAccount(ctx context.Context, accountID int64) (bank.Account, error) {
	var row Account
	if err := store.db.WithContext(ctx).Where("account_id = ?", accountID).Take(&row).Error; err != nil {
		return bank.Account{}, wrapLookupError(errorSubjectAccount, accountID, err)
	}
	account, err := mapAccountRow(row)
	if err != nil {
		return bank.Account{}, wrapStoreError(errorSubjectAccount, errorCodeInvalid, err)
	}
	return account, nil
}

func (store *Store) InsertAccount(ctx context.Context, account bank.Account) (bank.Account, error) {
	row := Account{
		CustomerID:  account.CustomerID,
		AccountType: string(account.AccountType),
		Status:      string(account.Status),
		Balance:     account.Balance,
	}
	if err := store.db.WithContext(ctx).Create(&row).Error; err != nil {
		return bank.Account{}, wrapStoreError(errorSubjectAccount, errorCodeInsert, err)
	}
	account.AccountID = row.AccountID
	return account, nil
}

func (store *Store) UpdateAccountStatus(ctx context.Context, accountID int64, status bank.AccountStatus) (int64, error) {
	result := store.db.WithContext(ctx).
		Model(&Account{}).
		Where("account_id = ?", accountID).
		Update("status", string(status))
	if result.Error != nil {
		return 0, wrapStoreError(errorSubjectAccount, errorCodeUpdate, result.Error)
	}
	return result.RowsAffected, nil
}

func (store *Store) DeleteAccountTransactionMetadata(ctx context.Context, accountID int64) (int64, error) {
	result := store.db.WithContext(ctx).Exec(deleteAccountMetadataSQL, accountID)
	if result.Error != nil {
		return 0, wrapStoreError(errorSubjectMetadata, errorCodeDelete, result.Error)
	}
	return result.RowsAffected, nil
}

func (store *Store) DeleteAccountTransactions(ctx context.Context, accountID int64) (int64, error) {
	result := store.db.WithContext(ctx).Where("account_id = ?", accountID).Delete(&Transaction{})
	if result.Error != nil {
		return 0, wrapStoreError(errorSubjectTransaction, errorCodeDelete, result.Error)
	}
	return result.RowsAffected, nil
}

func (store *Store) DeleteAccount(ctx context.Context, accountID int64) (int64, error) {
	result := store.db.WithContext(ctx).Where("account_id = ?", accountID).Delete(&Account{})
	if result.Error != nil {
		return 0, wrapStoreError(errorSubjectAccount, errorCodeDelete, result.Error)
	}
	return result.RowsAffected, nil
}

func (store *Store) ListTransactions(ctx context.Context, query bank.TransactionQuery) (bank.Page[bank.Transaction], error) {
	built, err := store.builder.Transactions(query)
	if err != nil {
		return bank.Page[bank.Transaction]{}, err
	}
	var rows []transactionRow
	total, err := store.selectPage(ctx, errorSubjectTransaction, built, &rows)
	if err != nil {
		return bank.Page[bank.Transaction]{}, err
	}
	items := make([]bank.Transaction, 0, len(rows))
	for _, row := range rows {
		transaction, err := mapTransactionRow(row)
		if err != nil {
			return bank.Page[bank.Transaction]{}, wrapStoreError(errorSubjectTransaction, errorCodeInvalid, err)
		}
		items = append(items, transaction)
	}
	return bank.Page[bank.Transaction]{Items: items, TotalCount: total}, nil
}

func (store *Store) GetTransaction(ctx context.Context, transactionID int64) (bank.Transaction, error) {
	statement, args := store.builder.TransactionByID(transactionID)
	var rows []transactionRow
	if err := store.db.WithContext(ctx).Raw(statement, args...).Scan(&rows).Error; err != nil {
		return bank.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeGet, err)
	}
	if len(rows) == 0 {
		return bank.Transaction{}, wrapLookupError(errorSubjectTransaction, transactionID, gorm.ErrRecordNotFound)
	}
	transaction, err := mapTransactionRow(rows[0])
	if err != nil {
		return bank.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeInvalid, err)
	}
	return transaction, nil
}

// InsertTransaction writes the transaction row and, when present, its metadata row.
// Callers wanting both rows to land atomically run it inside WithTx.
func (store *Store) InsertTransaction(ctx context.Context, transaction bank.Transaction) (bank.Transaction, error) {
	row := Transaction{
		AccountID:       transaction.AccountID,
		TransactionType: string(transaction.TransactionType),
		TransactionDate: transaction.TransactionDate.UTC(),
		Amount:          transaction.Amount,
		Currency:        string(transaction.Currency),
		Channel:         optionalString(string(transaction.Channel)),
	}
	if err := store.db.WithContext(ctx).Create(&row).Error; err != nil {
		return bank.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeInsert, err)
	}
	transaction.TransactionID = row.TransactionID
	if transaction.Metadata == nil {
		return transaction, nil
	}
	metadata := TransactionMetadata{
		TransactionID:  row.TransactionID,
		Location:       optionalString(transaction.Metadata.Location),
		DeviceType:     optionalString(string(transaction.Metadata.DeviceType)),
		AuthMethod:     optionalString(string(transaction.Metadata.AuthMethod)),
		ChannelDetails: optionalString(transaction.Metadata.ChannelDetails),
	}
	if err := store.db.WithContext(ctx).Create(&metadata).Error; err != nil {
		return bank.Transaction{}, wrapStoreError(errorSubjectMetadata, errorCodeInsert, err)
	}
	return transaction, nil
}

func (store *Store) DeleteTransactionMetadata(ctx context.Context, transactionID int64) (int64, error) {
	result := store.db.WithContext(ctx).Where("transaction_id = ?", transactionID).Delete(&TransactionMetadata{})
	if result.Error != nil {
		return 0, wrapStoreError(errorSubjectMetadata, errorCodeDelete, result.Error)
	}
	return result.RowsAffected, nil
}

func (store *Store) DeleteTransaction(ctx context.Context, transactionID int64) (int64, error) {
	result := store.db.WithContext(ctx).Where("transaction_id = ?", transactionID).Delete(&Transaction{})
	if result.Error != nil {
		return 0, wrapStoreError(errorSubjectTransaction, errorCodeDelete, result.Error)
	}
	return result.RowsAffected, nil
}

func (store *Store) ListCustomers(ctx context.Context, query bank.CustomerQuery) (bank.Page[bank.Customer], error) {
	built, err := store.builder.Customers(query)
	if err != nil {
		return bank.Page[bank.Customer]{}, err
	}
	var rows []customerRow
	total, err := store.selectPage(ctx, errorSubjectCustomer, built, &rows)
	if err != nil {
		return bank.Page[bank.Customer]{}, err
	}
	items := make([]bank.Customer, 0, len(rows))
	for _, row := range rows {
		customer, err := mapCustomerRow(row)
		if err != nil {
			return bank.Page[bank.Customer]{}, wrapStoreError(errorSubjectCustomer, errorCodeInvalid, err)
		}
		items = append(items, customer)
	}
	return bank.Page[bank.Customer]{Items: items, TotalCount: total}, nil
}

func (store *Store) GetCustomer(ctx context.Context, customerID int64) (bank.Customer, error) {
	statement, args := store.builder.CustomerByID(customerID)
	var rows []customerRow
	if err := store.db.WithContext(ctx).Raw(statement, args...).Scan(&rows).Error; err != nil {
		return bank.Customer{}, wrapStoreError(errorSubjectCustomer, errorCodeGet, err)
	}
	if len(rows) == 0 {
		return bank.Customer{}, wrapLookupError(errorSubjectCustomer, customerID, gorm.ErrRecordNotFound)
	}
	customer, err := mapCustomerRow(rows[0])
	if err != nil {
		return bank.Customer{}, wrapStoreError(errorSubjectCustomer, errorCodeInvalid, err)
	}
	return customer, nil
}

func (store *Store) InsertCustomer(ctx context.Context, customer bank.Customer) (bank.Customer, error) {
	row := Customer{
		FirstName:    customer.FirstName,
		LastName:     customer.LastName,
		Email:        customer.Email,
		Phone:        optionalString(customer.Phone),
		CustomerType: string(customer.CustomerType),
		CreatedAt:    customer.CreatedAt.UTC(),
	}
	if err := store.db.WithContext(ctx).Create(&row).Error; err != nil {
		return bank.Customer{}, wrapStoreError(errorSubjectCustomer, errorCodeInsert, err)
	}
	customer.CustomerID = row.CustomerID
	if customer.AccountIDs == nil {
		customer.AccountIDs = []int64{}
	}
	return customer, nil
}

func (store *Store) ListCustomerAccountIDs(ctx context.Context, customerID int64) ([]int64, error) {
	var accountIDs []int64
	err := store.db.WithContext(ctx).
		Model(&Account{}).
		Where("customer_id = ?", customerID).
		Order("account_id ASC").
		Pluck("account_id", &accountIDs).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectCustomer, errorCodeList, err)
	}
	return accountIDs, nil
}

func (store *Store) DeleteCustomer(ctx context.Context, customerID int64) (int64, error) {
	result := store.db.WithContext(ctx).Where("customer_id = ?", customerID).Delete(&Customer{})
	if result.Error != nil {
		return 0, wrapStoreError(errorSubjectCustomer, errorCodeDelete, result.Error)
	}
	return result.RowsAffected, nil
}

func (store *Store) ListBranches(ctx context.Context) ([]bank.Branch, error) {
	var rows []Branch
	if err := store.db.WithContext(ctx).Order("branch_id ASC").Find(&rows).Error; err != nil {
		return nil, wrapStoreError(errorSubjectBranch, errorCodeList, err)
	}
	branches := make([]bank.Branch, 0, len(rows))
	for _, row := range rows {
		branch, err := mapBranchRow(row)
		if err != nil {
			return nil, wrapStoreError(errorSubjectBranch, errorCodeInvalid, err)
		}
		branches = append(branches, branch)
	}
	return branches, nil
}

func (store *Store) GetBranch(ctx context.Context, branchID int64) (bank.Branch, error) {
	var row Branch
	if err := store.db.WithContext(ctx).Where("branch_id = ?", branchID).Take(&row).Error; err != nil {
		return bank.Branch{}, wrapLookupError(errorSubjectBranch, branchID, err)
	}
	branch, err := mapBranchRow(row)
	if err != nil {
		return bank.Branch{}, wrapStoreError(errorSubjectBranch, errorCodeInvalid, err)
	}
	return branch, nil
}

func (store *Store) InsertBranch(ctx context.Context, branch bank.Branch) (bank.Branch, error) {
	row := Branch{
		Name:        branch.Name,
		Region:      string(branch.Region),
		ManagerName: optionalString(branch.ManagerName),
	}
	if err := store.db.WithContext(ctx).Create(&row).Error; err != nil {
		return bank.Branch{}, wrapStoreError(errorSubjectBranch, errorCodeInsert, err)
	}
	branch.BranchID = row.BranchID
	return branch, nil
}

func (store *Store) UpdateBranchManager(ctx context.Context, branchID int64, managerName string) (int64, error) {
	result := store.db.WithContext(ctx).
		Model(&Branch{}).
		Where("branch_id = ?", branchID).
		Update("manager_name", managerName)
	if result.Error != nil {
		return 0, wrapStoreError(errorSubjectBranch, errorCodeUpdate, result.Error)
	}
	return result.RowsAffected, nil
}

func (store *Store) DeleteBranch(ctx context.Context, branchID int64) (int64, error) {
	result := store.db.WithContext(ctx).Where("branch_id = ?", branchID).Delete(&Branch{})
	if result.Error != nil {
		return 0, wrapStoreError(errorSubjectBranch, errorCodeDelete, result.Error)
	}
	return result.RowsAffected, nil
}

func (store *Store) CountTransactions(ctx context.Context) (int64, error) {
	return store.count(ctx, &Transaction{})
}

func (store *Store) CountCustomers(ctx context.Context) (int64, error) {
	return store.count(ctx, &Customer{})
}

func (store *Store) CountAccounts(ctx context.Context) (int64, error) {
	return store.count(ctx, &Account{})
}

func (store *Store) CountBranches(ctx context.Context) (int64, error) {
	return store.count(ctx, &Branch{})
}

func (store *Store) CountAccountsByStatus(ctx context.Context) (map[bank.AccountStatus]int64, error) {
	var rows []statusCount
	err := store.db.WithContext(ctx).
		Model(&Account{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectStatistics, errorCodeCount, err)
	}
	counts := make(map[bank.AccountStatus]int64, len(rows))
	for _, row := range rows {
		status, err := bank.ParseAccountStatus(row.Status)
		if err != nil {
			return nil, wrapStoreError(errorSubjectStatistics, errorCodeInvalid, err)
		}
		counts[status] += row.Total
	}
	return counts, nil
}

func (store *Store) count(ctx context.Context, model any) (int64, error) {
	var total int64
	if err := store.db.WithContext(ctx).Model(model).Count(&total).Error; err != nil {
		return 0, wrapStoreError(errorSubjectStatistics, errorCodeCount, err)
	}
	return total, nil
}
