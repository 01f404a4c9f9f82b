package bank

import (
	"context"
	"fmt"
)

// CascadeDeleter removes an entity together with every dependent row, in
// dependency order, inside a single store transaction.
type CascadeDeleter struct {
	store Store
}

// NewCascadeDeleter binds a CascadeDeleter to a store.
func NewCascadeDeleter(store Store) *CascadeDeleter {
	return &CascadeDeleter{store: store}
}

// DeleteTransaction removes the metadata row, then the transaction row.
func (deleter *CascadeDeleter) DeleteTransaction(ctx context.Context, transactionID int64) (DeleteSummary, error) {
	var summary DeleteSummary
	err := deleter.store.WithTx(ctx, func(ctx context.Context, txStore Store) error {
		removed, err := deleteTransactionRows(ctx, txStore, transactionID)
		if err != nil {
			return err
		}
		summary = removed
		return nil
	})
	if err != nil {
		return DeleteSummary{}, err
	}
	return summary, nil
}

// DeleteAccount removes the account's transaction metadata, its transactions, then the account.
func (deleter *CascadeDeleter) DeleteAccount(ctx context.Context, accountID int64) (DeleteSummary, error) {
	var summary DeleteSummary
	err := deleter.store.WithTx(ctx, func(ctx context.Context, txStore Store) error {
		removed, err := deleteAccountRows(ctx, txStore, accountID)
		if err != nil {
			return err
		}
		summary = removed
		return nil
	})
	if err != nil {
		return DeleteSummary{}, err
	}
	return summary, nil
}

// DeleteCustomer runs the account cascade for every owned account, then removes the customer.
func (deleter *CascadeDeleter) DeleteCustomer(ctx context.Context, customerID int64) (DeleteSummary, error) {
	var summary DeleteSummary
	err := deleter.store.WithTx(ctx, func(ctx context.Context, txStore Store) error {
		accountIDs, err := txStore.ListCustomerAccountIDs(ctx, customerID)
		if err != nil {
			return err
		}
		var removed DeleteSummary
		for _, accountID := range accountIDs {
			accountSummary, err := deleteAccountRows(ctx, txStore, accountID)
			if err != nil {
				return err
			}
			removed.add(accountSummary)
		}
		customers, err := txStore.DeleteCustomer(ctx, customerID)
		if err != nil {
			return err
		}
		if customers == 0 {
			return fmt.Errorf("%w: customer %d", ErrNotFound, customerID)
		}
		removed.Customers = customers
		summary = removed
		return nil
	})
	if err != nil {
		return DeleteSummary{}, err
	}
	return summary, nil
}

func deleteTransactionRows(ctx context.Context, txStore Store, transactionID int64) (DeleteSummary, error) {
	metadata, err := txStore.DeleteTransactionMetadata(ctx, transactionID)
	if err != nil {
		return DeleteSummary{}, err
	}
	transactions, err := txStore.DeleteTransaction(ctx, transactionID)
	if err != nil {
		return DeleteSummary{}, err
	}
	if transactions == 0 {
		return DeleteSummary{}, fmt.Errorf("%w: transaction %d", ErrNotFound, transactionID)
	}
	return DeleteSummary{Metadata: metadata, Transactions: transactions}, nil
}

func deleteAccountRows(ctx context.Context, txStore Store, accountID int64) (DeleteSummary, error) {
	metadata, err := txStore.DeleteAccountTransactionMetadata(ctx, accountID)
	if err != nil {
		return DeleteSummary{}, err
	}
	transactions, err := txStore.DeleteAccountTransactions(ctx, accountID)
	if err != nil {
		return DeleteSummary{}, err
	}
	accounts, err := txStore.DeleteAccount(ctx, accountID)
	if err != nil {
		return DeleteSummary{}, err
	}
	if accounts == 0 {
		return DeleteSummary{}, fmt.Errorf("%w: account %d", ErrNotFound, accountID)
	}
	return DeleteSummary{Metadata: metadata, Transactions: transactions, Accounts: accounts}, nil
}
