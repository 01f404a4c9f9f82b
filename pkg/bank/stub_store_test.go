package bank

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2024, time.March, 1, 12, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

var errStoreFailure = errors.New("store error")

type stubStore struct {
	test             *testing.T
	calls            []string
	failOn           map[string]error
	accounts         map[int64]Account
	branches         map[int64]Branch
	customerAccounts map[int64][]int64
	customers        map[int64]bool
	transactions     map[int64]Transaction
	statusCounts     map[AccountStatus]int64
	counts           Statistics
	nextID           int64
	lastAccountQuery AccountQuery
}

func newStubStore(test *testing.T) *stubStore {
	test.Helper()
	return &stubStore{
		test:             test,
		failOn:           map[string]error{},
		accounts:         map[int64]Account{},
		branches:         map[int64]Branch{},
		customerAccounts: map[int64][]int64{},
		customers:        map[int64]bool{},
		transactions:     map[int64]Transaction{},
		statusCounts:     map[AccountStatus]int64{},
		nextID:           100,
	}
}

func (store *stubStore) record(name string) error {
	store.calls = append(store.calls, name)
	return store.failOn[name]
}

func (store *stubStore) WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error {
	store.calls = append(store.calls, "begin")
	if err := fn(ctx, store); err != nil {
		store.calls = append(store.calls, "rollback")
		return err
	}
	store.calls = append(store.calls, "commit")
	return nil
}

func (store *stubStore) ListAccounts(_ context.Context, query AccountQuery) (Page[Account], error) {
	store.lastAccountQuery = query
	if err := store.record("ListAccounts"); err != nil {
		return Page[Account]{}, err
	}
	items := make([]Account, 0, len(store.accounts))
	for _, account := range store.accounts {
		items = append(items, account)
	}
	return Page[Account]{Items: items, TotalCount: int64(len(items))}, nil
}

func (store *stubStore) GetAccount(_ context.Context, accountID int64) (Account, error) {
	if err := store.record("GetAccount"); err != nil {
		return Account{}, err
	}
	account, ok := store.accounts[accountID]
	if !ok {
		return Account{}, fmt.Errorf("%w: account %d", ErrNotFound, accountID)
	}
	return account, nil
}

func (store *stubStore) InsertAccount(_ context.Context, account Account) (Account, error) {
	if err := store.record("InsertAccount"); err != nil {
		return Account{}, err
	}
	store.nextID++
	account.AccountID = store.nextID
	store.accounts[account.AccountID] = account
	return account, nil
}

func (store *stubStore) UpdateAccountStatus(_ context.Context, accountID int64, status AccountStatus) (int64, error) {
	if err := store.record("UpdateAccountStatus"); err != nil {
		return 0, err
	}
	account, ok := store.accounts[accountID]
	if !ok {
		return 0, nil
	}
	account.Status = status
	store.accounts[accountID] = account
	return 1, nil
}

func (store *stubStore) DeleteAccountTransactionMetadata(_ context.Context, accountID int64) (int64, error) {
	if err := store.record(fmt.Sprintf("DeleteAccountTransactionMetadata(%d)", accountID)); err != nil {
		return 0, err
	}
	return 2, nil
}

func (store *stubStore) DeleteAccountTransactions(_ context.Context, accountID int64) (int64, error) {
	if err := store.record(fmt.Sprintf("DeleteAccountTransactions(%d)", accountID)); err != nil {
		return 0, err
	}
	return 3, nil
}

func (store *stubStore) DeleteAccount(_ context.Context, accountID int64) (int64, error) {
	if err := store.record(fmt.Sprintf("DeleteAccount(%d)", accountID)); err != nil {
		return 0, err
	}
	if _, ok := store.accounts[accountID]; !ok {
		return 0, nil
	}
	delete(store.accounts, accountID)
	return 1, nil
}

func (store *stubStore) ListTransactions(_ context.Context, _ TransactionQuery) (Page[Transaction], error) {
	if err := store.record("ListTransactions"); err != nil {
		return Page[Transaction]{}, err
	}
	return Page[Transaction]{Items: []Transaction{}}, nil
}

func (store *stubStore) GetTransaction(_ context.Context, transactionID int64) (Transaction, error) {
	if err := store.record("GetTransaction"); err != nil {
		return Transaction{}, err
	}
	transaction, ok := store.transactions[transactionID]
	if !ok {
		return Transaction{}, fmt.Errorf("%w: transaction %d", ErrNotFound, transactionID)
	}
	return transaction, nil
}

func (store *stubStore) InsertTransaction(_ context.Context, transaction Transaction) (Transaction, error) {
	if err := store.record("InsertTransaction"); err != nil {
		return Transaction{}, err
	}
	store.nextID++
	transaction.TransactionID = store.nextID
	store.transactions[transaction.TransactionID] = transaction
	return transaction, nil
}

func (store *stubStore) DeleteTransactionMetadata(_ context.Context, transactionID int64) (int64, error) {
	if err := store.record(fmt.Sprintf("DeleteTransactionMetadata(%d)", transactionID)); err != nil {
		return 0, err
	}
	return 1, nil
}

func (store *stubStore) DeleteTransaction(_ context.Context, transactionID int64) (int64, error) {
	if err := store.record(fmt.Sprintf("DeleteTransaction(%d)", transactionID)); err != nil {
		return 0, err
	}
	if _, ok := store.transactions[transactionID]; !ok {
		return 0, nil
	}
	delete(store.transactions, transactionID)
	return 1, nil
}

func (store *stubStore) ListCustomers(_ context.Context, _ CustomerQuery) (Page[Customer], error) {
	if err := store.record("ListCustomers"); err != nil {
		return Page[Customer]{}, err
	}
	return Page[Customer]{Items: []Customer{}}, nil
}

func (store *stubStore) GetCustomer(_ context.Context, customerID int64) (Customer, error) {
	if err := store.record("GetCustomer"); err != nil {
		return Customer{}, err
	}
	if !store.customers[customerID] {
		return Customer{}, fmt.Errorf("%w: customer %d", ErrNotFound, customerID)
	}
	return Customer{CustomerID: customerID, AccountIDs: store.customerAccounts[customerID]}, nil
}

func (store *stubStore) InsertCustomer(_ context.Context, customer Customer) (Customer, error) {
	if err := store.record("InsertCustomer"); err != nil {
		return Customer{}, err
	}
	store.nextID++
	customer.CustomerID = store.nextID
	store.customers[customer.CustomerID] = true
	return customer, nil
}

func (store *stubStore) ListCustomerAccountIDs(_ context.Context, customerID int64) ([]int64, error) {
	if err := store.record(fmt.Sprintf("ListCustomerAccountIDs(%d)", customerID)); err != nil {
		return nil, err
	}
	return store.customerAccounts[customerID], nil
}

func (store *stubStore) DeleteCustomer(_ context.Context, customerID int64) (int64, error) {
	if err := store.record(fmt.Sprintf("DeleteCustomer(%d)", customerID)); err != nil {
		return 0, err
	}
	if !store.customers[customerID] {
		return 0, nil
	}
	delete(store.customers, customerID)
	return 1, nil
}

func (store *stubStore) ListBranches(_ context.Context) ([]Branch, error) {
	if err := store.record("ListBranches"); err != nil {
		return nil, err
	}
	branches := make([]Branch, 0, len(store.branches))
	for _, branch := range store.branches {
		branches = append(branches, branch)
	}
	return branches, nil
}

func (store *stubStore) GetBranch(_ context.Context, branchID int64) (Branch, error) {
	if err := store.record("GetBranch"); err != nil {
		return Branch{}, err
	}
	branch, ok := store.branches[branchID]
	if !ok {
		return Branch{}, fmt.Errorf("%w: branch %d", ErrNotFound, branchID)
	}
	return branch, nil
}

func (store *stubStore) InsertBranch(_ context.Context, branch Branch) (Branch, error) {
	if err := store.record("InsertBranch"); err != nil {
		return Branch{}, err
	}
	store.nextID++
	branch.BranchID = store.nextID
	store.branches[branch.BranchID] = branch
	return branch, nil
}

func (store *stubStore) UpdateBranchManager(_ context.Context, branchID int64, managerName string) (int64, error) {
	if err := store.record("UpdateBranchManager"); err != nil {
		return 0, err
	}
	branch, ok := store.branches[branchID]
	if !ok {
		return 0, nil
	}
	branch.ManagerName = managerName
	store.branches[branchID] = branch
	return 1, nil
}

func (store *stubStore) DeleteBranch(_ context.Context, branchID int64) (int64, error) {
	if err := store.record("DeleteBranch"); err != nil {
		return 0, err
	}
	if _, ok := store.branches[branchID]; !ok {
		return 0, nil
	}
	delete(store.branches, branchID)
	return 1, nil
}

func (store *stubStore) CountTransactions(context.Context) (int64, error) {
	return store.counts.TotalTransactions, store.record("CountTransactions")
}

func (store *stubStore) CountCustomers(context.Context) (int64, error) {
	return store.counts.TotalCustomers, store.record("CountCustomers")
}

func (store *stubStore) CountAccounts(context.Context) (int64, error) {
	return store.counts.TotalAccounts, store.record("CountAccounts")
}

func (store *stubStore) CountBranches(context.Context) (int64, error) {
	return store.counts.TotalBranches, store.record("CountBranches")
}

func (store *stubStore) CountAccountsByStatus(context.Context) (map[AccountStatus]int64, error) {
	if err := store.record("CountAccountsByStatus"); err != nil {
		return nil, err
	}
	return store.statusCounts, nil
}

type stubRouter struct {
	stores map[Target]*stubStore
}

func newStubRouter(test *testing.T) *stubRouter {
	test.Helper()
	router := &stubRouter{stores: map[Target]*stubStore{}}
	for _, target := range Targets() {
		router.stores[target] = newStubStore(test)
	}
	return router
}

func (router *stubRouter) For(target Target) Store {
	return router.stores[target]
}

func mustNewService(test *testing.T, router StoreRouter, options ...ServiceOption) *Service {
	test.Helper()
	service, err := NewService(router, fixedClock, options...)
	if err != nil {
		test.Fatalf("service init failed: %v", err)
	}
	return service
}

func mustDecimal(test *testing.T, raw string) decimal.Decimal {
	test.Helper()
	value, err := decimal.NewFromString(raw)
	if err != nil {
		test.Fatalf("decimal %q: %v", raw, err)
	}
	return value
}

func int64Pointer(value int64) *int64 {
	return &value
}

func assertCalls(test *testing.T, store *stubStore, want []string) {
	test.Helper()
	if len(store.calls) != len(want) {
		test.Fatalf("expected calls %v, got %v", want, store.calls)
	}
	for index := range want {
		if store.calls[index] != want[index] {
			test.Fatalf("expected calls %v, got %v", want, store.calls)
		}
	}
}
