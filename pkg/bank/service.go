package bank

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Service contains the domain logic over the routed stores.
type Service struct {
	router StoreRouter
	nowFn  func() time.Time
	logger OperationLogger
}

// NewService wires a Service.
func NewService(router StoreRouter, now func() time.Time, options ...ServiceOption) (*Service, error) {
	if router == nil {
		return nil, fmt.Errorf("%w: store router dependency is nil", ErrInvalidServiceConfig)
	}
	if now == nil {
		return nil, fmt.Errorf("%w: clock dependency is nil", ErrInvalidServiceConfig)
	}
	service := &Service{router: router, nowFn: now}
	for _, option := range options {
		if option != nil {
			option(service)
		}
	}
	return service, nil
}

// CreateAccountRequest carries the fields of a new account. Nil pointers are absent fields.
type CreateAccountRequest struct {
	CustomerID  *int64
	AccountType string
	Status      string
	Balance     *decimal.Decimal
}

// CreateTransactionRequest carries the fields of a new transaction and its optional metadata.
type CreateTransactionRequest struct {
	AccountID       *int64
	TransactionType string
	TransactionDate *time.Time
	Amount          *decimal.Decimal
	Currency        string
	Channel         string
	Location        string
	DeviceType      string
	AuthMethod      string
	ChannelDetails  string
}

// CreateCustomerRequest carries the fields of a new customer.
type CreateCustomerRequest struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	CustomerType string
}

// CreateBranchRequest carries the fields of a new branch.
type CreateBranchRequest struct {
	Name        string
	Region      string
	ManagerName string
}

// ParseIdentifier parses a path identifier.
func ParseIdentifier(field string, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidIdentifier, field, raw)
	}
	return id, nil
}

// ListAccounts returns one page of accounts matching the request.
func (service *Service) ListAccounts(ctx context.Context, target Target, request AccountListRequest) (Page[Account], error) {
	query, err := NewAccountQuery(request)
	if err != nil {
		return Page[Account]{}, err
	}
	return service.router.For(target).ListAccounts(ctx, query)
}

// GetAccount returns one account or ErrNotFound.
func (service *Service) GetAccount(ctx context.Context, target Target, accountID int64) (Account, error) {
	return service.router.For(target).GetAccount(ctx, accountID)
}

// CreateAccount validates and inserts an account.
func (service *Service) CreateAccount(ctx context.Context, target Target, request CreateAccountRequest) (Account, error) {
	account, err := newAccount(request)
	if err != nil {
		return Account{}, err
	}
	created, operationError := service.router.For(target).InsertAccount(ctx, account)
	service.logOperation(ctx, OperationLog{
		Operation: operationCreateAccount,
		Target:    target,
		Entity:    entityAccount,
		EntityID:  created.AccountID,
		Error:     operationError,
	})
	if operationError != nil {
		return Account{}, operationError
	}
	return created, nil
}

// UpdateAccountStatus changes an account's status and returns the updated account.
func (service *Service) UpdateAccountStatus(ctx context.Context, target Target, accountID int64, rawStatus string) (Account, error) {
	if strings.TrimSpace(rawStatus) == "" {
		return Account{}, missingField("status")
	}
	status, err := ParseAccountStatus(rawStatus)
	if err != nil {
		return Account{}, err
	}
	var updated Account
	operationError := service.router.For(target).WithTx(ctx, func(ctx context.Context, txStore Store) error {
		if _, err := txStore.GetAccount(ctx, accountID); err != nil {
			return err
		}
		if _, err := txStore.UpdateAccountStatus(ctx, accountID, status); err != nil {
			return err
		}
		account, err := txStore.GetAccount(ctx, accountID)
		if err != nil {
			return err
		}
		updated = account
		return nil
	})
	service.logOperation(ctx, OperationLog{
		Operation: operationUpdateAccountStatus,
		Target:    target,
		Entity:    entityAccount,
		EntityID:  accountID,
		Error:     operationError,
	})
	if operationError != nil {
		return Account{}, operationError
	}
	return updated, nil
}

// DeleteAccount removes an account with its transactions and their metadata.
func (service *Service) DeleteAccount(ctx context.Context, target Target, accountID int64) (DeleteSummary, error) {
	summary, operationError := NewCascadeDeleter(service.router.For(target)).DeleteAccount(ctx, accountID)
	service.logOperation(ctx, OperationLog{
		Operation: operationDeleteAccount,
		Target:    target,
		Entity:    entityAccount,
		EntityID:  accountID,
		Deleted:   summary,
		Error:     operationError,
	})
	return summary, operationError
}

// ListTransactions returns one page of transactions matching the request.
func (service *Service) ListTransactions(ctx context.Context, target Target, request TransactionListRequest) (Page[Transaction], error) {
	query, err := NewTransactionQuery(request)
	if err != nil {
		return Page[Transaction]{}, err
	}
	return service.router.For(target).ListTransactions(ctx, query)
}

// GetTransaction returns one transaction or ErrNotFound.
func (service *Service) GetTransaction(ctx context.Context, target Target, transactionID int64) (Transaction, error) {
	return service.router.For(target).GetTransaction(ctx, transactionID)
}

// CreateTransaction validates and inserts a transaction with its metadata row.
func (service *Service) CreateTransaction(ctx context.Context, target Target, request CreateTransactionRequest) (Transaction, error) {
	transaction, err := newTransaction(request, service.nowFn())
	if err != nil {
		return Transaction{}, err
	}
	var created Transaction
	operationError := service.router.For(target).WithTx(ctx, func(ctx context.Context, txStore Store) error {
		inserted, err := txStore.InsertTransaction(ctx, transaction)
		if err != nil {
			return err
		}
		created = inserted
		return nil
	})
	service.logOperation(ctx, OperationLog{
		Operation: operationCreateTransaction,
		Target:    target,
		Entity:    entityTransaction,
		EntityID:  created.TransactionID,
		Error:     operationError,
	})
	if operationError != nil {
		return Transaction{}, operationError
	}
	return created, nil
}

// DeleteTransaction removes a transaction and its metadata row.
func (service *Service) DeleteTransaction(ctx context.Context, target Target, transactionID int64) (DeleteSummary, error) {
	summary, operationError := NewCascadeDeleter(service.router.For(target)).DeleteTransaction(ctx, transactionID)
	service.logOperation(ctx, OperationLog{
		Operation: operationDeleteTransaction,
		Target:    target,
		Entity:    entityTransaction,
		EntityID:  transactionID,
		Deleted:   summary,
		Error:     operationError,
	})
	return summary, operationError
}

// ListCustomers returns one page of customers with their account identifiers.
func (service *Service) ListCustomers(ctx context.Context, target Target, request CustomerListRequest) (Page[Customer], error) {
	query, err := NewCustomerQuery(request)
	if err != nil {
		return Page[Customer]{}, err
	}
	return service.router.For(target).ListCustomers(ctx, query)
}

// GetCustomer returns one customer or ErrNotFound.
func (service *Service) GetCustomer(ctx context.Context, target Target, customerID int64) (Customer, error) {
	return service.router.For(target).GetCustomer(ctx, customerID)
}

// CreateCustomer validates and inserts a customer.
func (service *Service) CreateCustomer(ctx context.Context, target Target, request CreateCustomerRequest) (Customer, error) {
	customer, err := newCustomer(request, service.nowFn())
	if err != nil {
		return Customer{}, err
	}
	created, operationError := service.router.For(target).InsertCustomer(ctx, customer)
	service.logOperation(ctx, OperationLog{
		Operation: operationCreateCustomer,
		Target:    target,
		Entity:    entityCustomer,
		EntityID:  created.CustomerID,
		Error:     operationError,
	})
	if operationError != nil {
		return Customer{}, operationError
	}
	return created, nil
}

// DeleteCustomer removes a customer and cascades through every owned account.
func (service *Service) DeleteCustomer(ctx context.Context, target Target, customerID int64) (DeleteSummary, error) {
	summary, operationError := NewCascadeDeleter(service.router.For(target)).DeleteCustomer(ctx, customerID)
	service.logOperation(ctx, OperationLog{
		Operation: operationDeleteCustomer,
		Target:    target,
		Entity:    entityCustomer,
		EntityID:  customerID,
		Deleted:   summary,
		Error:     operationError,
	})
	return summary, operationError
}

// ListBranches returns every branch ordered by identifier.
func (service *Service) ListBranches(ctx context.Context, target Target) ([]Branch, error) {
	return service.router.For(target).ListBranches(ctx)
}

// CreateBranch validates and inserts a branch.
func (service *Service) CreateBranch(ctx context.Context, target Target, request CreateBranchRequest) (Branch, error) {
	branch, err := newBranch(request)
	if err != nil {
		return Branch{}, err
	}
	created, operationError := service.router.For(target).InsertBranch(ctx, branch)
	service.logOperation(ctx, OperationLog{
		Operation: operationCreateBranch,
		Target:    target,
		Entity:    entityBranch,
		EntityID:  created.BranchID,
		Error:     operationError,
	})
	if operationError != nil {
		return Branch{}, operationError
	}
	return created, nil
}

// UpdateBranchManager replaces a branch's manager and returns the updated branch.
func (service *Service) UpdateBranchManager(ctx context.Context, target Target, branchID int64, managerName string) (Branch, error) {
	trimmed := strings.TrimSpace(managerName)
	if trimmed == "" {
		return Branch{}, missingField("managerName")
	}
	var updated Branch
	operationError := service.router.For(target).WithTx(ctx, func(ctx context.Context, txStore Store) error {
		if _, err := txStore.GetBranch(ctx, branchID); err != nil {
			return err
		}
		if _, err := txStore.UpdateBranchManager(ctx, branchID, trimmed); err != nil {
			return err
		}
		branch, err := txStore.GetBranch(ctx, branchID)
		if err != nil {
			return err
		}
		updated = branch
		return nil
	})
	service.logOperation(ctx, OperationLog{
		Operation: operationUpdateBranchManager,
		Target:    target,
		Entity:    entityBranch,
		EntityID:  branchID,
		Error:     operationError,
	})
	if operationError != nil {
		return Branch{}, operationError
	}
	return updated, nil
}

// DeleteBranch removes a branch.
func (service *Service) DeleteBranch(ctx context.Context, target Target, branchID int64) (DeleteSummary, error) {
	var summary DeleteSummary
	branches, operationError := service.router.For(target).DeleteBranch(ctx, branchID)
	if operationError == nil && branches == 0 {
		operationError = fmt.Errorf("%w: branch %d", ErrNotFound, branchID)
	}
	if operationError == nil {
		summary.Branches = branches
	}
	service.logOperation(ctx, OperationLog{
		Operation: operationDeleteBranch,
		Target:    target,
		Entity:    entityBranch,
		EntityID:  branchID,
		Deleted:   summary,
		Error:     operationError,
	})
	return summary, operationError
}

func (service *Service) logOperation(ctx context.Context, entry OperationLog) {
	if service.logger == nil {
		return
	}
	if entry.Status == "" {
		if entry.Error != nil {
			entry.Status = operationStatusError
		} else {
			entry.Status = operationStatusOK
		}
	}
	service.logger.LogOperation(ctx, entry)
}

func missingField(field string) error {
	return fmt.Errorf("%w: %s is required", ErrMissingField, field)
}

var moneyLimit = decimal.New(1, moneyIntegerDigits)

func validateMoney(field string, value decimal.Decimal) error {
	if !value.Equal(value.Truncate(moneyScale)) {
		return fmt.Errorf("%w: %s %s has more than %d decimal places", ErrInvalidAmount, field, value.String(), moneyScale)
	}
	if value.Abs().Cmp(moneyLimit) >= 0 {
		return fmt.Errorf("%w: %s %s has more than %d integer digits", ErrInvalidAmount, field, value.String(), moneyIntegerDigits)
	}
	return nil
}

func newAccount(request CreateAccountRequest) (Account, error) {
	if request.CustomerID == nil {
		return Account{}, missingField("customerId")
	}
	if strings.TrimSpace(request.AccountType) == "" {
		return Account{}, missingField("accountType")
	}
	if strings.TrimSpace(request.Status) == "" {
		return Account{}, missingField("status")
	}
	if request.Balance == nil {
		return Account{}, missingField("balance")
	}
	if err := validateMoney("balance", *request.Balance); err != nil {
		return Account{}, err
	}
	accountType, err := ParseAccountType(request.AccountType)
	if err != nil {
		return Account{}, err
	}
	status, err := ParseAccountStatus(request.Status)
	if err != nil {
		return Account{}, err
	}
	return Account{
		CustomerID:  *request.CustomerID,
		AccountType: accountType,
		Status:      status,
		Balance:     *request.Balance,
	}, nil
}

func newTransaction(request CreateTransactionRequest, now time.Time) (Transaction, error) {
	if request.AccountID == nil {
		return Transaction{}, missingField("accountId")
	}
	if strings.TrimSpace(request.TransactionType) == "" {
		return Transaction{}, missingField("transactionType")
	}
	if request.Amount == nil {
		return Transaction{}, missingField("amount")
	}
	if err := validateMoney("amount", *request.Amount); err != nil {
		return Transaction{}, err
	}
	transactionType, err := ParseTransactionType(request.TransactionType)
	if err != nil {
		return Transaction{}, err
	}
	transaction := Transaction{
		AccountID:       *request.AccountID,
		TransactionType: transactionType,
		TransactionDate: now.UTC(),
		Amount:          *request.Amount,
		Currency:        CurrencyUSD,
	}
	if request.TransactionDate != nil && !request.TransactionDate.IsZero() {
		transaction.TransactionDate = request.TransactionDate.UTC()
	}
	if strings.TrimSpace(request.Currency) != "" {
		if transaction.Currency, err = ParseCurrency(request.Currency); err != nil {
			return Transaction{}, err
		}
	}
	if strings.TrimSpace(request.Channel) != "" {
		if transaction.Channel, err = ParseChannel(request.Channel); err != nil {
			return Transaction{}, err
		}
	}
	metadata := TransactionMetadata{
		Location:       strings.TrimSpace(request.Location),
		ChannelDetails: strings.TrimSpace(request.ChannelDetails),
	}
	if strings.TrimSpace(request.DeviceType) != "" {
		if metadata.DeviceType, err = ParseDeviceType(request.DeviceType); err != nil {
			return Transaction{}, err
		}
	}
	if strings.TrimSpace(request.AuthMethod) != "" {
		if metadata.AuthMethod, err = ParseAuthMethod(request.AuthMethod); err != nil {
			return Transaction{}, err
		}
	}
	if !metadata.IsEmpty() {
		transaction.Metadata = &metadata
	}
	return transaction, nil
}

func newCustomer(request CreateCustomerRequest, now time.Time) (Customer, error) {
	required := []struct {
		field string
		value string
	}{
		{field: "firstName", value: request.FirstName},
		{field: "lastName", value: request.LastName},
		{field: "email", value: request.Email},
		{field: "customerType", value: request.CustomerType},
	}
	for _, item := range required {
		if strings.TrimSpace(item.value) == "" {
			return Customer{}, missingField(item.field)
		}
	}
	customerType, err := ParseCustomerType(request.CustomerType)
	if err != nil {
		return Customer{}, err
	}
	return Customer{
		FirstName:    strings.TrimSpace(request.FirstName),
		LastName:     strings.TrimSpace(request.LastName),
		Email:        strings.TrimSpace(request.Email),
		Phone:        strings.TrimSpace(request.Phone),
		CustomerType: customerType,
		CreatedAt:    now.UTC(),
		AccountIDs:   []int64{},
	}, nil
}

func newBranch(request CreateBranchRequest) (Branch, error) {
	if strings.TrimSpace(request.Name) == "" {
		return Branch{}, missingField("name")
	}
	if strings.TrimSpace(request.Region) == "" {
		return Branch{}, missingField("region")
	}
	region, err := ParseRegion(request.Region)
	if err != nil {
		return Branch{}, err
	}
	return Branch{
		Name:        strings.TrimSpace(request.Name),
		Region:      region,
		ManagerName: strings.TrimSpace(request.ManagerName),
	}, nil
}
