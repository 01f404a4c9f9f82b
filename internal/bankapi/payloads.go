package bankapi

import (
	"time"

	"github.com/MarkoPoloResearchLab/bankdata/pkg/bank"
	"github.com/shopspring/decimal"
)

// Decimal values are encoded as JSON strings and accepted as strings or numbers.

type createAccountPayload struct {
	CustomerID  *int64           `json:"customerId"`
	AccountType string           `json:"accountType"`
	Status      string           `json:"status"`
	Balance     *decimal.Decimal `json:"balance"`
}

func (payload createAccountPayload) toRequest() bank.CreateAccountRequest {
	return bank.CreateAccountRequest{
		CustomerID:  payload.CustomerID,
		AccountType: payload.AccountType,
		Status:      payload.Status,
		Balance:     payload.Balance,
	}
}

type updateStatusPayload struct {
	Status string `json:"status"`
}

type createTransactionPayload struct {
	AccountID       *int64           `json:"accountId"`
	TransactionType string           `json:"transactionType"`
	TransactionDate *time.Time       `json:"transactionDate"`
	Amount          *decimal.Decimal `json:"amount"`
	Currency        string           `json:"currency"`
	Channel         string           `json:"channel"`
	Location        string           `json:"location"`
	DeviceType      string           `json:"deviceType"`
	AuthMethod      string           `json:"authMethod"`
	ChannelDetails  string           `json:"channelDetails"`
}

func (payload createTransactionPayload) toRequest() bank.CreateTransactionRequest {
	return bank.CreateTransactionRequest{
		AccountID:       payload.AccountID,
		TransactionType: payload.TransactionType,
		TransactionDate: payload.TransactionDate,
		Amount:          payload.Amount,
		Currency:        payload.Currency,
		Channel:         payload.Channel,
		Location:        payload.Location,
		DeviceType:      payload.DeviceType,
		AuthMethod:      payload.AuthMethod,
		ChannelDetails:  payload.ChannelDetails,
	}
}

type createCustomerPayload struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CustomerType string `json:"customerType"`
}

func (payload createCustomerPayload) toRequest() bank.CreateCustomerRequest {
	return bank.CreateCustomerRequest{
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Email:        payload.Email,
		Phone:        payload.Phone,
		CustomerType: payload.CustomerType,
	}
}

type createBranchPayload struct {
	Name        string `json:"name"`
	Region      string `json:"region"`
	ManagerName string `json:"managerName"`
}

func (payload createBranchPayload) toRequest() bank.CreateBranchRequest {
	return bank.CreateBranchRequest{
		Name:        payload.Name,
		Region:      payload.Region,
		ManagerName: payload.ManagerName,
	}
}

type managerPayload struct {
	ManagerName string `json:"managerName"`
}

type accountPayload struct {
	AccountID   int64           `json:"accountId"`
	CustomerID  int64           `json:"customerId"`
	AccountType string          `json:"accountType"`
	Status      string          `json:"status"`
	Balance     decimal.Decimal `json:"balance"`
}

type accountListResponse struct {
	Accounts   []accountPayload `json:"accounts"`
	TotalCount int64            `json:"totalCount"`
}

func newAccountPayload(account bank.Account) accountPayload {
	return accountPayload{
		AccountID:   account.AccountID,
		CustomerID:  account.CustomerID,
		AccountType: string(account.AccountType),
		Status:      string(account.Status),
		Balance:     account.Balance,
	}
}

func newAccountPayloads(accounts []bank.Account) []accountPayload {
	payloads := make([]accountPayload, 0, len(accounts))
	for _, account := range accounts {
		payloads = append(payloads, newAccountPayload(account))
	}
	return payloads
}

// transactionPayload flattens the metadata record; absent metadata fields are null.
type transactionPayload struct {
	TransactionID   int64           `json:"transactionId"`
	AccountID       int64           `json:"accountId"`
	TransactionType string          `json:"transactionType"`
	TransactionDate time.Time       `json:"transactionDate"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Channel         string          `json:"channel"`
	Location        *string         `json:"location"`
	DeviceType      *string         `json:"deviceType"`
	AuthMethod      *string         `json:"authMethod"`
	ChannelDetails  *string         `json:"channelDetails"`
}

type transactionListResponse struct {
	Transactions []transactionPayload `json:"transactions"`
	TotalCount   int64                `json:"totalCount"`
}

func newTransactionPayload(transaction bank.Transaction) transactionPayload {
	payload := transactionPayload{
		TransactionID:   transaction.TransactionID,
		AccountID:       transaction.AccountID,
		TransactionType: string(transaction.TransactionType),
		TransactionDate: transaction.TransactionDate,
		Amount:          transaction.Amount,
		Currency:        string(transaction.Currency),
		Channel:         string(transaction.Channel),
	}
	if metadata := transaction.Metadata; metadata != nil {
		payload.Location = nullable(metadata.Location)
		payload.DeviceType = nullable(string(metadata.DeviceType))
		payload.AuthMethod = nullable(string(metadata.AuthMethod))
		payload.ChannelDetails = nullable(metadata.ChannelDetails)
	}
	return payload
}

func newTransactionPayloads(transactions []bank.Transaction) []transactionPayload {
	payloads := make([]transactionPayload, 0, len(transactions))
	for _, transaction := range transactions {
		payloads = append(payloads, newTransactionPayload(transaction))
	}
	return payloads
}

type customerPayload struct {
	CustomerID   int64     `json:"customerId"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone"`
	CustomerType string    `json:"customerType"`
	CreatedAt    time.Time `json:"createdAt"`
	AccountIDs   []int64   `json:"accountIds"`
}

type customerListResponse struct {
	Customers  []customerPayload `json:"customers"`
	TotalCount int64             `json:"totalCount"`
}

func newCustomerPayload(customer bank.Customer) customerPayload {
	accountIDs := customer.AccountIDs
	if accountIDs == nil {
		accountIDs = []int64{}
	}
	return customerPayload{
		CustomerID:   customer.CustomerID,
		FirstName:    customer.FirstName,
		LastName:     customer.LastName,
		Email:        customer.Email,
		Phone:        nullable(customer.Phone),
		CustomerType: string(customer.CustomerType),
		CreatedAt:    customer.CreatedAt,
		AccountIDs:   accountIDs,
	}
}

func newCustomerPayloads(customers []bank.Customer) []customerPayload {
	payloads := make([]customerPayload, 0, len(customers))
	for _, customer := range customers {
		payloads = append(payloads, newCustomerPayload(customer))
	}
	return payloads
}

type branchPayload struct {
	BranchID    int64   `json:"branchId"`
	Name        string  `json:"name"`
	Region      string  `json:"region"`
	ManagerName *string `json:"managerName"`
}

func newBranchPayload(branch bank.Branch) branchPayload {
	return branchPayload{
		BranchID:    branch.BranchID,
		Name:        branch.Name,
		Region:      string(branch.Region),
		ManagerName: nullable(branch.ManagerName),
	}
}

func newBranchPayloads(branches []bank.Branch) []branchPayload {
	payloads := make([]branchPayload, 0, len(branches))
	for _, branch := range branches {
		payloads = append(payloads, newBranchPayload(branch))
	}
	return payloads
}

type statisticsPayload struct {
	TotalTransactions int64 `json:"totalTransactions"`
	TotalCustomers    int64 `json:"totalCustomers"`
	TotalAccounts     int64 `json:"totalAccounts"`
	TotalBranches     int64 `json:"totalBranches"`
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
