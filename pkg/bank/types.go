package bank

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType enumerates account products.
type AccountType string

const (
	AccountTypeChecking   AccountType = "Checking"
	AccountTypeSavings    AccountType = "Savings"
	AccountTypeCredit     AccountType = "Credit"
	AccountTypeLoan       AccountType = "Loan"
	AccountTypeInvestment AccountType = "Investment"
)

// AccountStatus enumerates account lifecycle states.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "Active"
	AccountStatusClosed    AccountStatus = "Closed"
	AccountStatusFrozen    AccountStatus = "Frozen"
	AccountStatusDormant   AccountStatus = "Dormant"
	AccountStatusOverdrawn AccountStatus = "Overdrawn"
)

// TransactionType enumerates transaction kinds.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "Deposit"
	TransactionTypeWithdrawal TransactionType = "Withdrawal"
	TransactionTypeTransfer   TransactionType = "Transfer"
	TransactionTypePayment    TransactionType = "Payment"
	TransactionTypeFee        TransactionType = "Fee"
)

// Currency enumerates supported currencies.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// Channel enumerates where a transaction originated.
type Channel string

const (
	ChannelATM    Channel = "ATM"
	ChannelOnline Channel = "Online"
	ChannelMobile Channel = "Mobile"
	ChannelBranch Channel = "Branch"
)

// DeviceType enumerates devices recorded in transaction metadata.
type DeviceType string

const (
	DeviceTypeMobile  DeviceType = "Mobile"
	DeviceTypeDesktop DeviceType = "Desktop"
	DeviceTypeTablet  DeviceType = "Tablet"
	DeviceTypeATM     DeviceType = "ATM"
	DeviceTypePOS     DeviceType = "POS"
)

// AuthMethod enumerates how a transaction was authenticated.
type AuthMethod string

const (
	AuthMethodPIN       AuthMethod = "PIN"
	AuthMethodPassword  AuthMethod = "Password"
	AuthMethodBiometric AuthMethod = "Biometric"
	AuthMethodCard      AuthMethod = "Card"
	AuthMethodToken     AuthMethod = "Token"
	AuthMethodNone      AuthMethod = "None"
)

// CustomerType enumerates customer segments.
type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "Individual"
	CustomerTypeBusiness   CustomerType = "Business"
	CustomerTypeVIP        CustomerType = "VIP"
	CustomerTypeGovernment CustomerType = "Government"
	CustomerTypeNonprofit  CustomerType = "Nonprofit"
)

// Region enumerates branch regions.
type Region string

const (
	RegionNorth   Region = "North"
	RegionSouth   Region = "South"
	RegionEast    Region = "East"
	RegionWest    Region = "West"
	RegionCentral Region = "Central"
)

var (
	accountTypes     = []AccountType{AccountTypeChecking, AccountTypeSavings, AccountTypeCredit, AccountTypeLoan, AccountTypeInvestment}
	accountStatuses  = []AccountStatus{AccountStatusActive, AccountStatusClosed, AccountStatusFrozen, AccountStatusDormant, AccountStatusOverdrawn}
	transactionTypes = []TransactionType{TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer, TransactionTypePayment, TransactionTypeFee}
	currencies       = []Currency{CurrencyUSD, CurrencyEUR, CurrencyGBP}
	channels         = []Channel{ChannelATM, ChannelOnline, ChannelMobile, ChannelBranch}
	deviceTypes      = []DeviceType{DeviceTypeMobile, DeviceTypeDesktop, DeviceTypeTablet, DeviceTypeATM, DeviceTypePOS}
	authMethods      = []AuthMethod{AuthMethodPIN, AuthMethodPassword, AuthMethodBiometric, AuthMethodCard, AuthMethodToken, AuthMethodNone}
	customerTypes    = []CustomerType{CustomerTypeIndividual, CustomerTypeBusiness, CustomerTypeVIP, CustomerTypeGovernment, CustomerTypeNonprofit}
	regions          = []Region{RegionNorth, RegionSouth, RegionEast, RegionWest, RegionCentral}
)

// EnumDomain names the allowed labels of one enumerated column.
type EnumDomain struct {
	Name   string
	Labels []string
}

// EnumDomains lists every enumerated domain persisted by the stores.
func EnumDomains() []EnumDomain {
	return []EnumDomain{
		{Name: "account_type", Labels: labels(accountTypes)},
		{Name: "account_status", Labels: labels(accountStatuses)},
		{Name: "transaction_type", Labels: labels(transactionTypes)},
		{Name: "currency", Labels: labels(currencies)},
		{Name: "channel", Labels: labels(channels)},
		{Name: "device_type", Labels: labels(deviceTypes)},
		{Name: "auth_method", Labels: labels(authMethods)},
		{Name: "customer_type", Labels: labels(customerTypes)},
		{Name: "region", Labels: labels(regions)},
	}
}

func labels[T ~string](values []T) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		result = append(result, string(value))
	}
	return result
}

func parseEnum[T ~string](field string, raw string, allowed []T) (T, error) {
	trimmed := strings.TrimSpace(raw)
	for _, candidate := range allowed {
		if strings.EqualFold(string(candidate), trimmed) {
			return candidate, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrInvalidEnum, field, raw)
}

// ParseAccountType validates an account type label.
func ParseAccountType(raw string) (AccountType, error) {
	return parseEnum("accountType", raw, accountTypes)
}

// ParseAccountStatus validates an account status label.
func ParseAccountStatus(raw string) (AccountStatus, error) {
	return parseEnum("status", raw, accountStatuses)
}

// AccountStatuses returns every known account status in declaration order.
func AccountStatuses() []AccountStatus {
	return append([]AccountStatus(nil), accountStatuses...)
}

// ParseTransactionType validates a transaction type label.
func ParseTransactionType(raw string) (TransactionType, error) {
	return parseEnum("transactionType", raw, transactionTypes)
}

// ParseCurrency validates a currency code.
func ParseCurrency(raw string) (Currency, error) {
	return parseEnum("currency", raw, currencies)
}

// ParseChannel validates a channel label.
func ParseChannel(raw string) (Channel, error) {
	return parseEnum("channel", raw, channels)
}

// ParseDeviceType validates a device type label.
func ParseDeviceType(raw string) (DeviceType, error) {
	return parseEnum("deviceType", raw, deviceTypes)
}

// ParseAuthMethod validates an auth method label.
func ParseAuthMethod(raw string) (AuthMethod, error) {
	return parseEnum("authMethod", raw, authMethods)
}

// ParseCustomerType validates a customer type label.
func ParseCustomerType(raw string) (CustomerType, error) {
	return parseEnum("customerType", raw, customerTypes)
}

// ParseRegion validates a region label.
func ParseRegion(raw string) (Region, error) {
	return parseEnum("region", raw, regions)
}

// Account is a customer-owned account.
type Account struct {
	AccountID   int64
	CustomerID  int64
	AccountType AccountType
	Status      AccountStatus
	Balance     decimal.Decimal
}

// TransactionMetadata carries optional context recorded alongside a transaction.
// Empty fields are absent.
type TransactionMetadata struct {
	Location       string
	DeviceType     DeviceType
	AuthMethod     AuthMethod
	ChannelDetails string
}

// IsEmpty reports whether no metadata field is set.
func (metadata TransactionMetadata) IsEmpty() bool {
	return metadata.Location == "" && metadata.DeviceType == "" && metadata.AuthMethod == "" && metadata.ChannelDetails == ""
}

// Transaction is a single money movement on an account.
type Transaction struct {
	TransactionID   int64
	AccountID       int64
	TransactionType TransactionType
	TransactionDate time.Time
	Amount          decimal.Decimal
	Currency        Currency
	Channel         Channel
	Metadata        *TransactionMetadata
}

// Customer owns zero or more accounts.
type Customer struct {
	CustomerID   int64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	CustomerType CustomerType
	CreatedAt    time.Time
	AccountIDs   []int64
}

// Branch is a physical branch office.
type Branch struct {
	BranchID    int64
	Name        string
	Region      Region
	ManagerName string
}

// Page is one window of a filtered, sorted result set.
type Page[T any] struct {
	Items      []T
	TotalCount int64
}

// Statistics summarizes row counts across the core tables.
type Statistics struct {
	TotalTransactions int64
	TotalCustomers    int64
	TotalAccounts     int64
	TotalBranches     int64
}

// DeleteSummary reports how many rows a cascading delete removed per table.
type DeleteSummary struct {
	Metadata     int64
	Transactions int64
	Accounts     int64
	Customers    int64
	Branches     int64
}

func (summary *DeleteSummary) add(other DeleteSummary) {
	summary.Metadata += other.Metadata
	summary.Transactions += other.Transactions
	summary.Accounts += other.Accounts
	summary.Customers += other.Customers
	summary.Branches += other.Branches
}
