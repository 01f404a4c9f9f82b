package bank

const (
	operationCreateAccount       = "create_account"
	operationUpdateAccountStatus = "update_account_status"
	operationDeleteAccount       = "delete_account"
	operationCreateTransaction   = "create_transaction"
	operationDeleteTransaction   = "delete_transaction"
	operationCreateCustomer      = "create_customer"
	operationDeleteCustomer      = "delete_customer"
	operationCreateBranch        = "create_branch"
	operationUpdateBranchManager = "update_branch_manager"
	operationDeleteBranch        = "delete_branch"

	operationStatusOK    = "ok"
	operationStatusError = "error"

	entityAccount     = "account"
	entityTransaction = "transaction"
	entityCustomer    = "customer"
	entityBranch      = "branch"

	// DefaultPageSize applies when a list request omits size.
	DefaultPageSize = 10
	// MaxPageSize bounds a single page.
	MaxPageSize = 1000

	// Balance and amount columns are NUMERIC(15,2).
	moneyIntegerDigits = 13
	moneyScale         = 2

	listSeparator = ","
)
