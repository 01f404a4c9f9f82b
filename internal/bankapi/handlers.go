package bankapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/MarkoPoloResearchLab/bankdata/pkg/bank"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handlers.go -destination=mock_service_test.go -package=bankapi

// Service is the bank.Service surface consumed by the HTTP handlers.
type Service interface {
	ListAccounts(ctx context.Context, target bank.Target, request bank.AccountListRequest) (bank.Page[bank.Account], error)
	GetAccount(ctx context.Context, target bank.Target, accountID int64) (bank.Account, error)
	CreateAccount(ctx context.Context, target bank.Target, request bank.CreateAccountRequest) (bank.Account, error)
	UpdateAccountStatus(ctx context.Context, target bank.Target, accountID int64, status string) (bank.Account, error)
	DeleteAccount(ctx context.Context, target bank.Target, accountID int64) (bank.DeleteSummary, error)
	ListTransactions(ctx context.Context, target bank.Target, request bank.TransactionListRequest) (bank.Page[bank.Transaction], error)
	GetTransaction(ctx context.Context, target bank.Target, transactionID int64) (bank.Transaction, error)
	CreateTransaction(ctx context.Context, target bank.Target, request bank.CreateTransactionRequest) (bank.Transaction, error)
	DeleteTransaction(ctx context.Context, target bank.Target, transactionID int64) (bank.DeleteSummary, error)
	ListCustomers(ctx context.Context, target bank.Target, request bank.CustomerListRequest) (bank.Page[bank.Customer], error)
	GetCustomer(ctx context.Context, target bank.Target, customerID int64) (bank.Customer, error)
	CreateCustomer(ctx context.Context, target bank.Target, request bank.CreateCustomerRequest) (bank.Customer, error)
	DeleteCustomer(ctx context.Context, target bank.Target, customerID int64) (bank.DeleteSummary, error)
	ListBranches(ctx context.Context, target bank.Target) ([]bank.Branch, error)
	CreateBranch(ctx context.Context, target bank.Target, request bank.CreateBranchRequest) (bank.Branch, error)
	UpdateBranchManager(ctx context.Context, target bank.Target, branchID int64, managerName string) (bank.Branch, error)
	DeleteBranch(ctx context.Context, target bank.Target, branchID int64) (bank.DeleteSummary, error)
	Statistics(ctx context.Context, target bank.Target) (bank.Statistics, error)
	AccountStatusCounts(ctx context.Context, target bank.Target) (map[bank.AccountStatus]int64, error)
}

type httpHandler struct {
	logger  *zap.Logger
	service Service
	cfg     Config
}

// begin resolves the database target and derives the per-request deadline.
func (handler *httpHandler) begin(ctx *gin.Context) (context.Context, context.CancelFunc, bank.Target, bool) {
	target, err := bank.ParseTarget(ctx.Query("database"))
	if err != nil {
		handler.respondError(ctx, err)
		return nil, nil, target, false
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.cfg.RequestTimeout)
	return requestCtx, cancel, target, true
}

func (handler *httpHandler) pathID(ctx *gin.Context, field string) (int64, bool) {
	id, err := bank.ParseIdentifier(field, ctx.Param(field))
	if err != nil {
		handler.respondError(ctx, err)
		return 0, false
	}
	return id, true
}

// bindOptionalJSON accepts an empty body as the zero payload.
func bindOptionalJSON(ctx *gin.Context, payload any) bool {
	if err := ctx.ShouldBindJSON(payload); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body: "+err.Error()))
		return false
	}
	return true
}

func searchParam(ctx *gin.Context) string {
	if search := ctx.Query("search"); search != "" {
		return search
	}
	return ctx.Query("searchQuery")
}

func joinNonEmpty(values ...string) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, ",")
}

func (handler *httpHandler) handleListAccounts(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()

	page, err := handler.service.ListAccounts(requestCtx, target, bank.AccountListRequest{
		Page:        ctx.Query("page"),
		Size:        ctx.Query("size"),
		SortBy:      ctx.Query("sortBy"),
		SortOrder:   ctx.Query("sortOrder"),
		AccountType: ctx.Query("accountType"),
		Status:      ctx.Query("status"),
		AccountID:   ctx.Query("accountId"),
		Search:      searchParam(ctx),
	})
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, accountListResponse{Accounts: newAccountPayloads(page.Items), TotalCount: page.TotalCount})
}

func (handler *httpHandler) handleGetAccount(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()
	accountID, ok := handler.pathID(ctx, "accountId")
	if !ok {
		return
	}

	account, err := handler.service.GetAccount(requestCtx, target, accountID)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newAccountPayload(account))
}

func (handler *httpHandler) handleCreateAccount(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()
	var request createAccountPayload
	if !bindOptionalJSON(ctx, &request) {
		return
	}

	account, err := handler.service.CreateAccount(requestCtx, target, request.toRequest())
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newAccountPayload(account))
}

func (handler *httpHandler) handleUpdateAccountStatus(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()
	accountID, ok := handler.pathID(ctx, "accountId")
	if !ok {
		return
	}
	var request updateStatusPayload
	if !bindOptionalJSON(ctx, &request) {
		return
	}

	account, err := handler.service.UpdateAccountStatus(requestCtx, target, accountID, request.Status)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newAccountPayload(account))
}

func (handler *httpHandler) handleDeleteAccount(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()
	accountID, ok := handler.pathID(ctx, "accountId")
	if !ok {
		return
	}

	if _, err := handler.service.DeleteAccount(requestCtx, target, accountID); err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, deletedResponse("Account"))
}

func (handler *httpHandler) handleListTransactions(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()

	page, err := handler.service.ListTransactions(requestCtx, target, bank.TransactionListRequest{
		Page:            ctx.Query("page"),
		Size:            ctx.Query("size"),
		SortBy:          ctx.Query("sortBy"),
		SortOrder:       ctx.Query("sortOrder"),
		TransactionType: ctx.Query("transactionType"),
		TransactionID:   ctx.Query("transactionId"),
		Search:          searchParam(ctx),
		AccountIDs:      joinNonEmpty(ctx.Query("accountIds"), ctx.Query("accountId")),
	})
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, transactionListResponse{Transactions: newTransactionPayloads(page.Items), TotalCount: page.TotalCount})
}

func (handler *httpHandler) handleGetTransaction(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()
	transactionID, ok := handler.pathID(ctx, "transactionId")
	if !ok {
		return
	}

	transaction, err := handler.service.GetTransaction(requestCtx, target, transactionID)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newTransactionPayload(transaction))
}

func (handler *httpHandler) handleCreateTransaction(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()
	var request createTransactionPayload
	if !bindOptionalJSON(ctx, &request) {
		return
	}

	transaction, err := handler.service.CreateTransaction(requestCtx, target, request.toRequest())
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newTransactionPayload(transaction))
}

func (handler *httpHandler) handleDeleteTransaction(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()
	transactionID, ok := handler.pathID(ctx, "transactionId")
	if !ok {
		return
	}

	if _, err := handler.service.DeleteTransaction(requestCtx, target, transactionID); err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, deletedResponse("Transaction"))
}

func (handler *httpHandler) handleListCustomers(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()

	page, err := handler.service.ListCustomers(requestCtx, target, bank.CustomerListRequest{
		Page:         ctx.Query("page"),
		Size:         ctx.Query("size"),
		SortBy:       ctx.Query("sortBy"),
		SortOrder:    ctx.Query("sortOrder"),
		CustomerType: ctx.Query("customerType"),
		CustomerID:   ctx.Query("customerId"),
		Search:       searchParam(ctx),
	})
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customerListResponse{Customers: newCustomerPayloads(page.Items), TotalCount: page.TotalCount})
}

func (handler *httpHandler) handleGetCustomer(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()
	customerID, ok := handler.pathID(ctx, "customerId")
	if !ok {
		return
	}

	customer, err := handler.service.GetCustomer(requestCtx, target, customerID)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newCustomerPayload(customer))
}

func (handler *httpHandler) handleCreateCustomer(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()
	var request createCustomerPayload
	if !bindOptionalJSON(ctx, &request) {
		return
	}

	customer, err := handler.service.CreateCustomer(requestCtx, target, request.toRequest())
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newCustomerPayload(customer))
}

func (handler *httpHandler) handleDeleteCustomer(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()
	customerID, ok := handler.pathID(ctx, "customerId")
	if !ok {
		return
	}

	if _, err := handler.service.DeleteCustomer(requestCtx, target, customerID); err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, deletedResponse("Customer"))
}

func (handler *httpHandler) handleListBranches(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()

	branches, err := handler.service.ListBranches(requestCtx, target)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBranchPayloads(branches))
}

func (handler *httpHandler) handleCreateBranch(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()
	var request createBranchPayload
	if !bindOptionalJSON(ctx, &request) {
		return
	}

	branch, err := handler.service.CreateBranch(requestCtx, target, request.toRequest())
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newBranchPayload(branch))
}

func (handler *httpHandler) handleUpdateBranchManager(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()
	branchID, ok := handler.pathID(ctx, "branchId")
	if !ok {
		return
	}
	managerName := ctx.Query("managerName")
	if managerName == "" {
		var request managerPayload
		if !bindOptionalJSON(ctx, &request) {
			return
		}
		managerName = request.ManagerName
	}

	branch, err := handler.service.UpdateBranchManager(requestCtx, target, branchID, managerName)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBranchPayload(branch))
}

func (handler *httpHandler) handleDeleteBranch(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()
	branchID, ok := handler.pathID(ctx, "branchId")
	if !ok {
		return
	}

	if _, err := handler.service.DeleteBranch(requestCtx, target, branchID); err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, deletedResponse("Branch"))
}

func (handler *httpHandler) handleStatistics(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()

	statistics, err := handler.service.Statistics(requestCtx, target)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, statisticsPayload{
		TotalTransactions: statistics.TotalTransactions,
		TotalCustomers:    statistics.TotalCustomers,
		TotalAccounts:     statistics.TotalAccounts,
		TotalBranches:     statistics.TotalBranches,
	})
}

func (handler *httpHandler) handleAccountStatusCounts(ctx *gin.Context) {
	requestCtx, cancel, target, ok := handler.begin(ctx)
	if !ok {
		return
	}
	defer cancel()

	counts, err := handler.service.AccountStatusCounts(requestCtx, target)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	payload := make(map[string]int64, len(counts))
	for status, total := range counts {
		payload[string(status)] = total
	}
	ctx.JSON(http.StatusOK, payload)
}

func deletedResponse(entity string) gin.H {
	return gin.H{"message": entity + " deleted successfully"}
}
