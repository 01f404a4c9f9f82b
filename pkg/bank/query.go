package bank

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SortOrder is the direction of a list sort.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// ParseSortOrder accepts asc or desc in any case; empty selects asc.
func ParseSortOrder(raw string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(SortAscending):
		return SortAscending, nil
	case string(SortDescending):
		return SortDescending, nil
	default:
		return SortAscending, fmt.Errorf("%w: sortOrder %q", ErrInvalidSort, raw)
	}
}

// SortColumn names a sortable column. Only whitelisted values reach the query builder.
type SortColumn string

const (
	SortByAccountID       SortColumn = "account_id"
	SortByCustomerID      SortColumn = "customer_id"
	SortByAccountType     SortColumn = "account_type"
	SortByStatus          SortColumn = "status"
	SortByBalance         SortColumn = "balance"
	SortByTransactionID   SortColumn = "transaction_id"
	SortByTransactionType SortColumn = "transaction_type"
	SortByTransactionDate SortColumn = "transaction_date"
	SortByAmount          SortColumn = "amount"
	SortByCurrency        SortColumn = "currency"
	SortByChannel         SortColumn = "channel"
	SortByFirstName       SortColumn = "first_name"
	SortByLastName        SortColumn = "last_name"
	SortByEmail           SortColumn = "email"
	SortByPhone           SortColumn = "phone"
	SortByCustomerType    SortColumn = "customer_type"
	SortByCreatedAt       SortColumn = "created_at"
)

var (
	accountSortColumns = []SortColumn{SortByAccountID, SortByCustomerID, SortByAccountType, SortByStatus, SortByBalance}

	transactionSortColumns = []SortColumn{
		SortByTransactionID, SortByAccountID, SortByTransactionType, SortByTransactionDate,
		SortByAmount, SortByCurrency, SortByChannel,
	}

	customerSortColumns = []SortColumn{
		SortByCustomerID, SortByFirstName, SortByLastName, SortByEmail,
		SortByPhone, SortByCustomerType, SortByCreatedAt,
	}
)

// AccountSortColumns returns the columns an account list may be sorted by.
func AccountSortColumns() []SortColumn {
	return append([]SortColumn(nil), accountSortColumns...)
}

// TransactionSortColumns returns the columns a transaction list may be sorted by.
func TransactionSortColumns() []SortColumn {
	return append([]SortColumn(nil), transactionSortColumns...)
}

// CustomerSortColumns returns the columns a customer list may be sorted by.
func CustomerSortColumns() []SortColumn {
	return append([]SortColumn(nil), customerSortColumns...)
}

// Sort is a validated sort specification.
type Sort struct {
	Column SortColumn
	Order  SortOrder
}

// parseSort matches sortBy against allowed, ignoring case and underscores so that
// both account_id and accountId resolve to the same column.
func parseSort(rawColumn string, rawOrder string, allowed []SortColumn, fallback SortColumn) (Sort, error) {
	order, err := ParseSortOrder(rawOrder)
	if err != nil {
		return Sort{}, err
	}
	trimmed := strings.TrimSpace(rawColumn)
	if trimmed == "" {
		return Sort{Column: fallback, Order: order}, nil
	}
	key := normalizeSortKey(trimmed)
	for _, candidate := range allowed {
		if normalizeSortKey(string(candidate)) == key {
			return Sort{Column: candidate, Order: order}, nil
		}
	}
	return Sort{}, fmt.Errorf("%w: sortBy %q", ErrInvalidSort, rawColumn)
}

func normalizeSortKey(value string) string {
	return strings.ToLower(strings.ReplaceAll(value, "_", ""))
}

// PageWindow is a validated page index and size.
type PageWindow struct {
	Page int
	Size int
}

// Offset returns the number of rows skipped before the window.
func (window PageWindow) Offset() int {
	return window.Page * window.Size
}

// ParsePageWindow validates raw page and size values, applying defaults for empty input.
func ParsePageWindow(rawPage string, rawSize string) (PageWindow, error) {
	window := PageWindow{Page: 0, Size: DefaultPageSize}
	if trimmed := strings.TrimSpace(rawPage); trimmed != "" {
		page, err := strconv.Atoi(trimmed)
		if err != nil || page < 0 {
			return PageWindow{}, fmt.Errorf("%w: page %q", ErrInvalidPage, rawPage)
		}
		window.Page = page
	}
	if trimmed := strings.TrimSpace(rawSize); trimmed != "" {
		size, err := strconv.Atoi(trimmed)
		if err != nil || size < 1 || size > MaxPageSize {
			return PageWindow{}, fmt.Errorf("%w: size %q must be between 1 and %d", ErrInvalidPage, rawSize, MaxPageSize)
		}
		window.Size = size
	}
	if window.Page > math.MaxInt/window.Size {
		return PageWindow{}, fmt.Errorf("%w: page %q is out of range for size %d", ErrInvalidPage, rawPage, window.Size)
	}
	return window, nil
}

// Lookup resolves the identifier-vs-search rule: an explicit identifier wins,
// an integer search becomes an identifier match, anything else is a text match.
type Lookup struct {
	id    int64
	hasID bool
	text  string
}

// ID returns the exact identifier to match, if any.
func (lookup Lookup) ID() (int64, bool) {
	return lookup.id, lookup.hasID
}

// Text returns the lower-cased free-text term, empty when not searching by text.
func (lookup Lookup) Text() string {
	return lookup.text
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Pattern returns the text term wrapped for a partial LIKE match. Wildcards in
// the term are escaped with a backslash so they match literally.
func (lookup Lookup) Pattern() string {
	if lookup.text == "" {
		return ""
	}
	return "%" + likeEscaper.Replace(lookup.text) + "%"
}

func newLookup(field string, rawID string, rawSearch string) (Lookup, error) {
	if trimmed := strings.TrimSpace(rawID); trimmed != "" {
		id, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return Lookup{}, fmt.Errorf("%w: %s %q", ErrInvalidFilter, field, rawID)
		}
		return Lookup{id: id, hasID: true}, nil
	}
	trimmedSearch := strings.TrimSpace(rawSearch)
	if trimmedSearch == "" {
		return Lookup{}, nil
	}
	if id, err := strconv.ParseInt(trimmedSearch, 10, 64); err == nil {
		return Lookup{id: id, hasID: true}, nil
	}
	return Lookup{text: strings.ToLower(trimmedSearch)}, nil
}

// ParseIDList parses a comma-separated identifier list. Any malformed element fails the whole list.
func ParseIDList(field string, raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, listSeparator)
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s element %q", ErrInvalidFilter, field, part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// AccountListRequest carries raw account list parameters.
type AccountListRequest struct {
	Page        string
	Size        string
	SortBy      string
	SortOrder   string
	AccountType string
	Status      string
	AccountID   string
	Search      string
}

// AccountQuery is a validated account list query.
type AccountQuery struct {
	Window      PageWindow
	Sort        Sort
	AccountType AccountType
	Status      AccountStatus
	Lookup      Lookup
}

// NewAccountQuery validates an AccountListRequest.
func NewAccountQuery(request AccountListRequest) (AccountQuery, error) {
	window, err := ParsePageWindow(request.Page, request.Size)
	if err != nil {
		return AccountQuery{}, err
	}
	sort, err := parseSort(request.SortBy, request.SortOrder, accountSortColumns, SortByAccountID)
	if err != nil {
		return AccountQuery{}, err
	}
	query := AccountQuery{Window: window, Sort: sort}
	if strings.TrimSpace(request.AccountType) != "" {
		if query.AccountType, err = ParseAccountType(request.AccountType); err != nil {
			return AccountQuery{}, err
		}
	}
	if strings.TrimSpace(request.Status) != "" {
		if query.Status, err = ParseAccountStatus(request.Status); err != nil {
			return AccountQuery{}, err
		}
	}
	if query.Lookup, err = newLookup("accountId", request.AccountID, request.Search); err != nil {
		return AccountQuery{}, err
	}
	return query, nil
}

// TransactionListRequest carries raw transaction list parameters.
type TransactionListRequest struct {
	Page            string
	Size            string
	SortBy          string
	SortOrder       string
	TransactionType string
	TransactionID   string
	Search          string
	AccountIDs      string
}

// TransactionQuery is a validated transaction list query.
type TransactionQuery struct {
	Window          PageWindow
	Sort            Sort
	TransactionType TransactionType
	Lookup          Lookup
	AccountIDs      []int64
}

// NewTransactionQuery validates a TransactionListRequest.
func NewTransactionQuery(request TransactionListRequest) (TransactionQuery, error) {
	window, err := ParsePageWindow(request.Page, request.Size)
	if err != nil {
		return TransactionQuery{}, err
	}
	sort, err := parseSort(request.SortBy, request.SortOrder, transactionSortColumns, SortByTransactionID)
	if err != nil {
		return TransactionQuery{}, err
	}
	query := TransactionQuery{Window: window, Sort: sort}
	if strings.TrimSpace(request.TransactionType) != "" {
		if query.TransactionType, err = ParseTransactionType(request.TransactionType); err != nil {
			return TransactionQuery{}, err
		}
	}
	if query.Lookup, err = newLookup("transactionId", request.TransactionID, request.Search); err != nil {
		return TransactionQuery{}, err
	}
	if query.AccountIDs, err = ParseIDList("accountIds", request.AccountIDs); err != nil {
		return TransactionQuery{}, err
	}
	return query, nil
}

// CustomerListRequest carries raw customer list parameters.
type CustomerListRequest struct {
	Page         string
	Size         string
	SortBy       string
	SortOrder    string
	CustomerType string
	CustomerID   string
	Search       string
}

// CustomerQuery is a validated customer list query.
type CustomerQuery struct {
	Window       PageWindow
	Sort         Sort
	CustomerType CustomerType
	Lookup       Lookup
}

// NewCustomerQuery validates a CustomerListRequest.
func NewCustomerQuery(request CustomerListRequest) (CustomerQuery, error) {
	window, err := ParsePageWindow(request.Page, request.Size)
	if err != nil {
		return CustomerQuery{}, err
	}
	sort, err := parseSort(request.SortBy, request.SortOrder, customerSortColumns, SortByCustomerID)
	if err != nil {
		return CustomerQuery{}, err
	}
	query := CustomerQuery{Window: window, Sort: sort}
	if strings.TrimSpace(request.CustomerType) != "" {
		if query.CustomerType, err = ParseCustomerType(request.CustomerType); err != nil {
			return CustomerQuery{}, err
		}
	}
	if query.Lookup, err = newLookup("customerId", request.CustomerID, request.Search); err != nil {
		return CustomerQuery{}, err
	}
	return query, nil
}
