package gormstore

import (
	"fmt"
	"strings"

	"github.com/MarkoPoloResearchLab/bankdata/pkg/bank"
)

// SelectQuery is a count query and a data query over the same predicate.
// CountArgs binds the filters; DataArgs binds the filters followed by limit and offset.
type SelectQuery struct {
	CountSQL  string
	CountArgs []any
	DataSQL   string
	DataArgs  []any
}

// QueryBuilder assembles parameterized list queries. Identifiers come only from
// the whitelisted maps below; every caller-supplied value is bound.
type QueryBuilder struct {
	dialect Dialect
}

// NewQueryBuilder returns a builder for the dialect.
func NewQueryBuilder(dialect Dialect) QueryBuilder {
	return QueryBuilder{dialect: dialect}
}

const (
	accountSelect = "SELECT a.account_id, a.customer_id, a.account_type, a.status, a.balance"
	accountFrom   = " FROM accounts a"

	transactionSelect = "SELECT t.transaction_id, t.account_id, t.transaction_type, t.transaction_date, t.amount, t.currency, t.channel, " +
		"tm.transaction_id AS metadata_transaction_id, tm.location, tm.device_type, tm.auth_method, tm.channel_details"
	transactionFrom = " FROM transactions t LEFT JOIN transaction_metadata tm ON tm.transaction_id = t.transaction_id"

	customerColumns = "c.customer_id, c.first_name, c.last_name, c.email, c.phone, c.customer_type, c.created_at"
	customerFrom    = " FROM customers c"
	customerJoin    = " LEFT JOIN accounts a ON a.customer_id = c.customer_id"
	customerGroupBy = " GROUP BY " + customerColumns

	pageClause = " LIMIT ? OFFSET ?"
)

var (
	accountSortExpressions = map[bank.SortColumn]string{
		bank.SortByAccountID:   "a.account_id",
		bank.SortByCustomerID:  "a.customer_id",
		bank.SortByAccountType: "a.account_type",
		bank.SortByStatus:      "a.status",
		bank.SortByBalance:     "a.balance",
	}
	transactionSortExpressions = map[bank.SortColumn]string{
		bank.SortByTransactionID:   "t.transaction_id",
		bank.SortByAccountID:       "t.account_id",
		bank.SortByTransactionType: "t.transaction_type",
		bank.SortByTransactionDate: "t.transaction_date",
		bank.SortByAmount:          "t.amount",
		bank.SortByCurrency:        "t.currency",
		bank.SortByChannel:         "t.channel",
	}
	customerSortExpressions = map[bank.SortColumn]string{
		bank.SortByCustomerID:   "c.customer_id",
		bank.SortByFirstName:    "c.first_name",
		bank.SortByLastName:     "c.last_name",
		bank.SortByEmail:        "c.email",
		bank.SortByPhone:        "c.phone",
		bank.SortByCustomerType: "c.customer_type",
		bank.SortByCreatedAt:    "c.created_at",
	}

	accountSearchColumns     = []string{"a.account_id", "a.account_type", "a.status", "a.balance"}
	transactionSearchColumns = []string{"t.transaction_type", "t.amount", "t.channel", "t.currency", "tm.location", "tm.device_type", "tm.auth_method"}
	customerSearchColumns    = []string{"c.first_name", "c.last_name", "c.email"}
)

type predicate struct {
	clauses []string
	args    []any
}

func (p *predicate) equal(column string, value any) {
	p.clauses = append(p.clauses, column+" = ?")
	p.args = append(p.args, value)
}

func (p *predicate) in(column string, values []int64) {
	placeholders := make([]string, len(values))
	for index, value := range values {
		placeholders[index] = "?"
		p.args = append(p.args, value)
	}
	p.clauses = append(p.clauses, column+" IN ("+strings.Join(placeholders, ", ")+")")
}

func (p *predicate) like(columns []string, pattern string) {
	alternatives := make([]string, len(columns))
	for index, column := range columns {
		alternatives[index] = "LOWER(CAST(" + column + " AS TEXT)) LIKE ? ESCAPE '\\'"
		p.args = append(p.args, pattern)
	}
	p.clauses = append(p.clauses, "("+strings.Join(alternatives, " OR ")+")")
}

func (p *predicate) lookup(idColumn string, searchColumns []string, lookup bank.Lookup) {
	if id, ok := lookup.ID(); ok {
		p.equal(idColumn, id)
		return
	}
	if pattern := lookup.Pattern(); pattern != "" {
		p.like(searchColumns, pattern)
	}
}

func (p *predicate) where() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.clauses, " AND ")
}

func orderBy(expressions map[bank.SortColumn]string, sort bank.Sort, tieBreak string) (string, error) {
	expression, ok := expressions[sort.Column]
	if !ok {
		return "", fmt.Errorf("%w: sortBy %q", bank.ErrInvalidSort, sort.Column)
	}
	direction := "ASC"
	if sort.Order == bank.SortDescending {
		direction = "DESC"
	}
	clause := " ORDER BY " + expression + " " + direction
	if expression != tieBreak {
		clause += ", " + tieBreak + " ASC"
	}
	return clause, nil
}

func pageArgs(args []any, window bank.PageWindow) []any {
	combined := make([]any, 0, len(args)+2)
	combined = append(combined, args...)
	return append(combined, window.Size, window.Offset())
}

// Accounts builds the account list queries.
func (builder QueryBuilder) Accounts(query bank.AccountQuery) (SelectQuery, error) {
	var filter predicate
	if query.AccountType != "" {
		filter.equal("a.account_type", string(query.AccountType))
	}
	if query.Status != "" {
		filter.equal("a.status", string(query.Status))
	}
	filter.lookup("a.account_id", accountSearchColumns, query.Lookup)
	order, err := orderBy(accountSortExpressions, query.Sort, "a.account_id")
	if err != nil {
		return SelectQuery{}, err
	}
	where := filter.where()
	return SelectQuery{
		CountSQL:  "SELECT COUNT(*)" + accountFrom + where,
		CountArgs: filter.args,
		DataSQL:   accountSelect + accountFrom + where + order + pageClause,
		DataArgs:  pageArgs(filter.args, query.Window),
	}, nil
}

// Transactions builds the transaction list queries.
func (builder QueryBuilder) Transactions(query bank.TransactionQuery) (SelectQuery, error) {
	var filter predicate
	if query.TransactionType != "" {
		filter.equal("t.transaction_type", string(query.TransactionType))
	}
	filter.lookup("t.transaction_id", transactionSearchColumns, query.Lookup)
	if len(query.AccountIDs) > 0 {
		filter.in("t.account_id", query.AccountIDs)
	}
	order, err := orderBy(transactionSortExpressions, query.Sort, "t.transaction_id")
	if err != nil {
		return SelectQuery{}, err
	}
	where := filter.where()
	return SelectQuery{
		CountSQL:  "SELECT COUNT(*)" + transactionFrom + where,
		CountArgs: filter.args,
		DataSQL:   transactionSelect + transactionFrom + where + order + pageClause,
		DataArgs:  pageArgs(filter.args, query.Window),
	}, nil
}

// Customers builds the customer list queries. Only the data query joins accounts.
func (builder QueryBuilder) Customers(query bank.CustomerQuery) (SelectQuery, error) {
	var filter predicate
	if query.CustomerType != "" {
		filter.equal("c.customer_type", string(query.CustomerType))
	}
	filter.lookup("c.customer_id", customerSearchColumns, query.Lookup)
	order, err := orderBy(customerSortExpressions, query.Sort, "c.customer_id")
	if err != nil {
		return SelectQuery{}, err
	}
	where := filter.where()
	return SelectQuery{
		CountSQL:  "SELECT COUNT(*)" + customerFrom + where,
		CountArgs: filter.args,
		DataSQL:   builder.customerSelect() + customerFrom + customerJoin + where + customerGroupBy + order + pageClause,
		DataArgs:  pageArgs(filter.args, query.Window),
	}, nil
}

// TransactionByID selects one transaction with its metadata.
func (builder QueryBuilder) TransactionByID(transactionID int64) (string, []any) {
	return transactionSelect + transactionFrom + " WHERE t.transaction_id = ?", []any{transactionID}
}

// CustomerByID selects one customer with its aggregated account identifiers.
func (builder QueryBuilder) CustomerByID(customerID int64) (string, []any) {
	return builder.customerSelect() + customerFrom + customerJoin + " WHERE c.customer_id = ?" + customerGroupBy, []any{customerID}
}

func (builder QueryBuilder) customerSelect() string {
	return "SELECT " + customerColumns + ", " + builder.accountIDAggregate() + " AS account_ids"
}

func (builder QueryBuilder) accountIDAggregate() string {
	if builder.dialect == DialectPostgres {
		return "string_agg(CAST(a.account_id AS TEXT), ',' ORDER BY a.account_id)"
	}
	return "group_concat(a.account_id)"
}
