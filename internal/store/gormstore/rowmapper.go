package gormstore

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/MarkoPoloResearchLab/bankdata/pkg/bank"
)

func mapAccountRow(row Account) (bank.Account, error) {
	accountType, err := bank.ParseAccountType(row.AccountType)
	if err != nil {
		return bank.Account{}, err
	}
	status, err := bank.ParseAccountStatus(row.Status)
	if err != nil {
		return bank.Account{}, err
	}
	return bank.Account{
		AccountID:   row.AccountID,
		CustomerID:  row.CustomerID,
		AccountType: accountType,
		Status:      status,
		Balance:     row.Balance,
	}, nil
}

func mapTransactionRow(row transactionRow) (bank.Transaction, error) {
	transactionType, err := bank.ParseTransactionType(row.TransactionType)
	if err != nil {
		return bank.Transaction{}, err
	}
	currency, err := bank.ParseCurrency(row.Currency)
	if err != nil {
		return bank.Transaction{}, err
	}
	transaction := bank.Transaction{
		TransactionID:   row.TransactionID,
		AccountID:       row.AccountID,
		TransactionType: transactionType,
		TransactionDate: row.TransactionDate.UTC(),
		Amount:          row.Amount,
		Currency:        currency,
	}
	if channel := stringValue(row.Channel); channel != "" {
		if transaction.Channel, err = bank.ParseChannel(channel); err != nil {
			return bank.Transaction{}, err
		}
	}
	if row.MetadataTransactionID == nil {
		return transaction, nil
	}
	metadata := bank.TransactionMetadata{
		Location:       stringValue(row.Location),
		ChannelDetails: stringValue(row.ChannelDetails),
	}
	if deviceType := stringValue(row.DeviceType); deviceType != "" {
		if metadata.DeviceType, err = bank.ParseDeviceType(deviceType); err != nil {
			return bank.Transaction{}, err
		}
	}
	if authMethod := stringValue(row.AuthMethod); authMethod != "" {
		if metadata.AuthMethod, err = bank.ParseAuthMethod(authMethod); err != nil {
			return bank.Transaction{}, err
		}
	}
	transaction.Metadata = &metadata
	return transaction, nil
}

func mapCustomerRow(row customerRow) (bank.Customer, error) {
	customerType, err := bank.ParseCustomerType(row.CustomerType)
	if err != nil {
		return bank.Customer{}, err
	}
	accountIDs, err := parseAccountIDs(row.AccountIDs)
	if err != nil {
		return bank.Customer{}, err
	}
	return bank.Customer{
		CustomerID:   row.CustomerID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Email:        row.Email,
		Phone:        stringValue(row.Phone),
		CustomerType: customerType,
		CreatedAt:    row.CreatedAt.UTC(),
		AccountIDs:   accountIDs,
	}, nil
}

func mapBranchRow(row Branch) (bank.Branch, error) {
	region, err := bank.ParseRegion(row.Region)
	if err != nil {
		return bank.Branch{}, err
	}
	return bank.Branch{
		BranchID:    row.BranchID,
		Name:        row.Name,
		Region:      region,
		ManagerName: stringValue(row.ManagerName),
	}, nil
}

// parseAccountIDs turns the aggregated account_ids column into a sorted slice.
// NULL and empty aggregates map to an empty, non-nil slice.
func parseAccountIDs(aggregate *string) ([]int64, error) {
	raw := strings.TrimSpace(stringValue(aggregate))
	if raw == "" {
		return []int64{}, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		id, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("account id aggregate %q: %w", raw, err)
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(left, right int) bool { return ids[left] < ids[right] })
	return ids, nil
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
