package bank

import "context"

// Statistics runs four independent counts against the target. The counts are
// not read under one snapshot, so concurrent writes can skew them relative to each other.
func (service *Service) Statistics(ctx context.Context, target Target) (Statistics, error) {
	store := service.router.For(target)
	var (
		statistics Statistics
		err        error
	)
	if statistics.TotalTransactions, err = store.CountTransactions(ctx); err != nil {
		return Statistics{}, err
	}
	if statistics.TotalCustomers, err = store.CountCustomers(ctx); err != nil {
		return Statistics{}, err
	}
	if statistics.TotalAccounts, err = store.CountAccounts(ctx); err != nil {
		return Statistics{}, err
	}
	if statistics.TotalBranches, err = store.CountBranches(ctx); err != nil {
		return Statistics{}, err
	}
	return statistics, nil
}

// AccountStatusCounts groups accounts by status. Every known status is present,
// with zero for statuses that have no rows.
func (service *Service) AccountStatusCounts(ctx context.Context, target Target) (map[AccountStatus]int64, error) {
	grouped, err := service.router.For(target).CountAccountsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[AccountStatus]int64, len(accountStatuses))
	for _, status := range accountStatuses {
		counts[status] = grouped[status]
	}
	return counts, nil
}
