package zaplog

import (
	"github.com/MarkoPoloResearchLab/bankdata/pkg/bank"
	"go.uber.org/zap/zapcore"
)

type deleteSummary bank.DeleteSummary

func (summary deleteSummary) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddInt64("metadata", summary.Metadata)
	encoder.AddInt64("transactions", summary.Transactions)
	encoder.AddInt64("accounts", summary.Accounts)
	encoder.AddInt64("customers", summary.Customers)
	encoder.AddInt64("branches", summary.Branches)
	return nil
}
