package zaplog

import (
	"context"

	"github.com/MarkoPoloResearchLab/bankdata/pkg/bank"
	"go.uber.org/zap"
)

// OperationLogger writes bank.OperationLog entries to a zap logger.
type OperationLogger struct {
	logger *zap.Logger
}

// New returns an OperationLogger. A nil logger discards every entry.
func New(logger *zap.Logger) *OperationLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OperationLogger{logger: logger}
}

func (operationLogger *OperationLogger) LogOperation(_ context.Context, entry bank.OperationLog) {
	fields := []zap.Field{
		zap.String("operation", entry.Operation),
		zap.String("target", entry.Target.String()),
		zap.String("entity", entry.Entity),
		zap.String("status", entry.Status),
	}
	if entry.EntityID != 0 {
		fields = append(fields, zap.Int64("entity_id", entry.EntityID))
	}
	if entry.Deleted != (bank.DeleteSummary{}) {
		fields = append(fields, zap.Object("deleted", deleteSummary(entry.Deleted)))
	}
	if entry.Error != nil {
		operationLogger.logger.Warn("bank operation failed", append(fields, zap.Error(entry.Error))...)
		return
	}
	operationLogger.logger.Info("bank operation", fields...)
}
