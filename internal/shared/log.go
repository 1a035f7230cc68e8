package shared

import (
	"errors"
	"log/slog"
)

// LogStorage records a StorageError with its operation context. Other errors are ignored.
func LogStorage(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	var se *StorageError
	if !errors.As(err, &se) {
		return
	}
	attrs := []any{
		slog.String("op", se.Op),
		slog.String("entity", se.Entity),
		slog.Any("error", se.Err),
	}
	if se.ID != 0 {
		attrs = append(attrs, slog.Int64("id", se.ID))
	}
	if se.Code != "" {
		attrs = append(attrs, slog.String("sqlstate", se.Code))
	}
	if se.Constraint != "" {
		attrs = append(attrs, slog.String("constraint", se.Constraint))
	}
	logger.Error("storage failure", attrs...)
}
