package shared

import (
	"context"
	"errors"
)

// ChangeNotifier is told after a successful mutation of rows that derived views read.
type ChangeNotifier interface {
	Bump(ctx context.Context) error
}

// Notifiers fans a bump out to every notifier and joins their errors.
type Notifiers []ChangeNotifier

func (n Notifiers) Bump(ctx context.Context) error {
	var errs []error
	for _, notifier := range n {
		if notifier == nil {
			continue
		}
		if err := notifier.Bump(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
