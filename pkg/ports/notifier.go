package ports

import (
	"context"

	"github.com/aretw0/folio/pkg/domain"
)

// Notifier surfaces boundary outcomes (saved, loaded, failed) to the user.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, n domain.Notification)

func (f NotifierFunc) Notify(ctx context.Context, n domain.Notification) { f(ctx, n) }
