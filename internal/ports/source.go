package ports

import (
	"context"

	"paylink_sync/internal/models"
)

// FetchRange is an optional created_at window forwarded to the API as
// unix seconds; zero means unbounded on that side.
type FetchRange struct {
	From int64
	To   int64
}

type LinkSource interface {
	FetchAll(ctx context.Context, r FetchRange) ([]models.PaymentLink, error)
}
