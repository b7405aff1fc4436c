package services

import (
	"context"

	"github.com/finhub/accounts_service/internal/core/domain"
)

// EventPublisherSvc delivers account lifecycle events to the external
// messaging channel. Publishing is fire-and-forget: the call returns once the
// event is submitted, delivery is retried in the background and its outcome is
// only logged. A delivery failure never rolls back the state transition that
// triggered it.
type EventPublisherSvc interface {
	PublishAccountEvent(ctx context.Context, event domain.AccountEvent)
}
