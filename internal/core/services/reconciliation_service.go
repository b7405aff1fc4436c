package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/finhub/accounts_service/internal/core/domain"
	portsrepo "github.com/finhub/accounts_service/internal/core/ports/repositories"
	portssvc "github.com/finhub/accounts_service/internal/core/ports/services"
)

// ReconciliationService re-drives accounts stranded mid-transition. A crash
// between the first status write and the final one leaves a record at OPENING
// or CLOSING; the sweep re-emits the corresponding lifecycle event and
// advances the record to its terminal status. Events are at-least-once, so
// re-emitting for an account whose event already went out is acceptable.
type ReconciliationService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	publisher   portssvc.EventPublisherSvc
	stuckAfter  time.Duration
}

// NewReconciliationService creates the sweep. stuckAfter is how long a record
// must sit in a transitional status before it is considered stranded.
func NewReconciliationService(accountRepo portsrepo.AccountRepository, publisher portssvc.EventPublisherSvc, stuckAfter time.Duration) *ReconciliationService {
	return &ReconciliationService{
		accountRepo: accountRepo,
		publisher:   publisher,
		stuckAfter:  stuckAfter,
	}
}

// ReconcileStuckAccounts runs one sweep over both transitional statuses.
// Per-account failures are logged and skipped so one bad row cannot stall
// the rest of the sweep.
func (s *ReconciliationService) ReconcileStuckAccounts(ctx context.Context) {
	s.sweep(ctx, domain.StatusOpening, domain.StatusOpen, domain.EventAccountCreated)
	s.sweep(ctx, domain.StatusClosing, domain.StatusClosed, domain.EventAccountClosed)
}

func (s *ReconciliationService) sweep(ctx context.Context, from, to domain.AccountStatus, eventType domain.EventType) {
	accounts, err := s.accountRepo.FindAccountsByStatus(ctx, from)
	if err != nil {
		s.LogError(ctx, err, "Reconciliation sweep failed to list accounts", slog.String("status", string(from)))
		return
	}

	cutoff := time.Now().UTC().Add(-s.stuckAfter)
	redriven := 0
	for i := range accounts {
		acc := &accounts[i]
		if acc.UpdatedAt.After(cutoff) {
			continue // likely still in-flight on another request
		}

		userID := ""
		if eventType == domain.EventAccountCreated {
			userID = acc.OwnerUserID
		}
		s.publisher.PublishAccountEvent(ctx, domain.NewAccountEvent(acc, userID, eventType))

		now := time.Now().UTC()
		if err := s.accountRepo.UpdateAccountStatus(ctx, acc.AccountNumber, to, now); err != nil {
			s.LogError(ctx, err, "Reconciliation failed to advance account",
				slog.String("account_number", acc.AccountNumber),
				slog.String("to", string(to)))
			continue
		}
		redriven++
	}

	if redriven > 0 {
		s.LogInfo(ctx, "Reconciliation sweep re-drove stranded accounts",
			slog.String("from", string(from)),
			slog.String("to", string(to)),
			slog.Int("count", redriven))
	}
}
