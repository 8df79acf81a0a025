package application

import (
	"fmt"

	"github.com/felixgeelhaar/cowork/pkg/domain"
	"github.com/felixgeelhaar/cowork/pkg/domain/membership"
	"github.com/felixgeelhaar/cowork/pkg/domain/sales"
	"github.com/felixgeelhaar/cowork/pkg/domain/space"
)

type BillingService struct {
	repo   domain.SpaceRepository
	ledger sales.Ledger
	audit  domain.AuditLogger
}

func NewBillingService(repo domain.SpaceRepository, ledger sales.Ledger, audit domain.AuditLogger) *BillingService {
	return &BillingService{repo: repo, ledger: ledger, audit: audit}
}

// Pay applies a payment against a client's renewal debt and returns the
// remaining debt. A suspended client reactivates once the debt drops below
// the plan ceiling.
func (s *BillingService) Pay(clientID string, amount float64) (float64, error) {
	sp, err := s.repo.LoadSpace()
	if err != nil {
		return 0, fmt.Errorf("failed to load space: %w", err)
	}

	remaining, err := sp.PayRenewal(s.ledger, clientID, amount)
	if err != nil {
		return remaining, err
	}

	if err := s.repo.SaveSpace(sp); err != nil {
		return remaining, fmt.Errorf("failed to save space: %w", err)
	}

	_ = s.audit.Log("billing.debt_paid", "operator", map[string]interface{}{
		"client_id": clientID,
		"amount":    amount,
		"remaining": remaining,
	})

	return remaining, nil
}

// Cancel ends a client's membership, billing the current period.
func (s *BillingService) Cancel(clientID string) (membership.CancelResult, error) {
	sp, err := s.repo.LoadSpace()
	if err != nil {
		return membership.CancelResult{}, fmt.Errorf("failed to load space: %w", err)
	}

	result, err := sp.CancelMembership(s.ledger, clientID)
	if err != nil {
		return result, err
	}

	if err := s.repo.SaveSpace(sp); err != nil {
		return result, fmt.Errorf("failed to save space: %w", err)
	}

	_ = s.audit.Log("billing.membership_cancelled", "operator", map[string]interface{}{
		"client_id":        clientID,
		"already_inactive": result.AlreadyInactive,
	})

	return result, nil
}

// RenewAll accrues one month of renewal debt on every active client.
func (s *BillingService) RenewAll() ([]space.RenewalNotice, error) {
	sp, err := s.repo.LoadSpace()
	if err != nil {
		return nil, fmt.Errorf("failed to load space: %w", err)
	}

	notices, err := sp.RenewAll(s.ledger)
	if err != nil {
		return notices, err
	}

	if err := s.repo.SaveSpace(sp); err != nil {
		return notices, fmt.Errorf("failed to save space: %w", err)
	}

	_ = s.audit.Log("billing.renewals_run", "operator", map[string]interface{}{
		"clients": len(notices),
	})

	return notices, nil
}
