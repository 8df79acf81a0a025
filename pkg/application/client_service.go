package application

import (
	"fmt"

	"github.com/felixgeelhaar/cowork/pkg/domain"
	"github.com/felixgeelhaar/cowork/pkg/domain/membership"
)

type ClientService struct {
	repo  domain.SpaceRepository
	audit domain.AuditLogger
}

func NewClientService(repo domain.SpaceRepository, audit domain.AuditLogger) *ClientService {
	return &ClientService{repo: repo, audit: audit}
}

// Register creates a new client on the given plan tier and persists it.
func (s *ClientService) Register(id, name, email string, tier membership.Tier) (*membership.Client, error) {
	if !tier.IsValid() {
		return nil, fmt.Errorf("unknown membership tier %q", tier)
	}

	client, err := membership.NewClient(id, name, email, membership.PlanFor(tier))
	if err != nil {
		return nil, err
	}

	sp, err := s.repo.LoadSpace()
	if err != nil {
		return nil, fmt.Errorf("failed to load space: %w", err)
	}
	if err := sp.AddClient(client); err != nil {
		return nil, err
	}
	if err := s.repo.SaveSpace(sp); err != nil {
		return nil, fmt.Errorf("failed to save space: %w", err)
	}

	_ = s.audit.Log("client.registered", "operator", map[string]interface{}{
		"client_id": client.ID,
		"tier":      tier.String(),
	})

	return client, nil
}

// List returns all registered clients in registration order.
func (s *ClientService) List() ([]*membership.Client, error) {
	sp, err := s.repo.LoadSpace()
	if err != nil {
		return nil, fmt.Errorf("failed to load space: %w", err)
	}
	return sp.Clients(), nil
}
