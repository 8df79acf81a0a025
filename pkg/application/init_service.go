package application

import (
	"fmt"

	"github.com/felixgeelhaar/cowork/pkg/domain"
)

type InitService struct {
	repo  domain.SpaceRepository
	audit domain.AuditLogger
}

func NewInitService(repo domain.SpaceRepository, audit domain.AuditLogger) *InitService {
	return &InitService{repo: repo, audit: audit}
}

// Initialize creates the workspace directory and writes the seeded
// documents so subsequent commands find a populated space.
func (s *InitService) Initialize() error {
	if err := s.repo.Initialize(); err != nil {
		return err
	}

	sp, err := s.repo.LoadSpace()
	if err != nil {
		return fmt.Errorf("failed to load space: %w", err)
	}
	if err := s.repo.SaveSpace(sp); err != nil {
		return fmt.Errorf("failed to save space: %w", err)
	}

	_ = s.audit.Log("workspace.initialized", "operator", map[string]interface{}{
		"rooms":    len(sp.Rooms()),
		"products": len(sp.Products()),
	})

	return nil
}
