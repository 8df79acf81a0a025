package application

import (
	"fmt"
	"sort"

	"github.com/felixgeelhaar/cowork/pkg/domain"
	"github.com/felixgeelhaar/cowork/pkg/domain/sales"
	"github.com/felixgeelhaar/cowork/pkg/domain/space"
)

type StatsService struct {
	repo              domain.SpaceRepository
	ledger            sales.Ledger
	lowStockThreshold int
}

func NewStatsService(repo domain.SpaceRepository, ledger sales.Ledger, lowStockThreshold int) *StatsService {
	return &StatsService{repo: repo, ledger: ledger, lowStockThreshold: lowStockThreshold}
}

// Statistics aggregates the current space state and the full sales history.
func (s *StatsService) Statistics() (space.Stats, error) {
	sp, err := s.repo.LoadSpace()
	if err != nil {
		return space.Stats{}, fmt.Errorf("failed to load space: %w", err)
	}
	return sp.Statistics(s.ledger, s.lowStockThreshold)
}

// History returns the full sales ledger, newest first.
func (s *StatsService) History() ([]sales.Entry, error) {
	entries, err := s.ledger.All()
	if err != nil {
		return nil, fmt.Errorf("failed to read sales ledger: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}
