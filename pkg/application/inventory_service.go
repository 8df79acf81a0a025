package application

import (
	"fmt"

	"github.com/felixgeelhaar/cowork/pkg/domain"
	"github.com/felixgeelhaar/cowork/pkg/domain/inventory"
	"github.com/felixgeelhaar/cowork/pkg/domain/membership"
	"github.com/felixgeelhaar/cowork/pkg/domain/sales"
)

type InventoryService struct {
	repo   domain.SpaceRepository
	ledger sales.Ledger
	audit  domain.AuditLogger
}

func NewInventoryService(repo domain.SpaceRepository, ledger sales.Ledger, audit domain.AuditLogger) *InventoryService {
	return &InventoryService{repo: repo, ledger: ledger, audit: audit}
}

// Purchase sells qty units of a product to a client at the client's plan
// discount. The sale is appended to the ledger and the state persisted.
func (s *InventoryService) Purchase(clientID, productID string, qty int) (membership.PurchaseRecord, error) {
	sp, err := s.repo.LoadSpace()
	if err != nil {
		return membership.PurchaseRecord{}, fmt.Errorf("failed to load space: %w", err)
	}

	record, err := sp.PurchaseProduct(s.ledger, clientID, productID, qty)
	if err != nil {
		return membership.PurchaseRecord{}, err
	}

	if err := s.repo.SaveSpace(sp); err != nil {
		return record, fmt.Errorf("failed to save space: %w", err)
	}

	_ = s.audit.Log("product.purchased", "operator", map[string]interface{}{
		"client_id":  clientID,
		"product_id": productID,
		"quantity":   qty,
		"total":      record.Total,
	})

	return record, nil
}

// Restock adds qty units to a product and returns the new stock level.
func (s *InventoryService) Restock(productID string, qty int) (int, error) {
	sp, err := s.repo.LoadSpace()
	if err != nil {
		return 0, fmt.Errorf("failed to load space: %w", err)
	}

	stock, err := sp.Restock(productID, qty)
	if err != nil {
		return 0, err
	}

	if err := s.repo.SaveSpace(sp); err != nil {
		return stock, fmt.Errorf("failed to save space: %w", err)
	}

	_ = s.audit.Log("product.restocked", "operator", map[string]interface{}{
		"product_id": productID,
		"quantity":   qty,
		"stock":      stock,
	})

	return stock, nil
}

// Products returns all products sorted by id.
func (s *InventoryService) Products() ([]*inventory.Product, error) {
	sp, err := s.repo.LoadSpace()
	if err != nil {
		return nil, fmt.Errorf("failed to load space: %w", err)
	}
	return sp.Products(), nil
}
