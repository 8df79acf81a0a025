package inventory

import (
	"errors"
	"testing"
)

func TestNewProductValidation(t *testing.T) {
	if _, err := NewProduct("", "Coffee", 2.00, 100); err == nil {
		t.Error("expected error for empty id")
	}
	if _, err := NewProduct("P1", "", 2.00, 100); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := NewProduct("P1", "Coffee", -1, 100); err == nil {
		t.Error("expected error for negative price")
	}
	if _, err := NewProduct("P1", "Coffee", 2.00, -5); err == nil {
		t.Error("expected error for negative stock")
	}
}

func TestDecreaseStock(t *testing.T) {
	p, err := NewProduct("P1", "Coffee", 2.00, 10)
	if err != nil {
		t.Fatalf("NewProduct failed: %v", err)
	}

	if err := p.DecreaseStock(4); err != nil {
		t.Fatalf("DecreaseStock failed: %v", err)
	}
	if p.Stock != 6 {
		t.Errorf("expected stock 6, got %d", p.Stock)
	}
}

func TestDecreaseStockInsufficient(t *testing.T) {
	p, _ := NewProduct("P1", "Coffee", 2.00, 3)

	err := p.DecreaseStock(4)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if p.Stock != 3 {
		t.Errorf("failed decrease must not mutate stock, got %d", p.Stock)
	}
}

func TestDecreaseStockRejectsNonPositiveQty(t *testing.T) {
	p, _ := NewProduct("P1", "Coffee", 2.00, 3)

	if err := p.DecreaseStock(0); err == nil {
		t.Error("expected error for zero quantity")
	}
	if err := p.DecreaseStock(-2); err == nil {
		t.Error("expected error for negative quantity")
	}
}

func TestIncreaseStock(t *testing.T) {
	p, _ := NewProduct("P1", "Coffee", 2.00, 3)

	if err := p.IncreaseStock(7); err != nil {
		t.Fatalf("IncreaseStock failed: %v", err)
	}
	if p.Stock != 10 {
		t.Errorf("expected stock 10, got %d", p.Stock)
	}

	if err := p.IncreaseStock(0); err == nil {
		t.Error("expected error for zero quantity")
	}
}
