// Package inventory provides the stock-keeping entities of the coworking
// space shop.
package inventory

import (
	"errors"
	"fmt"
)

// ErrInsufficientStock is returned when a decrement exceeds available stock.
// The product is left unchanged.
var ErrInsufficientStock = errors.New("insufficient stock")

// Product is a stock-keeping unit. Stock never goes negative.
type Product struct {
	ID        string
	Name      string
	UnitPrice float64
	Stock     int
}

// NewProduct creates a validated product.
func NewProduct(id, name string, unitPrice float64, stock int) (*Product, error) {
	if id == "" {
		return nil, fmt.Errorf("product ID must not be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("product name must not be empty")
	}
	if unitPrice < 0 {
		return nil, fmt.Errorf("unit price must be >= 0")
	}
	if stock < 0 {
		return nil, fmt.Errorf("stock must be >= 0")
	}
	return &Product{ID: id, Name: name, UnitPrice: unitPrice, Stock: stock}, nil
}

// DecreaseStock removes qty units. It fails without mutating the product if
// qty exceeds the available stock.
func (p *Product) DecreaseStock(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("quantity must be > 0")
	}
	if qty > p.Stock {
		return fmt.Errorf("%w: %s has %d units", ErrInsufficientStock, p.Name, p.Stock)
	}
	p.Stock -= qty
	return nil
}

// IncreaseStock adds qty units.
func (p *Product) IncreaseStock(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("quantity must be > 0")
	}
	p.Stock += qty
	return nil
}
