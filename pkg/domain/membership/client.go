package membership

import (
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/cowork/pkg/domain/inventory"
)

// ErrPaymentRejected is returned when a debt payment is non-positive or
// exceeds the outstanding debt.
var ErrPaymentRejected = errors.New("payment rejected")

// NotEligibleError reports why a client is blocked from entering.
type NotEligibleError struct {
	ClientID string
	Reason   string
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("client %s not eligible: %s", e.ClientID, e.Reason)
}

// Eligibility reasons.
const (
	ReasonInactive   = "membership inactive"
	ReasonSuspended  = "membership suspended for debt"
	ReasonVisitLimit = "visit limit reached"
)

// PurchaseRecord is an immutable line in a client's purchase history.
// Discount is the total discount across the whole quantity.
type PurchaseRecord struct {
	Timestamp time.Time
	Product   string
	Quantity  int
	UnitPrice float64
	Discount  float64
	Total     float64
}

// Client is a coworking member: identity, assigned plan, lifecycle status,
// visit counter, renewal debt and purchase history.
type Client struct {
	ID          string
	Name        string
	Email       string
	Plan        Plan
	Status      Status
	VisitsUsed  int
	Debt        float64
	LastVisitAt time.Time
	Purchases   []PurchaseRecord
	BookingIDs  []string
}

// NewClient creates an active client on the given plan.
func NewClient(id, name, email string, plan Plan) (*Client, error) {
	if id == "" {
		return nil, fmt.Errorf("client ID must not be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("client name must not be empty")
	}
	return &Client{
		ID:          id,
		Name:        name,
		Email:       email,
		Plan:        plan,
		Status:      StatusActive,
		LastVisitAt: time.Now(),
	}, nil
}

// Active reports whether the membership currently admits operations.
func (c *Client) Active() bool {
	return c.Status == StatusActive
}

// CheckEntry evaluates entry eligibility: lifecycle status first, then the
// debt ceiling, then the visit quota. Crossing the debt ceiling suspends the
// client as a side effect, so any entry check can flip a client inactive.
func (c *Client) CheckEntry() (bool, string) {
	if !c.Active() {
		return false, ReasonInactive
	}
	if c.Debt >= c.Plan.DebtCeiling {
		c.transition(EventSuspend)
		return false, ReasonSuspended
	}
	if !c.Plan.CanEnter(c.VisitsUsed) {
		return false, ReasonVisitLimit
	}
	return true, ""
}

// ConsumeVisit runs the eligibility check and, if allowed, burns one visit.
// Rejection leaves the visit counter untouched.
func (c *Client) ConsumeVisit() error {
	ok, reason := c.CheckEntry()
	if !ok {
		return &NotEligibleError{ClientID: c.ID, Reason: reason}
	}
	c.VisitsUsed++
	c.LastVisitAt = time.Now()
	return nil
}

// Purchase buys qty units of a product at the plan's discount, decrements
// the product stock and appends the record to the purchase history. The
// stock check happens before any mutation, so no rollback is needed.
func (c *Client) Purchase(product *inventory.Product, qty int) (PurchaseRecord, error) {
	if !c.Active() {
		return PurchaseRecord{}, &NotEligibleError{ClientID: c.ID, Reason: ReasonInactive}
	}
	unitDiscount := c.Plan.DiscountFor(product.UnitPrice)
	if err := product.DecreaseStock(qty); err != nil {
		return PurchaseRecord{}, err
	}

	record := PurchaseRecord{
		Timestamp: time.Now(),
		Product:   product.Name,
		Quantity:  qty,
		UnitPrice: product.UnitPrice,
		Discount:  unitDiscount * float64(qty),
		Total:     (product.UnitPrice - unitDiscount) * float64(qty),
	}
	c.Purchases = append(c.Purchases, record)
	return record, nil
}

// RenewalResult is the outcome of a monthly renewal accrual.
type RenewalResult struct {
	Suspended bool
	Debt      float64
}

// AccrueRenewal bills one month onto the client's debt. Crossing the plan's
// debt ceiling suspends the membership.
func (c *Client) AccrueRenewal() RenewalResult {
	c.Debt += c.Plan.MonthlyPrice
	if c.Debt >= c.Plan.DebtCeiling {
		c.transition(EventSuspend)
		return RenewalResult{Suspended: true, Debt: c.Debt}
	}
	return RenewalResult{Debt: c.Debt}
}

// PayDebt applies a payment and returns the remaining debt. An inactive
// client reactivates once the debt drops below the plan ceiling.
func (c *Client) PayDebt(amount float64) (float64, error) {
	if amount <= 0 {
		return c.Debt, fmt.Errorf("%w: amount must be positive", ErrPaymentRejected)
	}
	if amount > c.Debt {
		return c.Debt, fmt.Errorf("%w: amount exceeds debt of %.2f", ErrPaymentRejected, c.Debt)
	}
	c.Debt -= amount
	if !c.Active() && c.Debt < c.Plan.DebtCeiling {
		c.transition(EventReactivate)
	}
	return c.Debt, nil
}

// CancelResult is the outcome of a membership cancellation.
type CancelResult struct {
	AlreadyInactive bool
	Charged         float64
}

// Cancel ends the membership and bills the current period. Cancelling an
// already inactive membership is a no-op.
func (c *Client) Cancel() CancelResult {
	if !c.Active() {
		return CancelResult{AlreadyInactive: true}
	}
	c.transition(EventCancel)
	c.Debt += c.Plan.MonthlyPrice
	return CancelResult{Charged: c.Plan.MonthlyPrice}
}

// transition drives the lifecycle machine and records the resulting state.
// Invalid transitions leave the status unchanged.
func (c *Client) transition(event string) {
	machine, err := NewStatusMachine(c.Status, c.ID)
	if err != nil {
		return
	}
	if err := machine.Transition(event); err != nil {
		return
	}
	c.Status = machine.Current()
}
