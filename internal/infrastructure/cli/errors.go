package cli

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/cowork/pkg/domain/inventory"
	"github.com/felixgeelhaar/cowork/pkg/domain/membership"
	"github.com/felixgeelhaar/cowork/pkg/domain/space"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var eligErr *membership.NotEligibleError
	if errors.As(err, &eligErr) {
		hint := "Check the client with 'cowork client list'"
		switch eligErr.Reason {
		case membership.ReasonSuspended:
			hint = fmt.Sprintf("Settle the debt with 'cowork billing pay %s --amount <n>'", eligErr.ClientID)
		case membership.ReasonVisitLimit:
			hint = "The plan's included visit allowance is used up"
		}
		return NewCLIError(eligErr.Error(), hint, err)
	}

	switch {
	case errors.Is(err, space.ErrClientNotFound):
		return NewCLIError("client not found", "Run 'cowork client list' to see registered clients", err)
	case errors.Is(err, space.ErrDuplicateClient):
		return NewCLIError("client already exists", "Pick an unused client id", err)
	case errors.Is(err, space.ErrRoomNotFound):
		return NewCLIError("room not found", "Run 'cowork room list' to see available rooms", err)
	case errors.Is(err, space.ErrRoomUnavailable):
		return NewCLIError("room not available for the requested time", "Run 'cowork room list' to review existing bookings", err)
	case errors.Is(err, space.ErrProductNotFound):
		return NewCLIError("product not found", "Run 'cowork product list' to see the inventory", err)
	case errors.Is(err, space.ErrDuplicateProduct):
		return NewCLIError("product already exists", "Pick an unused product id", err)
	case errors.Is(err, inventory.ErrInsufficientStock):
		return NewCLIError("insufficient stock", "Run 'cowork product restock' to add units", err)
	case errors.Is(err, membership.ErrPaymentRejected):
		return NewCLIError("payment rejected", "The amount must be positive and not exceed the outstanding debt", err)
	}

	return err
}
