package service

import "errors"

// Lookup failures. A reservation owned by a different customer reports the
// same error as a missing one so callers cannot probe other users' records.
var (
	ErrTableNotFound       = errors.New("table not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrOrderNotFound       = errors.New("order not found")
)

// Validation failures.
var (
	ErrInvalidGuestCount      = errors.New("number of guests must be positive")
	ErrInvalidDuration        = errors.New("duration must be between 30 and 480 minutes")
	ErrInvalidQuantity        = errors.New("item quantity must be at least 1")
	ErrEmptyOrder             = errors.New("order must contain at least one item")
	ErrSlotCrossesMidnight    = errors.New("reservation cannot extend past midnight")
	ErrMissingDeliveryAddress = errors.New("delivery address is required for delivery orders")
	ErrInvalidOrderType       = errors.New("unknown order type")
)

// Conflicts.
var (
	ErrCapacityExceeded       = errors.New("number of guests exceeds table capacity")
	ErrSlotUnavailable        = errors.New("table is not available for the requested time slot")
	ErrCannotConfirmCancelled = errors.New("cannot confirm a cancelled reservation")
	ErrMissingDineInTarget    = errors.New("dine-in orders require a reservation or table")
	ErrMenuItemUnavailable    = errors.New("menu item is not available")
)
