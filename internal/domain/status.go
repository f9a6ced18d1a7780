package domain

import "strings"

// BookingStatus represents the lifecycle state of a reservation.
type BookingStatus string

const (
	BookingStatusUnknown   BookingStatus = ""
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

var knownBookingStatuses = map[string]BookingStatus{
	string(BookingStatusPending):   BookingStatusPending,
	string(BookingStatusConfirmed): BookingStatusConfirmed,
	string(BookingStatusCancelled): BookingStatusCancelled,
	string(BookingStatusCompleted): BookingStatusCompleted,
}

// NormalizeBookingStatus returns the canonical BookingStatus for the given
// raw value, or BookingStatusUnknown if it is not a known status.
func NormalizeBookingStatus(value string) BookingStatus {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if status, ok := knownBookingStatuses[trimmed]; ok {
		return status
	}
	return BookingStatusUnknown
}

// IsActive reports whether the reservation still occupies its slot.
// Only active reservations participate in conflict detection.
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// OrderType distinguishes how an order is fulfilled.
type OrderType string

const (
	OrderTypeTakeaway OrderType = "takeaway"
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeDelivery OrderType = "delivery"
)

// ParseOrderType returns the canonical OrderType for the given raw value.
func ParseOrderType(value string) (OrderType, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(OrderTypeTakeaway):
		return OrderTypeTakeaway, true
	case string(OrderTypeDineIn), "dinein", "dine-in":
		return OrderTypeDineIn, true
	case string(OrderTypeDelivery):
		return OrderTypeDelivery, true
	}
	return "", false
}

// OrderStatus represents the kitchen-side state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusCompleted OrderStatus = "completed"
)
