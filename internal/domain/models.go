package domain

import "time"

type Table struct {
	ID        int       `json:"id"`
	Capacity  int       `json:"capacity"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuItem struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

type Reservation struct {
	ID              int           `json:"id"`
	CustomerID      int           `json:"customer_id"`
	TableID         int           `json:"table_id"`
	ReservationDate time.Time     `json:"reservation_date"`
	ReservationTime string        `json:"reservation_time"`
	Duration        int           `json:"duration_minutes"`
	Guests          int           `json:"number_of_guests"`
	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	AssignedStaffID int           `json:"assigned_staff_id,omitempty"`
	OrderID         int           `json:"order_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

// ReservationPatch carries the optional fields of a partial reservation
// update. Nil means "leave the current value untouched".
type ReservationPatch struct {
	TableID  *int       `json:"table_id"`
	Date     *time.Time `json:"reservation_date"`
	Time     *string    `json:"reservation_time"`
	Duration *int       `json:"duration_minutes"`
	Guests   *int       `json:"number_of_guests"`
}

type Order struct {
	ID              int         `json:"id"`
	CustomerID      int         `json:"customer_id"`
	StaffID         int         `json:"staff_id,omitempty"`
	OrderType       OrderType   `json:"order_type"`
	ReservationID   int         `json:"reservation_id,omitempty"`
	TableID         int         `json:"table_id,omitempty"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	PaymentType     string      `json:"payment_type,omitempty"`
	PaymentID       int         `json:"payment_id,omitempty"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	Status          OrderStatus `json:"status"`
	QRCode          string      `json:"qr_code,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// OrderItem is embedded in an order. Name and Price are snapshots taken
// from the menu at order time so later catalog changes do not rewrite
// historical orders.
type OrderItem struct {
	MenuItemID          int     `json:"menu_item_id"`
	Name                string  `json:"name"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	SubTotal            float64 `json:"sub_total"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

// KafkaMessage is the booking event envelope. PrevTableID/PrevDate are set
// on reservation_updated events that moved the reservation to another table
// or day, so consumers can recount the vacated slot.
type KafkaMessage struct {
	Type          string    `json:"type"`
	ReservationID int       `json:"reservation_id,omitempty"`
	OrderID       int       `json:"order_id,omitempty"`
	TableID       int       `json:"table_id"`
	Date          string    `json:"date,omitempty"`
	PrevTableID   int       `json:"prev_table_id,omitempty"`
	PrevDate      string    `json:"prev_date,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

const (
	EventReservationCreated   = "reservation_created"
	EventReservationUpdated   = "reservation_updated"
	EventReservationCancelled = "reservation_cancelled"
	EventReservationConfirmed = "reservation_confirmed"
	EventOrderCreated         = "order_created"
)
