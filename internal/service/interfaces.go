package service

import (
	"context"
	"time"

	"mesa-booking/internal/domain"
)

type TableRepository interface {
	GetTable(ctx context.Context, id int) (*domain.Table, error)
	ListTables(ctx context.Context) ([]domain.Table, error)
}

type ReservationRepository interface {
	GetReservation(ctx context.Context, id int) (*domain.Reservation, error)
	// GetCustomerReservation looks up a reservation by id and owner in a
	// single filter, so a wrong id and a wrong owner are indistinguishable.
	GetCustomerReservation(ctx context.Context, id, customerID int) (*domain.Reservation, error)
	ListActiveForTableOnDate(ctx context.Context, tableID int, dayStart, dayEnd time.Time) ([]domain.Reservation, error)
	ListActiveOnDate(ctx context.Context, dayStart, dayEnd time.Time) ([]domain.Reservation, error)
	// CreateReservation inserts the reservation only if no active same-day
	// reservation overlaps its slot; the insert and the conflict check run
	// as one guarded statement. Returns sql.ErrNoRows when the guard blocks
	// the write.
	CreateReservation(ctx context.Context, r *domain.Reservation) error
	// UpdateReservation rewrites the slot fields under the same overlap
	// guard, excluding the reservation itself from the conflict set.
	UpdateReservation(ctx context.Context, r *domain.Reservation) error
	UpdateStatus(ctx context.Context, id int, status domain.BookingStatus) (*domain.Reservation, error)
	SetOrderID(ctx context.Context, reservationID, orderID int) error
	DeleteReservation(ctx context.Context, id int) (int64, error)
}

type MenuItemSource interface {
	GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	SaveQRCode(ctx context.Context, orderID int, qr []byte) error
	GetQRCode(ctx context.Context, orderID int) ([]byte, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, msg domain.KafkaMessage) error
}

type AvailabilityServiceInterface interface {
	IsAvailable(ctx context.Context, tableID int, date time.Time, timeOfDay string, duration, excludeReservationID int) (bool, error)
	ListAvailableTables(ctx context.Context, date time.Time, timeOfDay string, duration, minCapacity int) ([]domain.Table, error)
}

type CreateReservationRequest struct {
	CustomerID      int
	TableID         int
	Date            time.Time
	Time            string
	Guests          int
	Duration        int
	SpecialRequests string
}

type ReservationServiceInterface interface {
	Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error)
	Update(ctx context.Context, id, customerID int, patch domain.ReservationPatch) (*domain.Reservation, error)
	CancelByCustomer(ctx context.Context, id, customerID int) (*domain.Reservation, error)
	CancelByAdmin(ctx context.Context, id int) (*domain.Reservation, error)
	Confirm(ctx context.Context, id int) (*domain.Reservation, error)
	Delete(ctx context.Context, id int) (*domain.Reservation, error)
	ListForTableOnDate(ctx context.Context, tableID int, date time.Time) ([]domain.Reservation, error)
}

type OrderItemRequest struct {
	MenuItemID          int    `json:"menu_item_id"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions"`
}

type CreateOrderRequest struct {
	CustomerID      int
	StaffID         int
	OrderType       string
	Items           []OrderItemRequest
	PaymentType     string
	ReservationID   int
	TableID         int
	DeliveryAddress string
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error)
	Get(ctx context.Context, id int) (*domain.Order, error)
	GetQRCode(ctx context.Context, id int) ([]byte, error)
	QRLink(orderID int) string
}
