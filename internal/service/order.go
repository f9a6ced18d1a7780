package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mesa-booking/internal/domain"
)

// OrderService builds orders against the menu catalog and, for dine-in
// orders, resolves the table/reservation linkage. It reads reservation and
// table state but the only reservation field it touches is the order_id
// back-reference.
type OrderService struct {
	orders       OrderRepository
	menu         MenuItemSource
	reservations ReservationRepository
	tables       TableRepository
	qrEncoder    QRGenerator
	publisher    EventPublisher
}

func NewOrderService(orders OrderRepository, menu MenuItemSource, reservations ReservationRepository, tables TableRepository, qrEncoder QRGenerator, publisher EventPublisher) *OrderService {
	return &OrderService{
		orders:       orders,
		menu:         menu,
		reservations: reservations,
		tables:       tables,
		qrEncoder:    qrEncoder,
		publisher:    publisher,
	}
}

func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	orderType, ok := domain.ParseOrderType(req.OrderType)
	if !ok {
		return nil, ErrInvalidOrderType
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if orderType == domain.OrderTypeDineIn && req.ReservationID == 0 && req.TableID == 0 {
		return nil, ErrMissingDineInTarget
	}
	if orderType == domain.OrderTypeDelivery && strings.TrimSpace(req.DeliveryAddress) == "" {
		return nil, ErrMissingDeliveryAddress
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	var total float64
	for _, requested := range req.Items {
		if requested.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		menuItem, err := s.menu.GetMenuItem(ctx, requested.MenuItemID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrMenuItemNotFound
			}
			return nil, fmt.Errorf("failed to load menu item %d: %w", requested.MenuItemID, err)
		}
		if !menuItem.Available {
			return nil, ErrMenuItemUnavailable
		}

		// Name and price are copied in at the current catalog values so
		// later catalog edits never rewrite this order.
		subTotal := menuItem.Price * float64(requested.Quantity)
		items = append(items, domain.OrderItem{
			MenuItemID:          menuItem.ID,
			Name:                menuItem.Name,
			Quantity:            requested.Quantity,
			Price:               menuItem.Price,
			SubTotal:            subTotal,
			SpecialInstructions: requested.SpecialInstructions,
		})
		total += subTotal
	}

	order := &domain.Order{
		CustomerID:      req.CustomerID,
		StaffID:         req.StaffID,
		OrderType:       orderType,
		Items:           items,
		TotalAmount:     total,
		PaymentType:     req.PaymentType,
		DeliveryAddress: "",
		Status:          domain.OrderStatusPending,
	}
	if orderType == domain.OrderTypeDelivery {
		order.DeliveryAddress = req.DeliveryAddress
	}

	if req.ReservationID != 0 {
		reservation, err := s.reservations.GetReservation(ctx, req.ReservationID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrReservationNotFound
			}
			return nil, fmt.Errorf("failed to load reservation %d: %w", req.ReservationID, err)
		}
		order.ReservationID = reservation.ID
		order.TableID = reservation.TableID
	} else if req.TableID != 0 {
		if _, err := s.tables.GetTable(ctx, req.TableID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrTableNotFound
			}
			return nil, fmt.Errorf("failed to load table %d: %w", req.TableID, err)
		}
		order.TableID = req.TableID
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// The writes below are best effort; the order has landed, so failures
	// are logged rather than surfaced.
	if order.ReservationID != 0 {
		if err := s.reservations.SetOrderID(ctx, order.ReservationID, order.ID); err != nil {
			slog.Warn("failed to set order reference on reservation",
				"reservation_id", order.ReservationID, "order_id", order.ID, "error", err)
		}
	}

	if s.qrEncoder != nil {
		qr, err := s.qrEncoder.Generate(order.ID)
		if err != nil {
			slog.Warn("failed to generate qr code", "order_id", order.ID, "error", err)
		} else if err := s.orders.SaveQRCode(ctx, order.ID, qr); err != nil {
			slog.Warn("failed to save qr code", "order_id", order.ID, "error", err)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, domain.KafkaMessage{
			Type:      domain.EventOrderCreated,
			OrderID:   order.ID,
			TableID:   order.TableID,
			Timestamp: time.Now(),
		}); err != nil {
			slog.Warn("failed to publish order event", "order_id", order.ID, "error", err)
		}
	}

	order.QRCode = s.QRLink(order.ID)
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order %d: %w", id, err)
	}
	order.QRCode = s.QRLink(order.ID)
	return order, nil
}

func (s *OrderService) GetQRCode(ctx context.Context, id int) ([]byte, error) {
	qr, err := s.orders.GetQRCode(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load qr code for order %d: %w", id, err)
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(id); err == nil {
			if err := s.orders.SaveQRCode(ctx, id, regenerated); err != nil {
				slog.Warn("failed to save qr code", "order_id", id, "error", err)
			}
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
