package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mesa-booking/internal/domain"
	"mesa-booking/internal/timeslot"
)

const (
	DefaultReservationDuration = 60
	MinReservationDuration     = 30
	MaxReservationDuration     = 480
)

// ReservationService owns the reservation state machine. Every mutating
// operation re-validates the capacity and availability invariants before
// touching the store.
type ReservationService struct {
	tables       TableRepository
	reservations ReservationRepository
	availability AvailabilityServiceInterface
	publisher    EventPublisher
}

func NewReservationService(tables TableRepository, reservations ReservationRepository, availability AvailabilityServiceInterface, publisher EventPublisher) *ReservationService {
	return &ReservationService{
		tables:       tables,
		reservations: reservations,
		availability: availability,
		publisher:    publisher,
	}
}

// validateSlot checks the request-shaped fields shared by create and update
// and returns the canonical zero-padded form of the time. Persisting only
// canonical times keeps the store's lexicographic ordering chronological.
func validateSlot(timeOfDay string, duration, guests int) (string, error) {
	if guests <= 0 {
		return "", ErrInvalidGuestCount
	}
	if duration < MinReservationDuration || duration > MaxReservationDuration {
		return "", ErrInvalidDuration
	}
	start, err := timeslot.MinutesOfDay(timeOfDay)
	if err != nil {
		return "", err
	}
	if start+duration > timeslot.MinutesPerDay {
		return "", ErrSlotCrossesMidnight
	}
	return timeslot.FormatMinutes(start), nil
}

func (s *ReservationService) Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	if req.Duration == 0 {
		req.Duration = DefaultReservationDuration
	}
	canonicalTime, err := validateSlot(req.Time, req.Duration, req.Guests)
	if err != nil {
		return nil, err
	}
	req.Time = canonicalTime

	table, err := s.tables.GetTable(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to load table %d: %w", req.TableID, err)
	}
	if req.Guests > table.Capacity {
		return nil, ErrCapacityExceeded
	}

	free, err := s.availability.IsAvailable(ctx, req.TableID, req.Date, req.Time, req.Duration, 0)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrSlotUnavailable
	}

	day, _ := timeslot.DayBounds(req.Date)
	reservation := &domain.Reservation{
		CustomerID:      req.CustomerID,
		TableID:         req.TableID,
		ReservationDate: day,
		ReservationTime: req.Time,
		Duration:        req.Duration,
		Guests:          req.Guests,
		Status:          domain.BookingStatusPending,
		SpecialRequests: req.SpecialRequests,
	}

	// The store re-checks the overlap inside a guarded insert, so two
	// concurrent creates for the same slot cannot both land.
	if err := s.reservations.CreateReservation(ctx, reservation); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.publish(ctx, domain.EventReservationCreated, reservation)
	return reservation, nil
}

func (s *ReservationService) Update(ctx context.Context, id, customerID int, patch domain.ReservationPatch) (*domain.Reservation, error) {
	reservation, err := s.reservations.GetCustomerReservation(ctx, id, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}

	slotChanged := patch.TableID != nil || patch.Date != nil || patch.Time != nil || patch.Duration != nil
	prevTableID := reservation.TableID
	prevDate := reservation.ReservationDate.Format("2006-01-02")

	if patch.TableID != nil {
		reservation.TableID = *patch.TableID
	}
	if patch.Date != nil {
		day, _ := timeslot.DayBounds(*patch.Date)
		reservation.ReservationDate = day
	}
	if patch.Time != nil {
		reservation.ReservationTime = *patch.Time
	}
	if patch.Duration != nil {
		reservation.Duration = *patch.Duration
	}
	if patch.Guests != nil {
		reservation.Guests = *patch.Guests
	}

	canonicalTime, err := validateSlot(reservation.ReservationTime, reservation.Duration, reservation.Guests)
	if err != nil {
		return nil, err
	}
	reservation.ReservationTime = canonicalTime

	table, err := s.tables.GetTable(ctx, reservation.TableID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to load table %d: %w", reservation.TableID, err)
	}
	if reservation.Guests > table.Capacity {
		return nil, ErrCapacityExceeded
	}

	if slotChanged {
		free, err := s.availability.IsAvailable(ctx, reservation.TableID, reservation.ReservationDate,
			reservation.ReservationTime, reservation.Duration, reservation.ID)
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, ErrSlotUnavailable
		}
	}

	if err := s.reservations.UpdateReservation(ctx, reservation); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("failed to update reservation %d: %w", id, err)
	}

	msg := domain.KafkaMessage{
		Type:          domain.EventReservationUpdated,
		ReservationID: reservation.ID,
		TableID:       reservation.TableID,
		Date:          reservation.ReservationDate.Format("2006-01-02"),
	}
	// A moved reservation has to be recounted against its old slot.
	if prevTableID != reservation.TableID || prevDate != msg.Date {
		msg.PrevTableID = prevTableID
		msg.PrevDate = prevDate
	}
	s.publishMessage(ctx, msg)
	return reservation, nil
}

func (s *ReservationService) CancelByCustomer(ctx context.Context, id, customerID int) (*domain.Reservation, error) {
	if _, err := s.reservations.GetCustomerReservation(ctx, id, customerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}
	return s.cancel(ctx, id)
}

func (s *ReservationService) CancelByAdmin(ctx context.Context, id int) (*domain.Reservation, error) {
	return s.cancel(ctx, id)
}

func (s *ReservationService) cancel(ctx context.Context, id int) (*domain.Reservation, error) {
	reservation, err := s.reservations.UpdateStatus(ctx, id, domain.BookingStatusCancelled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to cancel reservation %d: %w", id, err)
	}

	s.publish(ctx, domain.EventReservationCancelled, reservation)
	return reservation, nil
}

func (s *ReservationService) Confirm(ctx context.Context, id int) (*domain.Reservation, error) {
	reservation, err := s.reservations.GetReservation(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}
	// Cancelled is terminal.
	if reservation.Status == domain.BookingStatusCancelled {
		return nil, ErrCannotConfirmCancelled
	}

	reservation, err = s.reservations.UpdateStatus(ctx, id, domain.BookingStatusConfirmed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to confirm reservation %d: %w", id, err)
	}

	s.publish(ctx, domain.EventReservationConfirmed, reservation)
	return reservation, nil
}

func (s *ReservationService) Delete(ctx context.Context, id int) (*domain.Reservation, error) {
	reservation, err := s.reservations.GetReservation(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}

	affected, err := s.reservations.DeleteReservation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete reservation %d: %w", id, err)
	}
	if affected == 0 {
		return nil, ErrReservationNotFound
	}

	return reservation, nil
}

func (s *ReservationService) ListForTableOnDate(ctx context.Context, tableID int, date time.Time) ([]domain.Reservation, error) {
	dayStart, dayEnd := timeslot.DayBounds(date)
	reservations, err := s.reservations.ListActiveForTableOnDate(ctx, tableID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for table %d: %w", tableID, err)
	}
	return reservations, nil
}

// publish emits a lifecycle event; delivery is best effort and never fails
// the operation that triggered it.
func (s *ReservationService) publish(ctx context.Context, eventType string, reservation *domain.Reservation) {
	s.publishMessage(ctx, domain.KafkaMessage{
		Type:          eventType,
		ReservationID: reservation.ID,
		TableID:       reservation.TableID,
		Date:          reservation.ReservationDate.Format("2006-01-02"),
	})
}

func (s *ReservationService) publishMessage(ctx context.Context, msg domain.KafkaMessage) {
	if s.publisher == nil {
		return
	}
	msg.Timestamp = time.Now()
	if err := s.publisher.Publish(ctx, msg); err != nil {
		slog.Warn("failed to publish booking event",
			"type", msg.Type, "reservation_id", msg.ReservationID, "error", err)
	}
}

var _ ReservationServiceInterface = (*ReservationService)(nil)
