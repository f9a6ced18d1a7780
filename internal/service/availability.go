package service

import (
	"context"
	"fmt"
	"time"

	"mesa-booking/internal/domain"
	"mesa-booking/internal/timeslot"
)

// AvailabilityService computes table availability from active reservations.
// Availability is never cached on the table row; the reservation set is the
// single source of truth.
type AvailabilityService struct {
	tables       TableRepository
	reservations ReservationRepository
}

func NewAvailabilityService(tables TableRepository, reservations ReservationRepository) *AvailabilityService {
	return &AvailabilityService{tables: tables, reservations: reservations}
}

// IsAvailable reports whether the table is free for the requested slot on
// the given day. excludeReservationID removes a reservation from the
// conflict set so an update does not collide with its own current slot;
// pass 0 to exclude nothing.
func (s *AvailabilityService) IsAvailable(ctx context.Context, tableID int, date time.Time, timeOfDay string, duration, excludeReservationID int) (bool, error) {
	// A non-positive duration would make the overlap predicate vacuously
	// false and report a booked table as free.
	if duration < MinReservationDuration || duration > MaxReservationDuration {
		return false, ErrInvalidDuration
	}
	requestedStart, err := timeslot.MinutesOfDay(timeOfDay)
	if err != nil {
		return false, err
	}
	requestedEnd := requestedStart + duration

	dayStart, dayEnd := timeslot.DayBounds(date)
	existing, err := s.reservations.ListActiveForTableOnDate(ctx, tableID, dayStart, dayEnd)
	if err != nil {
		return false, fmt.Errorf("failed to list reservations for table %d: %w", tableID, err)
	}

	for _, reservation := range existing {
		if excludeReservationID != 0 && reservation.ID == excludeReservationID {
			continue
		}
		existingStart, err := timeslot.MinutesOfDay(reservation.ReservationTime)
		if err != nil {
			return false, fmt.Errorf("reservation %d has a malformed time %q: %w",
				reservation.ID, reservation.ReservationTime, err)
		}
		if timeslot.Overlaps(requestedStart, requestedEnd, existingStart, existingStart+reservation.Duration) {
			return false, nil
		}
	}

	return true, nil
}

// ListAvailableTables returns every table free for the requested slot,
// optionally filtered by a minimum capacity (0 disables the filter).
func (s *AvailabilityService) ListAvailableTables(ctx context.Context, date time.Time, timeOfDay string, duration, minCapacity int) ([]domain.Table, error) {
	if duration < MinReservationDuration || duration > MaxReservationDuration {
		return nil, ErrInvalidDuration
	}
	requestedStart, err := timeslot.MinutesOfDay(timeOfDay)
	if err != nil {
		return nil, err
	}
	requestedEnd := requestedStart + duration

	dayStart, dayEnd := timeslot.DayBounds(date)
	active, err := s.reservations.ListActiveOnDate(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for %s: %w", dayStart.Format("2006-01-02"), err)
	}

	occupied := make(map[int]bool)
	for _, reservation := range active {
		existingStart, err := timeslot.MinutesOfDay(reservation.ReservationTime)
		if err != nil {
			return nil, fmt.Errorf("reservation %d has a malformed time %q: %w",
				reservation.ID, reservation.ReservationTime, err)
		}
		if timeslot.Overlaps(requestedStart, requestedEnd, existingStart, existingStart+reservation.Duration) {
			occupied[reservation.TableID] = true
		}
	}

	tables, err := s.tables.ListTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	available := make([]domain.Table, 0, len(tables))
	for _, table := range tables {
		if occupied[table.ID] {
			continue
		}
		if minCapacity > 0 && table.Capacity < minCapacity {
			continue
		}
		available = append(available, table)
	}

	return available, nil
}

var _ AvailabilityServiceInterface = (*AvailabilityService)(nil)
