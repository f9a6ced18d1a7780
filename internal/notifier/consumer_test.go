package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"mesa-booking/internal/domain"
	"mesa-booking/internal/mocks"
)

func TestConsumerProcess(t *testing.T) {
	ctx := context.Background()

	t.Run("created increments occupancy", func(t *testing.T) {
		store := mocks.NewOccupancyInterface(t)
		store.On("IncrOccupancy", ctx, 5, "2025-12-24").Return(nil).Once()

		consumer := NewConsumer(nil, store, nil)
		consumer.Process(ctx, domain.KafkaMessage{
			Type: domain.EventReservationCreated, ReservationID: 1, TableID: 5, Date: "2025-12-24",
		})
	})

	t.Run("cancelled decrements occupancy", func(t *testing.T) {
		store := mocks.NewOccupancyInterface(t)
		store.On("DecrOccupancy", ctx, 5, "2025-12-24").Return(nil).Once()

		consumer := NewConsumer(nil, store, nil)
		consumer.Process(ctx, domain.KafkaMessage{
			Type: domain.EventReservationCancelled, ReservationID: 1, TableID: 5, Date: "2025-12-24",
		})
	})

	t.Run("update moving the reservation recounts both slots", func(t *testing.T) {
		store := mocks.NewOccupancyInterface(t)
		store.On("DecrOccupancy", ctx, 5, "2025-12-24").Return(nil).Once()
		store.On("IncrOccupancy", ctx, 7, "2025-12-26").Return(nil).Once()

		consumer := NewConsumer(nil, store, nil)
		consumer.Process(ctx, domain.KafkaMessage{
			Type: domain.EventReservationUpdated, ReservationID: 1,
			TableID: 7, Date: "2025-12-26", PrevTableID: 5, PrevDate: "2025-12-24",
		})
	})

	t.Run("in-place update leaves the counters alone", func(t *testing.T) {
		store := mocks.NewOccupancyInterface(t)

		consumer := NewConsumer(nil, store, nil)
		consumer.Process(ctx, domain.KafkaMessage{
			Type: domain.EventReservationUpdated, ReservationID: 1, TableID: 5, Date: "2025-12-24",
		})
	})

	t.Run("confirmed leaves the counter alone", func(t *testing.T) {
		store := mocks.NewOccupancyInterface(t)

		consumer := NewConsumer(nil, store, nil)
		consumer.Process(ctx, domain.KafkaMessage{
			Type: domain.EventReservationConfirmed, ReservationID: 1, TableID: 5, Date: "2025-12-24",
		})
	})

	t.Run("unknown event type is skipped", func(t *testing.T) {
		store := mocks.NewOccupancyInterface(t)

		consumer := NewConsumer(nil, store, nil)
		consumer.Process(ctx, domain.KafkaMessage{Type: "table_repainted", TableID: 5})
	})

	t.Run("store errors do not panic the consumer", func(t *testing.T) {
		store := mocks.NewOccupancyInterface(t)
		store.On("IncrOccupancy", mock.Anything, 5, "2025-12-24").Return(errors.New("redis down")).Once()

		consumer := NewConsumer(nil, store, nil)
		consumer.Process(ctx, domain.KafkaMessage{
			Type: domain.EventReservationCreated, TableID: 5, Date: "2025-12-24",
		})
	})
}
