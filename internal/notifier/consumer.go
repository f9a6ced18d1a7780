package notifier

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"mesa-booking/internal/domain"
)

// OccupancyInterface is the sink the consumer maintains from booking
// lifecycle events.
type OccupancyInterface interface {
	IncrOccupancy(ctx context.Context, tableID int, date string) error
	DecrOccupancy(ctx context.Context, tableID int, date string) error
}

// Consumer tails the booking events topic and keeps the informational
// occupancy counters in sync. It never writes back to the reservation
// store.
type Consumer struct {
	Reader *kafka.Reader
	Store  OccupancyInterface
	Logger *slog.Logger
}

func NewConsumer(reader *kafka.Reader, store OccupancyInterface, logger *slog.Logger) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{Reader: reader, Store: store, Logger: logger}
}

func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("booking notifier consumer started")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("booking notifier consumer stopped")
				return
			}
			c.Logger.Error("failed to read message", "error", err)
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			c.Logger.Error("failed to unmarshal message", "error", err)
			continue
		}

		c.Process(ctx, msg)
	}
}

func (c *Consumer) Process(ctx context.Context, msg domain.KafkaMessage) {
	switch msg.Type {
	case domain.EventReservationCreated:
		if err := c.Store.IncrOccupancy(ctx, msg.TableID, msg.Date); err != nil {
			c.Logger.Error("failed to increment occupancy",
				"table_id", msg.TableID, "date", msg.Date, "error", err)
			return
		}
	case domain.EventReservationCancelled:
		if err := c.Store.DecrOccupancy(ctx, msg.TableID, msg.Date); err != nil {
			c.Logger.Error("failed to decrement occupancy",
				"table_id", msg.TableID, "date", msg.Date, "error", err)
			return
		}
	case domain.EventReservationUpdated:
		// Prev fields are only set when the reservation moved to another
		// table or day; an in-place update leaves the counters alone.
		if msg.PrevTableID == 0 && msg.PrevDate == "" {
			break
		}
		if err := c.Store.DecrOccupancy(ctx, msg.PrevTableID, msg.PrevDate); err != nil {
			c.Logger.Error("failed to decrement occupancy",
				"table_id", msg.PrevTableID, "date", msg.PrevDate, "error", err)
			return
		}
		if err := c.Store.IncrOccupancy(ctx, msg.TableID, msg.Date); err != nil {
			c.Logger.Error("failed to increment occupancy",
				"table_id", msg.TableID, "date", msg.Date, "error", err)
			return
		}
	case domain.EventReservationConfirmed, domain.EventOrderCreated:
		// Nothing to recount; the reservation still occupies its slot.
	default:
		c.Logger.Warn("skipping unknown event type", "type", msg.Type)
		return
	}

	c.Logger.Debug("processed booking event",
		"type", msg.Type, "reservation_id", msg.ReservationID, "table_id", msg.TableID)
}
