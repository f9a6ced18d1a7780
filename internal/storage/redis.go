package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"mesa-booking/internal/domain"
	"mesa-booking/internal/service"
)

// CachedMenuSource is a read-through cache in front of the menu catalog.
// Cache failures fall back to the underlying source, so redis being down
// only costs latency. Entries expire after TTL, which bounds how long a
// price or availability change can be stale in new orders.
type CachedMenuSource struct {
	Client *redis.Client
	TTL    time.Duration
	Source service.MenuItemSource
}

func NewCachedMenuSource(client *redis.Client, ttl time.Duration, source service.MenuItemSource) *CachedMenuSource {
	return &CachedMenuSource{Client: client, TTL: ttl, Source: source}
}

func (c *CachedMenuSource) MenuItemKey(id int) string {
	return "menu:item:" + strconv.Itoa(id)
}

func (c *CachedMenuSource) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	key := c.MenuItemKey(id)
	if cached, err := c.Client.Get(ctx, key).Bytes(); err == nil {
		var item domain.MenuItem
		if err := json.Unmarshal(cached, &item); err == nil {
			return &item, nil
		}
	}

	item, err := c.Source.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(item); err == nil {
		_ = c.Client.Set(ctx, key, payload, c.TTL).Err()
	}
	return item, nil
}

var _ service.MenuItemSource = (*CachedMenuSource)(nil)

// OccupancyStore keeps informational per-table, per-day reservation
// counters maintained from lifecycle events. It is never consulted for
// availability decisions; those are always computed from the reservations
// table.
type OccupancyStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewOccupancyStore(client *redis.Client, ttl time.Duration) *OccupancyStore {
	return &OccupancyStore{Client: client, TTL: ttl}
}

func (s *OccupancyStore) OccupancyKey(tableID int, date string) string {
	return "occupancy:" + strconv.Itoa(tableID) + ":" + date
}

func (s *OccupancyStore) IncrOccupancy(ctx context.Context, tableID int, date string) error {
	key := s.OccupancyKey(tableID, date)
	if err := s.Client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return s.Client.Expire(ctx, key, s.TTL).Err()
}

func (s *OccupancyStore) DecrOccupancy(ctx context.Context, tableID int, date string) error {
	return s.Client.Decr(ctx, s.OccupancyKey(tableID, date)).Err()
}

func (s *OccupancyStore) GetOccupancy(ctx context.Context, tableID int, date string) (int, error) {
	value, err := s.Client.Get(ctx, s.OccupancyKey(tableID, date)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	return value, err
}
