package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/empresatech/resource-booking/internal/config"
	domain "github.com/empresatech/resource-booking/internal/domain/reservation"
)

const slotTTL = 5 * time.Minute

// SlotCache guarda a grade de horários livres calculada por recurso/data.
// Invalidada a cada escrita de reserva no recurso.
type SlotCache struct {
	rdb *redis.Client
}

// NewSlotCache devolve nil quando não há Redis configurado; quem usa trata
// nil como cache desligado.
func NewSlotCache(cfg *config.Config) *SlotCache {
	if cfg.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	return &SlotCache{rdb: rdb}
}

func slotKey(resourceID uint, date time.Time, slotMinutes int) string {
	return fmt.Sprintf("slots:%d:%s:%d", resourceID, date.Format("2006-01-02"), slotMinutes)
}

func (c *SlotCache) Get(ctx context.Context, resourceID uint, date time.Time, slotMinutes int) ([]domain.TimeSlot, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotKey(resourceID, date, slotMinutes)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, resourceID uint, date time.Time, slotMinutes int, slots []domain.TimeSlot) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, slotKey(resourceID, date, slotMinutes), raw, slotTTL)
}

// Invalidate apaga todas as grades do recurso na data, qualquer duração.
func (c *SlotCache) Invalidate(ctx context.Context, resourceID uint, date time.Time) {
	if c == nil {
		return
	}

	pattern := fmt.Sprintf("slots:%d:%s:*", resourceID, date.Format("2006-01-02"))
	keys, err := c.rdb.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	c.rdb.Del(ctx, keys...)
}
