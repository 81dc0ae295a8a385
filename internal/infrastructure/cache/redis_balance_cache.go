// Package cache implementa el cache opcional de saldos sobre Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/application/inventory"
	"github.com/jhoicas/Kardex-api/pkg/config"
)

var _ inventory.BalanceCache = (*RedisBalanceCache)(nil)

// Una sola key para el mapa completo de totales: el patrón de invalidación
// es "borrar todo en cada escritura", así que no hay ganancia en granular.
const balanceTotalsKey = "kardex:balance:product_totals"

// RedisBalanceCache implementa inventory.BalanceCache sobre Redis.
// El mapa de totales por producto se guarda como un único JSON.
type RedisBalanceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBalanceCache conecta a Redis y verifica con Ping.
func NewRedisBalanceCache(ctx context.Context, cfg config.CacheConfig) (*RedisBalanceCache, error) {
	if cfg.Addr == "" {
		return nil, errors.New("cache: addr requerido")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: ping redis: %w", err)
	}
	return &RedisBalanceCache{
		client: client,
		ttl:    time.Duration(cfg.TTL) * time.Second,
	}, nil
}

// GetProductTotals devuelve (totales, true) en hit; (nil, false) en miss.
func (c *RedisBalanceCache) GetProductTotals(ctx context.Context) (map[string]decimal.Decimal, bool, error) {
	data, err := c.client.Get(ctx, balanceTotalsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: get totals: %w", err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		// Payload corrupto: tratar como miss, la próxima escritura lo repara
		return nil, false, nil
	}
	totals := make(map[string]decimal.Decimal, len(raw))
	for id, s := range raw {
		qty, err := decimal.NewFromString(s)
		if err != nil {
			return nil, false, nil
		}
		totals[id] = qty
	}
	return totals, true, nil
}

// SetProductTotals guarda el mapa completo con el TTL configurado.
func (c *RedisBalanceCache) SetProductTotals(ctx context.Context, totals map[string]decimal.Decimal) error {
	raw := make(map[string]string, len(totals))
	for id, qty := range totals {
		raw[id] = qty.String()
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("cache: serializar totals: %w", err)
	}
	if err := c.client.Set(ctx, balanceTotalsKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set totals: %w", err)
	}
	return nil
}

// Invalidate borra los totales cacheados. Se llama tras cada movimiento.
func (c *RedisBalanceCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, balanceTotalsKey).Err(); err != nil {
		return fmt.Errorf("cache: invalidar totals: %w", err)
	}
	return nil
}

// Close cierra la conexión a Redis.
func (c *RedisBalanceCache) Close() error {
	return c.client.Close()
}
