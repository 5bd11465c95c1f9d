package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"opensea-orders/internal/core/cache"
	"opensea-orders/internal/core/logger"
	"opensea-orders/internal/core/metrics"
	"opensea-orders/internal/features/orders/domain"
	"opensea-orders/internal/features/orders/ports"

	"go.uber.org/zap"
)

// ErrInvalidRequest is returned when a lookup is missing a required input.
var ErrInvalidRequest = errors.New("invalid order request")

// MaxOrderLimit caps the page size accepted from callers.
const MaxOrderLimit = 50

// OrderService validates lookups and forwards them to the order provider.
// Seaport orders are immutable once signed, so v2 lookups may be served
// from a cache; legacy order lists are always fetched live.
type OrderService struct {
	// provider is the interface for fetching order data from the marketplace.
	provider ports.OrderProvider
	// cache is optional; nil disables caching.
	cache cache.Cache
	ttl   time.Duration
}

// NewOrderService creates a new instance of OrderService without a cache.
func NewOrderService(provider ports.OrderProvider) *OrderService {
	return &OrderService{
		provider: provider,
	}
}

// WithCache enables read-through caching of v2 orders for ttl.
func (s *OrderService) WithCache(c cache.Cache, ttl time.Duration) *OrderService {
	s.cache = c
	s.ttl = ttl
	return s
}

// ListOrders returns the legacy orders for a token.
func (s *OrderService) ListOrders(ctx context.Context, req domain.OrderRequest) ([]domain.Order, error) {
	if err := validateOrderRequest(req); err != nil {
		return nil, err
	}
	if req.Limit < 1 || req.Limit > MaxOrderLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidRequest, MaxOrderLimit)
	}

	orders, err := s.provider.GetOrders(ctx, req)
	recordLookup("list", err)
	return orders, err
}

// GetOrder returns the first legacy order for a token.
func (s *OrderService) GetOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	if err := validateOrderRequest(req); err != nil {
		return nil, err
	}

	order, err := s.provider.GetOrder(ctx, req)
	recordLookup("single", err)
	return order, err
}

// GetOrderV2 returns a Seaport order, consulting the cache first when enabled.
func (s *OrderService) GetOrderV2(ctx context.Context, req domain.OrderRequestV2) (*domain.OrderV2, error) {
	if strings.TrimSpace(req.Chain) == "" {
		return nil, fmt.Errorf("%w: chain is required", ErrInvalidRequest)
	}

	key := orderV2Key(req)
	if order, ok := s.cached(ctx, key); ok {
		recordLookup("v2", nil)
		return order, nil
	}

	order, err := s.provider.GetOrderV2(ctx, req)
	recordLookup("v2", err)
	if err != nil {
		return nil, err
	}

	s.store(ctx, key, order)
	return order, nil
}

func (s *OrderService) cached(ctx context.Context, key string) (*domain.OrderV2, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			metrics.CacheEventsTotal.WithLabelValues("miss").Inc()
		} else {
			metrics.CacheEventsTotal.WithLabelValues("error").Inc()
			logger.Named("orders").Warn("Order cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var order domain.OrderV2
	if err := json.Unmarshal(data, &order); err != nil {
		metrics.CacheEventsTotal.WithLabelValues("error").Inc()
		logger.Named("orders").Warn("Discarding unreadable cached order", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	metrics.CacheEventsTotal.WithLabelValues("hit").Inc()
	return &order, true
}

func (s *OrderService) store(ctx context.Context, key string, order *domain.OrderV2) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(order)
	if err != nil {
		logger.Named("orders").Warn("Failed to encode order for cache", zap.String("key", key), zap.Error(err))
		return
	}

	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		metrics.CacheEventsTotal.WithLabelValues("error").Inc()
		logger.Named("orders").Warn("Order cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func validateOrderRequest(req domain.OrderRequest) error {
	if strings.TrimSpace(req.TokenID) == "" {
		return fmt.Errorf("%w: token_id is required", ErrInvalidRequest)
	}
	return nil
}

func orderV2Key(req domain.OrderRequestV2) string {
	return fmt.Sprintf("order:v2:%s:%s", req.Chain, req.OrderHash.Hex())
}

func recordLookup(operation string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrOrderNotFound):
		result = "not_found"
	default:
		result = "error"
	}
	metrics.LookupsTotal.WithLabelValues(operation, result).Inc()
}
