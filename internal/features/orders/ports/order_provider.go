package ports

import (
	"context"

	"opensea-orders/internal/features/orders/domain"
)

// OrderProvider defines the interface for retrieving marketplace orders.
// This is a Secondary Port (Driven Port).
type OrderProvider interface {
	// GetOrders lists legacy orders matching the request.
	GetOrders(ctx context.Context, req domain.OrderRequest) ([]domain.Order, error)
	// GetOrder returns the first legacy order matching the request.
	GetOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error)
	// GetOrderV2 returns a Seaport order by chain and hash.
	GetOrderV2(ctx context.Context, req domain.OrderRequestV2) (*domain.OrderV2, error)
}
