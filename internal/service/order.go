package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ordersvc/internal/entities"
	"ordersvc/pkg/cache"
)

type OrderRepo interface {
	InsertOrder(ctx context.Context, o entities.Order) error
	ReplaceOrder(ctx context.Context, orderUID string, o entities.Order) error
	GetOrderByID(ctx context.Context, orderUID string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
}

type orderService struct {
	logger       *slog.Logger
	repo         OrderRepo
	cache        *cache.Store[entities.Order]
	queryTimeout time.Duration
}

func NewOrderService(logger *slog.Logger, repo OrderRepo, cache *cache.Store[entities.Order], queryTimeout time.Duration) *orderService {
	return &orderService{
		logger:       logger.With(slog.String("service", "order")),
		repo:         repo,
		cache:        cache,
		queryTimeout: queryTimeout,
	}
}

// ListOrders reads the authoritative store, bypassing the cache, and refills
// the cache with every returned document.
func (s *orderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	fill := make(map[string]entities.Order, len(orders))
	for _, o := range orders {
		fill[o.OrderUID] = o
	}
	s.cache.PutMany(fill)

	return orders, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderUID string) (entities.Order, error) {
	if order, ok := s.cache.Get(orderUID); ok {
		return order, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	order, err := s.repo.GetOrderByID(ctx, orderUID)
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Put(orderUID, order)
	return order, nil
}

// CreateOrder writes to the store first; the cache is only filled once the
// insert succeeded.
func (s *orderService) CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.InsertOrder(ctx, order); err != nil {
		return entities.Order{}, err
	}

	s.cache.Put(order.OrderUID, order)
	s.logger.DebugContext(ctx, "order created", slog.String("order_uid", order.OrderUID))
	return order, nil
}

// UpdateOrder fetches the current document, overlays the partial one and
// replaces the stored row, all under the cache's exclusive lock so concurrent
// updates of the same order are serialized. On any store error the cache is
// left untouched.
func (s *orderService) UpdateOrder(ctx context.Context, orderUID string, partial entities.PartialOrder) (entities.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	merged, err := s.cache.Update(orderUID, func(current entities.Order, ok bool) (entities.Order, error) {
		if !ok {
			var err error
			current, err = s.repo.GetOrderByID(ctx, orderUID)
			if err != nil {
				return entities.Order{}, err
			}
		}

		next := partial.Merge(current)
		next.OrderUID = orderUID

		if err := s.repo.ReplaceOrder(ctx, orderUID, next); err != nil {
			return entities.Order{}, err
		}
		return next, nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.DebugContext(ctx, "order updated", slog.String("order_uid", orderUID))
	return merged, nil
}

func (s *orderService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}
