package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"ordersvc/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

// Orders live in a single table: order_uid is the key, data holds the full
// JSON-encoded document.
const createOrdersTable = `
CREATE TABLE IF NOT EXISTS orders (
	order_uid VARCHAR PRIMARY KEY,
	data JSONB NOT NULL
)`

type postgresRepo struct {
	logger *slog.Logger
	db     *sqlx.DB
	qb     sq.StatementBuilderType
}

func NewPostgresRepo(logger *slog.Logger, db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		logger: logger.With(slog.String("repo", "postgres")),
		db:     db,
		qb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// EnsureSchema creates the orders table if it does not exist yet. Safe to run
// on every startup.
func (r *postgresRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createOrdersTable); err != nil {
		return fmt.Errorf("failed to ensure orders table: %w", err)
	}
	return nil
}

func (r *postgresRepo) InsertOrder(ctx context.Context, o entities.Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}

	query, args := r.qb.Insert("orders").
		Columns("order_uid", "data").
		Values(o.OrderUID, string(data)).
		MustSql()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return entities.ErrOrderExists
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *postgresRepo) ReplaceOrder(ctx context.Context, orderUID string, o entities.Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}

	query, args := r.qb.Update("orders").
		Set("data", string(data)).
		Where(sq.Eq{"order_uid": orderUID}).
		MustSql()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to replace order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check replaced rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderUID string) (entities.Order, error) {
	query, args := r.qb.Select("data").
		From("orders").
		Where(sq.Eq{"order_uid": orderUID}).
		MustSql()

	var data []byte
	err := r.db.GetContext(ctx, &data, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	var order entities.Order
	if err := json.Unmarshal(data, &order); err != nil {
		r.logger.ErrorContext(ctx, "stored order does not decode",
			slog.String("order_uid", orderUID), slog.Any("error", err))
		return entities.Order{}, fmt.Errorf("order %s: %w", orderUID, entities.ErrOrderCorrupted)
	}
	return order, nil
}

// ListOrders returns every stored order in store order. Rows whose data does
// not decode are logged and skipped.
func (r *postgresRepo) ListOrders(ctx context.Context) ([]entities.Order, error) {
	query, args := r.qb.Select("order_uid", "data").
		From("orders").
		MustSql()

	var rows []orderRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		var order entities.Order
		if err := json.Unmarshal(row.Data, &order); err != nil {
			r.logger.ErrorContext(ctx, "skipping order that does not decode",
				slog.String("order_uid", row.OrderUID), slog.Any("error", err))
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

type orderRow struct {
	OrderUID string `db:"order_uid"`
	Data     []byte `db:"data"`
}
