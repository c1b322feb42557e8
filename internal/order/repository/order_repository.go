package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tillroll/internal/domain"
	"tillroll/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

const orderColumns = `
	id, restaurant_id, order_number, fulfillment_status, customer, items,
	order_note, tax, discount, prep_time_minutes,
	cancellation_reason, cancelled_by, refund_reason, refund_amount,
	created_at, accepted_at, ready_at, dispatched_at, delivered_at,
	cancelled_at, refunded_at, updated_at
`

func (r *MySQLOrderRepository) FindByNumber(ctx context.Context, restaurantID int, orderNumber string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM order_management
		WHERE restaurant_id = ? AND order_number = ?`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, restaurantID, orderNumber))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", orderNumber))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by number: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) ListByRestaurant(ctx context.Context, restaurantID int, status domain.Status) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM order_management
		WHERE restaurant_id = ?`
	params := []interface{}{restaurantID}

	if status != "" {
		query += ` AND fulfillment_status = ?`
		params = append(params, status.String())
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

// SaveTransition persists the mutable outcome of a status transition: the
// new status, transition metadata and the timestamps the lifecycle stamped.
// Timestamps already set are written back unchanged, never cleared.
func (r *MySQLOrderRepository) SaveTransition(ctx context.Context, order *domain.Order) error {
	query := `
		UPDATE order_management
		SET fulfillment_status = ?, prep_time_minutes = ?,
		    cancellation_reason = ?, cancelled_by = ?,
		    refund_reason = ?, refund_amount = ?,
		    accepted_at = ?, ready_at = ?, dispatched_at = ?,
		    delivered_at = ?, cancelled_at = ?, refunded_at = ?,
		    updated_at = ?
		WHERE restaurant_id = ? AND order_number = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		order.Status.String(), order.PrepTimeMinutes,
		order.CancellationReason, order.CancelledBy,
		order.RefundReason, order.RefundAmount,
		order.AcceptedAt, order.ReadyAt, order.DispatchedAt,
		order.DeliveredAt, order.CancelledAt, order.RefundedAt,
		order.UpdatedAt,
		order.RestaurantID, order.OrderNumber,
	)
	if err != nil {
		return fmt.Errorf("saving order transition: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order %s not found", order.OrderNumber))
	}

	return nil
}

func (r *MySQLOrderRepository) UpdatePrepTime(ctx context.Context, restaurantID int, orderNumber string, minutes int) error {
	query := `UPDATE order_management SET prep_time_minutes = ? WHERE restaurant_id = ? AND order_number = ?`

	result, err := r.db.ExecContext(ctx, query, minutes, restaurantID, orderNumber)
	if err != nil {
		return fmt.Errorf("updating prep time: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order %s not found", orderNumber))
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var customerJSON, itemsJSON []byte
	var orderNote sql.NullString

	err := row.Scan(
		&order.ID, &order.RestaurantID, &order.OrderNumber, &order.Status,
		&customerJSON, &itemsJSON,
		&orderNote, &order.Tax, &order.Discount, &order.PrepTimeMinutes,
		&order.CancellationReason, &order.CancelledBy,
		&order.RefundReason, &order.RefundAmount,
		&order.CreatedAt, &order.AcceptedAt, &order.ReadyAt, &order.DispatchedAt,
		&order.DeliveredAt, &order.CancelledAt, &order.RefundedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.Note = orderNote.String

	if len(customerJSON) > 0 {
		if err := json.Unmarshal(customerJSON, &order.Customer); err != nil {
			return nil, fmt.Errorf("decoding customer snapshot: %w", err)
		}
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
			return nil, fmt.Errorf("decoding order items: %w", err)
		}
	}

	return &order, nil
}
