package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

type sqliteOrderRepository struct {
	db *sqlx.DB
}

type orderRow struct {
	ID            int64  `db:"id"`
	UserID        int64  `db:"user_id"`
	CustomerName  string `db:"customer_name"`
	CustomerPhone string `db:"customer_phone"`
	CustomerEmail string `db:"customer_email"`
	BikeModel     string `db:"bike_model"`
	FrameSize     string `db:"frame_size"`
	CreatedAt     string `db:"created_at"`
}

func (r orderRow) toEntity() (entity.Order, error) {
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return entity.Order{}, err
	}
	return entity.Order{
		ID:            r.ID,
		UserID:        r.UserID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		BikeModel:     r.BikeModel,
		FrameSize:     r.FrameSize,
		CreatedAt:     created,
	}, nil
}

// NewSQLiteOrderRepository SQLite asosidagi buyurtmalar ombori
func NewSQLiteOrderRepository(db *sqlx.DB) repository.OrderRepository {
	return &sqliteOrderRepository{db: db}
}

// CreateOrder buyurtmani saqlash
func (s *sqliteOrderRepository) CreateOrder(ctx context.Context, order entity.Order) (int64, error) {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	row := orderRow{
		UserID:        order.UserID,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		CustomerEmail: order.CustomerEmail,
		BikeModel:     order.BikeModel,
		FrameSize:     order.FrameSize,
		CreatedAt:     formatTime(order.CreatedAt),
	}

	res, err := s.db.NamedExecContext(ctx, `
INSERT INTO orders (user_id, customer_name, customer_phone, customer_email, bike_model, frame_size, created_at)
VALUES (:user_id, :customer_name, :customer_phone, :customer_email, :bike_model, :frame_size, :created_at)`, row)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return res.LastInsertId()
}

// ListOrders barcha buyurtmalar
func (s *sqliteOrderRepository) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var rows []orderRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT * FROM orders ORDER BY id`); err != nil {
		return nil, err
	}

	orders := make([]entity.Order, 0, len(rows))
	for _, row := range rows {
		order, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
