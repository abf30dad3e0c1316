package repository

import (
	"context"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
)

// OrderRepository buyurtmalar ombori
type OrderRepository interface {
	// CreateOrder buyurtmani saqlash va yangi ID ni qaytarish
	CreateOrder(ctx context.Context, order entity.Order) (int64, error)

	// ListOrders barcha buyurtmalar (ID bo'yicha o'sish tartibida)
	ListOrders(ctx context.Context) ([]entity.Order, error)
}
