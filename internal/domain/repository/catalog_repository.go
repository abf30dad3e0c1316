package repository

import (
	"context"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
)

// CatalogRepository velosipedlar katalogi
type CatalogRepository interface {
	// GetByCode model kodi bo'yicha velosiped
	GetByCode(ctx context.Context, code string) (*entity.Bike, error)

	// GetAll katalog tartibida barcha modellar
	GetAll(ctx context.Context) ([]entity.Bike, error)

	// ReplaceCatalog butun katalogni almashtirish (admin Excel yuklaganda)
	ReplaceCatalog(ctx context.Context, catalog entity.BikeCatalog) error
}

// CatalogParser Excel fayldan katalogni o'qish
type CatalogParser interface {
	// ParseCatalog fayl yo'li bo'yicha o'qish
	ParseCatalog(ctx context.Context, filePath string) ([]entity.Bike, error)

	// ParseCatalogFromBytes byte array dan parse qilish
	ParseCatalogFromBytes(ctx context.Context, data []byte) ([]entity.Bike, error)
}

// OrderExporter buyurtmalarni Excel ga chiqarish
type OrderExporter interface {
	ExportOrders(ctx context.Context, orders []entity.Order) ([]byte, error)
}
