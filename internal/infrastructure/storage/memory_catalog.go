package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

type memoryCatalogRepository struct {
	mu    sync.RWMutex
	bikes map[string]entity.Bike // key: model kodi
	order []string
}

// NewMemoryCatalogRepository in-memory katalog yaratish
func NewMemoryCatalogRepository(catalog entity.BikeCatalog) repository.CatalogRepository {
	repo := &memoryCatalogRepository{}
	repo.load(catalog)
	return repo
}

func (m *memoryCatalogRepository) load(catalog entity.BikeCatalog) {
	m.bikes = make(map[string]entity.Bike, len(catalog.Bikes))
	m.order = nil
	for _, bike := range catalog.Bikes {
		if _, dup := m.bikes[bike.Code]; !dup {
			m.order = append(m.order, bike.Code)
		}
		m.bikes[bike.Code] = bike
	}
}

// GetByCode model kodi bo'yicha velosiped
func (m *memoryCatalogRepository) GetByCode(ctx context.Context, code string) (*entity.Bike, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bike, exists := m.bikes[code]
	if !exists {
		return nil, fmt.Errorf("bike %q: %w", code, repository.ErrNotFound)
	}
	return &bike, nil
}

// GetAll barcha modellar katalog tartibida
func (m *memoryCatalogRepository) GetAll(ctx context.Context) ([]entity.Bike, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bikes := make([]entity.Bike, 0, len(m.order))
	for _, code := range m.order {
		bikes = append(bikes, m.bikes[code])
	}
	return bikes, nil
}

// ReplaceCatalog katalogni yangisiga almashtirish
func (m *memoryCatalogRepository) ReplaceCatalog(ctx context.Context, catalog entity.BikeCatalog) error {
	if len(catalog.Bikes) == 0 {
		return fmt.Errorf("catalog is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.load(catalog)
	return nil
}
