package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

// CatalogUseCase katalog bilan ishlash
type CatalogUseCase interface {
	// Codes katalog tartibida model kodlari
	Codes(ctx context.Context) ([]string, error)

	// GetBike model kodi bo'yicha velosiped
	GetBike(ctx context.Context, code string) (*entity.Bike, error)

	// BikeCard model tavsifi va narxi
	BikeCard(bike entity.Bike) string

	// CatalogContext AI uchun katalog matni
	CatalogContext(ctx context.Context) (string, error)
}

type catalogUseCase struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogUseCase yangi CatalogUseCase yaratish
func NewCatalogUseCase(catalogRepo repository.CatalogRepository) CatalogUseCase {
	return &catalogUseCase{catalogRepo: catalogRepo}
}

// Codes model kodlari
func (u *catalogUseCase) Codes(ctx context.Context) ([]string, error) {
	bikes, err := u.catalogRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(bikes))
	for _, b := range bikes {
		codes = append(codes, b.Code)
	}
	return codes, nil
}

// GetBike velosiped
func (u *catalogUseCase) GetBike(ctx context.Context, code string) (*entity.Bike, error) {
	return u.catalogRepo.GetByCode(ctx, code)
}

// BikeCard kartochka matni
func (u *catalogUseCase) BikeCard(bike entity.Bike) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(bike.Description))
	if bike.Price > 0 {
		fmt.Fprintf(&sb, "\n\nРозничная цена %s руб.", FormatPrice(bike.Price))
	}
	return sb.String()
}

// CatalogContext katalog matni
func (u *catalogUseCase) CatalogContext(ctx context.Context) (string, error) {
	bikes, err := u.catalogRepo.GetAll(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, b := range bikes {
		fmt.Fprintf(&sb, "%s - %s руб.\n%s\n\n", b.Code, FormatPrice(b.Price), strings.TrimSpace(b.Description))
	}
	return strings.TrimSpace(sb.String()), nil
}

// FormatPrice narxni minglar bo'yicha ajratish: 50000 -> "50 000"
func FormatPrice(price int) string {
	s := strconv.Itoa(price)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// LoadCatalog Excel fayldan katalog yuklash. Yo'l bo'sh yoki fayl o'qilmasa fallback qaytadi.
func LoadCatalog(
	ctx context.Context,
	parser repository.CatalogParser,
	path string,
	fallback entity.BikeCatalog,
	logger *zap.SugaredLogger,
) entity.BikeCatalog {
	if path == "" {
		return fallback
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	bikes, err := parser.ParseCatalog(ctx, path)
	if err != nil {
		logger.Warnw("catalog import failed, using built-in catalog", "path", path, "err", err)
		return fallback
	}

	logger.Infow("catalog loaded from excel", "path", path, "models", len(bikes))
	return entity.BikeCatalog{
		Bikes:     bikes,
		UpdatedAt: time.Now(),
		Source:    filepath.Base(path),
	}
}
