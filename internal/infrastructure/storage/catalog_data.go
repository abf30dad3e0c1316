package storage

import (
	"time"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
)

// DefaultCatalog botga o'rnatilgan TXED katalogi
func DefaultCatalog() entity.BikeCatalog {
	return entity.BikeCatalog{
		Source:    "builtin",
		UpdatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Bikes: []entity.Bike{
			{
				Code: "PRIMO",
				Description: "Маневренная, универсальная модель для активного фанового катания в холмистой местности.\n" +
					"Велосипед базового уровня в нашей линейке, для зрелых любителей качества и современных тенденции велостроения.",
				Price: 50000,
			},
			{
				Code: "TERZO",
				Description: "Спортивная модель для профессионального использования.\n" +
					"Идеальный выбор для соревнований и тренировок. Премиальное качество сборки.",
				Price: 75000,
			},
			{
				Code: "ULTIMO",
				Description: "Флагманская модель с инновационными технологиями.\n" +
					"Максимальная производительность и комфорт. Для самых требовательных велосипедистов.",
				Price: 120000,
			},
			{
				Code: "TESORO",
				Description: "Городской велосипед с элегантным дизайном.\n" +
					"Идеален для повседневного использования и прогулок по городу. Стиль и практичность.",
				Price: 45000,
			},
			{
				Code: "OTTIMO",
				Description: "Горный велосипед для экстремальных условий.\n" +
					"Прочная конструкция и advanced технологии. Для настоящих любителей адреналина.",
				Price: 95000,
			},
		},
	}
}
