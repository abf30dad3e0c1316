package parser

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

type excelCatalogParser struct {
	log *zap.SugaredLogger
}

// NewExcelCatalogParser yangi Excel katalog parser yaratish
func NewExcelCatalogParser(logger *zap.SugaredLogger) repository.CatalogParser {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &excelCatalogParser{log: logger}
}

// ParseCatalog Excel fayldan katalogni o'qish
func (e *excelCatalogParser) ParseCatalog(ctx context.Context, filePath string) ([]entity.Bike, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	return e.parseExcelFile(f)
}

// ParseCatalogFromBytes byte array dan parse qilish
func (e *excelCatalogParser) ParseCatalogFromBytes(ctx context.Context, data []byte) ([]entity.Bike, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel from bytes: %w", err)
	}
	defer f.Close()

	return e.parseExcelFile(f)
}

// parseExcelFile birinchi sheetdan modellarni o'qish. Birinchi qator header.
func (e *excelCatalogParser) parseExcelFile(f *excelize.File) ([]entity.Bike, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("excel file has no data")
	}

	columnMap := mapColumns(rows[0])
	codeCol, ok := columnMap["code"]
	if !ok {
		return nil, fmt.Errorf("code column not found in header %v", rows[0])
	}
	e.log.Debugw("catalog column mapping", "columns", columnMap)

	var bikes []entity.Bike
	seen := make(map[string]bool)

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		code := cell(row, codeCol)
		if code == "" {
			e.log.Warnw("catalog row without model code, skipping", "row", i+1)
			continue
		}
		if seen[code] {
			e.log.Warnw("duplicate model code, skipping", "row", i+1, "code", code)
			continue
		}

		bike := entity.Bike{Code: code}

		if col, ok := columnMap["description"]; ok {
			bike.Description = cell(row, col)
		}
		if col, ok := columnMap["price"]; ok {
			if raw := cell(row, col); raw != "" {
				price, err := parsePrice(raw)
				if err != nil {
					e.log.Warnw("invalid price, skipping row", "row", i+1, "code", code, "price", raw)
					continue
				}
				bike.Price = price
			}
		}
		if col, ok := columnMap["photos"]; ok {
			bike.Photos = splitPhotos(cell(row, col))
		}

		seen[code] = true
		bikes = append(bikes, bike)
	}

	if len(bikes) == 0 {
		return nil, fmt.Errorf("no valid bikes found in excel file (%d data rows)", len(rows)-1)
	}

	e.log.Infow("catalog parsed", "bikes", len(bikes))
	return bikes, nil
}

// mapColumns header qatoridan column mapping yaratish
func mapColumns(header []string) map[string]int {
	columnMap := make(map[string]int)

	for i, col := range header {
		colName := strings.ToLower(strings.TrimSpace(col))
		if colName == "" {
			continue
		}

		// "Фото модели" kabi nomlar model ustuniga tushmasligi uchun tartib muhim
		switch {
		case contains(colName, "photo", "фото", "image", "картин", "rasm"):
			setOnce(columnMap, "photos", i)
		case contains(colName, "price", "цена", "стоимость", "narx"):
			setOnce(columnMap, "price", i)
		case contains(colName, "descr", "описан", "tavsif"):
			setOnce(columnMap, "description", i)
		case contains(colName, "code", "код", "model", "модел", "name", "назван", "nomi"):
			setOnce(columnMap, "code", i)
		}
	}

	return columnMap
}

func setOnce(m map[string]int, key string, idx int) {
	if _, ok := m[key]; !ok {
		m[key] = idx
	}
}

// contains tekshirish uchun helper
func contains(str string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(str, keyword) {
			return true
		}
	}
	return false
}

// isEmptyRow qator bo'sh yoki yo'qligini tekshirish
func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parsePrice "50 000 руб." kabi narxni butun rublga aylantirish
func parsePrice(priceStr string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(priceStr))
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}

	for _, junk := range []string{" ", "\u00a0", ",", "₽", "руб.", "руб", "rub", "р."} {
		s = strings.ReplaceAll(s, junk, "")
	}
	s = strings.TrimSuffix(s, ".")

	price, err := strconv.ParseFloat(s, 64)
	if err != nil || price < 0 {
		return 0, fmt.Errorf("invalid price format: %s", priceStr)
	}
	return int(math.Round(price)), nil
}

func splitPhotos(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})

	var photos []string
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			photos = append(photos, f)
		}
	}
	return photos
}
