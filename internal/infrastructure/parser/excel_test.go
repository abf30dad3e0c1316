package parser

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
)

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", addr, &r))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseCatalog(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Фото модели", "Модель", "Описание", "Цена"},
		{"https://cdn.example/primo1.jpg; https://cdn.example/primo2.jpg", "PRIMO", "Базовая модель", "50 000 руб."},
		{"", "TERZO", "Спорт", "75000"},
		{"", "", "без кода", "1"},
		{"", "PRIMO", "дубликат", "1"},
		{"", "ULTIMO", "плохая цена", "дорого"},
		{},
		{"", "TESORO", "", ""},
	})

	bikes, err := NewExcelCatalogParser(nil).ParseCatalogFromBytes(context.Background(), data)
	require.NoError(t, err)
	require.Equal(t, []entity.Bike{
		{
			Code:        "PRIMO",
			Description: "Базовая модель",
			Price:       50000,
			Photos:      []string{"https://cdn.example/primo1.jpg", "https://cdn.example/primo2.jpg"},
		},
		{Code: "TERZO", Description: "Спорт", Price: 75000},
		{Code: "TESORO"},
	}, bikes)
}

func TestParseCatalog_Errors(t *testing.T) {
	p := NewExcelCatalogParser(nil)
	ctx := context.Background()

	_, err := p.ParseCatalogFromBytes(ctx, []byte("not a zip"))
	require.Error(t, err)

	_, err = p.ParseCatalogFromBytes(ctx, buildWorkbook(t, [][]any{{"Модель", "Цена"}}))
	require.ErrorContains(t, err, "no data")

	_, err = p.ParseCatalogFromBytes(ctx, buildWorkbook(t, [][]any{{"Цена"}, {"100"}}))
	require.ErrorContains(t, err, "code column")

	_, err = p.ParseCatalogFromBytes(ctx, buildWorkbook(t, [][]any{{"Код", "Цена"}, {"", "100"}}))
	require.ErrorContains(t, err, "no valid bikes")
}

func TestParsePrice(t *testing.T) {
	cases := map[string]int{
		"50 000 руб.": 50000,
		"120000":      120000,
		"45 000 ₽":    45000,
		"95,000":      95000,
		"1999.6":      2000,
	}
	for in, want := range cases {
		got, err := parsePrice(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "abc", "-5"} {
		_, err := parsePrice(in)
		require.Error(t, err, in)
	}
}

func TestExportOrders(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	orders := []entity.Order{
		{ID: 1, UserID: 42, CustomerName: "Io", CustomerPhone: "12345", BikeModel: "PRIMO", FrameSize: `L (19")`, CreatedAt: time.Date(2025, 3, 2, 21, 30, 0, 0, time.UTC)},
		{ID: 2, UserID: 43, CustomerName: "Анна", CustomerPhone: "+79130000000", CustomerEmail: "a@b.ru", BikeModel: "TERZO", FrameSize: `M (17")`, CreatedAt: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)},
	}

	data, err := NewExcelOrderExporter(loc).ExportOrders(context.Background(), orders)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{ordersSheet}, f.GetSheetList())

	rows, err := f.GetRows(ordersSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "Модель", rows[0][2])
	require.Equal(t, []string{"1", "2025-03-03 00:30", "PRIMO", `L (19")`, "Io", "12345", "", "42"}, rows[1])
	require.Equal(t, "a@b.ru", rows[2][6])
}

func TestExportOrders_Empty(t *testing.T) {
	data, err := NewExcelOrderExporter(nil).ExportOrders(context.Background(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}
