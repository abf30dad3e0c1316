package parser

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

const ordersSheet = "Заказы"

var orderHeader = []any{"№", "Дата", "Модель", "Размер рамы", "ФИО", "Телефон", "Email", "ID пользователя"}

type excelOrderExporter struct {
	loc *time.Location
}

// NewExcelOrderExporter buyurtmalarni xlsx ga chiqaruvchi.
// Sanalar loc vaqt zonasida yoziladi.
func NewExcelOrderExporter(loc *time.Location) repository.OrderExporter {
	if loc == nil {
		loc = time.UTC
	}
	return &excelOrderExporter{loc: loc}
}

// ExportOrders buyurtmalar jadvalini yaratish
func (x *excelOrderExporter) ExportOrders(ctx context.Context, orders []entity.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(ordersSheet, "A1", &orderHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, o := range orders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := []any{o.ID, o.CreatedAt.In(x.loc).Format("2006-01-02 15:04"), o.BikeModel, o.FrameSize, o.CustomerName, o.CustomerPhone, o.CustomerEmail, o.UserID}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(ordersSheet, addr, &row); err != nil {
			return nil, fmt.Errorf("write order %d: %w", o.ID, err)
		}
	}

	if err := f.SetColWidth(ordersSheet, "B", "G", 20); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
