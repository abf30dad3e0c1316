package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

// OrderSink tugallangan buyurtmani saqlash va adminga xabar berish
type OrderSink interface {
	// Complete buyurtmani saqlaydi, keyin adminga yuboradi. Xabar yetkazilmasa
	// saqlangan buyurtma va NotificationDeliveryError qaytadi.
	Complete(ctx context.Context, order entity.Order) (entity.Order, error)
}

type orderSink struct {
	orderRepo repository.OrderRepository
	sender    repository.Sender
	adminID   int64
	now       func() time.Time
	log       *zap.SugaredLogger
}

// NewOrderSink yangi OrderSink yaratish
func NewOrderSink(
	orderRepo repository.OrderRepository,
	sender repository.Sender,
	adminID int64,
	logger *zap.SugaredLogger,
) OrderSink {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &orderSink{
		orderRepo: orderRepo,
		sender:    sender,
		adminID:   adminID,
		now:       time.Now,
		log:       logger,
	}
}

// Complete buyurtmani yakunlash
func (s *orderSink) Complete(ctx context.Context, order entity.Order) (entity.Order, error) {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = s.now()
	}

	id, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		return entity.Order{}, fmt.Errorf("failed to save order: %w", err)
	}
	order.ID = id
	s.log.Infow("order saved", "order_id", id, "user_id", order.UserID, "model", order.BikeModel)

	if err := s.sender.SendText(ctx, s.adminID, FormatOrderNotification(order), nil); err != nil {
		s.log.Errorw("order notification failed", "order_id", id, "admin_id", s.adminID, "err", err)
		return order, &NotificationDeliveryError{OrderID: id, Err: err}
	}

	return order, nil
}

// FormatOrderNotification admin uchun buyurtma matni
func FormatOrderNotification(o entity.Order) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "НОВЫЙ ЗАКАЗ! №%d\n", o.ID)
	fmt.Fprintf(&sb, "Модель: %s\n", o.BikeModel)
	fmt.Fprintf(&sb, "Размер рамы: %s\n", o.FrameSize)
	fmt.Fprintf(&sb, "ФИО: %s\n", o.CustomerName)
	fmt.Fprintf(&sb, "Телефон: %s\n", o.CustomerPhone)
	if o.CustomerEmail != "" {
		fmt.Fprintf(&sb, "Email: %s\n", o.CustomerEmail)
	}
	fmt.Fprintf(&sb, "ID пользователя: %d", o.UserID)
	return sb.String()
}
