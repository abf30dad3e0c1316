package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/orderflow"
)

// FlowResult oqim qadamining natijasi
type FlowResult struct {
	StillInFlow bool
	Prompt      orderflow.Prompt
	Cancelled   bool
	Order       *entity.Order
	// NotifyErr buyurtma saqlandi, lekin adminga xabar yetmadi
	NotifyErr error
}

// OrderUseCase buyurtma rasmiylashtirish oqimi
type OrderUseCase interface {
	// EnterFlow tanlangan model bilan oqimni boshlash
	EnterFlow(ctx context.Context, conv *entity.Conversation) (FlowResult, error)

	// Submit joriy qadamga matn yuborish
	Submit(ctx context.Context, conv *entity.Conversation, text string) (FlowResult, error)

	// Cancel oqimni bekor qilish
	Cancel(ctx context.Context, conv *entity.Conversation) FlowResult

	// FrameSizes rama o'lchamlari
	FrameSizes() []string
}

type orderUseCase struct {
	machine *orderflow.Machine
	sink    OrderSink
	log     *zap.SugaredLogger
}

// NewOrderUseCase yangi OrderUseCase yaratish
func NewOrderUseCase(machine *orderflow.Machine, sink OrderSink, logger *zap.SugaredLogger) OrderUseCase {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &orderUseCase{machine: machine, sink: sink, log: logger}
}

// EnterFlow oqimni boshlash
func (u *orderUseCase) EnterFlow(ctx context.Context, conv *entity.Conversation) (FlowResult, error) {
	step, err := u.machine.Enter(conv.Flow, conv.SelectedModel)
	if err != nil {
		return FlowResult{StillInFlow: step.StillInFlow, Prompt: step.Prompt}, err
	}

	conv.Flow = step.Session
	conv.Screen = entity.ScreenOrder
	u.log.Debugw("order flow started", "user_id", conv.UserID, "model", conv.SelectedModel)
	return FlowResult{StillInFlow: true, Prompt: step.Prompt}, nil
}

// Submit kiritilgan qiymatni qayta ishlash
func (u *orderUseCase) Submit(ctx context.Context, conv *entity.Conversation, text string) (FlowResult, error) {
	step, err := u.machine.Submit(conv.Flow, text)
	if err != nil {
		return FlowResult{StillInFlow: step.StillInFlow, Prompt: step.Prompt}, err
	}

	if step.Cancelled {
		u.finish(conv, step.Session)
		u.log.Debugw("order flow cancelled", "user_id", conv.UserID)
		return FlowResult{Cancelled: true}, nil
	}

	if step.Completed == nil {
		conv.Flow = step.Session
		return FlowResult{StillInFlow: true, Prompt: step.Prompt}, nil
	}

	order, err := u.sink.Complete(ctx, entity.Order{
		UserID:        conv.UserID,
		CustomerName:  step.Completed.CustomerName,
		CustomerPhone: step.Completed.CustomerPhone,
		CustomerEmail: step.Completed.CustomerEmail,
		BikeModel:     step.Completed.SelectedModel,
		FrameSize:     step.Completed.FrameSize,
	})

	var notifyErr *NotificationDeliveryError
	if err != nil && !errors.As(err, &notifyErr) {
		// Saqlanmadi: suhbat oxirgi qadamda qoladi, foydalanuvchi qayta yuborishi mumkin
		return FlowResult{StillInFlow: true, Prompt: conv.Flow.State.Prompt()}, err
	}

	u.finish(conv, step.Session)
	result := FlowResult{Order: &order}
	if notifyErr != nil {
		result.NotifyErr = notifyErr
	}
	return result, nil
}

// Cancel oqimni bekor qilish
func (u *orderUseCase) Cancel(ctx context.Context, conv *entity.Conversation) FlowResult {
	if !conv.InFlow() {
		return FlowResult{}
	}
	u.finish(conv, u.machine.Cancel(conv.Flow))
	return FlowResult{Cancelled: true}
}

// FrameSizes rama o'lchamlari
func (u *orderUseCase) FrameSizes() []string {
	return u.machine.FrameSizes()
}

// finish draft va tanlangan modelni tozalab, bosh menyuga qaytarish
func (u *orderUseCase) finish(conv *entity.Conversation, terminal orderflow.Session) {
	conv.Flow = terminal
	conv.SelectedModel = ""
	conv.Screen = entity.ScreenMain
}
