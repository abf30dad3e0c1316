package telegram

import (
	"context"
	"errors"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
	"github.com/yourusername/txed-bike-bot/internal/usecase"
)

// UpdateSource yangilanishlarni olish manbai (tgbotapi.BotAPI)
type UpdateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Incoming platformadan kelgan xabarning bizga kerakli qismi
type Incoming struct {
	UserID    int64
	ChatID    int64
	Username  string
	FirstName string
	LastName  string
	Text      string
	// Phone foydalanuvchi kontakt ulashganda
	Phone    string
	Document *Document
}

// Document yuborilgan fayl
type Document struct {
	FileID   string
	FileName string
	FileSize int
}

func (in Incoming) user() entity.User {
	return entity.User{
		ID:        in.UserID,
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
}

// fromMessage faqat shaxsiy chatdagi xabarlar qabul qilinadi
func fromMessage(msg *tgbotapi.Message) (Incoming, bool) {
	if msg == nil || msg.From == nil || msg.Chat == nil || !msg.Chat.IsPrivate() {
		return Incoming{}, false
	}

	in := Incoming{
		UserID:    msg.From.ID,
		ChatID:    msg.Chat.ID,
		Username:  msg.From.UserName,
		FirstName: msg.From.FirstName,
		LastName:  msg.From.LastName,
		Text:      msg.Text,
	}
	if msg.Contact != nil {
		in.Phone = msg.Contact.PhoneNumber
	}
	if msg.Document != nil {
		in.Document = &Document{
			FileID:   msg.Document.FileID,
			FileName: msg.Document.FileName,
			FileSize: msg.Document.FileSize,
		}
	}
	return in, true
}

// Deps handler bog'liqliklari
type Deps struct {
	Bot           UpdateSource
	Sender        repository.Sender
	Downloader    repository.FileDownloader
	Conversations repository.ConversationRepository
	Orders        usecase.OrderUseCase
	Users         usecase.UserUseCase
	Admin         usecase.AdminUseCase
	Catalog       usecase.CatalogUseCase
	Consultant    usecase.ConsultantUseCase
	Leads         usecase.LeadUseCase
	Workers       int
	Logger        *zap.SugaredLogger
}

// BotHandler Telegram bot handler
type BotHandler struct {
	Deps
	routes     map[string]route
	dispatcher *dispatcher
	log        *zap.SugaredLogger

	// background uzoq davom etadigan ishlar (rassilka)
	background sync.WaitGroup
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(deps Deps) *BotHandler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	h := &BotHandler{Deps: deps, log: logger}
	h.routes = h.buildRoutes()
	h.dispatcher = newDispatcher(deps.Workers, h.handleIncoming, logger)
	return h
}

// Start botni ishga tushirish. ctx tugaguncha bloklanadi.
func (h *BotHandler) Start(ctx context.Context) error {
	h.log.Infow("bot started", "workers", h.dispatcher.workers)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.Bot.GetUpdatesChan(u)

	incoming := make(chan Incoming)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(incoming)
		defer h.Bot.StopReceivingUpdates()
		for {
			select {
			case <-gctx.Done():
				return nil
			case update, ok := <-updates:
				if !ok {
					return nil
				}
				in, ok := fromMessage(update.Message)
				if !ok {
					continue
				}
				select {
				case incoming <- in:
				case <-gctx.Done():
					return nil
				}
			}
		}
	})

	g.Go(func() error {
		return h.dispatcher.Run(gctx, incoming)
	})

	err := g.Wait()
	h.background.Wait()
	h.log.Infow("bot stopped")

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return ctx.Err()
}

// handleIncoming bitta xabarni qayta ishlash. Suhbat holati oxirida saqlanadi.
func (h *BotHandler) handleIncoming(ctx context.Context, in Incoming) {
	if err := h.Users.Touch(ctx, in.user()); err != nil {
		h.log.Warnw("failed to record user activity", "user_id", in.UserID, "err", err)
	}

	conv, err := h.Conversations.Get(ctx, in.UserID)
	if err != nil {
		h.log.Warnw("failed to load conversation", "user_id", in.UserID, "err", err)
		conv = entity.NewConversation(in.UserID)
	}

	h.route(ctx, conv, in)

	conv.UpdatedAt = time.Now()
	if err := h.Conversations.Save(ctx, conv); err != nil {
		h.log.Errorw("failed to save conversation", "user_id", in.UserID, "err", err)
	}
}

// reply foydalanuvchiga javob. Xato faqat loglanadi.
func (h *BotHandler) reply(ctx context.Context, in Incoming, text string, kb *entity.Keyboard) {
	if err := h.Sender.SendText(ctx, in.ChatID, text, kb); err != nil {
		h.log.Warnw("failed to send message", "chat_id", in.ChatID, "err", err)
	}
}
