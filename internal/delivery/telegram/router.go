package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/orderflow"
)

// maxCatalogFileSize admin yuklaydigan katalog fayli chegarasi (5MB)
const maxCatalogFileSize = 5 * 1024 * 1024

type handlerFunc func(ctx context.Context, conv *entity.Conversation, in Incoming)

type route struct {
	handle    handlerFunc
	adminOnly bool
	denied    string
}

// buildRoutes aniq tugma va komanda qiymatlari jadvali.
// Model kodlari katalogdan olinadi, shuning uchun jadvalda yo'q.
func (h *BotHandler) buildRoutes() map[string]route {
	admin := func(fn handlerFunc) route {
		return route{handle: fn, adminOnly: true, denied: textNoAccess}
	}

	return map[string]route{
		cmdStart:          {handle: h.handleStart},
		cmdCancel:         {handle: h.handleMainMenu},
		btnCatalog:        {handle: h.handleCatalog},
		btnAbout:          {handle: h.handleAbout},
		btnCallSpecialist: {handle: h.handleCallSpecialist},
		btnOrder:          {handle: h.handleOrder},
		btnBack:           {handle: h.handleMainMenu},
		btnBackToModels:   {handle: h.handleCatalog},

		btnAdminPanel:      {handle: h.handleAdminPanel, adminOnly: true, denied: textNoAdminAccess},
		btnStats:           admin(h.handleStats),
		btnBroadcast:       admin(h.handleBroadcastStart),
		btnUsers:           admin(h.handleUsers),
		btnExportOrders:    admin(h.handleExportOrders),
		btnExitAdmin:       admin(h.handleMainMenu),
		btnCancelBroadcast: admin(h.handleAdminPanel),
		btnAuditLog:        admin(h.handleAuditLog),
	}
}

// route xabarni kerakli handlerga yo'naltirish
func (h *BotHandler) route(ctx context.Context, conv *entity.Conversation, in Incoming) {
	text := strings.TrimSpace(in.Text)
	key := orderflow.CommandKey(text)

	if in.Document != nil {
		h.handleDocument(ctx, conv, in)
		return
	}

	// Buyurtma oqimida faqat /start oqimdan tashqarida ishlaydi
	if conv.InFlow() {
		if key == cmdStart {
			h.Orders.Cancel(ctx, conv)
			h.handleStart(ctx, conv, in)
			return
		}
		input := in.Text
		if in.Phone != "" && conv.Flow.State == orderflow.StateAwaitingPhone {
			input = in.Phone
		}
		h.handleOrderInput(ctx, conv, in, input)
		return
	}

	// Tarqatish ekranida komanda va menyu tugmalari tarqatilmaydi
	if conv.Screen == entity.ScreenBroadcast && h.Admin.IsAdmin(in.UserID) {
		if _, routed := h.routes[key]; !routed && !strings.HasPrefix(key, "/") {
			h.handleBroadcastText(ctx, conv, in)
			return
		}
		conv.Screen = entity.ScreenAdmin
	}

	if r, ok := h.routes[key]; ok {
		if r.adminOnly && !h.Admin.IsAdmin(in.UserID) {
			h.reply(ctx, in, r.denied, nil)
			return
		}
		r.handle(ctx, conv, in)
		return
	}

	if text != "" {
		if bike, err := h.Catalog.GetBike(ctx, text); err == nil {
			h.showBike(ctx, conv, in, *bike)
			return
		}
	}

	h.handleUnknown(ctx, conv, in)
}

func (h *BotHandler) handleStart(ctx context.Context, conv *entity.Conversation, in Incoming) {
	conv.Screen = entity.ScreenMain
	h.reply(ctx, in, fmt.Sprintf(textWelcome, in.FirstName), mainMenuKeyboard(h.Admin.IsAdmin(in.UserID)))
}

func (h *BotHandler) handleMainMenu(ctx context.Context, conv *entity.Conversation, in Incoming) {
	conv.Screen = entity.ScreenMain
	h.reply(ctx, in, textMainMenu, mainMenuKeyboard(h.Admin.IsAdmin(in.UserID)))
}

func (h *BotHandler) handleCatalog(ctx context.Context, conv *entity.Conversation, in Incoming) {
	codes, err := h.Catalog.Codes(ctx)
	if err != nil {
		h.log.Errorw("failed to load catalog", "err", err)
		h.reply(ctx, in, textGenericError, nil)
		return
	}
	conv.Screen = entity.ScreenCatalog
	h.reply(ctx, in, textChooseModel, catalogKeyboard(codes))
}

func (h *BotHandler) handleAbout(ctx context.Context, conv *entity.Conversation, in Incoming) {
	conv.Screen = entity.ScreenAbout
	h.reply(ctx, in, textAbout, backKeyboard())
}

func (h *BotHandler) handleCallSpecialist(ctx context.Context, conv *entity.Conversation, in Incoming) {
	if err := h.Leads.CallSpecialist(ctx, in.user()); err != nil {
		h.log.Errorw("failed to notify specialist", "user_id", in.UserID, "err", err)
		h.reply(ctx, in, textSpecialistFailed, nil)
		return
	}
	h.reply(ctx, in, textSpecialistNotified, nil)
}

// showBike model kartochkasi: avval rasmlar, keyin tavsif
func (h *BotHandler) showBike(ctx context.Context, conv *entity.Conversation, in Incoming, bike entity.Bike) {
	conv.SelectedModel = bike.Code
	conv.Screen = entity.ScreenBike

	for _, photo := range bike.Photos {
		if err := h.Sender.SendPhoto(ctx, in.ChatID, photo, ""); err != nil {
			h.log.Warnw("failed to send bike photo", "model", bike.Code, "photo", photo, "err", err)
		}
	}
	h.reply(ctx, in, h.Catalog.BikeCard(bike), bikeKeyboard())
}

func (h *BotHandler) handleOrder(ctx context.Context, conv *entity.Conversation, in Incoming) {
	res, err := h.Orders.EnterFlow(ctx, conv)
	if errors.Is(err, orderflow.ErrMissingSelection) {
		codes, cerr := h.Catalog.Codes(ctx)
		if cerr != nil {
			h.log.Errorw("failed to load catalog", "err", cerr)
		}
		conv.Screen = entity.ScreenCatalog
		h.reply(ctx, in, textSelectModelFirst, catalogKeyboard(codes))
		return
	}
	if err != nil {
		h.log.Errorw("failed to start order", "user_id", in.UserID, "err", err)
		h.reply(ctx, in, textGenericError, nil)
		return
	}
	h.reply(ctx, in, promptText(res.Prompt), h.promptKeyboard(res.Prompt))
}

// handleOrderInput oqim ichidagi har qanday matn
func (h *BotHandler) handleOrderInput(ctx context.Context, conv *entity.Conversation, in Incoming, input string) {
	res, err := h.Orders.Submit(ctx, conv, input)
	if err != nil {
		if verr, ok := orderflow.IsValidation(err); ok {
			h.reply(ctx, in, validationText(verr.Reason, res.Prompt), h.promptKeyboard(res.Prompt))
			return
		}
		h.log.Errorw("order submit failed", "user_id", in.UserID, "state", conv.Flow.State.String(), "err", err)
		h.reply(ctx, in, textOrderFailed, h.promptKeyboard(res.Prompt))
		return
	}

	isAdmin := h.Admin.IsAdmin(in.UserID)
	switch {
	case res.Cancelled:
		h.reply(ctx, in, textOrderCancelled, mainMenuKeyboard(isAdmin))
	case res.Order != nil:
		if res.NotifyErr != nil {
			h.log.Warnw("order saved without admin notification", "order_id", res.Order.ID, "err", res.NotifyErr)
		}
		h.reply(ctx, in, textOrderDone, mainMenuKeyboard(isAdmin))
	default:
		h.reply(ctx, in, promptText(res.Prompt), h.promptKeyboard(res.Prompt))
	}
}

func promptText(p orderflow.Prompt) string {
	switch p {
	case orderflow.PromptFrameSize:
		return textChooseFrame
	case orderflow.PromptName:
		return textAskName
	case orderflow.PromptPhone:
		return textAskPhone
	case orderflow.PromptEmail:
		return textAskEmail
	}
	return textMainMenu
}

func (h *BotHandler) promptKeyboard(p orderflow.Prompt) *entity.Keyboard {
	if p == orderflow.PromptFrameSize {
		return frameKeyboard(h.Orders.FrameSizes())
	}
	return backKeyboard()
}

func validationText(reason orderflow.Reason, p orderflow.Prompt) string {
	switch reason {
	case orderflow.ReasonFrameSize:
		return textBadFrame
	case orderflow.ReasonNameTooShort:
		return textNameTooShort
	case orderflow.ReasonPhoneTooShort:
		return textPhoneTooShort
	case orderflow.ReasonCommand:
		return textCommandInFlow + "\n\n" + promptText(p)
	}
	return textEmptyInput + "\n\n" + promptText(p)
}

func (h *BotHandler) handleAdminPanel(ctx context.Context, conv *entity.Conversation, in Incoming) {
	conv.Screen = entity.ScreenAdmin
	h.reply(ctx, in, textAdminPanel, adminKeyboard())
}

func (h *BotHandler) handleStats(ctx context.Context, conv *entity.Conversation, in Incoming) {
	text, err := h.Admin.StatsText(ctx)
	if err != nil {
		h.log.Errorw("failed to load stats", "err", err)
		text = textGenericError
	}
	h.reply(ctx, in, text, nil)
}

func (h *BotHandler) handleUsers(ctx context.Context, conv *entity.Conversation, in Incoming) {
	text, err := h.Admin.UserListText(ctx)
	if err != nil {
		h.log.Errorw("failed to list users", "err", err)
		text = textGenericError
	}
	h.reply(ctx, in, text, nil)
}

func (h *BotHandler) handleAuditLog(ctx context.Context, conv *entity.Conversation, in Incoming) {
	text, err := h.Admin.AuditLogText(ctx)
	if err != nil {
		h.log.Errorw("failed to list admin actions", "err", err)
		text = textGenericError
	}
	h.reply(ctx, in, text, nil)
}

func (h *BotHandler) handleBroadcastStart(ctx context.Context, conv *entity.Conversation, in Incoming) {
	conv.Screen = entity.ScreenBroadcast
	h.reply(ctx, in, textAskBroadcast, broadcastKeyboard())
}

// handleBroadcastText rassilka matni keldi. Yuborish fonda davom etadi,
// shu vaqt ichida admin bilan suhbat bloklanmaydi.
func (h *BotHandler) handleBroadcastText(ctx context.Context, conv *entity.Conversation, in Incoming) {
	if strings.TrimSpace(in.Text) == "" {
		h.reply(ctx, in, textAskBroadcast, broadcastKeyboard())
		return
	}

	conv.Screen = entity.ScreenAdmin
	h.reply(ctx, in, textBroadcastStarted, adminKeyboard())

	h.background.Add(1)
	go func() {
		defer h.background.Done()

		report, err := h.Admin.Broadcast(ctx, in.UserID, in.Text)
		if err != nil {
			h.log.Errorw("broadcast failed", "err", err)
			h.reply(ctx, in, textGenericError, nil)
			return
		}
		h.log.Infow("broadcast finished", "total", report.Total, "ok", report.Successful, "failed", report.Failed)
		h.reply(ctx, in, fmt.Sprintf(textBroadcastDone, report.Successful, report.Failed), adminKeyboard())
	}()
}

func (h *BotHandler) handleExportOrders(ctx context.Context, conv *entity.Conversation, in Incoming) {
	data, n, err := h.Admin.ExportOrders(ctx, in.UserID)
	if err != nil {
		h.log.Errorw("failed to export orders", "err", err)
		h.reply(ctx, in, textGenericError, nil)
		return
	}
	if n == 0 {
		h.reply(ctx, in, textNoOrders, nil)
		return
	}

	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102_1504"))
	if err := h.Sender.SendDocument(ctx, in.ChatID, filename, data, fmt.Sprintf(textOrdersExported, n)); err != nil {
		h.log.Errorw("failed to send orders file", "err", err)
		h.reply(ctx, in, textGenericError, nil)
	}
}

// handleDocument admin Excel katalog yuklashi
func (h *BotHandler) handleDocument(ctx context.Context, conv *entity.Conversation, in Incoming) {
	if !h.Admin.IsAdmin(in.UserID) {
		h.reply(ctx, in, textFilesAdminOnly, nil)
		return
	}

	doc := in.Document
	if !strings.HasSuffix(strings.ToLower(doc.FileName), ".xlsx") || doc.FileSize > maxCatalogFileSize {
		h.reply(ctx, in, textCatalogBadFile, nil)
		return
	}

	h.reply(ctx, in, textCatalogLoading, nil)

	data, err := h.Downloader.Download(ctx, doc.FileID)
	if err != nil {
		h.log.Errorw("failed to download catalog", "file", doc.FileName, "err", err)
		h.reply(ctx, in, fmt.Sprintf(textCatalogFailed, err), nil)
		return
	}

	n, err := h.Admin.UploadCatalog(ctx, in.UserID, data, doc.FileName)
	if err != nil {
		h.log.Errorw("failed to upload catalog", "file", doc.FileName, "err", err)
		h.reply(ctx, in, fmt.Sprintf(textCatalogFailed, err), nil)
		return
	}
	h.reply(ctx, in, fmt.Sprintf(textCatalogUploaded, n, doc.FileName), nil)
}

// handleUnknown menyudan tashqari matn: AI maslahatchi yoki yordam matni
func (h *BotHandler) handleUnknown(ctx context.Context, conv *entity.Conversation, in Incoming) {
	text := strings.TrimSpace(in.Text)
	if text == "" || strings.HasPrefix(text, "/") || !h.Consultant.Enabled() {
		h.reply(ctx, in, textUseMenu, nil)
		return
	}

	answer, err := h.Consultant.Answer(ctx, text)
	if err != nil {
		h.log.Warnw("consultant failed", "user_id", in.UserID, "err", err)
		h.reply(ctx, in, textUseMenu, nil)
		return
	}
	h.reply(ctx, in, answer, nil)
}
