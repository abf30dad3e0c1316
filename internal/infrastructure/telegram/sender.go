package telegram

import (
	"context"
	"fmt"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

// BotAPI tgbotapi.BotAPI dan foydalaniladigan minimal qism
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type sender struct {
	api BotAPI
}

// NewSender Telegram orqali xabar yuboruvchi
func NewSender(api BotAPI) repository.Sender {
	return &sender{api: api}
}

// SendText matnli xabar yuborish
func (s *sender) SendText(ctx context.Context, chatID int64, text string, kb *entity.Keyboard) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if markup := replyMarkup(kb); markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := s.api.Send(msg); err != nil {
		return fmt.Errorf("send message to %d: %w", chatID, err)
	}
	return nil
}

// SendPhoto rasm yuborish. imageRef URL, fayl yo'li yoki Telegram file_id bo'lishi mumkin.
func (s *sender) SendPhoto(ctx context.Context, chatID int64, imageRef string, caption string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	photo := tgbotapi.NewPhoto(chatID, fileData(imageRef))
	photo.Caption = caption
	if _, err := s.api.Send(photo); err != nil {
		return fmt.Errorf("send photo %q to %d: %w", imageRef, chatID, err)
	}
	return nil
}

// SendDocument fayl yuborish
func (s *sender) SendDocument(ctx context.Context, chatID int64, filename string, data []byte, caption string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	doc.Caption = caption
	if _, err := s.api.Send(doc); err != nil {
		return fmt.Errorf("send document %q to %d: %w", filename, chatID, err)
	}
	return nil
}

func replyMarkup(kb *entity.Keyboard) any {
	if kb == nil {
		return nil
	}
	if kb.Remove {
		return tgbotapi.NewRemoveKeyboard(true)
	}
	if len(kb.Rows) == 0 {
		return nil
	}

	rows := make([][]tgbotapi.KeyboardButton, 0, len(kb.Rows))
	for _, row := range kb.Rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, text := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(text))
		}
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(buttons...))
	}

	markup := tgbotapi.NewReplyKeyboard(rows...)
	markup.ResizeKeyboard = true
	return markup
}

func fileData(ref string) tgbotapi.RequestFileData {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return tgbotapi.FileURL(ref)
	}
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return tgbotapi.FilePath(ref)
	}
	return tgbotapi.FileID(ref)
}
