package repository

import (
	"context"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
)

// Sender xabar yetkazish kanali. Har bir metod yetkazilmasa xato qaytaradi.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string, kb *entity.Keyboard) error
	SendPhoto(ctx context.Context, chatID int64, imageRef string, caption string) error
	SendDocument(ctx context.Context, chatID int64, filename string, data []byte, caption string) error
}

// FileDownloader foydalanuvchi yuborgan faylni yuklab olish
type FileDownloader interface {
	Download(ctx context.Context, fileID string) ([]byte, error)
}
