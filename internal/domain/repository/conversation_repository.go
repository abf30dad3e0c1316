package repository

import (
	"context"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
)

// ConversationRepository suhbat holatlari (vaqtinchalik xotira)
type ConversationRepository interface {
	// Get suhbatni olish. Topilmasa bosh menyudagi yangi suhbat qaytadi.
	Get(ctx context.Context, userID int64) (*entity.Conversation, error)

	// Save suhbat holatini saqlash
	Save(ctx context.Context, conv *entity.Conversation) error
}
