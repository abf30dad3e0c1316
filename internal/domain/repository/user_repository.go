package repository

import (
	"context"
	"time"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
)

// UserRepository foydalanuvchilar reyestri
type UserRepository interface {
	// UpsertUser foydalanuvchini qo'shish yoki profilini yangilash.
	// CreatedAt faqat birinchi marta yoziladi.
	UpsertUser(ctx context.Context, user entity.User) error

	// RecordActivity oxirgi faollik vaqti va xabarlar sonini yangilash
	RecordActivity(ctx context.Context, userID int64, at time.Time) error

	// ListUsers barcha foydalanuvchilar (yangilari birinchi)
	ListUsers(ctx context.Context) ([]entity.User, error)

	// Stats [dayStart, dayEnd) oralig'i uchun statistika
	Stats(ctx context.Context, dayStart, dayEnd time.Time) (entity.UserStats, error)
}
