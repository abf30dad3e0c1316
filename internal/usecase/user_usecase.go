package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

// UserUseCase foydalanuvchilar reyestri bilan ishlash
type UserUseCase interface {
	// Touch profilni yangilash va faollikni yozish
	Touch(ctx context.Context, user entity.User) error

	// Stats bugungi kun bo'yicha statistika
	Stats(ctx context.Context) (entity.UserStats, error)

	// List barcha foydalanuvchilar (yangilari birinchi)
	List(ctx context.Context) ([]entity.User, error)
}

type userUseCase struct {
	userRepo repository.UserRepository
	loc      *time.Location
	now      func() time.Time
}

// NewUserUseCase yangi UserUseCase yaratish. loc kun chegaralari uchun.
func NewUserUseCase(userRepo repository.UserRepository, loc *time.Location) UserUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &userUseCase{userRepo: userRepo, loc: loc, now: time.Now}
}

// Touch foydalanuvchi faolligini yozish
func (u *userUseCase) Touch(ctx context.Context, user entity.User) error {
	now := u.now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.LastActive = now

	if err := u.userRepo.UpsertUser(ctx, user); err != nil {
		return fmt.Errorf("failed to upsert user %d: %w", user.ID, err)
	}
	if err := u.userRepo.RecordActivity(ctx, user.ID, now); err != nil {
		return fmt.Errorf("failed to record activity for %d: %w", user.ID, err)
	}
	return nil
}

// Stats statistika
func (u *userUseCase) Stats(ctx context.Context) (entity.UserStats, error) {
	start, end := dayBounds(u.now(), u.loc)
	stats, err := u.userRepo.Stats(ctx, start, end)
	if err != nil {
		return entity.UserStats{}, fmt.Errorf("failed to compute stats: %w", err)
	}
	return stats, nil
}

// List foydalanuvchilar ro'yxati
func (u *userUseCase) List(ctx context.Context) ([]entity.User, error) {
	users, err := u.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// dayBounds loc bo'yicha joriy kunning [boshi, oxiri)
func dayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
