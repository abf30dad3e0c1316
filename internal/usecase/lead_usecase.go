package usecase

import (
	"context"
	"fmt"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

// LeadUseCase mijozni mutaxassis bilan bog'lash
type LeadUseCase interface {
	// CallSpecialist adminga aloqa so'rovini yuborish
	CallSpecialist(ctx context.Context, user entity.User) error
}

type leadUseCase struct {
	sender  repository.Sender
	adminID int64
}

// NewLeadUseCase yangi LeadUseCase yaratish
func NewLeadUseCase(sender repository.Sender, adminID int64) LeadUseCase {
	return &leadUseCase{sender: sender, adminID: adminID}
}

// CallSpecialist mutaxassisni chaqirish
func (u *leadUseCase) CallSpecialist(ctx context.Context, user entity.User) error {
	text := fmt.Sprintf("Пользователь %s (ID: %d) хочет связаться с Вами", user.FullName(), user.ID)
	if err := u.sender.SendText(ctx, u.adminID, text, nil); err != nil {
		return fmt.Errorf("failed to notify specialist: %w", err)
	}
	return nil
}
