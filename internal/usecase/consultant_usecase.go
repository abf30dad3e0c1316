package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

// ConsultantTimeout AI javobi uchun vaqt chegarasi
const ConsultantTimeout = 20 * time.Second

// ConsultantUseCase menyudan tashqari savollarga AI javobi
type ConsultantUseCase interface {
	// Enabled AI sozlanganmi
	Enabled() bool

	// Answer savolga javob
	Answer(ctx context.Context, question string) (string, error)
}

type consultantUseCase struct {
	ai      repository.AIRepository
	catalog CatalogUseCase
	timeout time.Duration
}

// NewConsultantUseCase yangi ConsultantUseCase yaratish. ai nil bo'lsa o'chirilgan.
func NewConsultantUseCase(ai repository.AIRepository, catalog CatalogUseCase) ConsultantUseCase {
	return &consultantUseCase{ai: ai, catalog: catalog, timeout: ConsultantTimeout}
}

// Enabled AI bormi
func (c *consultantUseCase) Enabled() bool {
	return c.ai != nil
}

// Answer javob olish
func (c *consultantUseCase) Answer(ctx context.Context, question string) (string, error) {
	if c.ai == nil {
		return "", ErrConsultantDisabled
	}

	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("empty question")
	}

	catalogContext, err := c.catalog.CatalogContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to build catalog context: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	answer, err := c.ai.GenerateAnswer(ctx, question, catalogContext)
	if err != nil {
		return "", fmt.Errorf("consultant: %w", err)
	}
	return answer, nil
}
