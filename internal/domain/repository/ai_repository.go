package repository

import (
	"context"
)

// AIRepository AI bilan ishlash uchun interface
type AIRepository interface {
	// GenerateAnswer mijoz savoliga katalog konteksti bilan javob yaratish
	GenerateAnswer(ctx context.Context, question string, catalogContext string) (string, error)
}
