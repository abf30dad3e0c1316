package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

const modelName = "gemini-2.0-flash"

const systemInstruction = `Ты консультант официального магазина велосипедов TXED в России (компания "СИБВЕЛО").
Отвечай по-русски, коротко и дружелюбно, не больше 5-6 предложений.

Правила:
1. Рекомендуй ТОЛЬКО модели из присланного каталога и называй их точно так, как в каталоге (PRIMO, TERZO и т.д.).
2. Цены бери только из каталога. Не придумывай скидки, сроки доставки и характеристики, которых нет в каталоге.
3. Если вопрос не про велосипеды TXED, вежливо верни разговор к выбору велосипеда.
4. Чтобы оформить заказ, предложи открыть "Каталог", выбрать модель и нажать "Заказать".
5. Если не знаешь ответа, предложи нажать "Позвать специалиста".`

type geminiClient struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	sem     chan struct{}
	limiter *rate.Limiter
}

// NewGeminiClient yangi Gemini AI client yaratish
func NewGeminiClient(ctx context.Context, apiKey string) (repository.AIRepository, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)

	// Aniq va qisqa javoblar uchun
	model.SetTemperature(0.3)
	model.SetTopK(20)
	model.SetTopP(0.9)
	model.SetMaxOutputTokens(1024)

	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	return &geminiClient{
		client:  client,
		model:   model,
		sem:     make(chan struct{}, 3),                               // bir vaqtda 3 ta so'rovdan oshirma
		limiter: rate.NewLimiter(rate.Every(350*time.Millisecond), 1), // minimal interval
	}, nil
}

// GenerateAnswer katalog konteksti bilan javob yaratish
func (g *geminiClient) GenerateAnswer(ctx context.Context, question string, catalogContext string) (string, error) {
	release, err := g.acquire(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	parts := []genai.Part{
		genai.Text("Каталог магазина:\n" + catalogContext),
		genai.Text("Вопрос клиента: " + question),
	}

	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response candidates")
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", fmt.Errorf("empty response")
	}
	return text, nil
}

// extractText javobdan textni ajratib olish
func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				result.WriteString(string(t))
			}
		}
	}
	return result.String()
}

func (g *geminiClient) acquire(ctx context.Context) (func(), error) {
	select {
	case g.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if err := g.limiter.Wait(ctx); err != nil {
		<-g.sem
		return nil, err
	}

	return func() {
		<-g.sem
	}, nil
}

// Close client ni yopish
func (g *geminiClient) Close() error {
	return g.client.Close()
}
