package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

type cacheConversationRepository struct {
	cache *bigcache.BigCache
}

// NewCacheConversationRepository bigcache asosidagi suhbatlar ombori.
// ttl davomida yangilanmagan suhbat o'chiriladi.
func NewCacheConversationRepository(ctx context.Context, ttl time.Duration) (repository.ConversationRepository, func() error, error) {
	if ttl <= 0 {
		return nil, nil, errors.New("conversation ttl must be positive")
	}

	cfg := bigcache.DefaultConfig(ttl)
	cfg.CleanWindow = time.Minute
	if ttl < cfg.CleanWindow {
		cfg.CleanWindow = ttl
	}
	cfg.Verbose = false

	cache, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create conversation cache: %w", err)
	}

	return &cacheConversationRepository{cache: cache}, cache.Close, nil
}

func conversationKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// Get suhbatni olish
func (c *cacheConversationRepository) Get(ctx context.Context, userID int64) (*entity.Conversation, error) {
	data, err := c.cache.Get(conversationKey(userID))
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return entity.NewConversation(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read conversation %d: %w", userID, err)
	}

	var conv entity.Conversation
	if err := json.Unmarshal(data, &conv); err != nil {
		return nil, fmt.Errorf("decode conversation %d: %w", userID, err)
	}
	return &conv, nil
}

// Save suhbatni saqlash
func (c *cacheConversationRepository) Save(ctx context.Context, conv *entity.Conversation) error {
	conv.UpdatedAt = time.Now()
	data, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("encode conversation %d: %w", conv.UserID, err)
	}
	if err := c.cache.Set(conversationKey(conv.UserID), data); err != nil {
		return fmt.Errorf("write conversation %d: %w", conv.UserID, err)
	}
	return nil
}
