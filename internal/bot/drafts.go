package bot

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"preizo/pkg/redis"
)

// DraftStore keeps the fields a chat has entered so far.
type DraftStore interface {
	// Load returns an empty draft when the chat has none.
	Load(ctx context.Context, chatID int64) (Draft, error)
	Save(ctx context.Context, chatID int64, d Draft) error
	Clear(ctx context.Context, chatID int64) error
}

// RedisDrafts stores drafts as JSON with the client's TTL.
type RedisDrafts struct {
	redis *redis.Client
}

func NewRedisDrafts(client *redis.Client) *RedisDrafts {
	return &RedisDrafts{redis: client}
}

func (s *RedisDrafts) Load(ctx context.Context, chatID int64) (Draft, error) {
	d := Draft{}
	if err := s.redis.GetState(ctx, chatID, &d); err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return Draft{}, nil
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if d == nil {
		d = Draft{}
	}
	return d, nil
}

func (s *RedisDrafts) Save(ctx context.Context, chatID int64, d Draft) error {
	if err := s.redis.SaveState(ctx, chatID, d); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *RedisDrafts) Clear(ctx context.Context, chatID int64) error {
	if err := s.redis.ClearState(ctx, chatID); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}

// MemoryDrafts is used when no Redis is configured. Drafts are lost on
// restart.
type MemoryDrafts struct {
	mu     sync.Mutex
	drafts map[int64]Draft
}

func NewMemoryDrafts() *MemoryDrafts {
	return &MemoryDrafts{drafts: make(map[int64]Draft)}
}

func (s *MemoryDrafts) Load(_ context.Context, chatID int64) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := Draft{}
	for k, v := range s.drafts[chatID] {
		d[k] = v
	}
	return d, nil
}

func (s *MemoryDrafts) Save(_ context.Context, chatID int64, d Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make(Draft, len(d))
	for k, v := range d {
		cp[k] = v
	}
	s.drafts[chatID] = cp
	return nil
}

func (s *MemoryDrafts) Clear(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, chatID)
	return nil
}
