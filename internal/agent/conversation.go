package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/redis/go-redis/v9"
)

// ConversationStore keeps per-session message history.
type ConversationStore interface {
	AddMessage(ctx context.Context, sessionID string, message *schema.Message) error
	LoadHistory(ctx context.Context, sessionID string) ([]*schema.Message, error)
	ClearHistory(ctx context.Context, sessionID string) error
	MessageCount(ctx context.Context, sessionID string) (int, error)
}

// RedisConversationStore stores each session as a Redis list of JSON
// messages. TTL refreshes on every write so active sessions stay alive.
type RedisConversationStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisConversationStore(rdb redis.Cmdable, ttl time.Duration) *RedisConversationStore {
	return &RedisConversationStore{rdb: rdb, ttl: ttl}
}

func (s *RedisConversationStore) key(sessionID string) string {
	return fmt.Sprintf("conversation:%s:messages", sessionID)
}

func (s *RedisConversationStore) AddMessage(ctx context.Context, sessionID string, message *schema.Message) error {
	b, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	key := s.key(sessionID)

	if err := s.rdb.RPush(ctx, key, b).Err(); err != nil {
		return fmt.Errorf("push message: %w", err)
	}
	if s.ttl > 0 {
		if err := s.rdb.Expire(ctx, key, s.ttl).Err(); err != nil {
			return fmt.Errorf("set ttl: %w", err)
		}
	}
	return nil
}

func (s *RedisConversationStore) LoadHistory(ctx context.Context, sessionID string) ([]*schema.Message, error) {
	rows, err := s.rdb.LRange(ctx, s.key(sessionID), 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []*schema.Message{}, nil
		}
		return nil, fmt.Errorf("load history: %w", err)
	}

	msgs := make([]*schema.Message, 0, len(rows))
	for i, row := range rows {
		var m schema.Message
		if err := json.Unmarshal([]byte(row), &m); err != nil {
			return nil, fmt.Errorf("unmarshal message at index %d: %w", i, err)
		}
		msgs = append(msgs, &m)
	}
	return msgs, nil
}

func (s *RedisConversationStore) ClearHistory(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (s *RedisConversationStore) MessageCount(ctx context.Context, sessionID string) (int, error) {
	n, err := s.rdb.LLen(ctx, s.key(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("message count: %w", err)
	}
	return int(n), nil
}

var _ ConversationStore = (*RedisConversationStore)(nil)

// MemoryConversationStore is a fallback for when Redis is unavailable.
// Sessions live until the process restarts.
type MemoryConversationStore struct {
	mu       sync.Mutex
	sessions map[string][]*schema.Message
}

func NewMemoryConversationStore() *MemoryConversationStore {
	return &MemoryConversationStore{sessions: make(map[string][]*schema.Message)}
}

func (s *MemoryConversationStore) AddMessage(_ context.Context, sessionID string, message *schema.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], message)
	return nil
}

func (s *MemoryConversationStore) LoadHistory(_ context.Context, sessionID string) ([]*schema.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.sessions[sessionID]
	out := make([]*schema.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (s *MemoryConversationStore) ClearHistory(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *MemoryConversationStore) MessageCount(_ context.Context, sessionID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions[sessionID]), nil
}

var _ ConversationStore = (*MemoryConversationStore)(nil)
