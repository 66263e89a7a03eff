package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefreshSession 刷新令牌对应的登录会话
type RefreshSession struct {
	Role        string `json:"role"`
	PrincipalID uint   `json:"principal_id"`
	Email       string `json:"email"`
	IssuedAt    int64  `json:"issued_at"`
}

// RefreshTokenStore 刷新令牌存储
type RefreshTokenStore interface {
	Save(ctx context.Context, token string, session RefreshSession, ttl time.Duration) error
	// Consume 取出并删除令牌，保证同一令牌只能使用一次
	Consume(ctx context.Context, token string) (*RefreshSession, bool, error)
	Revoke(ctx context.Context, token string) error
}

// NewRefreshTokenStore Redis 可用时使用 Redis，否则回退到进程内存
func NewRefreshTokenStore() RefreshTokenStore {
	if Enabled() {
		return &redisRefreshTokenStore{}
	}
	return NewMemoryRefreshTokenStore()
}

func refreshTokenKey(token string) string {
	return fmt.Sprintf("auth:refresh:%s", token)
}

type redisRefreshTokenStore struct{}

func (s *redisRefreshTokenStore) Save(ctx context.Context, token string, session RefreshSession, ttl time.Duration) error {
	return SetJSON(ctx, refreshTokenKey(token), session, ttl)
}

func (s *redisRefreshTokenStore) Consume(ctx context.Context, token string) (*RefreshSession, bool, error) {
	client := Client()
	if client == nil || token == "" {
		return nil, false, nil
	}
	raw, err := client.GetDel(ctx, BuildKey(refreshTokenKey(token))).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var session RefreshSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, false, err
	}
	return &session, true, nil
}

func (s *redisRefreshTokenStore) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return Del(ctx, refreshTokenKey(token))
}

type memoryRefreshEntry struct {
	session   RefreshSession
	expiresAt time.Time
}

// MemoryRefreshTokenStore 进程内刷新令牌存储（单实例部署或测试）
type MemoryRefreshTokenStore struct {
	mu      sync.Mutex
	entries map[string]memoryRefreshEntry
	now     func() time.Time
}

// NewMemoryRefreshTokenStore 创建进程内存储
func NewMemoryRefreshTokenStore() *MemoryRefreshTokenStore {
	return &MemoryRefreshTokenStore{
		entries: make(map[string]memoryRefreshEntry),
		now:     time.Now,
	}
}

// Save 保存令牌
func (s *MemoryRefreshTokenStore) Save(_ context.Context, token string, session RefreshSession, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	s.entries[token] = memoryRefreshEntry{session: session, expiresAt: s.now().Add(ttl)}
	return nil
}

// Consume 取出并删除令牌
func (s *MemoryRefreshTokenStore) Consume(_ context.Context, token string) (*RefreshSession, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[token]
	if !ok {
		return nil, false, nil
	}
	delete(s.entries, token)
	if !s.now().Before(entry.expiresAt) {
		return nil, false, nil
	}
	session := entry.session
	return &session, true, nil
}

// Revoke 删除令牌
func (s *MemoryRefreshTokenStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

func (s *MemoryRefreshTokenStore) purgeLocked() {
	now := s.now()
	for token, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, token)
		}
	}
}
