package agent

import (
	"context"
	"errors"
	"sync"
)

// Cache 会话存储的可插拔 KV 后端。
type Cache[S any] interface {
	Set(ctx context.Context, key string, val S) error
	Get(ctx context.Context, key string) (S, bool, error)
	Del(ctx context.Context, key string) error
}

type MemoryCache[S any] struct {
	mu sync.RWMutex
	m  map[string]S
}

func NewMemoryCache[S any]() *MemoryCache[S] {
	return &MemoryCache[S]{m: map[string]S{}}
}

func (m *MemoryCache[S]) Set(ctx context.Context, key string, val S) error {
	m.mu.Lock()
	m.m[key] = val
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache[S]) Get(ctx context.Context, key string) (S, bool, error) {
	m.mu.RLock()
	val, ok := m.m[key]
	m.mu.RUnlock()
	return val, ok, nil
}

func (m *MemoryCache[S]) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.m, key)
	m.mu.Unlock()
	return nil
}

type sessionKeyContext struct{}

const defaultSessionKey = "default"

// WithSessionKey 在 context 中设置会话路由键，区分同进程内的多个会话。
func WithSessionKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, sessionKeyContext{}, key)
}

func sessionKeyOrDefault(ctx context.Context) string {
	if key, ok := ctx.Value(sessionKeyContext{}).(string); ok && key != "" {
		return key
	}
	return defaultSessionKey
}

// SessionStore 按 context 路由键存取会话。不同会话完全独立，不共享可变状态。
type SessionStore struct {
	core Cache[*Session]
}

func NewSessionStore(core Cache[*Session]) *SessionStore {
	return &SessionStore{core: core}
}

func NewMemorySessionStore() *SessionStore {
	return NewSessionStore(NewMemoryCache[*Session]())
}

func (s *SessionStore) Load(ctx context.Context) (*Session, error) {
	sess, ok, err := s.core.Get(ctx, sessionKeyOrDefault(ctx))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("session not found")
	}
	return sess, nil
}

func (s *SessionStore) Save(ctx context.Context, sess *Session) error {
	return s.core.Set(ctx, sessionKeyOrDefault(ctx), sess)
}

func (s *SessionStore) Delete(ctx context.Context) error {
	return s.core.Del(ctx, sessionKeyOrDefault(ctx))
}

func (s *SessionStore) Exists(ctx context.Context) bool {
	_, ok, err := s.core.Get(ctx, sessionKeyOrDefault(ctx))
	return err == nil && ok
}
