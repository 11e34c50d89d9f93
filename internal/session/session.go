// Package session persists the current signed-in user so a restart restores
// the session, mirroring the durable client storage of the original system.
// There is exactly one logical session: the modeled domain has a single
// browser, so the state is a single record under the key "user".
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Dosseh91/listinghub/internal/models"
	"github.com/redis/go-redis/v9"
)

// Session errors
var (
	// ErrNoSession means no user is signed in.
	ErrNoSession = errors.New("no active session")
	// ErrUnavailable means the backing store cannot be reached; callers
	// should treat session state as still initializing.
	ErrUnavailable = errors.New("session store unavailable")
)

// Key under which the current user record is stored.
const userKey = "user"

// Store persists the current-session user.
type Store interface {
	Save(ctx context.Context, user *models.User) error
	Load(ctx context.Context) (*models.User, error)
	Clear(ctx context.Context) error
}

// RedisStore persists the session in redis as a JSON-serialized user record.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects a session store to the given redis URL.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

// Save stores the user as the current session.
func (s *RedisStore) Save(ctx context.Context, user *models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	if err := s.client.Set(ctx, userKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Load restores the current session user, or ErrNoSession when signed out.
func (s *RedisStore) Load(ctx context.Context) (*models.User, error) {
	payload, err := s.client.Get(ctx, userKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, fmt.Errorf("failed to deserialize user: %w", err)
	}
	return &user, nil
}

// Clear signs the current user out.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, userKey).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Close releases the redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// MemoryStore keeps the session in process memory. Used when no redis URL is
// configured and in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	user *models.User
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u := *user
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Load(ctx context.Context) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, ErrNoSession
	}
	u := *s.user
	return &u, nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return nil
}
