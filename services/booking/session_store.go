package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"equibook/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "bookingSession:"

// SessionTTL bounds how long an abandoned wizard run is kept.
const SessionTTL = 30 * time.Minute

// SessionStore holds in-progress wizard sessions.
type SessionStore interface {
	Save(ctx context.Context, session models.BookingSession) error
	Get(ctx context.Context, id string) (*models.BookingSession, error)
	Delete(ctx context.Context, id string) error
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore returns a SessionStore keeping sessions in Redis
// with a TTL refreshed on every save.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client, ttl: SessionTTL}
}

func (s *redisSessionStore) Save(ctx context.Context, session models.BookingSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save booking session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, id string) (*models.BookingSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking session: %w", err)
	}
	return &session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}
