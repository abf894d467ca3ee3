package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/essencia-estetica/agenda-api/internal/domain/schedule"
)

// Store guarda o rascunho de cópia por sessão com semântica de leitura
// única: Pop devolve e apaga.
type Store interface {
	Stash(ctx context.Context, sessionID string, tpl domain.BookingTemplate) error
	Pop(ctx context.Context, sessionID string) (*domain.BookingTemplate, error)
}

const (
	keyPrefix = "copia-agenda:"
	stashTTL  = 30 * time.Minute
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

func (s *RedisStore) Stash(
	ctx context.Context,
	sessionID string,
	tpl domain.BookingTemplate,
) error {

	payload, err := json.Marshal(tpl)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, keyPrefix+sessionID, payload, stashTTL).Err()
}

func (s *RedisStore) Pop(
	ctx context.Context,
	sessionID string,
) (*domain.BookingTemplate, error) {

	payload, err := s.client.GetDel(ctx, keyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var tpl domain.BookingTemplate
	if err := json.Unmarshal([]byte(payload), &tpl); err != nil {
		return nil, err
	}

	return &tpl, nil
}

var _ Store = (*RedisStore)(nil)
