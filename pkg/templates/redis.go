package templates

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/printgrid/pkg/errors"
)

// redisKey is the hash holding all templates, field = template id.
const redisKey = "printgrid:templates"

// RedisConfig configures the redis-backed template store.
type RedisConfig struct {
	Addr     string // host:port, e.g. "localhost:6379"
	Password string
	DB       int
}

// RedisStore keeps templates in a single redis hash so multiple instances
// share one catalog.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to redis at %s", cfg.Addr)
	}
	return &RedisStore{client: client}, nil
}

// Load reads the whole template hash.
func (s *RedisStore) Load(ctx context.Context) ([]Stored, error) {
	fields, err := s.client.HGetAll(ctx, redisKey).Result()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "load templates")
	}
	out := make([]Stored, 0, len(fields))
	for _, raw := range fields {
		var t Stored
		if err := json.Unmarshal([]byte(raw), &t); err != nil || t.ID == "" {
			// Skip corrupt entries; one bad field must not hide the rest.
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Save writes the template under its id field.
func (s *RedisStore) Save(ctx context.Context, t Stored) error {
	data, err := json.Marshal(t)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal template %s", t.ID)
	}
	if err := s.client.HSet(ctx, redisKey, t.ID, data).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "save template %s", t.ID)
	}
	return nil
}

// Delete removes the template's hash field.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.HDel(ctx, redisKey, id).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete template %s", id)
	}
	return nil
}

// Close closes the redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
