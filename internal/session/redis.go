package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/carelink/portal-gateway/internal/domain"
)

// RedisStore implements Store on Redis so sessions survive a gateway restart.
// One record per session: sess:<sid> -> JSON {identity, token} with TTL.
// Writing identity and token as a single value is what keeps Save atomic for
// readers.
type RedisStore struct {
	rdb    *goredis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(rdb *goredis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{
		rdb:    rdb,
		prefix: "sess:",
		ttl:    ttl,
	}
}

type sessionRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

func (s *RedisStore) Load(ctx context.Context, sid string) (Session, error) {
	if s.rdb == nil {
		return Session{}, errors.New("redis session store not configured")
	}
	if sid == "" {
		return Session{}, nil
	}

	raw, err := s.rdb.Get(ctx, s.prefix+sid).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return Session{}, nil
		}
		return Session{}, err
	}

	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		// Malformed record: treat as anonymous rather than failing the request.
		return Session{}, nil
	}

	sess := Session{
		Identity: domain.Identity{
			ID:    rec.ID,
			Name:  rec.Name,
			Email: rec.Email,
			Role:  domain.Role(rec.Role),
		},
		Token: rec.Token,
	}
	if !sess.Authenticated() {
		return Session{}, nil
	}
	return sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sid string, identity domain.Identity, token string) error {
	if s.rdb == nil {
		return errors.New("redis session store not configured")
	}
	if sid == "" {
		return domain.ErrMissingField("sid")
	}
	if token == "" || identity.ID == "" {
		return domain.ErrInvalidField("session", "identity and token are both required")
	}

	raw, err := json.Marshal(sessionRecord{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
		Role:  string(identity.Role),
		Token: token,
	})
	if err != nil {
		return domain.ErrInternal(err)
	}

	return s.rdb.Set(ctx, s.prefix+sid, raw, s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	if s.rdb == nil {
		return errors.New("redis session store not configured")
	}
	if sid == "" {
		return nil
	}
	return s.rdb.Del(ctx, s.prefix+sid).Err()
}
