package stores

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Kariqs/amexan-store/models"
	"github.com/redis/go-redis/v9"
)

type RedisChallengeStore struct {
	client *redis.Client
	prefix string
}

// NewRedisChallengeStore keeps reset challenges in Redis; keys expire with the challenge.
func NewRedisChallengeStore(client *redis.Client) *RedisChallengeStore {
	return &RedisChallengeStore{
		client: client,
		prefix: "reset:",
	}
}

func (r *RedisChallengeStore) key(email string) string {
	return r.prefix + strings.ToLower(email)
}

func (r *RedisChallengeStore) Save(ctx context.Context, c models.ResetChallenge) error {
	if c.Email == "" {
		return fmt.Errorf("reset challenge: missing email")
	}

	key := r.key(c.Email)
	if time.Until(c.ExpiresAt) <= 0 {
		return r.client.Del(ctx, key).Err()
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key,
			"email", strings.ToLower(c.Email),
			"digest", c.CodeDigest,
			"attempts", c.Attempts,
			"expires_at", c.ExpiresAt.UnixMilli(),
		)
		pipe.PExpireAt(ctx, key, c.ExpiresAt)
		return nil
	})
	if err != nil {
		return fmt.Errorf("reset challenge: failed to save: %w", err)
	}
	return nil
}

func (r *RedisChallengeStore) Get(ctx context.Context, email string) (*models.ResetChallenge, error) {
	fields, err := r.client.HGetAll(ctx, r.key(email)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}

	attempts, err := strconv.Atoi(fields["attempts"])
	if err != nil {
		return nil, fmt.Errorf("reset challenge: bad attempts field: %w", err)
	}
	expiresAt, err := strconv.ParseInt(fields["expires_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("reset challenge: bad expires_at field: %w", err)
	}
	return &models.ResetChallenge{
		Email:      fields["email"],
		CodeDigest: fields["digest"],
		Attempts:   attempts,
		ExpiresAt:  time.UnixMilli(expiresAt),
	}, nil
}

// attemptScript returns -1 without a challenge, 1 on a match and 0 on a miss.
var attemptScript = redis.NewScript(`
local digest = redis.call('HGET', KEYS[1], 'digest')
if not digest then
	return -1
end
if digest == ARGV[1] then
	redis.call('DEL', KEYS[1])
	return 1
end
local attempts = redis.call('HINCRBY', KEYS[1], 'attempts', 1)
if attempts >= tonumber(ARGV[2]) then
	redis.call('DEL', KEYS[1])
end
return 0
`)

func (r *RedisChallengeStore) Attempt(ctx context.Context, email, digest string, maxAttempts int) (bool, error) {
	res, err := attemptScript.Run(ctx, r.client, []string{r.key(email)}, digest, maxAttempts).Int()
	if err != nil {
		return false, fmt.Errorf("reset challenge: attempt failed: %w", err)
	}
	switch res {
	case -1:
		return false, ErrNotFound
	case 1:
		return true, nil
	default:
		return false, nil
	}
}

type RedisRevocationStore struct {
	client *redis.Client
	prefix string
}

func NewRedisRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{
		client: client,
		prefix: "revoked:",
	}
}

func (r *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, r.prefix+tokenID, 1, ttl).Err()
}

func (r *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.prefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
