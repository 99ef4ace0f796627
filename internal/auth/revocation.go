package auth

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// RevocationList guarda os jti de tokens deslogados até expirarem.
// Sem REDIS_URL a lista fica desligada e logout vira no-op no servidor.
type RevocationList struct {
	rdb *redis.Client
}

func NewRevocationList(redisURL string) *RevocationList {
	if redisURL == "" {
		return &RevocationList{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, token revocation disabled: %v", err)
		return &RevocationList{}
	}

	return &RevocationList{rdb: redis.NewClient(opts)}
}

func (r *RevocationList) Enabled() bool {
	return r != nil && r.rdb != nil
}

func (r *RevocationList) Revoke(ctx context.Context, jti string, until time.Time) error {
	if !r.Enabled() || jti == "" {
		return nil
	}

	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}

	return r.rdb.Set(ctx, "revoked:"+jti, "1", ttl).Err()
}

func (r *RevocationList) IsRevoked(ctx context.Context, jti string) bool {
	if !r.Enabled() || jti == "" {
		return false
	}

	n, err := r.rdb.Exists(ctx, "revoked:"+jti).Result()
	if err != nil {
		// indisponibilidade do redis não pode derrubar a autenticação
		log.Printf("revocation check failed: %v", err)
		return false
	}
	return n > 0
}
