package httpapi

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"groupahpdss/internal/config"
	"groupahpdss/internal/document"
	"groupahpdss/internal/engine"
)

// Service runs the solve pipeline and fronts it with a Redis result
// cache keyed by the SHA-256 of the raw request body and the requested
// optional sections (see cacheKey). The cache is
// explicitly not a store: a miss, an eviction, or Redis being entirely
// unavailable just means the pipeline runs again.
type Service struct {
	cfg    *config.Config
	redis  *redis.Client
	logger *zap.Logger
}

// NewService builds a Service. redis may be a client pointed at an
// unreachable server -- every cache operation degrades to a no-op on
// error rather than failing the request.
func NewService(cfg *config.Config, redisClient *redis.Client, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, redis: redisClient, logger: logger}
}

// Solve runs the full pipeline over body and stores the rendered
// document in the result cache under the returned key.
func (s *Service) Solve(ctx context.Context, body []byte, opts document.Options) (*document.Document, string, error) {
	key := cacheKey(body, opts)

	doc, err := engine.Solve(body, s.cfg, opts)
	if err != nil {
		return nil, "", err
	}

	s.store(ctx, key, doc)
	return doc, key, nil
}

// Get re-serves a cached result by key. ok is false on a cache miss or
// a degraded Redis connection.
func (s *Service) Get(ctx context.Context, key string) (*document.Document, bool) {
	raw, err := s.redis.Get(ctx, cacheNamespace+key).Bytes()
	if err != nil {
		return nil, false
	}

	var doc document.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Warn("discarding corrupt cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &doc, true
}

func (s *Service) store(ctx context.Context, key string, doc *document.Document) {
	body, err := json.Marshal(doc)
	if err != nil {
		s.logger.Warn("failed to encode result for cache", zap.Error(err))
		return
	}

	ttl := time.Duration(s.cfg.Redis.TTL) * time.Second
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if err := s.redis.Set(ctx, cacheNamespace+key, body, ttl).Err(); err != nil {
		s.logger.Debug("result cache write skipped", zap.Error(err))
	}
}

const cacheNamespace = "groupahpdss:solve:"

// cacheKey hashes the raw request body together with the options that
// change the rendered document's shape, so two requests with identical
// input but different ?sensitivity=/?validation= flags don't collide.
func cacheKey(body []byte, opts document.Options) string {
	h := sha256.New()
	h.Write(body)
	flags := []byte{0, 0}
	if opts.IncludeSensitivity {
		flags[0] = 1
	}
	if opts.IncludeValidation {
		flags[1] = 1
	}
	h.Write(flags)
	return hex.EncodeToString(h.Sum(nil))
}
