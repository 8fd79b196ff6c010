package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	dedupKeyPrefix  = "webhook:message:"
	defaultDedupTTL = 24 * time.Hour
)

type redisDeduplicator struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDeduplicator claims inbound message ids with SETNX so a redelivered
// webhook is skipped before it reaches the database.
func NewRedisDeduplicator(client *redis.Client, ttl time.Duration) Deduplicator {
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &redisDeduplicator{
		client: client,
		ttl:    ttl,
	}
}

// Claim reports whether externalID was seen for the first time.
func (d *redisDeduplicator) Claim(ctx context.Context, externalID string) (bool, error) {
	ok, err := d.client.SetNX(ctx, dedupKeyPrefix+externalID, time.Now().Format(time.RFC3339), d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim message id: %w", err)
	}
	return ok, nil
}

// Release frees a claim so a retried delivery of the same id is processed again.
func (d *redisDeduplicator) Release(ctx context.Context, externalID string) error {
	if err := d.client.Del(ctx, dedupKeyPrefix+externalID).Err(); err != nil {
		return fmt.Errorf("failed to release message id: %w", err)
	}
	return nil
}
