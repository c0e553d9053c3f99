package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// FlashLevel classifies a transient message
type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashError   FlashLevel = "error"
	FlashInfo    FlashLevel = "info"
)

// Flash is one transient message shown on the next page render
type Flash struct {
	Level   FlashLevel `json:"level"`
	Message string     `json:"message"`
}

// Notifier presents transient success/error/info messages. Messages are
// queued per user session in Redis and consumed on the next render.
type Notifier struct {
	cache *RedisCache
}

// NewNotifier creates a notifier over an existing cache
func NewNotifier(cache *RedisCache) *Notifier {
	return &Notifier{cache: cache}
}

func flashKey(sessionID string) string {
	return "flash:" + sessionID
}

// Push queues a message for the session. Push failures are logged and
// swallowed; notifications must never break the operation they report on.
// Without a cache the notifier is a no-op.
func (n *Notifier) Push(ctx context.Context, sessionID string, level FlashLevel, message string) {
	if n.cache == nil {
		return
	}
	key := flashKey(sessionID)

	var pending []Flash
	if err := n.cache.Get(ctx, key, &pending); err != nil && !errors.Is(err, redis.Nil) {
		log.Printf("notify: failed to read pending flashes: %v", err)
	}
	pending = append(pending, Flash{Level: level, Message: message})

	if err := n.cache.Set(ctx, key, pending, 10*time.Minute); err != nil {
		log.Printf("notify: failed to queue flash: %v", err)
	}
}

// Pop returns and clears the session's pending messages
func (n *Notifier) Pop(ctx context.Context, sessionID string) []Flash {
	if n.cache == nil {
		return nil
	}
	key := flashKey(sessionID)

	var pending []Flash
	if err := n.cache.Get(ctx, key, &pending); err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("notify: failed to read flashes: %v", err)
		}
		return nil
	}

	if err := n.cache.Delete(ctx, key); err != nil {
		log.Printf("notify: failed to clear flashes: %v", err)
	}
	return pending
}
