// Package lock блокировка бронирования по профессионалу через Redis.
//
// Используется в remote-режиме слотов: там check-then-act бронирования нельзя
// накрыть одной транзакцией БД (слоты живут в другом сервисе), поэтому
// конкурирующие бронирования одного профессионала сериализуются внешним замком.
package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrLockNotAcquired возвращается, когда замок уже удерживается другим запросом
	ErrLockNotAcquired = errors.New("lock: professional lock not acquired")
)

// ProfessionalLocker сериализует критические секции по ID профессионала
type ProfessionalLocker interface {
	WithProfessionalLock(ctx context.Context, professionalID int64, fn func(ctx context.Context) error) error
}

// RedisLocker реализация ProfessionalLocker поверх Redis SET NX
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLocker создает locker с ключом на каждого профессионала
func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client: client,
		ttl:    ttl,
	}
}

// Скрипт снимает замок только если токен совпадает - чужой замок не трогаем
var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

// WithProfessionalLock выполняет fn под замком профессионала
// Замок не ждёт освобождения: занятый ключ сразу даёт ErrLockNotAcquired
func (l *RedisLocker) WithProfessionalLock(ctx context.Context, professionalID int64, fn func(ctx context.Context) error) error {
	key := fmt.Sprintf("lock:professional:%d", professionalID)
	token := newToken()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("lock: acquire professional lock: %w", err)
	}
	if !ok {
		return ErrLockNotAcquired
	}

	defer func() {
		_ = l.release(ctx, key, token)
	}()

	lockCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(lockCtx)
}

func (l *RedisLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("lock: release professional lock: %w", err)
	}
	return nil
}

func newToken() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// NoopLocker заглушка без блокировки: консистентность держится только на
// уникальном ограничении (professional_id, scheduled_at) в БД консультаций
type NoopLocker struct{}

// NewNoopLocker создает locker-заглушку
func NewNoopLocker() *NoopLocker {
	return &NoopLocker{}
}

// WithProfessionalLock выполняет fn без блокировки
func (l *NoopLocker) WithProfessionalLock(ctx context.Context, professionalID int64, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
