package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// TTL по типам ресурсов. Короткие для волатильных чтений (сообщения,
// уведомления), длинные для стабильных (профиль) — осознанный размен
// свежести на нагрузку.
const (
	TTLRooms         = 60 * time.Second
	TTLRoomDetail    = 5 * time.Minute
	TTLMessages      = 30 * time.Second
	TTLNotifications = 60 * time.Second
	TTLProfile       = 10 * time.Minute
)

// Cache cache-aside обёртка над Redis. client == nil означает, что
// кэш не сконфигурирован: все чтения уходят напрямую в fetcher,
// корректность от доступности кэша не зависит.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// WithCache ищет key в Redis; на попадании десериализует и возвращает.
// Битая запись трактуется как промах: удаляем её и перечитываем.
// На промахе зовём fetcher и best-effort сохраняем результат — ошибка
// записи в кэш никогда не роняет вызов.
func WithCache[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, fetcher func() (T, error)) (T, error) {
	if !c.Enabled() {
		return fetcher()
	}

	cached, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var value T
		if jsonErr := json.Unmarshal([]byte(cached), &value); jsonErr == nil {
			return value, nil
		}
		// повреждённая запись
		c.client.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("cache: get %s failed: %v", key, err)
	}

	value, err := fetcher()
	if err != nil {
		return value, err
	}

	if data, jsonErr := json.Marshal(value); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, data, ttl).Err(); setErr != nil {
			log.Printf("cache: set %s failed: %v", key, setErr)
		}
	}

	return value, nil
}

// Invalidate удаляет ключи по шаблонам. Каждый мутирующий хендлер
// обязан явно перечислить namespaces, которые он мог сделать
// несвежими.
func (c *Cache) Invalidate(ctx context.Context, patterns ...string) {
	if !c.Enabled() {
		return
	}

	for _, pattern := range patterns {
		keys, err := c.client.Keys(ctx, pattern).Result()
		if err != nil {
			log.Printf("cache: keys %s failed: %v", pattern, err)
			continue
		}
		if len(keys) == 0 {
			continue
		}
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			log.Printf("cache: del %s failed: %v", pattern, err)
		}
	}
}
