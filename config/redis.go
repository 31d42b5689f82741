package config

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// OpenRedis подключается к Redis, если задан REDIS_ADDR. Без Redis
// приложение работает, но отзыв сессий при выходе ограничен очисткой
// cookie на стороне клиента.
func OpenRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		slog.Warn("Переменная окружения REDIS_ADDR не установлена, отзыв сессий будет отключен.")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	// Проверяем соединение
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		slog.Error("Не удалось подключиться к Redis", "error", err)
		return nil
	}

	slog.Info("Успешное подключение к Redis!")
	return rdb
}
