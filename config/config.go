package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config собирает все настройки приложения из переменных окружения.
type Config struct {
	Env        string        `env:"APP_ENV" env-default:"local"`
	ListenAddr string        `env:"LISTEN_ADDR" env-default:":8080"`
	DBPath     string        `env:"DB_PATH" env-default:"database.db"`
	JWTSecret  string        `env:"JWT_SECRET" env-required:"true"`
	SessionTTL time.Duration `env:"SESSION_TTL" env-default:"24h"`
	RedisAddr  string        `env:"REDIS_ADDR"`
}

// MustLoad читает конфигурацию и паникует, если она некорректна.
func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}
	return &cfg
}
