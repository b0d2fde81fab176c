package config

import (
	"time"

	"github.com/joho/godotenv"
)

// AppConfig — настройки HTTP-сервера и фоновых задач.
type AppConfig struct {
	HTTPAddr string
	// Таймаут запроса к живому каталогу; по истечении читающие
	// операции переключаются на статический справочник.
	CatalogTimeout time.Duration
	// Интервал фоновой чистки просроченных кодов входа.
	CodeSweepInterval time.Duration
}

// Load подхватывает .env (если есть) и собирает конфигурацию приложения.
func Load() *AppConfig {
	// .env опционален: в контейнере переменные приходят из окружения.
	_ = godotenv.Load()

	return &AppConfig{
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		CatalogTimeout:    time.Duration(getEnvInt("CATALOG_TIMEOUT_MS", 2000)) * time.Millisecond,
		CodeSweepInterval: time.Duration(getEnvInt("CODE_SWEEP_INTERVAL_MIN", 10)) * time.Minute,
	}
}
