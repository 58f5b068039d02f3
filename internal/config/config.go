package config

import (
	"log"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"interviewboss"`
	DBPath     string `env:"DB_PATH" envDefault:"interviewboss.db"`
	JWTSecret  string `env:"JWT_SECRET" envDefault:"super-secret-key-change-me"`
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`
	LLMAPIKey  string `env:"LLM_API_KEY"`
	LLMAPIURL  string `env:"LLM_API_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel   string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
}

func Load() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
