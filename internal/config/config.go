package config

import (
	"os"
	"strconv"
	"strings"
)

// Config reúne toda a configuração do processo. Tudo é opcional: a ausência
// de uma integração desliga a funcionalidade, nunca derruba o startup.
type Config struct {
	Environment string
	Port        string

	// StrictPersistence muda a política dos endpoints admin: com true,
	// falha real do banco vira 500; com false (padrão), toda mutação
	// resolve para sucesso sintetizado, como no site público.
	StrictPersistence bool

	AllowedOrigins []string

	Supabase SupabaseConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Mail     MailConfig
}

type SupabaseConfig struct {
	URL     string
	AnonKey string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RabbitMQConfig struct {
	URL string
}

type MailConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	From        string
	NotifyEmail string
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("APP_ENV", "development"),
		Port:              getEnv("PORT", "8080"),
		StrictPersistence: getEnvAsBool("STRICT_PERSISTENCE", false),
		AllowedOrigins:    strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,*"), ","),
		Supabase: SupabaseConfig{
			URL:     getEnv("SUPABASE_URL", ""),
			AnonKey: getEnv("SUPABASE_ANON_KEY", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			URL: getEnv("RABBITMQ_URL", ""),
		},
		Mail: MailConfig{
			Host:        getEnv("MAIL_HOST", ""),
			Port:        getEnvAsInt("MAIL_PORT", 587),
			User:        getEnv("MAIL_USER", ""),
			Password:    getEnv("MAIL_PASS", ""),
			From:        getEnv("MAIL_FROM", "nao-responda@nutrivida.com"),
			NotifyEmail: getEnv("NOTIFY_EMAIL", "contato@nutrivida.com"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
