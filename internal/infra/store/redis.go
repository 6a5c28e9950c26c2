package store

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisMirror é a implementação durável do espelho local.
type RedisMirror struct {
	client *redis.Client
}

// NewRedisMirror conecta e valida com Ping; erro aqui significa rodar
// sem espelho, nunca abortar o processo.
func NewRedisMirror(addr, password string, db int) (*RedisMirror, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("falha ao conectar no Redis: %w", err)
	}

	return &RedisMirror{client: client}, nil
}

func (m *RedisMirror) Load(ctx context.Context, key string) (string, error) {
	val, err := m.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (m *RedisMirror) Save(ctx context.Context, key string, value string) error {
	return m.client.Set(ctx, key, value, 0).Err()
}

func (m *RedisMirror) Ping(ctx context.Context) error {
	return m.client.Ping(ctx).Err()
}

func (m *RedisMirror) Close() error {
	return m.client.Close()
}
