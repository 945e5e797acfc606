package cache

import (
	"context"
	"testing"

	"cardapio_digital/internal/infrastructure/config"
)

func TestConnectRedis_Disabled(t *testing.T) {
	client, err := ConnectRedis(context.Background(), config.Config{})
	if err != nil || client != nil {
		t.Fatalf("expected nil client without REDIS_ADDR, got %v, %v", client, err)
	}
}

func TestConnectRedis_Unreachable(t *testing.T) {
	client, err := ConnectRedis(context.Background(), config.Config{RedisAddr: "127.0.0.1:1"})
	if err == nil || client != nil {
		t.Fatalf("expected ping error, got %v, %v", client, err)
	}
}
