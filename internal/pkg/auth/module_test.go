package auth

import (
	"testing"
	"time"

	"github.com/saxtrade/marketplace/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func TestModuleConstructors(t *testing.T) {
	hasher, ok := newPasswordHasher().(*BcryptHasher)
	if !ok {
		t.Fatal("password hasher is not bcrypt backed")
	}
	if hasher.cost != bcrypt.DefaultCost {
		t.Fatalf("hasher cost = %d, want %d", hasher.cost, bcrypt.DefaultCost)
	}

	strategy, ok := newTokenStrategy(strategyParams{Config: &config.Config{TokenSecret: "top-secret"}}).(*HMACStrategy)
	if !ok {
		t.Fatal("token strategy is not HMAC backed")
	}
	if string(strategy.secret) != "top-secret" {
		t.Fatalf("secret = %q, want %q", strategy.secret, "top-secret")
	}
	if strategy.ttl != 24*time.Hour {
		t.Fatalf("default ttl = %s, want 24h", strategy.ttl)
	}
}
