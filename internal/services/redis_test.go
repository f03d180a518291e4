package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"gamehub-backend/internal/config"
	"gamehub-backend/internal/models"
	"gamehub-backend/internal/services"
)

func setupTestRedis(t *testing.T) *services.RedisStore {
	t.Helper()

	cfg := &config.Config{
		RedisURL:  "localhost:6379",
		RedisPass: "",
		RedisDB:   0,
	}

	store, err := services.NewRedisStore(cfg)
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return store
}

func TestRedisStoreWallet(t *testing.T) {
	store := setupTestRedis(t)
	defer store.Close()

	userID := "redis-test-user"

	if _, err := store.GetWallet(userID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing wallet, got %v", err)
	}

	wallet := &models.Wallet{
		UserID:    userID,
		Balance:   decimal.RequireFromString("9.9"),
		CreatedAt: time.Now(),
	}

	if err := store.SaveWallet(wallet); err != nil {
		t.Fatalf("Failed to save wallet: %v", err)
	}

	got, err := store.GetWallet(userID)
	if err != nil {
		t.Fatalf("Failed to get wallet: %v", err)
	}

	if !got.Balance.Equal(wallet.Balance) {
		t.Errorf("Balance changed across redis: %s != %s", got.Balance, wallet.Balance)
	}

	store.DeleteWallet(userID)
}

func TestRedisStoreUserAndTransactions(t *testing.T) {
	store := setupTestRedis(t)
	defer store.Close()

	userID := "redis-test-user"

	user := &models.User{ID: userID, CreatedAt: time.Now()}
	if err := store.SaveUser(user); err != nil {
		t.Fatalf("Failed to save user: %v", err)
	}

	got, err := store.GetUser(userID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if got.ID != userID {
		t.Errorf("User ID mismatch: %s != %s", got.ID, userID)
	}

	tx := &models.Transaction{
		ID:            models.GenerateTransactionID(),
		UserID:        userID,
		Type:          models.TransactionTypeBonus,
		Amount:        decimal.RequireFromString("10"),
		BalanceBefore: decimal.Zero,
		BalanceAfter:  decimal.RequireFromString("10"),
		Description:   "signup bonus",
		CreatedAt:     time.Now(),
	}

	if err := store.SaveTransaction(tx); err != nil {
		t.Fatalf("Failed to save transaction: %v", err)
	}

	transactions, err := store.GetUserTransactions(userID, 10)
	if err != nil {
		t.Fatalf("Failed to get transactions: %v", err)
	}
	if len(transactions) == 0 {
		t.Fatal("Expected at least one transaction")
	}
	if !transactions[0].Amount.Equal(tx.Amount) {
		t.Errorf("Transaction amount changed across redis: %s != %s", transactions[0].Amount, tx.Amount)
	}

	store.DeleteUser(userID)
}

func TestRedisStoreRateLimit(t *testing.T) {
	store := setupTestRedis(t)
	defer store.Close()

	userID := "redis-ratelimit-user"

	allowed, err := store.CheckRateLimit(userID, "test", 5, time.Second)
	if err != nil {
		t.Fatalf("Failed to check rate limit: %v", err)
	}
	if !allowed {
		t.Error("First request should be allowed")
	}
}
