package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"gamehub-backend/internal/models"
	"gamehub-backend/internal/services"
)

func TestUserServiceRegister(t *testing.T) {
	store := services.NewMemoryStore()
	users := services.NewUserService(store)

	user, err := users.Register("sean")
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}
	if user.ID != "sean" {
		t.Errorf("Expected ID sean, got %s", user.ID)
	}

	if _, err := users.Register("sean"); !errors.Is(err, services.ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists on duplicate, got %v", err)
	}

	if _, err := users.Register("  "); err == nil {
		t.Error("Blank username should be rejected")
	}

	got, err := users.Get("sean")
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if got.ID != "sean" {
		t.Errorf("Expected ID sean, got %s", got.ID)
	}

	if _, err := users.Get("nobody"); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestWalletServiceCreditDebit(t *testing.T) {
	store := services.NewMemoryStore()
	wallets := services.NewWalletService(store)

	wallet, err := wallets.CreateWallet("sean")
	if err != nil {
		t.Fatalf("Failed to create wallet: %v", err)
	}
	if !wallet.Balance.IsZero() {
		t.Errorf("New wallet should start at 0, got %s", wallet.Balance)
	}

	if _, err := wallets.CreateWallet("sean"); !errors.Is(err, services.ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got %v", err)
	}

	wallet, err = wallets.Credit("sean", decimal.RequireFromString("10"), models.TransactionTypeBonus, "signup bonus")
	if err != nil {
		t.Fatalf("Failed to credit: %v", err)
	}
	if !wallet.Balance.Equal(decimal.RequireFromString("10")) {
		t.Errorf("Expected balance 10, got %s", wallet.Balance)
	}

	wallet, err = wallets.Debit("sean", decimal.RequireFromString("1"), "entry fee")
	if err != nil {
		t.Fatalf("Failed to debit: %v", err)
	}
	if !wallet.Balance.Equal(decimal.RequireFromString("9")) {
		t.Errorf("Expected balance 9, got %s", wallet.Balance)
	}

	_, err = wallets.Debit("sean", decimal.RequireFromString("100"), "too much")
	if !errors.Is(err, services.ErrInsufficientBalance) {
		t.Errorf("Expected ErrInsufficientBalance, got %v", err)
	}

	balance, err := wallets.Balance("sean")
	if err != nil {
		t.Fatalf("Failed to get balance: %v", err)
	}
	if !balance.Equal(decimal.RequireFromString("9")) {
		t.Errorf("Failed debit should leave balance unchanged, got %s", balance)
	}
}

func TestWalletServiceExactDecimals(t *testing.T) {
	store := services.NewMemoryStore()
	wallets := services.NewWalletService(store)

	if _, err := wallets.CreateWallet("sean"); err != nil {
		t.Fatalf("Failed to create wallet: %v", err)
	}

	if _, err := wallets.Credit("sean", decimal.RequireFromString("1.1"), models.TransactionTypeCredit, "a"); err != nil {
		t.Fatalf("Failed to credit: %v", err)
	}
	wallet, err := wallets.Credit("sean", decimal.RequireFromString("2.2"), models.TransactionTypeCredit, "b")
	if err != nil {
		t.Fatalf("Failed to credit: %v", err)
	}

	if !wallet.Balance.Equal(decimal.RequireFromString("3.3")) {
		t.Errorf("1.1 + 2.2 should be exactly 3.3, got %s", wallet.Balance)
	}
}

func TestWalletServiceTransactions(t *testing.T) {
	store := services.NewMemoryStore()
	wallets := services.NewWalletService(store)

	if _, err := wallets.CreateWallet("sean"); err != nil {
		t.Fatalf("Failed to create wallet: %v", err)
	}
	if _, err := wallets.Credit("sean", decimal.RequireFromString("10"), models.TransactionTypeBonus, "signup bonus"); err != nil {
		t.Fatalf("Failed to credit: %v", err)
	}
	if _, err := wallets.Debit("sean", decimal.RequireFromString("1"), "entry fee"); err != nil {
		t.Fatalf("Failed to debit: %v", err)
	}

	transactions, err := wallets.Transactions("sean", 10)
	if err != nil {
		t.Fatalf("Failed to get transactions: %v", err)
	}
	if len(transactions) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(transactions))
	}

	// Newest first.
	debit := transactions[0]
	if debit.Type != models.TransactionTypeDebit {
		t.Errorf("Expected debit first, got %s", debit.Type)
	}
	if !debit.BalanceBefore.Equal(decimal.RequireFromString("10")) ||
		!debit.BalanceAfter.Equal(decimal.RequireFromString("9")) {
		t.Errorf("Debit balances wrong: before %s after %s", debit.BalanceBefore, debit.BalanceAfter)
	}

	bonus := transactions[1]
	if bonus.Type != models.TransactionTypeBonus {
		t.Errorf("Expected bonus second, got %s", bonus.Type)
	}
	if !bonus.BalanceBefore.IsZero() || !bonus.BalanceAfter.Equal(decimal.RequireFromString("10")) {
		t.Errorf("Bonus balances wrong: before %s after %s", bonus.BalanceBefore, bonus.BalanceAfter)
	}
}

func TestMemoryStoreRateLimit(t *testing.T) {
	store := services.NewMemoryStore()

	for i := 0; i < 3; i++ {
		allowed, err := store.CheckRateLimit("sean", "entry", 3, 100*time.Millisecond)
		if err != nil {
			t.Fatalf("Rate limit check failed: %v", err)
		}
		if !allowed {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	allowed, err := store.CheckRateLimit("sean", "entry", 3, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("Rate limit check failed: %v", err)
	}
	if allowed {
		t.Error("Fourth request inside the window should be blocked")
	}

	time.Sleep(110 * time.Millisecond)

	allowed, err = store.CheckRateLimit("sean", "entry", 3, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("Rate limit check failed: %v", err)
	}
	if !allowed {
		t.Error("Request after the window should be allowed again")
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := services.NewMemoryStore()

	wallet := &models.Wallet{UserID: "sean", Balance: decimal.RequireFromString("10")}
	if err := store.SaveWallet(wallet); err != nil {
		t.Fatalf("Failed to save wallet: %v", err)
	}

	got, err := store.GetWallet("sean")
	if err != nil {
		t.Fatalf("Failed to get wallet: %v", err)
	}
	got.Balance = decimal.RequireFromString("0")

	again, err := store.GetWallet("sean")
	if err != nil {
		t.Fatalf("Failed to get wallet: %v", err)
	}
	if !again.Balance.Equal(decimal.RequireFromString("10")) {
		t.Error("Store should hand out copies, not shared pointers")
	}
}
