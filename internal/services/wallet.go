package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"gamehub-backend/internal/models"
)

var ErrInsufficientBalance = errors.New("insufficient balance")

// WalletService is the balance subsystem. All amounts are exact decimals;
// every balance change records one transaction.
type WalletService struct {
	store Store
}

func NewWalletService(store Store) *WalletService {
	return &WalletService{store: store}
}

func (s *WalletService) CreateWallet(userID string) (*models.Wallet, error) {
	if _, err := s.store.GetWallet(userID); err == nil {
		return nil, fmt.Errorf("wallet for %s: %w", userID, ErrAlreadyExists)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check wallet: %v", err)
	}

	wallet := &models.Wallet{
		UserID:        userID,
		Balance:       decimal.Zero,
		TotalCredited: decimal.Zero,
		TotalDebited:  decimal.Zero,
		CreatedAt:     time.Now(),
	}

	if err := s.store.SaveWallet(wallet); err != nil {
		return nil, fmt.Errorf("failed to save wallet: %v", err)
	}

	return wallet, nil
}

func (s *WalletService) Balance(userID string) (decimal.Decimal, error) {
	wallet, err := s.store.GetWallet(userID)
	if err != nil {
		return decimal.Zero, err
	}
	return wallet.Balance, nil
}

func (s *WalletService) Wallet(userID string) (*models.Wallet, error) {
	return s.store.GetWallet(userID)
}

// Credit adds amount to the wallet. Amount must be positive.
func (s *WalletService) Credit(userID string, amount decimal.Decimal, txType models.TransactionType, description string) (*models.Wallet, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("credit amount must be positive, got %s", amount)
	}

	wallet, err := s.store.GetWallet(userID)
	if err != nil {
		return nil, err
	}

	before := wallet.Balance
	wallet.Balance = wallet.Balance.Add(amount)
	wallet.TotalCredited = wallet.TotalCredited.Add(amount)

	if err := s.store.SaveWallet(wallet); err != nil {
		return nil, fmt.Errorf("failed to save wallet: %v", err)
	}

	s.recordTransaction(userID, txType, amount, before, wallet.Balance, description)

	return wallet, nil
}

// Debit subtracts amount from the wallet, failing without a balance change
// when funds are short.
func (s *WalletService) Debit(userID string, amount decimal.Decimal, description string) (*models.Wallet, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("debit amount must be positive, got %s", amount)
	}

	wallet, err := s.store.GetWallet(userID)
	if err != nil {
		return nil, err
	}

	if wallet.Balance.LessThan(amount) {
		return nil, fmt.Errorf("have %s, need %s: %w", wallet.Balance, amount, ErrInsufficientBalance)
	}

	before := wallet.Balance
	wallet.Balance = wallet.Balance.Sub(amount)
	wallet.TotalDebited = wallet.TotalDebited.Add(amount)

	if err := s.store.SaveWallet(wallet); err != nil {
		return nil, fmt.Errorf("failed to save wallet: %v", err)
	}

	s.recordTransaction(userID, models.TransactionTypeDebit, amount, before, wallet.Balance, description)

	return wallet, nil
}

func (s *WalletService) Transactions(userID string, limit int64) ([]*models.Transaction, error) {
	return s.store.GetUserTransactions(userID, limit)
}

func (s *WalletService) recordTransaction(userID string, txType models.TransactionType, amount, before, after decimal.Decimal, description string) {
	tx := &models.Transaction{
		ID:            models.GenerateTransactionID(),
		UserID:        userID,
		Type:          txType,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		Description:   description,
		CreatedAt:     time.Now(),
	}

	if err := s.store.SaveTransaction(tx); err != nil {
		log.Printf("Failed to record transaction %s: %v", tx.ID, err)
	}
}
