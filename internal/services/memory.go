package services

import (
	"fmt"
	"sync"
	"time"

	"gamehub-backend/internal/models"
)

// MemoryStore keeps everything in process memory. State lives for the
// lifetime of the process, nothing survives a restart.
type MemoryStore struct {
	mu           sync.Mutex
	users        map[string]models.User
	wallets      map[string]models.Wallet
	transactions map[string][]*models.Transaction
	rateWindows  map[string]*rateWindow
}

type rateWindow struct {
	count   int
	resetAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[string]models.User),
		wallets:      make(map[string]models.Wallet),
		transactions: make(map[string][]*models.Transaction),
		rateWindows:  make(map[string]*rateWindow),
	}
}

func (s *MemoryStore) SaveUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) GetUser(userID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	return &user, nil
}

func (s *MemoryStore) SaveWallet(wallet *models.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wallets[wallet.UserID] = *wallet
	return nil
}

func (s *MemoryStore) GetWallet(userID string) (*models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet, ok := s.wallets[userID]
	if !ok {
		return nil, fmt.Errorf("wallet for %s: %w", userID, ErrNotFound)
	}
	return &wallet, nil
}

func (s *MemoryStore) SaveTransaction(tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txCopy := *tx
	list := append([]*models.Transaction{&txCopy}, s.transactions[tx.UserID]...)

	// Keep only the last 100 transactions per user.
	if len(list) > 100 {
		list = list[:100]
	}
	s.transactions[tx.UserID] = list

	return nil
}

func (s *MemoryStore) GetUserTransactions(userID string, limit int64) ([]*models.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.transactions[userID]
	if int64(len(stored)) < limit {
		limit = int64(len(stored))
	}

	transactions := make([]*models.Transaction, 0, limit)
	for _, tx := range stored[:limit] {
		txCopy := *tx
		transactions = append(transactions, &txCopy)
	}

	return transactions, nil
}

func (s *MemoryStore) CheckRateLimit(userID, action string, limit int, window time.Duration) (bool, error) {
	key := fmt.Sprintf("%s:%s", userID, action)
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.rateWindows[key]
	if !ok || now.After(w.resetAt) {
		s.rateWindows[key] = &rateWindow{count: 1, resetAt: now.Add(window)}
		return true, nil
	}

	w.count++
	return w.count <= limit, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
