package services

import (
	"errors"
	"time"

	"gamehub-backend/internal/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// Store persists users, wallets and transactions. The memory store is the
// default backend; redis is opt-in via config.
type Store interface {
	SaveUser(user *models.User) error
	GetUser(userID string) (*models.User, error)

	SaveWallet(wallet *models.Wallet) error
	GetWallet(userID string) (*models.Wallet, error)

	SaveTransaction(tx *models.Transaction) error
	GetUserTransactions(userID string, limit int64) ([]*models.Transaction, error)

	CheckRateLimit(userID, action string, limit int, window time.Duration) (bool, error)

	Close() error
}
