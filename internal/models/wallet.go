package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balances are exact decimals, never floats. Rendering through JSON keeps
// them as strings so nothing downstream rounds them.
type Wallet struct {
	UserID        string          `json:"user_id" redis:"user_id"`
	Balance       decimal.Decimal `json:"balance" redis:"balance"`
	TotalCredited decimal.Decimal `json:"total_credited" redis:"total_credited"`
	TotalDebited  decimal.Decimal `json:"total_debited" redis:"total_debited"`
	CreatedAt     time.Time       `json:"created_at" redis:"created_at"`
}

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
	TransactionTypeBonus  TransactionType = "bonus"
)

type Transaction struct {
	ID            string          `json:"id" redis:"id"`
	UserID        string          `json:"user_id" redis:"user_id"`
	Type          TransactionType `json:"type" redis:"type"`
	Amount        decimal.Decimal `json:"amount" redis:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before" redis:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after" redis:"balance_after"`
	Description   string          `json:"description" redis:"description"`
	CreatedAt     time.Time       `json:"created_at" redis:"created_at"`
}

type BalanceResponse struct {
	UserID        string `json:"user_id"`
	Balance       string `json:"balance"`
	TotalCredited string `json:"total_credited"`
	TotalDebited  string `json:"total_debited"`
}
