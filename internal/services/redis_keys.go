package services

import "time"

const (
	KeyUserInfo         = "user:%s:info"
	KeyWallet           = "wallet:%s"
	KeyTransaction      = "transaction:%s"
	KeyUserTransactions = "user:%s:transactions"
	KeyRateLimit        = "ratelimit:%s:%s"

	TTLUserInfo    = 30 * 24 * time.Hour // 30 days
	TTLTransaction = 30 * 24 * time.Hour // 30 days

	DefaultRateLimitEntries = 30 // Max 30 entry submissions per minute
)
