package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var maxWager = decimal.NewFromInt(10000)

func GenerateTransactionID() string {
	return fmt.Sprintf("tx_%s_%d",
		time.Now().Format("20060102"),
		uuid.New().ID())
}

func GenerateSessionID() string {
	return uuid.New().String()
}

func (r *OnboardRequest) Validate() error {
	name := strings.TrimSpace(r.Username)
	if name == "" {
		return fmt.Errorf("username must not be empty")
	}
	if len(name) > 64 {
		return fmt.Errorf("username must be at most 64 characters")
	}
	return nil
}

func (r *EntryRequest) Validate() error {
	if !r.Wager.IsPositive() {
		return fmt.Errorf("wager must be positive")
	}
	if r.Wager.GreaterThan(maxWager) {
		return fmt.Errorf("maximum wager is %s", maxWager)
	}
	return nil
}
