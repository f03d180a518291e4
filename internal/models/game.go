package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one submitted game entry: who wagered, and how much.
type Entry struct {
	UserID string          `json:"user_id"`
	Wager  decimal.Decimal `json:"wager"`
}

// GameState is a point-in-time copy of the engine's state. Mutating it does
// not affect the engine.
type GameState struct {
	Clock    int     `json:"clock"`
	GameOpen bool    `json:"game_open"`
	Entries  []Entry `json:"entries"`
}

// ReportEntry is one line of the append-only audit report.
type ReportEntry struct {
	Index     int       `json:"index"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

func (e ReportEntry) String() string {
	return fmt.Sprintf("%d : %s : %s", e.Index, e.Timestamp.Format(time.RFC3339), e.Message)
}

type EntryRequest struct {
	Wager decimal.Decimal `json:"wager" binding:"required"`
}

type EntryResponse struct {
	Entry      Entry  `json:"entry"`
	NewBalance string `json:"new_balance"`
}
