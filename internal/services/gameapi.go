package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"gamehub-backend/internal/models"
)

// GameAPI is the facade over the three subsystems. Each composite operation
// is a fixed sequence of subsystem calls, one report line per step. There is
// no rollback: a failing step stops the sequence and leaves the completed
// steps in place.
type GameAPI struct {
	users   *UserService
	wallets *WalletService
	engine  *GameEngine

	signupBonus decimal.Decimal
	entryFee    decimal.Decimal
}

func NewGameAPI(users *UserService, wallets *WalletService, engine *GameEngine, signupBonus, entryFee decimal.Decimal) *GameAPI {
	return &GameAPI{
		users:       users,
		wallets:     wallets,
		engine:      engine,
		signupBonus: signupBonus,
		entryFee:    entryFee,
	}
}

// OnboardUser registers a user, creates their wallet and credits the signup
// bonus.
func (api *GameAPI) OnboardUser(username string) (*models.User, *models.Wallet, error) {
	user, err := api.users.Register(username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to register user: %w", err)
	}
	api.engine.Record(fmt.Sprintf("registered user %s", user.ID))

	wallet, err := api.wallets.CreateWallet(user.ID)
	if err != nil {
		return user, nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	api.engine.Record(fmt.Sprintf("created wallet for %s", user.ID))

	wallet, err = api.wallets.Credit(user.ID, api.signupBonus, models.TransactionTypeBonus, "signup bonus")
	if err != nil {
		return user, wallet, fmt.Errorf("failed to credit signup bonus: %w", err)
	}
	api.engine.Record(fmt.Sprintf("credited signup bonus %s to %s", api.signupBonus, user.ID))

	return user, wallet, nil
}

// SubmitEntry charges the entry fee and records the entry against the open
// game.
func (api *GameAPI) SubmitEntry(userID string, wager decimal.Decimal) (models.Entry, decimal.Decimal, error) {
	if !api.engine.GameOpen() {
		return models.Entry{}, decimal.Zero, ErrGameClosed
	}

	req := &models.EntryRequest{Wager: wager}
	if err := req.Validate(); err != nil {
		return models.Entry{}, decimal.Zero, fmt.Errorf("invalid entry: %w", err)
	}

	wallet, err := api.wallets.Debit(userID, api.entryFee, fmt.Sprintf("entry fee for wager %s", wager))
	if err != nil {
		return models.Entry{}, decimal.Zero, fmt.Errorf("failed to charge entry fee: %w", err)
	}
	api.engine.Record(fmt.Sprintf("charged entry fee %s to %s", api.entryFee, userID))

	entry, err := api.engine.AppendEntry(userID, wager)
	if err != nil {
		return models.Entry{}, wallet.Balance, fmt.Errorf("failed to append entry: %w", err)
	}

	return entry, wallet.Balance, nil
}

func (api *GameAPI) Snapshot() models.GameState {
	return api.engine.Snapshot()
}

func (api *GameAPI) ReportEntries() []models.ReportEntry {
	return api.engine.ReportEntries()
}
