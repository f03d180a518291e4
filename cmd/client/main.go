// The client drives the GameAPI facade in-process and prints two snapshots
// around the full report, the console walkthrough of the facade example.
package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"gamehub-backend/internal/services"
)

func main() {
	store := services.NewMemoryStore()
	defer store.Close()

	userService := services.NewUserService(store)
	walletService := services.NewWalletService(store)

	engine := services.NewGameEngine(60)
	if err := engine.OpenGame(); err != nil {
		log.Fatalf("Failed to open game: %v", err)
	}

	signupBonus := decimal.RequireFromString("10")
	entryFee := decimal.RequireFromString("1")
	gameAPI := services.NewGameAPI(userService, walletService, engine, signupBonus, entryFee)

	user, wallet, err := gameAPI.OnboardUser("sean")
	if err != nil {
		log.Fatalf("Failed to onboard user: %v", err)
	}
	fmt.Printf("onboarded %s with balance %s\n", user.ID, wallet.Balance)

	wager := decimal.RequireFromString("5")
	entry, balance, err := gameAPI.SubmitEntry(user.ID, wager)
	if err != nil {
		log.Fatalf("Failed to submit entry: %v", err)
	}
	fmt.Printf("entry %s wagered %s, balance now %s\n", entry.UserID, entry.Wager, balance)

	printSnapshot(gameAPI)

	fmt.Println("report:")
	for _, line := range gameAPI.ReportEntries() {
		fmt.Println(line)
	}

	engine.AdvanceClock()

	printSnapshot(gameAPI)
}

func printSnapshot(gameAPI *services.GameAPI) {
	data, err := json.Marshal(gameAPI.Snapshot())
	if err != nil {
		log.Fatalf("Failed to marshal snapshot: %v", err)
	}
	fmt.Println(string(data))
}
