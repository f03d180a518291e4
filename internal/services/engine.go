package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"gamehub-backend/internal/models"
)

var (
	ErrGameClosed = errors.New("game is closed")
	ErrGameOpen   = errors.New("game is already open")
)

// GameEngine is the game subsystem: a countdown clock, an open flag, the
// list of submitted entries and the audit report. Every state change appends
// exactly one report line.
type GameEngine struct {
	mu          sync.Mutex
	clock       int
	step        int
	gameOpen    bool
	entries     []models.Entry
	report      *Report
	broadcaster Broadcaster
}

func NewGameEngine(clockStart int) *GameEngine {
	return &GameEngine{
		clock:  clockStart,
		step:   1,
		report: NewReport(),
	}
}

// SetBroadcaster attaches a live-update sink. Call before serving traffic.
func (ge *GameEngine) SetBroadcaster(b Broadcaster) {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	ge.broadcaster = b
}

func (ge *GameEngine) OpenGame() error {
	ge.mu.Lock()
	if ge.gameOpen {
		ge.mu.Unlock()
		return ErrGameOpen
	}
	ge.gameOpen = true
	entry := ge.report.Append("game opened")
	ge.mu.Unlock()

	ge.notifyReport(entry)
	return nil
}

func (ge *GameEngine) CloseGame() error {
	ge.mu.Lock()
	if !ge.gameOpen {
		ge.mu.Unlock()
		return ErrGameClosed
	}
	ge.gameOpen = false
	entry := ge.report.Append("game closed")
	ge.mu.Unlock()

	ge.notifyReport(entry)
	return nil
}

// AdvanceClock moves the countdown one fixed step toward zero. Reaching
// zero closes the game. At zero it is a no-op.
func (ge *GameEngine) AdvanceClock() int {
	ge.mu.Lock()
	if ge.clock == 0 {
		clock := ge.clock
		ge.mu.Unlock()
		return clock
	}

	ge.clock -= ge.step
	if ge.clock < 0 {
		ge.clock = 0
	}

	entries := []models.ReportEntry{
		ge.report.Append(fmt.Sprintf("clock advanced to %d", ge.clock)),
	}

	if ge.clock == 0 && ge.gameOpen {
		ge.gameOpen = false
		entries = append(entries, ge.report.Append("game closed: clock expired"))
	}

	clock := ge.clock
	open := ge.gameOpen
	ge.mu.Unlock()

	for _, entry := range entries {
		ge.notifyReport(entry)
	}
	ge.notifyClock(clock, open)

	return clock
}

// AppendEntry records a submitted entry. Only allowed while the game is open.
func (ge *GameEngine) AppendEntry(userID string, wager decimal.Decimal) (models.Entry, error) {
	ge.mu.Lock()
	if !ge.gameOpen {
		ge.mu.Unlock()
		return models.Entry{}, ErrGameClosed
	}

	entry := models.Entry{UserID: userID, Wager: wager}
	ge.entries = append(ge.entries, entry)
	reportEntry := ge.report.Append(fmt.Sprintf("entry submitted: %s wagered %s", userID, wager))
	ge.mu.Unlock()

	ge.notifyReport(reportEntry)
	return entry, nil
}

// Record appends a report line for an action taken outside the engine, such
// as a facade step against another subsystem.
func (ge *GameEngine) Record(message string) models.ReportEntry {
	ge.mu.Lock()
	entry := ge.report.Append(message)
	ge.mu.Unlock()

	ge.notifyReport(entry)
	return entry
}

// Snapshot returns a copy of the current state.
func (ge *GameEngine) Snapshot() models.GameState {
	ge.mu.Lock()
	defer ge.mu.Unlock()

	entries := make([]models.Entry, len(ge.entries))
	copy(entries, ge.entries)

	return models.GameState{
		Clock:    ge.clock,
		GameOpen: ge.gameOpen,
		Entries:  entries,
	}
}

func (ge *GameEngine) ReportEntries() []models.ReportEntry {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.report.Entries()
}

func (ge *GameEngine) Clock() int {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.clock
}

func (ge *GameEngine) GameOpen() bool {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.gameOpen
}

func (ge *GameEngine) notifyReport(entry models.ReportEntry) {
	ge.mu.Lock()
	b := ge.broadcaster
	ge.mu.Unlock()

	if b != nil {
		b.BroadcastReportEntry(entry)
	}
}

func (ge *GameEngine) notifyClock(clock int, gameOpen bool) {
	ge.mu.Lock()
	b := ge.broadcaster
	ge.mu.Unlock()

	if b != nil {
		b.BroadcastClock(clock, gameOpen)
	}
}
