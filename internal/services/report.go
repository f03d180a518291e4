package services

import (
	"time"

	"gamehub-backend/internal/models"
)

// Report is the append-only audit log. Entries are never rewritten once
// appended; indexes are dense from 0 and timestamps never decrease.
// Not safe for concurrent use on its own; the engine's lock guards it.
type Report struct {
	entries []models.ReportEntry
}

func NewReport() *Report {
	return &Report{}
}

func (r *Report) Append(message string) models.ReportEntry {
	entry := models.ReportEntry{
		Index:     len(r.entries),
		Timestamp: time.Now(),
		Message:   message,
	}
	r.entries = append(r.entries, entry)
	return entry
}

// Entries returns a copy of the log.
func (r *Report) Entries() []models.ReportEntry {
	entries := make([]models.ReportEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

func (r *Report) Len() int {
	return len(r.entries)
}
