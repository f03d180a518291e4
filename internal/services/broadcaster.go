package services

import "gamehub-backend/internal/models"

type Broadcaster interface {
	BroadcastReportEntry(entry models.ReportEntry)
	BroadcastClock(clock int, gameOpen bool)
}
