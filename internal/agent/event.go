// Package agent connects the workspace to a research agent. The agent
// itself lives outside this repository; this package runs it (or stands in
// for it) and turns its output into Bubble Tea messages for the panels.
package agent

import (
	"time"

	"github.com/google/uuid"
)

// Level classifies an intelligence-log entry.
type Level string

const (
	LevelInfo     Level = "info"
	LevelProgress Level = "progress"
	LevelSuccess  Level = "success"
	LevelError    Level = "error"
)

// Event is one entry in the intelligence log panel.
type Event struct {
	ID        string
	Message   string
	Level     Level
	Timestamp time.Time
}

// NewEvent creates an Event with a fresh id and the current time.
func NewEvent(message string, level Level) Event {
	return Event{
		ID:        uuid.NewString(),
		Message:   message,
		Level:     level,
		Timestamp: time.Now(),
	}
}
