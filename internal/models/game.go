package models

import "time"

// Status is the lifecycle state of a game in a user's list. The wire values
// are the strings existing clients store and render, so they must not change.
type Status string

const (
	StatusBacklog   Status = "Backlog"
	StatusPlaying   Status = "Jogando"
	StatusCompleted Status = "Zerado"
	StatusAbandoned Status = "Abandonado"
)

// Valid reports whether s is one of the four known statuses. Any status may
// transition to any other; there is no ordering between them.
func (s Status) Valid() bool {
	switch s {
	case StatusBacklog, StatusPlaying, StatusCompleted, StatusAbandoned:
		return true
	}
	return false
}

type Game struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	RawgID          int64      `json:"rawgId"`
	GameTitle       string     `json:"gameTitle"`
	Platform        string     `json:"platform"`
	BackgroundImage string     `json:"backgroundImage,omitempty"`
	Status          Status     `json:"status"`
	Rating          *int       `json:"rating,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}
