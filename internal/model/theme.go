package model

import (
	"time"

	"github.com/google/uuid"
)

// ThemeSection positions a named section within a theme layout.
type ThemeSection struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// ThemeLayout describes how published content is presented.
type ThemeLayout struct {
	BackgroundColor string         `json:"backgroundColor"`
	TextColor       string         `json:"textColor"`
	AccentColor     string         `json:"accentColor"`
	Font            string         `json:"font"`
	Sections        []ThemeSection `json:"sections"`
}

// Theme is a presentation template for published NFC content.
type Theme struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Description string      `json:"description" db:"description"`
	Preview     string      `json:"preview" db:"preview"`
	Layout      ThemeLayout `json:"layout" db:"layout"`
	IsPremium   bool        `json:"isPremium" db:"is_premium"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}

// ThemeRequest is the admin payload for creating or updating a theme.
type ThemeRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Preview     string      `json:"preview"`
	Layout      ThemeLayout `json:"layout"`
	IsPremium   bool        `json:"isPremium"`
}
