package model

import (
	"time"

	"github.com/google/uuid"
)

// Media item types.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
	MediaTypeAudio = "audio"
	MediaTypeText  = "text"
)

// MediaItem is a single piece of content bound to an order. Immutable once
// the owning OrderContent is published.
type MediaItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OrderID   uuid.UUID `json:"-" db:"order_id"`
	Type      string    `json:"type" db:"type"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Thumbnail string    `json:"thumbnail,omitempty" db:"thumbnail"`
	Duration  int       `json:"duration,omitempty" db:"duration"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// OrderContent is the set of media items and theme bound to an order,
// exposed via a tap-to-view URL once published.
// NFCURL is assigned only when IsPublished is true.
type OrderContent struct {
	OrderID         uuid.UUID         `json:"orderId" db:"order_id"`
	MediaItems      []MediaItem       `json:"mediaItems"`
	SelectedThemeID *uuid.UUID        `json:"selectedThemeId,omitempty" db:"selected_theme_id"`
	Customizations  map[string]string `json:"customizations,omitempty" db:"customizations"`
	IsPublished     bool              `json:"isPublished" db:"is_published"`
	NFCURL          string            `json:"nfcUrl,omitempty" db:"nfc_url"`
	UpdatedAt       time.Time         `json:"updatedAt" db:"updated_at"`
}

// MediaItemRequest is the payload for adding or updating a media item.
type MediaItemRequest struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Duration  int    `json:"duration,omitempty"`
}

// ValidMediaType reports whether t is one of the supported media types.
func ValidMediaType(t string) bool {
	switch t {
	case MediaTypeImage, MediaTypeVideo, MediaTypeAudio, MediaTypeText:
		return true
	}
	return false
}
