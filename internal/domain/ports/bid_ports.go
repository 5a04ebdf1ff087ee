package ports

import (
	"context"
	"time"

	"github.com/ozzus/nextbid/internal/domain/models"
)

type ProfileReader interface {
	GetProfile(ctx context.Context, id string) (models.PreferenceProfile, error)
}

// TripCatalog returns the trips published for a planning period ("Jan 2026").
// An empty period means every trip the catalog knows about.
type TripCatalog interface {
	ListTrips(ctx context.Context, period string) ([]models.Trip, error)
}

type BidGroupCache interface {
	Get(ctx context.Context, profileID string, maxLines int) ([]models.TripPropertyCommand, error)
	Set(ctx context.Context, profileID string, maxLines int, commands []models.TripPropertyCommand, ttl time.Duration) error
}

// CommandResult is a built command together with its display line and the
// trips it affects in the requested period.
type CommandResult struct {
	Command      models.TripPropertyCommand `json:"command"`
	Rendered     string                     `json:"rendered"`
	MatchedTrips []models.Trip              `json:"matched_trips"`
}

type CompiledBidGroup struct {
	ProfileID string           `json:"profile_id"`
	MaxLines  int              `json:"max_lines"`
	Lines     []models.BidLine `json:"lines"`
	Export    string           `json:"export"`
}

// BidGroupPreview is a compiled group where every line carries the trips it
// matches.
type BidGroupPreview struct {
	CompiledBidGroup
	Period  string          `json:"period"`
	Matches []CommandResult `json:"matches"`
}
