package models

// BidGroup is an ordered list of UI-level commands tried together. Rank 1 is
// the first group the award system considers.
type BidGroup struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Rank            int               `json:"rank"`
	IsFinalFallback bool              `json:"is_final_fallback"`
	Commands        []BidCommandInput `json:"-"`
	Note            string            `json:"note,omitempty"`
}

type CommandPreview struct {
	Input        BidCommandInput     `json:"-"`
	Command      TripPropertyCommand `json:"command"`
	Rendered     string              `json:"rendered"`
	MatchedTrips []Trip              `json:"matched_trips"`
}

type BidGroupPreview struct {
	Group    BidGroup         `json:"group"`
	Commands []CommandPreview `json:"commands"`
}

// BidLine is one numbered line of an exported bid (T01, T02, ...).
type BidLine struct {
	LineNumber int                 `json:"line_number"`
	Strength   int                 `json:"strength"`
	Command    TripPropertyCommand `json:"command"`
	Text       string              `json:"text"`
}
