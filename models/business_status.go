package models

// Status kinds emitted by the business-hours engine.
const (
	STATUS_OPEN         = "open"
	STATUS_CLOSED       = "closed"
	STATUS_CLOSING_SOON = "closing-soon"
	STATUS_OPENING_SOON = "opening-soon"
	STATUS_UNKNOWN      = "unknown"
)

// BusinessStatus is the displayable realtime open/closed state of a facility.
// Exactly one of ClosesAt/OpensAt is set: ClosesAt for open/closing-soon,
// OpensAt for opening-soon/closed, neither for unknown.
type BusinessStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Color     string `json:"color"`
	TextColor string `json:"text_color"`
	Icon      string `json:"icon"`
	ClosesAt  string `json:"closes_at,omitempty"`
	OpensAt   string `json:"opens_at,omitempty"`
}
