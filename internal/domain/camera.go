package domain

import "time"

// Operational status values. The set is closed; parsers map anything they
// cannot recognize to StatusOperational rather than inventing new states.
const (
	StatusOperational  = "Operational"
	StatusOffline      = "Offline"
	StatusConstruction = "Construction"
)

// Severity levels, ordered low < medium < high < critical.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Trend values.
const (
	TrendImproving  = "improving"
	TrendStable     = "stable"
	TrendEscalating = "escalating"
)

// Source labels recording which acquisition path produced a record.
const (
	SourceAuthoritative = "nzta-arcgis"
	SourceLegacy        = "trafficnz"
	SourceFallback      = "static-fallback"
)

// Camera is the canonical camera/incident record produced by the pipeline,
// independent of upstream format. Records are immutable once constructed and
// are rebuilt from scratch on every sync cycle; the only identity that
// survives a cycle is the ID string itself.
type Camera struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Region      string  `json:"region"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Direction   string  `json:"direction"`
	Status      string  `json:"status"`
	Source      string  `json:"source"`
	Severity    string  `json:"severity"`
	Trend       string  `json:"trend"`
	Confidence  int     `json:"confidence"`
	LastUpdated string  `json:"lastUpdated"`
}

// displayTimeLayout is the display format for LastUpdated.
const displayTimeLayout = "15:04"

// DisplayTime formats a timestamp the way the UI shows update times.
func DisplayTime(t time.Time) string {
	return t.Format(displayTimeLayout)
}
