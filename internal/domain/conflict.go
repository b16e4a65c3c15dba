package domain

// Severity ranks how acute a conflict currently is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// TimelineEvent is one dated entry in a conflict's history.
type TimelineEvent struct {
	Year  int    `json:"year"`
	Event string `json:"event"`
}

// Conflict is a static catalog entry describing an ongoing real-world
// conflict. The catalog is loaded once at startup and is read-only for the
// lifetime of the process.
type Conflict struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Lat         float64         `json:"lat"`
	Lng         float64         `json:"lng"`
	Severity    Severity        `json:"severity"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Parties     []string        `json:"parties"`
	Keywords    []string        `json:"keywords"`
	Region      string          `json:"region"`
	StartYear   int             `json:"startYear"`
	HistoryURL  string          `json:"historyUrl"`
	Timeline    []TimelineEvent `json:"timeline,omitempty"`
}

// ConflictWithNews pairs a conflict with the most recent articles that
// reference it (at most MaxRelatedNews, in newest-first aggregator order).
type ConflictWithNews struct {
	Conflict
	RelatedNews []Article `json:"relatedNews"`
}

// MaxRelatedNews caps the related-news view per conflict.
const MaxRelatedNews = 5
