package recorder

import (
	"time"

	"InvestAdvisor/internal/model"
)

// Snapshot is a periodic reading of the market collaborators.
type Snapshot struct {
	ID        string
	TakenAt   time.Time
	Inflation model.InflationInfo
	Top       []model.Performer
}

// RecommendationRecord is one row of the recommendation audit trail.
type RecommendationRecord struct {
	ID           string
	ServedAt     time.Time
	Age          int
	Risk         string
	Horizon      string
	Goal         string
	Principal    float64
	Language     string
	InflationYoY float64
	Label        string
	Matched      bool
	Allocation   model.Allocation
}

// Recorder persists historical data for analysis.
type Recorder interface {
	RecordRecommendation(res *model.RecommendationResult) error
	RecordSnapshot(snap *Snapshot) error
	RecentRecommendations(limit int) ([]RecommendationRecord, error)
	Close() error
}
