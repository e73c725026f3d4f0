package recorder

import "InvestAdvisor/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRecommendation(_ *model.RecommendationResult) error { return nil }
func (n *NoopRecorder) RecordSnapshot(_ *Snapshot) error                         { return nil }
func (n *NoopRecorder) RecentRecommendations(_ int) ([]RecommendationRecord, error) {
	return nil, nil
}
func (n *NoopRecorder) Close() error { return nil }
