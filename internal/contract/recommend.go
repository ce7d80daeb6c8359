package contract

import (
	"time"

	"github.com/mverral/umbra/internal/domain"
)

// RecommendationReasonCode identifies one scoring factor that fired.
type RecommendationReasonCode string

const (
	ReasonBaseline        RecommendationReasonCode = "BASELINE"
	ReasonTriggerMatch    RecommendationReasonCode = "TRIGGER_MATCH"
	ReasonGrowthAreaMatch RecommendationReasonCode = "GROWTH_AREA_MATCH"
	ReasonEaseIn          RecommendationReasonCode = "EASE_IN"
	ReasonStretch         RecommendationReasonCode = "STRETCH"
)

// RecommendationReason explains one score contribution.
type RecommendationReason struct {
	Code        RecommendationReasonCode
	Message     string
	WeightDelta float64
}

// Recommendation is one ranked exercise for the current week.
type Recommendation struct {
	Exercise       domain.Exercise
	RelevanceScore int // 0..100
	Impact         domain.ImpactTier
	Reason         string
	Reasons        []RecommendationReason
}

type RecommendRequest struct {
	UserID string
	Now    *time.Time
	Limit  int // 0 means no limit
}

type RecommendResponse struct {
	GeneratedAt     time.Time
	Week            int
	ShadowFunction  domain.CognitiveFunction
	Recommendations []Recommendation
}
