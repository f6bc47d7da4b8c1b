package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/jwib1009/family-activity-demo/internal/anthropic"
	"github.com/jwib1009/family-activity-demo/internal/dto"
)

// Completer is the single upstream capability the service consumes: one
// synchronous completion returning typed content segments.
type Completer interface {
	Complete(ctx context.Context, prompt string) ([]anthropic.ContentBlock, error)
}

// RecommendationService turns validated criteria into an activity list via
// one upstream completion. It holds no per-request state.
type RecommendationService struct {
	completer Completer
	strict    bool
	log       *zap.Logger
}

// NewRecommendationService wires the service.
func NewRecommendationService(completer Completer, strict bool, log *zap.Logger) *RecommendationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecommendationService{completer: completer, strict: strict, log: log}
}

// Search builds the prompt, performs the upstream call and extracts the
// activity list. No retry, no timeout beyond the transport's own.
func (s *RecommendationService) Search(ctx context.Context, criteria dto.SearchCriteria) (Activities, error) {
	prompt := BuildPrompt(criteria)

	s.log.Info("searching for activities",
		zap.String("city", criteria.City),
		zap.Int("max_distance", criteria.MaxDistance))

	segments, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	activities, err := ExtractActivities(segments)
	if err != nil {
		return nil, err
	}

	if s.strict {
		if err := ValidateActivities(activities); err != nil {
			return nil, err
		}
	}

	s.log.Info("parsed activities", zap.Int("count", len(activities)))
	return activities, nil
}
