package profiles

import (
	"context"
	"strings"

	"heuristicheck/internal/domain"
	"heuristicheck/internal/ports"
)

type Service struct {
	scores ports.ScoreRepository
}

func New(scores ports.ScoreRepository) *Service { return &Service{scores: scores} }

// GetLatest returns the score of the newest completed audit for a registrable domain.
func (s *Service) GetLatest(ctx context.Context, registrable string) (domain.Profile, error) {
	registrable = strings.ToLower(strings.TrimSpace(registrable))
	exists, prof, err := s.scores.GetLatestByDomain(ctx, registrable)
	if err != nil {
		return domain.Profile{}, err
	}
	if !exists {
		return domain.Profile{}, ErrNotFound
	}
	prof.Domain = registrable
	return prof, nil
}

var ErrNotFound = ports.ErrNotFound
