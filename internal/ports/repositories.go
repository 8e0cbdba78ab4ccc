package ports

import (
	"context"

	"heuristicheck/internal/domain"
)

// DomainRepository stores and fetches domains by registrable domain (eTLD+1).
type DomainRepository interface {
	GetOrCreate(ctx context.Context, registrable string) (domainID string, err error)
}

// AuditRepository manages audit runs and their results.
type AuditRepository interface {
	Create(ctx context.Context, domainID string, url string, settings domain.Settings) (auditID string, err error)
	Status(ctx context.Context, auditID string) (status string, progress float64, err error)
	Get(ctx context.Context, auditID string) (domain.Audit, error)
	List(ctx context.Context, limit int) ([]domain.Audit, error)
	SaveResults(ctx context.Context, auditID string, findings []domain.Finding, marked []domain.MarkedElement, score int) error
}

// ScoreRepository provides the latest completed audit per domain.
type ScoreRepository interface {
	GetLatestByDomain(ctx context.Context, registrable string) (exists bool, profile domain.Profile, err error)
}
