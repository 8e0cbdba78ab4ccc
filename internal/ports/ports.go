package ports

import (
	"context"

	"heuristicheck/internal/dom"
	"heuristicheck/internal/domain"
)

// Auditor enqueues and tracks audit runs.
type Auditor interface {
	Enqueue(ctx context.Context, url string, settings domain.Settings) (auditID string, err error)
	Status(ctx context.Context, auditID string) (status string, progress float64, err error)
	Get(ctx context.Context, auditID string) (domain.Audit, error)
	List(ctx context.Context, limit int) ([]domain.Audit, error)
}

// Profiles provides the latest score for domains.
type Profiles interface {
	GetLatest(ctx context.Context, domain string) (domain.Profile, error)
}

// PageCapturer loads a page into a Document ready for auditing.
type PageCapturer interface {
	Capture(ctx context.Context, url string) (*dom.Document, error)
}

// ErrNotFound is returned by repositories for unknown ids.
var ErrNotFound = errString("not found")

type errString string

func (e errString) Error() string { return string(e) }
