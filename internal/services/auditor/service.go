package auditor

import (
	"context"
	"fmt"
	"maps"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"heuristicheck/internal/domain"
	"heuristicheck/internal/ports"
)

const (
	DefaultHistory = 20
	MaxHistory     = 100
)

var (
	ErrInvalidURL      = errString("url must be an absolute http(s) URL")
	ErrInvalidSettings = errString("unknown rule id")
)

type errString string

func (e errString) Error() string { return string(e) }

type Service struct {
	domains  ports.DomainRepository
	audits   ports.AuditRepository
	defaults domain.Settings
}

type Option func(*Service)

// WithDefaultSettings sets the rule toggles recorded for audits enqueued without settings.
func WithDefaultSettings(settings domain.Settings) Option {
	return func(s *Service) { s.defaults = maps.Clone(settings) }
}

func New(domains ports.DomainRepository, audits ports.AuditRepository, opts ...Option) *Service {
	s := &Service{domains: domains, audits: audits}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enqueue records a queued audit of rawurl, grouped under its registrable domain.
func (s *Service) Enqueue(ctx context.Context, rawurl string, settings domain.Settings) (string, error) {
	if settings == nil {
		settings = maps.Clone(s.defaults)
	}
	u, err := url.Parse(strings.TrimSpace(rawurl))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return "", ErrInvalidURL
	}
	for id := range settings {
		if !id.IsValid() {
			return "", fmt.Errorf("%w %d", ErrInvalidSettings, id)
		}
	}
	host := strings.ToLower(u.Hostname())
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		registrable = host
	}
	domainID, err := s.domains.GetOrCreate(ctx, registrable)
	if err != nil {
		return "", err
	}
	return s.audits.Create(ctx, domainID, u.String(), settings)
}

func (s *Service) Status(ctx context.Context, auditID string) (string, float64, error) {
	return s.audits.Status(ctx, auditID)
}

func (s *Service) Get(ctx context.Context, auditID string) (domain.Audit, error) {
	return s.audits.Get(ctx, auditID)
}

// List returns the most recent audits first.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Audit, error) {
	if limit <= 0 {
		limit = DefaultHistory
	}
	if limit > MaxHistory {
		limit = MaxHistory
	}
	return s.audits.List(ctx, limit)
}
