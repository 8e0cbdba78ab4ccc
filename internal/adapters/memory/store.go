// Package memory keeps audits and jobs in process. It backs the server when no
// database is configured and stands in for Postgres in tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"heuristicheck/internal/domain"
	"heuristicheck/internal/ports"
)

type job struct {
	id       string
	auditID  string
	status   string
	attempts int
	reason   string
	queuedAt time.Time
}

type Store struct {
	mu      sync.Mutex
	now     func() time.Time
	domains map[string]string // registrable -> id
	names   map[string]string // id -> registrable
	audits  map[string]*domain.Audit
	jobs    map[string]*job
}

func New() *Store {
	return &Store{
		now:     time.Now,
		domains: make(map[string]string),
		names:   make(map[string]string),
		audits:  make(map[string]*domain.Audit),
		jobs:    make(map[string]*job),
	}
}

func (s *Store) GetOrCreate(_ context.Context, registrable string) (string, error) {
	registrable = strings.ToLower(registrable)
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.domains[registrable]; ok {
		return id, nil
	}
	id := uuid.NewString()
	s.domains[registrable] = id
	s.names[id] = registrable
	return id, nil
}

func (s *Store) Create(_ context.Context, domainID, url string, settings domain.Settings) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	a := &domain.Audit{
		ID:        uuid.NewString(),
		DomainRef: domainID,
		URL:       url,
		Status:    domain.AuditQueued,
		Settings:  settings,
		CreatedAt: now,
	}
	s.audits[a.ID] = a
	j := &job{id: uuid.NewString(), auditID: a.ID, status: domain.AuditQueued, queuedAt: now}
	s.jobs[j.id] = j
	return a.ID, nil
}

func (s *Store) Status(_ context.Context, auditID string) (string, float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.audits[auditID]
	if !ok {
		return "", 0, ports.ErrNotFound
	}
	return a.Status, a.Progress, nil
}

func (s *Store) Get(_ context.Context, auditID string) (domain.Audit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.audits[auditID]
	if !ok {
		return domain.Audit{}, ports.ErrNotFound
	}
	return *a, nil
}

func (s *Store) List(_ context.Context, limit int) ([]domain.Audit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Audit, 0, len(s.audits))
	for _, a := range s.audits {
		out = append(out, *a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) SaveResults(_ context.Context, auditID string, findings []domain.Finding, marked []domain.MarkedElement, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.audits[auditID]
	if !ok {
		return ports.ErrNotFound
	}
	a.Findings = append([]domain.Finding(nil), findings...)
	a.Marked = append([]domain.MarkedElement(nil), marked...)
	a.Score = &score
	return nil
}

func (s *Store) GetLatestByDomain(_ context.Context, registrable string) (bool, domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.domains[strings.ToLower(registrable)]
	if !ok {
		return false, domain.Profile{}, nil
	}
	var latest *domain.Audit
	for _, a := range s.audits {
		if a.DomainRef != id || a.Status != domain.AuditCompleted || a.Score == nil || a.FinishedAt == nil {
			continue
		}
		if latest == nil || a.FinishedAt.After(*latest.FinishedAt) {
			latest = a
		}
	}
	if latest == nil {
		return false, domain.Profile{}, nil
	}
	return true, domain.Profile{
		Domain:    s.names[id],
		AuditID:   latest.ID,
		URL:       latest.URL,
		Score:     *latest.Score,
		Summary:   domain.Summary(latest.Findings),
		AuditedAt: *latest.FinishedAt,
	}, nil
}

// ClaimNext hands out the oldest queued job.
func (s *Store) ClaimNext(_ context.Context) (ports.AuditJob, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var next *job
	for _, j := range s.jobs {
		if j.status != domain.AuditQueued {
			continue
		}
		if next == nil || j.queuedAt.Before(next.queuedAt) {
			next = j
		}
	}
	if next == nil {
		return ports.AuditJob{}, false, nil
	}
	s.start(next)
	return ports.AuditJob{ID: next.id, AuditID: next.auditID}, true, nil
}

func (s *Store) start(j *job) {
	j.status = domain.AuditRunning
	j.attempts++
	if a, ok := s.audits[j.auditID]; ok {
		a.Status = domain.AuditRunning
	}
}

func (s *Store) MarkRunning(_ context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return ports.ErrNotFound
	}
	j.status = domain.AuditRunning
	return nil
}

func (s *Store) UpdateAuditProgress(_ context.Context, auditID string, progress float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.audits[auditID]
	if !ok {
		return ports.ErrNotFound
	}
	a.Progress = min(max(progress, 0), 1)
	return nil
}

func (s *Store) MarkCompleted(_ context.Context, jobID string) error {
	return s.finish(jobID, domain.AuditCompleted, "")
}

func (s *Store) MarkFailed(_ context.Context, jobID string, reason string) error {
	return s.finish(jobID, domain.AuditFailed, reason)
}

func (s *Store) finish(jobID, status, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return ports.ErrNotFound
	}
	j.status, j.reason = status, reason
	if a, ok := s.audits[j.auditID]; ok {
		now := s.now()
		a.Status = status
		a.Error = reason
		a.FinishedAt = &now
		if status == domain.AuditCompleted {
			a.Progress = 1
		}
	}
	return nil
}

// StartJobForAudit claims the queued job of a specific audit.
func (s *Store) StartJobForAudit(_ context.Context, auditID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.auditID != auditID {
			continue
		}
		if j.status != domain.AuditQueued {
			return "", ports.ErrJobClaimed
		}
		s.start(j)
		return j.id, nil
	}
	return "", ports.ErrNotFound
}
