package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"heuristicheck/internal/domain"
	"heuristicheck/internal/ports"
)

var ErrNotFound = ports.ErrNotFound

// DomainRepository
func (db *DB) GetOrCreate(ctx context.Context, registrable string) (string, error) {
	registrable = strings.ToLower(registrable)
	var id string
	err := db.Pool.QueryRow(ctx, `
        INSERT INTO domains (registrable_domain)
        VALUES ($1)
        ON CONFLICT (registrable_domain) DO UPDATE SET registrable_domain = EXCLUDED.registrable_domain
        RETURNING id
    `, registrable).Scan(&id)
	return id, err
}

// AuditRepository
func (db *DB) Create(ctx context.Context, domainID string, url string, settings domain.Settings) (string, error) {
	if settings == nil {
		settings = domain.Settings{}
	}
	rawSettings, err := json.Marshal(settings)
	if err != nil {
		return "", err
	}
	var auditID string
	err = db.Pool.QueryRow(ctx, `
        INSERT INTO audits (domain_id, url, status, progress, settings)
        VALUES ($1, $2, 'queued', 0, $3)
        RETURNING id
    `, domainID, url, rawSettings).Scan(&auditID)
	if err != nil {
		return "", err
	}
	// create job row
	_, err = db.Pool.Exec(ctx, `INSERT INTO audit_jobs (audit_id) VALUES ($1)`, auditID)
	return auditID, err
}

func (db *DB) Status(ctx context.Context, auditID string) (string, float64, error) {
	var status string
	var progress float64
	err := db.Pool.QueryRow(ctx, `SELECT status, progress FROM audits WHERE id = $1`, auditID).Scan(&status, &progress)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", 0, ErrNotFound
	}
	return status, progress, err
}

const auditColumns = `
    id, domain_id, url, status, progress, settings, score,
    COALESCE(findings, '[]'::jsonb), COALESCE(marked_elements, '[]'::jsonb),
    COALESCE(error, ''), created_at, finished_at`

func (db *DB) Get(ctx context.Context, auditID string) (domain.Audit, error) {
	a, err := scanAudit(db.Pool.QueryRow(ctx, `SELECT `+auditColumns+` FROM audits WHERE id = $1`, auditID))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Audit{}, ErrNotFound
	}
	return a, err
}

// List returns the newest audits first.
func (db *DB) List(ctx context.Context, limit int) ([]domain.Audit, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+auditColumns+` FROM audits ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Audit
	for rows.Next() {
		a, err := scanAudit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAudit(row pgx.Row) (domain.Audit, error) {
	var (
		a                               domain.Audit
		settings, findings, markedBytes []byte
		finished                        *time.Time
	)
	err := row.Scan(&a.ID, &a.DomainRef, &a.URL, &a.Status, &a.Progress, &settings, &a.Score,
		&findings, &markedBytes, &a.Error, &a.CreatedAt, &finished)
	if err != nil {
		return a, err
	}
	a.FinishedAt = finished
	if err := json.Unmarshal(settings, &a.Settings); err != nil {
		return a, fmt.Errorf("decode settings of audit %s: %w", a.ID, err)
	}
	if err := json.Unmarshal(findings, &a.Findings); err != nil {
		return a, fmt.Errorf("decode findings of audit %s: %w", a.ID, err)
	}
	a.Marked, err = decodeMarked(markedBytes)
	if err != nil {
		return a, fmt.Errorf("decode marked elements of audit %s: %w", a.ID, err)
	}
	return a, nil
}

func (db *DB) SaveResults(ctx context.Context, auditID string, findings []domain.Finding, marked []domain.MarkedElement, score int) error {
	rawFindings, err := json.Marshal(findings)
	if err != nil {
		return err
	}
	rawMarked, err := json.Marshal(marked)
	if err != nil {
		return err
	}
	tag, err := db.Pool.Exec(ctx, `
        UPDATE audits SET findings=$2, marked_elements=$3, score=$4 WHERE id=$1
    `, auditID, rawFindings, rawMarked, score)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// storedElement keeps the metadata raw so a malformed value does not fail the whole audit.
type storedElement struct {
	Handle     int             `json:"handle"`
	Descriptor string          `json:"descriptor"`
	Severity   domain.Severity `json:"severity"`
	Label      string          `json:"label"`
	Meta       json.RawMessage `json:"meta,omitempty"`
}

func decodeMarked(raw []byte) ([]domain.MarkedElement, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var stored []storedElement
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}
	out := make([]domain.MarkedElement, 0, len(stored))
	for _, s := range stored {
		el := domain.MarkedElement{Handle: s.Handle, Descriptor: s.Descriptor, Severity: s.Severity, Label: s.Label}
		if meta, ok := domain.DecodeMeta(s.Meta); ok {
			el.Meta = &meta
		}
		out = append(out, el)
	}
	return out, nil
}

// ScoreRepository
func (db *DB) GetLatestByDomain(ctx context.Context, registrable string) (bool, domain.Profile, error) {
	var (
		prof     domain.Profile
		findings []byte
	)
	err := db.Pool.QueryRow(ctx, `
        SELECT d.registrable_domain, a.id, a.url, a.score, COALESCE(a.findings, '[]'::jsonb), a.finished_at
        FROM audits a
        JOIN domains d ON d.id = a.domain_id
        WHERE d.registrable_domain = $1 AND a.status = 'completed' AND a.score IS NOT NULL
        ORDER BY a.finished_at DESC
        LIMIT 1
    `, strings.ToLower(registrable)).Scan(&prof.Domain, &prof.AuditID, &prof.URL, &prof.Score, &findings, &prof.AuditedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, prof, nil
	}
	if err != nil {
		return false, prof, err
	}
	var fs []domain.Finding
	if err := json.Unmarshal(findings, &fs); err != nil {
		return false, prof, err
	}
	prof.Summary = domain.Summary(fs)
	return true, prof, nil
}
