package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"heuristicheck/internal/ports"
)

// ClaimNext selects the next queued job using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.AuditJob, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        SELECT id, audit_id FROM audit_jobs
        WHERE status = 'queued'
        ORDER BY queued_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `).Scan(&job.ID, &job.AuditID)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}

	if err = startJob(ctx, tx, job.ID, job.AuditID); err != nil {
		return job, false, err
	}
	return job, true, nil
}

func startJob(ctx context.Context, tx pgx.Tx, jobID, auditID string) error {
	if _, err := tx.Exec(ctx, `
        UPDATE audit_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
    `, jobID); err != nil {
		return err
	}
	_, err := tx.Exec(ctx, `
        UPDATE audits SET status='running', started_at=COALESCE(started_at, now()) WHERE id=$1
    `, auditID)
	return err
}

func (db *DB) MarkRunning(ctx context.Context, jobID string) error {
	_, err := db.Pool.Exec(ctx, `UPDATE audit_jobs SET status='running', started_at=COALESCE(started_at, now()) WHERE id=$1`, jobID)
	return err
}

func (db *DB) UpdateAuditProgress(ctx context.Context, auditID string, progress float64) error {
	progress = min(max(progress, 0), 1)
	_, err := db.Pool.Exec(ctx, `UPDATE audits SET progress=$2 WHERE id=$1`, auditID, progress)
	return err
}

// MarkCompleted completes the job and its audit atomically.
func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
	return db.finish(ctx, jobID, `
        UPDATE audit_jobs SET status='completed', finished_at=now() WHERE id=$1
    `, `
        UPDATE audits SET status='completed', progress=1, finished_at=now() WHERE id=$1
    `)
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
	return db.finish(ctx, jobID, `
        UPDATE audit_jobs SET status='failed', last_error=$2, finished_at=now() WHERE id=$1
    `, `
        UPDATE audits SET status='failed', error=$2, finished_at=now() WHERE id=$1
    `, reason)
}

func (db *DB) finish(ctx context.Context, jobID, jobSQL, auditSQL string, args ...any) (err error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var auditID string
	err = tx.QueryRow(ctx, `SELECT audit_id FROM audit_jobs WHERE id=$1`, jobID).Scan(&auditID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ports.ErrNotFound
	}
	if err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, jobSQL, append([]any{jobID}, args...)...); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, auditSQL, append([]any{auditID}, args...)...); err != nil {
		return err
	}
	return nil
}

// StartJobForAudit marks the job for a specific audit as running and returns the job id.
func (db *DB) StartJobForAudit(ctx context.Context, auditID string) (jobID string, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	// No SKIP LOCKED: a concurrent claim is waited out and then seen as running.
	var status string
	err = tx.QueryRow(ctx, `
        SELECT id, status FROM audit_jobs
        WHERE audit_id = $1
        ORDER BY queued_at DESC
        LIMIT 1
        FOR UPDATE
    `, auditID).Scan(&jobID, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ports.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if status != "queued" {
		return "", ports.ErrJobClaimed
	}
	if err = startJob(ctx, tx, jobID, auditID); err != nil {
		return "", err
	}
	return jobID, nil
}
