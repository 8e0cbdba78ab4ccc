package ports

import "context"

// ErrJobClaimed is returned by StartJobForAudit when the audit's job is no longer queued.
var ErrJobClaimed = errString("job already claimed")

type AuditJob struct {
	ID      string
	AuditID string
}

// JobRepository supports claiming and updating audit jobs.
type JobRepository interface {
	ClaimNext(ctx context.Context) (job AuditJob, found bool, err error)
	MarkRunning(ctx context.Context, jobID string) error
	UpdateAuditProgress(ctx context.Context, auditID string, progress float64) error
	MarkCompleted(ctx context.Context, jobID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
	StartJobForAudit(ctx context.Context, auditID string) (jobID string, err error)
}
