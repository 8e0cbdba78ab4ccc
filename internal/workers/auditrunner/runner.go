package auditrunner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"heuristicheck/internal/audit"
	"heuristicheck/internal/domain"
	"heuristicheck/internal/ports"
)

// AuditProcessor performs the audit work for a job's audit id.
type AuditProcessor interface {
	Process(ctx context.Context, auditID string) error
}

// PageAuditor captures the audited page, runs the rule engine over it and stores the results.
type PageAuditor struct {
	Audits   ports.AuditRepository
	Jobs     ports.JobRepository
	Capturer ports.PageCapturer
	Engine   *audit.Engine
}

func (p PageAuditor) Process(ctx context.Context, auditID string) error {
	a, err := p.Audits.Get(ctx, auditID)
	if err != nil {
		return err
	}
	if err := p.Jobs.UpdateAuditProgress(ctx, auditID, 0.1); err != nil {
		return err
	}
	doc, err := p.Capturer.Capture(ctx, a.URL)
	if err != nil {
		return fmt.Errorf("capture %s: %w", a.URL, err)
	}
	if err := p.Jobs.UpdateAuditProgress(ctx, auditID, 0.5); err != nil {
		return err
	}
	doc.ClearOverlays()
	findings := p.Engine.Run(ctx, doc, a.Settings)
	if err := p.Audits.SaveResults(ctx, auditID, findings, doc.MarkedElements(), domain.Score(findings)); err != nil {
		return err
	}
	return p.Jobs.UpdateAuditProgress(ctx, auditID, 1.0)
}

// Run starts worker goroutines that claim jobs and process them.
func Run(ctx context.Context, repo ports.JobRepository, processor AuditProcessor, concurrency int, pollInterval time.Duration, logger *slog.Logger) {
	if concurrency < 1 {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}
	jobsCh := make(chan ports.AuditJob, concurrency)

	// dispatcher loop
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				close(jobsCh)
				return
			case <-ticker.C:
				for {
					job, found, err := repo.ClaimNext(ctx)
					if err != nil {
						logger.Error("job claim failed", "error", err)
						break
					}
					if !found {
						break
					}
					select {
					case jobsCh <- job:
					case <-ctx.Done():
						_ = repo.MarkFailed(context.WithoutCancel(ctx), job.ID, "shutdown")
						close(jobsCh)
						return
					}
				}
			}
		}
	}()

	// workers
	for i := 0; i < concurrency; i++ {
		go func(idx int) {
			for job := range jobsCh {
				log := logger.With("worker", idx, "job", job.ID, "audit", job.AuditID)
				// Job state is recorded even when shutdown interrupted the audit.
				finishCtx := context.WithoutCancel(ctx)
				if err := processor.Process(ctx, job.AuditID); err != nil {
					if ferr := repo.MarkFailed(finishCtx, job.ID, err.Error()); ferr != nil {
						log.Error("mark failed", "error", ferr)
					}
					log.Warn("audit failed", "error", err)
					continue
				}
				if err := repo.MarkCompleted(finishCtx, job.ID); err != nil {
					log.Error("complete failed", "error", err)
					continue
				}
				log.Info("audit completed")
			}
		}(i)
	}
}

// ProcessInline starts and processes a specific audit synchronously using the same processor
// as the background workers. It returns ports.ErrJobClaimed when a worker got to the job first.
func ProcessInline(ctx context.Context, repo ports.JobRepository, processor AuditProcessor, auditID string) error {
	jobID, err := repo.StartJobForAudit(ctx, auditID)
	if err != nil {
		return err
	}
	// An expired ctx must not leave the job running.
	finishCtx := context.WithoutCancel(ctx)
	if err := processor.Process(ctx, auditID); err != nil {
		_ = repo.MarkFailed(finishCtx, jobID, err.Error())
		return err
	}
	return repo.MarkCompleted(finishCtx, jobID)
}

// StatusSource reports the state of an audit.
type StatusSource interface {
	Status(ctx context.Context, auditID string) (status string, progress float64, err error)
}

// Await polls until the audit completes or fails, or ctx ends.
func Await(ctx context.Context, audits StatusSource, auditID string, pollInterval time.Duration) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		status, _, err := audits.Status(ctx, auditID)
		if err != nil {
			return err
		}
		if status == domain.AuditCompleted || status == domain.AuditFailed {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
