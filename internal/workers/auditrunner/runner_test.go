package auditrunner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heuristicheck/internal/adapters/memory"
	"heuristicheck/internal/audit"
	"heuristicheck/internal/dom"
	"heuristicheck/internal/domain"
	"heuristicheck/internal/ports"
)

const pageWithImage = `<html><body>
<h1>Welcome</h1>
<a href="/">Home</a>
<p>Need help? Contact us.</p>
<img src="cat.png">
</body></html>`

type staticCapturer struct {
	markup string
	err    error
}

func (c staticCapturer) Capture(_ context.Context, url string) (*dom.Document, error) {
	if c.err != nil {
		return nil, c.err
	}
	return dom.ParseString(c.markup, url)
}

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func setup(t *testing.T, capturer staticCapturer) (*memory.Store, PageAuditor, string) {
	t.Helper()
	store := memory.New()
	ctx := context.Background()
	d, err := store.GetOrCreate(ctx, "example.com")
	require.NoError(t, err)
	auditID, err := store.Create(ctx, d, "https://example.com/", nil)
	require.NoError(t, err)
	p := PageAuditor{Audits: store, Jobs: store, Capturer: capturer, Engine: audit.NewEngine(audit.WithLogger(quiet()))}
	return store, p, auditID
}

func TestProcessInlineStoresResults(t *testing.T) {
	store, p, auditID := setup(t, staticCapturer{markup: pageWithImage})
	ctx := context.Background()

	require.NoError(t, ProcessInline(ctx, store, p, auditID))

	a, err := store.Get(ctx, auditID)
	require.NoError(t, err)
	assert.Equal(t, domain.AuditCompleted, a.Status)
	assert.Equal(t, 1.0, a.Progress)
	require.NotNil(t, a.Score)
	assert.Equal(t, 97, *a.Score)
	require.Len(t, a.Findings, 10)
	require.Len(t, a.Marked, 1)
	assert.Equal(t, "Accessibility Risk", a.Marked[0].Label)
}

func TestProcessInlineCaptureFailure(t *testing.T) {
	store, p, auditID := setup(t, staticCapturer{err: errors.New("connection refused")})
	ctx := context.Background()

	err := ProcessInline(ctx, store, p, auditID)
	require.Error(t, err)

	a, _ := store.Get(ctx, auditID)
	assert.Equal(t, domain.AuditFailed, a.Status)
	assert.Contains(t, a.Error, "connection refused")
	assert.Nil(t, a.Score)
}

func TestRunDrainsQueue(t *testing.T) {
	store, p, auditID := setup(t, staticCapturer{markup: pageWithImage})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	Run(ctx, store, p, 2, 10*time.Millisecond, quiet())

	assert.Eventually(t, func() bool {
		status, _, err := store.Status(context.Background(), auditID)
		return err == nil && status == domain.AuditCompleted
	}, 2*time.Second, 10*time.Millisecond)
}

// strictFinish refuses to record job state on a finished context, as a database driver would.
type strictFinish struct {
	*memory.Store
}

func (s strictFinish) MarkFailed(ctx context.Context, jobID, reason string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.Store.MarkFailed(ctx, jobID, reason)
}

func (s strictFinish) MarkCompleted(ctx context.Context, jobID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.Store.MarkCompleted(ctx, jobID)
}

type waitForCancel struct{}

func (waitForCancel) Process(ctx context.Context, _ string) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestProcessInlineTimeoutStillFailsJob(t *testing.T) {
	store, _, auditID := setup(t, staticCapturer{})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := ProcessInline(ctx, strictFinish{store}, waitForCancel{}, auditID)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	a, err := store.Get(context.Background(), auditID)
	require.NoError(t, err)
	assert.Equal(t, domain.AuditFailed, a.Status)
	assert.Contains(t, a.Error, "deadline exceeded")
}

func TestRunShutdownStillFailsJob(t *testing.T) {
	store, _, auditID := setup(t, staticCapturer{})
	ctx, cancel := context.WithCancel(context.Background())

	Run(ctx, strictFinish{store}, waitForCancel{}, 1, 5*time.Millisecond, quiet())
	require.Eventually(t, func() bool {
		status, _, _ := store.Status(context.Background(), auditID)
		return status == domain.AuditRunning
	}, 2*time.Second, 5*time.Millisecond)
	cancel()

	assert.Eventually(t, func() bool {
		status, _, _ := store.Status(context.Background(), auditID)
		return status == domain.AuditFailed
	}, 2*time.Second, 5*time.Millisecond)
}

func TestProcessInlineAfterWorkerClaim(t *testing.T) {
	store, p, auditID := setup(t, staticCapturer{markup: pageWithImage})
	ctx := context.Background()

	job, found, err := store.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)

	err = ProcessInline(ctx, store, p, auditID)
	require.ErrorIs(t, err, ports.ErrJobClaimed)

	go func() {
		if p.Process(ctx, job.AuditID) == nil {
			_ = store.MarkCompleted(ctx, job.ID)
		}
	}()
	waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	require.NoError(t, Await(waitCtx, store, auditID, 5*time.Millisecond))

	a, err := store.Get(ctx, auditID)
	require.NoError(t, err)
	assert.Equal(t, domain.AuditCompleted, a.Status)
}

func TestAwaitStopsWithContext(t *testing.T) {
	store, _, auditID := setup(t, staticCapturer{})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, Await(ctx, store, auditID, 5*time.Millisecond), context.DeadlineExceeded)
}
