package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	api "heuristicheck/internal/api"
	"heuristicheck/internal/audit"
	"heuristicheck/internal/domain"
	"heuristicheck/internal/ports"
	"heuristicheck/internal/services/auditor"
	"heuristicheck/internal/services/inspector"
	"heuristicheck/internal/workers/auditrunner"
)

const (
	defaultWaitSeconds = 30
	maxBodyBytes       = 10 << 20
	awaitInterval      = 100 * time.Millisecond
)

// Server implements the generated StrictServerInterface.
type Server struct {
	auditor   ports.Auditor
	profiles  ports.Profiles
	jobs      ports.JobRepository
	processor auditrunner.AuditProcessor
	sessions  *inspector.Service
	logger    *slog.Logger
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(audits ports.Auditor, profiles ports.Profiles, jobs ports.JobRepository, processor auditrunner.AuditProcessor, sessions *inspector.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{auditor: audits, profiles: profiles, jobs: jobs, processor: processor, sessions: sessions, logger: logger}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, middleware.RequestSize(maxBodyBytes), s.logRequests)

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, badRequest(err))
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, err)
		},
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, badRequest(err))
		},
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"took", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (s *Server) ListRules(ctx context.Context, _ api.ListRulesRequestObject) (api.ListRulesResponseObject, error) {
	out := make(api.ListRules200JSONResponse, 0, 10)
	for _, id := range domain.AllRules() {
		out = append(out, api.RuleInfo{Id: int(id), Name: audit.RuleName(id)})
	}
	return out, nil
}

func (s *Server) CreateAudit(ctx context.Context, req api.CreateAuditRequestObject) (api.CreateAuditResponseObject, error) {
	if req.Body == nil {
		return nil, badRequest(errors.New("missing body"))
	}
	id, err := s.auditor.Enqueue(ctx, req.Body.Url, req.Body.Settings)
	if err != nil {
		return nil, err
	}
	if req.Params.Wait == nil || !*req.Params.Wait {
		return api.CreateAudit202JSONResponse{AuditId: id}, nil
	}

	// Blocking path runs the same processor the workers use.
	seconds := defaultWaitSeconds
	if req.Params.Timeout != nil && *req.Params.Timeout > 0 {
		seconds = *req.Params.Timeout
	}
	ctx2, cancel := context.WithTimeout(ctx, time.Duration(seconds)*time.Second)
	defer cancel()
	err = auditrunner.ProcessInline(ctx2, s.jobs, s.processor, id)
	if errors.Is(err, ports.ErrJobClaimed) {
		// A worker got there first.
		err = auditrunner.Await(ctx2, s.auditor, id, awaitInterval)
	}
	if err != nil {
		return nil, err
	}
	a, err := s.auditor.Get(ctx2, id)
	if err != nil {
		return nil, err
	}
	return api.CreateAudit200JSONResponse(a), nil
}

func (s *Server) ListAudits(ctx context.Context, req api.ListAuditsRequestObject) (api.ListAuditsResponseObject, error) {
	n := 0
	if req.Params.Limit != nil {
		n = *req.Params.Limit
	}
	audits, err := s.auditor.List(ctx, n)
	if err != nil {
		return nil, err
	}
	if audits == nil {
		audits = []domain.Audit{}
	}
	return api.ListAudits200JSONResponse(audits), nil
}

func (s *Server) GetAudit(ctx context.Context, req api.GetAuditRequestObject) (api.GetAuditResponseObject, error) {
	a, err := s.auditor.Get(ctx, req.Id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return api.GetAudit404JSONResponse{Error: err.Error()}, nil
		}
		return nil, err
	}
	return api.GetAudit200JSONResponse(a), nil
}

func (s *Server) GetProfile(ctx context.Context, req api.GetProfileRequestObject) (api.GetProfileResponseObject, error) {
	prof, err := s.profiles.GetLatest(ctx, req.Domain)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return api.GetProfile404JSONResponse{Error: err.Error()}, nil
		}
		return nil, err
	}
	return api.GetProfile200JSONResponse(prof), nil
}

type requestError struct {
	code int
	msg  string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(err error) error { return &requestError{code: http.StatusBadRequest, msg: err.Error()} }

func statusOf(err error) int {
	var re *requestError
	switch {
	case errors.As(err, &re):
		return re.code
	case errors.Is(err, ports.ErrNotFound), errors.Is(err, inspector.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, auditor.ErrInvalidURL), errors.Is(err, auditor.ErrInvalidSettings),
		errors.Is(err, inspector.ErrNoPage), errors.Is(err, inspector.ErrNoCapturer):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusOf(err))
	_ = json.NewEncoder(w).Encode(api.Error{Error: err.Error()})
}
