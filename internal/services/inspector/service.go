// Package inspector keeps interactive audit sessions: a page, the findings of its latest
// audit and a navigator over the elements that audit marked.
package inspector

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"heuristicheck/internal/audit"
	"heuristicheck/internal/dom"
	"heuristicheck/internal/domain"
	"heuristicheck/internal/navigator"
	"heuristicheck/internal/ports"
)

const (
	DefaultWidth  = 1280.0
	DefaultHeight = 800.0
)

var (
	ErrSessionNotFound = errString("session not found")
	ErrNoPage          = errString("url or html is required")
	ErrNoCapturer      = errString("page capture is not configured; send html")
)

type errString string

func (e errString) Error() string { return string(e) }

type OpenRequest struct {
	URL      string
	HTML     string
	Settings domain.Settings
	Theme    navigator.Theme
	Width    float64
	Height   float64
}

type Session struct {
	ID        string
	URL       string
	CreatedAt time.Time

	doc      *dom.Document
	viewport *navigator.StaticViewport

	mu       sync.RWMutex
	nav      *navigator.Navigator
	findings []domain.Finding
	settings domain.Settings
}

// View is the serialisable state of a session.
type View struct {
	ID        string                  `json:"id"`
	URL       string                  `json:"url"`
	CreatedAt time.Time               `json:"createdAt"`
	Score     int                     `json:"score"`
	Summary   map[domain.Severity]int `json:"summary"`
	Findings  []domain.Finding        `json:"findings"`
	Overlay   navigator.Overlay       `json:"overlay"`
}

func (s *Session) Navigator() *navigator.Navigator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nav
}

func (s *Session) Viewport() *navigator.StaticViewport { return s.viewport }

func (s *Session) Document() *dom.Document { return s.doc }

func (s *Session) Findings() []domain.Finding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Finding(nil), s.findings...)
}

func (s *Session) View() View {
	s.mu.RLock()
	findings, nav := s.findings, s.nav
	s.mu.RUnlock()
	return View{
		ID:        s.ID,
		URL:       s.URL,
		CreatedAt: s.CreatedAt,
		Score:     domain.Score(findings),
		Summary:   domain.Summary(findings),
		Findings:  findings,
		Overlay:   nav.Overlay(),
	}
}

type Service struct {
	engine    *audit.Engine
	capturer  ports.PageCapturer
	advisor   navigator.AdviceSource
	scheduler navigator.Scheduler
	logger    *slog.Logger
	now       func() time.Time
	settings  domain.Settings
	theme     navigator.Theme

	mu       sync.Mutex
	sessions map[string]*Session
}

type Option func(*Service)

func WithCapturer(c ports.PageCapturer) Option { return func(s *Service) { s.capturer = c } }

// WithAdvisor sets the advice source handed to every navigator. Without one, advice
// requests report the missing key.
func WithAdvisor(a navigator.AdviceSource) Option { return func(s *Service) { s.advisor = a } }

func WithScheduler(sch navigator.Scheduler) Option { return func(s *Service) { s.scheduler = sch } }

// WithDefaultSettings sets the rule toggles of sessions opened without settings.
func WithDefaultSettings(settings domain.Settings) Option {
	return func(s *Service) { s.settings = maps.Clone(settings) }
}

// WithDefaultTheme sets the theme of sessions opened without one.
func WithDefaultTheme(t navigator.Theme) Option { return func(s *Service) { s.theme = t } }

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(engine *audit.Engine, opts ...Option) *Service {
	s := &Service{
		engine:   engine,
		logger:   slog.Default(),
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads a page, audits it and registers a session navigating the marked elements.
// Inline HTML wins over URL; the URL then only names the page.
func (s *Service) Open(ctx context.Context, req OpenRequest) (*Session, error) {
	var (
		doc *dom.Document
		err error
	)
	switch {
	case req.HTML != "":
		doc, err = dom.ParseString(req.HTML, req.URL)
	case req.URL != "":
		if s.capturer == nil {
			return nil, ErrNoCapturer
		}
		doc, err = s.capturer.Capture(ctx, req.URL)
	default:
		return nil, ErrNoPage
	}
	if err != nil {
		return nil, fmt.Errorf("load page: %w", err)
	}

	width, height := req.Width, req.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	sess := &Session{
		ID:        uuid.NewString(),
		URL:       req.URL,
		CreatedAt: s.now(),
		doc:       doc,
		viewport:  navigator.NewStaticViewport(doc, width, height),
	}
	settings, theme := req.Settings, req.Theme
	if settings == nil {
		settings = maps.Clone(s.settings)
	}
	if theme == "" {
		theme = s.theme
	}
	s.audit(ctx, sess, settings, theme)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	s.logger.Info("session opened", "session", sess.ID, "url", sess.URL, "marked", len(doc.Marked()))
	return sess, nil
}

// audit tears down the previous navigator, clears the overlays, runs the engine and
// builds a fresh navigator over the new marks.
func (s *Service) audit(ctx context.Context, sess *Session, settings domain.Settings, theme navigator.Theme) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.nav != nil {
		if theme == "" {
			theme = sess.nav.Overlay().Theme
		}
		sess.nav.Close()
	}
	sess.doc.ClearOverlays()
	sess.findings = s.engine.Run(ctx, sess.doc, settings)
	sess.settings = settings
	sess.nav = navigator.New(sess.doc, sess.doc.Marked(), navigator.Options{
		Theme:     theme,
		Viewport:  sess.viewport,
		Scheduler: s.scheduler,
		Advisor:   s.advisor,
		Logger:    s.logger.With("session", sess.ID),
	})
}

func (s *Service) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// List returns the open sessions, oldest first.
func (s *Service) List() []*Session {
	s.mu.Lock()
	out := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Reanalyze re-runs the audit of a session with new settings. A nil settings keeps the previous ones.
func (s *Service) Reanalyze(ctx context.Context, id string, settings domain.Settings) (*Session, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		sess.mu.RLock()
		settings = sess.settings
		sess.mu.RUnlock()
	}
	s.audit(ctx, sess, settings, "")
	return sess, nil
}

// Close tears down the navigator and clears every overlay from the page.
func (s *Service) Close(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	sess.Navigator().Close()
	sess.doc.ClearOverlays()
	s.logger.Info("session closed", "session", id)
	return nil
}

// CloseAll closes every open session.
func (s *Service) CloseAll() {
	for _, sess := range s.List() {
		_ = s.Close(sess.ID)
	}
}
