package httpadapter

import (
	"context"
	"fmt"
	"time"

	api "heuristicheck/internal/api"
	"heuristicheck/internal/navigator"
	"heuristicheck/internal/services/inspector"
)

// theme maps an empty request theme to the service default.
func theme(raw string) (navigator.Theme, error) {
	if raw == "" {
		return "", nil
	}
	t, err := navigator.ParseTheme(raw)
	if err != nil {
		return "", badRequest(err)
	}
	return t, nil
}

func (s *Server) CreateSession(ctx context.Context, req api.CreateSessionRequestObject) (api.CreateSessionResponseObject, error) {
	body := req.Body
	t, err := theme(body.Theme)
	if err != nil {
		return nil, err
	}
	sess, err := s.sessions.Open(ctx, inspector.OpenRequest{
		URL:      body.Url,
		HTML:     body.Html,
		Settings: body.Settings,
		Theme:    t,
		Width:    body.Viewport.Width,
		Height:   body.Viewport.Height,
	})
	if err != nil {
		return nil, err
	}
	return api.CreateSession201JSONResponse(sess.View()), nil
}

func (s *Server) ListSessions(ctx context.Context, _ api.ListSessionsRequestObject) (api.ListSessionsResponseObject, error) {
	out := api.ListSessions200JSONResponse{}
	for _, sess := range s.sessions.List() {
		out = append(out, api.SessionSummary{Id: sess.ID, Url: sess.URL, CreatedAt: sess.CreatedAt})
	}
	return out, nil
}

func (s *Server) GetSession(ctx context.Context, req api.GetSessionRequestObject) (api.GetSessionResponseObject, error) {
	sess, err := s.sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetSession200JSONResponse(sess.View()), nil
}

func (s *Server) DeleteSession(ctx context.Context, req api.DeleteSessionRequestObject) (api.DeleteSessionResponseObject, error) {
	if err := s.sessions.Close(req.Id); err != nil {
		return nil, err
	}
	return api.DeleteSession204Response{}, nil
}

// ReanalyzeSession re-runs the audit; a missing body keeps the previous settings.
func (s *Server) ReanalyzeSession(ctx context.Context, req api.ReanalyzeSessionRequestObject) (api.ReanalyzeSessionResponseObject, error) {
	var body api.ReanalyzeRequest
	if req.Body != nil {
		body = *req.Body
	}
	sess, err := s.sessions.Reanalyze(ctx, req.Id, body.Settings)
	if err != nil {
		return nil, err
	}
	return api.ReanalyzeSession200JSONResponse(sess.View()), nil
}

func (s *Server) PostSessionKey(ctx context.Context, req api.PostSessionKeyRequestObject) (api.PostSessionKeyResponseObject, error) {
	sess, err := s.sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}
	handled := sess.Navigator().HandleKey(navigator.KeyEvent{Key: req.Body.Key, Editable: req.Body.Editable})
	return api.PostSessionKey200JSONResponse{Handled: handled, Session: sess.View()}, nil
}

// PostSessionAction applies a navigator action. The advice action answers while the request
// is still loading unless wait is set, which blocks until advice settles or the timeout passes.
func (s *Server) PostSessionAction(ctx context.Context, req api.PostSessionActionRequestObject) (api.PostSessionActionResponseObject, error) {
	sess, err := s.sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}
	nav := sess.Navigator()
	switch req.Action {
	case api.SessionActionNext:
		nav.Next()
	case api.SessionActionPrev:
		nav.Prev()
	case api.SessionActionDismiss:
		nav.DismissCurrent()
	case api.SessionActionFocus:
		nav.ToggleFocusMode()
	case api.SessionActionHeatmap:
		nav.ToggleHeatmapMode()
	case api.SessionActionAdvice:
		if err := requestAdvice(ctx, nav, req.Params); err != nil {
			return nil, err
		}
	default:
		return nil, badRequest(fmt.Errorf("unknown action %q", req.Action))
	}
	return api.PostSessionAction200JSONResponse(sess.View()), nil
}

func requestAdvice(ctx context.Context, nav *navigator.Navigator, params api.PostSessionActionParams) error {
	// The fetch outlives this request unless the caller waits for it.
	done := nav.RequestAdvice(context.WithoutCancel(ctx))
	if params.Wait == nil || !*params.Wait {
		return nil
	}
	seconds := defaultWaitSeconds
	if params.Timeout != nil && *params.Timeout > 0 {
		seconds = *params.Timeout
	}
	select {
	case <-done:
	case <-time.After(time.Duration(seconds) * time.Second):
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (s *Server) SelectIndicator(ctx context.Context, req api.SelectIndicatorRequestObject) (api.SelectIndicatorResponseObject, error) {
	sess, err := s.sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}
	if !sess.Navigator().SelectIndicator(req.Index) {
		return api.SelectIndicator409JSONResponse{Error: "heatmap is off or indicator out of range"}, nil
	}
	return api.SelectIndicator200JSONResponse(sess.View()), nil
}

func (s *Server) SetSessionTheme(ctx context.Context, req api.SetSessionThemeRequestObject) (api.SetSessionThemeResponseObject, error) {
	sess, err := s.sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}
	t, err := navigator.ParseTheme(req.Body.Theme)
	if err != nil {
		return nil, badRequest(err)
	}
	sess.Navigator().SetTheme(t)
	return api.SetSessionTheme200JSONResponse(sess.View()), nil
}

// SetSessionViewport resizes and scrolls the session viewport; zero sizes keep the current size.
func (s *Server) SetSessionViewport(ctx context.Context, req api.SetSessionViewportRequestObject) (api.SetSessionViewportResponseObject, error) {
	sess, err := s.sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}
	vp := sess.Viewport()
	width, height := vp.Size()
	if req.Body.Width > 0 {
		width = req.Body.Width
	}
	if req.Body.Height > 0 {
		height = req.Body.Height
	}
	vp.Resize(width, height)
	vp.Scroll(req.Body.ScrollX, req.Body.ScrollY)
	return api.SetSessionViewport200JSONResponse(sess.View()), nil
}

func (s *Server) GetSessionSelector(ctx context.Context, req api.GetSessionSelectorRequestObject) (api.GetSessionSelectorResponseObject, error) {
	sess, err := s.sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetSessionSelector200JSONResponse{Selector: sess.Navigator().CopySelector()}, nil
}
