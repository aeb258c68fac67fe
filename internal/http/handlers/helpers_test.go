package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/roster-filter-service/internal/app/sessions"
	"github.com/preston-bernstein/roster-filter-service/internal/catalog"
	"github.com/preston-bernstein/roster-filter-service/internal/poller"
	"github.com/preston-bernstein/roster-filter-service/internal/testutil"
)

func newTestHandler(t *testing.T, statusFn func() poller.Status) *Handler {
	t.Helper()
	cat := catalog.Default()
	svc := testutil.NewRosterService(testutil.SampleRosters())
	mgr := sessions.NewManager(cat.DefaultState, 0, nil, nil)
	return NewHandler(svc, mgr, cat, nil, statusFn)
}

// withID attaches a chi route context carrying the session id.
func withID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func serveSession(h http.HandlerFunc, method, id string, body io.Reader) *httptest.ResponseRecorder {
	req := withID(httptest.NewRequest(method, "/sessions/"+id, body), id)
	return testutil.ServeRequest(h, req)
}

func playerNames(view sessionResponse) []string {
	out := make([]string, 0, len(view.Players))
	for _, p := range view.Players {
		out = append(out, p.Name)
	}
	return out
}
