package main

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"stackwords/internal/puzzle"
	"stackwords/internal/types"
)

func boolPtr(b bool) *bool { return &b }

// testLevels lays level 1 out as
//
//	col 0: К(t1) Т(t3) Е(t5)
//	col 1: О(t2) П(t4) С(t6)
func testLevels() []types.LevelConfig {
	linear := types.Difficulty{Order: types.PlacementLinear, Letters: types.LetterSortDirect}
	uncolored := linear
	uncolored.Colored = boolPtr(false)
	return []types.LevelConfig{
		{ID: 1, Cols: 2, Rows: 3, Words: []string{"кот", "пес"}, Difficulty: linear},
		{ID: 2, Cols: 3, Rows: 2, Words: []string{"сыр"}, Difficulty: uncolored},
	}
}

// newTestApp returns an app whose tasks complete as soon as they are scheduled.
func newTestApp() *App {
	gin.SetMode(gin.TestMode)
	cfg := DefaultConfig()
	cfg.Game.Seed = 1
	cfg.Limits.RateLimitRPS = 1000
	cfg.Limits.RateLimitBurst = 1000
	app := newApp(cfg, testLevels(), puzzle.NewDictionary([]string{"кот", "пес", "коп", "сыр"}))
	app.afterFunc = func(_ time.Duration, f func()) { f() }
	return app
}

type testClient struct {
	router *gin.Engine
	cookie *http.Cookie
}

func newTestClient(app *App) *testClient {
	return &testClient{router: app.setupRouter()}
}

func (tc *testClient) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.cookie != nil {
		req.AddCookie(tc.cookie)
	}
	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == SessionCookieName {
			tc.cookie = ck
		}
	}
	return w
}

func (tc *testClient) command(t *testing.T, path, body string) CommandResponse {
	t.Helper()
	w := tc.do(http.MethodPost, path, body)
	if w.Code != http.StatusOK {
		t.Fatalf("POST %s returned status %d: %s", path, w.Code, w.Body.String())
	}
	var resp CommandResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal %s response: %v", path, err)
	}
	return resp
}

func (tc *testClient) state(t *testing.T) types.SessionView {
	t.Helper()
	w := tc.do(http.MethodGet, RouteState, "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s returned status %d", RouteState, w.Code)
	}
	var view types.SessionView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("Failed to unmarshal state: %v", err)
	}
	return view
}

func (tc *testClient) selectTiles(t *testing.T, ids ...string) {
	t.Helper()
	for _, id := range ids {
		if resp := tc.command(t, RouteSelect, `{"tileId":"`+id+`"}`); !resp.Accepted {
			t.Fatalf("select %s rejected", id)
		}
	}
}

func TestStateHandlerStartsSession(t *testing.T) {
	tc := newTestClient(newTestApp())
	view := tc.state(t)
	if tc.cookie == nil || len(tc.cookie.Value) < minSessionIDLen {
		t.Fatal("Expected a session cookie")
	}
	if view.LevelID != 1 || view.LevelCount != 2 || len(view.Columns) != 2 {
		t.Errorf("Unexpected state: level %d of %d, %d columns", view.LevelID, view.LevelCount, len(view.Columns))
	}
	if view.Columns[0][0].ID != "t1" || view.Columns[0][0].State != "active" || view.Columns[0][1].State != "blocked" {
		t.Errorf("Unexpected first column %+v", view.Columns[0])
	}
}

func TestFindWordFlow(t *testing.T) {
	tc := newTestClient(newTestApp())
	tc.selectTiles(t, "t1", "t2", "t3")

	resp := tc.command(t, RouteConfirm, "")
	if !resp.Accepted || !resp.State.Processing || resp.State.FoundCount != 1 {
		t.Fatalf("confirm = %+v", resp)
	}
	if resp.State.Columns[0][0].Highlight != "correct" {
		t.Errorf("highlight = %q, want correct", resp.State.Columns[0][0].Highlight)
	}

	view := tc.state(t)
	if view.Processing || len(view.Columns[0]) != 1 || len(view.Columns[1]) != 2 {
		t.Errorf("tiles not removed: processing=%v heights %d/%d", view.Processing, len(view.Columns[0]), len(view.Columns[1]))
	}
	if view.Words[0].Text != "КОТ" || !view.Words[0].Found {
		t.Errorf("word list = %+v", view.Words)
	}
}

func TestInvalidWordResets(t *testing.T) {
	tc := newTestClient(newTestApp())
	tc.selectTiles(t, "t1", "t2")
	resp := tc.command(t, RouteConfirm, "")
	if !resp.Accepted || resp.State.CurrentWord != "" || resp.State.Classification != "empty" {
		t.Errorf("reset = %+v", resp)
	}
}

func TestSelectRejectsBadBody(t *testing.T) {
	tc := newTestClient(newTestApp())
	for _, body := range []string{"{}", "not json"} {
		w := tc.do(http.MethodPost, RouteSelect, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("POST %s with %q returned status %d, want 400", RouteSelect, body, w.Code)
		}
	}
}

func TestSelectBlockedTile(t *testing.T) {
	tc := newTestClient(newTestApp())
	if resp := tc.command(t, RouteSelect, `{"tileId":"t3"}`); resp.Accepted {
		t.Error("selected a blocked tile")
	}
	tc.selectTiles(t, "t1", "t3")
	if resp := tc.command(t, RouteDeselect, `{"tileId":"t1"}`); resp.Accepted {
		t.Error("deselected a tile under another selected tile")
	}
	if resp := tc.command(t, RouteDeselect, `{"tileId":"t3"}`); !resp.Accepted || resp.State.CurrentWord != "К" {
		t.Errorf("deselect = %+v", resp)
	}
}

func TestCommandsBlockedWhileProcessing(t *testing.T) {
	app := newTestApp()
	var pending []func()
	var delays []time.Duration
	app.afterFunc = func(d time.Duration, f func()) {
		delays = append(delays, d)
		pending = append(pending, f)
	}
	tc := newTestClient(app)

	tc.selectTiles(t, "t1", "t2", "t4")
	if resp := tc.command(t, RouteConfirm, ""); !resp.Accepted || len(resp.State.HiddenWords) != 1 || resp.State.HiddenWords[0] != "КОП" {
		t.Fatalf("hidden word confirm = %+v", resp)
	}
	if len(delays) != 1 || delays[0] != puzzle.DefaultDelays.Hidden {
		t.Fatalf("scheduled delays = %v", delays)
	}

	for _, path := range []string{RouteHint, RouteRestart, RouteNextLevel} {
		if resp := tc.command(t, path, ""); resp.Accepted {
			t.Errorf("POST %s accepted while processing", path)
		}
	}
	if resp := tc.command(t, RouteSelect, `{"tileId":"t3"}`); resp.Accepted {
		t.Error("select accepted while processing")
	}

	pending[0]()
	view := tc.state(t)
	if view.Processing || view.CurrentWord != "" || len(view.Columns[0]) != 3 {
		t.Errorf("after hidden word: processing=%v word=%q", view.Processing, view.CurrentWord)
	}
}

func TestWinAndAdvance(t *testing.T) {
	tc := newTestClient(newTestApp())
	tc.selectTiles(t, "t1", "t2", "t3")
	tc.command(t, RouteConfirm, "")
	tc.selectTiles(t, "t4", "t5", "t6")
	tc.command(t, RouteConfirm, "")

	view := tc.state(t)
	if !view.Won || view.FoundCount != 2 || view.HintEnabled {
		t.Fatalf("won=%v found=%d hint=%v", view.Won, view.FoundCount, view.HintEnabled)
	}

	resp := tc.command(t, RouteNextLevel, "")
	if !resp.Accepted || resp.State.LevelIndex != 1 || resp.State.LevelID != 2 || resp.State.Won {
		t.Fatalf("next level = %+v", resp.State)
	}
	resp = tc.command(t, RouteNextLevel, "")
	if resp.State.LevelIndex != 0 || resp.State.Notice != puzzle.NoticeAllLevelsComplete {
		t.Errorf("wrap: index %d notice %q", resp.State.LevelIndex, resp.State.Notice)
	}
	if tc.state(t).Notice != "" {
		t.Error("notice shown twice")
	}
}

func TestHintHandler(t *testing.T) {
	tc := newTestClient(newTestApp())
	resp := tc.command(t, RouteHint, "")
	if !resp.Accepted || resp.Word != "КОТ" || !resp.State.Words[0].Revealed {
		t.Errorf("hint = %+v", resp)
	}
	resp = tc.command(t, RouteHint, "")
	if resp.Word != "ПЕС" || resp.State.HintEnabled {
		t.Errorf("second hint = %+v", resp)
	}
	if resp = tc.command(t, RouteHint, ""); resp.Accepted {
		t.Error("hint accepted with nothing left")
	}
}

func TestBonusColorsHandler(t *testing.T) {
	tc := newTestClient(newTestApp())
	if resp := tc.command(t, RouteBonusColors, ""); resp.Accepted || resp.State.BonusVisible {
		t.Error("bonus offered on a coloured level")
	}
	tc.command(t, RouteNextLevel, "")
	resp := tc.command(t, RouteBonusColors, "")
	if !resp.Accepted || !resp.State.Colored || resp.State.BonusEnabled {
		t.Errorf("bonus = %+v", resp.State)
	}
	if resp = tc.command(t, RouteBonusColors, ""); resp.Accepted {
		t.Error("bonus used twice")
	}
}

func TestRestartHandler(t *testing.T) {
	tc := newTestClient(newTestApp())
	tc.selectTiles(t, "t1", "t2", "t3")
	tc.command(t, RouteConfirm, "")

	resp := tc.command(t, RouteRestart, "")
	if !resp.Accepted || resp.State.FoundCount != 1 {
		t.Fatalf("restart = %+v", resp.State)
	}
	if n := len(resp.State.Columns[0]) + len(resp.State.Columns[1]); n != 3 {
		t.Errorf("restart left %d tiles, want 3", n)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	app := newTestApp()
	a, b := newTestClient(app), newTestClient(app)
	a.selectTiles(t, "t1")
	if view := b.state(t); view.CurrentWord != "" {
		t.Errorf("second session sees %q", view.CurrentWord)
	}
	if a.cookie.Value == b.cookie.Value {
		t.Error("sessions share a cookie")
	}
}

func TestHealthzHandler(t *testing.T) {
	tc := newTestClient(newTestApp())
	w := tc.do(http.MethodGet, RouteHealth, "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s returned status %d, want 200", RouteHealth, w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal health response: %v", err)
	}
	if resp["levels_loaded"] != float64(2) || resp["dictionary_words"] != float64(4) {
		t.Errorf("health = %v", resp)
	}
	if env, ok := resp["env"].(string); !ok || env != "development" {
		t.Errorf("env = %v", resp["env"])
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	app := newTestApp()
	app.RateLimitRPS = 1
	app.RateLimitBurst = 1
	tc := newTestClient(app)

	if w := tc.do(http.MethodPost, RouteHint, ""); w.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", w.Code)
	}
	if w := tc.do(http.MethodPost, RouteHint, ""); w.Code != http.StatusTooManyRequests {
		t.Errorf("second request: expected 429, got %d", w.Code)
	}
	if w := tc.do(http.MethodGet, RouteState, ""); w.Code != http.StatusOK {
		t.Errorf("state is not rate limited, got %d", w.Code)
	}
}

func TestResponseHeaders(t *testing.T) {
	router := newTestApp().setupRouter()
	req := httptest.NewRequest(http.MethodGet, RouteState, nil)
	req.Header.Set("X-Request-Id", "req-123")
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-Id"); got != "req-123" {
		t.Errorf("X-Request-Id = %q", got)
	}
	if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "no-store") {
		t.Errorf("Cache-Control = %q", cc)
	}
	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", w.Header().Get("Content-Encoding"))
	}
	gz, err := gzip.NewReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	var view types.SessionView
	if err := json.NewDecoder(gz).Decode(&view); err != nil {
		t.Fatalf("decode gzipped state: %v", err)
	}
	if view.LevelID != 1 {
		t.Errorf("LevelID = %d", view.LevelID)
	}
}
