package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const testReqID = "0123456789abcdef0123456789abcdef"

func newTestServer(t *testing.T) (*echo.Echo, *redis.Client, *int) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	calls := 0
	e := echo.New()
	e.Use(Idempotency(rdb, 5*time.Minute))
	e.POST("/groups", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusCreated, map[string]any{"n": calls})
	})
	e.GET("/groups", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, map[string]any{"n": calls})
	})
	return e, rdb, &calls
}

func doPost(e *echo.Echo, reqID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/groups", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if reqID != "" {
		req.Header.Set("X-Request-Id", reqID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	e, _, calls := newTestServer(t)

	first := doPost(e, testReqID, `{"title":"T"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("first status = %d, want 201", first.Code)
	}
	if *calls != 1 {
		t.Fatalf("calls = %d, want 1", *calls)
	}

	second := doPost(e, testReqID, `{"title":"T"}`)
	if second.Code != http.StatusCreated {
		t.Fatalf("replay status = %d, want 201", second.Code)
	}
	if *calls != 1 {
		t.Fatalf("calls = %d after replay, want handler untouched", *calls)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replay body %q != original %q", second.Body.String(), first.Body.String())
	}
}

func TestIdempotency_DifferentBodyIsConflict(t *testing.T) {
	e, _, _ := newTestServer(t)

	if rec := doPost(e, testReqID, `{"title":"T"}`); rec.Code != http.StatusCreated {
		t.Fatalf("first status = %d", rec.Code)
	}
	rec := doPost(e, testReqID, `{"title":"different"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestIdempotency_NoHeaderPassesThrough(t *testing.T) {
	e, _, calls := newTestServer(t)

	for i := 0; i < 3; i++ {
		if rec := doPost(e, "", `{"title":"T"}`); rec.Code != http.StatusCreated {
			t.Fatalf("status = %d", rec.Code)
		}
	}
	if *calls != 3 {
		t.Fatalf("calls = %d, want every request processed", *calls)
	}
}

func TestIdempotency_GetBypassesGuard(t *testing.T) {
	e, _, calls := newTestServer(t)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/groups", nil)
		req.Header.Set("X-Request-Id", testReqID)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
	}
	if *calls != 2 {
		t.Fatalf("calls = %d, want GETs unguarded", *calls)
	}
}

func TestIdempotency_BadRequestIDFormat(t *testing.T) {
	e, _, calls := newTestServer(t)

	rec := doPost(e, "not-a-valid-id", `{"title":"T"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if *calls != 0 {
		t.Fatalf("calls = %d, handler must not run", *calls)
	}
}

func TestIdempotency_InProgressIsConflict(t *testing.T) {
	e, rdb, _ := newTestServer(t)

	// simulate a first attempt still holding the provisional lock
	key := buildKey(http.MethodPost, "/groups", testReqID)
	entry := idempEntry{InProgress: true, BodySHA256: bodyHash([]byte(`{"title":"T"}`)), RequestID: testReqID}
	ok, err := provisionalSet(context.Background(), rdb, key, entry)
	if err != nil || !ok {
		t.Fatalf("provisionalSet: ok=%v err=%v", ok, err)
	}

	rec := doPost(e, testReqID, `{"title":"T"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestIdempotency_KeysAreScopedByRoute(t *testing.T) {
	e, _, calls := newTestServer(t)
	e.POST("/other", func(c echo.Context) error {
		*calls = *calls + 1
		return c.JSON(http.StatusCreated, map[string]any{"route": "other"})
	})

	if rec := doPost(e, testReqID, `{}`); rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	req := httptest.NewRequest(http.MethodPost, "/other", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Request-Id", testReqID)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, same id on a different route must not collide", rec.Code)
	}
	if *calls != 2 {
		t.Fatalf("calls = %d, want both handlers invoked", *calls)
	}
}

func TestValidReqID(t *testing.T) {
	tests := []struct {
		id string
		ok bool
	}{
		{"0123456789abcdef0123456789abcdef", true},
		{"123e4567-e89b-12d3-a456-426614174000", true},
		{"123E4567-E89B-12D3-A456-426614174000", true},
		{"short", false},
		{"0123456789abcdef0123456789abcdeg", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.id), func(t *testing.T) {
			if got := validReqID(tt.id); got != tt.ok {
				t.Fatalf("validReqID(%q) = %v, want %v", tt.id, got, tt.ok)
			}
		})
	}
}
