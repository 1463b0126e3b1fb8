package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime"
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime/arithmetic"
	deliveryHTTP "github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime/delivery/http"
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime/keyword"
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime/usecase"
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/pkg/response"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any) {}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := &mockLogger{}
	uc := usecase.New(logger, keyword.New(), arithmetic.New())
	h := deliveryHTTP.New(logger, uc)

	r := gin.New()
	r.POST("/api/v1/parse", h.HandleParse)
	return r
}

func doParse(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleParse_Success(t *testing.T) {
	router := newTestRouter()

	rec := doParse(t, router, `{"text": "15 years ago", "base": "2024-05-01T12:00:00Z"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var body response.Resp
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}

	data, err := json.Marshal(body.Data)
	if err != nil {
		t.Fatalf("re-marshal data: %v", err)
	}
	var payload struct {
		Plugin string                  `json:"plugin"`
		Tokens []naturaltime.TimeToken `json:"tokens"`
		Result time.Time               `json:"result"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	if payload.Plugin != arithmetic.Key {
		t.Errorf("plugin = %q, want %q", payload.Plugin, arithmetic.Key)
	}
	if len(payload.Tokens) != 1 || payload.Tokens[0].Magnitude != "-15" {
		t.Errorf("tokens = %+v, want one Years:-15 token", payload.Tokens)
	}
	want := time.Date(2009, 5, 1, 12, 0, 0, 0, time.UTC)
	if !payload.Result.Equal(want) {
		t.Errorf("result = %v, want %v", payload.Result, want)
	}
}

func TestHandleParse_KeywordExpression(t *testing.T) {
	router := newTestRouter()

	rec := doParse(t, router, `{"text": "tomorrow", "base": "2024-05-01T00:00:00Z"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestHandleParse_MissingText(t *testing.T) {
	router := newTestRouter()

	rec := doParse(t, router, `{"base": "2024-05-01T00:00:00Z"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleParse_UnrecognizedExpression(t *testing.T) {
	router := newTestRouter()

	rec := doParse(t, router, `{"text": "four eggs ago 15 days ago"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestHandleParse_MalformedBase(t *testing.T) {
	router := newTestRouter()

	rec := doParse(t, router, `{"text": "15 days", "base": "yesterday"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleParse_InvalidJSON(t *testing.T) {
	router := newTestRouter()

	rec := doParse(t, router, `{"text": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
