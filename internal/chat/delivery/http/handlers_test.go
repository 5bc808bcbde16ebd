package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tablebooker/internal/chat"
	"tablebooker/internal/model"
	"tablebooker/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	handleFunc func(ctx context.Context, sc model.Scope, in chat.HandleMessageInput) (chat.HandleMessageOutput, error)
	getFunc    func(ctx context.Context, sc model.Scope) (chat.SessionOutput, error)
}

func (m *mockUseCase) HandleMessage(ctx context.Context, sc model.Scope, in chat.HandleMessageInput) (chat.HandleMessageOutput, error) {
	if m.handleFunc == nil {
		return chat.HandleMessageOutput{SessionID: sc.SessionID, Reply: "ok"}, nil
	}
	return m.handleFunc(ctx, sc, in)
}

func (m *mockUseCase) GetSession(ctx context.Context, sc model.Scope) (chat.SessionOutput, error) {
	if m.getFunc == nil {
		return chat.SessionOutput{ID: sc.SessionID}, nil
	}
	return m.getFunc(ctx, sc)
}

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&mockLogger{}, uc)
	r := gin.New()
	r.POST("/api/v1/chat/messages", h.SendMessage)
	r.GET("/api/v1/chat/sessions/:id", h.GetSession)
	return r
}

func postMessage(t *testing.T, r *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return envelope.Data
}

func TestSendMessageMintsSessionID(t *testing.T) {
	var gotScope model.Scope
	uc := &mockUseCase{
		handleFunc: func(ctx context.Context, sc model.Scope, in chat.HandleMessageInput) (chat.HandleMessageOutput, error) {
			gotScope = sc
			return chat.HandleMessageOutput{
				SessionID:          sc.SessionID,
				Reply:              "hello",
				SelectedRestaurant: "PizzaPalace",
				TurnCount:          1,
			}, nil
		},
	}
	r := newTestRouter(uc)

	w := postMessage(t, r, map[string]any{"message": "hi"})
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want %d; body = %s", w.Code, http.StatusOK, w.Body.String())
	}
	if gotScope.SessionID == "" {
		t.Fatal("blank session_id should be replaced with a generated one")
	}

	data := dataOf(t, w)
	if data["session_id"] != gotScope.SessionID {
		t.Fatalf("session_id = %v, want %v", data["session_id"], gotScope.SessionID)
	}

	state, ok := data["conversation_state"].(map[string]any)
	if !ok {
		t.Fatalf("conversation_state missing from response: %v", data)
	}
	if state["current_restaurant"] != "PizzaPalace" {
		t.Fatalf("current_restaurant = %v, want PizzaPalace", state["current_restaurant"])
	}
	if state["message_count"] != float64(1) {
		t.Fatalf("message_count = %v, want 1", state["message_count"])
	}
}

func TestSendMessageKeepsClientSessionID(t *testing.T) {
	var gotScope model.Scope
	uc := &mockUseCase{
		handleFunc: func(ctx context.Context, sc model.Scope, in chat.HandleMessageInput) (chat.HandleMessageOutput, error) {
			gotScope = sc
			return chat.HandleMessageOutput{SessionID: sc.SessionID}, nil
		},
	}
	r := newTestRouter(uc)

	w := postMessage(t, r, map[string]any{"session_id": "sess-42", "message": "hi"})
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want %d", w.Code, http.StatusOK)
	}
	if gotScope.SessionID != "sess-42" {
		t.Fatalf("SessionID = %q, want %q", gotScope.SessionID, "sess-42")
	}
}

func TestSendMessageRejectsMissingMessage(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := postMessage(t, r, map[string]any{"session_id": "sess-42"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSendMessageMapsEmptyMessageError(t *testing.T) {
	uc := &mockUseCase{
		handleFunc: func(ctx context.Context, sc model.Scope, in chat.HandleMessageInput) (chat.HandleMessageOutput, error) {
			return chat.HandleMessageOutput{}, chat.ErrEmptyMessage
		},
	}
	r := newTestRouter(uc)

	w := postMessage(t, r, map[string]any{"message": "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	uc := &mockUseCase{
		getFunc: func(ctx context.Context, sc model.Scope) (chat.SessionOutput, error) {
			return chat.SessionOutput{}, chat.ErrSessionNotFound
		},
	}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/sessions/nope", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("code = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestGetSessionOK(t *testing.T) {
	uc := &mockUseCase{
		getFunc: func(ctx context.Context, sc model.Scope) (chat.SessionOutput, error) {
			return chat.SessionOutput{
				ID:            sc.SessionID,
				TurnCount:     3,
				LastReference: "ABC1234",
				CreatedAt:     time.Date(2026, time.March, 11, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/sessions/sess-42", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want %d", w.Code, http.StatusOK)
	}
	data := dataOf(t, w)
	if data["id"] != "sess-42" {
		t.Fatalf("id = %v, want sess-42", data["id"])
	}
	if data["turn_count"] != float64(3) {
		t.Fatalf("turn_count = %v, want 3", data["turn_count"])
	}
	if data["last_reference"] != "ABC1234" {
		t.Fatalf("last_reference = %v, want ABC1234", data["last_reference"])
	}

	created, ok := data["created_at"].(string)
	if !ok {
		t.Fatalf("created_at missing from response: %v", data)
	}
	if _, err := time.Parse(response.DateTimeFormat, created); err != nil {
		t.Errorf("created_at %q not in the wire datetime format: %v", created, err)
	}
}
