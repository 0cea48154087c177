package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"supportchat/internal/domain/chat"
	"supportchat/internal/interfaces/httpserver/handlers"
	"supportchat/internal/utils/platformerrors"
)

// MockChatService is a mock implementation of the chat service for testing.
type MockChatService struct {
	SubmitMessageFunc func(ctx context.Context, text string, sessionID string) (string, string, error)
	GetHistoryFunc    func(ctx context.Context, sessionID string) ([]chat.Message, error)
}

func (m *MockChatService) SubmitMessage(ctx context.Context, text string, sessionID string) (string, string, error) {
	if m.SubmitMessageFunc != nil {
		return m.SubmitMessageFunc(ctx, text, sessionID)
	}
	return "", "", nil
}

func (m *MockChatService) GetHistory(ctx context.Context, sessionID string) ([]chat.Message, error) {
	if m.GetHistoryFunc != nil {
		return m.GetHistoryFunc(ctx, sessionID)
	}
	return nil, nil
}

func setupChatTestRouter(handler *handlers.ChatHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/chat")
	{
		group.POST("/message", handler.SubmitMessage)
		group.GET("/history/:session_id", handler.GetHistory)
	}
	return r
}

func postMessage(router *gin.Engine, payload string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/chat/message", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatHandler_SubmitMessage(t *testing.T) {
	mockService := &MockChatService{
		SubmitMessageFunc: func(ctx context.Context, text string, sessionID string) (string, string, error) {
			if text != "do you ship to Canada?" {
				t.Errorf("Expected message passed through, got %q", text)
			}
			if sessionID != "" {
				t.Errorf("Expected empty session ID, got %q", sessionID)
			}
			return "yes we do", "7", nil
		},
	}

	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler)

	w := postMessage(router, `{"message": "do you ship to Canada?"}`)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["reply"] != "yes we do" {
		t.Errorf("Expected reply 'yes we do', got %v", response["reply"])
	}
	if response["sessionId"] != "7" {
		t.Errorf("Expected sessionId '7', got %v", response["sessionId"])
	}
}

func TestChatHandler_SubmitMessage_EmptyBody(t *testing.T) {
	submitCalled := false
	mockService := &MockChatService{
		SubmitMessageFunc: func(ctx context.Context, text string, sessionID string) (string, string, error) {
			submitCalled = true
			return "", "", nil
		},
	}

	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler)

	w := postMessage(router, `{}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if submitCalled {
		t.Error("Expected service not to be called for invalid body")
	}
}

func TestChatHandler_SubmitMessage_StatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			"validation",
			platformerrors.NewError(context.Background(), platformerrors.LayerDomain,
				platformerrors.ErrorTypeValidation, "Message is too long", nil, "test-validation"),
			http.StatusBadRequest,
		},
		{
			"session not found",
			platformerrors.NewError(context.Background(), platformerrors.LayerDomain,
				platformerrors.ErrorTypeNotFound, "Session not found", nil, "test-not-found"),
			http.StatusNotFound,
		},
		{
			"provider unavailable",
			platformerrors.NewError(context.Background(), platformerrors.LayerDomain,
				platformerrors.ErrorTypeUpstreamUnavailable, "AI service temporarily unavailable. Please try again later.", nil, "test-unavailable"),
			http.StatusServiceUnavailable,
		},
		{
			"database error",
			platformerrors.NewError(context.Background(), platformerrors.LayerRepository,
				platformerrors.ErrorTypeDatabaseError, "failed to append message", nil, "test-db"),
			http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockChatService{
				SubmitMessageFunc: func(ctx context.Context, text string, sessionID string) (string, string, error) {
					return "", "", tc.err
				},
			}

			handler := handlers.NewChatHandler(mockService, zerolog.Nop())
			router := setupChatTestRouter(handler)

			w := postMessage(router, `{"message": "hello"}`)

			if w.Code != tc.wantStatus {
				t.Errorf("Expected status %d, got %d", tc.wantStatus, w.Code)
			}

			var response map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if response["error"] == "" {
				t.Error("Expected an error message in the body")
			}
		})
	}
}

func TestChatHandler_GetHistory(t *testing.T) {
	now := time.Now()
	mockService := &MockChatService{
		GetHistoryFunc: func(ctx context.Context, sessionID string) ([]chat.Message, error) {
			if sessionID != "3" {
				t.Errorf("Expected session ID '3', got %q", sessionID)
			}
			return []chat.Message{
				{ID: 1, ConversationID: 3, Sender: chat.SenderUser, Text: "hi", CreatedAt: now},
				{ID: 2, ConversationID: 3, Sender: chat.SenderAssistant, Text: "hello!", CreatedAt: now},
			}, nil
		},
	}

	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler)

	req, _ := http.NewRequest("GET", "/chat/history/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Messages []map[string]interface{} `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(response.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(response.Messages))
	}
	if response.Messages[0]["sender"] != "user" {
		t.Errorf("Expected first sender 'user', got %v", response.Messages[0]["sender"])
	}
	if response.Messages[1]["text"] != "hello!" {
		t.Errorf("Expected second text 'hello!', got %v", response.Messages[1]["text"])
	}
}

func TestChatHandler_GetHistory_NotFound(t *testing.T) {
	mockService := &MockChatService{
		GetHistoryFunc: func(ctx context.Context, sessionID string) ([]chat.Message, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeNotFound, "Session not found", nil, "test-history-not-found")
		},
	}

	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler)

	req, _ := http.NewRequest("GET", "/chat/history/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}
