package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/elijahgives/webhook-client/internal/adapters/discord"
	"github.com/elijahgives/webhook-client/internal/mocks"
	"github.com/elijahgives/webhook-client/internal/usecase"
	"github.com/elijahgives/webhook-client/pkg/config"
	"github.com/elijahgives/webhook-client/pkg/domain"
	"github.com/elijahgives/webhook-client/pkg/logger"
)

// stubSender records raw messages instead of posting them
type stubSender struct {
	messages []discord.WebhookMessage
	err      error
}

func (s *stubSender) SendMessage(ctx context.Context, message discord.WebhookMessage) error {
	s.messages = append(s.messages, message)
	return s.err
}

func newTestServer(t *testing.T, notifier domain.WebhookNotifier, sender RawMessageSender) *Server {
	t.Helper()
	log := logger.New("error", "test")
	handler := NewHandler(
		log,
		usecase.NewSendAnnouncementUseCase(notifier, log),
		usecase.NewSendAlertUseCase(notifier, log),
		sender,
		notifier,
	)
	cfg := &config.Config{HTTP: config.HTTPConfig{Host: "127.0.0.1", Port: 0}}
	return NewServer(cfg, log, handler)
}

func TestHandleAnnouncement_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotifier := mocks.NewMockWebhookNotifier(ctrl)
	mockNotifier.EXPECT().
		SendAnnouncement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, announcement *domain.Announcement) error {
			assert.Equal(t, "Release v1.0.0", announcement.Title)
			require.Len(t, announcement.Fields, 1)
			assert.Equal(t, "Downloads", announcement.Fields[0].Label)
			return nil
		})

	server := newTestServer(t, mockNotifier, &stubSender{})

	body := `{
		"title": "Release v1.0.0",
		"body": "First stable release.",
		"fields": [{"label": "Downloads", "value": "https://example.com/dl", "inline": true}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/announcements", strings.NewReader(body))
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestHandleAnnouncement_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := newTestServer(t, mocks.NewMockWebhookNotifier(ctrl), &stubSender{})

	req := httptest.NewRequest(http.MethodPost, "/v1/announcements", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnnouncement_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := newTestServer(t, mocks.NewMockWebhookNotifier(ctrl), &stubSender{})

	req := httptest.NewRequest(http.MethodPost, "/v1/announcements", strings.NewReader(`{"title":"no body"}`))
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAlert_UpstreamRejectionSurfacesStatusAndBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotifier := mocks.NewMockWebhookNotifier(ctrl)
	mockNotifier.EXPECT().
		SendAlert(gomock.Any(), gomock.Any()).
		Return(&discord.APIError{StatusCode: 400, Body: `{"embeds":["0"]}`})

	server := newTestServer(t, mockNotifier, &stubSender{})

	body := `{"severity": "warning", "title": "High latency", "message": "p99 above threshold"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/alerts", strings.NewReader(body))
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp struct {
		Error  string `json:"error"`
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 400, resp.Status)
	assert.Equal(t, `{"embeds":["0"]}`, resp.Detail)
}

func TestHandleRawMessage_ForwardsPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := &stubSender{}
	server := newTestServer(t, mocks.NewMockWebhookNotifier(ctrl), sender)

	body := `{"content": "hi", "embeds": [{"title": "T"}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, sender.messages, 1)
	assert.Equal(t, "hi", sender.messages[0].Content)
	require.Len(t, sender.messages[0].Embeds, 1)
	assert.Equal(t, "T", sender.messages[0].Embeds[0].Title)
}

func TestHandleRawMessage_RejectsOverLimitPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := &stubSender{}
	server := newTestServer(t, mocks.NewMockWebhookNotifier(ctrl), sender)

	var payload struct {
		Embeds []discord.Embed `json:"embeds"`
	}
	payload.Embeds = make([]discord.Embed, discord.MaxEmbedsPerMessage+1)
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/messages", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, sender.messages)
}

func TestHandleHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotifier := mocks.NewMockWebhookNotifier(ctrl)
	mockNotifier.EXPECT().IsHealthy(gomock.Any()).Return(nil)

	server := newTestServer(t, mockNotifier, &stubSender{})

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleHealth_Unhealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotifier := mocks.NewMockWebhookNotifier(ctrl)
	mockNotifier.EXPECT().IsHealthy(gomock.Any()).Return(errors.New("webhook URL is invalid or revoked"))

	server := newTestServer(t, mockNotifier, &stubSender{})

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
