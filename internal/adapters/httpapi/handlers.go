package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/elijahgives/webhook-client/internal/adapters/discord"
	"github.com/elijahgives/webhook-client/internal/usecase"
	"github.com/elijahgives/webhook-client/pkg/domain"
	"github.com/elijahgives/webhook-client/pkg/logger"
)

// RawMessageSender posts a fully-formed webhook message. Satisfied by
// *discord.WebhookClient.
type RawMessageSender interface {
	SendMessage(ctx context.Context, message discord.WebhookMessage) error
}

// Handler contains all relay HTTP handlers
type Handler struct {
	logger         logger.Logger
	announcementUC *usecase.SendAnnouncementUseCase
	alertUC        *usecase.SendAlertUseCase
	sender         RawMessageSender
	notifier       domain.WebhookNotifier
	validator      *discord.EmbedValidator
}

// NewHandler creates a new relay handler
func NewHandler(
	log logger.Logger,
	announcementUC *usecase.SendAnnouncementUseCase,
	alertUC *usecase.SendAlertUseCase,
	sender RawMessageSender,
	notifier domain.WebhookNotifier,
) *Handler {
	return &Handler{
		logger:         log,
		announcementUC: announcementUC,
		alertUC:        alertUC,
		sender:         sender,
		notifier:       notifier,
		validator:      discord.NewEmbedValidator(),
	}
}

// fieldRequest mirrors domain.Field on the wire
type fieldRequest struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// announcementRequest is the body accepted by POST /v1/announcements
type announcementRequest struct {
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Link        string            `json:"link,omitempty"`
	ImageURL    string            `json:"image_url,omitempty"`
	PublishedAt *time.Time        `json:"published_at,omitempty"`
	Fields      []fieldRequest    `json:"fields,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// alertRequest is the body accepted by POST /v1/alerts
type alertRequest struct {
	Severity  string         `json:"severity,omitempty"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Source    string         `json:"source,omitempty"`
	Timestamp *time.Time     `json:"timestamp,omitempty"`
	Fields    []fieldRequest `json:"fields,omitempty"`
}

// sendResponse is the success body returned by the relay
type sendResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

// errorResponse is the failure body returned by the relay
type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// HandleAnnouncement handles POST /v1/announcements
func (h *Handler) HandleAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req announcementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	cmd := &usecase.SendAnnouncementCommand{
		Title:    req.Title,
		Body:     req.Body,
		Link:     req.Link,
		ImageURL: req.ImageURL,
		Fields:   toDomainFields(req.Fields),
		Metadata: req.Metadata,
	}
	if req.PublishedAt != nil {
		cmd.PublishedAt = *req.PublishedAt
	}

	result, err := h.announcementUC.Execute(r.Context(), cmd)
	if err != nil {
		h.writeSendError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, sendResponse{
		Success: result.Success,
		Message: result.Message,
		SentAt:  result.SentAt,
	})
}

// HandleAlert handles POST /v1/alerts
func (h *Handler) HandleAlert(w http.ResponseWriter, r *http.Request) {
	var req alertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	cmd := &usecase.SendAlertCommand{
		Severity: req.Severity,
		Title:    req.Title,
		Message:  req.Message,
		Source:   req.Source,
		Fields:   toDomainFields(req.Fields),
	}
	if req.Timestamp != nil {
		cmd.Timestamp = *req.Timestamp
	}

	result, err := h.alertUC.Execute(r.Context(), cmd)
	if err != nil {
		h.writeSendError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, sendResponse{
		Success: result.Success,
		Message: result.Message,
		SentAt:  result.SentAt,
	})
}

// HandleRawMessage handles POST /v1/messages. The body is a raw webhook
// message; limits are validated here so garbage is rejected at the edge
// instead of by Discord.
func (h *Handler) HandleRawMessage(w http.ResponseWriter, r *http.Request) {
	var message discord.WebhookMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	if err := h.validator.ValidateMessage(message); err != nil {
		h.writeError(w, http.StatusBadRequest, "message rejected by validation", err)
		return
	}

	if err := h.sender.SendMessage(r.Context(), message); err != nil {
		h.writeSendError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, sendResponse{
		Success: true,
		Message: "message sent successfully",
		SentAt:  time.Now().UTC(),
	})
}

// HandleHealth handles GET /v1/health by probing the webhook endpoint
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.notifier.IsHealthy(r.Context()); err != nil {
		h.writeError(w, http.StatusServiceUnavailable, "webhook endpoint unhealthy", err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeSendError maps delivery errors to HTTP responses. Discord
// rejections surface as 502 with the upstream status and body attached.
func (h *Handler) writeSendError(w http.ResponseWriter, err error) {
	var apiErr *discord.APIError
	if errors.As(err, &apiErr) {
		h.writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:  "webhook rejected the message",
			Status: apiErr.StatusCode,
			Detail: apiErr.Body,
		})
		return
	}

	var validationErr *discord.ValidationError
	if errors.As(err, &validationErr) {
		h.writeError(w, http.StatusBadRequest, "message rejected by validation", err)
		return
	}

	// Validation failures from the use cases are caller errors
	if errors.Is(err, usecase.ErrInvalidCommand) {
		h.writeError(w, http.StatusBadRequest, "invalid request", err)
		return
	}

	h.writeError(w, http.StatusInternalServerError, "failed to deliver message", err)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string, err error) {
	h.logger.WithError(err).Warn(message)
	h.writeJSON(w, status, errorResponse{Error: message, Detail: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.WithError(err).Error("Failed to encode response")
	}
}

// toDomainFields converts wire fields to domain fields preserving order
func toDomainFields(fields []fieldRequest) []domain.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]domain.Field, len(fields))
	for i, f := range fields {
		out[i] = domain.Field{Label: f.Label, Value: f.Value, Inline: f.Inline}
	}
	return out
}
