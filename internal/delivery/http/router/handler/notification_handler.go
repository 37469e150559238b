package handler

import (
	"net/http"
	"time"

	"mihrab/internal/delivery/http/response"
	"mihrab/internal/domain/entity"
	"mihrab/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
}

// NotificationHandler holds dependencies for broadcast notification handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
	}
}

// SendNotificationRequest represents the request body for a broadcast. An
// absent due_at means send immediately.
type SendNotificationRequest struct {
	Kind  string         `json:"kind" validate:"required,oneof=EVENT GENERAL"`
	Title string         `json:"title" validate:"required"`
	Body  string         `json:"body" validate:"required"`
	Meta  map[string]any `json:"meta"`
	DueAt *time.Time     `json:"due_at"`
}

// Send handles broadcasting a notification immediately or queueing it
func (h *NotificationHandler) Send(c echo.Context) error {
	var req SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.NotificationInput{
		Kind:  entity.NotificationKind(req.Kind),
		Title: req.Title,
		Body:  req.Body,
		Meta:  req.Meta,
	}

	if req.DueAt == nil {
		if err := h.notificationUC.SendNow(c.Request().Context(), input); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, nil, "Notification sent successfully")
	}

	scheduled, err := h.notificationUC.Schedule(c.Request().Context(), input, *req.DueAt)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, scheduled, "Notification scheduled successfully")
}

// ListScheduled handles retrieving queued notifications not yet due
func (h *NotificationHandler) ListScheduled(c echo.Context) error {
	scheduled, err := h.notificationUC.ListScheduled(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, scheduled, "Scheduled notifications retrieved successfully")
}

// DeleteScheduled handles removing a queued notification
func (h *NotificationHandler) DeleteScheduled(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notificationUC.DeleteScheduled(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Scheduled notification deleted successfully")
}
