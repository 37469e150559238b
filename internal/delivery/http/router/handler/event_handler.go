package handler

import (
	"net/http"
	"time"

	"mihrab/internal/delivery/http/response"
	"mihrab/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
}

// EventHandler holds dependencies for calendar event handlers
type EventHandler struct {
	eventUC usecase.EventUsecase
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
	}
}

// CreateEventRequest represents the request body for creating an event
type CreateEventRequest struct {
	Name               string     `json:"name" validate:"required"`
	Description        string     `json:"description"`
	DateHijri          string     `json:"date_hijri" validate:"required"`
	EstimatedGregorian *time.Time `json:"estimated_gregorian"`
}

// UpdateEventRequest represents a partial event update; absent fields are
// left unchanged.
type UpdateEventRequest struct {
	Name               *string    `json:"name"`
	Description        *string    `json:"description"`
	DateHijri          *string    `json:"date_hijri"`
	EstimatedGregorian *time.Time `json:"estimated_gregorian"`
}

// Create handles creating a calendar event
func (h *EventHandler) Create(c echo.Context) error {
	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	event, err := h.eventUC.Create(c.Request().Context(), &usecase.EventInput{
		Name:               &req.Name,
		Description:        &req.Description,
		DateHijri:          &req.DateHijri,
		EstimatedGregorian: req.EstimatedGregorian,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, event, "Event created successfully")
}

// List handles retrieving every event
func (h *EventHandler) List(c echo.Context) error {
	if c.QueryParam("upcoming") == "true" {
		events, err := h.eventUC.ListUpcoming(c.Request().Context())
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, events, "Upcoming events retrieved successfully")
	}

	events, err := h.eventUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events, "Events retrieved successfully")
}

// Get handles retrieving one event by ID
func (h *EventHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	event, err := h.eventUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event, "Event retrieved successfully")
}

// Update handles a partial event update
func (h *EventHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	event, err := h.eventUC.Update(c.Request().Context(), id, &usecase.EventInput{
		Name:               req.Name,
		Description:        req.Description,
		DateHijri:          req.DateHijri,
		EstimatedGregorian: req.EstimatedGregorian,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event, "Event updated successfully")
}

// Delete handles removing an event
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	if err := h.eventUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Event deleted successfully")
}
