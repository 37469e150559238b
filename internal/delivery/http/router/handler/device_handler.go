package handler

import (
	"log/slog"
	"net/http"

	"mihrab/internal/delivery/http/response"
	"mihrab/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC    usecase.DeviceUsecase
	SchedulerUC usecase.SchedulerUsecase
	Logger      *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC    usecase.DeviceUsecase
	schedulerUC usecase.SchedulerUsecase
	logger      *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC:    params.DeviceUC,
		schedulerUC: params.SchedulerUC,
		logger:      params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	Token     string   `json:"token" validate:"required"`
	DeviceID  string   `json:"device_id"`
	Platform  string   `json:"platform" validate:"omitempty,oneof=ios android"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
	Timezone  string   `json:"timezone"`
}

// UpdatePreferencesRequest represents the request body for a partial
// preference update; absent fields are left unchanged.
type UpdatePreferencesRequest struct {
	EnablePrayerNotifications *bool            `json:"enable_prayer_notifications"`
	EnableEventNotifications  *bool            `json:"enable_event_notifications"`
	NotifyBeforeMinutes       *int             `json:"notify_before_minutes" validate:"omitempty,min=0,max=60"`
	Latitude                  *float64         `json:"latitude" validate:"omitempty,latitude"`
	Longitude                 *float64         `json:"longitude" validate:"omitempty,longitude"`
	Timezone                  *string          `json:"timezone"`
	EnabledPrayers            *map[string]bool `json:"enabled_prayers"`
}

// Register handles device registration. Registration immediately schedules
// today's remaining reminders so a fresh install gets its first azan without
// waiting for the daily recompute.
func (h *DeviceHandler) Register(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.Register(c.Request().Context(), &usecase.RegisterDeviceInput{
		Token:     req.Token,
		DeviceID:  req.DeviceID,
		Platform:  req.Platform,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timezone:  req.Timezone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if device.EnablePrayerNotifications && device.HasCoordinates() {
		if _, err := h.schedulerUC.ScheduleForDevice(c.Request().Context(), device); err != nil {
			h.logger.Warn("Failed to schedule reminders after registration",
				slog.String("token", device.Token),
				slog.Any("error", err))
		}
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// Get handles retrieving a device registration by token
func (h *DeviceHandler) Get(c echo.Context) error {
	device, err := h.deviceUC.GetByToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device, "Device retrieved successfully")
}

// UpdatePreferences handles a partial preference update. Changed preferences
// reschedule today's remaining reminders; disabling prayer notifications
// cancels the pending ones instead.
func (h *DeviceHandler) UpdatePreferences(c echo.Context) error {
	var req UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.UpdatePreferences(c.Request().Context(), c.Param("token"), &usecase.UpdatePreferencesInput{
		EnablePrayerNotifications: req.EnablePrayerNotifications,
		EnableEventNotifications:  req.EnableEventNotifications,
		NotifyBeforeMinutes:       req.NotifyBeforeMinutes,
		Latitude:                  req.Latitude,
		Longitude:                 req.Longitude,
		Timezone:                  req.Timezone,
		EnabledPrayers:            req.EnabledPrayers,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !device.EnablePrayerNotifications {
		// Opting out also stops today's pending reminders from firing.
		if _, err := h.schedulerUC.CancelForDevice(c.Request().Context(), device.ID); err != nil {
			h.logger.Warn("Failed to cancel reminders after preference update",
				slog.String("token", device.Token),
				slog.Any("error", err))
		}
	} else if device.HasCoordinates() {
		if _, err := h.schedulerUC.ScheduleForDevice(c.Request().Context(), device); err != nil {
			h.logger.Warn("Failed to reschedule reminders after preference update",
				slog.String("token", device.Token),
				slog.Any("error", err))
		}
	}

	return response.Success(c, http.StatusOK, device, "Preferences updated successfully")
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// Unregister handles removing a device registration
func (h *DeviceHandler) Unregister(c echo.Context) error {
	if err := h.deviceUC.Unregister(c.Request().Context(), c.Param("token")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device unregistered successfully")
}
