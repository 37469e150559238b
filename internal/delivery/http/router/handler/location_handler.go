package handler

import (
	"net/http"

	"mihrab/internal/delivery/http/response"
	"mihrab/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	errInvalidLatitude  = errors.New("lat must be a number between -90 and 90")
	errInvalidLongitude = errors.New("lon must be a number between -180 and 180")
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
}

// LocationHandler holds dependencies for geographic lookup handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
	}
}

// ReverseGeocode handles resolving coordinates to address data
func (h *LocationHandler) ReverseGeocode(c echo.Context) error {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", err.Error())
	}

	location, err := h.locationUC.ReverseGeocode(c.Request().Context(), lat, lon)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Location retrieved successfully")
}

// Qibla handles the qibla bearing and distance lookup
func (h *LocationHandler) Qibla(c echo.Context) error {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", err.Error())
	}

	return response.Success(c, http.StatusOK, h.locationUC.Qibla(lat, lon), "Qibla direction calculated successfully")
}
