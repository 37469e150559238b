package handler

import (
	"net/http"
	"strconv"

	"mihrab/internal/delivery/http/response"
	"mihrab/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PrayerHandlerParams holds dependencies for PrayerHandler, injected by Fx.
type PrayerHandlerParams struct {
	fx.In

	PrayerUC usecase.PrayerUsecase
}

// PrayerHandler holds dependencies for prayer time handlers
type PrayerHandler struct {
	prayerUC usecase.PrayerUsecase
}

// NewPrayerHandler is the constructor for PrayerHandler
func NewPrayerHandler(params PrayerHandlerParams) *PrayerHandler {
	return &PrayerHandler{
		prayerUC: params.PrayerUC,
	}
}

// GetToday handles retrieving today's prayer times for the given coordinates
func (h *PrayerHandler) GetToday(c echo.Context) error {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", err.Error())
	}

	times, err := h.prayerUC.GetTodayTimes(c.Request().Context(), lat, lon)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, times, "Prayer times retrieved successfully")
}

// parseCoordinates reads and bounds-checks the lat/lon query parameters.
func parseCoordinates(c echo.Context) (float64, float64, error) {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, errInvalidLatitude
	}

	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		return 0, 0, errInvalidLongitude
	}

	return lat, lon, nil
}
