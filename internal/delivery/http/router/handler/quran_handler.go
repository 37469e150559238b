package handler

import (
	"net/http"
	"strconv"

	"mihrab/internal/delivery/http/response"
	"mihrab/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QuranHandlerParams holds dependencies for QuranHandler, injected by Fx.
type QuranHandlerParams struct {
	fx.In

	QuranUC usecase.QuranUsecase
}

// QuranHandler holds dependencies for Quran text handlers
type QuranHandler struct {
	quranUC usecase.QuranUsecase
}

// NewQuranHandler is the constructor for QuranHandler
func NewQuranHandler(params QuranHandlerParams) *QuranHandler {
	return &QuranHandler{
		quranUC: params.QuranUC,
	}
}

// ListSurahs handles retrieving all surahs without their verses
func (h *QuranHandler) ListSurahs(c echo.Context) error {
	surahs, err := h.quranUC.ListSurahs(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, surahs, "Surahs retrieved successfully")
}

// GetSurah handles retrieving one surah with its verses
func (h *QuranHandler) GetSurah(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Surah ID must be a number")
	}

	surah, err := h.quranUC.GetSurah(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, surah, "Surah retrieved successfully")
}

// GetAyah handles retrieving a single verse
func (h *QuranHandler) GetAyah(c echo.Context) error {
	surahID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Surah ID must be a number")
	}

	ayahNumber, err := strconv.Atoi(c.Param("ayah"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Ayah number must be a number")
	}

	ayah, err := h.quranUC.GetAyah(c.Request().Context(), surahID, ayahNumber)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ayah, "Ayah retrieved successfully")
}
