// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mihrab/internal/delivery/http/middleware"
	"mihrab/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler       *handler.DeviceHandler
	PrayerHandler       *handler.PrayerHandler
	QuranHandler        *handler.QuranHandler
	EventHandler        *handler.EventHandler
	NotificationHandler *handler.NotificationHandler
	LocationHandler     *handler.LocationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler       *handler.DeviceHandler
	prayerHandler       *handler.PrayerHandler
	quranHandler        *handler.QuranHandler
	eventHandler        *handler.EventHandler
	notificationHandler *handler.NotificationHandler
	locationHandler     *handler.LocationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:       params.DeviceHandler,
		prayerHandler:       params.PrayerHandler,
		quranHandler:        params.QuranHandler,
		eventHandler:        params.EventHandler,
		notificationHandler: params.NotificationHandler,
		locationHandler:     params.LocationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint, the only route outside the API key guard
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")
	api.Use(r.authMiddleware.RequireAPIKey)

	deviceGroup := api.Group("/devices")
	{
		deviceGroup.POST("", r.deviceHandler.Register)
		deviceGroup.GET("/:token", r.deviceHandler.Get)
		deviceGroup.PATCH("/:token/preferences", r.deviceHandler.UpdatePreferences)
		deviceGroup.DELETE("/:token", r.deviceHandler.Unregister)
	}

	api.GET("/prayer-times/today", r.prayerHandler.GetToday)

	quranGroup := api.Group("/quran")
	{
		quranGroup.GET("/surahs", r.quranHandler.ListSurahs)
		quranGroup.GET("/surahs/:id", r.quranHandler.GetSurah)
		quranGroup.GET("/surahs/:id/ayahs/:ayah", r.quranHandler.GetAyah)
	}

	eventGroup := api.Group("/events")
	{
		eventGroup.POST("", r.eventHandler.Create)
		eventGroup.GET("", r.eventHandler.List)
		eventGroup.GET("/:id", r.eventHandler.Get)
		eventGroup.PUT("/:id", r.eventHandler.Update)
		eventGroup.DELETE("/:id", r.eventHandler.Delete)
	}

	notificationGroup := api.Group("/notifications")
	{
		notificationGroup.POST("", r.notificationHandler.Send)
		notificationGroup.GET("/scheduled", r.notificationHandler.ListScheduled)
		notificationGroup.DELETE("/scheduled/:id", r.notificationHandler.DeleteScheduled)
	}

	locationGroup := api.Group("/location")
	{
		locationGroup.GET("/reverse", r.locationHandler.ReverseGeocode)
		locationGroup.GET("/qibla", r.locationHandler.Qibla)
	}
}
