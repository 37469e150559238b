package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mihrab/internal/delivery/http/validator"
	"mihrab/internal/domain/entity"
	mockUC "mihrab/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// deviceHandlerFixtures holds the handler under test and its mocked use cases.
type deviceHandlerFixtures struct {
	handler     *DeviceHandler
	deviceUC    *mockUC.MockDeviceUsecase
	schedulerUC *mockUC.MockSchedulerUsecase
}

func createTestDeviceHandler(t *testing.T) deviceHandlerFixtures {
	deviceUC := mockUC.NewMockDeviceUsecase(t)
	schedulerUC := mockUC.NewMockSchedulerUsecase(t)

	handler := &DeviceHandler{
		deviceUC:    deviceUC,
		schedulerUC: schedulerUC,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return deviceHandlerFixtures{
		handler:     handler,
		deviceUC:    deviceUC,
		schedulerUC: schedulerUC,
	}
}

// newPreferencesContext builds an echo context for a preference update on
// the given token with a JSON body.
func newPreferencesContext(body, token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/devices/"+token+"/preferences", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues(token)

	return c, rec
}

func testHandlerDevice(prayerEnabled bool) *entity.Device {
	lat := -6.2
	lon := 106.8

	return &entity.Device{
		ID:                        uuid.New(),
		Token:                     "fcm-token-1",
		Platform:                  "android",
		Latitude:                  &lat,
		Longitude:                 &lon,
		Timezone:                  "Asia/Jakarta",
		EnablePrayerNotifications: prayerEnabled,
		EnableEventNotifications:  true,
		NotifyBeforeMinutes:       10,
	}
}

func TestDeviceHandler_UpdatePreferences_DisablingPrayerCancelsPending(t *testing.T) {
	fx := createTestDeviceHandler(t)

	device := testHandlerDevice(false)
	c, rec := newPreferencesContext(`{"enable_prayer_notifications": false}`, device.Token)

	fx.deviceUC.EXPECT().
		UpdatePreferences(mock.Anything, device.Token, mock.Anything).
		Return(device, nil).Once()
	fx.schedulerUC.EXPECT().
		CancelForDevice(mock.Anything, device.ID).
		Return(int64(2), nil).Once()

	err := fx.handler.UpdatePreferences(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	fx.schedulerUC.AssertNotCalled(t, "ScheduleForDevice", mock.Anything, mock.Anything)
}

func TestDeviceHandler_UpdatePreferences_EnabledWithCoordinatesReschedules(t *testing.T) {
	fx := createTestDeviceHandler(t)

	device := testHandlerDevice(true)
	c, rec := newPreferencesContext(`{"notify_before_minutes": 15}`, device.Token)

	fx.deviceUC.EXPECT().
		UpdatePreferences(mock.Anything, device.Token, mock.Anything).
		Return(device, nil).Once()
	fx.schedulerUC.EXPECT().
		ScheduleForDevice(mock.Anything, device).
		Return(3, nil).Once()

	err := fx.handler.UpdatePreferences(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	fx.schedulerUC.AssertNotCalled(t, "CancelForDevice", mock.Anything, mock.Anything)
}

func TestDeviceHandler_UpdatePreferences_EnabledWithoutCoordinatesSkipsReschedule(t *testing.T) {
	fx := createTestDeviceHandler(t)

	device := testHandlerDevice(true)
	device.Latitude = nil
	device.Longitude = nil
	c, rec := newPreferencesContext(`{"enable_prayer_notifications": true}`, device.Token)

	fx.deviceUC.EXPECT().
		UpdatePreferences(mock.Anything, device.Token, mock.Anything).
		Return(device, nil).Once()

	err := fx.handler.UpdatePreferences(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	fx.schedulerUC.AssertNotCalled(t, "ScheduleForDevice", mock.Anything, mock.Anything)
	fx.schedulerUC.AssertNotCalled(t, "CancelForDevice", mock.Anything, mock.Anything)
}

func TestDeviceHandler_Register_SchedulesTodaysReminders(t *testing.T) {
	fx := createTestDeviceHandler(t)

	device := testHandlerDevice(true)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/devices",
		strings.NewReader(`{"token": "fcm-token-1", "platform": "android", "latitude": -6.2, "longitude": 106.8}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	fx.deviceUC.EXPECT().
		Register(mock.Anything, mock.Anything).
		Return(device, nil).Once()
	fx.schedulerUC.EXPECT().
		ScheduleForDevice(mock.Anything, device).
		Return(5, nil).Once()

	err := fx.handler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
