package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/lamasat/salon-booking-service/internal/usecase/get_available_slots"
	"github.com/lamasat/salon-booking-service/pkg/types"
)

type stubUseCase struct {
	resp *getAvailableSlots.Response
	err  error

	gotReq *getAvailableSlots.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/specialists/{specialistId}/available-slots", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandler_Handle_OK(t *testing.T) {
	specialistID := uuid.New()
	serviceID := uuid.New()

	useCase := &stubUseCase{resp: &getAvailableSlots.Response{
		SpecialistID:    specialistID,
		DurationMinutes: 60,
		Slots: []getAvailableSlots.Slot{
			{StartTime: types.TimeOfDay(9 * 60)},
			{StartTime: types.TimeOfDay(11 * 60)},
		},
	}}
	handler := NewHandler(useCase, nopLogger{})

	url := fmt.Sprintf("/api/v1/specialists/%s/available-slots?date=2026-03-11&serviceIds=%s",
		specialistID, serviceID)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()

	newRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, specialistID, resp.SpecialistID)
	assert.Equal(t, 60, resp.DurationMinutes)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "09:00", resp.Slots[0].Time)
	assert.Equal(t, "11:00", resp.Slots[1].Time)

	// Контракт ответа: каждый слот сериализуется как {"time": "HH:MM"}
	var raw struct {
		Slots []map[string]string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw.Slots, 2)
	assert.Equal(t, map[string]string{"time": "09:00"}, raw.Slots[0])
	assert.Equal(t, map[string]string{"time": "11:00"}, raw.Slots[1])

	require.NotNil(t, useCase.gotReq)
	assert.Equal(t, specialistID, useCase.gotReq.SpecialistID)
	assert.Equal(t, []uuid.UUID{serviceID}, useCase.gotReq.ServiceIDs)
	assert.Equal(t, "2026-03-11", useCase.gotReq.Date.Format("2006-01-02"))
}

func TestHandler_Handle_MissingDate(t *testing.T) {
	handler := NewHandler(&stubUseCase{}, nopLogger{})

	url := fmt.Sprintf("/api/v1/specialists/%s/available-slots", uuid.New())
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()

	newRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_InvalidSpecialistID(t *testing.T) {
	handler := NewHandler(&stubUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/specialists/not-a-uuid/available-slots?date=2026-03-11", nil)
	rec := httptest.NewRecorder()

	newRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_SpecialistNotFound(t *testing.T) {
	handler := NewHandler(&stubUseCase{err: getAvailableSlots.ErrSpecialistNotFound}, nopLogger{})

	url := fmt.Sprintf("/api/v1/specialists/%s/available-slots?date=2026-03-11&durationMinutes=30", uuid.New())
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()

	newRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Handle_PastDate(t *testing.T) {
	handler := NewHandler(&stubUseCase{err: getAvailableSlots.ErrInvalidDate}, nopLogger{})

	url := fmt.Sprintf("/api/v1/specialists/%s/available-slots?date=2020-01-01&durationMinutes=30", uuid.New())
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()

	newRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
