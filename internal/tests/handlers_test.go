package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "mesa-booking/internal/api/http"
	"mesa-booking/internal/domain"
	"mesa-booking/internal/mocks"
	"mesa-booking/internal/service"
)

func newTestRouter(t *testing.T) (*mux.Router, *mocks.AvailabilityServiceInterface, *mocks.ReservationServiceInterface, *mocks.OrderServiceInterface) {
	availability := mocks.NewAvailabilityServiceInterface(t)
	reservations := mocks.NewReservationServiceInterface(t)
	orders := mocks.NewOrderServiceInterface(t)

	router := mux.NewRouter()
	httpapi.NewHandler(availability, reservations, orders).RegisterRoutes(router)
	return router, availability, reservations, orders
}

func TestHealthCheck(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestCreateReservationHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		prepareMocks   func(reservations *mocks.ReservationServiceInterface)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"customer_id":9,"table_id":5,"reservation_date":"2025-12-24","reservation_time":"19:00","number_of_guests":4}`,
			prepareMocks: func(reservations *mocks.ReservationServiceInterface) {
				reservations.On("Create", mock.Anything, mock.Anything).Return(&domain.Reservation{
					ID: 1, TableID: 5, Status: domain.BookingStatusPending,
				}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "slot taken maps to 409",
			body: `{"customer_id":9,"table_id":5,"reservation_date":"2025-12-24","reservation_time":"19:00","number_of_guests":4}`,
			prepareMocks: func(reservations *mocks.ReservationServiceInterface) {
				reservations.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrSlotUnavailable).Once()
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "unknown table maps to 404",
			body: `{"customer_id":9,"table_id":99,"reservation_date":"2025-12-24","reservation_time":"19:00","number_of_guests":4}`,
			prepareMocks: func(reservations *mocks.ReservationServiceInterface) {
				reservations.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrTableNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "bad duration maps to 400",
			body: `{"customer_id":9,"table_id":5,"reservation_date":"2025-12-24","reservation_time":"19:00","number_of_guests":4,"duration_minutes":15}`,
			prepareMocks: func(reservations *mocks.ReservationServiceInterface) {
				reservations.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidDuration).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed date rejected before the service",
			body:           `{"customer_id":9,"table_id":5,"reservation_date":"24/12/2025","reservation_time":"19:00","number_of_guests":4}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			body:           `{"customer_id":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, _, reservations, _ := newTestRouter(t)
			if testCase.prepareMocks != nil {
				testCase.prepareMocks(reservations)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewBufferString(testCase.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, testCase.expectedStatus, rec.Code)
		})
	}
}

func TestUpdateReservationHandler(t *testing.T) {
	router, _, reservations, _ := newTestRouter(t)

	reservations.On("Update", mock.Anything, 11, 9, mock.MatchedBy(func(patch domain.ReservationPatch) bool {
		return patch.Time != nil && *patch.Time == "20:00" && patch.TableID == nil
	})).Return(&domain.Reservation{ID: 11, ReservationTime: "20:00"}, nil).Once()

	req := httptest.NewRequest(http.MethodPatch, "/api/reservations/11",
		bytes.NewBufferString(`{"customer_id":9,"reservation_time":"20:00"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelReservationHandler(t *testing.T) {
	t.Run("customer cancel", func(t *testing.T) {
		router, _, reservations, _ := newTestRouter(t)
		reservations.On("CancelByCustomer", mock.Anything, 11, 9).Return(&domain.Reservation{
			ID: 11, Status: domain.BookingStatusCancelled,
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/reservations/11/cancel",
			bytes.NewBufferString(`{"customer_id":9}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body domain.Reservation
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, domain.BookingStatusCancelled, body.Status)
	})

	t.Run("foreign reservation maps to 404", func(t *testing.T) {
		router, _, reservations, _ := newTestRouter(t)
		reservations.On("CancelByCustomer", mock.Anything, 11, 999).Return(nil, service.ErrReservationNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/reservations/11/cancel",
			bytes.NewBufferString(`{"customer_id":999}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminReservationHandlers(t *testing.T) {
	t.Run("confirm cancelled maps to 409", func(t *testing.T) {
		router, _, reservations, _ := newTestRouter(t)
		reservations.On("Confirm", mock.Anything, 11).Return(nil, service.ErrCannotConfirmCancelled).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/reservations/11/confirm", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("admin cancel skips ownership", func(t *testing.T) {
		router, _, reservations, _ := newTestRouter(t)
		reservations.On("CancelByAdmin", mock.Anything, 11).Return(&domain.Reservation{
			ID: 11, Status: domain.BookingStatusCancelled,
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/reservations/11/cancel", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete returns no content", func(t *testing.T) {
		router, _, reservations, _ := newTestRouter(t)
		reservations.On("Delete", mock.Anything, 11).Return(&domain.Reservation{ID: 11}, nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/reservations/11", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestListAvailableTablesHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		router, availability, _, _ := newTestRouter(t)
		availability.On("ListAvailableTables", mock.Anything, mock.Anything, "19:00", 90, 4).
			Return([]domain.Table{{ID: 3, Capacity: 8}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/tables/available?date=2025-12-24&time=19:00&duration=90&min_capacity=4", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var tables []domain.Table
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&tables))
		assert.Len(t, tables, 1)
		assert.Equal(t, 3, tables[0].ID)
	})

	t.Run("missing date", func(t *testing.T) {
		router, _, _, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/tables/available?time=19:00", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListTableReservationsHandler(t *testing.T) {
	router, _, reservations, _ := newTestRouter(t)
	reservations.On("ListForTableOnDate", mock.Anything, 5, mock.Anything).Return(nil, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/tables/5/reservations?date=2025-12-24", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// nil from the service still renders as an empty array
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestOrderHandlers(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		router, _, _, orders := newTestRouter(t)
		orders.On("Create", mock.Anything, mock.Anything).Return(&domain.Order{
			ID: 42, TotalAmount: 31.00,
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/orders",
			bytes.NewBufferString(`{"customer_id":9,"order_type":"takeaway","items":[{"menu_item_id":1,"quantity":2}]}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("dine-in without target maps to 409", func(t *testing.T) {
		router, _, _, orders := newTestRouter(t)
		orders.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrMissingDineInTarget).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/orders",
			bytes.NewBufferString(`{"customer_id":9,"order_type":"dine_in","items":[{"menu_item_id":1,"quantity":2}]}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("delivery without address maps to 400", func(t *testing.T) {
		router, _, _, orders := newTestRouter(t)
		orders.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrMissingDeliveryAddress).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/orders",
			bytes.NewBufferString(`{"customer_id":9,"order_type":"delivery","items":[{"menu_item_id":1,"quantity":2}]}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("qr code is served as png", func(t *testing.T) {
		router, _, _, orders := newTestRouter(t)
		orders.On("GetQRCode", mock.Anything, 42).Return([]byte("png-bytes"), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/orders/42/qrcode", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "png-bytes", rec.Body.String())
	})

	t.Run("unknown order maps to 404", func(t *testing.T) {
		router, _, _, orders := newTestRouter(t)
		orders.On("Get", mock.Anything, 404).Return(nil, service.ErrOrderNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/orders/404", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
