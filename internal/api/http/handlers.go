package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"mesa-booking/internal/domain"
	"mesa-booking/internal/service"
	"mesa-booking/internal/timeslot"
)

const dateLayout = "2006-01-02"

type Handler struct {
	Availability service.AvailabilityServiceInterface
	Reservations service.ReservationServiceInterface
	Orders       service.OrderServiceInterface
}

func NewHandler(availability service.AvailabilityServiceInterface, reservations service.ReservationServiceInterface, orders service.OrderServiceInterface) *Handler {
	return &Handler{Availability: availability, Reservations: reservations, Orders: orders}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/tables/available", h.listAvailableTables).Methods("GET")
	r.HandleFunc("/api/tables/{tableId}/reservations", h.listTableReservations).Methods("GET")

	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", h.updateReservation).Methods("PATCH")
	r.HandleFunc("/api/reservations/{id}/cancel", h.cancelReservation).Methods("POST")

	r.HandleFunc("/api/admin/reservations/{id}/cancel", h.adminCancelReservation).Methods("POST")
	r.HandleFunc("/api/admin/reservations/{id}/confirm", h.confirmReservation).Methods("POST")
	r.HandleFunc("/api/admin/reservations/{id}", h.deleteReservation).Methods("DELETE")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

// writeServiceError maps the service error taxonomy onto HTTP status
// codes: lookup failures to 404, conflicts to 409, validation to 400.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTableNotFound),
		errors.Is(err, service.ErrReservationNotFound),
		errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrCapacityExceeded),
		errors.Is(err, service.ErrSlotUnavailable),
		errors.Is(err, service.ErrCannotConfirmCancelled),
		errors.Is(err, service.ErrMissingDineInTarget),
		errors.Is(err, service.ErrMenuItemUnavailable):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, timeslot.ErrInvalidTimeFormat),
		errors.Is(err, service.ErrInvalidGuestCount),
		errors.Is(err, service.ErrInvalidDuration),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrSlotCrossesMidnight),
		errors.Is(err, service.ErrMissingDeliveryAddress),
		errors.Is(err, service.ErrInvalidOrderType):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "booking-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) listAvailableTables(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(dateLayout, query.Get("date"))
	if err != nil {
		http.Error(w, "invalid or missing date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	duration := service.DefaultReservationDuration
	if raw := query.Get("duration"); raw != "" {
		if duration, err = strconv.Atoi(raw); err != nil {
			http.Error(w, "invalid duration", http.StatusBadRequest)
			return
		}
	}

	minCapacity := 0
	if raw := query.Get("min_capacity"); raw != "" {
		if minCapacity, err = strconv.Atoi(raw); err != nil {
			http.Error(w, "invalid min_capacity", http.StatusBadRequest)
			return
		}
	}

	tables, err := h.Availability.ListAvailableTables(r.Context(), date, query.Get("time"), duration, minCapacity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) listTableReservations(w http.ResponseWriter, r *http.Request) {
	tableID, _ := strconv.Atoi(mux.Vars(r)["tableId"])

	date, err := time.Parse(dateLayout, r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "invalid or missing date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	reservations, err := h.Reservations.ListForTableOnDate(r.Context(), tableID, date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if reservations == nil {
		reservations = []domain.Reservation{}
	}

	writeJSON(w, http.StatusOK, reservations)
}

type createReservationPayload struct {
	CustomerID      int    `json:"customer_id"`
	TableID         int    `json:"table_id"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	Guests          int    `json:"number_of_guests"`
	Duration        int    `json:"duration_minutes"`
	SpecialRequests string `json:"special_requests"`
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var payload createReservationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := time.Parse(dateLayout, payload.ReservationDate)
	if err != nil {
		http.Error(w, "invalid reservation_date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	reservation, err := h.Reservations.Create(r.Context(), service.CreateReservationRequest{
		CustomerID:      payload.CustomerID,
		TableID:         payload.TableID,
		Date:            date,
		Time:            payload.ReservationTime,
		Guests:          payload.Guests,
		Duration:        payload.Duration,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, reservation)
}

type updateReservationPayload struct {
	CustomerID      int     `json:"customer_id"`
	TableID         *int    `json:"table_id"`
	ReservationDate *string `json:"reservation_date"`
	ReservationTime *string `json:"reservation_time"`
	Duration        *int    `json:"duration_minutes"`
	Guests          *int    `json:"number_of_guests"`
}

func (h *Handler) updateReservation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload updateReservationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	patch := domain.ReservationPatch{
		TableID:  payload.TableID,
		Time:     payload.ReservationTime,
		Duration: payload.Duration,
		Guests:   payload.Guests,
	}
	if payload.ReservationDate != nil {
		date, err := time.Parse(dateLayout, *payload.ReservationDate)
		if err != nil {
			http.Error(w, "invalid reservation_date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		patch.Date = &date
	}

	reservation, err := h.Reservations.Update(r.Context(), id, payload.CustomerID, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reservation)
}

func (h *Handler) cancelReservation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		CustomerID int `json:"customer_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reservation, err := h.Reservations.CancelByCustomer(r.Context(), id, payload.CustomerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reservation)
}

func (h *Handler) adminCancelReservation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	reservation, err := h.Reservations.CancelByAdmin(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reservation)
}

func (h *Handler) confirmReservation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	reservation, err := h.Reservations.Confirm(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reservation)
}

func (h *Handler) deleteReservation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if _, err := h.Reservations.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createOrderPayload struct {
	CustomerID      int                        `json:"customer_id"`
	StaffID         int                        `json:"staff_id"`
	OrderType       string                     `json:"order_type"`
	Items           []service.OrderItemRequest `json:"items"`
	PaymentType     string                     `json:"payment_type"`
	ReservationID   int                        `json:"reservation_id"`
	TableID         int                        `json:"table_id"`
	DeliveryAddress string                     `json:"delivery_address"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload createOrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Create(r.Context(), service.CreateOrderRequest{
		CustomerID:      payload.CustomerID,
		StaffID:         payload.StaffID,
		OrderType:       payload.OrderType,
		Items:           payload.Items,
		PaymentType:     payload.PaymentType,
		ReservationID:   payload.ReservationID,
		TableID:         payload.TableID,
		DeliveryAddress: payload.DeliveryAddress,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	qr, err := h.Orders.GetQRCode(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}
