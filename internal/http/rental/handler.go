package rental

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jlopezga/dvdrental/internal/http/respond"
	"github.com/jlopezga/dvdrental/internal/rental"
)

type Handler struct {
	svc *rental.Service
}

func NewHandler(svc *rental.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Put("/{id}/return", h.returnRental)
	r.Delete("/{id}", h.cancel)
	r.Get("/customer/{id}", h.customerRentals)
}

type createRentalRequest struct {
	CustomerID  int64 `json:"customer_id"`
	StaffID     int64 `json:"staff_id"`
	FilmID      int64 `json:"film_id"`
	InventoryID int64 `json:"inventory_id"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.CustomerID == 0 || req.StaffID == 0 {
		respond.Error(w, http.StatusBadRequest, rental.ErrInvalidRequest.Error())
		return
	}

	created, err := h.svc.Create(r.Context(), rental.CreateParams{
		CustomerID:  req.CustomerID,
		StaffID:     req.StaffID,
		FilmID:      req.FilmID,
		InventoryID: req.InventoryID,
	})
	if err != nil {
		h.writeError(w, err, "failed to create rental")
		return
	}

	respond.JSON(w, http.StatusCreated, toCreatedResponse(created))
}

func (h *Handler) returnRental(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	settlement, err := h.svc.Return(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "failed to process return")
		return
	}

	respond.JSON(w, http.StatusOK, toSettlementResponse(settlement))
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	cancelled, err := h.svc.Cancel(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "failed to cancel rental")
		return
	}

	respond.JSON(w, http.StatusOK, toCancelledResponse(cancelled))
}

func (h *Handler) customerRentals(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	status, err := rental.ParseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	customer, rentals, err := h.svc.CustomerRentals(r.Context(), id, status)
	if err != nil {
		h.writeError(w, err, "failed to list customer rentals")
		return
	}

	respond.JSON(w, http.StatusOK, toCustomerRentalsResponse(customer, rentals))
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// writeError maps ledger errors onto status codes: invalid input and
// conflicts are 400, missing referents 404, anything else a logged 500
// with a generic message.
func (h *Handler) writeError(w http.ResponseWriter, err error, logMsg string) {
	var alreadyReturned *rental.AlreadyReturnedError

	switch {
	case errors.Is(err, rental.ErrInvalidRequest),
		errors.Is(err, rental.ErrNoAvailableCopy),
		errors.Is(err, rental.ErrAlreadyRented):
		respond.Error(w, http.StatusBadRequest, err.Error())

	case errors.As(err, &alreadyReturned):
		respond.JSON(w, http.StatusBadRequest, alreadyReturnedResponse{
			Success:    false,
			Message:    "this rental was already returned",
			ReturnDate: alreadyReturned.ReturnDate,
		})

	case errors.Is(err, rental.ErrInventoryNotFound),
		errors.Is(err, rental.ErrCustomerNotFound),
		errors.Is(err, rental.ErrStaffNotFound),
		errors.Is(err, rental.ErrRentalNotFound):
		respond.Error(w, http.StatusNotFound, err.Error())

	default:
		slog.Error(logMsg, "error", err)
		respond.Error(w, http.StatusInternalServerError, logMsg)
	}
}
