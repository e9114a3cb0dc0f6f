package customer

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jlopezga/dvdrental/internal/customer"
	"github.com/jlopezga/dvdrental/internal/http/respond"
)

type Handler struct {
	svc *customer.Service
}

func NewHandler(svc *customer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := customer.ListFilter{}
	q := r.URL.Query()

	if s := q.Get("active"); s != "" {
		if active, err := strconv.ParseBool(s); err == nil {
			filter.Active = &active
		}
	}

	if s := q.Get("store_id"); s != "" {
		if storeID, err := strconv.ParseInt(s, 10, 64); err == nil {
			filter.StoreID = &storeID
		}
	}

	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Offset, _ = strconv.Atoi(q.Get("offset"))

	result, err := h.svc.List(r.Context(), filter)
	if err != nil {
		slog.Error("failed to list customers", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list customers")

		return
	}

	respond.JSON(w, http.StatusOK, toListResponse(result, filter))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	detail, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "customer not found")
			return
		}

		slog.Error("failed to get customer", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to get customer")

		return
	}

	respond.JSON(w, http.StatusOK, detailResponse{
		Success: true,
		Data: detailItem{
			customerItem: toCustomer(detail.Customer),
			TotalRentals: detail.Stats.TotalRentals,
			ActiveRental: detail.Stats.ActiveRentals,
			TotalSpent:   detail.Stats.TotalSpent,
		},
	})
}

type customerItem struct {
	CustomerID int64     `json:"customer_id"`
	StoreID    int64     `json:"store_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Active     bool      `json:"active"`
	Address    string    `json:"address"`
	District   string    `json:"district"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	Phone      string    `json:"phone"`
	CreateDate time.Time `json:"create_date"`
}

type listResponse struct {
	Success    bool           `json:"success"`
	Pagination pagination     `json:"pagination"`
	Data       []customerItem `json:"data"`
}

type pagination struct {
	Total  int64 `json:"total"`
	Count  int   `json:"count"`
	Offset int   `json:"offset"`
}

type detailResponse struct {
	Success bool       `json:"success"`
	Data    detailItem `json:"data"`
}

type detailItem struct {
	customerItem
	TotalRentals int64           `json:"total_rentals"`
	ActiveRental int64           `json:"active_rentals"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
}

func toCustomer(c customer.Customer) customerItem {
	return customerItem{
		CustomerID: c.ID,
		StoreID:    c.StoreID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Active:     c.Active,
		Address:    c.Address,
		District:   c.District,
		City:       c.City,
		Country:    c.Country,
		Phone:      c.Phone,
		CreateDate: c.CreateDate,
	}
}

func toListResponse(result *customer.ListResult, filter customer.ListFilter) listResponse {
	items := make([]customerItem, len(result.Customers))
	for i, c := range result.Customers {
		items[i] = toCustomer(c)
	}

	return listResponse{
		Success: true,
		Pagination: pagination{
			Total:  result.Total,
			Count:  len(items),
			Offset: filter.Offset,
		},
		Data: items,
	}
}
