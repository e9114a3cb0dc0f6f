package staff

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jlopezga/dvdrental/internal/http/respond"
	"github.com/jlopezga/dvdrental/internal/staff"
)

type Handler struct {
	svc *staff.Service
}

func NewHandler(svc *staff.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := staff.ListFilter{}
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

	members, err := h.svc.List(r.Context(), filter)
	if err != nil {
		slog.Error("failed to list staff", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list staff")

		return
	}

	items := make([]staffItem, len(members))
	for i, m := range members {
		items[i] = toStaff(m)
	}

	respond.JSON(w, http.StatusOK, listResponse{Success: true, Count: len(items), Data: items})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid staff id")
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "staff not found")
			return
		}

		slog.Error("failed to get staff", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to get staff")

		return
	}

	respond.JSON(w, http.StatusOK, staffResponse{Success: true, Data: toStaff(*m)})
}

type staffItem struct {
	StaffID   int64  `json:"staff_id"`
	StoreID   int64  `json:"store_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Active    bool   `json:"active"`
}

type listResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    []staffItem `json:"data"`
}

type staffResponse struct {
	Success bool      `json:"success"`
	Data    staffItem `json:"data"`
}

func toStaff(m staff.Staff) staffItem {
	return staffItem{
		StaffID:   m.ID,
		StoreID:   m.StoreID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Username:  m.Username,
		Active:    m.Active,
	}
}
