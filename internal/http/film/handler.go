package film

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jlopezga/dvdrental/internal/catalog"
	"github.com/jlopezga/dvdrental/internal/http/respond"
)

type Handler struct {
	svc *catalog.Service
}

func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/search", h.search)
	r.Get("/category/{name}", h.byCategory)
	r.Get("/{id}", h.get)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	films, err := h.svc.List(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list films", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list films")

		return
	}

	respond.JSON(w, http.StatusOK, toListResponse(films))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid film id")
		return
	}

	f, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrFilmNotFound) {
			respond.Error(w, http.StatusNotFound, "film not found")
			return
		}

		slog.Error("failed to get film", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to get film")

		return
	}

	respond.JSON(w, http.StatusOK, filmResponse{Success: true, Data: toFilm(*f)})
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		respond.Error(w, http.StatusBadRequest, "title query parameter is required")
		return
	}

	films, err := h.svc.Search(r.Context(), title)
	if err != nil {
		slog.Error("failed to search films", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to search films")

		return
	}

	respond.JSON(w, http.StatusOK, toListResponse(films))
}

func (h *Handler) byCategory(w http.ResponseWriter, r *http.Request) {
	films, err := h.svc.ByCategory(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		slog.Error("failed to list films by category", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list films by category")

		return
	}

	respond.JSON(w, http.StatusOK, toListResponse(films))
}

type filmItem struct {
	FilmID         int64           `json:"film_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	ReleaseYear    int             `json:"release_year"`
	Length         int             `json:"length"`
	Rating         string          `json:"rating"`
	RentalRate     decimal.Decimal `json:"rental_rate"`
	RentalDuration int             `json:"rental_duration"`
	Category       string          `json:"category,omitempty"`
}

type filmResponse struct {
	Success bool     `json:"success"`
	Data    filmItem `json:"data"`
}

type filmListResponse struct {
	Success     bool       `json:"success"`
	GeneratedAt time.Time  `json:"generated_at"`
	Count       int        `json:"count"`
	Data        []filmItem `json:"data"`
}

func toFilm(f catalog.Film) filmItem {
	return filmItem{
		FilmID:         f.ID,
		Title:          f.Title,
		Description:    f.Description,
		ReleaseYear:    f.ReleaseYear,
		Length:         f.Length,
		Rating:         f.Rating,
		RentalRate:     f.RentalRate,
		RentalDuration: f.RentalDuration,
		Category:       f.Category,
	}
}

func toListResponse(films []catalog.Film) filmListResponse {
	items := make([]filmItem, len(films))
	for i, f := range films {
		items[i] = toFilm(f)
	}

	return filmListResponse{
		Success:     true,
		GeneratedAt: time.Now().UTC(),
		Count:       len(items),
		Data:        items,
	}
}
