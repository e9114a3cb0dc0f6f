package report

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jlopezga/dvdrental/internal/http/respond"
	"github.com/jlopezga/dvdrental/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/unreturned", h.unreturned)
	r.Get("/most-rented", h.mostRented)
	r.Get("/staff-revenue", h.allStaffRevenue)
	r.Get("/staff-revenue/{id}", h.staffRevenue)
}

func (h *Handler) unreturned(w http.ResponseWriter, r *http.Request) {
	rentals, summary, err := h.svc.Unreturned(r.Context())
	if err != nil {
		slog.Error("failed to build unreturned report", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to build unreturned report")

		return
	}

	items := make([]unreturnedItem, len(rentals))
	for i, rental := range rentals {
		items[i] = toUnreturned(rental)
	}

	respond.JSON(w, http.StatusOK, unreturnedResponse{
		Success:     true,
		GeneratedAt: time.Now().UTC(),
		Summary: unreturnedSummary{
			TotalUnreturned: summary.TotalUnreturned,
			LateReturns:     summary.LateReturns,
			OnTime:          summary.OnTime,
		},
		Data: items,
	})
}

func (h *Handler) mostRented(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	films, err := h.svc.MostRented(r.Context(), limit)
	if err != nil {
		slog.Error("failed to build most-rented report", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to build most-rented report")

		return
	}

	items := make([]mostRentedItem, len(films))
	for i, f := range films {
		items[i] = toMostRented(f)
	}

	respond.JSON(w, http.StatusOK, mostRentedResponse{
		Success:     true,
		GeneratedAt: time.Now().UTC(),
		Count:       len(items),
		Data:        items,
	})
}

func (h *Handler) allStaffRevenue(w http.ResponseWriter, r *http.Request) {
	dates, err := parseDateRange(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	revenues, total, err := h.svc.AllStaffRevenue(r.Context(), dates)
	if err != nil {
		if errors.Is(err, report.ErrInvalidRange) {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		slog.Error("failed to build staff revenue report", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to build staff revenue report")

		return
	}

	items := make([]staffRevenueData, len(revenues))
	for i, rev := range revenues {
		items[i] = toStaffRevenueData(&rev)
	}

	respond.JSON(w, http.StatusOK, allStaffRevenueResponse{
		Success:              true,
		GeneratedAt:          time.Now().UTC(),
		Period:               toPeriod(dates),
		Count:                len(items),
		TotalRevenueAllStaff: total,
		Data:                 items,
	})
}

func (h *Handler) staffRevenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid staff id")
		return
	}

	dates, err := parseDateRange(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	revenue, err := h.svc.StaffRevenue(r.Context(), id, dates)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidRange):
			respond.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, report.ErrStaffNotFound):
			respond.Error(w, http.StatusNotFound, err.Error())
		default:
			slog.Error("failed to build staff revenue report", "error", err)
			respond.Error(w, http.StatusInternalServerError, "failed to build staff revenue report")
		}

		return
	}

	respond.JSON(w, http.StatusOK, toStaffRevenueResponse(revenue, dates))
}

// parseDateRange reads optional start_date/end_date query params in
// YYYY-MM-DD form. The end date is pushed to the last instant of its day
// so the range is inclusive.
func parseDateRange(r *http.Request) (report.DateRange, error) {
	var dates report.DateRange

	q := r.URL.Query()

	if s := q.Get("start_date"); s != "" {
		start, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return dates, errors.New("start_date must be formatted as YYYY-MM-DD")
		}

		dates.Start = &start
	}

	if s := q.Get("end_date"); s != "" {
		end, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return dates, errors.New("end_date must be formatted as YYYY-MM-DD")
		}

		end = end.Add(24*time.Hour - time.Nanosecond)
		dates.End = &end
	}

	return dates, nil
}

type unreturnedResponse struct {
	Success     bool              `json:"success"`
	GeneratedAt time.Time         `json:"generated_at"`
	Summary     unreturnedSummary `json:"summary"`
	Data        []unreturnedItem  `json:"data"`
}

type unreturnedSummary struct {
	TotalUnreturned int `json:"total_unreturned"`
	LateReturns     int `json:"late_returns"`
	OnTime          int `json:"on_time"`
}

type unreturnedItem struct {
	RentalID         int64     `json:"rental_id"`
	RentalDate       time.Time `json:"rental_date"`
	DaysRented       int64     `json:"days_rented"`
	FilmID           int64     `json:"film_id"`
	Title            string    `json:"title"`
	ExpectedDuration int       `json:"expected_duration"`
	CustomerID       int64     `json:"customer_id"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	StaffName        string    `json:"staff_name"`
	Late             bool      `json:"late"`
}

func toUnreturned(r report.UnreturnedRental) unreturnedItem {
	return unreturnedItem{
		RentalID:         r.RentalID,
		RentalDate:       r.RentalDate,
		DaysRented:       r.DaysRented,
		FilmID:           r.FilmID,
		Title:            r.Title,
		ExpectedDuration: r.ExpectedDuration,
		CustomerID:       r.CustomerID,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		StaffName:        r.StaffName,
		Late:             r.Late,
	}
}

type mostRentedResponse struct {
	Success     bool             `json:"success"`
	GeneratedAt time.Time        `json:"generated_at"`
	Count       int              `json:"count"`
	Data        []mostRentedItem `json:"data"`
}

type mostRentedItem struct {
	FilmID           int64           `json:"film_id"`
	Title            string          `json:"title"`
	RentalRate       decimal.Decimal `json:"rental_rate"`
	ReleaseYear      int             `json:"release_year"`
	Rating           string          `json:"rating"`
	Category         string          `json:"category,omitempty"`
	TotalRentals     int64           `json:"total_rentals"`
	CompletedRentals int64           `json:"completed_rentals"`
	ActiveRentals    int64           `json:"active_rentals"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	LastRentalDate   time.Time       `json:"last_rental_date"`
}

func toMostRented(f report.MostRentedFilm) mostRentedItem {
	return mostRentedItem{
		FilmID:           f.FilmID,
		Title:            f.Title,
		RentalRate:       f.RentalRate,
		ReleaseYear:      f.ReleaseYear,
		Rating:           f.Rating,
		Category:         f.Category,
		TotalRentals:     f.TotalRentals,
		CompletedRentals: f.CompletedRentals,
		ActiveRentals:    f.ActiveRentals,
		TotalRevenue:     f.TotalRevenue,
		LastRentalDate:   f.LastRentalDate,
	}
}

type staffRevenueResponse struct {
	Success     bool             `json:"success"`
	GeneratedAt time.Time        `json:"generated_at"`
	Period      revenuePeriod    `json:"period"`
	Data        staffRevenueData `json:"data"`
}

type revenuePeriod struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type allStaffRevenueResponse struct {
	Success              bool               `json:"success"`
	GeneratedAt          time.Time          `json:"generated_at"`
	Period               revenuePeriod      `json:"period"`
	Count                int                `json:"count"`
	TotalRevenueAllStaff decimal.Decimal    `json:"total_revenue_all_staff"`
	Data                 []staffRevenueData `json:"data"`
}

type staffRevenueData struct {
	StaffID          int64           `json:"staff_id"`
	StaffName        string          `json:"staff_name"`
	Email            string          `json:"email"`
	StoreID          int64           `json:"store_id"`
	TotalRentals     int64           `json:"total_rentals"`
	TotalPayments    int64           `json:"total_payments"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	AveragePayment   decimal.Decimal `json:"average_payment"`
	FirstPaymentDate *string         `json:"first_payment_date"`
	LastPaymentDate  *string         `json:"last_payment_date"`
	Daily            []dailyRevenue  `json:"daily_breakdown,omitempty"`
}

type dailyRevenue struct {
	Date     string          `json:"date"`
	Payments int64           `json:"payments"`
	Revenue  decimal.Decimal `json:"revenue"`
}

func toStaffRevenueData(r *report.StaffRevenue) staffRevenueData {
	daily := make([]dailyRevenue, len(r.Daily))
	for i, d := range r.Daily {
		daily[i] = dailyRevenue{
			Date:     d.Date.Format(time.DateOnly),
			Payments: d.Payments,
			Revenue:  d.Revenue,
		}
	}

	return staffRevenueData{
		StaffID:          r.StaffID,
		StaffName:        r.StaffName,
		Email:            r.Email,
		StoreID:          r.StoreID,
		TotalRentals:     r.TotalRentals,
		TotalPayments:    r.TotalPayments,
		TotalRevenue:     r.TotalRevenue,
		AveragePayment:   r.AveragePayment,
		FirstPaymentDate: formatDatePtr(r.FirstPaymentDate),
		LastPaymentDate:  formatDatePtr(r.LastPaymentDate),
		Daily:            daily,
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := t.Format(time.DateOnly)

	return &s
}

func toStaffRevenueResponse(r *report.StaffRevenue, dates report.DateRange) staffRevenueResponse {
	return staffRevenueResponse{
		Success:     true,
		GeneratedAt: time.Now().UTC(),
		Period:      toPeriod(dates),
		Data:        toStaffRevenueData(r),
	}
}

func toPeriod(dates report.DateRange) revenuePeriod {
	var period revenuePeriod

	if dates.Start != nil {
		s := dates.Start.Format(time.DateOnly)
		period.StartDate = &s
	}

	if dates.End != nil {
		e := dates.End.Format(time.DateOnly)
		period.EndDate = &e
	}

	return period
}
