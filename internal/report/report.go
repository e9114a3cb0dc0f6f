package report

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrStaffNotFound = errors.New("staff not found")
	ErrInvalidRange  = errors.New("start_date must not be after end_date")
)

// UnreturnedRental is one open rental, classified against the film's
// expected rental duration.
type UnreturnedRental struct {
	RentalID         int64
	RentalDate       time.Time
	DaysRented       int64
	FilmID           int64
	Title            string
	ExpectedDuration int
	CustomerID       int64
	CustomerName     string
	CustomerEmail    string
	StaffName        string
	Late             bool
}

type UnreturnedSummary struct {
	TotalUnreturned int
	LateReturns     int
	OnTime          int
}

// MostRentedFilm aggregates rental counts and revenue per title.
type MostRentedFilm struct {
	FilmID           int64
	Title            string
	RentalRate       decimal.Decimal
	ReleaseYear      int
	Rating           string
	Category         string
	TotalRentals     int64
	CompletedRentals int64
	ActiveRentals    int64
	TotalRevenue     decimal.Decimal
	LastRentalDate   time.Time
}

// DateRange bounds a revenue report. Nil ends are unbounded.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

func (r DateRange) Validate() error {
	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		return ErrInvalidRange
	}

	return nil
}

// StaffRevenue totals the payments a staff member has taken. The payment
// date bounds are nil when the member took no payments in range.
type StaffRevenue struct {
	StaffID          int64
	StaffName        string
	Email            string
	StoreID          int64
	TotalRentals     int64
	TotalPayments    int64
	TotalRevenue     decimal.Decimal
	AveragePayment   decimal.Decimal
	FirstPaymentDate *time.Time
	LastPaymentDate  *time.Time
	Daily            []DailyRevenue
}

// DailyRevenue is one day of a staff member's payment breakdown.
type DailyRevenue struct {
	Date     time.Time
	Payments int64
	Revenue  decimal.Decimal
}
