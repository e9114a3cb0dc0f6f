package rental

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel errors returned by ledger operations. Handlers switch on these
// to pick a status code, so every kind stays programmatically distinct.
var (
	ErrInvalidRequest    = errors.New("customer_id, staff_id and film_id or inventory_id are required")
	ErrNoAvailableCopy   = errors.New("no available copy for this film")
	ErrInventoryNotFound = errors.New("inventory not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrStaffNotFound     = errors.New("staff not found")
	ErrRentalNotFound    = errors.New("rental not found")
	ErrAlreadyRented     = errors.New("this DVD is already rented and has not been returned")
)

// AlreadyReturnedError rejects a return or cancel on a closed rental. It
// carries the existing return timestamp so the caller can reconcile state
// without a second round trip.
type AlreadyReturnedError struct {
	ReturnDate time.Time
}

func (e *AlreadyReturnedError) Error() string {
	return fmt.Sprintf("rental already returned at %s", e.ReturnDate.Format(time.RFC3339))
}

// StatusFilter narrows customer rental listings to open or closed rentals.
type StatusFilter string

const (
	FilterAll      StatusFilter = "all"
	FilterActive   StatusFilter = "active"
	FilterReturned StatusFilter = "returned"
)

// ParseStatusFilter maps the raw query value onto the supported filter set.
// An empty value means no filtering.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterReturned:
		return FilterReturned, nil
	}

	return "", fmt.Errorf("unsupported status filter %q", s)
}

// InventoryItem is one physical copy of a film, joined with the film fields
// the ledger needs for display and settlement.
type InventoryItem struct {
	ID             int64
	FilmID         int64
	FilmTitle      string
	RentalRate     decimal.Decimal
	RentalDuration int
}

// Detail is a rental row joined with its film, locked and inspected by the
// return and cancel flows.
type Detail struct {
	ID             int64
	InventoryID    int64
	CustomerID     int64
	StaffID        int64
	RentalDate     time.Time
	ReturnDate     *time.Time
	FilmTitle      string
	RentalRate     decimal.Decimal
	RentalDuration int
}

// CreateParams selects the copy to rent. Exactly one of FilmID or
// InventoryID must be set; InventoryID wins when both are.
type CreateParams struct {
	CustomerID  int64
	StaffID     int64
	FilmID      int64
	InventoryID int64
}

// Created is the denormalized confirmation returned by Create.
type Created struct {
	RentalID     int64
	RentalDate   time.Time
	FilmTitle    string
	RentalRate   decimal.Decimal
	InventoryID  int64
	CustomerID   int64
	CustomerName string
	StaffID      int64
	StaffName    string
}

// Settlement reports the charge computed when a rental is returned.
type Settlement struct {
	RentalID    int64
	FilmTitle   string
	RentalDate  time.Time
	ReturnDate  time.Time
	DaysRented  int64
	RentalRate  decimal.Decimal
	TotalAmount decimal.Decimal
	PaymentID   int64
}

// Cancelled confirms a rental row was removed.
type Cancelled struct {
	RentalID  int64
	FilmTitle string
}

// Customer is the summary block attached to a customer's rental listing.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

// CustomerRental is one row of a customer's rental history. DaysRented is
// elapsed to now while the rental is open, else to the return date.
type CustomerRental struct {
	RentalID   int64
	RentalDate time.Time
	ReturnDate *time.Time
	FilmTitle  string
	RentalRate decimal.Decimal
	Category   string
	Status     string
	DaysRented int64
}
