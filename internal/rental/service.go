package rental

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=ledger_mock.go -package=rental

// Ledger is the storage behind the rental service. Multi-step operations run
// through a LedgerTx so every check and write shares one transaction.
type Ledger interface {
	Begin(ctx context.Context) (LedgerTx, error)

	GetCustomer(ctx context.Context, customerID int64) (*Customer, error)
	ListCustomerRentals(ctx context.Context, customerID int64, status StatusFilter) ([]CustomerRental, error)
}

// LedgerTx is one database transaction over the rental tables. Lock methods
// take row locks so concurrent creates and returns against the same rows
// serialize instead of racing. The caller must Commit or Rollback.
type LedgerTx interface {
	// LockAvailableCopy picks an unrented copy of the film and locks it,
	// skipping copies locked by concurrent transactions. Returns
	// ErrNoAvailableCopy when every copy is rented or locked.
	LockAvailableCopy(ctx context.Context, filmID int64) (int64, error)

	// LockInventory locks the inventory row and returns it joined with its
	// film. Returns ErrInventoryNotFound when the copy does not exist.
	LockInventory(ctx context.Context, inventoryID int64) (*InventoryItem, error)

	HasActiveRental(ctx context.Context, inventoryID int64) (bool, error)
	CustomerName(ctx context.Context, customerID int64) (string, error)
	StaffName(ctx context.Context, staffID int64) (string, error)
	InsertRental(ctx context.Context, inventoryID, customerID, staffID int64) (*Detail, error)

	// LockRental locks the rental row and returns it joined with its film.
	// Returns ErrRentalNotFound when the rental does not exist.
	LockRental(ctx context.Context, rentalID int64) (*Detail, error)

	SetReturned(ctx context.Context, rentalID int64) (time.Time, error)
	InsertPayment(ctx context.Context, rentalID, customerID, staffID int64, amount decimal.Decimal) (int64, error)
	DeleteRental(ctx context.Context, rentalID int64) error

	Commit() error
	Rollback() error
}

type Service struct {
	ledger Ledger
}

func NewService(ledger Ledger) *Service {
	return &Service{ledger: ledger}
}

// Create opens a rental for a customer. The availability check, the
// reference checks and the insert share one transaction; any failure rolls
// everything back.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Created, error) {
	if params.InventoryID == 0 && params.FilmID == 0 {
		return nil, ErrInvalidRequest
	}

	tx, err := s.ledger.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create rental: %w", err)
	}
	defer tx.Rollback()

	inventoryID := params.InventoryID
	if inventoryID == 0 {
		inventoryID, err = tx.LockAvailableCopy(ctx, params.FilmID)
		if err != nil {
			return nil, err
		}
	}

	item, err := tx.LockInventory(ctx, inventoryID)
	if err != nil {
		return nil, err
	}

	rented, err := tx.HasActiveRental(ctx, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("checking active rental: %w", err)
	}

	if rented {
		return nil, ErrAlreadyRented
	}

	customerName, err := tx.CustomerName(ctx, params.CustomerID)
	if err != nil {
		return nil, err
	}

	staffName, err := tx.StaffName(ctx, params.StaffID)
	if err != nil {
		return nil, err
	}

	detail, err := tx.InsertRental(ctx, inventoryID, params.CustomerID, params.StaffID)
	if err != nil {
		return nil, fmt.Errorf("inserting rental: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create rental: %w", err)
	}

	return &Created{
		RentalID:     detail.ID,
		RentalDate:   detail.RentalDate,
		FilmTitle:    item.FilmTitle,
		RentalRate:   item.RentalRate,
		InventoryID:  inventoryID,
		CustomerID:   params.CustomerID,
		CustomerName: customerName,
		StaffID:      params.StaffID,
		StaffName:    staffName,
	}, nil
}

// Return closes an active rental and records its payment. Setting the
// return date and inserting the payment are atomic: a rental is never
// marked returned without a payment, and never paid twice.
func (s *Service) Return(ctx context.Context, rentalID int64) (*Settlement, error) {
	tx, err := s.ledger.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin return rental: %w", err)
	}
	defer tx.Rollback()

	detail, err := tx.LockRental(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	if detail.ReturnDate != nil {
		return nil, &AlreadyReturnedError{ReturnDate: *detail.ReturnDate}
	}

	returnDate, err := tx.SetReturned(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("setting return date: %w", err)
	}

	days, amount := Settle(detail.RentalDate, returnDate, detail.RentalRate)

	paymentID, err := tx.InsertPayment(ctx, rentalID, detail.CustomerID, detail.StaffID, amount)
	if err != nil {
		return nil, fmt.Errorf("inserting payment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit return rental: %w", err)
	}

	return &Settlement{
		RentalID:    rentalID,
		FilmTitle:   detail.FilmTitle,
		RentalDate:  detail.RentalDate,
		ReturnDate:  returnDate,
		DaysRented:  days,
		RentalRate:  detail.RentalRate,
		TotalAmount: amount,
		PaymentID:   paymentID,
	}, nil
}

// Cancel removes an active rental. Closed rentals cannot be cancelled.
func (s *Service) Cancel(ctx context.Context, rentalID int64) (*Cancelled, error) {
	tx, err := s.ledger.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin cancel rental: %w", err)
	}
	defer tx.Rollback()

	detail, err := tx.LockRental(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	if detail.ReturnDate != nil {
		return nil, &AlreadyReturnedError{ReturnDate: *detail.ReturnDate}
	}

	if err := tx.DeleteRental(ctx, rentalID); err != nil {
		return nil, fmt.Errorf("deleting rental: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancel rental: %w", err)
	}

	return &Cancelled{RentalID: rentalID, FilmTitle: detail.FilmTitle}, nil
}

// CustomerRentals lists a customer's rental history, optionally narrowed to
// open or closed rentals, newest first.
func (s *Service) CustomerRentals(ctx context.Context, customerID int64, status StatusFilter) (*Customer, []CustomerRental, error) {
	customer, err := s.ledger.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}

	rentals, err := s.ledger.ListCustomerRentals(ctx, customerID, status)
	if err != nil {
		return nil, nil, fmt.Errorf("listing customer rentals: %w", err)
	}

	return customer, rentals, nil
}
