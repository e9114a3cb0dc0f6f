package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jlopezga/dvdrental/internal/rental"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Begin starts the transaction a multi-step ledger operation runs in.
func (s *Store) Begin(ctx context.Context) (rental.LedgerTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning ledger tx: %w", err)
	}

	return &ledgerTx{tx: tx}, nil
}

type ledgerTx struct {
	tx *sql.Tx
}

func (t *ledgerTx) Commit() error   { return t.tx.Commit() }
func (t *ledgerTx) Rollback() error { return t.tx.Rollback() }

// LockAvailableCopy resolves a film to a free copy and locks it for the
// rest of the transaction. SKIP LOCKED keeps concurrent creates for the
// same film from queueing on one row when other copies are free.
func (t *ledgerTx) LockAvailableCopy(ctx context.Context, filmID int64) (int64, error) {
	const query = `
		SELECT i.inventory_id
		FROM inventory i
		WHERE i.film_id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM rental r
			WHERE r.inventory_id = i.inventory_id AND r.return_date IS NULL
		  )
		ORDER BY i.inventory_id
		LIMIT 1
		FOR UPDATE OF i SKIP LOCKED
	`

	var inventoryID int64
	if err := t.tx.QueryRowContext(ctx, query, filmID).Scan(&inventoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, rental.ErrNoAvailableCopy
		}

		return 0, fmt.Errorf("locking available copy: %w", err)
	}

	return inventoryID, nil
}

// LockInventory locks the copy so the availability check and the insert
// that follow see a stable row regardless of the isolation level.
func (t *ledgerTx) LockInventory(ctx context.Context, inventoryID int64) (*rental.InventoryItem, error) {
	const query = `
		SELECT i.inventory_id, i.film_id, f.title, f.rental_rate, f.rental_duration
		FROM inventory i
		JOIN film f ON f.film_id = i.film_id
		WHERE i.inventory_id = $1
		FOR UPDATE OF i
	`

	var item rental.InventoryItem

	err := t.tx.QueryRowContext(ctx, query, inventoryID).Scan(
		&item.ID, &item.FilmID, &item.FilmTitle, &item.RentalRate, &item.RentalDuration,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rental.ErrInventoryNotFound
		}

		return nil, fmt.Errorf("locking inventory: %w", err)
	}

	return &item, nil
}

func (t *ledgerTx) HasActiveRental(ctx context.Context, inventoryID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM rental
			WHERE inventory_id = $1 AND return_date IS NULL
		)
	`

	var rented bool
	if err := t.tx.QueryRowContext(ctx, query, inventoryID).Scan(&rented); err != nil {
		return false, fmt.Errorf("checking active rental: %w", err)
	}

	return rented, nil
}

func (t *ledgerTx) CustomerName(ctx context.Context, customerID int64) (string, error) {
	const query = `SELECT first_name || ' ' || last_name FROM customer WHERE customer_id = $1`

	var name string
	if err := t.tx.QueryRowContext(ctx, query, customerID).Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", rental.ErrCustomerNotFound
		}

		return "", fmt.Errorf("looking up customer: %w", err)
	}

	return name, nil
}

func (t *ledgerTx) StaffName(ctx context.Context, staffID int64) (string, error) {
	const query = `SELECT first_name || ' ' || last_name FROM staff WHERE staff_id = $1`

	var name string
	if err := t.tx.QueryRowContext(ctx, query, staffID).Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", rental.ErrStaffNotFound
		}

		return "", fmt.Errorf("looking up staff: %w", err)
	}

	return name, nil
}

func (t *ledgerTx) InsertRental(ctx context.Context, inventoryID, customerID, staffID int64) (*rental.Detail, error) {
	const query = `
		INSERT INTO rental (rental_date, inventory_id, customer_id, staff_id, last_update)
		VALUES (NOW(), $1, $2, $3, NOW())
		RETURNING rental_id, rental_date
	`

	detail := rental.Detail{
		InventoryID: inventoryID,
		CustomerID:  customerID,
		StaffID:     staffID,
	}

	err := t.tx.QueryRowContext(ctx, query, inventoryID, customerID, staffID).
		Scan(&detail.ID, &detail.RentalDate)
	if err != nil {
		return nil, fmt.Errorf("inserting rental: %w", err)
	}

	return &detail, nil
}

// LockRental locks the rental row so two concurrent returns of the same
// rental serialize: the second sees the first one's return date.
func (t *ledgerTx) LockRental(ctx context.Context, rentalID int64) (*rental.Detail, error) {
	const query = `
		SELECT r.rental_id, r.inventory_id, r.customer_id, r.staff_id,
		       r.rental_date, r.return_date,
		       f.title, f.rental_rate, f.rental_duration
		FROM rental r
		JOIN inventory i ON i.inventory_id = r.inventory_id
		JOIN film f ON f.film_id = i.film_id
		WHERE r.rental_id = $1
		FOR UPDATE OF r
	`

	var (
		detail     rental.Detail
		returnDate sql.NullTime
	)

	err := t.tx.QueryRowContext(ctx, query, rentalID).Scan(
		&detail.ID, &detail.InventoryID, &detail.CustomerID, &detail.StaffID,
		&detail.RentalDate, &returnDate,
		&detail.FilmTitle, &detail.RentalRate, &detail.RentalDuration,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rental.ErrRentalNotFound
		}

		return nil, fmt.Errorf("locking rental: %w", err)
	}

	if returnDate.Valid {
		d := returnDate.Time
		detail.ReturnDate = &d
	}

	return &detail, nil
}

func (t *ledgerTx) SetReturned(ctx context.Context, rentalID int64) (time.Time, error) {
	const query = `
		UPDATE rental
		SET return_date = NOW(), last_update = NOW()
		WHERE rental_id = $1
		RETURNING return_date
	`

	var returnDate time.Time
	if err := t.tx.QueryRowContext(ctx, query, rentalID).Scan(&returnDate); err != nil {
		return time.Time{}, fmt.Errorf("setting return date: %w", err)
	}

	return returnDate, nil
}

func (t *ledgerTx) InsertPayment(ctx context.Context, rentalID, customerID, staffID int64, amount decimal.Decimal) (int64, error) {
	const query = `
		INSERT INTO payment (customer_id, staff_id, rental_id, amount, payment_date)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING payment_id
	`

	var paymentID int64
	err := t.tx.QueryRowContext(ctx, query, customerID, staffID, rentalID, amount).Scan(&paymentID)
	if err != nil {
		return 0, fmt.Errorf("inserting payment: %w", err)
	}

	return paymentID, nil
}

func (t *ledgerTx) DeleteRental(ctx context.Context, rentalID int64) error {
	const query = `DELETE FROM rental WHERE rental_id = $1`

	if _, err := t.tx.ExecContext(ctx, query, rentalID); err != nil {
		return fmt.Errorf("deleting rental: %w", err)
	}

	return nil
}

func (s *Store) GetCustomer(ctx context.Context, customerID int64) (*rental.Customer, error) {
	const query = `
		SELECT customer_id, first_name, last_name, email
		FROM customer
		WHERE customer_id = $1
	`

	var c rental.Customer

	err := s.db.QueryRowContext(ctx, query, customerID).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rental.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return &c, nil
}

// statusPredicates keys the supported filters to their predicates so the
// query is never assembled from caller input.
var statusPredicates = map[rental.StatusFilter]string{
	rental.FilterActive:   " AND r.return_date IS NULL",
	rental.FilterReturned: " AND r.return_date IS NOT NULL",
}

func (s *Store) ListCustomerRentals(ctx context.Context, customerID int64, status rental.StatusFilter) ([]rental.CustomerRental, error) {
	query := `
		SELECT
			r.rental_id,
			r.rental_date,
			r.return_date,
			f.title,
			f.rental_rate,
			COALESCE(c.name, '') AS category,
			CASE WHEN r.return_date IS NULL THEN 'active' ELSE 'returned' END AS status,
			CASE
				WHEN r.return_date IS NULL
				THEN EXTRACT(DAY FROM (NOW() - r.rental_date))::bigint
				ELSE EXTRACT(DAY FROM (r.return_date - r.rental_date))::bigint
			END AS days_rented
		FROM rental r
		JOIN inventory i ON r.inventory_id = i.inventory_id
		JOIN film f ON i.film_id = f.film_id
		LEFT JOIN film_category fc ON f.film_id = fc.film_id
		LEFT JOIN category c ON fc.category_id = c.category_id
		WHERE r.customer_id = $1
	`

	query += statusPredicates[status]
	query += " ORDER BY r.rental_date DESC"

	rows, err := s.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing customer rentals: %w", err)
	}
	defer rows.Close()

	var rentals []rental.CustomerRental

	for rows.Next() {
		var (
			r          rental.CustomerRental
			returnDate sql.NullTime
		)

		if err := rows.Scan(
			&r.RentalID, &r.RentalDate, &returnDate,
			&r.FilmTitle, &r.RentalRate, &r.Category, &r.Status, &r.DaysRented,
		); err != nil {
			return nil, fmt.Errorf("scanning customer rental: %w", err)
		}

		if returnDate.Valid {
			d := returnDate.Time
			r.ReturnDate = &d
		}

		rentals = append(rentals, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customer rentals: %w", err)
	}

	return rentals, nil
}
