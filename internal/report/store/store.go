package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jlopezga/dvdrental/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) ListUnreturned(ctx context.Context) ([]report.UnreturnedRental, error) {
	const query = `
		SELECT
			r.rental_id,
			r.rental_date,
			EXTRACT(DAY FROM (NOW() - r.rental_date))::bigint AS days_rented,
			f.film_id,
			f.title,
			f.rental_duration AS expected_duration,
			c.customer_id,
			c.first_name || ' ' || c.last_name AS customer_name,
			c.email,
			s.first_name || ' ' || s.last_name AS staff_name,
			EXTRACT(DAY FROM (NOW() - r.rental_date)) > f.rental_duration AS late
		FROM rental r
		JOIN inventory i ON r.inventory_id = i.inventory_id
		JOIN film f ON i.film_id = f.film_id
		JOIN customer c ON r.customer_id = c.customer_id
		JOIN staff s ON r.staff_id = s.staff_id
		WHERE r.return_date IS NULL
		ORDER BY r.rental_date ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing unreturned rentals: %w", err)
	}
	defer rows.Close()

	var rentals []report.UnreturnedRental

	for rows.Next() {
		var r report.UnreturnedRental

		if err := rows.Scan(
			&r.RentalID, &r.RentalDate, &r.DaysRented,
			&r.FilmID, &r.Title, &r.ExpectedDuration,
			&r.CustomerID, &r.CustomerName, &r.CustomerEmail,
			&r.StaffName, &r.Late,
		); err != nil {
			return nil, fmt.Errorf("scanning unreturned rental: %w", err)
		}

		rentals = append(rentals, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating unreturned rentals: %w", err)
	}

	return rentals, nil
}

func (s *Store) ListMostRented(ctx context.Context, limit int) ([]report.MostRentedFilm, error) {
	const query = `
		SELECT
			f.film_id,
			f.title,
			f.rental_rate,
			f.release_year,
			f.rating,
			COALESCE(c.name, '') AS category,
			COUNT(r.rental_id) AS total_rentals,
			COUNT(CASE WHEN r.return_date IS NOT NULL THEN 1 END) AS completed_rentals,
			COUNT(CASE WHEN r.return_date IS NULL THEN 1 END) AS active_rentals,
			COALESCE(SUM(p.amount), 0) AS total_revenue,
			MAX(r.rental_date) AS last_rental_date
		FROM film f
		JOIN inventory i ON f.film_id = i.film_id
		JOIN rental r ON i.inventory_id = r.inventory_id
		LEFT JOIN payment p ON r.rental_id = p.rental_id
		LEFT JOIN film_category fc ON f.film_id = fc.film_id
		LEFT JOIN category c ON fc.category_id = c.category_id
		GROUP BY f.film_id, f.title, f.rental_rate, f.release_year, f.rating, c.name
		ORDER BY total_rentals DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing most rented films: %w", err)
	}
	defer rows.Close()

	var films []report.MostRentedFilm

	for rows.Next() {
		var f report.MostRentedFilm

		if err := rows.Scan(
			&f.FilmID, &f.Title, &f.RentalRate, &f.ReleaseYear, &f.Rating, &f.Category,
			&f.TotalRentals, &f.CompletedRentals, &f.ActiveRentals,
			&f.TotalRevenue, &f.LastRentalDate,
		); err != nil {
			return nil, fmt.Errorf("scanning most rented film: %w", err)
		}

		films = append(films, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating most rented films: %w", err)
	}

	return films, nil
}

const selectStaffRevenueColumns = `
	s.staff_id,
	s.first_name || ' ' || s.last_name AS staff_name,
	s.email,
	s.store_id,
	COUNT(DISTINCT r.rental_id) AS total_rentals,
	COUNT(DISTINCT p.payment_id) AS total_payments,
	COALESCE(SUM(p.amount), 0) AS total_revenue,
	COALESCE(AVG(p.amount), 0) AS average_payment,
	MIN(p.payment_date) AS first_payment_date,
	MAX(p.payment_date) AS last_payment_date
`

// paymentDateConds builds the optional payment date bounds, numbering
// placeholders from startIdx. The conditions go into the payment join so a
// staff member with no in-range payments still comes back with zeroed
// totals instead of vanishing.
func paymentDateConds(dates report.DateRange, startIdx int) (string, []any) {
	conds := ""

	var args []any

	if dates.Start != nil {
		conds += fmt.Sprintf(" AND p.payment_date >= $%d", startIdx)

		args = append(args, *dates.Start)
		startIdx++
	}

	if dates.End != nil {
		conds += fmt.Sprintf(" AND p.payment_date <= $%d", startIdx)

		args = append(args, *dates.End)
	}

	return conds, args
}

func scanStaffRevenue(s scanner, rev *report.StaffRevenue) error {
	var first, last sql.NullTime

	if err := s.Scan(
		&rev.StaffID, &rev.StaffName, &rev.Email, &rev.StoreID,
		&rev.TotalRentals, &rev.TotalPayments, &rev.TotalRevenue,
		&rev.AveragePayment, &first, &last,
	); err != nil {
		return err
	}

	if first.Valid {
		d := first.Time
		rev.FirstPaymentDate = &d
	}

	if last.Valid {
		d := last.Time
		rev.LastPaymentDate = &d
	}

	return nil
}

func (s *Store) ListStaffRevenue(ctx context.Context, dates report.DateRange) ([]report.StaffRevenue, error) {
	dateConds, args := paymentDateConds(dates, 1)

	query := `
		SELECT` + selectStaffRevenueColumns + `
		FROM staff s
		LEFT JOIN rental r ON s.staff_id = r.staff_id
		LEFT JOIN payment p ON r.rental_id = p.rental_id` + dateConds + `
		GROUP BY s.staff_id, s.first_name, s.last_name, s.email, s.store_id
		ORDER BY total_revenue DESC
	`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing staff revenue: %w", err)
	}
	defer rows.Close()

	var revenues []report.StaffRevenue

	for rows.Next() {
		var rev report.StaffRevenue

		if err := scanStaffRevenue(rows, &rev); err != nil {
			return nil, fmt.Errorf("scanning staff revenue: %w", err)
		}

		revenues = append(revenues, rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating staff revenue: %w", err)
	}

	return revenues, nil
}

func (s *Store) GetStaffRevenue(ctx context.Context, staffID int64, dates report.DateRange) (*report.StaffRevenue, error) {
	dateConds, dateArgs := paymentDateConds(dates, 2)
	args := append([]any{staffID}, dateArgs...)

	query := `
		SELECT` + selectStaffRevenueColumns + `
		FROM staff s
		LEFT JOIN rental r ON s.staff_id = r.staff_id
		LEFT JOIN payment p ON r.rental_id = p.rental_id` + dateConds + `
		WHERE s.staff_id = $1
		GROUP BY s.staff_id, s.first_name, s.last_name, s.email, s.store_id
	`

	var rev report.StaffRevenue

	if err := scanStaffRevenue(s.db.QueryRowContext(ctx, query, args...), &rev); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, report.ErrStaffNotFound
		}

		return nil, fmt.Errorf("getting staff revenue: %w", err)
	}

	dailyQuery := `
		SELECT
			DATE(p.payment_date) AS payment_date,
			COUNT(p.payment_id) AS payments,
			SUM(p.amount) AS revenue
		FROM payment p
		JOIN rental r ON p.rental_id = r.rental_id
		WHERE r.staff_id = $1` + dateConds + `
		GROUP BY DATE(p.payment_date)
		ORDER BY payment_date DESC
		LIMIT 30
	`

	rows, err := s.db.QueryContext(ctx, dailyQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("getting daily staff revenue: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d report.DailyRevenue

		if err := rows.Scan(&d.Date, &d.Payments, &d.Revenue); err != nil {
			return nil, fmt.Errorf("scanning daily staff revenue: %w", err)
		}

		rev.Daily = append(rev.Daily, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily staff revenue: %w", err)
	}

	return &rev, nil
}
