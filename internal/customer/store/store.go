package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jlopezga/dvdrental/internal/customer"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectCustomerColumns = `
	c.customer_id, c.store_id, c.first_name, c.last_name, c.email, c.activebool,
	a.address, a.district, ci.city, co.country, a.phone, c.create_date
`

const customerJoins = `
	FROM customer c
	JOIN address a ON c.address_id = a.address_id
	JOIN city ci ON a.city_id = ci.city_id
	JOIN country co ON ci.country_id = co.country_id
`

func (s *Store) ListCustomers(ctx context.Context, filter customer.ListFilter) (*customer.ListResult, error) {
	where := ""

	var args []any

	argIdx := 1

	if filter.Active != nil {
		where += fmt.Sprintf(" AND c.activebool = $%d", argIdx)

		args = append(args, *filter.Active)
		argIdx++
	}

	if filter.StoreID != nil {
		where += fmt.Sprintf(" AND c.store_id = $%d", argIdx)

		args = append(args, *filter.StoreID)
		argIdx++
	}

	query := `SELECT ` + selectCustomerColumns + customerJoins + `WHERE 1=1` + where +
		fmt.Sprintf(" ORDER BY c.customer_id LIMIT $%d OFFSET $%d", argIdx, argIdx+1)

	rows, err := s.db.QueryContext(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	result := customer.ListResult{Customers: []customer.Customer{}}

	for rows.Next() {
		var c customer.Customer

		if err := rows.Scan(
			&c.ID, &c.StoreID, &c.FirstName, &c.LastName, &c.Email, &c.Active,
			&c.Address, &c.District, &c.City, &c.Country, &c.Phone, &c.CreateDate,
		); err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		result.Customers = append(result.Customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customers: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM customer c WHERE 1=1` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&result.Total); err != nil {
		return nil, fmt.Errorf("counting customers: %w", err)
	}

	return &result, nil
}

func (s *Store) GetCustomer(ctx context.Context, customerID int64) (*customer.Detail, error) {
	query := `SELECT ` + selectCustomerColumns + customerJoins + `WHERE c.customer_id = $1`

	var d customer.Detail

	err := s.db.QueryRowContext(ctx, query, customerID).Scan(
		&d.ID, &d.StoreID, &d.FirstName, &d.LastName, &d.Email, &d.Active,
		&d.Address, &d.District, &d.City, &d.Country, &d.Phone, &d.CreateDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customer.ErrNotFound
		}

		return nil, fmt.Errorf("getting customer: %w", err)
	}

	const statsQuery = `
		SELECT
			COUNT(r.rental_id),
			COUNT(r.rental_id) FILTER (WHERE r.return_date IS NULL),
			COALESCE(SUM(p.amount), 0)
		FROM rental r
		LEFT JOIN payment p ON p.rental_id = r.rental_id
		WHERE r.customer_id = $1
	`

	err = s.db.QueryRowContext(ctx, statsQuery, customerID).Scan(
		&d.Stats.TotalRentals, &d.Stats.ActiveRentals, &d.Stats.TotalSpent,
	)
	if err != nil {
		return nil, fmt.Errorf("getting customer stats: %w", err)
	}

	return &d, nil
}
