package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jlopezga/dvdrental/internal/staff"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectStaffColumns = `
	s.staff_id, s.store_id, s.first_name, s.last_name, s.email, s.username, s.active
`

func (s *Store) ListStaff(ctx context.Context, filter staff.ListFilter) ([]staff.Staff, error) {
	query := `SELECT ` + selectStaffColumns + ` FROM staff s WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Active != nil {
		query += fmt.Sprintf(" AND s.active = $%d", argIdx)

		args = append(args, *filter.Active)
		argIdx++
	}

	if filter.StoreID != nil {
		query += fmt.Sprintf(" AND s.store_id = $%d", argIdx)

		args = append(args, *filter.StoreID)
		argIdx++
	}

	query += " ORDER BY s.staff_id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing staff: %w", err)
	}
	defer rows.Close()

	var members []staff.Staff

	for rows.Next() {
		var m staff.Staff

		if err := rows.Scan(
			&m.ID, &m.StoreID, &m.FirstName, &m.LastName, &m.Email, &m.Username, &m.Active,
		); err != nil {
			return nil, fmt.Errorf("scanning staff: %w", err)
		}

		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating staff: %w", err)
	}

	return members, nil
}

func (s *Store) GetStaff(ctx context.Context, staffID int64) (*staff.Staff, error) {
	query := `SELECT ` + selectStaffColumns + ` FROM staff s WHERE s.staff_id = $1`

	var m staff.Staff

	err := s.db.QueryRowContext(ctx, query, staffID).Scan(
		&m.ID, &m.StoreID, &m.FirstName, &m.LastName, &m.Email, &m.Username, &m.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, staff.ErrNotFound
		}

		return nil, fmt.Errorf("getting staff: %w", err)
	}

	return &m, nil
}
