package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jlopezga/dvdrental/internal/catalog"
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

const selectFilmColumns = `
	f.film_id, f.title, f.description, f.release_year, f.length, f.rating,
	f.rental_rate, f.rental_duration, COALESCE(c.name, '') AS category
`

const filmJoins = `
	FROM film f
	LEFT JOIN film_category fc ON f.film_id = fc.film_id
	LEFT JOIN category c ON fc.category_id = c.category_id
`

func scanFilm(s scanner) (*catalog.Film, error) {
	var f catalog.Film

	if err := s.Scan(
		&f.ID, &f.Title, &f.Description, &f.ReleaseYear, &f.Length, &f.Rating,
		&f.RentalRate, &f.RentalDuration, &f.Category,
	); err != nil {
		return nil, err
	}

	return &f, nil
}

func (s *Store) ListFilms(ctx context.Context, limit int) ([]catalog.Film, error) {
	query := `SELECT ` + selectFilmColumns + filmJoins + `ORDER BY f.film_id LIMIT $1`

	return s.queryFilms(ctx, "listing films", query, limit)
}

func (s *Store) GetFilm(ctx context.Context, filmID int64) (*catalog.Film, error) {
	query := `SELECT ` + selectFilmColumns + filmJoins + `WHERE f.film_id = $1`

	f, err := scanFilm(s.db.QueryRowContext(ctx, query, filmID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalog.ErrFilmNotFound
		}

		return nil, fmt.Errorf("getting film: %w", err)
	}

	return f, nil
}

func (s *Store) SearchFilms(ctx context.Context, title string) ([]catalog.Film, error) {
	query := `SELECT ` + selectFilmColumns + filmJoins +
		`WHERE f.title ILIKE '%' || $1 || '%' ORDER BY f.title`

	return s.queryFilms(ctx, "searching films", query, title)
}

func (s *Store) ListFilmsByCategory(ctx context.Context, category string) ([]catalog.Film, error) {
	query := `SELECT ` + selectFilmColumns + filmJoins +
		`WHERE c.name ILIKE $1 ORDER BY f.title`

	return s.queryFilms(ctx, "listing films by category", query, category)
}

func (s *Store) queryFilms(ctx context.Context, op, query string, args ...any) ([]catalog.Film, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var films []catalog.Film

	for rows.Next() {
		f, err := scanFilm(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning film: %w", err)
		}

		films = append(films, *f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return films, nil
}
